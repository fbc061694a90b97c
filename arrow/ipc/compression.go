// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ipc

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"github.com/arrowfixtures/feather/arrow/compress"
	"github.com/arrowfixtures/feather/arrow/internal/flatbuf"
	"github.com/arrowfixtures/feather/arrow/memory"
	"golang.org/x/xerrors"
)

// uncompressedMarker prefixes buffers stored raw inside a compressed body.
const uncompressedMarker = -1

// bufferCompressor implements BodyCompression method BUFFER: every
// non-empty buffer is stored as its uncompressed length (little-endian
// int64) followed by the compressed bytes, or by the raw bytes and a length
// of -1 when compressing does not make the buffer smaller.
type bufferCompressor struct {
	codec compress.Codec
	fb    flatbuf.CompressionType
}

func newBufferCompressor(id compress.Compression) (*bufferCompressor, error) {
	var fb flatbuf.CompressionType
	switch id {
	case compress.Uncompressed:
		return nil, nil
	case compress.Lz4Frame:
		fb = flatbuf.CompressionTypeLZ4_FRAME
	case compress.Zstd:
		fb = flatbuf.CompressionTypeZSTD
	default:
		return nil, xerrors.Errorf("arrow/ipc: %s buffer compression: %w", id, ErrUnsupportedCodec)
	}
	codec, err := compress.GetCodec(id)
	if err != nil {
		return nil, xerrors.Errorf("arrow/ipc: %w", err)
	}
	return &bufferCompressor{codec: codec, fb: fb}, nil
}

func (c *bufferCompressor) compress(buf *memory.Buffer) *memory.Buffer {
	raw := buf.Bytes()
	if len(raw) == 0 {
		return buf
	}

	out := make([]byte, 8, 8+c.codec.CompressBound(int64(len(raw))))
	out = append(out[:8], c.codec.Encode(out[8:], raw)...)
	if len(out)-8 >= len(raw) {
		out = append(out[:8], raw...)
		binary.LittleEndian.PutUint64(out, math.MaxUint64)
		return memory.NewBufferBytes(out)
	}
	binary.LittleEndian.PutUint64(out, uint64(len(raw)))
	return memory.NewBufferBytes(out)
}

func codecFromFB(fb flatbuf.CompressionType) (compress.Codec, error) {
	var id compress.Compression
	switch fb {
	case flatbuf.CompressionTypeLZ4_FRAME:
		id = compress.Lz4Frame
	case flatbuf.CompressionTypeZSTD:
		id = compress.Zstd
	default:
		return nil, xerrors.Errorf("arrow/ipc: %s buffer compression: %w", fb, ErrUnsupportedCodec)
	}
	codec, err := compress.GetCodec(id)
	if err != nil {
		return nil, xerrors.Errorf("arrow/ipc: %w", err)
	}
	return codec, nil
}

// decompressBuffer decodes one stored buffer. The decoded size is checked
// against the length prefix, and decoding stops one byte past it, so a
// small buffer cannot expand into an allocation larger than its prefix.
func decompressBuffer(codec compress.Codec, stored []byte) ([]byte, error) {
	if len(stored) == 0 {
		return nil, nil
	}
	if len(stored) < 8 {
		return nil, xerrors.Errorf("arrow/ipc: compressed buffer of %d bytes lacks its length prefix: %w", len(stored), ErrCorrupt)
	}

	ulen := int64(binary.LittleEndian.Uint64(stored))
	body := stored[8:]
	switch {
	case ulen == uncompressedMarker:
		return body, nil
	case ulen < 0 || ulen == math.MaxInt64:
		return nil, xerrors.Errorf("arrow/ipc: invalid uncompressed length %d: %w", ulen, ErrCorrupt)
	case ulen == 0:
		return nil, nil
	}

	rc, err := codec.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, xerrors.Errorf("arrow/ipc: %v: %w", err, ErrDecompression)
	}
	defer rc.Close()

	out, err := io.ReadAll(io.LimitReader(rc, ulen+1))
	if err != nil {
		return nil, xerrors.Errorf("arrow/ipc: %v: %w", err, ErrDecompression)
	}
	if int64(len(out)) != ulen {
		return nil, xerrors.Errorf("arrow/ipc: decompressed %d bytes, expected %d: %w", len(out), ulen, ErrDecompression)
	}
	return out, nil
}

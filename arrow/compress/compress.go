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

// Package compress provides the block and stream codecs used for Arrow IPC
// buffer compression and for whole-file wrapping of Feather files.
package compress

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// Compression identifies a codec.
type Compression int8

const (
	Uncompressed Compression = iota
	Lz4Frame
	Zstd
	Snappy
	Gzip
	Brotli
)

// ErrUnsupportedCodec is returned for codec ids with no registered Codec.
var ErrUnsupportedCodec = errors.New("compress: unsupported codec")

func (c Compression) String() string {
	switch c {
	case Uncompressed:
		return "UNCOMPRESSED"
	case Lz4Frame:
		return "LZ4_FRAME"
	case Zstd:
		return "ZSTD"
	case Snappy:
		return "SNAPPY"
	case Gzip:
		return "GZIP"
	case Brotli:
		return "BROTLI"
	}
	return fmt.Sprintf("Compression(%d)", int8(c))
}

// Extension returns the file name suffix used when a whole file is
// wrapped with c.
func (c Compression) Extension() string {
	switch c {
	case Lz4Frame:
		return ".lz4"
	case Zstd:
		return ".zst"
	case Snappy:
		return ".sz"
	case Gzip:
		return ".gz"
	case Brotli:
		return ".br"
	}
	return ""
}

// ParseCompression accepts a codec name case-insensitively. "lz4" and
// "none" are aliases of LZ4_FRAME and UNCOMPRESSED.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToUpper(s) {
	case "", "NONE", "UNCOMPRESSED":
		return Uncompressed, nil
	case "LZ4", "LZ4_FRAME":
		return Lz4Frame, nil
	case "ZSTD":
		return Zstd, nil
	case "SNAPPY":
		return Snappy, nil
	case "GZIP":
		return Gzip, nil
	case "BROTLI":
		return Brotli, nil
	}
	return Uncompressed, fmt.Errorf("%w: %q", ErrUnsupportedCodec, s)
}

// FromExtension returns the codec whose Extension is the suffix of name,
// or Uncompressed.
func FromExtension(name string) Compression {
	for _, c := range []Compression{Lz4Frame, Zstd, Snappy, Gzip, Brotli} {
		if strings.HasSuffix(name, c.Extension()) {
			return c
		}
	}
	return Uncompressed
}

// Codec is implemented for each compression type.
type Codec interface {
	// Encode compresses src and returns the compressed block. The result
	// may be a slice of dst if dst has enough capacity.
	Encode(dst, src []byte) []byte
	// Decode decompresses the block src. When dst is non-nil it is used as
	// the output buffer; the returned slice holds the decoded bytes.
	Decode(dst, src []byte) ([]byte, error)
	// CompressBound returns the largest compressed size of n input bytes.
	CompressBound(n int64) int64
	// NewReader wraps a compressed stream.
	NewReader(r io.Reader) (io.ReadCloser, error)
	// NewWriter compresses everything written to the returned writer into w.
	NewWriter(w io.Writer) (io.WriteCloser, error)
}

var (
	codecsMu sync.RWMutex
	codecs   = map[Compression]Codec{}
)

// RegisterCodec makes codec available under id, replacing any codec
// previously registered for it.
func RegisterCodec(id Compression, codec Codec) {
	codecsMu.Lock()
	defer codecsMu.Unlock()
	codecs[id] = codec
}

// GetCodec returns the codec registered for id.
func GetCodec(id Compression) (Codec, error) {
	codecsMu.RLock()
	defer codecsMu.RUnlock()
	c, ok := codecs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCodec, id)
	}
	return c, nil
}

// Registered returns the ids of all registered codecs in ascending order.
func Registered() []Compression {
	codecsMu.RLock()
	defer codecsMu.RUnlock()
	out := make([]Compression, 0, len(codecs))
	for id := range codecs {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

type nocodec struct{}

type writerNopCloser struct {
	io.Writer
}

func (writerNopCloser) Close() error { return nil }

func (nocodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	if rc, ok := r.(io.ReadCloser); ok {
		return rc, nil
	}
	return io.NopCloser(r), nil
}

func (nocodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return writerNopCloser{w}, nil
}

func (nocodec) Encode(dst, src []byte) []byte {
	return append(dst[:0], src...)
}

func (nocodec) Decode(dst, src []byte) ([]byte, error) {
	return append(dst[:0], src...), nil
}

func (nocodec) CompressBound(n int64) int64 { return n }

// readAllInto decodes r into dst when dst is sized, otherwise into a new
// slice.
func readAllInto(dst []byte, r io.Reader) ([]byte, error) {
	if dst == nil {
		return io.ReadAll(r)
	}
	n, err := io.ReadFull(r, dst)
	switch {
	case err == io.ErrUnexpectedEOF || err == io.EOF:
		return dst[:n], nil
	case err != nil:
		return nil, err
	}
	// report trailing data as an over-long result
	var extra [1]byte
	if m, _ := r.Read(extra[:]); m > 0 {
		return append(dst[:n:n], extra[0]), nil
	}
	return dst[:n], nil
}

func init() {
	RegisterCodec(Uncompressed, nocodec{})
}

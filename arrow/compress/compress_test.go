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

package compress_test

import (
	"bytes"
	"io"
	"math/rand"
	"testing"

	"github.com/arrowfixtures/feather/arrow/compress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	RandomDataSize       = 256 * 1024
	CompressibleDataSize = 1024 * 1024
)

var allCodecs = []compress.Compression{
	compress.Uncompressed,
	compress.Lz4Frame,
	compress.Zstd,
	compress.Snappy,
	compress.Gzip,
	compress.Brotli,
}

func makeRandomData(size int) []byte {
	ret := make([]byte, size)
	r := rand.New(rand.NewSource(1234))
	r.Read(ret)
	return ret
}

func makeCompressibleData(size int) []byte {
	const base = "Feather files store Arrow record batches in the IPC file format"

	data := make([]byte, size)
	n := copy(data, base)
	for i := n; i < len(data); i *= 2 {
		copy(data[i:], data[:i])
	}
	return data
}

func TestUnsupported(t *testing.T) {
	_, err := compress.GetCodec(compress.Compression(42))
	assert.ErrorIs(t, err, compress.ErrUnsupportedCodec)
	assert.Equal(t, "Compression(42)", compress.Compression(42).String())

	_, err = compress.ParseCompression("lzo")
	assert.ErrorIs(t, err, compress.ErrUnsupportedCodec)
}

func TestParseCompression(t *testing.T) {
	for _, c := range allCodecs {
		got, err := compress.ParseCompression(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	got, err := compress.ParseCompression("lz4")
	require.NoError(t, err)
	assert.Equal(t, compress.Lz4Frame, got)

	assert.Equal(t, compress.Zstd, compress.FromExtension("table.arrow.zst"))
	assert.Equal(t, compress.Uncompressed, compress.FromExtension("table.arrow"))
	assert.Equal(t, allCodecs, compress.Registered())
}

func TestCompressDataOneShot(t *testing.T) {
	for _, c := range allCodecs {
		t.Run(c.String(), func(t *testing.T) {
			codec, err := compress.GetCodec(c)
			require.NoError(t, err)
			data := makeCompressibleData(CompressibleDataSize)

			compressed := codec.Encode(nil, data)
			assert.LessOrEqual(t, int64(len(compressed)), codec.CompressBound(int64(len(data))))
			if c != compress.Uncompressed {
				assert.Less(t, len(compressed), len(data))
			}

			out := make([]byte, len(data))
			uncompressed, err := codec.Decode(out, compressed)
			require.NoError(t, err)
			assert.Exactly(t, data, uncompressed)

			uncompressed, err = codec.Decode(nil, compressed)
			require.NoError(t, err)
			assert.Exactly(t, data, uncompressed)
		})
	}
}

func TestCompressEmpty(t *testing.T) {
	for _, c := range allCodecs {
		t.Run(c.String(), func(t *testing.T) {
			codec, err := compress.GetCodec(c)
			require.NoError(t, err)
			out, err := codec.Decode(nil, codec.Encode(nil, []byte{}))
			require.NoError(t, err)
			assert.Empty(t, out)
		})
	}
}

func TestDecodeShortBuffer(t *testing.T) {
	for _, c := range []compress.Compression{compress.Lz4Frame, compress.Gzip, compress.Brotli} {
		t.Run(c.String(), func(t *testing.T) {
			codec, err := compress.GetCodec(c)
			require.NoError(t, err)
			data := makeCompressibleData(1000)
			out, err := codec.Decode(make([]byte, 10), codec.Encode(nil, data))
			require.NoError(t, err)
			assert.NotEqual(t, len(data), len(out))
		})
	}
}

func TestDecodeGarbage(t *testing.T) {
	garbage := []byte("definitely not a compressed block")
	for _, c := range []compress.Compression{compress.Lz4Frame, compress.Zstd, compress.Gzip} {
		t.Run(c.String(), func(t *testing.T) {
			codec, err := compress.GetCodec(c)
			require.NoError(t, err)
			_, err = codec.Decode(make([]byte, 64), garbage)
			assert.Error(t, err)
		})
	}
}

func TestCompressReaderWriter(t *testing.T) {
	for _, c := range allCodecs {
		t.Run(c.String(), func(t *testing.T) {
			var buf bytes.Buffer
			codec, err := compress.GetCodec(c)
			require.NoError(t, err)
			data := makeRandomData(RandomDataSize)

			wr, err := codec.NewWriter(&buf)
			require.NoError(t, err)

			const chunkSize = 1111
			input := data
			for len(input) > 0 {
				n := min(chunkSize, len(input))
				written, err := wr.Write(input[:n])
				require.NoError(t, err)
				input = input[written:]
			}
			require.NoError(t, wr.Close())

			rdr, err := codec.NewReader(&buf)
			require.NoError(t, err)
			out, err := io.ReadAll(rdr)
			require.NoError(t, err)
			assert.Exactly(t, data, out)
			assert.NoError(t, rdr.Close())
		})
	}
}

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
	"errors"
	"testing"

	"github.com/arrowfixtures/feather/arrow"
	"github.com/arrowfixtures/feather/arrow/array"
	"github.com/arrowfixtures/feather/arrow/bitutil"
	"github.com/arrowfixtures/feather/arrow/compress"
	"github.com/arrowfixtures/feather/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTruncatedBitmap(t *testing.T) {
	alloc := memory.NewCheckedAllocator(memory.NewGoAllocator())

	assert.Nil(t, newTruncatedBitmap(alloc, 0, 0, nil), "input bitmap is null")

	buf := memory.NewBufferBytes(make([]byte, bitutil.BytesForBits(8)))
	bitutil.SetBit(buf.Bytes(), 0)
	bitutil.SetBit(buf.Bytes(), 2)
	bitutil.SetBit(buf.Bytes(), 4)
	bitutil.SetBit(buf.Bytes(), 6)

	assert.Same(t, buf, newTruncatedBitmap(alloc, 0, 8, buf), "no truncation necessary")
	alloc.AssertSize(t, 0)

	result := newTruncatedBitmap(alloc, 1, 7, buf)
	for i, exp := range []bool{false, true, false, true, false, true, false} {
		assert.Equal(t, exp, bitutil.BitIsSet(result.Bytes(), i), "truncate for offset")
	}
	assert.Equal(t, 1, alloc.Allocations(), "unaligned offsets copy")

	buf = memory.NewBufferBytes(bytes.Repeat([]byte{0xff}, 128))
	result = newTruncatedBitmap(alloc, 0, 8, buf)
	assert.Equal(t, 1, result.Len(), "truncate to smaller buffer")
	assert.Equal(t, 8, bitutil.CountSetBits(result.Bytes(), 0, 8))

	result = newTruncatedBitmap(alloc, 16, 10, buf)
	assert.Equal(t, 2, result.Len(), "byte aligned offsets share memory")
	assert.Equal(t, 1, alloc.Allocations())
}

func TestZeroBasedOffsets(t *testing.T) {
	alloc := memory.NewCheckedAllocator(memory.NewGoAllocator())

	vals := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	arr := array.NewString(vals, nil)

	offsets, beg, end := zeroBasedOffsets(alloc, arr.ValueOffsets(), arr.Len())
	assert.Equal(t, 44, offsets.Len(), "include all offsets if array is not sliced")
	assert.Equal(t, [2]int64{0, 10}, [2]int64{beg, end})
	alloc.AssertSize(t, 0)

	sl := array.NewSlice(arr, 0, 4).(*array.String)
	offsets, _, _ = zeroBasedOffsets(alloc, sl.ValueOffsets(), sl.Len())
	assert.Equal(t, 20, offsets.Len(), "trim trailing offsets after slice")

	sl = array.NewSlice(arr, 3, 6).(*array.String)
	offsets, beg, end = zeroBasedOffsets(alloc, sl.ValueOffsets(), sl.Len())
	assert.Equal(t, []int32{0, 1, 2, 3}, arrow.GetData[int32](offsets.Bytes()))
	assert.Equal(t, [2]int64{3, 6}, [2]int64{beg, end})

	offsets, _, _ = zeroBasedOffsets(alloc, []int32(nil), 0)
	assert.Nil(t, offsets)
}

func TestBufferCompression(t *testing.T) {
	for _, codec := range []compress.Compression{compress.Lz4Frame, compress.Zstd} {
		t.Run(codec.String(), func(t *testing.T) {
			c, err := newBufferCompressor(codec)
			require.NoError(t, err)

			raw := bytes.Repeat([]byte("feather"), 1024)
			stored := c.compress(memory.NewBufferBytes(raw)).Bytes()
			assert.Less(t, len(stored), len(raw))
			assert.Equal(t, int64(len(raw)), int64(binary.LittleEndian.Uint64(stored)))

			got, err := decompressBuffer(c.codec, stored)
			require.NoError(t, err)
			assert.Equal(t, raw, got)

			// incompressible input is stored raw behind a -1 length
			small := []byte{1, 2, 3}
			stored = c.compress(memory.NewBufferBytes(small)).Bytes()
			assert.Equal(t, int64(uncompressedMarker), int64(binary.LittleEndian.Uint64(stored)))
			assert.Equal(t, small, stored[8:])

			got, err = decompressBuffer(c.codec, stored)
			require.NoError(t, err)
			assert.Equal(t, small, got)

			assert.Nil(t, c.compress(nil).Bytes(), "empty buffers stay empty")
		})
	}
}

func TestDecompressBufferErrors(t *testing.T) {
	c, err := newBufferCompressor(compress.Zstd)
	require.NoError(t, err)

	raw := bytes.Repeat([]byte("abcd"), 512)
	stored := append([]byte(nil), c.compress(memory.NewBufferBytes(raw)).Bytes()...)

	binary.LittleEndian.PutUint64(stored, uint64(len(raw)+1))
	_, err = decompressBuffer(c.codec, stored)
	assert.True(t, errors.Is(err, ErrDecompression), "err=%v", err)

	_, err = decompressBuffer(c.codec, []byte{1, 2, 3})
	assert.True(t, errors.Is(err, ErrCorrupt), "err=%v", err)

	neg := make([]byte, 8)
	binary.LittleEndian.PutUint64(neg, uint64(1<<64-5))
	_, err = decompressBuffer(c.codec, neg)
	assert.True(t, errors.Is(err, ErrCorrupt), "err=%v", err)

	garbage := make([]byte, 16)
	binary.LittleEndian.PutUint64(garbage, 100)
	_, err = decompressBuffer(c.codec, garbage)
	assert.True(t, errors.Is(err, ErrDecompression), "err=%v", err)
}

func TestDecompressStopsAtPrefix(t *testing.T) {
	raw := make([]byte, 4<<20)
	for _, id := range []compress.Compression{compress.Lz4Frame, compress.Zstd} {
		t.Run(id.String(), func(t *testing.T) {
			c, err := newBufferCompressor(id)
			require.NoError(t, err)
			stored := append([]byte(nil), c.compress(memory.NewBufferBytes(raw)).Bytes()...)
			require.Less(t, len(stored), len(raw)/100)

			binary.LittleEndian.PutUint64(stored, 64)
			_, err = decompressBuffer(c.codec, stored)
			assert.True(t, errors.Is(err, ErrDecompression), "err=%v", err)
			assert.Contains(t, err.Error(), "decompressed 65 bytes, expected 64")
		})
	}
}

func TestUnsupportedCodec(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{{Name: "i", Type: arrow.PrimitiveTypes.Int32}}, nil)
	for _, codec := range []compress.Compression{compress.Snappy, compress.Gzip, compress.Brotli} {
		_, err := NewFileWriter(new(bytes.Buffer), WithSchema(schema), WithCompression(codec))
		assert.True(t, errors.Is(err, ErrUnsupportedCodec), "%s: err=%v", codec, err)
	}
}

func TestWriterSequence(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{{Name: "s", Type: arrow.BinaryTypes.String}}, nil)
	tbl, err := array.NewTable(schema, []arrow.Array{array.NewString([]string{"foo", "bar", "baz"}, nil)})
	require.NoError(t, err)

	_, err = NewFileWriter(new(bytes.Buffer))
	assert.True(t, errors.Is(err, arrow.ErrSchema), "err=%v", err)

	var buf bytes.Buffer
	w, err := NewFileWriter(&buf, WithSchema(schema))
	require.NoError(t, err)
	assert.Zero(t, buf.Len(), "nothing written before the first batch")

	other, err := array.NewTableFromColumns(array.Column{Name: "i", Array: array.NewInt32([]int32{1}, nil)})
	require.NoError(t, err)
	err = w.Write(other)
	assert.True(t, errors.Is(err, ErrSequence), "err=%v", err)
	assert.True(t, errors.Is(err, arrow.ErrSchema), "err=%v", err)

	require.NoError(t, w.Write(tbl))
	require.NoError(t, w.Close())

	err = w.Write(tbl)
	assert.True(t, errors.Is(err, ErrSequence), "write after close: err=%v", err)
	err = w.Close()
	assert.True(t, errors.Is(err, ErrSequence), "close twice: err=%v", err)

	assert.Equal(t, paddedMagic, buf.Bytes()[:8])
	assert.Equal(t, Magic, buf.Bytes()[buf.Len()-6:])
}

func TestWriterEmptyFile(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{{Name: "s", Type: arrow.BinaryTypes.String}}, nil)

	var buf bytes.Buffer
	w, err := NewFileWriter(&buf, WithSchema(schema))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := NewFileReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 0, r.NumRecords())
	assert.True(t, r.Schema().Equal(schema))
}

type failingWriter struct{ n int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n -= len(p); w.n < 0 {
		return 0, errors.New("disk full")
	}
	return len(p), nil
}

func TestWriterFailureIsSticky(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{{Name: "s", Type: arrow.BinaryTypes.String}}, nil)
	tbl, err := array.NewTable(schema, []arrow.Array{array.NewString([]string{"foo"}, nil)})
	require.NoError(t, err)

	w, err := NewFileWriter(&failingWriter{n: 16}, WithSchema(schema))
	require.NoError(t, err)

	err = w.Write(tbl)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrSequence))

	err = w.Close()
	assert.True(t, errors.Is(err, ErrSequence), "err=%v", err)
}

func TestUnionFieldNodeNulls(t *testing.T) {
	un, err := array.NewSparseUnionFromArrays([]arrow.UnionTypeCode{0, 0, 1},
		[]arrow.Array{
			array.NewInt64([]int64{1, 0, 3}, []bool{true, false, true}),
			array.NewString([]string{"a", "b", "c"}, nil),
		}, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 1, un.NullN())

	tbl, err := array.NewTableFromColumns(array.Column{Name: "u", Array: un, Nullable: true})
	require.NoError(t, err)

	enc := newRecordEncoder(memory.NewGoAllocator(), nil)
	require.NoError(t, enc.encode(new(payload), tbl))
	require.Len(t, enc.fields, 3)
	assert.Equal(t, fieldMetadata{Len: 3, Nulls: 0}, enc.fields[0], "union node")
	assert.Equal(t, fieldMetadata{Len: 3, Nulls: 1}, enc.fields[1], "int64 child")
	assert.Equal(t, fieldMetadata{Len: 3, Nulls: 0}, enc.fields[2], "string child")
}

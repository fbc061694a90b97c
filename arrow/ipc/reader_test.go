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
	"os"
	"testing"

	"github.com/arrowfixtures/feather/arrow"
	"github.com/arrowfixtures/feather/arrow/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTables(t *testing.T, tbls []*array.Table, opts ...Option) []byte {
	t.Helper()

	var buf bytes.Buffer
	w, err := NewFileWriter(&buf, append(opts, WithSchema(tbls[0].Schema()))...)
	require.NoError(t, err)
	for _, tbl := range tbls {
		require.NoError(t, w.Write(tbl))
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func stringTables(t *testing.T, n int) []*array.Table {
	schema := arrow.NewSchema([]arrow.Field{{Name: "s", Type: arrow.BinaryTypes.String}}, nil)
	tbls := make([]*array.Table, n)
	for i := range tbls {
		tbl, err := array.NewTable(schema, []arrow.Array{array.NewString([]string{"foo", "bar", "baz"}, nil)})
		require.NoError(t, err)
		tbls[i] = tbl
	}
	return tbls
}

// bodyOffset returns the file offset of the body of the i-th record batch.
func bodyOffset(t *testing.T, raw []byte, i int) int64 {
	t.Helper()
	r, err := NewFileReader(bytes.NewReader(raw))
	require.NoError(t, err)
	blk := r.blocks[i]
	return blk.Offset + int64(blk.Meta)
}

func TestReadCorruptOffsets(t *testing.T) {
	raw := writeTables(t, stringTables(t, 2))

	// the column has no nulls so its offsets are the first body buffer
	pos := bodyOffset(t, raw, 1)
	binary.LittleEndian.PutUint32(raw[pos+4:], 100)

	r, err := NewFileReader(bytes.NewReader(raw))
	require.NoError(t, err, "footer and schema are intact")

	_, err = r.ReadBatch(1)
	assert.True(t, errors.Is(err, ErrCorrupt), "err=%v", err)

	_, err = r.ReadBatch(0)
	assert.True(t, errors.Is(err, ErrCorrupt), "failures are sticky: err=%v", err)
}

func TestReadIndexErrorNotSticky(t *testing.T) {
	raw := writeTables(t, stringTables(t, 2))

	r, err := NewFileReader(bytes.NewReader(raw))
	require.NoError(t, err)

	for _, i := range []int{-1, 2, 100} {
		_, err = r.Record(i)
		assert.True(t, errors.Is(err, arrow.ErrIndex), "index %d: err=%v", i, err)
	}

	tbl, err := r.Record(1)
	require.NoError(t, err)
	assert.EqualValues(t, 3, tbl.NumRows())
}

func TestReadAfterClose(t *testing.T) {
	raw := writeTables(t, stringTables(t, 1))

	r, err := NewFileReader(bytes.NewReader(raw))
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())

	_, err = r.Record(0)
	assert.True(t, errors.Is(err, os.ErrClosed), "err=%v", err)
}

func TestReadCorruptDecompressedLength(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{{Name: "i", Type: arrow.PrimitiveTypes.Int64}}, nil)
	tbl, err := array.NewTable(schema, []arrow.Array{array.NewInt64(make([]int64, 1024), nil)})
	require.NoError(t, err)

	raw := writeTables(t, []*array.Table{tbl}, WithZstd())

	pos := bodyOffset(t, raw, 0)
	require.EqualValues(t, 1024*8, binary.LittleEndian.Uint64(raw[pos:]))
	binary.LittleEndian.PutUint64(raw[pos:], 1024*8+1)

	r, err := NewFileReader(bytes.NewReader(raw))
	require.NoError(t, err)

	_, err = r.Record(0)
	assert.True(t, errors.Is(err, ErrDecompression), "err=%v", err)
}

func TestReadBlockOutOfBounds(t *testing.T) {
	raw := writeTables(t, stringTables(t, 1))

	for _, tc := range []struct {
		name string
		blk  func(*FileBlock)
	}{
		{"past-footer", func(b *FileBlock) { b.Body = 1 << 20 }},
		{"overflow", func(b *FileBlock) { b.Offset = 1<<63 - 4 }},
		{"inside-magic", func(b *FileBlock) { b.Offset = 2 }},
		{"no-metadata", func(b *FileBlock) { b.Meta = 0 }},
		{"negative-body", func(b *FileBlock) { b.Body = -8 }},
		{"short-body", func(b *FileBlock) { b.Body -= 8 }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r, err := NewFileReader(bytes.NewReader(raw))
			require.NoError(t, err)
			tc.blk(&r.blocks[0])

			_, err = r.Record(0)
			assert.True(t, errors.Is(err, ErrCorrupt), "err=%v", err)
		})
	}
}

func TestReadGarbageBatchMetadata(t *testing.T) {
	raw := writeTables(t, stringTables(t, 1))

	r, err := NewFileReader(bytes.NewReader(raw))
	require.NoError(t, err)
	blk := r.blocks[0]

	// keep the continuation marker and length, scramble the flatbuffer
	for i := blk.Offset + 8; i < blk.Offset+int64(blk.Meta); i++ {
		raw[i] = 0xff
	}

	r, err = NewFileReader(bytes.NewReader(raw))
	require.NoError(t, err)
	_, err = r.Record(0)
	assert.True(t, errors.Is(err, ErrCorrupt), "err=%v", err)
}

func TestReadTruncatedFooterLength(t *testing.T) {
	raw := writeTables(t, stringTables(t, 1))

	for _, size := range []uint32{0, 1 << 31, uint32(len(raw))} {
		tail := append([]byte(nil), raw...)
		binary.LittleEndian.PutUint32(tail[len(tail)-10:], size)
		_, err := NewFileReader(bytes.NewReader(tail))
		assert.True(t, errors.Is(err, ErrFormat), "size=%d: err=%v", size, err)
	}
}

func nestedTables(t *testing.T) []*array.Table {
	t.Helper()

	ints := array.NewInt32([]int32{1, 2, 3, 4, 5, 6}, []bool{true, false, true, true, true, true})
	list, err := array.NewListFromArrays([]int32{0, 2, 2, 6}, ints, []bool{true, false, true})
	require.NoError(t, err)

	strs := array.NewString([]string{"a", "bc", ""}, []bool{true, true, false})
	st, err := array.NewStructFromArrays([]arrow.Field{
		{Name: "l", Type: list.DataType(), Nullable: true},
		{Name: "s", Type: strs.DataType(), Nullable: true},
	}, []arrow.Array{list, strs}, nil)
	require.NoError(t, err)

	un, err := array.NewSparseUnionFromArrays([]arrow.UnionTypeCode{5, 7, 5},
		[]arrow.Array{array.NewInt64([]int64{1, 2, 3}, nil), array.NewString([]string{"x", "y", "z"}, nil)},
		nil, []arrow.UnionTypeCode{5, 7})
	require.NoError(t, err)

	md := arrow.NewMetadata([]string{"k"}, []string{"v"})
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "st", Type: st.DataType(), Nullable: true, Metadata: md},
		{Name: "u", Type: un.DataType()},
	}, &md)
	tbl, err := array.NewTable(schema, []arrow.Array{st, un})
	require.NoError(t, err)
	return []*array.Table{tbl, tbl}
}

// TestReadOverwrittenWords replaces every aligned word of a file in turn
// with a huge value. Vector lengths, offsets and buffer prefixes read from
// the file must all come back as errors, never as crashes or unbounded
// allocations.
func TestReadOverwrittenWords(t *testing.T) {
	known := []error{ErrFormat, ErrCorrupt, ErrDecompression, ErrUnsupportedType, ErrUnsupportedCodec, arrow.ErrUnknownExtension}

	for _, tc := range []struct {
		name string
		opts []Option
	}{
		{"uncompressed", nil},
		{"zstd", []Option{WithZstd()}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			raw := writeTables(t, nestedTables(t), tc.opts...)

			for _, word := range []uint32{0x40000000, 0xffffffff} {
				for pos := len(paddedMagic); pos+4 <= len(raw)-len(Magic)-4; pos += 4 {
					data := append([]byte(nil), raw...)
					binary.LittleEndian.PutUint32(data[pos:], word)

					err := readEvery(data)
					if err == nil {
						continue
					}
					matched := false
					for _, want := range known {
						matched = matched || errors.Is(err, want)
					}
					assert.True(t, matched, "word %#x at %d: unexpected error %v", word, pos, err)
				}
			}
		})
	}
}

func readEvery(data []byte) error {
	r, err := NewFileReader(bytes.NewReader(data))
	if err != nil {
		return err
	}
	defer r.Close()
	for i := 0; i < r.NumRecords(); i++ {
		if _, err := r.ReadBatch(i); err != nil {
			return err
		}
	}
	return nil
}

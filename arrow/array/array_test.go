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

package array_test

import (
	"testing"

	"github.com/arrowfixtures/feather/arrow"
	"github.com/arrowfixtures/feather/arrow/array"
	"github.com/arrowfixtures/feather/arrow/decimal128"
	"github.com/arrowfixtures/feather/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDataType struct {
	id arrow.Type
}

func (d *testDataType) ID() arrow.Type               { return d.id }
func (d *testDataType) Name() string                 { return "test" }
func (d *testDataType) String() string               { return "test" }
func (d *testDataType) Fingerprint() string          { return "" }
func (d *testDataType) Layout() arrow.DataTypeLayout { return arrow.DataTypeLayout{} }

func TestMakeFromData(t *testing.T) {
	tests := []struct {
		name     string
		d        arrow.DataType
		expPanic bool
		expError string
	}{
		{name: "bool", d: arrow.FixedWidthTypes.Boolean},
		{name: "invalid(-1)", d: &testDataType{arrow.Type(-1)}, expPanic: true, expError: "invalid data type: Type(-1)"},
		{name: "invalid(99)", d: &testDataType{arrow.Type(99)}, expPanic: true, expError: "invalid data type: Type(99)"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var b [2]*memory.Buffer
			data := array.NewData(test.d, 0, b[:], nil, 0, 0)

			if test.expPanic {
				assert.PanicsWithValue(t, test.expError, func() {
					array.MakeFromData(data)
				})
			} else {
				assert.NotNil(t, array.MakeFromData(data))
			}
		})
	}
}

func buf(b ...byte) *memory.Buffer { return memory.NewBufferBytes(b) }

func int32Buf(v ...int32) *memory.Buffer { return memory.NewBufferBytes(arrow.GetBytes(v)) }

func TestBuildLayoutErrors(t *testing.T) {
	ints := array.NewInt32([]int32{1, 2, 3}, nil)
	longs := array.NewInt64([]int64{1, 2, 3}, nil)

	tests := []struct {
		name     string
		dt       arrow.DataType
		length   int
		validity *memory.Buffer
		buffers  []*memory.Buffer
		children []arrow.Array
	}{
		{name: "short data buffer", dt: arrow.PrimitiveTypes.Int32, length: 2, buffers: []*memory.Buffer{int32Buf(1)}},
		{name: "missing buffer", dt: arrow.PrimitiveTypes.Int32, length: 0},
		{name: "extra buffer", dt: arrow.PrimitiveTypes.Int32, length: 1, buffers: []*memory.Buffer{int32Buf(1), int32Buf(1)}},
		{name: "short validity", dt: arrow.PrimitiveTypes.Int32, length: 9, validity: buf(0xff), buffers: []*memory.Buffer{int32Buf(make([]int32, 9)...)}},
		{name: "null with validity", dt: arrow.Null, length: 1, validity: buf(0x01)},
		{name: "union with validity", dt: arrow.SparseUnionOf([]arrow.Field{{Name: "i", Type: arrow.PrimitiveTypes.Int32}}, nil), length: 1,
			validity: buf(0x01), buffers: []*memory.Buffer{buf(0)}, children: []arrow.Array{ints}},
		{name: "non-monotonic offsets", dt: arrow.BinaryTypes.String, length: 2, buffers: []*memory.Buffer{int32Buf(0, 3, 2), buf('a', 'b', 'c')}},
		{name: "negative first offset", dt: arrow.BinaryTypes.String, length: 1, buffers: []*memory.Buffer{int32Buf(-1, 2), buf('a', 'b', 'c')}},
		{name: "offset past data", dt: arrow.BinaryTypes.Binary, length: 1, buffers: []*memory.Buffer{int32Buf(0, 5), buf('a', 'b', 'c')}},
		{name: "short offsets", dt: arrow.BinaryTypes.Binary, length: 2, buffers: []*memory.Buffer{int32Buf(0, 1), buf('a', 'b', 'c')}},
		{name: "list offset past child", dt: arrow.ListOf(arrow.PrimitiveTypes.Int32), length: 1, buffers: []*memory.Buffer{int32Buf(0, 4)}, children: []arrow.Array{ints}},
		{name: "list child type", dt: arrow.ListOf(arrow.PrimitiveTypes.Int32), length: 1, buffers: []*memory.Buffer{int32Buf(0, 3)}, children: []arrow.Array{longs}},
		{name: "list without child", dt: arrow.ListOf(arrow.PrimitiveTypes.Int32), length: 1, buffers: []*memory.Buffer{int32Buf(0, 3)}},
		{name: "fixed size list short child", dt: arrow.FixedSizeListOf(2, arrow.PrimitiveTypes.Int32), length: 2, children: []arrow.Array{ints}},
		{name: "struct short child", dt: arrow.StructOf(arrow.Field{Name: "a", Type: arrow.PrimitiveTypes.Int32}), length: 4, children: []arrow.Array{ints}},
		{name: "sparse union bad code", dt: arrow.SparseUnionOf([]arrow.Field{{Name: "i", Type: arrow.PrimitiveTypes.Int32}}, []arrow.UnionTypeCode{3}),
			length: 2, buffers: []*memory.Buffer{buf(3, 4)}, children: []arrow.Array{ints}},
		{name: "dense union offset past child", dt: arrow.DenseUnionOf([]arrow.Field{{Name: "i", Type: arrow.PrimitiveTypes.Int32}}, nil),
			length: 2, buffers: []*memory.Buffer{buf(0, 0), int32Buf(0, 3)}, children: []arrow.Array{ints}},
		{name: "dense union negative offset", dt: arrow.DenseUnionOf([]arrow.Field{{Name: "i", Type: arrow.PrimitiveTypes.Int32}}, nil),
			length: 1, buffers: []*memory.Buffer{buf(0), int32Buf(-1)}, children: []arrow.Array{ints}},
		{name: "negative length", dt: arrow.PrimitiveTypes.Int32, length: -1, buffers: []*memory.Buffer{int32Buf()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := array.Build(tt.dt, tt.length, tt.validity, tt.buffers, tt.children)
			assert.ErrorIs(t, err, arrow.ErrLayout)
		})
	}
}

func TestBuildInvalidValues(t *testing.T) {
	dec := &arrow.Decimal128Type{Precision: 3, Scale: 1}
	raw := make([]byte, 32)
	decimal128.FromI64(1000).PutBytes(raw[16:])

	_, err := array.Build(dec, 2, nil, []*memory.Buffer{memory.NewBufferBytes(raw)}, nil)
	assert.ErrorIs(t, err, arrow.ErrInvalid)

	// a null slot is never checked
	_, err = array.Build(dec, 2, buf(0x01), []*memory.Buffer{memory.NewBufferBytes(raw)}, nil)
	assert.NoError(t, err)

	_, err = array.NewDate64([]arrow.Date64{arrow.MillisecondsPerDay, 12345}, nil)
	assert.ErrorIs(t, err, arrow.ErrInvalid)

	d64, err := array.NewDate64([]arrow.Date64{arrow.MillisecondsPerDay, 12345}, []bool{true, false})
	require.NoError(t, err)
	assert.Equal(t, 1, d64.NullN())
}

func TestBuildNullCount(t *testing.T) {
	arr, err := array.Build(arrow.PrimitiveTypes.Int32, 3, buf(0x05), []*memory.Buffer{int32Buf(1, 2, 3)}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, arr.NullN())
	assert.True(t, arr.IsValid(0))
	assert.True(t, arr.IsNull(1))
	assert.Equal(t, "[1 (null) 3]", arr.String())

	arr, err = array.Build(arrow.Null, 4, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, arr.NullN())
	assert.True(t, arr.IsNull(3))
}

func TestValidateData(t *testing.T) {
	bad := array.NewData(arrow.PrimitiveTypes.Int32, 3, []*memory.Buffer{buf(0x07), int32Buf(1, 2, 3)}, nil, 2, 0)
	assert.ErrorIs(t, array.ValidateData(bad), arrow.ErrLayout)
	assert.ErrorIs(t, array.ValidateLayout(bad), arrow.ErrLayout)

	noBitmap := array.NewData(arrow.PrimitiveTypes.Int32, 3, []*memory.Buffer{nil, int32Buf(1, 2, 3)}, nil, 1, 0)
	assert.ErrorIs(t, array.ValidateData(noBitmap), arrow.ErrLayout)

	good := array.NewData(arrow.PrimitiveTypes.Int32, 2, []*memory.Buffer{buf(0x05), int32Buf(1, 2, 3)}, nil, 1, 1)
	assert.NoError(t, array.ValidateData(good))
}

func TestSliceIsZeroCopy(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())

	values := memory.NewAllocatedBuffer(mem, 8*4)
	copy(values.Bytes(), arrow.GetBytes([]int32{0, 1, 2, 3, 4, 5, 6, 7}))
	validity := memory.NewAllocatedBuffer(mem, 1)
	validity.Bytes()[0] = 0xef

	arr, err := array.Build(arrow.PrimitiveTypes.Int32, 8, validity, []*memory.Buffer{values}, nil)
	require.NoError(t, err)

	scope := memory.NewCheckedAllocatorScope(mem)
	slice, err := array.Slice(arr, 2, 4)
	require.NoError(t, err)
	scope.CheckNoAllocations(t)
	scope.CheckSize(t)

	sl := slice.(*array.Int32)
	assert.Equal(t, []int32{2, 3, 4, 5}, sl.Values())
	assert.Equal(t, 1, sl.NullN())
	assert.True(t, sl.IsNull(2))
	assert.Same(t, values, sl.Data().Buffers()[1])
	assert.Equal(t, 2, sl.Data().Offset())

	nested, err := array.Slice(slice, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []int32{3, 4}, nested.(*array.Int32).Values())
	assert.Equal(t, 3, nested.Data().Offset())
}

func TestSliceOutOfRange(t *testing.T) {
	arr := array.NewInt64([]int64{1, 2, 3}, nil)
	for _, tc := range []struct{ off, n int }{{-1, 1}, {0, 4}, {2, 2}, {4, 0}, {1, -1}} {
		_, err := array.Slice(arr, tc.off, tc.n)
		assert.ErrorIs(t, err, arrow.ErrIndex, "slice(%d, %d)", tc.off, tc.n)
	}

	empty, err := array.Slice(arr, 3, 0)
	require.NoError(t, err)
	assert.Zero(t, empty.Len())

	assert.Panics(t, func() { array.NewSlice(arr, 2, 1) })
}

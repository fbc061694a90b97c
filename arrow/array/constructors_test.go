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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitiveConstructors(t *testing.T) {
	b := array.NewBoolean([]bool{true, false, true}, []bool{true, true, false})
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, 1, b.NullN())
	assert.True(t, b.Value(0))
	assert.False(t, b.Value(1))
	assert.Equal(t, "[true false (null)]", b.String())

	u8 := array.NewUint8([]uint8{1, 2, 3}, nil)
	assert.Equal(t, []uint8{1, 2, 3}, u8.Values())
	assert.Zero(t, u8.NullN())
	assert.Nil(t, u8.NullBitmapBytes())

	f64 := array.NewFloat64([]float64{1.5, 2.5}, []bool{false, true})
	assert.True(t, f64.IsNull(0))
	assert.Equal(t, 2.5, f64.Value(1))

	assert.Panics(t, func() { array.NewInt16([]int16{1}, []bool{true, false}) })
}

func TestNewNumericTemporal(t *testing.T) {
	ts, err := array.NewNumeric(arrow.FixedWidthTypes.Timestamp_s, []arrow.Timestamp{1609632000}, nil)
	require.NoError(t, err)
	assert.Equal(t, "2021-01-03 00:00:00Z", ts.ValueStr(0))

	_, err = array.NewNumeric(arrow.FixedWidthTypes.Timestamp_s, []int32{1}, nil)
	assert.ErrorIs(t, err, arrow.ErrType)

	_, err = array.NewNumeric(arrow.PrimitiveTypes.Int64, []arrow.Timestamp{1}, nil)
	assert.ErrorIs(t, err, arrow.ErrType)

	d32 := array.NewDate32([]arrow.Date32{18630}, nil)
	assert.Equal(t, "2021-01-03", d32.ValueStr(0))
}

func TestVarWidthConstructors(t *testing.T) {
	s := array.NewString([]string{"a", "", "ccc"}, []bool{true, false, true})
	assert.Equal(t, "a", s.Value(0))
	assert.True(t, s.IsNull(1))
	assert.Equal(t, "ccc", s.Value(2))
	assert.Equal(t, []int32{0, 1, 1, 4}, s.ValueOffsets())

	ls := array.NewLargeString([]string{"xy", "z"}, nil)
	assert.Equal(t, []int64{0, 2, 3}, ls.ValueOffsets())
	assert.Equal(t, "z", ls.Value(1))

	bin := array.NewBinary([][]byte{{1, 2}, nil, {3}}, nil)
	assert.Equal(t, []byte{1, 2}, bin.Value(0))
	assert.Empty(t, bin.Value(1))

	lb := array.NewLargeBinary([][]byte{{9}}, nil)
	assert.Equal(t, []byte{9}, lb.Value(0))
}

func TestFixedSizeBinaryConstructor(t *testing.T) {
	dt := &arrow.FixedSizeBinaryType{ByteWidth: 2}
	arr, err := array.NewFixedSizeBinary(dt, [][]byte{{1, 2}, nil, {5, 6}}, []bool{true, false, true})
	require.NoError(t, err)
	assert.Equal(t, []byte{5, 6}, arr.Value(2))
	assert.True(t, arr.IsNull(1))

	_, err = array.NewFixedSizeBinary(dt, [][]byte{{1, 2, 3}}, nil)
	assert.ErrorIs(t, err, arrow.ErrInvalid)
}

func TestDecimal128Constructor(t *testing.T) {
	dt := &arrow.Decimal128Type{Precision: 5, Scale: 2}
	arr, err := array.NewDecimal128(dt, []decimal128.Num{decimal128.FromI64(12345), decimal128.FromI64(-1)}, nil)
	require.NoError(t, err)
	assert.Equal(t, "123.45", arr.ValueStr(0))
	assert.Equal(t, "-0.01", arr.ValueStr(1))

	_, err = array.NewDecimal128(dt, []decimal128.Num{decimal128.FromI64(123456)}, nil)
	assert.ErrorIs(t, err, arrow.ErrInvalid)
}

func TestListConstructors(t *testing.T) {
	values := array.NewInt32([]int32{1, 2, 3, 4, 5}, nil)

	l, err := array.NewListFromArrays([]int32{0, 2, 2, 5}, values, []bool{true, false, true})
	require.NoError(t, err)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, "[[1 2] (null) [3 4 5]]", l.String())
	assert.Equal(t, []int32{0, 2, 2, 5}, l.Offsets())

	ll, err := array.NewLargeListFromArrays([]int64{0, 5}, values, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, ll.ValueSlice(0).Len())

	_, err = array.NewListFromArrays([]int32{0, 6}, values, nil)
	assert.ErrorIs(t, err, arrow.ErrLayout)

	_, err = array.NewListFromArrays(nil, values, nil)
	assert.ErrorIs(t, err, arrow.ErrLayout)

	fsl, err := array.NewFixedSizeListFromArrays(2, array.NewInt32([]int32{1, 2, 3, 4}, nil), nil)
	require.NoError(t, err)
	assert.Equal(t, "[[1 2] [3 4]]", fsl.String())

	_, err = array.NewFixedSizeListFromArrays(2, values, nil)
	assert.ErrorIs(t, err, arrow.ErrLayout)

	_, err = array.NewFixedSizeListFromArrays(0, values, nil)
	assert.ErrorIs(t, err, arrow.ErrType)
}

func TestStructConstructor(t *testing.T) {
	fields := []arrow.Field{
		{Name: "x", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
		{Name: "y", Type: arrow.BinaryTypes.String, Nullable: true},
	}
	s, err := array.NewStructFromArrays(fields, []arrow.Array{
		array.NewInt64([]int64{1, 2}, nil),
		array.NewString([]string{"a", "b"}, nil),
	}, []bool{true, false})
	require.NoError(t, err)
	assert.Equal(t, 2, s.NumField())
	assert.True(t, s.IsNull(1))
	y, ok := s.FieldByName("y")
	require.True(t, ok)
	assert.Equal(t, "a", y.(*array.String).Value(0))

	_, err = array.NewStructFromArrays(fields, []arrow.Array{
		array.NewInt64([]int64{1, 2}, nil),
		array.NewString([]string{"a"}, nil),
	}, nil)
	assert.ErrorIs(t, err, arrow.ErrLayout)

	_, err = array.NewStructFromArrays(fields[:1], []arrow.Array{array.NewString([]string{"a"}, nil)}, nil)
	assert.ErrorIs(t, err, arrow.ErrLayout)

	_, err = array.NewStructFromArrays([]arrow.Field{fields[0], fields[0]}, nil, nil)
	assert.ErrorIs(t, err, arrow.ErrType)
}

func TestMakeArrayOfNull(t *testing.T) {
	fields := []arrow.Field{
		{Name: "i", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
		{Name: "s", Type: arrow.BinaryTypes.String, Nullable: true},
	}
	for _, dt := range []arrow.DataType{
		arrow.Null,
		arrow.FixedWidthTypes.Boolean,
		arrow.PrimitiveTypes.Float64,
		arrow.FixedWidthTypes.MonthDayNanoInterval,
		&arrow.FixedSizeBinaryType{ByteWidth: 3},
		arrow.BinaryTypes.LargeString,
		arrow.ListOf(arrow.PrimitiveTypes.Int8),
		arrow.LargeListOf(arrow.BinaryTypes.Binary),
		arrow.FixedSizeListOf(2, arrow.PrimitiveTypes.Uint16),
		arrow.StructOf(fields...),
		arrow.SparseUnionOf(fields, []arrow.UnionTypeCode{4, 2}),
		arrow.DenseUnionOf(fields, []arrow.UnionTypeCode{4, 2}),
	} {
		t.Run(dt.String(), func(t *testing.T) {
			for _, n := range []int{0, 1, 9} {
				arr, err := array.MakeArrayOfNull(dt, n)
				require.NoError(t, err)
				assert.True(t, arrow.TypeEqual(dt, arr.DataType()))
				assert.Equal(t, n, arr.Len())
				require.NoError(t, array.ValidateData(arr.Data()))
				for i := 0; i < n; i++ {
					assert.Nil(t, array.GetValue(arr, i), "slot %d", i)
				}
			}
		})
	}

	_, err := array.MakeArrayOfNull(arrow.SparseUnionOf(nil, nil), 1)
	assert.Error(t, err)
}

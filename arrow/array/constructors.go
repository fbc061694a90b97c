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

package array

import (
	"fmt"
	"strconv"

	"github.com/arrowfixtures/feather/arrow"
	"github.com/arrowfixtures/feather/arrow/bitutil"
	"github.com/arrowfixtures/feather/arrow/decimal128"
	"github.com/arrowfixtures/feather/arrow/float16"
	"github.com/arrowfixtures/feather/arrow/memory"
)

// validityFrom packs valid into a bitmap. A nil or all-true valid yields a
// nil buffer.
func validityFrom(valid []bool, n int) *memory.Buffer {
	if len(valid) == 0 {
		return nil
	}
	if len(valid) != n {
		panic(fmt.Sprintf("arrow/array: %d validity flags for %d values", len(valid), n))
	}
	for _, v := range valid {
		if !v {
			return memory.NewBufferBytes(bitutil.BitmapFromBools(valid))
		}
	}
	return nil
}

func mustBuild(dt arrow.DataType, length int, validity *memory.Buffer, buffers []*memory.Buffer, children []arrow.Array) arrow.Array {
	arr, err := Build(dt, length, validity, buffers, children)
	if err != nil {
		panic(err)
	}
	return arr
}

// NewBoolean returns a boolean array of vals. valid may be nil, otherwise
// it must have one flag per value.
func NewBoolean(vals, valid []bool) *Boolean {
	data := memory.NewBufferBytes(bitutil.BitmapFromBools(vals))
	return mustBuild(arrow.FixedWidthTypes.Boolean, len(vals), validityFrom(valid, len(vals)), []*memory.Buffer{data}, nil).(*Boolean)
}

// NewNumeric returns an array of type dt holding vals. dt must be a fixed
// width type whose values are stored as T.
func NewNumeric[T arrow.NumericType](dt arrow.DataType, vals []T, valid []bool) (*Numeric[T], error) {
	fw, ok := storageType(dt).(arrow.FixedWidthDataType)
	if !ok || fw.Bytes() != arrow.SizeOf[T]() || dt.ID() == arrow.BOOL {
		return nil, fmt.Errorf("arrow/array: %s cannot hold %d-byte values: %w", dt, arrow.SizeOf[T](), arrow.ErrType)
	}
	buf := make([]T, len(vals))
	copy(buf, vals)
	arr, err := Build(dt, len(vals), validityFrom(valid, len(vals)), []*memory.Buffer{memory.NewBufferBytes(arrow.GetBytes(buf))}, nil)
	if err != nil {
		return nil, err
	}
	num, ok := arr.(*Numeric[T])
	if !ok {
		return nil, fmt.Errorf("arrow/array: %s is not stored as %T: %w", dt, vals, arrow.ErrType)
	}
	return num, nil
}

func mustNumeric[T arrow.NumericType](dt arrow.DataType, vals []T, valid []bool) *Numeric[T] {
	arr, err := NewNumeric(dt, vals, valid)
	if err != nil {
		panic(err)
	}
	return arr
}

func NewInt8(vals []int8, valid []bool) *Int8 {
	return mustNumeric(arrow.PrimitiveTypes.Int8, vals, valid)
}

func NewInt16(vals []int16, valid []bool) *Int16 {
	return mustNumeric(arrow.PrimitiveTypes.Int16, vals, valid)
}

func NewInt32(vals []int32, valid []bool) *Int32 {
	return mustNumeric(arrow.PrimitiveTypes.Int32, vals, valid)
}

func NewInt64(vals []int64, valid []bool) *Int64 {
	return mustNumeric(arrow.PrimitiveTypes.Int64, vals, valid)
}

func NewUint8(vals []uint8, valid []bool) *Uint8 {
	return mustNumeric(arrow.PrimitiveTypes.Uint8, vals, valid)
}

func NewUint16(vals []uint16, valid []bool) *Uint16 {
	return mustNumeric(arrow.PrimitiveTypes.Uint16, vals, valid)
}

func NewUint32(vals []uint32, valid []bool) *Uint32 {
	return mustNumeric(arrow.PrimitiveTypes.Uint32, vals, valid)
}

func NewUint64(vals []uint64, valid []bool) *Uint64 {
	return mustNumeric(arrow.PrimitiveTypes.Uint64, vals, valid)
}

func NewFloat16(vals []float16.Num, valid []bool) *Float16 {
	return mustNumeric(arrow.FixedWidthTypes.Float16, vals, valid)
}

func NewFloat32(vals []float32, valid []bool) *Float32 {
	return mustNumeric(arrow.PrimitiveTypes.Float32, vals, valid)
}

func NewFloat64(vals []float64, valid []bool) *Float64 {
	return mustNumeric(arrow.PrimitiveTypes.Float64, vals, valid)
}

func NewDate32(vals []arrow.Date32, valid []bool) *Date32 {
	return mustNumeric(arrow.PrimitiveTypes.Date32, vals, valid)
}

func NewMonthInterval(vals []arrow.MonthInterval, valid []bool) *MonthInterval {
	return mustNumeric(arrow.FixedWidthTypes.MonthInterval, vals, valid)
}

// NewDate64 fails with arrow.ErrInvalid when a valid value is not a whole
// number of days.
func NewDate64(vals []arrow.Date64, valid []bool) (*Date64, error) {
	return NewNumeric(arrow.PrimitiveTypes.Date64, vals, valid)
}

// NewDecimal128 returns a decimal array of type dt. Valid values that do
// not fit the precision of dt fail with arrow.ErrInvalid.
func NewDecimal128(dt *arrow.Decimal128Type, vals []decimal128.Num, valid []bool) (*Decimal128, error) {
	raw := make([]byte, 16*len(vals))
	for i, v := range vals {
		v.PutBytes(raw[16*i:])
	}
	arr, err := Build(dt, len(vals), validityFrom(valid, len(vals)), []*memory.Buffer{memory.NewBufferBytes(raw)}, nil)
	if err != nil {
		return nil, err
	}
	return arr.(*Decimal128), nil
}

func varBuffers[O arrow.OffsetType](vals [][]byte) []*memory.Buffer {
	offsets := make([]O, len(vals)+1)
	size := 0
	for i, v := range vals {
		size += len(v)
		offsets[i+1] = O(size)
	}
	data := make([]byte, 0, size)
	for _, v := range vals {
		data = append(data, v...)
	}
	return []*memory.Buffer{memory.NewBufferBytes(arrow.GetBytes(offsets)), memory.NewBufferBytes(data)}
}

func stringsAsBytes(vals []string) [][]byte {
	out := make([][]byte, len(vals))
	for i, v := range vals {
		out[i] = []byte(v)
	}
	return out
}

func NewBinary(vals [][]byte, valid []bool) *Binary {
	return mustBuild(arrow.BinaryTypes.Binary, len(vals), validityFrom(valid, len(vals)), varBuffers[int32](vals), nil).(*Binary)
}

func NewLargeBinary(vals [][]byte, valid []bool) *LargeBinary {
	return mustBuild(arrow.BinaryTypes.LargeBinary, len(vals), validityFrom(valid, len(vals)), varBuffers[int64](vals), nil).(*LargeBinary)
}

func NewString(vals []string, valid []bool) *String {
	return mustBuild(arrow.BinaryTypes.String, len(vals), validityFrom(valid, len(vals)), varBuffers[int32](stringsAsBytes(vals)), nil).(*String)
}

func NewLargeString(vals []string, valid []bool) *LargeString {
	return mustBuild(arrow.BinaryTypes.LargeString, len(vals), validityFrom(valid, len(vals)), varBuffers[int64](stringsAsBytes(vals)), nil).(*LargeString)
}

// NewFixedSizeBinary returns an array of type dt. Null slots may hold nil;
// every other value must be exactly dt.ByteWidth bytes.
func NewFixedSizeBinary(dt *arrow.FixedSizeBinaryType, vals [][]byte, valid []bool) (*FixedSizeBinary, error) {
	raw := make([]byte, dt.ByteWidth*len(vals))
	for i, v := range vals {
		if len(v) == 0 && len(valid) > 0 && !valid[i] {
			continue
		}
		if len(v) != dt.ByteWidth {
			return nil, fmt.Errorf("arrow/array: value %d has %d bytes, %s needs %d: %w", i, len(v), dt, dt.ByteWidth, arrow.ErrInvalid)
		}
		copy(raw[i*dt.ByteWidth:], v)
	}
	arr, err := Build(dt, len(vals), validityFrom(valid, len(vals)), []*memory.Buffer{memory.NewBufferBytes(raw)}, nil)
	if err != nil {
		return nil, err
	}
	return arr.(*FixedSizeBinary), nil
}

// NewListFromArrays returns a list array whose slot i holds
// values[offsets[i]:offsets[i+1]].
func NewListFromArrays(offsets []int32, values arrow.Array, valid []bool) (*List, error) {
	arr, err := listFromArrays(arrow.ListOf(values.DataType()), offsets, values, valid)
	if err != nil {
		return nil, err
	}
	return arr.(*List), nil
}

func NewLargeListFromArrays(offsets []int64, values arrow.Array, valid []bool) (*LargeList, error) {
	arr, err := listFromArrays(arrow.LargeListOf(values.DataType()), offsets, values, valid)
	if err != nil {
		return nil, err
	}
	return arr.(*LargeList), nil
}

func listFromArrays[O arrow.OffsetType](dt arrow.DataType, offsets []O, values arrow.Array, valid []bool) (arrow.Array, error) {
	n := len(offsets) - 1
	if n < 0 {
		return nil, layoutErrorf("list offsets must hold at least one entry")
	}
	if len(valid) != 0 && len(valid) != n {
		return nil, layoutErrorf("%d validity flags for %d lists", len(valid), n)
	}
	buf := make([]O, len(offsets))
	copy(buf, offsets)
	return Build(dt, n, validityFrom(valid, n), []*memory.Buffer{memory.NewBufferBytes(arrow.GetBytes(buf))}, []arrow.Array{values})
}

// NewFixedSizeListFromArrays splits values into lists of n elements.
func NewFixedSizeListFromArrays(n int32, values arrow.Array, valid []bool) (*FixedSizeList, error) {
	dt, err := arrow.NewFixedSizeListType(n, values.DataType())
	if err != nil {
		return nil, err
	}
	if values.Len()%int(n) != 0 {
		return nil, layoutErrorf("%d values do not split into lists of %d", values.Len(), n)
	}
	length := values.Len() / int(n)
	if len(valid) != 0 && len(valid) != length {
		return nil, layoutErrorf("%d validity flags for %d lists", len(valid), length)
	}
	arr, err := Build(dt, length, validityFrom(valid, length), nil, []arrow.Array{values})
	if err != nil {
		return nil, err
	}
	return arr.(*FixedSizeList), nil
}

// NewStructFromArrays returns a struct array with one field per child.
// Field types must match the child types.
func NewStructFromArrays(fields []arrow.Field, children []arrow.Array, valid []bool) (*Struct, error) {
	dt, err := arrow.NewStructType(fields...)
	if err != nil {
		return nil, err
	}
	length := len(valid)
	if len(children) > 0 {
		length = children[0].Len()
	}
	for i, c := range children {
		if c.Len() != length {
			return nil, layoutErrorf("struct field %d has length %d, expected %d", i, c.Len(), length)
		}
	}
	if len(valid) != 0 && len(valid) != length {
		return nil, layoutErrorf("%d validity flags for %d structs", len(valid), length)
	}
	arr, err := Build(dt, length, validityFrom(valid, length), nil, children)
	if err != nil {
		return nil, err
	}
	return arr.(*Struct), nil
}

func unionFields(fields []arrow.Field, children []arrow.Array) []arrow.Field {
	if fields != nil {
		return fields
	}
	fields = make([]arrow.Field, len(children))
	for i, c := range children {
		fields[i] = arrow.Field{Name: strconv.Itoa(i), Type: c.DataType(), Nullable: true}
	}
	return fields
}

// NewSparseUnionFromArrays returns a sparse union selecting, for slot i,
// the child whose type code is typeIDs[i]. Nil fields are named after the
// child position; nil codes number the children 0..n-1.
func NewSparseUnionFromArrays(typeIDs []arrow.UnionTypeCode, children []arrow.Array, fields []arrow.Field, codes []arrow.UnionTypeCode) (*SparseUnion, error) {
	dt, err := arrow.NewSparseUnionType(unionFields(fields, children), codes)
	if err != nil {
		return nil, err
	}
	ids := append([]arrow.UnionTypeCode(nil), typeIDs...)
	arr, err := Build(dt, len(ids), nil, []*memory.Buffer{memory.NewBufferBytes(arrow.GetBytes(ids))}, children)
	if err != nil {
		return nil, err
	}
	return arr.(*SparseUnion), nil
}

// NewDenseUnionFromArrays returns a dense union whose slot i holds
// value offsets[i] of the child with type code typeIDs[i].
func NewDenseUnionFromArrays(typeIDs []arrow.UnionTypeCode, offsets []int32, children []arrow.Array, fields []arrow.Field, codes []arrow.UnionTypeCode) (*DenseUnion, error) {
	dt, err := arrow.NewDenseUnionType(unionFields(fields, children), codes)
	if err != nil {
		return nil, err
	}
	if len(offsets) != len(typeIDs) {
		return nil, layoutErrorf("%d offsets for %d type ids", len(offsets), len(typeIDs))
	}
	ids := append([]arrow.UnionTypeCode(nil), typeIDs...)
	offs := append([]int32(nil), offsets...)
	bufs := []*memory.Buffer{memory.NewBufferBytes(arrow.GetBytes(ids)), memory.NewBufferBytes(arrow.GetBytes(offs))}
	arr, err := Build(dt, len(ids), nil, bufs, children)
	if err != nil {
		return nil, err
	}
	return arr.(*DenseUnion), nil
}

// MakeArrayOfNull returns an array of type dt whose length slots are all
// null. Unions have no validity bitmap of their own: every slot selects
// the first child, which is null there.
func MakeArrayOfNull(dt arrow.DataType, length int) (arrow.Array, error) {
	zeros := func(n int) *memory.Buffer { return memory.NewBufferBytes(make([]byte, n)) }
	var validity *memory.Buffer
	if length > 0 {
		validity = zeros(int(bitutil.BytesForBits(int64(length))))
	}

	switch st := storageType(dt).(type) {
	case *arrow.NullType:
		return Build(dt, length, nil, nil, nil)
	case *arrow.BooleanType:
		return Build(dt, length, validity, []*memory.Buffer{zeros(int(bitutil.BytesForBits(int64(length))))}, nil)
	case arrow.FixedWidthDataType:
		return Build(dt, length, validity, []*memory.Buffer{zeros(length * st.Bytes())}, nil)
	case *arrow.BinaryType, *arrow.StringType:
		return Build(dt, length, validity, []*memory.Buffer{zeros(4 * (length + 1)), zeros(0)}, nil)
	case *arrow.LargeBinaryType, *arrow.LargeStringType:
		return Build(dt, length, validity, []*memory.Buffer{zeros(8 * (length + 1)), zeros(0)}, nil)
	case *arrow.ListType:
		return nullList(dt, st.Elem(), length, validity, zeros(4*(length+1)))
	case *arrow.LargeListType:
		return nullList(dt, st.Elem(), length, validity, zeros(8*(length+1)))
	case *arrow.FixedSizeListType:
		child, err := MakeArrayOfNull(st.Elem(), length*int(st.Len()))
		if err != nil {
			return nil, err
		}
		return Build(dt, length, validity, nil, []arrow.Array{child})
	case *arrow.StructType:
		children := make([]arrow.Array, st.NumFields())
		for i, f := range st.Fields() {
			child, err := MakeArrayOfNull(f.Type, length)
			if err != nil {
				return nil, err
			}
			children[i] = child
		}
		return Build(dt, length, validity, nil, children)
	case arrow.UnionType:
		return nullUnion(dt, st, length)
	}
	return nil, fmt.Errorf("arrow/array: no null array for %s: %w", dt, arrow.ErrNotImplemented)
}

func nullList(dt, elem arrow.DataType, length int, validity, offsets *memory.Buffer) (arrow.Array, error) {
	child, err := MakeArrayOfNull(elem, 0)
	if err != nil {
		return nil, err
	}
	return Build(dt, length, validity, []*memory.Buffer{offsets}, []arrow.Array{child})
}

func nullUnion(dt arrow.DataType, st arrow.UnionType, length int) (arrow.Array, error) {
	fields := st.Fields()
	if len(fields) == 0 {
		if length > 0 {
			return nil, layoutErrorf("union without children cannot hold %d values", length)
		}
		return Build(dt, 0, nil, unionBuffers(st.Mode(), nil, nil), nil)
	}

	ids := make([]arrow.UnionTypeCode, length)
	for i := range ids {
		ids[i] = st.TypeCodes()[0]
	}
	var offsets []int32
	if st.Mode() == arrow.DenseMode {
		offsets = make([]int32, length)
		for i := range offsets {
			offsets[i] = int32(i)
		}
	}

	children := make([]arrow.Array, len(fields))
	for i, f := range fields {
		n := length
		if st.Mode() == arrow.DenseMode && i > 0 {
			n = 0
		}
		child, err := MakeArrayOfNull(f.Type, n)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	return Build(dt, length, nil, unionBuffers(st.Mode(), ids, offsets), children)
}

func unionBuffers(mode arrow.UnionMode, ids []arrow.UnionTypeCode, offsets []int32) []*memory.Buffer {
	bufs := []*memory.Buffer{memory.NewBufferBytes(arrow.GetBytes(ids))}
	if mode == arrow.DenseMode {
		bufs = append(bufs, memory.NewBufferBytes(arrow.GetBytes(offsets)))
	}
	return bufs
}

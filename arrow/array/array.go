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

	"github.com/arrowfixtures/feather/arrow"
	"github.com/arrowfixtures/feather/arrow/bitutil"
	"github.com/arrowfixtures/feather/arrow/float16"
)

// array is the base of every concrete array type.
type array struct {
	data            *Data
	nullBitmapBytes []byte
}

// DataType returns the type metadata for this instance.
func (a *array) DataType() arrow.DataType { return a.data.dtype }

// NullN returns the number of null values in the array.
func (a *array) NullN() int { return a.data.nulls }

// NullBitmapBytes returns a byte slice of the validity bitmap.
func (a *array) NullBitmapBytes() []byte { return a.nullBitmapBytes }

func (a *array) Data() arrow.ArrayData { return a.data }

// Len returns the number of elements in the array.
func (a *array) Len() int { return a.data.length }

// IsNull returns true if value at index is null.
// NOTE: IsNull will panic if NullBitmapBytes is not empty and 0 > i ≥ Len.
func (a *array) IsNull(i int) bool {
	return len(a.nullBitmapBytes) != 0 && bitutil.BitIsNotSet(a.nullBitmapBytes, a.data.offset+i)
}

// IsValid returns true if value at index is not null.
// NOTE: IsValid will panic if NullBitmapBytes is not empty and 0 > i ≥ Len.
func (a *array) IsValid(i int) bool {
	return len(a.nullBitmapBytes) == 0 || bitutil.BitIsSet(a.nullBitmapBytes, a.data.offset+i)
}

func (a *array) setData(data *Data) {
	a.nullBitmapBytes = nil
	if arrow.HasValidityBitmap(storageType(data.dtype).ID()) && len(data.buffers) > 0 && data.nulls > 0 {
		a.nullBitmapBytes = data.buffers[0].Bytes()
	}
	a.data = data
}

// Offset returns the offset of the array into its buffers.
func (a *array) Offset() int { return a.data.Offset() }

type arrayConstructorFn func(arrow.ArrayData) arrow.Array

var makeArrayFn [arrow.INTERVAL_MONTH_DAY_NANO + 1]arrayConstructorFn

func invalidDataType(data arrow.ArrayData) arrow.Array {
	panic("invalid data type: " + data.DataType().ID().String())
}

// MakeFromData constructs a strongly-typed array instance from generic Data.
// The data is trusted: use ValidateData first for untrusted input.
func MakeFromData(data arrow.ArrayData) arrow.Array {
	id := data.DataType().ID()
	if id < 0 || int(id) >= len(makeArrayFn) || makeArrayFn[id] == nil {
		return invalidDataType(data)
	}
	return makeArrayFn[id](data)
}

// NewSlice constructs a zero-copy slice of the array with the indicated
// indices i and j, corresponding to array[i:j].
// The returned array shares the buffers of the input array.
//
// NewSlice panics if the slice is outside the valid range of the input array.
// NewSlice panics if j < i.
func NewSlice(arr arrow.Array, i, j int64) arrow.Array {
	return MakeFromData(NewSliceData(arr.Data(), i, j))
}

// Slice returns the length values of arr starting at offset without copying
// any buffer. Ranges outside the array fail with arrow.ErrIndex.
func Slice(arr arrow.Array, offset, length int) (arrow.Array, error) {
	if offset < 0 || length < 0 || offset > arr.Len() || length > arr.Len()-offset {
		return nil, fmt.Errorf("arrow/array: slice [%d, %d+%d) of array of length %d: %w",
			offset, offset, length, arr.Len(), arrow.ErrIndex)
	}
	return NewSlice(arr, int64(offset), int64(offset+length)), nil
}

type arraymaker interface {
	setData(*Data)
}

var (
	_ arraymaker = (*Null)(nil)
	_ arraymaker = (*Int64)(nil)
	_ arraymaker = (*ExtensionArrayBase)(nil)
)

func makeExtension(data arrow.ArrayData) arrow.Array {
	return NewExtensionData(data)
}

func init() {
	makeArrayFn = [...]arrayConstructorFn{
		arrow.NULL:                    func(data arrow.ArrayData) arrow.Array { return NewNullData(data) },
		arrow.BOOL:                    func(data arrow.ArrayData) arrow.Array { return NewBooleanData(data) },
		arrow.UINT8:                   func(data arrow.ArrayData) arrow.Array { return NewNumericData[uint8](data) },
		arrow.INT8:                    func(data arrow.ArrayData) arrow.Array { return NewNumericData[int8](data) },
		arrow.UINT16:                  func(data arrow.ArrayData) arrow.Array { return NewNumericData[uint16](data) },
		arrow.INT16:                   func(data arrow.ArrayData) arrow.Array { return NewNumericData[int16](data) },
		arrow.UINT32:                  func(data arrow.ArrayData) arrow.Array { return NewNumericData[uint32](data) },
		arrow.INT32:                   func(data arrow.ArrayData) arrow.Array { return NewNumericData[int32](data) },
		arrow.UINT64:                  func(data arrow.ArrayData) arrow.Array { return NewNumericData[uint64](data) },
		arrow.INT64:                   func(data arrow.ArrayData) arrow.Array { return NewNumericData[int64](data) },
		arrow.FLOAT32:                 func(data arrow.ArrayData) arrow.Array { return NewNumericData[float32](data) },
		arrow.FLOAT64:                 func(data arrow.ArrayData) arrow.Array { return NewNumericData[float64](data) },
		arrow.STRING:                  func(data arrow.ArrayData) arrow.Array { return NewStringData(data) },
		arrow.BINARY:                  func(data arrow.ArrayData) arrow.Array { return NewBinaryData(data) },
		arrow.FIXED_SIZE_BINARY:       func(data arrow.ArrayData) arrow.Array { return NewFixedSizeBinaryData(data) },
		arrow.DATE32:                  func(data arrow.ArrayData) arrow.Array { return NewNumericData[arrow.Date32](data) },
		arrow.DATE64:                  func(data arrow.ArrayData) arrow.Array { return NewNumericData[arrow.Date64](data) },
		arrow.TIMESTAMP:               func(data arrow.ArrayData) arrow.Array { return NewNumericData[arrow.Timestamp](data) },
		arrow.TIME32:                  func(data arrow.ArrayData) arrow.Array { return NewNumericData[arrow.Time32](data) },
		arrow.TIME64:                  func(data arrow.ArrayData) arrow.Array { return NewNumericData[arrow.Time64](data) },
		arrow.DECIMAL128:              func(data arrow.ArrayData) arrow.Array { return NewDecimal128Data(data) },
		arrow.LIST:                    func(data arrow.ArrayData) arrow.Array { return NewListData(data) },
		arrow.STRUCT:                  func(data arrow.ArrayData) arrow.Array { return NewStructData(data) },
		arrow.SPARSE_UNION:            func(data arrow.ArrayData) arrow.Array { return NewSparseUnionData(data) },
		arrow.DENSE_UNION:             func(data arrow.ArrayData) arrow.Array { return NewDenseUnionData(data) },
		arrow.EXTENSION:               makeExtension,
		arrow.FIXED_SIZE_LIST:         func(data arrow.ArrayData) arrow.Array { return NewFixedSizeListData(data) },
		arrow.DURATION:                func(data arrow.ArrayData) arrow.Array { return NewNumericData[arrow.Duration](data) },
		arrow.LARGE_STRING:            func(data arrow.ArrayData) arrow.Array { return NewLargeStringData(data) },
		arrow.LARGE_BINARY:            func(data arrow.ArrayData) arrow.Array { return NewLargeBinaryData(data) },
		arrow.LARGE_LIST:              func(data arrow.ArrayData) arrow.Array { return NewLargeListData(data) },
		arrow.FLOAT16:                 func(data arrow.ArrayData) arrow.Array { return NewNumericData[float16.Num](data) },
		arrow.INTERVAL_MONTHS:         func(data arrow.ArrayData) arrow.Array { return NewNumericData[arrow.MonthInterval](data) },
		arrow.INTERVAL_DAY_TIME:       func(data arrow.ArrayData) arrow.Array { return NewDayTimeIntervalData(data) },
		arrow.INTERVAL_MONTH_DAY_NANO: func(data arrow.ArrayData) arrow.Array { return NewMonthDayNanoIntervalData(data) },
	}
}

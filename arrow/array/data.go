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
	"github.com/arrowfixtures/feather/arrow"
	"github.com/arrowfixtures/feather/arrow/bitutil"
	"github.com/arrowfixtures/feather/arrow/internal/debug"
	"github.com/arrowfixtures/feather/arrow/memory"
)

// Data represents the memory and metadata of an Arrow array: a type, a
// logical length and offset into the buffers, the null count, the buffers
// laid out as the type's DataTypeLayout describes, and one child per
// nested field. Data is never mutated after construction.
type Data struct {
	dtype     arrow.DataType
	nulls     int
	offset    int
	length    int
	buffers   []*memory.Buffer
	childData []arrow.ArrayData
}

// NewData creates a new Data. Buffers and children are shared, not copied.
func NewData(dtype arrow.DataType, length int, buffers []*memory.Buffer, childData []arrow.ArrayData, nulls, offset int) *Data {
	return &Data{
		dtype:     dtype,
		nulls:     nulls,
		length:    length,
		offset:    offset,
		buffers:   buffers,
		childData: childData,
	}
}

func (d *Data) DataType() arrow.DataType  { return d.dtype }
func (d *Data) NullN() int                { return d.nulls }
func (d *Data) Len() int                  { return d.length }
func (d *Data) Offset() int               { return d.offset }
func (d *Data) Buffers() []*memory.Buffer { return d.buffers }
func (d *Data) Children() []arrow.ArrayData {
	return d.childData
}

// storageType unwraps extension types down to their storage.
func storageType(dt arrow.DataType) arrow.DataType {
	for {
		ext, ok := dt.(arrow.ExtensionType)
		if !ok {
			return dt
		}
		dt = ext.StorageType()
	}
}

// countNulls returns the number of unset bits of the validity bitmap over
// [offset, offset+length).
func countNulls(dtype arrow.DataType, validity *memory.Buffer, offset, length int) int {
	switch storageType(dtype).ID() {
	case arrow.NULL:
		return length
	case arrow.SPARSE_UNION, arrow.DENSE_UNION:
		return 0
	}
	if validity == nil || validity.Len() == 0 {
		return 0
	}
	return length - bitutil.CountSetBits(validity.Bytes(), offset, length)
}

// NewSliceData returns a new slice that shares backing data with the input.
// The returned Data slice starts at i and extends j-i elements, such as:
//
//	slice := data[i:j]
//
// The null count of the slice is recomputed from the validity bitmap.
//
// NewSliceData panics if the slice is outside the valid range of the input Data.
// NewSliceData panics if j < i.
func NewSliceData(data arrow.ArrayData, i, j int64) arrow.ArrayData {
	if j > int64(data.Len()) || i > j || data.Offset()+int(i) > data.Offset()+data.Len() {
		panic("arrow/array: index out of range")
	}

	off := data.Offset() + int(i)
	length := int(j - i)
	var validity *memory.Buffer
	if bufs := data.Buffers(); len(bufs) > 0 && arrow.HasValidityBitmap(storageType(data.DataType()).ID()) {
		validity = bufs[0]
	}

	nulls := 0
	switch {
	case i == 0 && int(j) == data.Len():
		nulls = data.NullN()
	default:
		nulls = countNulls(data.DataType(), validity, off, length)
	}

	debug.Assert(nulls <= length, "arrow/array: null count exceeds slice length")
	return &Data{
		dtype:     data.DataType(),
		nulls:     nulls,
		length:    length,
		offset:    off,
		buffers:   data.Buffers(),
		childData: data.Children(),
	}
}

var _ arrow.ArrayData = (*Data)(nil)

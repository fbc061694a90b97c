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
	"encoding/base64"
	"unsafe"

	"github.com/arrowfixtures/feather/arrow"
)

// binaryBase holds the offsets and data shared by the variable-length
// binary and string arrays.
type binaryBase[O arrow.OffsetType] struct {
	array
	valueOffsets []O
	valueBytes   []byte
}

func (a *binaryBase[O]) setData(data *Data) {
	a.array.setData(data)
	a.valueOffsets, a.valueBytes = nil, nil
	if offs := data.buffers[1]; offs != nil && offs.Len() > 0 {
		a.valueOffsets = arrow.GetData[O](offs.Bytes())
	}
	if vals := data.buffers[2]; vals != nil {
		a.valueBytes = vals.Bytes()
	}
}

// ValueBytes returns the bytes of slot i. The result aliases the array data.
func (a *binaryBase[O]) ValueBytes(i int) []byte {
	if i < 0 || i >= a.data.length {
		panic("arrow/array: index out of range")
	}
	idx := a.data.offset + i
	return a.valueBytes[a.valueOffsets[idx]:a.valueOffsets[idx+1]]
}

// ValueOffset returns the start offset of slot i within the data buffer.
func (a *binaryBase[O]) ValueOffset(i int) int {
	return int(a.valueOffsets[a.data.offset+i])
}

func (a *binaryBase[O]) ValueLen(i int) int {
	beg := a.data.offset + i
	return int(a.valueOffsets[beg+1] - a.valueOffsets[beg])
}

// ValueOffsets returns the length+1 offsets of the array, or nil when empty.
func (a *binaryBase[O]) ValueOffsets() []O {
	if a.data.length == 0 || a.valueOffsets == nil {
		return nil
	}
	beg := a.data.offset
	return a.valueOffsets[beg : beg+a.data.length+1]
}

// ValueData returns the whole data buffer, ignoring the array offset.
func (a *binaryBase[O]) ValueData() []byte { return a.valueBytes }

func (a *binaryBase[O]) binaryValueStr(i int) string {
	if a.IsNull(i) {
		return NullValueStr
	}
	return base64.StdEncoding.EncodeToString(a.ValueBytes(i))
}

func (a *binaryBase[O]) binaryMarshalOne(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.ValueBytes(i)
}

func (a *binaryBase[O]) stringValue(i int) string {
	b := a.ValueBytes(i)
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// A type which represents an immutable sequence of variable-length binary strings.
type Binary struct {
	binaryBase[int32]
}

// NewBinaryData constructs a new Binary array from data.
func NewBinaryData(data arrow.ArrayData) *Binary {
	a := &Binary{}
	a.setData(data.(*Data))
	return a
}

// Value returns the slice at index i. This value should not be mutated.
func (a *Binary) Value(i int) []byte                 { return a.ValueBytes(i) }
func (a *Binary) ValueStr(i int) string              { return a.binaryValueStr(i) }
func (a *Binary) GetOneForMarshal(i int) interface{} { return a.binaryMarshalOne(i) }
func (a *Binary) String() string                     { return arrayString(a) }
func (a *Binary) MarshalJSON() ([]byte, error)       { return marshalArray(a) }

// LargeBinary is a Binary with 64-bit offsets.
type LargeBinary struct {
	binaryBase[int64]
}

func NewLargeBinaryData(data arrow.ArrayData) *LargeBinary {
	a := &LargeBinary{}
	a.setData(data.(*Data))
	return a
}

func (a *LargeBinary) Value(i int) []byte                 { return a.ValueBytes(i) }
func (a *LargeBinary) ValueStr(i int) string              { return a.binaryValueStr(i) }
func (a *LargeBinary) GetOneForMarshal(i int) interface{} { return a.binaryMarshalOne(i) }
func (a *LargeBinary) String() string                     { return arrayString(a) }
func (a *LargeBinary) MarshalJSON() ([]byte, error)       { return marshalArray(a) }

// String represents an immutable sequence of variable-length UTF-8 strings.
type String struct {
	binaryBase[int32]
}

// NewStringData constructs a new String array from data.
func NewStringData(data arrow.ArrayData) *String {
	a := &String{}
	a.setData(data.(*Data))
	return a
}

// Value returns the string at index i. The string aliases the array data.
func (a *String) Value(i int) string { return a.stringValue(i) }

func (a *String) ValueStr(i int) string {
	if a.IsNull(i) {
		return NullValueStr
	}
	return a.Value(i)
}

func (a *String) GetOneForMarshal(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}

func (a *String) String() string               { return arrayString(a) }
func (a *String) MarshalJSON() ([]byte, error) { return marshalArray(a) }

// LargeString is a String with 64-bit offsets.
type LargeString struct {
	binaryBase[int64]
}

func NewLargeStringData(data arrow.ArrayData) *LargeString {
	a := &LargeString{}
	a.setData(data.(*Data))
	return a
}

func (a *LargeString) Value(i int) string { return a.stringValue(i) }

func (a *LargeString) ValueStr(i int) string {
	if a.IsNull(i) {
		return NullValueStr
	}
	return a.Value(i)
}

func (a *LargeString) GetOneForMarshal(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}

func (a *LargeString) String() string               { return arrayString(a) }
func (a *LargeString) MarshalJSON() ([]byte, error) { return marshalArray(a) }

var (
	_ arrow.Array = (*Binary)(nil)
	_ arrow.Array = (*LargeBinary)(nil)
	_ arrow.Array = (*String)(nil)
	_ arrow.Array = (*LargeString)(nil)
)

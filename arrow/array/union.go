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
	"strings"

	"github.com/arrowfixtures/feather/arrow"
)

// Union is the interface shared by SparseUnion and DenseUnion. Union arrays
// carry no validity bitmap: a slot is null when the child value it selects
// is null.
type Union interface {
	arrow.Array
	RawTypeCodes() []arrow.UnionTypeCode
	TypeCode(i int) arrow.UnionTypeCode
	ChildID(i int) int
	UnionType() arrow.UnionType
	Mode() arrow.UnionMode
	Field(pos int) arrow.Array
	NumFields() int
	// ChildIndex returns the child id and the index into that child of slot i.
	ChildIndex(i int) (child, idx int)
}

type union struct {
	array

	unionType arrow.UnionType
	typecodes []arrow.UnionTypeCode

	children []arrow.Array
}

func (a *union) NumFields() int             { return len(a.unionType.Fields()) }
func (a *union) Mode() arrow.UnionMode      { return a.unionType.Mode() }
func (a *union) UnionType() arrow.UnionType { return a.unionType }

// RawTypeCodes returns the type codes starting at the array offset.
func (a *union) RawTypeCodes() []arrow.UnionTypeCode {
	if a.data.length == 0 {
		return nil
	}
	return a.typecodes[a.data.offset : a.data.offset+a.data.length]
}

func (a *union) TypeCode(i int) arrow.UnionTypeCode {
	return a.typecodes[i+a.data.offset]
}

func (a *union) ChildID(i int) int {
	return a.unionType.ChildIDs()[a.typecodes[i+a.data.offset]]
}

func (a *union) setData(data *Data) {
	a.array.setData(data)
	a.unionType = storageType(data.dtype).(arrow.UnionType)
	a.typecodes = nil
	if buf := data.buffers[0]; buf != nil && buf.Len() > 0 {
		a.typecodes = arrow.GetData[arrow.UnionTypeCode](buf.Bytes())
	}
}

func (a *union) Field(pos int) (result arrow.Array) {
	if pos < 0 || pos >= len(a.children) {
		return nil
	}
	return a.children[pos]
}

func (a *union) nullCount(u Union) int {
	n := 0
	for i := 0; i < a.data.length; i++ {
		if u.IsNull(i) {
			n++
		}
	}
	return n
}

func (a *union) unionValueStr(u Union, i int) string {
	if u.IsNull(i) {
		return NullValueStr
	}
	child, idx := u.ChildIndex(i)
	f := a.unionType.Fields()[child]
	return fmt.Sprintf("{%s=%s}", f.Name, a.children[child].ValueStr(idx))
}

func (a *union) unionMarshalOne(u Union, i int) interface{} {
	if u.IsNull(i) {
		return nil
	}
	child, idx := u.ChildIndex(i)
	return a.children[child].GetOneForMarshal(idx)
}

func unionString(u Union) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < u.Len(); i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(u.ValueStr(i))
	}
	b.WriteByte(']')
	return b.String()
}

// SparseUnion represents an array where each logical value is taken from
// a single child. A buffer of 8-bit type ids indicates which child a given
// logical value is to be taken from. Every child has the length of the
// union, and slot i of the union reads slot i of the selected child.
type SparseUnion struct {
	union
}

// NewSparseUnionData constructs a SparseUnion array from the given ArrayData object.
func NewSparseUnionData(data arrow.ArrayData) *SparseUnion {
	a := &SparseUnion{}
	a.setData(data.(*Data))
	return a
}

func (a *SparseUnion) setData(data *Data) {
	a.union.setData(data)
	a.children = make([]arrow.Array, len(data.childData))
	for i, child := range data.childData {
		if data.offset != 0 || child.Len() != data.length {
			child = NewSliceData(child, int64(data.offset), int64(data.offset+data.length))
		}
		a.children[i] = MakeFromData(child)
	}
}

func (a *SparseUnion) ChildIndex(i int) (child, idx int) { return a.ChildID(i), i }

func (a *SparseUnion) IsNull(i int) bool {
	return a.children[a.ChildID(i)].IsNull(i)
}

func (a *SparseUnion) IsValid(i int) bool                 { return !a.IsNull(i) }
func (a *SparseUnion) NullN() int                         { return a.nullCount(a) }
func (a *SparseUnion) ValueStr(i int) string              { return a.unionValueStr(a, i) }
func (a *SparseUnion) GetOneForMarshal(i int) interface{} { return a.unionMarshalOne(a, i) }
func (a *SparseUnion) String() string                     { return unionString(a) }
func (a *SparseUnion) MarshalJSON() ([]byte, error)       { return marshalArray(a) }

// DenseUnion represents an array where each logical value is taken from a
// single child, at a specific offset. A buffer of 8-bit type ids indicates
// which child a given logical value is to be taken from and a buffer of
// 32-bit offsets indicating which physical position in the given child
// array has the logical value for that index.
type DenseUnion struct {
	union
	offsets []int32
}

// NewDenseUnionData constructs a DenseUnion array from the given ArrayData object.
func NewDenseUnionData(data arrow.ArrayData) *DenseUnion {
	a := &DenseUnion{}
	a.setData(data.(*Data))
	return a
}

func (a *DenseUnion) setData(data *Data) {
	a.union.setData(data)
	a.offsets = nil
	if buf := data.buffers[1]; buf != nil && buf.Len() > 0 {
		a.offsets = arrow.GetData[int32](buf.Bytes())
	}
	a.children = make([]arrow.Array, len(data.childData))
	for i, child := range data.childData {
		a.children[i] = MakeFromData(child)
	}
}

// ValueOffset returns the index into the selected child of slot i.
func (a *DenseUnion) ValueOffset(i int) int32 { return a.offsets[i+a.data.offset] }

// RawValueOffsets returns the offsets starting at the array offset.
func (a *DenseUnion) RawValueOffsets() []int32 {
	if a.data.length == 0 {
		return nil
	}
	return a.offsets[a.data.offset : a.data.offset+a.data.length]
}

func (a *DenseUnion) ChildIndex(i int) (child, idx int) {
	return a.ChildID(i), int(a.ValueOffset(i))
}

func (a *DenseUnion) IsNull(i int) bool {
	child, idx := a.ChildIndex(i)
	return a.children[child].IsNull(idx)
}

func (a *DenseUnion) IsValid(i int) bool                 { return !a.IsNull(i) }
func (a *DenseUnion) NullN() int                         { return a.nullCount(a) }
func (a *DenseUnion) ValueStr(i int) string              { return a.unionValueStr(a, i) }
func (a *DenseUnion) GetOneForMarshal(i int) interface{} { return a.unionMarshalOne(a, i) }
func (a *DenseUnion) String() string                     { return unionString(a) }
func (a *DenseUnion) MarshalJSON() ([]byte, error)       { return marshalArray(a) }

var (
	_ Union = (*SparseUnion)(nil)
	_ Union = (*DenseUnion)(nil)
)

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
	"strings"

	"github.com/arrowfixtures/feather/arrow"
	"github.com/goccy/go-json"
)

// ListLike is implemented by the list arrays: each slot is a run of the
// child array.
type ListLike interface {
	arrow.Array
	ListValues() arrow.Array
	ValueOffsets(i int) (start, end int64)
	ValueSlice(i int) arrow.Array
}

type listBase[O arrow.OffsetType] struct {
	array
	values  arrow.Array
	offsets []O
}

func (a *listBase[O]) setData(data *Data) {
	a.array.setData(data)
	a.offsets = nil
	if vals := data.buffers[1]; vals != nil && vals.Len() > 0 {
		a.offsets = arrow.GetData[O](vals.Bytes())
	}
	a.values = MakeFromData(data.childData[0])
}

// ListValues returns the whole child array, ignoring the list offset.
func (a *listBase[O]) ListValues() arrow.Array { return a.values }

// ValueOffsets returns the child range of slot i.
func (a *listBase[O]) ValueOffsets(i int) (start, end int64) {
	j := i + a.data.offset
	return int64(a.offsets[j]), int64(a.offsets[j+1])
}

// Offsets returns the length+1 offsets of the array, or nil when empty.
func (a *listBase[O]) Offsets() []O {
	if a.data.length == 0 || a.offsets == nil {
		return nil
	}
	return a.offsets[a.data.offset : a.data.offset+a.data.length+1]
}

// ValueSlice returns the elements of slot i as a zero-copy slice of the
// child array.
func (a *listBase[O]) ValueSlice(i int) arrow.Array {
	beg, end := a.ValueOffsets(i)
	return NewSlice(a.values, beg, end)
}

func (a *listBase[O]) listValueStr(i int) string {
	if a.IsNull(i) {
		return NullValueStr
	}
	return a.ValueSlice(i).String()
}

func (a *listBase[O]) listMarshalOne(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	v, err := json.Marshal(a.ValueSlice(i))
	if err != nil {
		panic(err)
	}
	return json.RawMessage(v)
}

func listString(a ListLike) string {
	o := new(strings.Builder)
	o.WriteString("[")
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			o.WriteString(" ")
		}
		if !a.IsValid(i) {
			o.WriteString(NullValueStr)
			continue
		}
		o.WriteString(a.ValueSlice(i).String())
	}
	o.WriteString("]")
	return o.String()
}

// List represents an immutable sequence of array values.
type List struct {
	listBase[int32]
}

// NewListData returns a new List array value, from data.
func NewListData(data arrow.ArrayData) *List {
	a := &List{}
	a.setData(data.(*Data))
	return a
}

func (a *List) ValueStr(i int) string              { return a.listValueStr(i) }
func (a *List) GetOneForMarshal(i int) interface{} { return a.listMarshalOne(i) }
func (a *List) String() string                     { return listString(a) }
func (a *List) MarshalJSON() ([]byte, error)       { return marshalArray(a) }

// LargeList is a List with 64-bit offsets.
type LargeList struct {
	listBase[int64]
}

// NewLargeListData returns a new LargeList array value, from data.
func NewLargeListData(data arrow.ArrayData) *LargeList {
	a := &LargeList{}
	a.setData(data.(*Data))
	return a
}

func (a *LargeList) ValueStr(i int) string              { return a.listValueStr(i) }
func (a *LargeList) GetOneForMarshal(i int) interface{} { return a.listMarshalOne(i) }
func (a *LargeList) String() string                     { return listString(a) }
func (a *LargeList) MarshalJSON() ([]byte, error)       { return marshalArray(a) }

var (
	_ ListLike = (*List)(nil)
	_ ListLike = (*LargeList)(nil)
)

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
	"github.com/goccy/go-json"
)

// FixedSizeList represents an immutable sequence of N array values.
type FixedSizeList struct {
	array
	n      int32
	values arrow.Array
}

// NewFixedSizeListData returns a new List array value, from data.
func NewFixedSizeListData(data arrow.ArrayData) *FixedSizeList {
	a := &FixedSizeList{}
	a.setData(data.(*Data))
	return a
}

func (a *FixedSizeList) ListValues() arrow.Array { return a.values }

// ValueOffsets returns the child range of slot i.
func (a *FixedSizeList) ValueOffsets(i int) (start, end int64) {
	n := int64(a.n)
	j := int64(i + a.data.offset)
	return j * n, (j + 1) * n
}

func (a *FixedSizeList) ValueSlice(i int) arrow.Array {
	beg, end := a.ValueOffsets(i)
	return NewSlice(a.values, beg, end)
}

func (a *FixedSizeList) setData(data *Data) {
	a.array.setData(data)
	a.n = storageType(data.dtype).(*arrow.FixedSizeListType).Len()
	a.values = MakeFromData(data.childData[0])
}

func (a *FixedSizeList) ValueStr(i int) string {
	if a.IsNull(i) {
		return NullValueStr
	}
	return a.ValueSlice(i).String()
}

func (a *FixedSizeList) String() string { return listString(a) }

func (a *FixedSizeList) GetOneForMarshal(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	v, err := json.Marshal(a.ValueSlice(i))
	if err != nil {
		panic(err)
	}
	return json.RawMessage(v)
}

func (a *FixedSizeList) MarshalJSON() ([]byte, error) { return marshalArray(a) }

var _ ListLike = (*FixedSizeList)(nil)

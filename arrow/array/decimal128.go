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
	"github.com/arrowfixtures/feather/arrow/decimal128"
)

// Decimal128 is a type that represents an immutable sequence of 128-bit decimal values.
type Decimal128 struct {
	array

	values []byte
}

func NewDecimal128Data(data arrow.ArrayData) *Decimal128 {
	a := &Decimal128{}
	a.setData(data.(*Data))
	return a
}

func (a *Decimal128) Value(i int) decimal128.Num {
	j := (a.data.offset + i) * 16
	return decimal128.FromBytes(a.values[j : j+16])
}

func (a *Decimal128) ValueStr(i int) string {
	if a.IsNull(i) {
		return NullValueStr
	}
	return a.Value(i).ToString(a.data.dtype.(*arrow.Decimal128Type).Scale)
}

func (a *Decimal128) String() string { return arrayString(a) }

func (a *Decimal128) setData(data *Data) {
	a.array.setData(data)
	a.values = data.buffers[1].Bytes()
}

func (a *Decimal128) GetOneForMarshal(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.ValueStr(i)
}

func (a *Decimal128) MarshalJSON() ([]byte, error) { return marshalArray(a) }

var _ arrow.Array = (*Decimal128)(nil)

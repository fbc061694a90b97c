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
	"github.com/arrowfixtures/feather/arrow/memory"
)

// Null represents an immutable, degenerate array with no physical storage.
type Null struct {
	array
}

// NewNull returns a new Null array value of size n.
func NewNull(n int) *Null {
	a := &Null{}
	a.setData(NewData(arrow.Null, n, []*memory.Buffer{nil}, nil, n, 0))
	return a
}

// NewNullData returns a new Null array value, from data.
func NewNullData(data arrow.ArrayData) *Null {
	a := &Null{}
	a.setData(data.(*Data))
	return a
}

func (a *Null) NullN() int                         { return a.data.length }
func (a *Null) IsNull(i int) bool                  { return true }
func (a *Null) IsValid(i int) bool                 { return false }
func (a *Null) ValueStr(int) string                { return NullValueStr }
func (a *Null) GetOneForMarshal(i int) interface{} { return nil }
func (a *Null) String() string                     { return arrayString(a) }
func (a *Null) MarshalJSON() ([]byte, error)       { return marshalArray(a) }

var _ arrow.Array = (*Null)(nil)

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
	"bytes"
	"strings"

	"github.com/arrowfixtures/feather/arrow"
	"github.com/goccy/go-json"
)

// Struct represents an ordered sequence of relative types.
type Struct struct {
	array
	fields []arrow.Array
}

// NewStructData returns a new Struct array value from data.
func NewStructData(data arrow.ArrayData) *Struct {
	a := &Struct{}
	a.setData(data.(*Data))
	return a
}

func (a *Struct) NumField() int           { return len(a.fields) }
func (a *Struct) Field(i int) arrow.Array { return a.fields[i] }

// FieldByName returns the child array of the named field.
func (a *Struct) FieldByName(name string) (arrow.Array, bool) {
	idx, ok := storageType(a.DataType()).(*arrow.StructType).FieldIdx(name)
	if !ok {
		return nil, false
	}
	return a.fields[idx], true
}

func (a *Struct) setData(data *Data) {
	a.array.setData(data)
	a.fields = make([]arrow.Array, len(data.childData))
	for i, child := range data.childData {
		if data.offset != 0 || child.Len() != data.length {
			child = NewSliceData(child, int64(data.offset), int64(data.offset+data.length))
		}
		a.fields[i] = MakeFromData(child)
	}
}

func (a *Struct) ValueStr(i int) string {
	if a.IsNull(i) {
		return NullValueStr
	}
	b, err := json.Marshal(a.GetOneForMarshal(i))
	if err != nil {
		panic(err)
	}
	return string(b)
}

func (a *Struct) String() string {
	o := new(strings.Builder)
	o.WriteString("{")
	for i, v := range a.fields {
		if i > 0 {
			o.WriteString(" ")
		}
		o.WriteString(v.String())
	}
	o.WriteString("}")
	return o.String()
}

func (a *Struct) GetOneForMarshal(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	st := storageType(a.DataType()).(*arrow.StructType)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for j, f := range st.Fields() {
		if j > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			panic(err)
		}
		val, err := json.Marshal(a.fields[j].GetOneForMarshal(i))
		if err != nil {
			panic(err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return json.RawMessage(buf.Bytes())
}

func (a *Struct) MarshalJSON() ([]byte, error) { return marshalArray(a) }

var _ arrow.Array = (*Struct)(nil)

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
	"encoding/binary"
	"fmt"

	"github.com/arrowfixtures/feather/arrow"
	"github.com/arrowfixtures/feather/arrow/memory"
)

// DayTimeInterval is an immutable sequence of (days, milliseconds) pairs.
type DayTimeInterval struct {
	array
	values []byte
}

func NewDayTimeIntervalData(data arrow.ArrayData) *DayTimeInterval {
	a := &DayTimeInterval{}
	a.setData(data.(*Data))
	return a
}

func (a *DayTimeInterval) Value(i int) arrow.DayTimeInterval {
	j := (a.data.offset + i) * 8
	return arrow.DayTimeInterval{
		Days:         int32(binary.LittleEndian.Uint32(a.values[j:])),
		Milliseconds: int32(binary.LittleEndian.Uint32(a.values[j+4:])),
	}
}

func (a *DayTimeInterval) ValueStr(i int) string {
	if a.IsNull(i) {
		return NullValueStr
	}
	v := a.Value(i)
	return fmt.Sprintf("%dd%dms", v.Days, v.Milliseconds)
}

func (a *DayTimeInterval) String() string { return arrayString(a) }

func (a *DayTimeInterval) setData(data *Data) {
	a.array.setData(data)
	a.values = nil
	if vals := data.buffers[1]; vals != nil {
		a.values = vals.Bytes()
	}
}

func (a *DayTimeInterval) GetOneForMarshal(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}

func (a *DayTimeInterval) MarshalJSON() ([]byte, error) { return marshalArray(a) }

// MonthDayNanoInterval is an immutable sequence of (months, days,
// nanoseconds) triples.
type MonthDayNanoInterval struct {
	array
	values []byte
}

func NewMonthDayNanoIntervalData(data arrow.ArrayData) *MonthDayNanoInterval {
	a := &MonthDayNanoInterval{}
	a.setData(data.(*Data))
	return a
}

func (a *MonthDayNanoInterval) Value(i int) arrow.MonthDayNanoInterval {
	j := (a.data.offset + i) * 16
	return arrow.MonthDayNanoInterval{
		Months:      int32(binary.LittleEndian.Uint32(a.values[j:])),
		Days:        int32(binary.LittleEndian.Uint32(a.values[j+4:])),
		Nanoseconds: int64(binary.LittleEndian.Uint64(a.values[j+8:])),
	}
}

func (a *MonthDayNanoInterval) ValueStr(i int) string {
	if a.IsNull(i) {
		return NullValueStr
	}
	v := a.Value(i)
	return fmt.Sprintf("%dM%dd%dns", v.Months, v.Days, v.Nanoseconds)
}

func (a *MonthDayNanoInterval) String() string { return arrayString(a) }

func (a *MonthDayNanoInterval) setData(data *Data) {
	a.array.setData(data)
	a.values = nil
	if vals := data.buffers[1]; vals != nil {
		a.values = vals.Bytes()
	}
}

func (a *MonthDayNanoInterval) GetOneForMarshal(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}

func (a *MonthDayNanoInterval) MarshalJSON() ([]byte, error) { return marshalArray(a) }

func NewDayTimeInterval(vals []arrow.DayTimeInterval, valid []bool) *DayTimeInterval {
	raw := make([]byte, 8*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(raw[8*i:], uint32(v.Days))
		binary.LittleEndian.PutUint32(raw[8*i+4:], uint32(v.Milliseconds))
	}
	return mustBuild(arrow.FixedWidthTypes.DayTimeInterval, len(vals), validityFrom(valid, len(vals)),
		[]*memory.Buffer{memory.NewBufferBytes(raw)}, nil).(*DayTimeInterval)
}

func NewMonthDayNanoInterval(vals []arrow.MonthDayNanoInterval, valid []bool) *MonthDayNanoInterval {
	raw := make([]byte, 16*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(raw[16*i:], uint32(v.Months))
		binary.LittleEndian.PutUint32(raw[16*i+4:], uint32(v.Days))
		binary.LittleEndian.PutUint64(raw[16*i+8:], uint64(v.Nanoseconds))
	}
	return mustBuild(arrow.FixedWidthTypes.MonthDayNanoInterval, len(vals), validityFrom(valid, len(vals)),
		[]*memory.Buffer{memory.NewBufferBytes(raw)}, nil).(*MonthDayNanoInterval)
}

var (
	_ arrow.Array = (*DayTimeInterval)(nil)
	_ arrow.Array = (*MonthDayNanoInterval)(nil)
)

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
	"strconv"
	"time"

	"github.com/arrowfixtures/feather/arrow"
	"github.com/arrowfixtures/feather/arrow/float16"
)

// Numeric is an immutable sequence of fixed-width numeric or temporal
// values stored as T.
type Numeric[T arrow.NumericType] struct {
	array
	values []T
}

type (
	Int8          = Numeric[int8]
	Int16         = Numeric[int16]
	Int32         = Numeric[int32]
	Int64         = Numeric[int64]
	Uint8         = Numeric[uint8]
	Uint16        = Numeric[uint16]
	Uint32        = Numeric[uint32]
	Uint64        = Numeric[uint64]
	Float16       = Numeric[float16.Num]
	Float32       = Numeric[float32]
	Float64       = Numeric[float64]
	Date32        = Numeric[arrow.Date32]
	Date64        = Numeric[arrow.Date64]
	Time32        = Numeric[arrow.Time32]
	Time64        = Numeric[arrow.Time64]
	Timestamp     = Numeric[arrow.Timestamp]
	Duration      = Numeric[arrow.Duration]
	MonthInterval = Numeric[arrow.MonthInterval]
)

// NewNumericData returns a new Numeric array value, from data.
func NewNumericData[T arrow.NumericType](data arrow.ArrayData) *Numeric[T] {
	a := &Numeric[T]{}
	a.setData(data.(*Data))
	return a
}

// Value returns the value at the specified index.
func (a *Numeric[T]) Value(i int) T { return a.values[i] }

// Values returns the values, starting at the array offset.
func (a *Numeric[T]) Values() []T { return a.values }

func (a *Numeric[T]) setData(data *Data) {
	a.array.setData(data)
	a.values = nil
	if vals := data.buffers[1]; vals != nil && data.length > 0 {
		beg := data.offset
		end := beg + data.length
		a.values = arrow.GetData[T](vals.Bytes())[beg:end]
	}
}

func (a *Numeric[T]) ValueStr(i int) string {
	if a.IsNull(i) {
		return NullValueStr
	}
	return formatNumeric(a.data.dtype, a.values[i])
}

func (a *Numeric[T]) String() string { return arrayString(a) }

func (a *Numeric[T]) GetOneForMarshal(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	switch v := any(a.values[i]).(type) {
	case arrow.Date32, arrow.Date64, arrow.Time32, arrow.Time64, arrow.Timestamp:
		return formatNumeric(a.data.dtype, v)
	case arrow.Duration:
		return int64(v)
	case arrow.MonthInterval:
		return int32(v)
	case float16.Num:
		return v.Float32()
	}
	return a.values[i]
}

func (a *Numeric[T]) MarshalJSON() ([]byte, error) { return marshalArray(a) }

func timestampLayout(unit arrow.TimeUnit) string {
	switch unit {
	case arrow.Second:
		return "2006-01-02 15:04:05"
	case arrow.Millisecond:
		return "2006-01-02 15:04:05.000"
	case arrow.Microsecond:
		return "2006-01-02 15:04:05.000000"
	}
	return "2006-01-02 15:04:05.000000000"
}

// FormatTimestamp renders v in the type's unit and, when set, its time zone.
func FormatTimestamp(dt *arrow.TimestampType, v arrow.Timestamp) string {
	t := v.ToTime(dt.Unit)
	if dt.TimeZone == "" {
		return t.Format(timestampLayout(dt.Unit))
	}
	if loc, err := arrow.LoadTimeZone(dt.TimeZone); err == nil {
		t = t.In(loc)
	}
	return t.Format(timestampLayout(dt.Unit) + "Z07:00")
}

func formatNumeric(dt arrow.DataType, v any) string {
	switch v := v.(type) {
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float16.Num:
		return v.String()
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case arrow.Date32:
		return v.FormattedString()
	case arrow.Date64:
		return v.FormattedString()
	case arrow.Time32:
		return v.FormattedString(dt.(*arrow.Time32Type).Unit)
	case arrow.Time64:
		return v.FormattedString(dt.(*arrow.Time64Type).Unit)
	case arrow.Timestamp:
		return FormatTimestamp(dt.(*arrow.TimestampType), v)
	case arrow.Duration:
		unit := dt.(*arrow.DurationType).Unit
		return (time.Duration(v) * unit.Multiplier()).String()
	case arrow.MonthInterval:
		return strconv.FormatInt(int64(v), 10) + "M"
	}
	return fmt.Sprint(v)
}

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

	"github.com/arrowfixtures/feather/arrow"
)

// GetValue returns the logical value of slot i, or nil when the slot is
// null. Scalars are returned as their Go value type (bool, int8 ...,
// arrow.Timestamp, decimal128.Num), binary values as []byte, strings as
// string, list slots as a slice of the child array, struct slots as a
// []any with one entry per field and union slots as the value of the
// selected child. Extension arrays yield the value of their storage.
func GetValue(arr arrow.Array, i int) any {
	if arr.IsNull(i) {
		return nil
	}
	switch a := arr.(type) {
	case *Null:
		return nil
	case *Boolean:
		return a.Value(i)
	case *Int8:
		return a.Value(i)
	case *Int16:
		return a.Value(i)
	case *Int32:
		return a.Value(i)
	case *Int64:
		return a.Value(i)
	case *Uint8:
		return a.Value(i)
	case *Uint16:
		return a.Value(i)
	case *Uint32:
		return a.Value(i)
	case *Uint64:
		return a.Value(i)
	case *Float16:
		return a.Value(i)
	case *Float32:
		return a.Value(i)
	case *Float64:
		return a.Value(i)
	case *Date32:
		return a.Value(i)
	case *Date64:
		return a.Value(i)
	case *Time32:
		return a.Value(i)
	case *Time64:
		return a.Value(i)
	case *Timestamp:
		return a.Value(i)
	case *Duration:
		return a.Value(i)
	case *MonthInterval:
		return a.Value(i)
	case *DayTimeInterval:
		return a.Value(i)
	case *MonthDayNanoInterval:
		return a.Value(i)
	case *Decimal128:
		return a.Value(i)
	case *Binary:
		return a.Value(i)
	case *LargeBinary:
		return a.Value(i)
	case *String:
		return a.Value(i)
	case *LargeString:
		return a.Value(i)
	case *FixedSizeBinary:
		return a.Value(i)
	case ListLike:
		return a.ValueSlice(i)
	case *Struct:
		out := make([]any, a.NumField())
		for j := range out {
			out[j] = GetValue(a.Field(j), i)
		}
		return out
	case Union:
		child, idx := a.ChildIndex(i)
		return GetValue(a.Field(child), idx)
	case ExtensionArray:
		return GetValue(a.Storage(), i)
	}
	panic(fmt.Sprintf("arrow/array: GetValue of unsupported array %T", arr))
}

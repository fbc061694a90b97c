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

package array_test

import (
	"math"
	"testing"

	"github.com/arrowfixtures/feather/arrow"
	"github.com/arrowfixtures/feather/arrow/array"
	"github.com/arrowfixtures/feather/arrow/float16"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthIntervalArray(t *testing.T) {
	var (
		want   = []arrow.MonthInterval{1, 2, 3, 4}
		valids = []bool{true, true, false, true}
	)

	arr := array.NewMonthInterval(want, valids)
	if got, want := arr.Len(), len(want); got != want {
		t.Fatalf("invalid len: got=%d, want=%d", got, want)
	}
	if got, want := arr.NullN(), 1; got != want {
		t.Fatalf("invalid nulls: got=%d, want=%d", got, want)
	}
	for i := range want {
		if arr.IsNull(i) != !valids[i] {
			t.Fatalf("arr[%d]-validity: got=%v want=%v", i, !arr.IsNull(i), valids[i])
		}
		if arr.IsValid(i) && arr.Value(i) != want[i] {
			t.Fatalf("arr[%d]: got=%d, want=%d", i, arr.Value(i), want[i])
		}
	}
	assert.Equal(t, "4M", arr.ValueStr(3))
	assert.Equal(t, "[1M 2M (null) 4M]", arr.String())
}

func TestDayTimeIntervalArray(t *testing.T) {
	var (
		want = []arrow.DayTimeInterval{
			{Days: 1, Milliseconds: 1}, {Days: 2, Milliseconds: 2},
			{Days: 3, Milliseconds: 3}, {Days: -4, Milliseconds: 86399999},
		}
		valids = []bool{true, true, false, true}
	)

	arr := array.NewDayTimeInterval(want, valids)
	assert.Equal(t, 1, arr.NullN())
	for i := range want {
		if valids[i] {
			assert.Equal(t, want[i], arr.Value(i), "arr[%d]", i)
		}
	}
	assert.Equal(t, "-4d86399999ms", arr.ValueStr(3))

	sub := array.NewSlice(arr, 1, 4).(*array.DayTimeInterval)
	assert.Equal(t, want[1], sub.Value(0))
	assert.True(t, sub.IsNull(1))
	assert.Equal(t, want[3], sub.Value(2))

	out, err := json.Marshal(sub)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"days":2,"milliseconds":2},null,{"days":-4,"milliseconds":86399999}]`, string(out))
}

func TestMonthDayNanoIntervalArray(t *testing.T) {
	want := []arrow.MonthDayNanoInterval{
		{Months: 1, Days: 1, Nanoseconds: 1000}, {Months: 2, Days: 2, Nanoseconds: 2000},
		{Months: 3, Days: 3, Nanoseconds: 3000}, {Months: -4, Days: -4, Nanoseconds: -1 << 40},
	}

	arr := array.NewMonthDayNanoInterval(want, []bool{true, false, true, true})
	assert.Equal(t, arrow.INTERVAL_MONTH_DAY_NANO, arr.DataType().ID())
	for i, v := range want {
		if arr.IsValid(i) {
			assert.Equal(t, v, arr.Value(i), "arr[%d]", i)
			assert.Equal(t, v, array.GetValue(arr, i))
		}
	}
	assert.Equal(t, "1M1d1000ns", arr.ValueStr(0))
	assert.Equal(t, array.NullValueStr, arr.ValueStr(1))

	same := array.NewMonthDayNanoInterval(want, []bool{true, false, true, true})
	assert.True(t, array.Equal(arr, same))
	other := array.NewMonthDayNanoInterval(want, nil)
	assert.False(t, array.Equal(arr, other))
}

func TestFloat16Array(t *testing.T) {
	vals := []float16.Num{float16.New(1), float16.New(-2.5), float16.New(0), float16.New(float32(math.NaN()))}
	arr := array.NewFloat16(vals, []bool{true, true, false, true})

	assert.Equal(t, arrow.FLOAT16, arr.DataType().ID())
	assert.Equal(t, float32(-2.5), arr.Value(1).Float32())
	assert.Equal(t, "-2.5", arr.ValueStr(1))
	assert.True(t, arr.Value(3).IsNaN())

	// NaN slots compare equal to themselves.
	assert.True(t, array.Equal(arr, array.NewFloat16(vals, []bool{true, true, false, true})))

	out, err := json.Marshal(array.NewSlice(arr, 0, 3))
	require.NoError(t, err)
	assert.JSONEq(t, `[1,-2.5,null]`, string(out))
}

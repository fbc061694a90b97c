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
	"math"

	"github.com/arrowfixtures/feather/arrow"
	"github.com/arrowfixtures/feather/arrow/decimal128"
)

// Equal reports whether left and right have equal types, lengths, null
// masks and values. Slices are compared by their logical content only.
func Equal(left, right arrow.Array) bool {
	if !arrow.TypeEqual(left.DataType(), right.DataType()) {
		return false
	}
	if left.Len() != right.Len() {
		return false
	}
	return rangeEqual(left, 0, right, 0, left.Len())
}

// SliceEqual reports whether left[lbeg:lend] and right[rbeg:rend] are
// equal.
func SliceEqual(left arrow.Array, lbeg, lend int64, right arrow.Array, rbeg, rend int64) bool {
	if lend-lbeg != rend-rbeg {
		return false
	}
	return Equal(NewSlice(left, lbeg, lend), NewSlice(right, rbeg, rend))
}

func rangeEqual(left arrow.Array, lbeg int, right arrow.Array, rbeg int, n int) bool {
	for k := 0; k < n; k++ {
		if !slotEqual(left, lbeg+k, right, rbeg+k) {
			return false
		}
	}
	return true
}

func slotEqual(left arrow.Array, i int, right arrow.Array, j int) bool {
	lnull, rnull := left.IsNull(i), right.IsNull(j)
	if lnull || rnull {
		return lnull == rnull
	}

	switch l := left.(type) {
	case *Null:
		return true
	case ExtensionArray:
		return slotEqual(l.Storage(), i, right.(ExtensionArray).Storage(), j)
	case ListLike:
		r := right.(ListLike)
		lb, le := l.ValueOffsets(i)
		rb, re := r.ValueOffsets(j)
		if le-lb != re-rb {
			return false
		}
		return rangeEqual(l.ListValues(), int(lb), r.ListValues(), int(rb), int(le-lb))
	case *Struct:
		r := right.(*Struct)
		for f := 0; f < l.NumField(); f++ {
			if !slotEqual(l.Field(f), i, r.Field(f), j) {
				return false
			}
		}
		return true
	case Union:
		r := right.(Union)
		if l.TypeCode(i) != r.TypeCode(j) {
			return false
		}
		lc, li := l.ChildIndex(i)
		rc, ri := r.ChildIndex(j)
		return slotEqual(l.Field(lc), li, r.Field(rc), ri)
	case *Float16:
		return floatEqual(float64(l.Value(i).Float32()), float64(right.(*Float16).Value(j).Float32()))
	case *Float32:
		return floatEqual(float64(l.Value(i)), float64(right.(*Float32).Value(j)))
	case *Float64:
		return floatEqual(l.Value(i), right.(*Float64).Value(j))
	}

	lv, rv := GetValue(left, i), GetValue(right, j)
	switch lv := lv.(type) {
	case []byte:
		return bytes.Equal(lv, rv.([]byte))
	case decimal128.Num:
		return lv.Cmp(rv.(decimal128.Num)) == 0
	}
	return lv == rv
}

// floatEqual treats NaN as equal to itself so that round-tripped data
// compares equal.
func floatEqual(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return a == b
}

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

package arrow

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// NumericType is the set of Go types backing fixed-width numeric and
// temporal arrays.
type NumericType interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// OffsetType is the width of a variable-length offsets buffer.
type OffsetType interface {
	~int32 | ~int64
}

// IntType is any integer type.
type IntType interface {
	constraints.Integer
}

// GetBytes reinterprets the data slice as a byte slice without copying.
func GetBytes[T NumericType](in []T) []byte {
	if len(in) == 0 {
		return []byte{}
	}
	var z T
	return unsafe.Slice((*byte)(unsafe.Pointer(&in[0])), len(in)*int(unsafe.Sizeof(z)))
}

// GetData reinterprets a byte slice as a slice of T without copying. Trailing
// bytes that do not form a whole element are ignored.
func GetData[T NumericType](in []byte) []T {
	var z T
	n := len(in) / int(unsafe.Sizeof(z))
	if n == 0 {
		return []T{}
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&in[0])), n)
}

// SizeOf returns the byte width of T.
func SizeOf[T NumericType]() int {
	var z T
	return int(unsafe.Sizeof(z))
}

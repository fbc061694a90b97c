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
	"github.com/arrowfixtures/feather/arrow/internal/debug"
	"github.com/zeebo/xxh3"
)

// Type is a logical type. They can be expressed as
// either a primitive physical type (bytes or bits of some fixed size), a
// nested type consisting of other data types, or another data type (e.g. a
// timestamp encoded as an int64)
type Type int

const (
	// NULL type having no physical storage
	NULL Type = iota

	// BOOL is a 1 bit, LSB bit-packed ordering
	BOOL

	// UINT8 is an Unsigned 8-bit little-endian integer
	UINT8

	// INT8 is a Signed 8-bit little-endian integer
	INT8

	// UINT16 is an Unsigned 16-bit little-endian integer
	UINT16

	// INT16 is a Signed 16-bit little-endian integer
	INT16

	// UINT32 is an Unsigned 32-bit little-endian integer
	UINT32

	// INT32 is a Signed 32-bit little-endian integer
	INT32

	// UINT64 is an Unsigned 64-bit little-endian integer
	UINT64

	// INT64 is a Signed 64-bit little-endian integer
	INT64

	// FLOAT32 is a 4-byte floating point value
	FLOAT32

	// FLOAT64 is an 8-byte floating point value
	FLOAT64

	// STRING is a UTF8 variable-length string
	STRING

	// BINARY is a Variable-length byte type (no guarantee of UTF8-ness)
	BINARY

	// FIXED_SIZE_BINARY is a binary where each value occupies the same number of bytes
	FIXED_SIZE_BINARY

	// DATE32 is int32 days since the UNIX epoch
	DATE32

	// DATE64 is int64 milliseconds since the UNIX epoch
	DATE64

	// TIMESTAMP is an exact timestamp encoded with int64 since UNIX epoch
	TIMESTAMP

	// TIME32 is a signed 32-bit integer, representing either seconds or
	// milliseconds since midnight
	TIME32

	// TIME64 is a signed 64-bit integer, representing either microseconds or
	// nanoseconds since midnight
	TIME64

	// DECIMAL128 is a precision- and scale-based decimal type backed by a
	// 128-bit two's complement integer.
	DECIMAL128

	// LIST is a list of some logical data type
	LIST

	// STRUCT of logical types
	STRUCT

	// SPARSE_UNION of logical types
	SPARSE_UNION

	// DENSE_UNION of logical types
	DENSE_UNION

	// EXTENSION is a user defined type layered on a storage type
	EXTENSION

	// FIXED_SIZE_LIST is a list of some logical type with a fixed length
	FIXED_SIZE_LIST

	// DURATION is a measure of elapsed time in either seconds, milliseconds,
	// microseconds or nanoseconds.
	DURATION

	// LARGE_STRING is like STRING, but with 64-bit offsets
	LARGE_STRING

	// LARGE_BINARY is like BINARY, but with 64-bit offsets
	LARGE_BINARY

	// LARGE_LIST is like LIST, but with 64-bit offsets
	LARGE_LIST

	// FLOAT16 is a 2-byte floating point value
	FLOAT16

	// INTERVAL_MONTHS is a number of months stored as int32
	INTERVAL_MONTHS

	// INTERVAL_DAY_TIME is a number of days and milliseconds, two int32s
	INTERVAL_DAY_TIME

	// INTERVAL_MONTH_DAY_NANO is a number of months and days (int32 each)
	// plus nanoseconds (int64)
	INTERVAL_MONTH_DAY_NANO

	// DECIMAL is an alias of DECIMAL128
	DECIMAL = DECIMAL128
)

// DataType is the representation of an Arrow type.
type DataType interface {
	ID() Type
	// Name is name of the data type.
	Name() string
	String() string
	Fingerprint() string
	// Layout returns the physical buffer layout of the type.
	Layout() DataTypeLayout
}

// FixedWidthDataType is the representation of an Arrow type that
// requires a fixed number of bits in memory for each element.
type FixedWidthDataType interface {
	DataType
	// BitWidth returns the number of bits required to store a single element of this data type in memory.
	BitWidth() int
	// Bytes returns the number of bytes required to store a single element, 0 for bit-packed types.
	Bytes() int
}

// BinaryDataType is implemented by the variable-length binary and string types.
type BinaryDataType interface {
	DataType
	IsUtf8() bool
	binary()
}

// OffsetsDataType is implemented by types whose layout carries an offsets
// buffer. OffsetWidth is 4 or 8.
type OffsetsDataType interface {
	DataType
	OffsetWidth() int
}

// NestedType is implemented by types with child fields.
type NestedType interface {
	DataType
	Fields() []Field
}

// ListLikeType is implemented by the list types with a single child field.
type ListLikeType interface {
	NestedType
	Elem() DataType
	ElemField() Field
}

// HashType returns a 64-bit hash of the type fingerprint. Extension types
// are hashed by ExtensionFingerprint, so two extensions over the same
// storage hash apart.
func HashType(dt DataType) uint64 {
	if ext, ok := dt.(ExtensionType); ok {
		return xxh3.HashString(ExtensionFingerprint(ext))
	}
	return xxh3.HashString(dt.Fingerprint())
}

func typeIDFingerprint(id Type) string {
	c := string(rune(int(id) + int('A')))
	return "@" + c
}

func typeFingerprint(typ DataType) string { return typeIDFingerprint(typ.ID()) }

func timeUnitFingerprint(unit TimeUnit) rune {
	switch unit {
	case Second:
		return 's'
	case Millisecond:
		return 'm'
	case Microsecond:
		return 'u'
	case Nanosecond:
		return 'n'
	default:
		debug.Assert(false, "unexpected time unit")
		return rune(0)
	}
}

// IsInteger is a helper to return true if the type ID provided is one of the
// integral types of uint or int with the varying sizes.
func IsInteger(t Type) bool {
	switch t {
	case UINT8, INT8, UINT16, INT16, UINT32, INT32, UINT64, INT64:
		return true
	}
	return false
}

// IsUnsignedInteger is a helper that returns true if the type ID provided is
// one of the uint integral types (uint8, uint16, uint32, uint64)
func IsUnsignedInteger(t Type) bool {
	switch t {
	case UINT8, UINT16, UINT32, UINT64:
		return true
	}
	return false
}

// IsFloating is a helper that returns true if the type ID provided is
// one of Float16, Float32 or Float64
func IsFloating(t Type) bool {
	return t == FLOAT16 || t == FLOAT32 || t == FLOAT64
}

// IsPrimitive returns true if the provided type ID represents a fixed width
// primitive type.
func IsPrimitive(t Type) bool {
	switch t {
	case BOOL, UINT8, INT8, UINT16, INT16, UINT32, INT32, UINT64, INT64,
		FLOAT16, FLOAT32, FLOAT64, DATE32, DATE64, TIME32, TIME64, TIMESTAMP, DURATION,
		INTERVAL_MONTHS, INTERVAL_DAY_TIME, INTERVAL_MONTH_DAY_NANO:
		return true
	}
	return false
}

// IsBinaryLike returns true for BINARY and STRING
func IsBinaryLike(t Type) bool {
	switch t {
	case BINARY, STRING:
		return true
	}
	return false
}

// IsLargeBinaryLike returns true for LARGE_BINARY and LARGE_STRING
func IsLargeBinaryLike(t Type) bool {
	switch t {
	case LARGE_BINARY, LARGE_STRING:
		return true
	}
	return false
}

// IsFixedSizeBinary returns true for FIXED_SIZE_BINARY and DECIMAL128
func IsFixedSizeBinary(t Type) bool {
	switch t {
	case FIXED_SIZE_BINARY, DECIMAL128:
		return true
	}
	return false
}

// IsVarWidth returns true for the variable-length binary and string types.
func IsVarWidth(t Type) bool { return IsBinaryLike(t) || IsLargeBinaryLike(t) }

// IsListLike returns true for LIST, LARGE_LIST and FIXED_SIZE_LIST
func IsListLike(t Type) bool {
	switch t {
	case LIST, LARGE_LIST, FIXED_SIZE_LIST:
		return true
	}
	return false
}

// IsNested returns true for LIST, LARGE_LIST, FIXED_SIZE_LIST, STRUCT,
// SPARSE_UNION and DENSE_UNION
func IsNested(t Type) bool {
	switch t {
	case LIST, LARGE_LIST, FIXED_SIZE_LIST, STRUCT, SPARSE_UNION, DENSE_UNION:
		return true
	}
	return false
}

// IsUnion returns true for Sparse and Dense Unions
func IsUnion(t Type) bool {
	return t == DENSE_UNION || t == SPARSE_UNION
}

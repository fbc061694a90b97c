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
	"testing"
)

func TestTypeEqual(t *testing.T) {
	md1 := NewMetadata([]string{"k1"}, []string{"v1"})
	md2 := NewMetadata([]string{"k1"}, []string{"v2"})

	tests := []struct {
		left, right DataType
		want        bool
		checkMeta   bool
	}{
		{nil, nil, true, false},
		{nil, PrimitiveTypes.Uint8, false, false},
		{PrimitiveTypes.Float32, nil, false, false},
		{PrimitiveTypes.Float64, PrimitiveTypes.Int32, false, false},
		{Null, Null, true, false},
		{&Time32Type{Unit: Second}, &Time32Type{Unit: Second}, true, false},
		{&Time32Type{Unit: Millisecond}, &Time32Type{Unit: Second}, false, false},
		{&Time64Type{Unit: Nanosecond}, &Time64Type{Unit: Microsecond}, false, false},
		{&DurationType{Unit: Second}, &DurationType{Unit: Second}, true, false},
		{&TimestampType{Unit: Second, TimeZone: "UTC"}, &TimestampType{Unit: Second, TimeZone: "UTC"}, true, false},
		{&TimestampType{Unit: Microsecond, TimeZone: "UTC"}, &TimestampType{Unit: Millisecond, TimeZone: "UTC"}, false, false},
		{&TimestampType{Unit: Second, TimeZone: "UTC"}, &TimestampType{Unit: Second, TimeZone: "CET"}, false, false},
		{&TimestampType{Unit: Second}, &TimestampType{Unit: Second, TimeZone: "UTC"}, false, false},
		{&Decimal128Type{Precision: 10, Scale: 3}, &Decimal128Type{Precision: 10, Scale: 3}, true, false},
		{&Decimal128Type{Precision: 10, Scale: 3}, &Decimal128Type{Precision: 10, Scale: 2}, false, false},
		{&FixedSizeBinaryType{ByteWidth: 2}, &FixedSizeBinaryType{ByteWidth: 3}, false, false},
		{ListOf(PrimitiveTypes.Uint64), ListOf(PrimitiveTypes.Uint64), true, false},
		{ListOf(PrimitiveTypes.Uint64), ListOf(PrimitiveTypes.Uint32), false, false},
		{ListOf(ListOf(PrimitiveTypes.Uint16)), ListOf(ListOf(PrimitiveTypes.Uint16)), true, false},
		{ListOf(ListOf(PrimitiveTypes.Uint16)), ListOf(ListOf(PrimitiveTypes.Uint8)), false, false},
		{ListOf(PrimitiveTypes.Uint8), LargeListOf(PrimitiveTypes.Uint8), false, false},
		{FixedSizeListOf(2, PrimitiveTypes.Uint8), FixedSizeListOf(2, PrimitiveTypes.Uint8), true, false},
		{FixedSizeListOf(2, PrimitiveTypes.Uint8), FixedSizeListOf(3, PrimitiveTypes.Uint8), false, false},
		{
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint16, Nullable: true}),
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: true}),
			false, false,
		},
		{
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: false}),
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: true}),
			false, false,
		},
		{
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint32}, Field{Name: "f2", Type: PrimitiveTypes.Float32}),
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint32}, Field{Name: "f2", Type: PrimitiveTypes.Float32}),
			true, false,
		},
		{
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint32, Metadata: md1}),
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint32, Metadata: md2}),
			true, false,
		},
		{
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint32, Metadata: md1}),
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint32, Metadata: md2}),
			false, true,
		},
		{
			SparseUnionOf([]Field{{Name: "a", Type: PrimitiveTypes.Int8}}, []UnionTypeCode{0}),
			SparseUnionOf([]Field{{Name: "a", Type: PrimitiveTypes.Int8}}, []UnionTypeCode{0}),
			true, false,
		},
		{
			SparseUnionOf([]Field{{Name: "a", Type: PrimitiveTypes.Int8}}, []UnionTypeCode{0}),
			SparseUnionOf([]Field{{Name: "a", Type: PrimitiveTypes.Int8}}, []UnionTypeCode{3}),
			false, false,
		},
		{
			SparseUnionOf([]Field{{Name: "a", Type: PrimitiveTypes.Int8}}, nil),
			DenseUnionOf([]Field{{Name: "a", Type: PrimitiveTypes.Int8}}, nil),
			false, false,
		},
	}

	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			var got bool
			if test.checkMeta {
				got = TypeEqual(test.left, test.right, CheckMetadata())
			} else {
				got = TypeEqual(test.left, test.right)
			}
			if got != test.want {
				t.Fatalf("TypeEqual(%v, %v, %v): got=%v, want=%v", test.left, test.right, test.checkMeta, got, test.want)
			}
		})
	}
}

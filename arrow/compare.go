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

type typeEqualsConfig struct {
	metadata bool
}

// TypeEqualOption is a functional option type used for configuring type
// equality checks.
type TypeEqualOption func(*typeEqualsConfig)

// CheckMetadata is an option for TypeEqual that allows checking for metadata
// equality besides type equality. It only makes sense for types with fields.
func CheckMetadata() TypeEqualOption {
	return func(cfg *typeEqualsConfig) {
		cfg.metadata = true
	}
}

// TypeEqual checks if two DataType are the same, optionally checking metadata
// equality for STRUCT types.
func TypeEqual(left, right DataType, opts ...TypeEqualOption) bool {
	var cfg typeEqualsConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	switch {
	case left == nil || right == nil:
		return left == nil && right == nil
	case left.ID() != right.ID():
		return false
	}

	switch l := left.(type) {
	case ExtensionType:
		return l.ExtensionEquals(right.(ExtensionType))
	case *ListType:
		return fieldEqual(l.ElemField(), right.(*ListType).ElemField(), cfg)
	case *LargeListType:
		return fieldEqual(l.ElemField(), right.(*LargeListType).ElemField(), cfg)
	case *FixedSizeListType:
		r := right.(*FixedSizeListType)
		return l.n == r.n && fieldEqual(l.elem, r.elem, cfg)
	case *StructType:
		return fieldsEqual(l.fields, right.(*StructType).fields, cfg)
	case UnionType:
		r := right.(UnionType)
		if !fieldsEqual(l.Fields(), r.Fields(), cfg) {
			return false
		}
		lc, rc := l.TypeCodes(), r.TypeCodes()
		for i := range lc {
			if lc[i] != rc[i] {
				return false
			}
		}
		return true
	case *TimestampType:
		r := right.(*TimestampType)
		return l.Unit == r.Unit && l.TimeZone == r.TimeZone
	case *Time32Type:
		return l.Unit == right.(*Time32Type).Unit
	case *Time64Type:
		return l.Unit == right.(*Time64Type).Unit
	case *DurationType:
		return l.Unit == right.(*DurationType).Unit
	case *Decimal128Type:
		r := right.(*Decimal128Type)
		return l.Precision == r.Precision && l.Scale == r.Scale
	case *FixedSizeBinaryType:
		return l.ByteWidth == right.(*FixedSizeBinaryType).ByteWidth
	}
	return true
}

func fieldEqual(l, r Field, cfg typeEqualsConfig) bool {
	switch {
	case l.Name != r.Name:
		return false
	case l.Nullable != r.Nullable:
		return false
	case cfg.metadata && !l.Metadata.Equal(r.Metadata):
		return false
	}
	if cfg.metadata {
		return TypeEqual(l.Type, r.Type, CheckMetadata())
	}
	return TypeEqual(l.Type, r.Type)
}

func fieldsEqual(l, r []Field, cfg typeEqualsConfig) bool {
	if len(l) != len(r) {
		return false
	}
	for i := range l {
		if !fieldEqual(l[i], r[i], cfg) {
			return false
		}
	}
	return true
}

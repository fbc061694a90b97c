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
	"fmt"
	"strconv"
	"strings"
)

func nestedLayout(specs ...BufferSpec) DataTypeLayout {
	return DataTypeLayout{Buffers: specs}
}

func nullableSuffix(f Field) string {
	if f.Nullable {
		return ", nullable"
	}
	return ""
}

// ListType describes a nested type in which each array slot contains
// a variable-size sequence of values, all having the same relative type.
type ListType struct {
	elem Field
}

// NewListType returns a list of elem with a nullable "item" child field.
func NewListType(elem DataType) (*ListType, error) {
	if elem == nil {
		return nil, fmt.Errorf("%w: nil list element type", ErrType)
	}
	return &ListType{elem: Field{Name: "item", Type: elem, Nullable: true}}, nil
}

// ListOfField panics if f has no type.
func ListOfField(f Field) *ListType {
	if f.Type == nil {
		panic("arrow: nil type for list field")
	}
	return &ListType{elem: f}
}

// ListOf returns the list type with element type t.
// For example, if t represents int32, ListOf(t) represents []int32.
//
// ListOf panics if t is nil. NullableElem defaults to true
func ListOf(t DataType) *ListType {
	if t == nil {
		panic("arrow: nil DataType")
	}
	return &ListType{elem: Field{Name: "item", Type: t, Nullable: true}}
}

func (*ListType) ID() Type               { return LIST }
func (*ListType) Name() string           { return "list" }
func (*ListType) OffsetWidth() int       { return 4 }
func (*ListType) Layout() DataTypeLayout { return nestedLayout(SpecBitmap(), SpecFixedWidth(4)) }

func (t *ListType) String() string {
	return fmt.Sprintf("list<%s: %s%s>", t.elem.Name, t.elem.Type, nullableSuffix(t.elem))
}

func (t *ListType) Fingerprint() string {
	child := t.elem.Type.Fingerprint()
	if len(child) > 0 {
		return typeFingerprint(t) + "{" + child + "}"
	}
	return ""
}

// Elem returns the ListType's element type.
func (t *ListType) Elem() DataType   { return t.elem.Type }
func (t *ListType) ElemField() Field { return t.elem }
func (t *ListType) Fields() []Field  { return []Field{t.elem} }

// LargeListType is a ListType with 64-bit offsets.
type LargeListType struct {
	elem Field
}

func NewLargeListType(elem DataType) (*LargeListType, error) {
	if elem == nil {
		return nil, fmt.Errorf("%w: nil list element type", ErrType)
	}
	return &LargeListType{elem: Field{Name: "item", Type: elem, Nullable: true}}, nil
}

// LargeListOf panics if t is nil.
func LargeListOf(t DataType) *LargeListType {
	if t == nil {
		panic("arrow: nil DataType")
	}
	return &LargeListType{elem: Field{Name: "item", Type: t, Nullable: true}}
}

// LargeListOfField panics if f has no type.
func LargeListOfField(f Field) *LargeListType {
	if f.Type == nil {
		panic("arrow: nil type for list field")
	}
	return &LargeListType{elem: f}
}

func (*LargeListType) ID() Type               { return LARGE_LIST }
func (*LargeListType) Name() string           { return "large_list" }
func (*LargeListType) OffsetWidth() int       { return 8 }
func (*LargeListType) Layout() DataTypeLayout { return nestedLayout(SpecBitmap(), SpecFixedWidth(8)) }

func (t *LargeListType) String() string {
	return fmt.Sprintf("large_list<%s: %s%s>", t.elem.Name, t.elem.Type, nullableSuffix(t.elem))
}

func (t *LargeListType) Fingerprint() string {
	child := t.elem.Type.Fingerprint()
	if len(child) > 0 {
		return typeFingerprint(t) + "{" + child + "}"
	}
	return ""
}

func (t *LargeListType) Elem() DataType   { return t.elem.Type }
func (t *LargeListType) ElemField() Field { return t.elem }
func (t *LargeListType) Fields() []Field  { return []Field{t.elem} }

// FixedSizeListType describes a nested type in which each array slot contains
// a fixed-size sequence of values, all having the same relative type.
type FixedSizeListType struct {
	n    int32 // number of elements in the list
	elem Field
}

// NewFixedSizeListType returns a list type of n elements per slot.
func NewFixedSizeListType(n int32, elem DataType) (*FixedSizeListType, error) {
	if elem == nil {
		return nil, fmt.Errorf("%w: nil list element type", ErrType)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: fixed_size_list size must be positive, got %d", ErrType, n)
	}
	return &FixedSizeListType{n: n, elem: Field{Name: "item", Type: elem, Nullable: true}}, nil
}

// FixedSizeListOfField panics if f has no type or n is <= 0.
func FixedSizeListOfField(n int32, f Field) *FixedSizeListType {
	if f.Type == nil {
		panic("arrow: nil DataType")
	}
	if n <= 0 {
		panic("arrow: invalid size")
	}
	return &FixedSizeListType{n: n, elem: f}
}

// FixedSizeListOf returns the list type with element type t.
// For example, if t represents int32, FixedSizeListOf(10, t) represents [10]int32.
//
// FixedSizeListOf panics if t is nil or n is <= 0.
func FixedSizeListOf(n int32, t DataType) *FixedSizeListType {
	dt, err := NewFixedSizeListType(n, t)
	if err != nil {
		panic(err)
	}
	return dt
}

func (*FixedSizeListType) ID() Type               { return FIXED_SIZE_LIST }
func (*FixedSizeListType) Name() string           { return "fixed_size_list" }
func (*FixedSizeListType) Layout() DataTypeLayout { return nestedLayout(SpecBitmap()) }
func (t *FixedSizeListType) String() string {
	return fmt.Sprintf("fixed_size_list<%s: %s%s>[%d]", t.elem.Name, t.elem.Type, nullableSuffix(t.elem), t.n)
}

// Elem returns the FixedSizeListType's element type.
func (t *FixedSizeListType) Elem() DataType { return t.elem.Type }

// Len returns the FixedSizeListType's size.
func (t *FixedSizeListType) Len() int32 { return t.n }

func (t *FixedSizeListType) ElemField() Field { return t.elem }
func (t *FixedSizeListType) Fields() []Field  { return []Field{t.elem} }

func (t *FixedSizeListType) Fingerprint() string {
	child := t.elem.Type.Fingerprint()
	if len(child) > 0 {
		return fmt.Sprintf("%s[%d]{%s}", typeFingerprint(t), t.n, child)
	}
	return ""
}

// StructType describes a nested type parameterized by an ordered sequence
// of relative types, called its fields.
type StructType struct {
	fields []Field
	index  map[string]int
}

// NewStructType returns a struct type after checking that field names are
// unique and every field has a type.
func NewStructType(fields ...Field) (*StructType, error) {
	t := &StructType{
		fields: make([]Field, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		if f.Type == nil {
			return nil, fmt.Errorf("%w: struct field %q has no type", ErrType, f.Name)
		}
		if _, dup := t.index[f.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate struct field name %q", ErrType, f.Name)
		}
		t.fields[i] = f
		t.index[f.Name] = i
	}
	return t, nil
}

// StructOf returns the struct type with fields fs.
//
// StructOf panics if there are duplicated fields.
// StructOf panics if there is a field with an invalid DataType.
func StructOf(fs ...Field) *StructType {
	t, err := NewStructType(fs...)
	if err != nil {
		panic(err)
	}
	return t
}

func (*StructType) ID() Type               { return STRUCT }
func (*StructType) Name() string           { return "struct" }
func (*StructType) Layout() DataTypeLayout { return nestedLayout(SpecBitmap()) }

func (t *StructType) String() string {
	var o strings.Builder
	o.WriteString("struct<")
	for i, f := range t.fields {
		if i > 0 {
			o.WriteString(", ")
		}
		o.WriteString(fmt.Sprintf("%s: %v", f.Name, f.Type))
	}
	o.WriteString(">")
	return o.String()
}

func (t *StructType) Fields() []Field   { return t.fields }
func (t *StructType) NumFields() int    { return len(t.fields) }
func (t *StructType) Field(i int) Field { return t.fields[i] }

// FieldByName returns the field named name.
func (t *StructType) FieldByName(name string) (Field, bool) {
	i, ok := t.index[name]
	if !ok {
		return Field{}, false
	}
	return t.fields[i], true
}

// FieldIdx returns the index of the field named name.
func (t *StructType) FieldIdx(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

func (t *StructType) Fingerprint() string {
	var b strings.Builder
	b.WriteString(typeFingerprint(t))
	b.WriteByte('{')
	for _, c := range t.fields {
		child := c.Fingerprint()
		if len(child) == 0 {
			return ""
		}
		b.WriteString(child)
		b.WriteByte(';')
	}
	b.WriteByte('}')
	return b.String()
}

type (
	// UnionTypeCode is the logical type code of a union child.
	UnionTypeCode = int8
	// UnionMode is either Sparse or Dense.
	UnionMode int8
)

const (
	// MaxUnionTypeCode is the largest type code a union may use.
	MaxUnionTypeCode UnionTypeCode = 127
	// InvalidUnionChildID is the child id of an unused type code.
	InvalidUnionChildID int = -1
)

const (
	SparseMode UnionMode = iota // SPARSE
	DenseMode                   // DENSE
)

func (m UnionMode) String() string {
	switch m {
	case SparseMode:
		return "SPARSE"
	case DenseMode:
		return "DENSE"
	}
	return "UnionMode(" + strconv.Itoa(int(m)) + ")"
}

// UnionType is implemented by SparseUnionType and DenseUnionType.
type UnionType interface {
	NestedType
	// Mode returns either SparseMode or DenseMode.
	Mode() UnionMode
	// TypeCodes returns the type code of each child, in child order.
	TypeCodes() []UnionTypeCode
	// ChildIDs maps each type code to the index of its child, or
	// InvalidUnionChildID when the code is unused.
	ChildIDs() []int
	// MaxTypeCode returns the largest type code in use.
	MaxTypeCode() UnionTypeCode
}

type unionType struct {
	children  []Field
	typeCodes []UnionTypeCode
	childIDs  [int(MaxUnionTypeCode) + 1]int
}

func (t *unionType) init(fields []Field, typeCodes []UnionTypeCode) error {
	if typeCodes == nil {
		typeCodes = make([]UnionTypeCode, len(fields))
		for i := range fields {
			typeCodes[i] = UnionTypeCode(i)
		}
	}
	if len(fields) != len(typeCodes) {
		return fmt.Errorf("%w: union has %d fields but %d type codes", ErrType, len(fields), len(typeCodes))
	}
	for i := range t.childIDs {
		t.childIDs[i] = InvalidUnionChildID
	}
	for i, c := range typeCodes {
		if c < 0 {
			return fmt.Errorf("%w: union type code %d out of range [0, %d]", ErrType, c, MaxUnionTypeCode)
		}
		if t.childIDs[c] != InvalidUnionChildID {
			return fmt.Errorf("%w: duplicate union type code %d", ErrType, c)
		}
		if fields[i].Type == nil {
			return fmt.Errorf("%w: union field %q has no type", ErrType, fields[i].Name)
		}
		t.childIDs[c] = i
	}
	t.children = append([]Field(nil), fields...)
	t.typeCodes = append([]UnionTypeCode(nil), typeCodes...)
	return nil
}

func (t *unionType) Fields() []Field            { return t.children }
func (t *unionType) TypeCodes() []UnionTypeCode { return t.typeCodes }
func (t *unionType) ChildIDs() []int            { return t.childIDs[:] }

func (t *unionType) MaxTypeCode() (max UnionTypeCode) {
	for _, c := range t.typeCodes {
		if c > max {
			max = c
		}
	}
	return
}

func (t *unionType) str(name string) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString("<")
	for i, c := range t.typeCodes {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%d: %s", t.children[i].Name, c, t.children[i].Type)
	}
	b.WriteString(">")
	return b.String()
}

func (t *unionType) fingerprint(typ DataType, mode UnionMode) string {
	var b strings.Builder
	b.WriteString(typeFingerprint(typ))
	switch mode {
	case SparseMode:
		b.WriteString("[s<")
	default:
		b.WriteString("[d<")
	}
	for i, c := range t.typeCodes {
		fmt.Fprintf(&b, "%d", c)
		if i < len(t.typeCodes)-1 {
			b.WriteByte(':')
		}
	}
	b.WriteString(">]{")
	for _, c := range t.children {
		child := c.Fingerprint()
		if len(child) == 0 {
			return ""
		}
		b.WriteString(child)
		b.WriteByte(';')
	}
	b.WriteByte('}')
	return b.String()
}

// SparseUnionType is a union whose children all have the length of the
// union array; slot i of the selected child holds the value of slot i.
type SparseUnionType struct {
	unionType
}

// NewSparseUnionType validates that codes are unique, within [0, 127] and
// pair up with fields. A nil codes slice numbers the fields 0..n-1.
func NewSparseUnionType(fields []Field, typeCodes []UnionTypeCode) (*SparseUnionType, error) {
	t := &SparseUnionType{}
	if err := t.init(fields, typeCodes); err != nil {
		return nil, err
	}
	return t, nil
}

// SparseUnionOf panics on invalid fields or codes.
func SparseUnionOf(fields []Field, typeCodes []UnionTypeCode) *SparseUnionType {
	t, err := NewSparseUnionType(fields, typeCodes)
	if err != nil {
		panic(err)
	}
	return t
}

func (*SparseUnionType) ID() Type         { return SPARSE_UNION }
func (*SparseUnionType) Name() string     { return "sparse_union" }
func (*SparseUnionType) Mode() UnionMode  { return SparseMode }
func (t *SparseUnionType) String() string { return t.str(t.Name()) }
func (t *SparseUnionType) Fingerprint() string {
	return t.fingerprint(t, SparseMode)
}
func (*SparseUnionType) Layout() DataTypeLayout {
	return nestedLayout(SpecFixedWidth(1))
}

// DenseUnionType is a union carrying an int32 offset per slot into the
// selected child, so children may be shorter than the union array.
type DenseUnionType struct {
	unionType
}

// NewDenseUnionType validates like NewSparseUnionType.
func NewDenseUnionType(fields []Field, typeCodes []UnionTypeCode) (*DenseUnionType, error) {
	t := &DenseUnionType{}
	if err := t.init(fields, typeCodes); err != nil {
		return nil, err
	}
	return t, nil
}

// DenseUnionOf panics on invalid fields or codes.
func DenseUnionOf(fields []Field, typeCodes []UnionTypeCode) *DenseUnionType {
	t, err := NewDenseUnionType(fields, typeCodes)
	if err != nil {
		panic(err)
	}
	return t
}

func (*DenseUnionType) ID() Type         { return DENSE_UNION }
func (*DenseUnionType) Name() string     { return "dense_union" }
func (*DenseUnionType) Mode() UnionMode  { return DenseMode }
func (t *DenseUnionType) String() string { return t.str(t.Name()) }
func (t *DenseUnionType) Fingerprint() string {
	return t.fingerprint(t, DenseMode)
}
func (*DenseUnionType) Layout() DataTypeLayout {
	return nestedLayout(SpecFixedWidth(1), SpecFixedWidth(4))
}

// Field is a named child of a schema or nested type.
type Field struct {
	Name     string   // Field name
	Type     DataType // The field's data type
	Nullable bool     // Fields can be nullable
	Metadata Metadata // The field's metadata, if any
}

func (f Field) Fingerprint() string {
	typeFingerprint := f.Type.Fingerprint()
	if typeFingerprint == "" {
		return ""
	}

	var b strings.Builder
	b.WriteByte('F')
	if f.Nullable {
		b.WriteByte('n')
	} else {
		b.WriteByte('N')
	}
	b.WriteString(f.Name)
	b.WriteByte('{')
	b.WriteString(typeFingerprint)
	b.WriteByte('}')
	return b.String()
}

func (f Field) HasMetadata() bool { return f.Metadata.Len() != 0 }

// Equal compares name, nullability and type. Metadata is compared too.
func (f Field) Equal(o Field) bool {
	switch {
	case f.Name != o.Name:
		return false
	case f.Nullable != o.Nullable:
		return false
	case !TypeEqual(f.Type, o.Type, CheckMetadata()):
		return false
	case !f.Metadata.Equal(o.Metadata):
		return false
	}
	return true
}

func (f Field) String() string {
	var o strings.Builder
	nullable := ""
	if f.Nullable {
		nullable = ", nullable"
	}
	fmt.Fprintf(&o, "%s: type=%v%v", f.Name, f.Type, nullable)
	if f.HasMetadata() {
		fmt.Fprintf(&o, "\n%*.smetadata: %v", len(f.Name)+2, "", f.Metadata)
	}
	return o.String()
}

var (
	_ ListLikeType = (*ListType)(nil)
	_ ListLikeType = (*LargeListType)(nil)
	_ ListLikeType = (*FixedSizeListType)(nil)
	_ NestedType   = (*StructType)(nil)
	_ UnionType    = (*SparseUnionType)(nil)
	_ UnionType    = (*DenseUnionType)(nil)
)

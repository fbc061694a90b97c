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

// BufferKind describes the type of buffer expected when defining a layout specification
type BufferKind int8

// The expected types of buffers
const (
	KindFixedWidth BufferKind = iota
	KindVarWidth
	KindBitmap
	KindAlwaysNull
)

// BufferSpec provides a specification for the buffers of a particular datatype
type BufferSpec struct {
	Kind      BufferKind
	ByteWidth int // for KindFixedWidth
}

func (b BufferSpec) Equals(other BufferSpec) bool {
	return b.Kind == other.Kind && (b.Kind != KindFixedWidth || b.ByteWidth == other.ByteWidth)
}

// DataTypeLayout represents the physical layout of a datatype's buffers including
// the number of and types of those binary buffers. This will correspond
// with the buffers in the ArrayData for an array of that type.
type DataTypeLayout struct {
	Buffers []BufferSpec
}

// NumBuffers returns the number of buffers of the layout.
func (l DataTypeLayout) NumBuffers() int { return len(l.Buffers) }

func SpecFixedWidth(w int) BufferSpec { return BufferSpec{KindFixedWidth, w} }
func SpecVariableWidth() BufferSpec   { return BufferSpec{KindVarWidth, -1} }
func SpecBitmap() BufferSpec          { return BufferSpec{KindBitmap, -1} }
func SpecAlwaysNull() BufferSpec      { return BufferSpec{KindAlwaysNull, -1} }

// LayoutOf returns the physical layout of dt. Extension types report the
// layout of their storage type.
func LayoutOf(dt DataType) DataTypeLayout {
	if ext, ok := dt.(ExtensionType); ok {
		return LayoutOf(ext.StorageType())
	}
	return dt.Layout()
}

// NumChildren returns the number of child arrays an array of type dt has.
func NumChildren(dt DataType) int {
	switch dt := dt.(type) {
	case ExtensionType:
		return NumChildren(dt.StorageType())
	case NestedType:
		return len(dt.Fields())
	}
	return 0
}

// HasValidityBitmap returns true for all types which have a validity
// bitmap as their first buffer. Null and union arrays carry none.
func HasValidityBitmap(id Type) bool {
	switch id {
	case NULL, DENSE_UNION, SPARSE_UNION:
		return false
	}
	return true
}

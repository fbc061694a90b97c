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
	"github.com/arrowfixtures/feather/arrow/bitutil"
	"github.com/arrowfixtures/feather/arrow/memory"
)

// Concatenate joins arrays of an identical type into a single array with
// freshly allocated buffers. Sliced inputs contribute only their logical
// range.
func Concatenate(arrs []arrow.Array) (arrow.Array, error) {
	if len(arrs) == 0 {
		return nil, fmt.Errorf("arrow/array: concatenate needs at least one array: %w", arrow.ErrInvalid)
	}
	dt := arrs[0].DataType()
	for _, a := range arrs[1:] {
		if !arrow.TypeEqual(dt, a.DataType()) {
			return nil, fmt.Errorf("arrow/array: cannot concatenate %s with %s: %w", dt, a.DataType(), arrow.ErrType)
		}
	}
	return MakeFromData(concat(dt, arrs)), nil
}

func unwrapStorage(arrs []arrow.Array) []arrow.Array {
	out := make([]arrow.Array, len(arrs))
	for i, a := range arrs {
		if ext, ok := a.(ExtensionArray); ok {
			a = ext.Storage()
		}
		out[i] = a
	}
	return out
}

func concat(dt arrow.DataType, arrs []arrow.Array) *Data {
	arrs = unwrapStorage(arrs)
	st := storageType(dt)

	total, nulls := 0, 0
	for _, a := range arrs {
		total += a.Len()
		nulls += a.NullN()
	}

	var validity *memory.Buffer
	if arrow.HasValidityBitmap(st.ID()) {
		validity = concatValidity(arrs, total, nulls)
	}

	switch st := st.(type) {
	case *arrow.NullType:
		return NewData(dt, total, []*memory.Buffer{nil}, nil, total, 0)
	case *arrow.BooleanType:
		out := make([]byte, bitutil.BytesForBits(int64(total)))
		pos := 0
		for _, a := range arrs {
			d := a.Data()
			bitutil.CopyBitmap(d.Buffers()[1].Bytes(), d.Offset(), d.Len(), out, pos)
			pos += d.Len()
		}
		return NewData(dt, total, []*memory.Buffer{validity, memory.NewBufferBytes(out)}, nil, nulls, 0)
	case *arrow.BinaryType, *arrow.StringType:
		offsets, values := concatVarWidth[int32](arrs, total)
		return NewData(dt, total, []*memory.Buffer{validity, offsets, values}, nil, nulls, 0)
	case *arrow.LargeBinaryType, *arrow.LargeStringType:
		offsets, values := concatVarWidth[int64](arrs, total)
		return NewData(dt, total, []*memory.Buffer{validity, offsets, values}, nil, nulls, 0)
	case *arrow.ListType:
		offsets, child := concatLists[int32](st.Elem(), arrs, total)
		return NewData(dt, total, []*memory.Buffer{validity, offsets}, []arrow.ArrayData{child}, nulls, 0)
	case *arrow.LargeListType:
		offsets, child := concatLists[int64](st.Elem(), arrs, total)
		return NewData(dt, total, []*memory.Buffer{validity, offsets}, []arrow.ArrayData{child}, nulls, 0)
	case *arrow.FixedSizeListType:
		n := int64(st.Len())
		parts := make([]arrow.Array, len(arrs))
		for i, a := range arrs {
			d := a.Data()
			values := MakeFromData(d.Children()[0])
			parts[i] = NewSlice(values, int64(d.Offset())*n, int64(d.Offset()+d.Len())*n)
		}
		return NewData(dt, total, []*memory.Buffer{validity}, []arrow.ArrayData{concat(st.Elem(), parts)}, nulls, 0)
	case *arrow.StructType:
		children := make([]arrow.ArrayData, st.NumFields())
		for f := range children {
			parts := make([]arrow.Array, len(arrs))
			for i, a := range arrs {
				parts[i] = a.(*Struct).Field(f)
			}
			children[f] = concat(st.Field(f).Type, parts)
		}
		return NewData(dt, total, []*memory.Buffer{validity}, children, nulls, 0)
	case *arrow.SparseUnionType:
		children := make([]arrow.ArrayData, len(st.Fields()))
		for c := range children {
			parts := make([]arrow.Array, len(arrs))
			for i, a := range arrs {
				parts[i] = a.(*SparseUnion).Field(c)
			}
			children[c] = concat(st.Fields()[c].Type, parts)
		}
		return NewData(dt, total, []*memory.Buffer{concatTypeCodes(arrs, total)}, children, 0, 0)
	case *arrow.DenseUnionType:
		offsets, children := concatDenseChildren(st, arrs, total)
		return NewData(dt, total, []*memory.Buffer{concatTypeCodes(arrs, total), offsets}, children, 0, 0)
	case arrow.FixedWidthDataType:
		w := st.Bytes()
		out := make([]byte, 0, w*total)
		for _, a := range arrs {
			d := a.Data()
			out = append(out, d.Buffers()[1].Bytes()[d.Offset()*w:(d.Offset()+d.Len())*w]...)
		}
		return NewData(dt, total, []*memory.Buffer{validity, memory.NewBufferBytes(out)}, nil, nulls, 0)
	}
	panic(fmt.Sprintf("arrow/array: concatenate of unsupported type %s", dt))
}

func concatValidity(arrs []arrow.Array, total, nulls int) *memory.Buffer {
	if nulls == 0 {
		return nil
	}
	out := make([]byte, bitutil.BytesForBits(int64(total)))
	pos := 0
	for _, a := range arrs {
		if bm := a.NullBitmapBytes(); len(bm) > 0 {
			bitutil.CopyBitmap(bm, a.Data().Offset(), a.Len(), out, pos)
		} else {
			for k := 0; k < a.Len(); k++ {
				bitutil.SetBit(out, pos+k)
			}
		}
		pos += a.Len()
	}
	return memory.NewBufferBytes(out)
}

// windowOffsets returns the length+1 offsets covering the logical range of d.
func windowOffsets[O arrow.OffsetType](d arrow.ArrayData) []O {
	if d.Len() == 0 {
		return nil
	}
	return arrow.GetData[O](d.Buffers()[1].Bytes())[d.Offset() : d.Offset()+d.Len()+1]
}

func concatVarWidth[O arrow.OffsetType](arrs []arrow.Array, total int) (offsets, values *memory.Buffer) {
	offs := make([]O, total+1)
	var data []byte
	pos := 0
	for _, a := range arrs {
		d := a.Data()
		src := windowOffsets[O](d)
		if src == nil {
			continue
		}
		base := O(len(data)) - src[0]
		for k := 1; k < len(src); k++ {
			offs[pos+k] = src[k] + base
		}
		data = append(data, d.Buffers()[2].Bytes()[src[0]:src[len(src)-1]]...)
		pos += d.Len()
	}
	if data == nil {
		data = []byte{}
	}
	return memory.NewBufferBytes(arrow.GetBytes(offs)), memory.NewBufferBytes(data)
}

func concatLists[O arrow.OffsetType](elem arrow.DataType, arrs []arrow.Array, total int) (*memory.Buffer, arrow.ArrayData) {
	offs := make([]O, total+1)
	parts := make([]arrow.Array, 0, len(arrs))
	pos := 0
	var size O
	for _, a := range arrs {
		d := a.Data()
		values := MakeFromData(d.Children()[0])
		src := windowOffsets[O](d)
		if src == nil {
			parts = append(parts, NewSlice(values, 0, 0))
			continue
		}
		base := size - src[0]
		for k := 1; k < len(src); k++ {
			offs[pos+k] = src[k] + base
		}
		parts = append(parts, NewSlice(values, int64(src[0]), int64(src[len(src)-1])))
		size += src[len(src)-1] - src[0]
		pos += d.Len()
	}
	return memory.NewBufferBytes(arrow.GetBytes(offs)), concat(elem, parts)
}

func concatTypeCodes(arrs []arrow.Array, total int) *memory.Buffer {
	out := make([]arrow.UnionTypeCode, 0, total)
	for _, a := range arrs {
		out = append(out, a.(Union).RawTypeCodes()...)
	}
	return memory.NewBufferBytes(arrow.GetBytes(out))
}

// concatDenseChildren keeps, per input and child, only the child range the
// input's slots reference and re-bases the value offsets onto it.
func concatDenseChildren(dt *arrow.DenseUnionType, arrs []arrow.Array, total int) (*memory.Buffer, []arrow.ArrayData) {
	nchild := len(dt.Fields())
	offs := make([]int32, 0, total)
	parts := make([][]arrow.Array, nchild)
	base := make([]int32, nchild)

	for _, a := range arrs {
		u := a.(*DenseUnion)
		lo := make([]int32, nchild)
		hi := make([]int32, nchild)
		for c := range lo {
			lo[c], hi[c] = -1, -1
		}
		for i := 0; i < u.Len(); i++ {
			c, o := u.ChildID(i), u.ValueOffset(i)
			if lo[c] < 0 || o < lo[c] {
				lo[c] = o
			}
			if o > hi[c] {
				hi[c] = o
			}
		}
		for i := 0; i < u.Len(); i++ {
			c := u.ChildID(i)
			offs = append(offs, u.ValueOffset(i)-lo[c]+base[c])
		}
		for c := 0; c < nchild; c++ {
			if lo[c] < 0 {
				parts[c] = append(parts[c], NewSlice(u.Field(c), 0, 0))
				continue
			}
			parts[c] = append(parts[c], NewSlice(u.Field(c), int64(lo[c]), int64(hi[c])+1))
			base[c] += hi[c] + 1 - lo[c]
		}
	}

	children := make([]arrow.ArrayData, nchild)
	for c := range children {
		children[c] = concat(dt.Fields()[c].Type, parts[c])
	}
	return memory.NewBufferBytes(arrow.GetBytes(offs)), children
}

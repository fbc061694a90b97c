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

	"github.com/JohnCGriffin/overflow"
	"github.com/arrowfixtures/feather/arrow"
	"github.com/arrowfixtures/feather/arrow/bitutil"
	"github.com/arrowfixtures/feather/arrow/decimal128"
	"github.com/arrowfixtures/feather/arrow/memory"
)

func layoutErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("arrow/array: %s: %w", fmt.Sprintf(format, args...), arrow.ErrLayout)
}

func invalidErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("arrow/array: %s: %w", fmt.Sprintf(format, args...), arrow.ErrInvalid)
}

// Build assembles an array of type dt from raw buffers and validates it
// against the type's layout. validity is the validity bitmap (nil means
// all valid) and must be nil for null and union types; buffers are the
// remaining buffers in layout order; children are the child arrays of
// nested types. Structural problems fail with arrow.ErrLayout, values that
// violate the logical type fail with arrow.ErrInvalid.
func Build(dt arrow.DataType, length int, validity *memory.Buffer, buffers []*memory.Buffer, children []arrow.Array) (arrow.Array, error) {
	if dt == nil {
		return nil, fmt.Errorf("arrow/array: nil data type: %w", arrow.ErrType)
	}
	if length < 0 {
		return nil, layoutErrorf("negative length %d", length)
	}

	id := storageType(dt).ID()
	var bufs []*memory.Buffer
	switch {
	case id == arrow.NULL:
		if validity.Len() != 0 {
			return nil, layoutErrorf("null arrays have no validity bitmap")
		}
		bufs = append([]*memory.Buffer{nil}, buffers...)
	case arrow.HasValidityBitmap(id):
		bufs = append([]*memory.Buffer{validity}, buffers...)
	default:
		if validity.Len() != 0 {
			return nil, layoutErrorf("%s arrays have no validity bitmap", dt)
		}
		bufs = append([]*memory.Buffer(nil), buffers...)
	}

	childData := make([]arrow.ArrayData, len(children))
	for i, c := range children {
		if c == nil {
			return nil, layoutErrorf("child %d is nil", i)
		}
		childData[i] = c.Data()
	}

	var valid *memory.Buffer
	if len(bufs) > 0 && arrow.HasValidityBitmap(id) {
		valid = bufs[0]
		if valid.Len() < int(bitutil.BytesForBits(int64(length))) && valid.Len() != 0 {
			return nil, layoutErrorf("validity bitmap of %d bytes too short for %d values", valid.Len(), length)
		}
	}
	data := NewData(dt, length, bufs, childData, countNulls(dt, valid, 0, length), 0)
	if err := ValidateData(data); err != nil {
		return nil, err
	}
	return MakeFromData(data), nil
}

// ValidateData checks data against the physical layout of its type and
// the value constraints of its logical type.
func ValidateData(data arrow.ArrayData) error {
	return validate(data, true)
}

// ValidateLayout checks data against the physical layout of its type only:
// buffer count and sizes, null count, offsets, child arity, types and
// lengths, union type codes and dense union offsets.
func ValidateLayout(data arrow.ArrayData) error {
	return validate(data, false)
}

func validate(d arrow.ArrayData, full bool) error {
	dt := d.DataType()
	if dt == nil {
		return layoutErrorf("nil data type")
	}
	st := storageType(dt)
	off, length := d.Offset(), d.Len()
	if off < 0 || length < 0 {
		return layoutErrorf("negative offset %d or length %d", off, length)
	}
	end, ok := overflow.Add(off, length)
	if !ok {
		return layoutErrorf("offset %d + length %d overflows", off, length)
	}

	layout := arrow.LayoutOf(dt)
	bufs := d.Buffers()
	if len(bufs) != layout.NumBuffers() {
		return layoutErrorf("%s expects %d buffers, got %d", dt, layout.NumBuffers(), len(bufs))
	}

	nulls := d.NullN()
	if nulls < 0 || nulls > length {
		return layoutErrorf("null count %d outside [0, %d]", nulls, length)
	}

	hasValidity := arrow.HasValidityBitmap(st.ID())
	for i, spec := range layout.Buffers {
		buf := bufs[i]
		switch spec.Kind {
		case arrow.KindAlwaysNull:
			if buf.Len() != 0 {
				return layoutErrorf("null array carries a %d byte buffer", buf.Len())
			}
		case arrow.KindBitmap:
			if i == 0 && hasValidity && buf.Len() == 0 {
				if nulls != 0 {
					return layoutErrorf("null count %d without a validity bitmap", nulls)
				}
				continue
			}
			if need := bitutil.BytesForBits(int64(end)); length > 0 && int64(buf.Len()) < need {
				return layoutErrorf("buffer %d holds %d bytes, need %d", i, buf.Len(), need)
			}
		case arrow.KindFixedWidth:
			n := end
			if isOffsetsBuffer(st, i) {
				if length == 0 {
					continue
				}
				n = end + 1
			}
			need, ok := overflow.Mul(n, spec.ByteWidth)
			if !ok {
				return layoutErrorf("buffer %d size overflows", i)
			}
			if buf.Len() < need {
				return layoutErrorf("buffer %d holds %d bytes, need %d", i, buf.Len(), need)
			}
		}
	}

	switch {
	case st.ID() == arrow.NULL:
		if nulls != length {
			return layoutErrorf("null array of length %d reports %d nulls", length, nulls)
		}
	case hasValidity && bufs[0].Len() > 0:
		if got := length - bitutil.CountSetBits(bufs[0].Bytes(), off, length); got != nulls {
			return layoutErrorf("null count %d does not match validity bitmap (%d)", nulls, got)
		}
	}

	kids := d.Children()
	if want := arrow.NumChildren(st); len(kids) != want {
		return layoutErrorf("%s expects %d children, got %d", dt, want, len(kids))
	}
	if nested, ok := st.(arrow.NestedType); ok {
		for i, f := range nested.Fields() {
			if !arrow.TypeEqual(f.Type, kids[i].DataType()) {
				return layoutErrorf("child %q has type %s, expected %s", f.Name, kids[i].DataType(), f.Type)
			}
		}
	}

	if err := validateNested(d, st, off, end); err != nil {
		return err
	}

	for i, k := range kids {
		if err := validate(k, full); err != nil {
			return fmt.Errorf("child %d: %w", i, err)
		}
	}

	if full {
		return validateValues(d, st)
	}
	return nil
}

func isOffsetsBuffer(dt arrow.DataType, i int) bool {
	switch dt.ID() {
	case arrow.BINARY, arrow.STRING, arrow.LARGE_BINARY, arrow.LARGE_STRING, arrow.LIST, arrow.LARGE_LIST:
		return i == 1
	}
	return false
}

func checkOffsets[O arrow.OffsetType](buf *memory.Buffer, off, length int, limit int64) error {
	if length == 0 {
		return nil
	}
	offs := arrow.GetData[O](buf.Bytes())
	if len(offs) < off+length+1 {
		return layoutErrorf("offsets buffer holds %d entries, need %d", len(offs), off+length+1)
	}
	prev := offs[off]
	if prev < 0 {
		return layoutErrorf("negative first offset %d", prev)
	}
	for i, o := range offs[off+1 : off+length+1] {
		if o < prev {
			return layoutErrorf("offsets not monotonic at slot %d (%d < %d)", i, o, prev)
		}
		prev = o
	}
	if int64(prev) > limit {
		return layoutErrorf("last offset %d exceeds data length %d", prev, limit)
	}
	return nil
}

func validateNested(d arrow.ArrayData, st arrow.DataType, off, end int) error {
	bufs, kids, length := d.Buffers(), d.Children(), d.Len()
	switch st := st.(type) {
	case *arrow.BinaryType, *arrow.StringType:
		return checkOffsets[int32](bufs[1], off, length, int64(bufs[2].Len()))
	case *arrow.LargeBinaryType, *arrow.LargeStringType:
		return checkOffsets[int64](bufs[1], off, length, int64(bufs[2].Len()))
	case *arrow.ListType:
		return checkOffsets[int32](bufs[1], off, length, int64(kids[0].Len()))
	case *arrow.LargeListType:
		return checkOffsets[int64](bufs[1], off, length, int64(kids[0].Len()))
	case *arrow.FixedSizeListType:
		need, ok := overflow.Mul(end, int(st.Len()))
		if !ok || kids[0].Len() < need {
			return layoutErrorf("fixed_size_list child has %d values, need %d", kids[0].Len(), need)
		}
	case *arrow.StructType:
		for i, k := range kids {
			if k.Len() < end {
				return layoutErrorf("struct field %q has %d values, need %d", st.Field(i).Name, k.Len(), end)
			}
		}
	case *arrow.SparseUnionType:
		for i, k := range kids {
			if k.Len() < end {
				return layoutErrorf("sparse union child %d has %d values, need %d", i, k.Len(), end)
			}
		}
		return checkTypeCodes(bufs[0], st, off, length)
	case *arrow.DenseUnionType:
		if err := checkTypeCodes(bufs[0], st, off, length); err != nil {
			return err
		}
		if length == 0 {
			return nil
		}
		codes := arrow.GetData[arrow.UnionTypeCode](bufs[0].Bytes())
		offsets := arrow.GetData[int32](bufs[1].Bytes())
		ids := st.ChildIDs()
		for i := off; i < end; i++ {
			child := kids[ids[codes[i]]]
			if o := offsets[i]; o < 0 || int(o) >= child.Len() {
				return layoutErrorf("dense union offset %d at slot %d outside child of length %d", o, i-off, child.Len())
			}
		}
	}
	return nil
}

func checkTypeCodes(buf *memory.Buffer, ut arrow.UnionType, off, length int) error {
	if length == 0 {
		return nil
	}
	codes := arrow.GetData[arrow.UnionTypeCode](buf.Bytes())
	ids := ut.ChildIDs()
	for i, c := range codes[off : off+length] {
		if c < 0 || ids[c] == arrow.InvalidUnionChildID {
			return layoutErrorf("invalid union type code %d at slot %d", c, i)
		}
	}
	return nil
}

func validAt(d arrow.ArrayData, i int) bool {
	bufs := d.Buffers()
	if d.NullN() == 0 || len(bufs) == 0 || bufs[0].Len() == 0 {
		return true
	}
	return bitutil.BitIsSet(bufs[0].Bytes(), d.Offset()+i)
}

func validateValues(d arrow.ArrayData, st arrow.DataType) error {
	switch st := st.(type) {
	case *arrow.Decimal128Type:
		raw := d.Buffers()[1].Bytes()
		for i := 0; i < d.Len(); i++ {
			if !validAt(d, i) {
				continue
			}
			j := (d.Offset() + i) * 16
			if v := decimal128.FromBytes(raw[j : j+16]); !v.FitsInPrecision(st.Precision) {
				return invalidErrorf("decimal value %s at slot %d exceeds precision %d", v.ToString(st.Scale), i, st.Precision)
			}
		}
	case *arrow.Date64Type:
		if d.Len() == 0 {
			return nil
		}
		vals := arrow.GetData[int64](d.Buffers()[1].Bytes())
		for i := 0; i < d.Len(); i++ {
			if v := vals[d.Offset()+i]; validAt(d, i) && v%arrow.MillisecondsPerDay != 0 {
				return invalidErrorf("date64 value %d at slot %d is not a whole day", v, i)
			}
		}
	}
	return nil
}

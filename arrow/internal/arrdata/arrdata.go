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

// Package arrdata exports tables ready to be used for tests and for
// generating sample Feather files.
package arrdata

import (
	"sort"
	"time"
	_ "time/tzdata"

	"github.com/arrowfixtures/feather/arrow"
	"github.com/arrowfixtures/feather/arrow/array"
	"github.com/arrowfixtures/feather/arrow/decimal128"
	"github.com/arrowfixtures/feather/arrow/extensions"
	"github.com/arrowfixtures/feather/arrow/float16"
	"github.com/google/uuid"
)

var (
	// Tables maps a fixture name to its record batches. All batches of a
	// fixture share one schema.
	Tables     = make(map[string][]*array.Table)
	TableNames []string
)

// ExtensionType is the extension type of the "extension" column of the
// table fixture: uint8 storage named "extension_name".
var ExtensionType = extensions.NewOpaqueType(arrow.PrimitiveTypes.Uint8, "extension_name", "extension_metadata")

func init() {
	for _, typ := range extensionTypes() {
		if err := arrow.RegisterExtensionType(typ); err != nil {
			panic(err)
		}
	}

	Tables["primitives"] = makePrimitiveTables()
	Tables["nulls"] = makeNullTables()
	Tables["strings"] = withEdgeBatches(makeStringTables())
	Tables["fixed_size_binary"] = withEdgeBatches(makeFixedSizeBinaryTables())
	Tables["large_types"] = withEdgeBatches(makeLargeTypeTables())
	Tables["lists"] = withEdgeBatches(makeListTables())
	Tables["fixed_size_lists"] = withEdgeBatches(makeFixedSizeListTables())
	Tables["structs"] = withEdgeBatches(makeStructTables())
	Tables["unions"] = withEdgeBatches(makeUnionTables())
	Tables["decimal128"] = withEdgeBatches(makeDecimal128Tables())
	Tables["temporal"] = withEdgeBatches(makeTemporalTables())
	Tables["extension"] = withEdgeBatches(makeExtensionTables())
	Tables["sliced"] = makeSlicedTables()
	Tables["table"] = []*array.Table{Table()}
	Tables["large_table"] = []*array.Table{LargeTable()}

	for k := range Tables {
		TableNames = append(TableNames, k)
	}
	sort.Strings(TableNames)
}

func extensionTypes() []arrow.ExtensionType {
	return []arrow.ExtensionType{
		ExtensionType,
		extensions.NewUUIDType(),
		extensions.NewBool8Type(),
		must(extensions.NewJSONType(arrow.BinaryTypes.String)),
	}
}

// Registry returns a registry holding the fixture extension types.
func Registry() *arrow.ExtensionRegistry {
	reg := arrow.NewExtensionRegistry()
	for _, typ := range extensionTypes() {
		must0(reg.Register(typ))
	}
	return reg
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func must0(err error) {
	if err != nil {
		panic(err)
	}
}

func col(name string, arr arrow.Array) array.Column {
	return array.Column{Name: name, Array: arr, Nullable: true}
}

func tableOf(md *arrow.Metadata, cols ...array.Column) *array.Table {
	fields := make([]arrow.Field, len(cols))
	arrs := make([]arrow.Array, len(cols))
	for i, c := range cols {
		fields[i] = arrow.Field{Name: c.Name, Type: c.Array.DataType(), Nullable: c.Nullable}
		arrs[i] = c.Array
	}
	return must(array.NewTable(arrow.NewSchema(fields, md), arrs))
}

// withEdgeBatches appends a batch without rows and a batch in which every
// slot is null.
func withEdgeBatches(tbls []*array.Table) []*array.Table {
	schema := tbls[0].Schema()
	empty := make([]arrow.Array, schema.NumFields())
	nulls := make([]arrow.Array, schema.NumFields())
	for i, f := range schema.Fields() {
		empty[i] = array.NewSlice(tbls[0].Column(i), 0, 0)
		nulls[i] = must(array.MakeArrayOfNull(f.Type, 3))
	}
	return append(tbls, must(array.NewTable(schema, empty)), must(array.NewTable(schema, nulls)))
}

func makePrimitiveTables() []*array.Table {
	meta := arrow.NewMetadata(
		[]string{"k1", "k2", "k3"},
		[]string{"v1", "v2", "v3"},
	)

	batch := func(n int, mask []bool) *array.Table {
		bools := make([]bool, n)
		i8 := make([]int8, n)
		i16 := make([]int16, n)
		i32 := make([]int32, n)
		i64 := make([]int64, n)
		u8 := make([]uint8, n)
		u16 := make([]uint16, n)
		u32 := make([]uint32, n)
		u64 := make([]uint64, n)
		f32 := make([]float32, n)
		f64 := make([]float64, n)
		for i := 0; i < n; i++ {
			bools[i] = i%3 == 0
			i8[i] = int8(-i)
			i16[i] = int16(-i * 100)
			i32[i] = int32(-i * 10000)
			i64[i] = int64(-i) << 40
			u8[i] = uint8(i)
			u16[i] = uint16(i * 100)
			u32[i] = uint32(i * 10000)
			u64[i] = uint64(i) << 40
			f32[i] = float32(i) + 0.5
			f64[i] = float64(i) - 0.25
		}
		return tableOf(&meta,
			col("bools", array.NewBoolean(bools, mask)),
			col("int8s", array.NewInt8(i8, mask)),
			col("int16s", array.NewInt16(i16, mask)),
			col("int32s", array.NewInt32(i32, mask)),
			col("int64s", array.NewInt64(i64, mask)),
			col("uint8s", array.NewUint8(u8, mask)),
			col("uint16s", array.NewUint16(u16, mask)),
			col("uint32s", array.NewUint32(u32, mask)),
			col("uint64s", array.NewUint64(u64, mask)),
			col("float32s", array.NewFloat32(f32, mask)),
			col("float64s", array.NewFloat64(f64, mask)),
		)
	}

	return []*array.Table{
		batch(5, []bool{true, false, false, true, true}),
		batch(10, []bool{true, false, true, true, true, true, false, true, true, true}),
		batch(3, nil),
		batch(0, nil),
		batch(4, []bool{false, false, false, false}),
	}
}

func makeNullTables() []*array.Table {
	meta := arrow.NewMetadata([]string{"k1"}, []string{"v1"})
	return []*array.Table{
		tableOf(&meta, col("nulls", array.NewNull(5))),
		tableOf(&meta, col("nulls", array.NewNull(0))),
		tableOf(&meta, col("nulls", array.NewNull(3))),
	}
}

func makeStringTables() []*array.Table {
	return []*array.Table{
		tableOf(nil,
			col("strings", array.NewString([]string{"1é", "2", "", "4", "5"}, []bool{true, false, true, true, true})),
			col("bytes", array.NewBinary([][]byte{[]byte("1é"), nil, {}, []byte("4"), []byte("5")}, []bool{true, false, true, true, true})),
		),
		tableOf(nil,
			col("strings", array.NewString([]string{"11", "22", "33", "44", "55"}, nil)),
			col("bytes", array.NewBinary([][]byte{[]byte("11"), []byte("22"), []byte("33"), []byte("44"), []byte("55")}, nil)),
		),
		tableOf(nil,
			col("strings", array.NewString([]string{"", "", ""}, []bool{false, false, false})),
			col("bytes", array.NewBinary([][]byte{nil, nil, nil}, []bool{false, false, false})),
		),
	}
}

func makeFixedSizeBinaryTables() []*array.Table {
	dt := must(arrow.NewFixedSizeBinaryType(3))
	return []*array.Table{
		tableOf(nil, col("fsb", must(array.NewFixedSizeBinary(dt, [][]byte{[]byte("abc"), nil, []byte("\x00\x01\x02"), []byte("xyz")}, []bool{true, false, true, true})))),
		tableOf(nil, col("fsb", must(array.NewFixedSizeBinary(dt, [][]byte{[]byte("zzz")}, nil)))),
	}
}

func makeLargeTypeTables() []*array.Table {
	values := array.NewInt32([]int32{1, 2, 3, 4, 5, 6, 7}, []bool{true, true, false, true, true, true, true})
	return []*array.Table{
		tableOf(nil,
			col("large_strings", array.NewLargeString([]string{"alpha", "", "gamma", "delta"}, []bool{true, false, true, true})),
			col("large_bytes", array.NewLargeBinary([][]byte{[]byte("a"), []byte("bb"), {}, []byte("dddd")}, nil)),
			col("large_lists", must(array.NewLargeListFromArrays([]int64{0, 3, 3, 5, 7}, values, []bool{true, false, true, true}))),
		),
	}
}

func makeListTables() []*array.Table {
	int32s := array.NewInt32([]int32{1, 2, 3, 4, 5, 11, 12, 13, 14, 15}, []bool{true, false, true, true, true, true, true, false, true, true})
	inner := array.NewInt8([]int8{1, 2, 3, 4, 5, 6}, nil)
	innerLists := must(array.NewListFromArrays([]int32{0, 2, 2, 6}, inner, []bool{true, false, true}))

	return []*array.Table{
		tableOf(nil,
			col("list_nullable", must(array.NewListFromArrays([]int32{0, 5, 5, 10}, int32s, []bool{true, false, true}))),
			col("list_of_lists", must(array.NewListFromArrays([]int32{0, 1, 1, 3}, innerLists, nil))),
		),
		tableOf(nil,
			col("list_nullable", must(array.NewListFromArrays([]int32{0, 0, 0, 0}, array.NewInt32(nil, nil), []bool{false, true, false}))),
			col("list_of_lists", must(array.NewListFromArrays([]int32{0, 0, 2, 3}, innerLists, []bool{true, true, false}))),
		),
	}
}

func makeFixedSizeListTables() []*array.Table {
	int32s := array.NewInt32([]int32{1, 2, 3, 4, 5, 6, 7, 8, 9}, []bool{true, false, true, true, true, true, true, true, true})
	uint8s := array.NewUint8([]uint8{1, 2, 3, 4, 5, 6}, nil)
	return []*array.Table{
		tableOf(nil,
			col("fsl3_int32", must(array.NewFixedSizeListFromArrays(3, int32s, []bool{true, false, true}))),
			col("fsl2_uint8", must(array.NewFixedSizeListFromArrays(2, uint8s, nil))),
		),
	}
}

func makeStructTables() []*array.Table {
	fields := []arrow.Field{
		{Name: "f1", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
		{Name: "f2", Type: arrow.BinaryTypes.String, Nullable: true},
	}

	batch := func(ids []int32, names []string, valid, mask []bool) *array.Table {
		return tableOf(nil, col("struct_nullable", must(array.NewStructFromArrays(fields,
			[]arrow.Array{array.NewInt32(ids, mask), array.NewString(names, mask)}, valid))))
	}

	return []*array.Table{
		batch([]int32{-1, -2, -3, -4, -5}, []string{"111", "222", "333", "444", "555"},
			[]bool{true, false, true, true, true}, []bool{true, true, false, true, true}),
		batch([]int32{1, 2, 3}, []string{"a", "bb", "ccc"}, nil, nil),
	}
}

// UnionFields are the children of the union fixtures.
var UnionFields = []arrow.Field{
	{Name: "a", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
	{Name: "b", Type: arrow.FixedWidthTypes.Boolean, Nullable: true},
}

// DenseUnion holds 5, false, true with children [5] and [false, true].
func DenseUnion() *array.DenseUnion {
	return must(array.NewDenseUnionFromArrays(
		[]arrow.UnionTypeCode{0, 1, 1},
		[]int32{0, 0, 1},
		[]arrow.Array{array.NewInt32([]int32{5}, nil), array.NewBoolean([]bool{false, true}, nil)},
		UnionFields, []arrow.UnionTypeCode{0, 1}))
}

// SparseUnion holds the same values as DenseUnion.
func SparseUnion() *array.SparseUnion {
	return must(array.NewSparseUnionFromArrays(
		[]arrow.UnionTypeCode{0, 1, 1},
		[]arrow.Array{array.NewInt32([]int32{5, 0, 0}, nil), array.NewBoolean([]bool{false, false, true}, nil)},
		UnionFields, []arrow.UnionTypeCode{0, 1}))
}

func makeUnionTables() []*array.Table {
	codes := []arrow.UnionTypeCode{2, 7}
	fields := []arrow.Field{
		{Name: "s", Type: arrow.BinaryTypes.String, Nullable: true},
		{Name: "f", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	}
	children := []arrow.Array{
		array.NewString([]string{"x", "", "zz"}, []bool{true, false, true}),
		array.NewFloat64([]float64{1.5, 2.5}, nil),
	}
	coded := func(ids []arrow.UnionTypeCode, offsets []int32) arrow.Array {
		return must(array.NewDenseUnionFromArrays(ids, offsets, children, fields, codes))
	}

	return []*array.Table{
		tableOf(nil,
			col("dense", DenseUnion()),
			col("sparse", SparseUnion()),
			col("coded", coded([]arrow.UnionTypeCode{7, 2, 2}, []int32{1, 0, 1})),
		),
		tableOf(nil,
			col("dense", must(array.NewDenseUnionFromArrays(
				[]arrow.UnionTypeCode{1, 0}, []int32{1, 0},
				[]arrow.Array{array.NewInt32([]int32{9}, nil), array.NewBoolean([]bool{false, true}, []bool{true, false})},
				UnionFields, []arrow.UnionTypeCode{0, 1}))),
			col("sparse", must(array.NewSparseUnionFromArrays(
				[]arrow.UnionTypeCode{1, 0},
				[]arrow.Array{array.NewInt32([]int32{0, 9}, nil), array.NewBoolean([]bool{true, false}, []bool{false, true})},
				UnionFields, []arrow.UnionTypeCode{0, 1}))),
			col("coded", coded([]arrow.UnionTypeCode{2, 7}, []int32{2, 0})),
		),
	}
}

func makeDecimal128Tables() []*array.Table {
	dt := must(arrow.NewDecimal128Type(10, 3))
	dec := func(vs ...int64) []decimal128.Num {
		out := make([]decimal128.Num, len(vs))
		for i, v := range vs {
			out[i] = decimal128.FromI64(v)
		}
		return out
	}
	return []*array.Table{
		tableOf(nil, col("dec128s", must(array.NewDecimal128(dt, dec(1230, -2670, 0, 4930, 9999999999), []bool{true, true, false, true, true})))),
		tableOf(nil, col("dec128s", must(array.NewDecimal128(dt, dec(1, 2), nil)))),
	}
}

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func makeTemporalTables() []*array.Table {
	tsNY := must(arrow.NewTimestampType(arrow.Second, "America/New_York"))
	days := []time.Time{day(2021, 1, 3), day(2021, 5, 6), day(1969, 8, 9), day(2000, 2, 29)}
	mask := []bool{true, true, false, true}

	halves := []float16.Num{float16.New(1.5), float16.New(-0.25), float16.New(0), float16.New(65504)}

	d32 := make([]arrow.Date32, len(days))
	d64 := make([]arrow.Date64, len(days))
	ts := make([]arrow.Timestamp, len(days))
	tsns := make([]arrow.Timestamp, len(days))
	for i, d := range days {
		d32[i] = arrow.Date32FromTime(d)
		d64[i] = arrow.Date64FromTime(d)
		ts[i] = arrow.Timestamp(d.Add(time.Duration(i) * time.Hour).Unix())
		tsns[i] = arrow.Timestamp(d.UnixNano() + int64(i))
	}

	return []*array.Table{
		tableOf(nil,
			col("date32s", array.NewDate32(d32, mask)),
			col("date64s", must(array.NewDate64(d64, mask))),
			col("time32ms", must(array.NewNumeric(arrow.FixedWidthTypes.Time32ms, []arrow.Time32{0, 1000, 86399999, 42}, mask))),
			col("time32s", must(array.NewNumeric(arrow.FixedWidthTypes.Time32s, []arrow.Time32{0, 1, 86399, 42}, nil))),
			col("time64us", must(array.NewNumeric(arrow.FixedWidthTypes.Time64us, []arrow.Time64{0, 1, 86399999999, 42}, mask))),
			col("time64ns", must(array.NewNumeric(arrow.FixedWidthTypes.Time64ns, []arrow.Time64{0, 1, 86399999999999, 42}, nil))),
			col("timestamp_s_ny", must(array.NewNumeric[arrow.Timestamp](tsNY, ts, mask))),
			col("timestamp_ns", must(array.NewNumeric(arrow.FixedWidthTypes.Timestamp_ns, tsns, nil))),
			col("durations_ms", must(array.NewNumeric(arrow.FixedWidthTypes.Duration_ms, []arrow.Duration{-5, 0, 5, 1 << 40}, mask))),
			col("durations_ns", must(array.NewNumeric(arrow.FixedWidthTypes.Duration_ns, []arrow.Duration{1, 2, 3, 4}, nil))),
			col("float16s", array.NewFloat16(halves, mask)),
			col("month_intervals", array.NewMonthInterval([]arrow.MonthInterval{1, -2, 0, 1200}, mask)),
			col("day_time_intervals", array.NewDayTimeInterval([]arrow.DayTimeInterval{
				{Days: 1, Milliseconds: 1}, {Days: -3, Milliseconds: 86399999}, {}, {Days: 365, Milliseconds: -1},
			}, mask)),
			col("month_day_nano_intervals", array.NewMonthDayNanoInterval([]arrow.MonthDayNanoInterval{
				{Months: 1, Days: 2, Nanoseconds: 3}, {Months: -1, Days: 0, Nanoseconds: 1 << 40}, {}, {Months: 12, Days: -30, Nanoseconds: -1},
			}, nil)),
		),
	}
}

func makeExtensionTables() []*array.Table {
	ids := []uuid.UUID{
		uuid.MustParse("f81d4fae-7dec-11d0-a765-00a0c91e6bf6"),
		uuid.Nil,
		uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
	}
	return []*array.Table{
		tableOf(nil,
			col("uuids", must(extensions.NewUUIDArray(ids, []bool{true, false, true}))),
			col("extension", must(array.NewExtensionArrayWithStorage(ExtensionType, array.NewUint8([]uint8{1, 2, 3}, nil)))),
			col("bool8s", must(extensions.NewBool8Array([]bool{true, false, true}, []bool{true, true, false}))),
			col("json", must(extensions.NewJSONArray([]string{`{"a":1}`, `[1,"x",null]`, ""}, []bool{true, true, false}))),
		),
		tableOf(nil,
			col("uuids", must(extensions.NewUUIDArray(ids[:1], nil))),
			col("extension", must(array.NewExtensionArrayWithStorage(ExtensionType, array.NewUint8([]uint8{4}, []bool{false})))),
			col("bool8s", must(extensions.NewBool8Array([]bool{false}, nil))),
			col("json", must(extensions.NewJSONArray([]string{`"s"`}, nil))),
		),
	}
}

// makeSlicedTables returns batches whose columns are slices at offsets
// that are not multiples of 8, so that writers must re-base bitmaps,
// offsets and children.
func makeSlicedTables() []*array.Table {
	const n = 12
	bools := make([]bool, n)
	ints := make([]int32, n)
	strs := make([]string, n)
	valid := make([]bool, n)
	for i := 0; i < n; i++ {
		bools[i] = i%2 == 1
		ints[i] = int32(i * i)
		strs[i] = string(rune('a' + i))
		valid[i] = i%4 != 2
	}
	values := array.NewInt32(ints, valid)
	offsets := make([]int32, n+1)
	for i := range offsets {
		offsets[i] = int32(i)
	}

	cols := []array.Column{
		col("bools", array.NewBoolean(bools, valid)),
		col("ints", values),
		col("strings", array.NewString(strs, valid)),
		col("lists", must(array.NewListFromArrays(offsets, values, valid))),
		col("fsl", must(array.NewFixedSizeListFromArrays(1, values, valid))),
		col("structs", must(array.NewStructFromArrays(
			[]arrow.Field{{Name: "i", Type: arrow.PrimitiveTypes.Int32, Nullable: true}},
			[]arrow.Array{values}, valid))),
		col("dense", must(array.NewDenseUnionFromArrays(
			[]arrow.UnionTypeCode{0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 1, 0},
			[]int32{0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5},
			[]arrow.Array{array.NewInt32([]int32{10, 11, 12, 13, 14, 15}, nil), array.NewBoolean([]bool{true, false, true, false, true, false}, nil)},
			UnionFields, []arrow.UnionTypeCode{0, 1}))),
		col("sparse", must(array.NewSparseUnionFromArrays(
			[]arrow.UnionTypeCode{1, 0, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1},
			[]arrow.Array{values, array.NewBoolean(bools, nil)},
			UnionFields, []arrow.UnionTypeCode{0, 1}))),
	}

	slice := func(i, j int64) *array.Table {
		out := make([]array.Column, len(cols))
		for k, c := range cols {
			out[k] = array.Column{Name: c.Name, Array: array.NewSlice(c.Array, i, j), Nullable: true}
		}
		return tableOf(nil, out...)
	}
	return []*array.Table{slice(3, 10), slice(1, 2), slice(9, 12), slice(5, 5)}
}

// Table is the reference table of the format: one column per layout.
func Table() *array.Table {
	fsl := must(array.NewFixedSizeListFromArrays(2, array.NewUint8([]uint8{1, 2, 3, 4, 5, 6}, nil), nil))
	st := must(array.NewStructFromArrays(
		[]arrow.Field{
			{Name: "x", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
			{Name: "y", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		},
		[]arrow.Array{array.NewFloat64([]float64{1, 2, 3}, nil), array.NewFloat64([]float64{5, 6, 7}, nil)}, nil))
	list := must(array.NewListFromArrays([]int32{0, 1, 3, 6}, array.NewUint8([]uint8{1, 2, 3, 4, 5, 6}, nil), nil))
	ext := must(array.NewExtensionArrayWithStorage(ExtensionType, array.NewUint8([]uint8{1, 2, 3}, nil)))
	dec := must(array.NewDecimal128(must(arrow.NewDecimal128Type(10, 3)),
		[]decimal128.Num{decimal128.FromI64(1230), decimal128.FromI64(2670), decimal128.FromI64(4930)}, nil))

	days := []time.Time{day(2021, 1, 3), day(2021, 5, 6), day(2021, 8, 9)}

	d32 := make([]arrow.Date32, len(days))
	d64 := make([]arrow.Date64, len(days))
	ts := make([]arrow.Timestamp, len(days))
	for i, d := range days {
		d32[i] = arrow.Date32FromTime(d)
		d64[i] = arrow.Date64FromTime(d)
		ts[i] = arrow.Timestamp(d.Add(14*time.Hour + time.Duration(i)*time.Minute).Unix())
	}
	tsNY := must(arrow.NewTimestampType(arrow.Second, "America/New_York"))

	return tableOf(nil,
		col("fixedsizelist", fsl),
		col("struct", st),
		col("binary", array.NewBinary([][]byte{[]byte("a"), []byte("ab"), []byte("abc")}, nil)),
		col("string", array.NewString([]string{"a", "foo", "barbaz"}, nil)),
		col("boolean", array.NewBoolean([]bool{true, false, true}, nil)),
		col("null", array.NewNull(3)),
		col("list", list),
		col("extension", ext),
		col("decimal128", dec),
		col("date32", array.NewDate32(d32, nil)),
		col("date64", must(array.NewDate64(d64, nil))),
		col("timestamp", must(array.NewNumeric[arrow.Timestamp](tsNY, ts, nil))),
		col("nullable_int", array.NewUint8([]uint8{1, 2, 3}, []bool{false, true, false})),
	)
}

// LargeTable holds the 64-bit offset variants of the table fixture
// columns, in this order: large_binary, large_string, large_list.
func LargeTable() *array.Table {
	return tableOf(nil,
		col("large_binary", array.NewLargeBinary([][]byte{[]byte("a"), []byte("ab"), []byte("abc")}, nil)),
		col("large_string", array.NewLargeString([]string{"a", "foo", "barbaz"}, nil)),
		col("large_list", must(array.NewLargeListFromArrays([]int64{0, 1, 3, 6}, array.NewUint8([]uint8{1, 2, 3, 4, 5, 6}, nil), nil))),
	)
}

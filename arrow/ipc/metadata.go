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

package ipc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/arrowfixtures/feather/arrow"
	"github.com/arrowfixtures/feather/arrow/internal/flatbuf"
	"github.com/arrowfixtures/feather/arrow/memory"
	flatbuffers "github.com/google/flatbuffers/go"
	"golang.org/x/xerrors"
)

type fieldMetadata struct {
	Len    int64
	Nulls  int64
	Offset int64
}

type bufferMetadata struct {
	Offset int64 // relative offset into the message body to the starting byte of the buffer
	Len    int64 // absolute length in bytes of the buffer
}

// FileBlock locates an encapsulated message in a file: Meta counts the
// prefix, the flatbuffer and its padding, Body the message body.
type FileBlock struct {
	Offset int64
	Meta   int32
	Body   int64
}

// blockSize is the encoded width of a Block struct in the footer.
const blockSize = 24

func formatErrorf(format string, args ...interface{}) error {
	return xerrors.Errorf("arrow/ipc: "+format+": %w", append(args, ErrFormat)...)
}

func unsupportedErrorf(format string, args ...interface{}) error {
	return xerrors.Errorf("arrow/ipc: "+format+": %w", append(args, ErrUnsupportedType)...)
}

func unitToFB(unit arrow.TimeUnit) flatbuf.TimeUnit {
	switch unit {
	case arrow.Second:
		return flatbuf.TimeUnitSECOND
	case arrow.Millisecond:
		return flatbuf.TimeUnitMILLISECOND
	case arrow.Microsecond:
		return flatbuf.TimeUnitMICROSECOND
	default:
		return flatbuf.TimeUnitNANOSECOND
	}
}

func unitFromFB(unit flatbuf.TimeUnit) (arrow.TimeUnit, error) {
	switch unit {
	case flatbuf.TimeUnitSECOND:
		return arrow.Second, nil
	case flatbuf.TimeUnitMILLISECOND:
		return arrow.Millisecond, nil
	case flatbuf.TimeUnitMICROSECOND:
		return arrow.Microsecond, nil
	case flatbuf.TimeUnitNANOSECOND:
		return arrow.Nanosecond, nil
	}
	return 0, formatErrorf("invalid time unit %d", unit)
}

// schemaToFB serializes schema. Extension types are written as their
// storage type with the extension name and metadata in the field metadata.
func schemaToFB(b *flatbuffers.Builder, schema *arrow.Schema) (flatbuffers.UOffsetT, error) {
	fields := make([]flatbuffers.UOffsetT, schema.NumFields())
	for i, field := range schema.Fields() {
		off, err := fieldToFB(b, field, 0)
		if err != nil {
			return 0, xerrors.Errorf("arrow/ipc: field %q: %w", field.Name, err)
		}
		fields[i] = off
	}

	flatbuf.SchemaStartFieldsVector(b, len(fields))
	for i := len(fields) - 1; i >= 0; i-- {
		b.PrependUOffsetT(fields[i])
	}
	fieldsFB := b.EndVector(len(fields))
	metaFB := metadataToFB(b, schema.Metadata(), flatbuf.SchemaStartCustomMetadataVector)

	flatbuf.SchemaStart(b)
	flatbuf.SchemaAddEndianness(b, flatbuf.EndiannessLittle)
	flatbuf.SchemaAddFields(b, fieldsFB)
	if metaFB != 0 {
		flatbuf.SchemaAddCustomMetadata(b, metaFB)
	}
	return flatbuf.SchemaEnd(b), nil
}

func fieldToFB(b *flatbuffers.Builder, field arrow.Field, depth int) (flatbuffers.UOffsetT, error) {
	if depth > maxNestingDepth {
		return 0, unsupportedErrorf("nesting deeper than %d levels", maxNestingDepth)
	}
	if field.Type == nil {
		return 0, unsupportedErrorf("field %q has no type", field.Name)
	}

	dt, md := field.Type, field.Metadata
	if ext, ok := dt.(arrow.ExtensionType); ok {
		md = extensionMetadata(md, ext)
		dt = ext.StorageType()
	}

	var kids []flatbuffers.UOffsetT
	if nested, ok := dt.(arrow.NestedType); ok {
		kids = make([]flatbuffers.UOffsetT, len(nested.Fields()))
		for i, kid := range nested.Fields() {
			off, err := fieldToFB(b, kid, depth+1)
			if err != nil {
				return 0, err
			}
			kids[i] = off
		}
	}

	typeTag, typeFB, err := typeToFB(b, dt)
	if err != nil {
		return 0, err
	}

	name := b.CreateString(field.Name)
	flatbuf.FieldStartChildrenVector(b, len(kids))
	for i := len(kids) - 1; i >= 0; i-- {
		b.PrependUOffsetT(kids[i])
	}
	kidsFB := b.EndVector(len(kids))
	metaFB := metadataToFB(b, md, flatbuf.FieldStartCustomMetadataVector)

	flatbuf.FieldStart(b)
	flatbuf.FieldAddName(b, name)
	flatbuf.FieldAddNullable(b, field.Nullable)
	flatbuf.FieldAddTypeType(b, typeTag)
	flatbuf.FieldAddType(b, typeFB)
	flatbuf.FieldAddChildren(b, kidsFB)
	if metaFB != 0 {
		flatbuf.FieldAddCustomMetadata(b, metaFB)
	}
	return flatbuf.FieldEnd(b), nil
}

func extensionMetadata(md arrow.Metadata, ext arrow.ExtensionType) arrow.Metadata {
	md = md.Without(arrow.ExtensionNameKey, arrow.ExtensionMetadataKey)
	keys := append(md.Keys(), arrow.ExtensionNameKey, arrow.ExtensionMetadataKey)
	vals := append(md.Values(), ext.ExtensionName(), ext.Serialize())
	return arrow.NewMetadata(keys, vals)
}

func intToFB(b *flatbuffers.Builder, bitWidth int32, signed bool) flatbuffers.UOffsetT {
	flatbuf.IntStart(b)
	flatbuf.IntAddBitWidth(b, bitWidth)
	flatbuf.IntAddIsSigned(b, signed)
	return flatbuf.IntEnd(b)
}

func floatToFB(b *flatbuffers.Builder, precision flatbuf.Precision) flatbuffers.UOffsetT {
	flatbuf.FloatingPointStart(b)
	flatbuf.FloatingPointAddPrecision(b, precision)
	return flatbuf.FloatingPointEnd(b)
}

func intervalToFB(b *flatbuffers.Builder, unit flatbuf.IntervalUnit) flatbuffers.UOffsetT {
	flatbuf.IntervalStart(b)
	flatbuf.IntervalAddUnit(b, unit)
	return flatbuf.IntervalEnd(b)
}

func emptyToFB(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	flatbuf.EmptyTypeStart(b)
	return flatbuf.EmptyTypeEnd(b)
}

// typeToFB writes the type table of dt and returns it with its union tag.
func typeToFB(b *flatbuffers.Builder, dt arrow.DataType) (flatbuf.Type, flatbuffers.UOffsetT, error) {
	switch dt := dt.(type) {
	case *arrow.NullType:
		return flatbuf.TypeNull, emptyToFB(b), nil
	case *arrow.BooleanType:
		return flatbuf.TypeBool, emptyToFB(b), nil
	case *arrow.Int8Type:
		return flatbuf.TypeInt, intToFB(b, 8, true), nil
	case *arrow.Int16Type:
		return flatbuf.TypeInt, intToFB(b, 16, true), nil
	case *arrow.Int32Type:
		return flatbuf.TypeInt, intToFB(b, 32, true), nil
	case *arrow.Int64Type:
		return flatbuf.TypeInt, intToFB(b, 64, true), nil
	case *arrow.Uint8Type:
		return flatbuf.TypeInt, intToFB(b, 8, false), nil
	case *arrow.Uint16Type:
		return flatbuf.TypeInt, intToFB(b, 16, false), nil
	case *arrow.Uint32Type:
		return flatbuf.TypeInt, intToFB(b, 32, false), nil
	case *arrow.Uint64Type:
		return flatbuf.TypeInt, intToFB(b, 64, false), nil
	case *arrow.Float16Type:
		return flatbuf.TypeFloatingPoint, floatToFB(b, flatbuf.PrecisionHALF), nil
	case *arrow.Float32Type:
		return flatbuf.TypeFloatingPoint, floatToFB(b, flatbuf.PrecisionSINGLE), nil
	case *arrow.Float64Type:
		return flatbuf.TypeFloatingPoint, floatToFB(b, flatbuf.PrecisionDOUBLE), nil
	case *arrow.Decimal128Type:
		flatbuf.DecimalStart(b)
		flatbuf.DecimalAddPrecision(b, dt.Precision)
		flatbuf.DecimalAddScale(b, dt.Scale)
		flatbuf.DecimalAddBitWidth(b, 128)
		return flatbuf.TypeDecimal, flatbuf.DecimalEnd(b), nil
	case *arrow.Date32Type:
		flatbuf.DateStart(b)
		flatbuf.DateAddUnit(b, flatbuf.DateUnitDAY)
		return flatbuf.TypeDate, flatbuf.DateEnd(b), nil
	case *arrow.Date64Type:
		flatbuf.DateStart(b)
		flatbuf.DateAddUnit(b, flatbuf.DateUnitMILLISECOND)
		return flatbuf.TypeDate, flatbuf.DateEnd(b), nil
	case *arrow.Time32Type:
		flatbuf.TimeStart(b)
		flatbuf.TimeAddUnit(b, unitToFB(dt.Unit))
		flatbuf.TimeAddBitWidth(b, 32)
		return flatbuf.TypeTime, flatbuf.TimeEnd(b), nil
	case *arrow.Time64Type:
		flatbuf.TimeStart(b)
		flatbuf.TimeAddUnit(b, unitToFB(dt.Unit))
		flatbuf.TimeAddBitWidth(b, 64)
		return flatbuf.TypeTime, flatbuf.TimeEnd(b), nil
	case *arrow.TimestampType:
		var tz flatbuffers.UOffsetT
		if dt.TimeZone != "" {
			tz = b.CreateString(dt.TimeZone)
		}
		flatbuf.TimestampStart(b)
		flatbuf.TimestampAddUnit(b, unitToFB(dt.Unit))
		if tz != 0 {
			flatbuf.TimestampAddTimezone(b, tz)
		}
		return flatbuf.TypeTimestamp, flatbuf.TimestampEnd(b), nil
	case *arrow.DurationType:
		flatbuf.DurationStart(b)
		flatbuf.DurationAddUnit(b, unitToFB(dt.Unit))
		return flatbuf.TypeDuration, flatbuf.DurationEnd(b), nil
	case *arrow.MonthIntervalType:
		return flatbuf.TypeInterval, intervalToFB(b, flatbuf.IntervalUnitYEAR_MONTH), nil
	case *arrow.DayTimeIntervalType:
		return flatbuf.TypeInterval, intervalToFB(b, flatbuf.IntervalUnitDAY_TIME), nil
	case *arrow.MonthDayNanoIntervalType:
		return flatbuf.TypeInterval, intervalToFB(b, flatbuf.IntervalUnitMONTH_DAY_NANO), nil
	case *arrow.BinaryType:
		return flatbuf.TypeBinary, emptyToFB(b), nil
	case *arrow.StringType:
		return flatbuf.TypeUtf8, emptyToFB(b), nil
	case *arrow.LargeBinaryType:
		return flatbuf.TypeLargeBinary, emptyToFB(b), nil
	case *arrow.LargeStringType:
		return flatbuf.TypeLargeUtf8, emptyToFB(b), nil
	case *arrow.FixedSizeBinaryType:
		flatbuf.FixedSizeBinaryStart(b)
		flatbuf.FixedSizeBinaryAddByteWidth(b, int32(dt.ByteWidth))
		return flatbuf.TypeFixedSizeBinary, flatbuf.FixedSizeBinaryEnd(b), nil
	case *arrow.ListType:
		return flatbuf.TypeList, emptyToFB(b), nil
	case *arrow.LargeListType:
		return flatbuf.TypeLargeList, emptyToFB(b), nil
	case *arrow.FixedSizeListType:
		flatbuf.FixedSizeListStart(b)
		flatbuf.FixedSizeListAddListSize(b, dt.Len())
		return flatbuf.TypeFixedSizeList, flatbuf.FixedSizeListEnd(b), nil
	case *arrow.StructType:
		return flatbuf.TypeStruct_, emptyToFB(b), nil
	case arrow.UnionType:
		codes := dt.TypeCodes()
		flatbuf.UnionStartTypeIdsVector(b, len(codes))
		for i := len(codes) - 1; i >= 0; i-- {
			b.PrependInt32(int32(codes[i]))
		}
		ids := b.EndVector(len(codes))
		mode := flatbuf.UnionModeSparse
		if dt.Mode() == arrow.DenseMode {
			mode = flatbuf.UnionModeDense
		}
		flatbuf.UnionStart(b)
		flatbuf.UnionAddMode(b, mode)
		flatbuf.UnionAddTypeIds(b, ids)
		return flatbuf.TypeUnion, flatbuf.UnionEnd(b), nil
	}
	return flatbuf.TypeNONE, 0, unsupportedErrorf("cannot encode type %s", dt)
}

func metadataToFB(b *flatbuffers.Builder, md arrow.Metadata, start func(*flatbuffers.Builder, int) flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	if md.Len() == 0 {
		return 0
	}

	kvs := make([]flatbuffers.UOffsetT, md.Len())
	for i := range kvs {
		k := b.CreateString(md.Keys()[i])
		v := b.CreateString(md.Values()[i])
		flatbuf.KeyValueStart(b)
		flatbuf.KeyValueAddKey(b, k)
		flatbuf.KeyValueAddValue(b, v)
		kvs[i] = flatbuf.KeyValueEnd(b)
	}

	start(b, len(kvs))
	for i := len(kvs) - 1; i >= 0; i-- {
		b.PrependUOffsetT(kvs[i])
	}
	return b.EndVector(len(kvs))
}

// vectorLen checks that a flatbuffer vector of n elements, each at least
// elemSize bytes wide, fits inside buf. Lengths read from a file are
// untrusted and must not size an allocation unchecked.
func vectorLen(n, elemSize int, buf []byte, what string) (int, error) {
	if n < 0 || n > len(buf)/elemSize {
		return 0, formatErrorf("%s vector of %d entries exceeds the %d-byte flatbuffer", what, n, len(buf))
	}
	return n, nil
}

type customMetadataer interface {
	CustomMetadataLength() int
	CustomMetadata(*flatbuf.KeyValue, int) bool
	Table() flatbuffers.Table
}

func metadataFrom(md customMetadataer) (arrow.Metadata, error) {
	n, err := vectorLen(md.CustomMetadataLength(), flatbuffers.SizeUOffsetT, md.Table().Bytes, "custom metadata")
	if err != nil {
		return arrow.Metadata{}, err
	}
	var (
		keys = make([]string, n)
		vals = make([]string, n)
	)

	for i := range keys {
		var kv flatbuf.KeyValue
		if !md.CustomMetadata(&kv, i) {
			return arrow.Metadata{}, formatErrorf("could not read key-value %d from flatbuffer", i)
		}
		keys[i] = string(kv.Key())
		vals[i] = string(kv.Value())
	}

	return arrow.NewMetadata(keys, vals), nil
}

func schemaFromFB(schema *flatbuf.Schema, reg *arrow.ExtensionRegistry) (*arrow.Schema, error) {
	if schema.Endianness() != flatbuf.EndiannessLittle {
		return nil, unsupportedErrorf("big-endian data")
	}

	n, err := vectorLen(schema.FieldsLength(), flatbuffers.SizeUOffsetT, schema.Table().Bytes, "schema fields")
	if err != nil {
		return nil, err
	}
	fields := make([]arrow.Field, n)
	for i := range fields {
		var field flatbuf.Field
		if !schema.Fields(&field, i) {
			return nil, formatErrorf("could not read field %d from schema", i)
		}

		var err error
		fields[i], err = fieldFromFB(&field, reg, 0)
		if err != nil {
			return nil, xerrors.Errorf("arrow/ipc: could not convert field %d from flatbuf: %w", i, err)
		}
	}

	md, err := metadataFrom(schema)
	if err != nil {
		return nil, xerrors.Errorf("arrow/ipc: could not convert schema metadata from flatbuf: %w", err)
	}

	return arrow.NewSchema(fields, &md), nil
}

func fieldFromFB(field *flatbuf.Field, reg *arrow.ExtensionRegistry, depth int) (arrow.Field, error) {
	var (
		err error
		o   arrow.Field
	)

	if depth > maxNestingDepth {
		return o, formatErrorf("fields nested deeper than %d levels", maxNestingDepth)
	}

	o.Name = string(field.Name())
	o.Nullable = field.Nullable()
	o.Metadata, err = metadataFrom(field)
	if err != nil {
		return o, err
	}

	if field.Dictionary(nil) != nil {
		return o, unsupportedErrorf("dictionary-encoded field %q", o.Name)
	}

	n, err := vectorLen(field.ChildrenLength(), flatbuffers.SizeUOffsetT, field.Table().Bytes, "field children")
	if err != nil {
		return o, err
	}
	children := make([]arrow.Field, n)
	for i := range children {
		var childFB flatbuf.Field
		if !field.Children(&childFB, i) {
			return o, formatErrorf("could not load field child %d", i)
		}
		children[i], err = fieldFromFB(&childFB, reg, depth+1)
		if err != nil {
			return o, xerrors.Errorf("arrow/ipc: could not convert field child %d: %w", i, err)
		}
	}

	var data flatbuffers.Table
	if !field.Type(&data) {
		return o, formatErrorf("could not load type data of field %q", o.Name)
	}
	o.Type, err = concreteTypeFromFB(field.TypeType(), data, children)
	if err != nil {
		return o, err
	}

	name, ok := o.Metadata.GetValue(arrow.ExtensionNameKey)
	if !ok {
		return o, nil
	}
	extMeta, _ := o.Metadata.GetValue(arrow.ExtensionMetadataKey)
	ext, err := reg.Deserialize(name, o.Type, extMeta)
	if err != nil {
		return o, err
	}
	o.Type = ext
	o.Metadata = o.Metadata.Without(arrow.ExtensionNameKey, arrow.ExtensionMetadataKey)
	return o, nil
}

func concreteTypeFromFB(typ flatbuf.Type, data flatbuffers.Table, children []arrow.Field) (arrow.DataType, error) {
	wantChildren := func(n int) error {
		if len(children) != n {
			return formatErrorf("%s must have exactly %d child fields (got=%d)", typ, n, len(children))
		}
		return nil
	}

	switch typ {
	case flatbuf.TypeNONE:
		return nil, formatErrorf("type metadata cannot be none")

	case flatbuf.TypeNull:
		return arrow.Null, nil

	case flatbuf.TypeInt:
		var dt flatbuf.Int
		dt.Init(data.Bytes, data.Pos)
		return intFromFB(dt)

	case flatbuf.TypeFloatingPoint:
		var dt flatbuf.FloatingPoint
		dt.Init(data.Bytes, data.Pos)
		return floatFromFB(dt)

	case flatbuf.TypeDecimal:
		var dt flatbuf.Decimal
		dt.Init(data.Bytes, data.Pos)
		if bw := dt.BitWidth(); bw != 128 {
			return nil, unsupportedErrorf("decimal with bit width %d", bw)
		}
		out, err := arrow.NewDecimal128Type(dt.Precision(), dt.Scale())
		if err != nil {
			return nil, formatErrorf("%v", err)
		}
		return out, nil

	case flatbuf.TypeDate:
		var dt flatbuf.Date
		dt.Init(data.Bytes, data.Pos)
		switch dt.Unit() {
		case flatbuf.DateUnitDAY:
			return arrow.FixedWidthTypes.Date32, nil
		case flatbuf.DateUnitMILLISECOND:
			return arrow.FixedWidthTypes.Date64, nil
		}
		return nil, formatErrorf("invalid date unit %d", dt.Unit())

	case flatbuf.TypeTime:
		var dt flatbuf.Time
		dt.Init(data.Bytes, data.Pos)
		unit, err := unitFromFB(dt.Unit())
		if err != nil {
			return nil, err
		}
		var out arrow.DataType
		switch dt.BitWidth() {
		case 32:
			out, err = arrow.NewTime32Type(unit)
		case 64:
			out, err = arrow.NewTime64Type(unit)
		default:
			return nil, formatErrorf("invalid time bit width %d", dt.BitWidth())
		}
		if err != nil {
			return nil, formatErrorf("%v", err)
		}
		return out, nil

	case flatbuf.TypeTimestamp:
		var dt flatbuf.Timestamp
		dt.Init(data.Bytes, data.Pos)
		unit, err := unitFromFB(dt.Unit())
		if err != nil {
			return nil, err
		}
		out, err := arrow.NewTimestampType(unit, string(dt.Timezone()))
		if err != nil {
			return nil, formatErrorf("%v", err)
		}
		return out, nil

	case flatbuf.TypeDuration:
		var dt flatbuf.Duration
		dt.Init(data.Bytes, data.Pos)
		unit, err := unitFromFB(dt.Unit())
		if err != nil {
			return nil, err
		}
		return &arrow.DurationType{Unit: unit}, nil

	case flatbuf.TypeInterval:
		var dt flatbuf.Interval
		dt.Init(data.Bytes, data.Pos)
		switch dt.Unit() {
		case flatbuf.IntervalUnitYEAR_MONTH:
			return arrow.FixedWidthTypes.MonthInterval, nil
		case flatbuf.IntervalUnitDAY_TIME:
			return arrow.FixedWidthTypes.DayTimeInterval, nil
		case flatbuf.IntervalUnitMONTH_DAY_NANO:
			return arrow.FixedWidthTypes.MonthDayNanoInterval, nil
		}
		return nil, formatErrorf("invalid interval unit %d", dt.Unit())

	case flatbuf.TypeBinary:
		return arrow.BinaryTypes.Binary, nil

	case flatbuf.TypeUtf8:
		return arrow.BinaryTypes.String, nil

	case flatbuf.TypeLargeBinary:
		return arrow.BinaryTypes.LargeBinary, nil

	case flatbuf.TypeLargeUtf8:
		return arrow.BinaryTypes.LargeString, nil

	case flatbuf.TypeFixedSizeBinary:
		var dt flatbuf.FixedSizeBinary
		dt.Init(data.Bytes, data.Pos)
		out, err := arrow.NewFixedSizeBinaryType(int(dt.ByteWidth()))
		if err != nil {
			return nil, formatErrorf("%v", err)
		}
		return out, nil

	case flatbuf.TypeBool:
		return arrow.FixedWidthTypes.Boolean, nil

	case flatbuf.TypeList:
		if err := wantChildren(1); err != nil {
			return nil, err
		}
		return arrow.ListOfField(children[0]), nil

	case flatbuf.TypeLargeList:
		if err := wantChildren(1); err != nil {
			return nil, err
		}
		return arrow.LargeListOfField(children[0]), nil

	case flatbuf.TypeFixedSizeList:
		var dt flatbuf.FixedSizeList
		dt.Init(data.Bytes, data.Pos)
		if err := wantChildren(1); err != nil {
			return nil, err
		}
		if n := dt.ListSize(); n <= 0 {
			return nil, formatErrorf("invalid fixed_size_list size %d", n)
		}
		return arrow.FixedSizeListOfField(dt.ListSize(), children[0]), nil

	case flatbuf.TypeStruct_:
		out, err := arrow.NewStructType(children...)
		if err != nil {
			return nil, formatErrorf("%v", err)
		}
		return out, nil

	case flatbuf.TypeUnion:
		var dt flatbuf.Union
		dt.Init(data.Bytes, data.Pos)
		var codes []arrow.UnionTypeCode
		if n := dt.TypeIdsLength(); n > 0 {
			if n > len(children) {
				return nil, formatErrorf("union has %d type ids for %d children", n, len(children))
			}
			codes = make([]arrow.UnionTypeCode, n)
			for i := range codes {
				id := dt.TypeIds(i)
				if id < 0 || id > int32(arrow.MaxUnionTypeCode) {
					return nil, formatErrorf("union type id %d out of range", id)
				}
				codes[i] = arrow.UnionTypeCode(id)
			}
		}
		var (
			out arrow.DataType
			err error
		)
		switch dt.Mode() {
		case flatbuf.UnionModeSparse:
			out, err = arrow.NewSparseUnionType(children, codes)
		case flatbuf.UnionModeDense:
			out, err = arrow.NewDenseUnionType(children, codes)
		default:
			return nil, formatErrorf("invalid union mode %d", dt.Mode())
		}
		if err != nil {
			return nil, formatErrorf("%v", err)
		}
		return out, nil
	}

	return nil, unsupportedErrorf("type %s", typ)
}

func intFromFB(data flatbuf.Int) (arrow.DataType, error) {
	signed := data.IsSigned()
	switch bw := data.BitWidth(); bw {
	case 8:
		if signed {
			return arrow.PrimitiveTypes.Int8, nil
		}
		return arrow.PrimitiveTypes.Uint8, nil
	case 16:
		if signed {
			return arrow.PrimitiveTypes.Int16, nil
		}
		return arrow.PrimitiveTypes.Uint16, nil
	case 32:
		if signed {
			return arrow.PrimitiveTypes.Int32, nil
		}
		return arrow.PrimitiveTypes.Uint32, nil
	case 64:
		if signed {
			return arrow.PrimitiveTypes.Int64, nil
		}
		return arrow.PrimitiveTypes.Uint64, nil
	default:
		return nil, unsupportedErrorf("integers of %d bits", bw)
	}
}

func floatFromFB(data flatbuf.FloatingPoint) (arrow.DataType, error) {
	switch p := data.Precision(); p {
	case flatbuf.PrecisionHALF:
		return arrow.FixedWidthTypes.Float16, nil
	case flatbuf.PrecisionSINGLE:
		return arrow.PrimitiveTypes.Float32, nil
	case flatbuf.PrecisionDOUBLE:
		return arrow.PrimitiveTypes.Float64, nil
	default:
		return nil, formatErrorf("floating point type with %d precision", p)
	}
}

func writeFBMessage(b *flatbuffers.Builder, hdrType flatbuf.MessageHeader, hdr flatbuffers.UOffsetT, bodyLen int64) *memory.Buffer {
	flatbuf.MessageStart(b)
	flatbuf.MessageAddVersion(b, flatbuf.MetadataVersion(currentMetadataVersion))
	flatbuf.MessageAddHeaderType(b, hdrType)
	flatbuf.MessageAddHeader(b, hdr)
	flatbuf.MessageAddBodyLength(b, bodyLen)
	msg := flatbuf.MessageEnd(b)
	b.Finish(msg)

	return memory.NewBufferBytes(b.FinishedBytes())
}

func writeSchemaMessage(schema *arrow.Schema) (*memory.Buffer, error) {
	b := flatbuffers.NewBuilder(1024)
	schemaFB, err := schemaToFB(b, schema)
	if err != nil {
		return nil, err
	}
	return writeFBMessage(b, flatbuf.MessageHeaderSchema, schemaFB, 0), nil
}

func writeRecordMessage(size, bodyLength int64, fields []fieldMetadata, meta []bufferMetadata, codec *flatbuf.CompressionType) *memory.Buffer {
	b := flatbuffers.NewBuilder(0)
	recFB := recordToFB(b, size, bodyLength, fields, meta, codec)
	return writeFBMessage(b, flatbuf.MessageHeaderRecordBatch, recFB, bodyLength)
}

func recordToFB(b *flatbuffers.Builder, size, bodyLength int64, fields []fieldMetadata, meta []bufferMetadata, codec *flatbuf.CompressionType) flatbuffers.UOffsetT {
	fieldsFB := writeFieldNodes(b, fields, flatbuf.RecordBatchStartNodesVector)
	metaFB := writeBuffers(b, meta, flatbuf.RecordBatchStartBuffersVector)
	var bodyCompressFB flatbuffers.UOffsetT
	if codec != nil {
		flatbuf.BodyCompressionStart(b)
		flatbuf.BodyCompressionAddCodec(b, *codec)
		flatbuf.BodyCompressionAddMethod(b, flatbuf.BodyCompressionMethodBUFFER)
		bodyCompressFB = flatbuf.BodyCompressionEnd(b)
	}

	flatbuf.RecordBatchStart(b)
	flatbuf.RecordBatchAddLength(b, size)
	flatbuf.RecordBatchAddNodes(b, fieldsFB)
	flatbuf.RecordBatchAddBuffers(b, metaFB)
	if codec != nil {
		flatbuf.RecordBatchAddCompression(b, bodyCompressFB)
	}
	return flatbuf.RecordBatchEnd(b)
}

func writeFieldNodes(b *flatbuffers.Builder, fields []fieldMetadata, start startVecFunc) flatbuffers.UOffsetT {
	start(b, len(fields))
	for i := len(fields) - 1; i >= 0; i-- {
		field := fields[i]
		if field.Offset != 0 {
			panic(xerrors.Errorf("arrow/ipc: field metadata for IPC must have offset 0"))
		}
		flatbuf.CreateFieldNode(b, field.Len, field.Nulls)
	}
	return b.EndVector(len(fields))
}

func writeBuffers(b *flatbuffers.Builder, buffers []bufferMetadata, start startVecFunc) flatbuffers.UOffsetT {
	start(b, len(buffers))
	for i := len(buffers) - 1; i >= 0; i-- {
		buffer := buffers[i]
		flatbuf.CreateBuffer(b, buffer.Offset, buffer.Len)
	}
	return b.EndVector(len(buffers))
}

type startVecFunc func(b *flatbuffers.Builder, n int) flatbuffers.UOffsetT

func fileBlocksToFB(b *flatbuffers.Builder, blocks []FileBlock, start startVecFunc) flatbuffers.UOffsetT {
	start(b, len(blocks))
	for i := len(blocks) - 1; i >= 0; i-- {
		blk := blocks[i]
		flatbuf.CreateBlock(b, blk.Offset, blk.Meta, blk.Body)
	}
	return b.EndVector(len(blocks))
}

func writeFileFooter(schema *arrow.Schema, recs []FileBlock, w io.Writer) error {
	var (
		b      = flatbuffers.NewBuilder(1024)
		dict   = fileBlocksToFB(b, nil, flatbuf.FooterStartDictionariesVector)
		recsFB = fileBlocksToFB(b, recs, flatbuf.FooterStartRecordBatchesVector)
	)
	schemaFB, err := schemaToFB(b, schema)
	if err != nil {
		return err
	}

	flatbuf.FooterStart(b)
	flatbuf.FooterAddVersion(b, flatbuf.MetadataVersion(currentMetadataVersion))
	flatbuf.FooterAddSchema(b, schemaFB)
	flatbuf.FooterAddDictionaries(b, dict)
	flatbuf.FooterAddRecordBatches(b, recsFB)
	footer := flatbuf.FooterEnd(b)

	b.Finish(footer)

	_, err = w.Write(b.FinishedBytes())
	return err
}

// readMessageHeader parses an encapsulated message prefix: the continuation
// marker and the int32 metadata length. Files older than Arrow 0.15 omit the
// marker; their prefix is the 4-byte length alone.
func readMessageHeader(buf []byte) (prefix int, metaLen int32, err error) {
	if len(buf) < 4 {
		return 0, 0, errors.New("message prefix too short")
	}
	metaLen = int32(binary.LittleEndian.Uint32(buf))
	prefix = 4
	if bytes.Equal(buf[:4], kIPCContToken) {
		if len(buf) < 8 {
			return 0, 0, errors.New("message prefix too short")
		}
		metaLen = int32(binary.LittleEndian.Uint32(buf[4:]))
		prefix = 8
	}
	if metaLen <= 0 {
		return 0, 0, xerrors.Errorf("invalid message metadata length %d", metaLen)
	}
	return prefix, metaLen, nil
}

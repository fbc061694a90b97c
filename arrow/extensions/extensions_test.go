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

package extensions_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/arrowfixtures/feather/arrow"
	"github.com/arrowfixtures/feather/arrow/array"
	"github.com/arrowfixtures/feather/arrow/extensions"
	"github.com/arrowfixtures/feather/arrow/ipc"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUUID = uuid.New()

func TestUUIDArray(t *testing.T) {
	arr, err := extensions.NewUUIDArray([]uuid.UUID{testUUID, uuid.Nil, testUUID}, []bool{true, false, true})
	require.NoError(t, err)

	assert.Equal(t, 3, arr.Len())
	assert.Equal(t, 1, arr.NullN())
	assert.Equal(t, testUUID, arr.Value(0))
	assert.Equal(t, uuid.Nil, arr.Value(1))
	assert.Equal(t, fmt.Sprintf(`["%[1]s" (null) "%[1]s"]`, testUUID), arr.String())
	assert.Equal(t, testUUID.String(), arr.ValueStr(2))

	b, err := json.Marshal(arr)
	require.NoError(t, err)
	assert.JSONEq(t, fmt.Sprintf(`["%[1]s", null, "%[1]s"]`, testUUID), string(b))

	assert.IsType(t, &array.FixedSizeBinary{}, arr.Storage())
}

func TestUUIDTypeDeserialize(t *testing.T) {
	typ := extensions.NewUUIDType()

	got, err := typ.Deserialize(&arrow.FixedSizeBinaryType{ByteWidth: 16}, "")
	require.NoError(t, err)
	assert.True(t, arrow.TypeEqual(typ, got))

	_, err = typ.Deserialize(arrow.BinaryTypes.Binary, "")
	assert.Error(t, err)
}

func TestOpaqueTypeEquals(t *testing.T) {
	typ := extensions.NewOpaqueType(arrow.PrimitiveTypes.Uint8, "extension_name", "extension_metadata")
	typ2 := extensions.NewOpaqueType(arrow.PrimitiveTypes.Uint8, "other", "extension_metadata")
	typ3 := extensions.NewOpaqueType(arrow.PrimitiveTypes.Uint8, "extension_name", "")
	typ4 := extensions.NewOpaqueType(arrow.PrimitiveTypes.Int64, "extension_name", "extension_metadata")
	typ5 := extensions.NewOpaqueType(arrow.PrimitiveTypes.Uint8, "extension_name", "extension_metadata")

	tests := []struct {
		lhs, rhs arrow.ExtensionType
		expected bool
	}{
		{typ, typ, true},
		{typ, typ5, true},
		{typ, typ2, false},
		{typ, typ3, false},
		{typ, typ4, false},
		{typ2, typ3, false},
		{typ, extensions.NewUUIDType(), false},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.expected, arrow.TypeEqual(tt.lhs, tt.rhs),
			"%s == %s", tt.lhs, tt.rhs)
	}
}

func TestOpaqueTypeDeserialize(t *testing.T) {
	typ := extensions.NewOpaqueType(arrow.PrimitiveTypes.Uint8, "extension_name", "extension_metadata")

	got, err := typ.Deserialize(arrow.PrimitiveTypes.Uint16, "other")
	require.NoError(t, err)
	opaque := got.(*extensions.OpaqueType)
	assert.Equal(t, "extension_name", opaque.ExtensionName())
	assert.Equal(t, "other", opaque.Serialize())
	assert.True(t, arrow.TypeEqual(arrow.PrimitiveTypes.Uint16, opaque.StorageType()))
}

func TestOpaqueArray(t *testing.T) {
	typ := extensions.NewOpaqueType(arrow.BinaryTypes.String, "geometry", "")
	arr, err := array.NewExtensionArrayWithStorage(typ, array.NewString([]string{"foobar", ""}, []bool{true, false}))
	require.NoError(t, err)

	assert.IsType(t, &extensions.OpaqueArray{}, arr)
	assert.Equal(t, 2, arr.Len())
	assert.Equal(t, 1, arr.NullN())
	assert.Equal(t, "foobar", array.GetValue(arr, 0))
}

func roundTrip(t *testing.T, reg *arrow.ExtensionRegistry, tbl *array.Table) (*array.Table, error) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, ipc.WriteFeather(&buf, tbl))
	return ipc.ReadFeather(context.Background(), bytes.NewReader(buf.Bytes()), ipc.WithExtensionRegistry(reg))
}

func TestExtensionsFileRoundTrip(t *testing.T) {
	uuids, err := extensions.NewUUIDArray([]uuid.UUID{testUUID, uuid.Nil}, []bool{true, false})
	require.NoError(t, err)

	opaque := extensions.NewOpaqueType(arrow.PrimitiveTypes.Uint8, "extension_name", "extension_metadata")
	vals, err := array.NewExtensionArrayWithStorage(opaque, array.NewUint8([]uint8{1, 2}, nil))
	require.NoError(t, err)

	tbl, err := array.NewTableFromColumns(
		array.Column{Name: "uuid", Array: uuids, Nullable: true},
		array.Column{Name: "extension", Array: vals},
	)
	require.NoError(t, err)

	reg := arrow.NewExtensionRegistry()
	require.NoError(t, reg.Register(extensions.NewUUIDType()))
	require.NoError(t, reg.Register(opaque))

	got, err := roundTrip(t, reg, tbl)
	require.NoError(t, err)
	assert.Truef(t, tbl.Equal(got), "got=%s\nwant=%s", got, tbl)
	assert.Equal(t, testUUID, got.Column(0).(*extensions.UUIDArray).Value(0))

	_, err = roundTrip(t, arrow.NewExtensionRegistry(), tbl)
	assert.True(t, errors.Is(err, arrow.ErrUnknownExtension), "err=%v", err)
}

func TestBool8Array(t *testing.T) {
	arr, err := extensions.NewBool8Array([]bool{true, false, true}, []bool{true, true, false})
	require.NoError(t, err)

	assert.Equal(t, 1, arr.NullN())
	assert.True(t, arr.Value(0))
	assert.False(t, arr.Value(1))
	assert.Equal(t, "[true false (null)]", arr.String())
	assert.Equal(t, array.NullValueStr, arr.ValueStr(2))
	assert.Equal(t, []int8{1, 0, 1}, arr.Storage().(*array.Int8).Values())

	b, err := json.Marshal(arr)
	require.NoError(t, err)
	assert.JSONEq(t, `[true, false, null]`, string(b))
}

func TestBool8TypeDeserialize(t *testing.T) {
	typ := extensions.NewBool8Type()

	for _, md := range []string{"", extensions.ExtensionNameBool8} {
		got, err := typ.Deserialize(arrow.PrimitiveTypes.Int8, md)
		require.NoError(t, err)
		assert.True(t, arrow.TypeEqual(typ, got))
	}

	_, err := typ.Deserialize(arrow.PrimitiveTypes.Uint8, "")
	assert.Error(t, err)
	_, err = typ.Deserialize(arrow.PrimitiveTypes.Int8, "bool")
	assert.Error(t, err)
}

func TestJSONArray(t *testing.T) {
	arr, err := extensions.NewJSONArray([]string{`{"a":[1,2]}`, "", `"x"`}, []bool{true, false, true})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"a": []any{float64(1), float64(2)}}, arr.Value(0))
	assert.Equal(t, "null", arr.ValueStr(1))
	assert.Equal(t, "x", arr.Value(2))
	assert.JSONEq(t, `[{"a":[1,2]}, null, "x"]`, arr.String())

	_, err = extensions.NewJSONArray([]string{`{"a":`}, nil)
	assert.True(t, errors.Is(err, arrow.ErrInvalid), "err=%v", err)
}

func TestJSONTypeStorage(t *testing.T) {
	small, err := extensions.NewJSONType(arrow.BinaryTypes.String)
	require.NoError(t, err)
	large, err := extensions.NewJSONType(arrow.BinaryTypes.LargeString)
	require.NoError(t, err)

	assert.False(t, arrow.TypeEqual(small, large))
	assert.NotEqual(t, small.Fingerprint(), large.Fingerprint())

	_, err = extensions.NewJSONType(arrow.BinaryTypes.Binary)
	assert.Error(t, err)

	got, err := small.Deserialize(&arrow.LargeStringType{}, "{}")
	require.NoError(t, err)
	assert.True(t, arrow.TypeEqual(large, got))

	_, err = small.Deserialize(arrow.BinaryTypes.String, `{"x":1}`)
	assert.Error(t, err)
}

func TestBool8JSONFileRoundTrip(t *testing.T) {
	bools, err := extensions.NewBool8Array([]bool{true, false, true}, []bool{true, false, true})
	require.NoError(t, err)
	docs, err := extensions.NewJSONArray([]string{`1`, `{"k":"v"}`, `[]`}, nil)
	require.NoError(t, err)

	tbl, err := array.NewTableFromColumns(
		array.Column{Name: "bool8", Array: bools, Nullable: true},
		array.Column{Name: "json", Array: docs},
	)
	require.NoError(t, err)

	jsonType, err := extensions.NewJSONType(arrow.BinaryTypes.String)
	require.NoError(t, err)
	reg := arrow.NewExtensionRegistry()
	require.NoError(t, reg.Register(extensions.NewBool8Type()))
	require.NoError(t, reg.Register(jsonType))

	got, err := roundTrip(t, reg, tbl)
	require.NoError(t, err)
	assert.Truef(t, tbl.Equal(got), "got=%s\nwant=%s", got, tbl)
	assert.IsType(t, &extensions.Bool8Array{}, got.Column(0))
	assert.Equal(t, map[string]any{"k": "v"}, got.Column(1).(*extensions.JSONArray).Value(1))
}

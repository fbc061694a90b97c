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

package extensions

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/arrowfixtures/feather/arrow"
	"github.com/arrowfixtures/feather/arrow/array"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// UUIDArray is a simple array which is a FixedSizeBinary(16)
type UUIDArray struct {
	array.ExtensionArrayBase
}

// NewUUIDArray builds a UUID array from vals. valid may be nil when every
// value is present.
func NewUUIDArray(vals []uuid.UUID, valid []bool) (*UUIDArray, error) {
	raw := make([][]byte, len(vals))
	for i := range vals {
		raw[i] = vals[i][:]
	}
	storage, err := array.NewFixedSizeBinary(uuidStorage(), raw, valid)
	if err != nil {
		return nil, err
	}
	arr, err := array.NewExtensionArrayWithStorage(NewUUIDType(), storage)
	if err != nil {
		return nil, err
	}
	return arr.(*UUIDArray), nil
}

func (a *UUIDArray) String() string {
	o := new(strings.Builder)
	o.WriteString("[")
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			o.WriteString(" ")
		}
		switch {
		case a.IsNull(i):
			o.WriteString(array.NullValueStr)
		default:
			fmt.Fprintf(o, "%q", a.Value(i))
		}
	}
	o.WriteString("]")
	return o.String()
}

// Value returns the UUID at slot i, or uuid.Nil for a null slot.
func (a *UUIDArray) Value(i int) uuid.UUID {
	if a.IsNull(i) {
		return uuid.Nil
	}
	return uuid.Must(uuid.FromBytes(a.Storage().(*array.FixedSizeBinary).Value(i)))
}

func (a *UUIDArray) ValueStr(i int) string {
	switch {
	case a.IsNull(i):
		return array.NullValueStr
	default:
		return a.Value(i).String()
	}
}

func (a *UUIDArray) MarshalJSON() ([]byte, error) {
	values := make([]interface{}, a.Len())
	for i := 0; i < a.Len(); i++ {
		if a.IsValid(i) {
			values[i] = a.Value(i).String()
		}
	}
	return json.Marshal(values)
}

func (a *UUIDArray) GetOneForMarshal(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}

func uuidStorage() *arrow.FixedSizeBinaryType { return &arrow.FixedSizeBinaryType{ByteWidth: 16} }

// UUIDType is the arrow.uuid canonical extension type over
// fixed_size_binary[16].
type UUIDType struct {
	arrow.ExtensionBase
}

// NewUUIDType is a convenience function to create an instance of UUIDType
// with the correct storage type
func NewUUIDType() *UUIDType {
	return &UUIDType{ExtensionBase: arrow.ExtensionBase{Storage: uuidStorage()}}
}

// ArrayType returns TypeOf(UUIDArray{}) for constructing UUID arrays
func (*UUIDType) ArrayType() reflect.Type { return reflect.TypeOf(UUIDArray{}) }

func (*UUIDType) ExtensionName() string { return "arrow.uuid" }

func (e *UUIDType) String() string { return fmt.Sprintf("extension<%s>", e.ExtensionName()) }

func (e *UUIDType) Fingerprint() string { return arrow.ExtensionFingerprint(e) }

func (e *UUIDType) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"name":"%s","metadata":"%s"}`, e.ExtensionName(), e.Serialize())), nil
}

// Serialize returns no metadata; the type has no parameters.
func (*UUIDType) Serialize() string { return "" }

// Deserialize expects storageType to be fixed_size_binary[16].
func (*UUIDType) Deserialize(storageType arrow.DataType, data string) (arrow.ExtensionType, error) {
	if !arrow.TypeEqual(storageType, uuidStorage()) {
		return nil, fmt.Errorf("invalid storage type for UUIDType: %s", storageType)
	}
	return NewUUIDType(), nil
}

// ExtensionEquals returns true if both extensions have the same name
func (e *UUIDType) ExtensionEquals(other arrow.ExtensionType) bool {
	return e.ExtensionName() == other.ExtensionName()
}

var (
	_ arrow.ExtensionType  = (*UUIDType)(nil)
	_ array.ExtensionArray = (*UUIDArray)(nil)
)

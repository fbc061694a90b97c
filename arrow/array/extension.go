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
	"reflect"

	"github.com/arrowfixtures/feather/arrow"
)

// ExtensionArray is the interface that needs to be implemented to handle
// user-defined extension type arrays. In order to ensure consistency and
// proper behavior, all ExtensionArray types must embed ExtensionArrayBase
// in order to meet the interface which provides the default implementation
// and handling for the array while allowing custom behavior to be built
// on top of it.
type ExtensionArray interface {
	arrow.Array
	// ExtensionType returns the datatype as per calling DataType(), but
	// already cast to ExtensionType
	ExtensionType() arrow.ExtensionType
	// Storage returns the underlying storage array for this array.
	Storage() arrow.Array

	// by having a non-exported function in the interface, it means that
	// consumers must embed ExtensionArrayBase in their structs in order
	// to fulfill this interface.
	mustEmbedExtensionArrayBase()
}

// ExtensionArrayBase is the base struct for user-defined Extension Array types
// and must be embedded in any user-defined extension arrays like so:
//
//	type UserDefinedArray struct {
//	    array.ExtensionArrayBase
//	}
type ExtensionArrayBase struct {
	array
	storage arrow.Array
}

func (e *ExtensionArrayBase) String() string { return e.storage.String() }

func (e *ExtensionArrayBase) MarshalJSON() ([]byte, error) { return e.storage.MarshalJSON() }

// Storage returns the underlying storage array.
func (e *ExtensionArrayBase) Storage() arrow.Array { return e.storage }

// ExtensionType returns the same thing as DataType, just already casted
// to an ExtensionType interface for convenience.
func (e *ExtensionArrayBase) ExtensionType() arrow.ExtensionType {
	return e.DataType().(arrow.ExtensionType)
}

func (e *ExtensionArrayBase) IsNull(i int) bool  { return e.storage.IsNull(i) }
func (e *ExtensionArrayBase) IsValid(i int) bool { return e.storage.IsValid(i) }
func (e *ExtensionArrayBase) NullN() int         { return e.storage.NullN() }

func (e *ExtensionArrayBase) ValueStr(i int) string { return e.storage.ValueStr(i) }

func (e *ExtensionArrayBase) GetOneForMarshal(i int) interface{} {
	return e.storage.GetOneForMarshal(i)
}

func (e *ExtensionArrayBase) setData(data *Data) {
	if data.DataType().ID() != arrow.EXTENSION {
		panic("arrow/array: must use extension type to construct an extension array")
	}
	extType := data.dtype.(arrow.ExtensionType)

	e.array.setData(data)
	storageData := NewData(extType.StorageType(), data.length, data.buffers, data.childData, data.nulls, data.offset)
	e.storage = MakeFromData(storageData)
}

// no-op function that exists simply to force embedding this in any extension array types.
func (ExtensionArrayBase) mustEmbedExtensionArrayBase() {}

// NewExtensionArrayWithStorage constructs a new ExtensionArray from the provided
// ExtensionType and uses the provided storage interface as the underlying storage.
// The new array shares the storage buffers.
func NewExtensionArrayWithStorage(dt arrow.ExtensionType, storage arrow.Array) (ExtensionArray, error) {
	if !arrow.TypeEqual(dt.StorageType(), storage.DataType()) {
		return nil, fmt.Errorf("arrow/array: storage type %s for extension type %s does not match expected %s: %w",
			storage.DataType(), dt.ExtensionName(), dt.StorageType(), arrow.ErrType)
	}

	storageData := storage.Data()
	data := NewData(dt, storageData.Len(), storageData.Buffers(), storageData.Children(), storageData.NullN(), storageData.Offset())
	return NewExtensionData(data), nil
}

// NewExtensionArrayByName looks the extension type up in reg and wraps
// storage with it. Unknown names fail with arrow.ErrUnknownExtension.
func NewExtensionArrayByName(reg *arrow.ExtensionRegistry, name string, storage arrow.Array) (ExtensionArray, error) {
	if reg == nil {
		reg = arrow.DefaultExtensionRegistry()
	}
	typ, ok := reg.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("arrow/array: extension type %q: %w", name, arrow.ErrUnknownExtension)
	}
	return NewExtensionArrayWithStorage(typ, storage)
}

// NewExtensionData expects a data with a datatype of arrow.ExtensionType and
// underlying data built for the storage array.
func NewExtensionData(data arrow.ArrayData) ExtensionArray {
	base := ExtensionArrayBase{}
	base.setData(data.(*Data))

	// use the ExtensionType's ArrayType to construct the correctly typed object
	// to use as the ExtensionArray interface. reflect.New returns a pointer to
	// the newly created object.
	typ := data.DataType().(arrow.ExtensionType).ArrayType()
	if typ == nil {
		return &base
	}
	arr := reflect.New(typ)
	// set the embedded ExtensionArrayBase to the value we created above. We know
	// that this field will exist because the interface requires embedding ExtensionArrayBase
	// so we don't have to separately check, this will panic if called on an ArrayType
	// that doesn't embed ExtensionArrayBase which is what we want.
	arr.Elem().FieldByName("ExtensionArrayBase").Set(reflect.ValueOf(base))
	return arr.Interface().(ExtensionArray)
}

var _ ExtensionArray = (*ExtensionArrayBase)(nil)

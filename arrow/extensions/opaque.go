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

	"github.com/arrowfixtures/feather/arrow"
	"github.com/arrowfixtures/feather/arrow/array"
)

// OpaqueType is an extension type known only by its name and serialized
// metadata. It lets a reader carry foreign extension columns through
// unchanged once the name is registered.
type OpaqueType struct {
	arrow.ExtensionBase

	ExtName  string
	Metadata string
}

// NewOpaqueType returns an extension type called name over storage that
// serializes to metadata.
func NewOpaqueType(storage arrow.DataType, name, metadata string) *OpaqueType {
	return &OpaqueType{
		ExtensionBase: arrow.ExtensionBase{Storage: storage},
		ExtName:       name,
		Metadata:      metadata,
	}
}

func (*OpaqueType) ArrayType() reflect.Type { return reflect.TypeOf(OpaqueArray{}) }
func (t *OpaqueType) ExtensionName() string { return t.ExtName }
func (t *OpaqueType) Serialize() string     { return t.Metadata }
func (t *OpaqueType) Fingerprint() string   { return arrow.ExtensionFingerprint(t) }

func (t *OpaqueType) String() string {
	return fmt.Sprintf("extension<%s[storage_type=%s]>", t.ExtName, t.Storage)
}

// Deserialize accepts any storage type, keeping the serialized metadata
// as given.
func (t *OpaqueType) Deserialize(storage arrow.DataType, data string) (arrow.ExtensionType, error) {
	if storage == nil {
		return nil, fmt.Errorf("opaque extension %q without storage type", t.ExtName)
	}
	return NewOpaqueType(storage, t.ExtName, data), nil
}

func (t *OpaqueType) ExtensionEquals(other arrow.ExtensionType) bool {
	o, ok := other.(*OpaqueType)
	if !ok {
		return false
	}
	return t.ExtName == o.ExtName && t.Metadata == o.Metadata && arrow.TypeEqual(t.Storage, o.Storage)
}

// OpaqueArray is the array of an OpaqueType; values are those of the
// storage array.
type OpaqueArray struct {
	array.ExtensionArrayBase
}

var (
	_ arrow.ExtensionType  = (*OpaqueType)(nil)
	_ array.ExtensionArray = (*OpaqueArray)(nil)
)

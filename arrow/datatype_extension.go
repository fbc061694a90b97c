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
	"reflect"
	"sort"
	"sync"
)

const (
	// ExtensionNameKey is the field metadata key carrying an extension name.
	ExtensionNameKey = "ARROW:extension:name"
	// ExtensionMetadataKey is the field metadata key carrying the serialized
	// extension parameters.
	ExtensionMetadataKey = "ARROW:extension:metadata"
)

// ExtensionType is the interface that must be implemented by user-defined
// logical types. Implementations embed ExtensionBase.
type ExtensionType interface {
	DataType
	// ArrayType should return the reflect.TypeOf(ExtensionArrayType{}) where the
	// ExtensionArrayType is a type that implements the array.ExtensionArray interface.
	// Such a type must also embed the array.ExtensionArrayBase in it. This will be used
	// when creating arrays of this ExtensionType by using reflect.New
	ArrayType() reflect.Type
	// ExtensionName is the unique name of this extension type.
	ExtensionName() string
	// StorageType returns the underlying storage type which is used by this extension
	// type.
	StorageType() DataType
	// ExtensionEquals is used to tell whether two ExtensionType instances are equal types.
	ExtensionEquals(ExtensionType) bool
	// Serialize should produce any extra metadata necessary for initializing an instance of
	// this user-defined type. Not all user-defined types require this and it is valid to return
	// nil from this function or an empty slice.
	Serialize() string
	// Deserialize is called when reading in extension arrays and types via the IPC format
	// in order to construct an instance of the appropriate extension type. The passed in data
	// is pulled from the ARROW:extension:metadata key and may be nil or an empty slice.
	// If the storage type is incorrect or something else is invalid with the data this should
	// return nil and an appropriate error.
	Deserialize(storageType DataType, data string) (ExtensionType, error)

	mustEmbedExtensionBase()
}

// ExtensionBase is the base struct for user-defined Extension Types which must be
// embedded in any user-defined types like so:
//
//	type UserDefinedType struct {
//	    arrow.ExtensionBase
//	    // any other data
//	}
type ExtensionBase struct {
	// Storage is the underlying storage type
	Storage DataType
}

// ID always returns arrow.EXTENSION and should not be overridden
func (*ExtensionBase) ID() Type { return EXTENSION }

// Name should always return "extension" and should not be overridden
func (*ExtensionBase) Name() string { return "extension" }

// String by default will return "extension_type<storage=storage_type>" by can be overridden
// to customize what is printed out when printing this extension type.
func (e *ExtensionBase) String() string { return fmt.Sprintf("extension_type<storage=%s>", e.Storage) }

// StorageType returns the underlying storage type and exists so that functions
// written against the ExtensionType interface can access the storage type.
func (e *ExtensionBase) StorageType() DataType { return e.Storage }

// Fingerprint covers the storage type only. Extension types override it
// with ExtensionFingerprint to tell apart extensions sharing a storage type.
func (e *ExtensionBase) Fingerprint() string { return typeFingerprint(e) + e.Storage.Fingerprint() }

// ExtensionFingerprint identifies t by its name, serialized metadata and
// storage type.
func ExtensionFingerprint(t ExtensionType) string {
	name, meta := t.ExtensionName(), t.Serialize()
	return fmt.Sprintf("%s%d:%s%d:%s{%s}", typeIDFingerprint(EXTENSION), len(name), name, len(meta), meta, t.StorageType().Fingerprint())
}

// Layout is the layout of the storage type.
func (e *ExtensionBase) Layout() DataTypeLayout { return e.Storage.Layout() }

func (e *ExtensionBase) Fields() []Field {
	if nested, ok := e.Storage.(NestedType); ok {
		return nested.Fields()
	}
	return nil
}

// this no-op exists to ensure that this type must be embedded in any user-defined extension type.
//
//lint:ignore U1000 this function is intentionally unused as it only exists to ensure embedding happens
func (ExtensionBase) mustEmbedExtensionBase() {}

// ExtensionRegistry maps extension names to their type definitions. It is
// safe for concurrent use.
type ExtensionRegistry struct {
	mu    sync.RWMutex
	types map[string]registered
}

type registered struct {
	typ  ExtensionType
	hash uint64
}

// NewExtensionRegistry returns an empty registry.
func NewExtensionRegistry() *ExtensionRegistry {
	return &ExtensionRegistry{types: make(map[string]registered)}
}

func (r registered) same(typ ExtensionType, hash uint64) bool {
	return r.hash == hash &&
		reflect.TypeOf(r.typ) == reflect.TypeOf(typ) &&
		TypeEqual(r.typ.StorageType(), typ.StorageType()) &&
		r.typ.ExtensionEquals(typ)
}

// Register adds typ under its extension name. Registering an identical
// definition again is a no-op; a different definition under a taken name
// fails with ErrConflict.
func (r *ExtensionRegistry) Register(typ ExtensionType) error {
	name, hash := typ.ExtensionName(), HashType(typ)
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.types[name]; ok {
		if prev.same(typ, hash) {
			return nil
		}
		return fmt.Errorf("arrow: extension type %q: %w", name, ErrConflict)
	}
	r.types[name] = registered{typ: typ, hash: hash}
	return nil
}

// Lookup returns the type registered under name.
func (r *ExtensionRegistry) Lookup(name string) (ExtensionType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.types[name]
	return reg.typ, ok
}

// Unregister removes name from the registry, returning ErrUnknownExtension
// when it was not registered.
func (r *ExtensionRegistry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.types[name]; !ok {
		return fmt.Errorf("arrow: extension type %q: %w", name, ErrUnknownExtension)
	}
	delete(r.types, name)
	return nil
}

// Names returns the registered names in sorted order.
func (r *ExtensionRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for n := range r.types {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Deserialize reconstructs the extension type registered as name from its
// storage type and serialized metadata.
func (r *ExtensionRegistry) Deserialize(name string, storage DataType, metadata string) (ExtensionType, error) {
	typ, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("arrow: extension type %q: %w", name, ErrUnknownExtension)
	}
	out, err := typ.Deserialize(storage, metadata)
	if err != nil {
		return nil, fmt.Errorf("arrow: extension type %q: %w: %s", name, ErrType, err)
	}
	if !TypeEqual(out.StorageType(), storage) {
		return nil, fmt.Errorf("arrow: extension type %q: %w: storage %s does not match %s",
			name, ErrType, out.StorageType(), storage)
	}
	return out, nil
}

var defaultRegistry = NewExtensionRegistry()

// DefaultExtensionRegistry returns the process-wide registry.
func DefaultExtensionRegistry() *ExtensionRegistry { return defaultRegistry }

// RegisterExtensionType registers the provided ExtensionType in the
// process-wide registry.
func RegisterExtensionType(typ ExtensionType) error {
	return defaultRegistry.Register(typ)
}

// UnregisterExtensionType removes the type with the given name from the
// process-wide registry.
func UnregisterExtensionType(typName string) error {
	return defaultRegistry.Unregister(typName)
}

// GetExtensionType retrieves and returns the extension type of the given name
// from the process-wide registry. If it doesn't exist, it returns nil.
func GetExtensionType(typName string) ExtensionType {
	typ, _ := defaultRegistry.Lookup(typName)
	return typ
}

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

package arrow_test

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/arrowfixtures/feather/arrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BadExtensionType struct{}

func (BadExtensionType) ID() arrow.Type                           { return arrow.EXTENSION }
func (BadExtensionType) ArrayType() reflect.Type                  { return nil }
func (BadExtensionType) Name() string                             { return "bad" }
func (BadExtensionType) StorageType() arrow.DataType              { return arrow.Null }
func (BadExtensionType) ExtensionEquals(arrow.ExtensionType) bool { return false }
func (BadExtensionType) ExtensionName() string                    { return "bad" }
func (BadExtensionType) Serialize() string                        { return "" }
func (BadExtensionType) Deserialize(_ arrow.DataType, _ string) (arrow.ExtensionType, error) {
	return nil, nil
}

func TestMustEmbedBase(t *testing.T) {
	var ext interface{} = &BadExtensionType{}
	assert.Panics(t, func() {
		var _ arrow.ExtensionType = ext.(arrow.ExtensionType)
	})
}

// labelType is a parametric extension over any storage: its metadata is a
// free-form label.
type labelType struct {
	arrow.ExtensionBase
	name  string
	label string
}

func newLabelType(name, label string, storage arrow.DataType) *labelType {
	return &labelType{ExtensionBase: arrow.ExtensionBase{Storage: storage}, name: name, label: label}
}

func (*labelType) ArrayType() reflect.Type { return nil }
func (l *labelType) ExtensionName() string { return l.name }
func (l *labelType) Serialize() string     { return l.label }
func (l *labelType) String() string        { return fmt.Sprintf("label<%s>", l.label) }
func (l *labelType) Fingerprint() string   { return arrow.ExtensionFingerprint(l) }
func (l *labelType) ExtensionEquals(o arrow.ExtensionType) bool {
	other, ok := o.(*labelType)
	return ok && other.name == l.name && other.label == l.label && arrow.TypeEqual(l.Storage, other.Storage)
}

func (l *labelType) Deserialize(storage arrow.DataType, data string) (arrow.ExtensionType, error) {
	if data == "reject" {
		return nil, fmt.Errorf("rejected metadata")
	}
	return newLabelType(l.name, data, storage), nil
}

type ExtensionRegistryTestSuite struct {
	suite.Suite

	reg *arrow.ExtensionRegistry
}

func (e *ExtensionRegistryTestSuite) SetupTest() {
	e.reg = arrow.NewExtensionRegistry()
}

func (e *ExtensionRegistryTestSuite) TestRegisterIsIdempotent() {
	typ := newLabelType("extension_name", "extension_metadata", arrow.PrimitiveTypes.Uint8)
	e.NoError(e.reg.Register(typ))
	e.NoError(e.reg.Register(newLabelType("extension_name", "extension_metadata", arrow.PrimitiveTypes.Uint8)))
	e.Equal([]string{"extension_name"}, e.reg.Names())
}

func (e *ExtensionRegistryTestSuite) TestRegisterConflict() {
	e.NoError(e.reg.Register(newLabelType("extension_name", "a", arrow.PrimitiveTypes.Uint8)))

	err := e.reg.Register(newLabelType("extension_name", "b", arrow.PrimitiveTypes.Uint8))
	e.ErrorIs(err, arrow.ErrConflict)

	err = e.reg.Register(newLabelType("extension_name", "a", arrow.PrimitiveTypes.Int8))
	e.ErrorIs(err, arrow.ErrConflict)
}

func (e *ExtensionRegistryTestSuite) TestLookupAndUnregister() {
	_, ok := e.reg.Lookup("missing")
	e.False(ok)
	e.ErrorIs(e.reg.Unregister("missing"), arrow.ErrUnknownExtension)

	e.NoError(e.reg.Register(newLabelType("b", "", arrow.Null)))
	e.NoError(e.reg.Register(newLabelType("a", "", arrow.Null)))
	e.Equal([]string{"a", "b"}, e.reg.Names())

	typ, ok := e.reg.Lookup("a")
	e.True(ok)
	e.Equal("a", typ.ExtensionName())

	e.NoError(e.reg.Unregister("a"))
	e.Equal([]string{"b"}, e.reg.Names())
}

func (e *ExtensionRegistryTestSuite) TestDeserialize() {
	_, err := e.reg.Deserialize("extension_name", arrow.PrimitiveTypes.Uint8, "")
	e.ErrorIs(err, arrow.ErrUnknownExtension)

	e.NoError(e.reg.Register(newLabelType("extension_name", "", arrow.PrimitiveTypes.Uint8)))
	typ, err := e.reg.Deserialize("extension_name", arrow.PrimitiveTypes.Uint8, "extension_metadata")
	e.Require().NoError(err)
	e.Equal("extension_metadata", typ.Serialize())
	e.True(arrow.TypeEqual(arrow.PrimitiveTypes.Uint8, typ.StorageType()))
	e.Equal(arrow.EXTENSION, typ.ID())
	e.Equal("extension", typ.Name())
	e.Equal(arrow.LayoutOf(arrow.PrimitiveTypes.Uint8), arrow.LayoutOf(typ))

	_, err = e.reg.Deserialize("extension_name", arrow.PrimitiveTypes.Uint8, "reject")
	e.ErrorIs(err, arrow.ErrType)
}

func (e *ExtensionRegistryTestSuite) TestConcurrentAccess() {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("ext-%d", i%4)
			e.NoError(e.reg.Register(newLabelType(name, "", arrow.PrimitiveTypes.Int32)))
			_, ok := e.reg.Lookup(name)
			e.True(ok)
		}(i)
	}
	wg.Wait()
	e.Len(e.reg.Names(), 4)
}

func TestExtensionFingerprint(t *testing.T) {
	a := newLabelType("a", "x", arrow.PrimitiveTypes.Int32)
	b := newLabelType("b", "x", arrow.PrimitiveTypes.Int32)

	assert.Equal(t, a.ExtensionBase.Fingerprint(), b.ExtensionBase.Fingerprint(), "storage fingerprints agree")
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, arrow.HashType(a), arrow.HashType(b))

	assert.Equal(t, arrow.HashType(a), arrow.HashType(newLabelType("a", "x", arrow.PrimitiveTypes.Int32)))
	assert.NotEqual(t, arrow.HashType(a), arrow.HashType(newLabelType("a", "y", arrow.PrimitiveTypes.Int32)))
	assert.NotEqual(t, arrow.HashType(a), arrow.HashType(newLabelType("a", "x", arrow.PrimitiveTypes.Int64)))

	list := arrow.ListOf(a)
	assert.NotEqual(t, list.Fingerprint(), arrow.ListOf(b).Fingerprint())
}

func TestExtensionRegistry(t *testing.T) {
	suite.Run(t, new(ExtensionRegistryTestSuite))
}

func TestDefaultExtensionRegistry(t *testing.T) {
	typ := newLabelType("default-registry-test", "x", arrow.BinaryTypes.String)
	require.NoError(t, arrow.RegisterExtensionType(typ))
	defer arrow.UnregisterExtensionType("default-registry-test")

	assert.NotNil(t, arrow.GetExtensionType("default-registry-test"))
	assert.Nil(t, arrow.GetExtensionType("default-registry-test-unknown"))
	assert.Error(t, arrow.UnregisterExtensionType("default-registry-test-unknown"))
	assert.Contains(t, arrow.DefaultExtensionRegistry().Names(), "default-registry-test")
}

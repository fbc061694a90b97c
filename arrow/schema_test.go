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
	"testing"

	"github.com/arrowfixtures/feather/arrow"
	"github.com/stretchr/testify/assert"
)

func TestMetadata(t *testing.T) {
	md := arrow.NewMetadata([]string{"k1", "k2"}, []string{"v1", "v2"})
	assert.Equal(t, 2, md.Len())
	assert.Equal(t, 1, md.FindKey("k2"))
	assert.Equal(t, -1, md.FindKey("k3"))

	v, ok := md.GetValue("k1")
	assert.True(t, ok)
	assert.Equal(t, "v1", v)

	assert.True(t, md.Equal(arrow.MetadataFrom(map[string]string{"k2": "v2", "k1": "v1"})))
	assert.False(t, md.Equal(arrow.NewMetadata([]string{"k1"}, []string{"v1"})))
	assert.Equal(t, []string{"k2"}, md.Without("k1").Keys())
	assert.Equal(t, `["k1": "v1", "k2": "v2"]`, md.String())

	assert.Panics(t, func() { arrow.NewMetadata([]string{"k"}, nil) })
}

func TestSchema(t *testing.T) {
	md := arrow.NewMetadata([]string{"origin"}, []string{"test"})
	fields := []arrow.Field{
		{Name: "f1", Type: arrow.PrimitiveTypes.Int32},
		{Name: "f2", Type: arrow.BinaryTypes.String, Nullable: true},
		{Name: "f1", Type: arrow.PrimitiveTypes.Int64},
	}
	s := arrow.NewSchema(fields, &md)

	assert.Equal(t, 3, s.NumFields())
	assert.True(t, s.HasMetadata())
	assert.Equal(t, []int{0, 2}, s.FieldIndices("f1"))
	assert.True(t, s.HasField("f2"))
	assert.False(t, s.HasField("f3"))

	got, ok := s.FieldsByName("f1")
	assert.True(t, ok)
	assert.Len(t, got, 2)

	other := arrow.NewSchema(fields, nil)
	assert.True(t, s.Equal(other))
	assert.Equal(t, s.Fingerprint(), other.Fingerprint())

	changed := arrow.NewSchema(fields[:2], nil)
	assert.False(t, s.Equal(changed))
	assert.NotEqual(t, s.Fingerprint(), changed.Fingerprint())

	assert.Panics(t, func() { arrow.NewSchema([]arrow.Field{{Name: "bad"}}, nil) })
	assert.Contains(t, s.String(), "f2: type=utf8, nullable")
}

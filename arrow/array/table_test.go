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

package array_test

import (
	"testing"

	"github.com/arrowfixtures/feather/arrow"
	"github.com/arrowfixtures/feather/arrow/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable(t *testing.T) *array.Table {
	t.Helper()
	tbl, err := array.NewTableFromColumns(
		array.Column{Name: "id", Array: array.NewInt64([]int64{1, 2, 3}, nil)},
		array.Column{Name: "name", Array: array.NewString([]string{"a", "b", ""}, []bool{true, true, false}), Nullable: true},
	)
	require.NoError(t, err)
	return tbl
}

func TestTableFromColumns(t *testing.T) {
	tbl := sampleTable(t)
	assert.EqualValues(t, 3, tbl.NumRows())
	assert.EqualValues(t, 2, tbl.NumCols())
	assert.Equal(t, "name", tbl.ColumnName(1))
	assert.False(t, tbl.Schema().Field(0).Nullable)
	assert.True(t, tbl.Schema().Field(1).Nullable)

	col, ok := tbl.ColumnByName("name")
	require.True(t, ok)
	assert.Same(t, tbl.Column(1), col)
	_, ok = tbl.ColumnByName("missing")
	assert.False(t, ok)
}

func TestTableSchemaErrors(t *testing.T) {
	_, err := array.NewTableFromColumns(
		array.Column{Name: "a", Array: array.NewInt64([]int64{1}, nil)},
		array.Column{Name: "b", Array: array.NewInt64([]int64{1, 2}, nil)},
	)
	assert.ErrorIs(t, err, arrow.ErrSchema)

	_, err = array.NewTableFromColumns(
		array.Column{Name: "a", Array: array.NewInt64([]int64{1}, nil)},
		array.Column{Name: "a", Array: array.NewInt64([]int64{2}, nil)},
	)
	assert.ErrorIs(t, err, arrow.ErrSchema)

	schema := arrow.NewSchema([]arrow.Field{{Name: "a", Type: arrow.PrimitiveTypes.Int32}}, nil)
	_, err = array.NewTable(schema, []arrow.Array{array.NewInt64([]int64{1}, nil)})
	assert.ErrorIs(t, err, arrow.ErrSchema)

	_, err = array.NewTable(schema, nil)
	assert.ErrorIs(t, err, arrow.ErrSchema)

	empty, err := array.NewTableFromColumns()
	require.NoError(t, err)
	assert.Zero(t, empty.NumRows())
}

func TestTableSliceAndConcat(t *testing.T) {
	tbl := sampleTable(t)

	head, err := tbl.Slice(0, 1)
	require.NoError(t, err)
	tail, err := tbl.Slice(1, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 2, tail.NumRows())
	assert.Same(t, tbl.Column(0).Data().Buffers()[1], tail.Column(0).Data().Buffers()[1])

	_, err = tbl.Slice(2, 4)
	assert.ErrorIs(t, err, arrow.ErrIndex)

	joined, err := array.ConcatenateTables(head, tail)
	require.NoError(t, err)
	assert.True(t, tbl.Equal(joined))

	other, err := array.NewTableFromColumns(array.Column{Name: "id", Array: array.NewInt64([]int64{1}, nil)})
	require.NoError(t, err)
	_, err = array.ConcatenateTables(tbl, other)
	assert.ErrorIs(t, err, arrow.ErrSchema)
	assert.False(t, tbl.Equal(other))
}

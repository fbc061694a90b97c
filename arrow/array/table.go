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
	"strings"

	"github.com/arrowfixtures/feather/arrow"
)

// Column is a named array used to assemble a Table.
type Column struct {
	Name     string
	Array    arrow.Array
	Nullable bool
}

// Table is an immutable ordered collection of equal-length named columns.
type Table struct {
	schema *arrow.Schema
	cols   []arrow.Array
	rows   int
}

func schemaErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("arrow/array: %s: %w", fmt.Sprintf(format, args...), arrow.ErrSchema)
}

// NewTableFromColumns builds a table from cols in order. Columns of
// differing lengths or repeated names fail with arrow.ErrSchema.
func NewTableFromColumns(cols ...Column) (*Table, error) {
	fields := make([]arrow.Field, len(cols))
	arrs := make([]arrow.Array, len(cols))
	for i, c := range cols {
		if c.Array == nil {
			return nil, schemaErrorf("column %q has no array", c.Name)
		}
		fields[i] = arrow.Field{Name: c.Name, Type: c.Array.DataType(), Nullable: c.Nullable}
		arrs[i] = c.Array
	}
	return NewTable(arrow.NewSchema(fields, nil), arrs)
}

// NewTable pairs schema with one array per field. Arrays must match the
// field types, have equal lengths and the field names must be unique.
func NewTable(schema *arrow.Schema, arrs []arrow.Array) (*Table, error) {
	if schema.NumFields() != len(arrs) {
		return nil, schemaErrorf("schema has %d fields but %d columns were given", schema.NumFields(), len(arrs))
	}
	rows := 0
	seen := make(map[string]struct{}, len(arrs))
	for i, f := range schema.Fields() {
		if _, dup := seen[f.Name]; dup {
			return nil, schemaErrorf("duplicate column name %q", f.Name)
		}
		seen[f.Name] = struct{}{}

		arr := arrs[i]
		if arr == nil {
			return nil, schemaErrorf("column %q has no array", f.Name)
		}
		if !arrow.TypeEqual(f.Type, arr.DataType()) {
			return nil, schemaErrorf("column %q has type %s, schema expects %s", f.Name, arr.DataType(), f.Type)
		}
		if i == 0 {
			rows = arr.Len()
		} else if arr.Len() != rows {
			return nil, schemaErrorf("column %q has %d rows, expected %d", f.Name, arr.Len(), rows)
		}
	}
	return &Table{schema: schema, cols: append([]arrow.Array(nil), arrs...), rows: rows}, nil
}

func (t *Table) Schema() *arrow.Schema    { return t.schema }
func (t *Table) NumRows() int64           { return int64(t.rows) }
func (t *Table) NumCols() int64           { return int64(len(t.cols)) }
func (t *Table) Column(i int) arrow.Array { return t.cols[i] }
func (t *Table) ColumnName(i int) string  { return t.schema.Field(i).Name }
func (t *Table) Columns() []arrow.Array   { return t.cols }
func (t *Table) Field(i int) arrow.Field  { return t.schema.Field(i) }

// ColumnByName returns the column named name.
func (t *Table) ColumnByName(name string) (arrow.Array, bool) {
	idx := t.schema.FieldIndices(name)
	if len(idx) == 0 {
		return nil, false
	}
	return t.cols[idx[0]], true
}

// Slice returns rows [i, j) as a new table sharing the column buffers.
func (t *Table) Slice(i, j int64) (*Table, error) {
	if i < 0 || j < i || j > int64(t.rows) {
		return nil, fmt.Errorf("arrow/array: table slice [%d, %d) of %d rows: %w", i, j, t.rows, arrow.ErrIndex)
	}
	cols := make([]arrow.Array, len(t.cols))
	for k, c := range t.cols {
		cols[k] = NewSlice(c, i, j)
	}
	return &Table{schema: t.schema, cols: cols, rows: int(j - i)}, nil
}

// Equal reports whether both tables have equal schemas and column values.
func (t *Table) Equal(o *Table) bool {
	if t.rows != o.rows || !t.schema.Equal(o.schema) {
		return false
	}
	for i := range t.cols {
		if !Equal(t.cols[i], o.cols[i]) {
			return false
		}
	}
	return true
}

func (t *Table) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "table: %d rows\n%s\n", t.rows, t.schema)
	for i, c := range t.cols {
		fmt.Fprintf(&b, "col[%d][%s]: %v\n", i, t.ColumnName(i), c)
	}
	return b.String()
}

// ConcatenateTables appends the rows of tables in order. All tables must
// share an equal schema.
func ConcatenateTables(tables ...*Table) (*Table, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("arrow/array: concatenate needs at least one table: %w", arrow.ErrInvalid)
	}
	schema := tables[0].schema
	for _, t := range tables[1:] {
		if !schema.Equal(t.schema) {
			return nil, schemaErrorf("cannot concatenate tables with schemas %s and %s", schema, t.schema)
		}
	}
	if len(tables) == 1 {
		return tables[0], nil
	}
	cols := make([]arrow.Array, schema.NumFields())
	for i := range cols {
		parts := make([]arrow.Array, len(tables))
		for k, t := range tables {
			parts[k] = t.cols[i]
		}
		arr, err := Concatenate(parts)
		if err != nil {
			return nil, err
		}
		cols[i] = arr
	}
	return NewTable(schema, cols)
}

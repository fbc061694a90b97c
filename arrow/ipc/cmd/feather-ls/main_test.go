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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arrowfixtures/feather/arrow/compress"
	"github.com/arrowfixtures/feather/arrow/internal/arrdata"
	"github.com/arrowfixtures/feather/arrow/internal/cmdutil"
	"github.com/arrowfixtures/feather/arrow/ipc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, name, fname string, opts ...ipc.Option) string {
	t.Helper()

	fname = filepath.Join(t.TempDir(), fname)
	f, err := os.Create(fname)
	require.NoError(t, err)
	defer f.Close()

	arrdata.WriteFile(t, f, arrdata.Tables[name], opts...)
	return fname
}

func TestListFile(t *testing.T) {
	fname := writeFixture(t, "strings", "strings.arrow")

	var out bytes.Buffer
	require.NoError(t, processFiles(&out, []string{fname}, cmdutil.NewLogger(new(bytes.Buffer), false)))

	got := out.String()
	want := "file: " + fname + `
version: V5
schema:
  fields: 2
    - strings: type=utf8, nullable
    - bytes: type=binary, nullable
records: 5
`
	require.True(t, strings.HasPrefix(got, want), "got:\n%s\nwant prefix:\n%s", got, want)

	table := strings.TrimPrefix(got, want)
	assert.Contains(t, table, "BATCH")
	assert.Contains(t, table, "TOTAL")
	assert.GreaterOrEqual(t, strings.Count(table, "\n"), 5+3, "header, five rows and footer")
}

func TestListEmptyFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "empty.arrow")
	f, err := os.Create(fname)
	require.NoError(t, err)
	w, err := ipc.NewFileWriter(f, ipc.WithSchema(arrdata.Table().Schema()))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	var out bytes.Buffer
	require.NoError(t, processFiles(&out, []string{fname}, cmdutil.NewLogger(new(bytes.Buffer), false)))
	assert.True(t, strings.HasSuffix(out.String(), "records: 0\n"))
}

func TestListWrappedFile(t *testing.T) {
	src := writeFixture(t, "primitives", "primitives.arrow", ipc.WithZstd())
	raw, err := os.ReadFile(src)
	require.NoError(t, err)

	fname := filepath.Join(t.TempDir(), "primitives.arrow.gz")
	w, err := cmdutil.Create(fname, compress.Gzip)
	require.NoError(t, err)
	_, err = w.Write(raw)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	var out bytes.Buffer
	require.NoError(t, processFiles(&out, []string{fname}, cmdutil.NewLogger(new(bytes.Buffer), false)))
	assert.Contains(t, out.String(), "records: 5\n")
	assert.Contains(t, out.String(), "metadata: [\"k1\": \"v1\", \"k2\": \"v2\", \"k3\": \"v3\"]")
}

func TestListErrors(t *testing.T) {
	logger := cmdutil.NewLogger(new(bytes.Buffer), false)

	err := processFiles(new(bytes.Buffer), []string{filepath.Join(t.TempDir(), "missing.arrow")}, logger)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.arrow")
	require.NoError(t, os.WriteFile(bad, []byte("not an arrow file at all"), 0o644))
	err = processFiles(new(bytes.Buffer), []string{bad}, logger)
	assert.ErrorIs(t, err, ipc.ErrFormat)
}

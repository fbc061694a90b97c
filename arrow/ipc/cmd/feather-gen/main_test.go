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
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arrowfixtures/feather/arrow/internal/arrdata"
	"github.com/arrowfixtures/feather/arrow/internal/cmdutil"
	"github.com/arrowfixtures/feather/arrow/ipc"
	"github.com/docopt/docopt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsage(t *testing.T) {
	opts, err := docopt.ParseArgs(usage, []string{"--compression=zstd", "--wrap=gzip", "out"}, "")
	require.NoError(t, err)

	var cfg config
	require.NoError(t, opts.Bind(&cfg))
	assert.Equal(t, config{Compression: "zstd", Wrap: "gzip", Chunk: "0", Dir: "out"}, cfg)
}

func TestGenerate(t *testing.T) {
	for _, tc := range []struct {
		name string
		cfg  config
		ext  string
	}{
		{name: "plain", cfg: config{Compression: "none", Wrap: "none", Chunk: "0"}, ext: ".arrow"},
		{name: "lz4", cfg: config{Compression: "lz4", Wrap: "none", Chunk: "0"}, ext: ".arrow"},
		{name: "zstd-gzip", cfg: config{Compression: "zstd", Wrap: "gzip", Chunk: "0"}, ext: ".arrow.gz"},
		{name: "brotli", cfg: config{Compression: "none", Wrap: "brotli", Chunk: "0"}, ext: ".arrow.br"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tc.cfg.Dir = t.TempDir()

			var logs bytes.Buffer
			require.NoError(t, run(tc.cfg, cmdutil.NewLogger(&logs, false)))
			assert.Equal(t, len(arrdata.TableNames), strings.Count(logs.String(), "msg=\"wrote fixture\""))

			for _, name := range arrdata.TableNames {
				f, err := cmdutil.Open(filepath.Join(tc.cfg.Dir, name+tc.ext))
				require.NoError(t, err)
				tbls := arrdata.Tables[name]

				r, err := ipc.NewFileReader(f)
				require.NoError(t, err, name)
				require.Equal(t, len(tbls), r.NumRecords(), name)
				for i, want := range tbls {
					got, err := r.Record(i)
					require.NoError(t, err, name)
					assert.True(t, got.Equal(want), "%s: batch %d", name, i)
				}
				f.Close()
			}
		})
	}
}

func TestGenerateChunked(t *testing.T) {
	dir := t.TempDir()
	cfg := config{Compression: "zstd", Wrap: "none", Chunk: "2", Dir: dir}
	require.NoError(t, run(cfg, cmdutil.NewLogger(new(bytes.Buffer), false)))

	r, err := ipc.NewFileReader(mustOpen(t, filepath.Join(dir, "primitives.arrow")))
	require.NoError(t, err)
	assert.Equal(t, 11, r.NumRecords(), "22 rows in batches of 2")

	tbl, err := r.ReadTable(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 22, tbl.NumRows())
}

func TestGenerateInvalid(t *testing.T) {
	logger := cmdutil.NewLogger(new(bytes.Buffer), false)
	for _, cfg := range []config{
		{Compression: "snappy", Wrap: "none", Chunk: "0"},
		{Compression: "none", Wrap: "rar", Chunk: "0"},
		{Compression: "none", Wrap: "none", Chunk: "-1"},
		{Compression: "none", Wrap: "none", Chunk: "many"},
	} {
		cfg.Dir = t.TempDir()
		assert.Error(t, run(cfg, logger), "%+v", cfg)
	}
}

func mustOpen(t *testing.T, name string) *os.File {
	t.Helper()
	f, err := os.Open(name)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

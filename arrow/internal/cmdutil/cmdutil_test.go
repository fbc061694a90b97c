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

package cmdutil

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arrowfixtures/feather/arrow/array"
	"github.com/arrowfixtures/feather/arrow/compress"
	"github.com/arrowfixtures/feather/arrow/ipc"
	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOpen(t *testing.T) {
	payload := bytes.Repeat([]byte("ARROW1"), 100)

	for _, wrap := range []compress.Compression{
		compress.Uncompressed, compress.Lz4Frame, compress.Zstd,
		compress.Snappy, compress.Gzip, compress.Brotli,
	} {
		t.Run(wrap.String(), func(t *testing.T) {
			name := filepath.Join(t.TempDir(), "data.arrow"+wrap.Extension())

			w, err := Create(name, wrap)
			require.NoError(t, err)
			_, err = w.Write(payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			if wrap != compress.Uncompressed {
				raw, err := os.ReadFile(name)
				require.NoError(t, err)
				assert.NotEqual(t, payload, raw)
			}

			f, err := Open(name)
			require.NoError(t, err)
			defer f.Close()

			size, err := f.Seek(0, io.SeekEnd)
			require.NoError(t, err)
			got := make([]byte, size)
			_, err = f.ReadAt(got, 0)
			require.NoError(t, err)
			assert.Equal(t, payload, got)
		})
	}
}

func TestOpenFeather(t *testing.T) {
	tbl, err := array.NewTableFromColumns(
		array.Column{Name: "a", Array: array.NewInt64([]int64{1, 2, 3}, []bool{true, false, true}), Nullable: true},
	)
	require.NoError(t, err)

	for _, wrap := range []compress.Compression{compress.Uncompressed, compress.Gzip} {
		t.Run(wrap.String(), func(t *testing.T) {
			name := filepath.Join(t.TempDir(), "data.arrow"+wrap.Extension())
			w, err := Create(name, wrap)
			require.NoError(t, err)
			require.NoError(t, ipc.WriteFeather(w, tbl))
			require.NoError(t, w.Close())

			f, err := Open(name)
			require.NoError(t, err)
			defer f.Close()

			got, err := ipc.ReadFeather(context.Background(), f)
			require.NoError(t, err)
			assert.True(t, tbl.Equal(got))
		})
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.arrow.zst"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(&buf, false)
	level.Debug(logger).Log("msg", "hidden")
	level.Info(logger).Log("msg", "shown", "file", "a.arrow")
	assert.Equal(t, "level=info msg=shown file=a.arrow\n", buf.String())

	buf.Reset()
	logger = NewLogger(&buf, true)
	level.Debug(logger).Log("msg", "verbose")
	assert.True(t, strings.HasPrefix(buf.String(), "level=debug msg=verbose"))
}

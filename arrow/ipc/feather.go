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

package ipc

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/arrowfixtures/feather/arrow/array"
	"golang.org/x/xerrors"
)

// WriteFeather writes tbl to w as a Feather v2 file, splitting it into
// record batches of at most WithChunkSize rows. A table without rows is
// written as a single empty batch.
func WriteFeather(w io.Writer, tbl *array.Table, opts ...Option) error {
	cfg := newConfig(opts...)
	fw, err := NewFileWriter(w, append(opts, WithSchema(tbl.Schema()))...)
	if err != nil {
		return err
	}

	rows := tbl.NumRows()
	for beg := int64(0); ; beg += cfg.chunkSize {
		end := beg + cfg.chunkSize
		if end > rows {
			end = rows
		}
		chunk, err := tbl.Slice(beg, end)
		if err != nil {
			return err
		}
		if err := fw.Write(chunk); err != nil {
			return err
		}
		if end == rows {
			break
		}
	}
	return fw.Close()
}

// WriteFeatherFile writes tbl to the named file. The file is removed when
// writing fails.
func WriteFeatherFile(path string, tbl *array.Table, opts ...Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return xerrors.Errorf("arrow/ipc: could not create feather file: %w", err)
	}
	defer func() {
		if cErr := f.Close(); cErr != nil && err == nil {
			err = xerrors.Errorf("arrow/ipc: could not close feather file: %w", cErr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	return WriteFeather(f, tbl, opts...)
}

// ReadFeather decodes every record batch of r into one table.
func ReadFeather(ctx context.Context, r ReadAtSeeker, opts ...Option) (*array.Table, error) {
	fr, err := NewFileReader(r, opts...)
	if err != nil {
		return nil, err
	}
	defer fr.Close()

	return fr.ReadTable(ctx)
}

// ReadFeatherFile reads the named Feather v2 file into one table.
func ReadFeatherFile(ctx context.Context, path string, opts ...Option) (tbl *array.Table, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, xerrors.Errorf("arrow/ipc: could not open feather file: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	return ReadFeather(ctx, f, opts...)
}

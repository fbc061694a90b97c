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

// Package cmdutil holds the file and logging plumbing shared by the feather
// commands.
package cmdutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arrowfixtures/feather/arrow/compress"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// File is an opened Arrow file.
type File interface {
	io.Reader
	io.ReaderAt
	io.Seeker
	io.Closer
}

type memFile struct{ *bytes.Reader }

func (memFile) Close() error { return nil }

// Open opens the named file. A file whose name ends with the extension of a
// whole-file codec (".zst", ".gz", ...) is decompressed into memory.
func Open(name string) (File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	codec := compress.FromExtension(name)
	if codec == compress.Uncompressed {
		return f, nil
	}
	defer f.Close()

	c, err := compress.GetCodec(codec)
	if err != nil {
		return nil, err
	}
	r, err := c.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("could not open %s stream: %w", codec, err)
	}
	defer r.Close()

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not decompress %s: %w", name, err)
	}
	return memFile{bytes.NewReader(raw)}, nil
}

type wrappedFile struct {
	io.WriteCloser
	f *os.File
}

func (w *wrappedFile) Close() error {
	return errors.Join(w.WriteCloser.Close(), w.f.Close())
}

// Create creates the named file. Unless wrap is Uncompressed, everything
// written is compressed with wrap as one stream.
func Create(name string, wrap compress.Compression) (io.WriteCloser, error) {
	c, err := compress.GetCodec(wrap)
	if err != nil {
		return nil, err
	}

	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	if wrap == compress.Uncompressed {
		return f, nil
	}

	zw, err := c.NewWriter(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("could not create %s stream: %w", wrap, err)
	}
	return &wrappedFile{WriteCloser: zw, f: f}, nil
}

// NewLogger returns a logfmt logger writing to w. Debug records are dropped
// unless verbose is set.
func NewLogger(w io.Writer, verbose bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	opt := level.AllowInfo()
	if verbose {
		opt = level.AllowDebug()
	}
	return level.NewFilter(logger, opt)
}

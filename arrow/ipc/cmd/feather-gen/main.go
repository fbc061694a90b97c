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

// Command feather-gen writes the Arrow file fixtures to a directory, one
// file per fixture.
//
// Examples:
//
//	$> feather-gen ./testdata
//	$> feather-gen --compression=zstd --chunk=2 ./testdata
//	$> feather-gen --wrap=gzip ./testdata
//	$> ls ./testdata
//	decimal128.arrow.gz  extension.arrow.gz  ...  table.arrow.gz  unions.arrow.gz
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/arrowfixtures/feather/arrow/array"
	"github.com/arrowfixtures/feather/arrow/compress"
	"github.com/arrowfixtures/feather/arrow/internal/arrdata"
	"github.com/arrowfixtures/feather/arrow/internal/cmdutil"
	"github.com/arrowfixtures/feather/arrow/ipc"
	"github.com/docopt/docopt-go"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	_ "time/tzdata"
)

const usage = `Command feather-gen writes the Arrow file fixtures to a directory.

Usage:
  feather-gen -h | --help
  feather-gen [--compression=<c>] [--wrap=<w>] [--chunk=<n>] [--verbose] <dir>

Options:
  -h --help          Show this screen.
  --compression=<c>  Buffer compression: none, lz4 or zstd [default: none].
  --wrap=<w>         Compress each whole file: none, lz4, zstd, snappy, gzip
                     or brotli [default: none].
  --chunk=<n>        Rows per record batch. 0 keeps the fixture batches [default: 0].
  --verbose          Log every encoded batch.`

type config struct {
	Compression string `docopt:"--compression"`
	Wrap        string `docopt:"--wrap"`
	Chunk       string `docopt:"--chunk"`
	Verbose     bool   `docopt:"--verbose"`
	Dir         string `docopt:"<dir>"`
}

func main() {
	opts, _ := docopt.ParseDoc(usage)

	var cfg config
	if err := opts.Bind(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "feather-gen: %v\n", err)
		os.Exit(2)
	}

	logger := log.With(cmdutil.NewLogger(os.Stderr, cfg.Verbose), "cmd", "feather-gen")
	if err := run(cfg, logger); err != nil {
		level.Error(logger).Log("msg", "could not generate fixtures", "err", err)
		os.Exit(1)
	}
}

func run(cfg config, logger log.Logger) error {
	codec, err := compress.ParseCompression(cfg.Compression)
	if err != nil {
		return err
	}
	wrap, err := compress.ParseCompression(cfg.Wrap)
	if err != nil {
		return err
	}
	chunk, err := strconv.ParseInt(cfg.Chunk, 10, 64)
	if err != nil || chunk < 0 {
		return fmt.Errorf("invalid --chunk %q", cfg.Chunk)
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return err
	}

	opts := []ipc.Option{ipc.WithCompression(codec), ipc.WithLogger(logger)}
	for _, name := range arrdata.TableNames {
		fname := filepath.Join(cfg.Dir, name+".arrow"+wrap.Extension())
		n, err := writeFixture(fname, wrap, arrdata.Tables[name], chunk, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		level.Info(logger).Log("msg", "wrote fixture", "file", fname, "batches", n, "codec", codec, "wrap", wrap)
	}
	return nil
}

// writeFixture writes tbls to fname and returns the number of batches.
func writeFixture(fname string, wrap compress.Compression, tbls []*array.Table, chunk int64, opts []ipc.Option) (n int, err error) {
	f, err := cmdutil.Create(fname, wrap)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cErr := f.Close(); cErr != nil && err == nil {
			err = cErr
		}
	}()

	if chunk > 0 {
		tbl, err := array.ConcatenateTables(tbls...)
		if err != nil {
			return 0, err
		}
		if err := ipc.WriteFeather(f, tbl, append(opts, ipc.WithChunkSize(chunk))...); err != nil {
			return 0, err
		}
		rows := tbl.NumRows()
		if rows == 0 {
			return 1, nil
		}
		return int((rows + chunk - 1) / chunk), nil
	}

	w, err := ipc.NewFileWriter(f, append(opts, ipc.WithSchema(tbls[0].Schema()))...)
	if err != nil {
		return 0, err
	}
	for _, tbl := range tbls {
		if err := w.Write(tbl); err != nil {
			return 0, err
		}
	}
	return len(tbls), w.Close()
}

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

// Command feather-cat displays the content of Arrow files.
//
// Examples:
//
//	$> feather-cat ./testdata/strings.arrow
//	record 1/3...
//	  col[0] "strings": [1é (null)  4 5]
//	  col[1] "bytes": [McOp (null)  NA== NQ==]
//	...
//
//	$> feather-cat --json ./testdata/strings.arrow.zst
//	{"batch":0,"rows":5,"columns":[{"name":"strings","values":["1é",null,"","4","5"]},...]}
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/arrowfixtures/feather/arrow"
	"github.com/arrowfixtures/feather/arrow/internal/cmdutil"
	"github.com/arrowfixtures/feather/arrow/ipc"
	"github.com/docopt/docopt-go"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/goccy/go-json"

	_ "time/tzdata"
)

const usage = `Command feather-cat displays the content of Arrow files.

Files ending in .lz4, .zst, .sz, .gz or .br are decompressed first.

Usage:
  feather-cat -h | --help
  feather-cat [--json] [--verbose] <file>...

Options:
  -h --help  Show this screen.
  --json     Print one JSON object per record batch.
  --verbose  Log every decoded batch.`

type config struct {
	JSON    bool     `docopt:"--json"`
	Verbose bool     `docopt:"--verbose"`
	Files   []string `docopt:"<file>"`
}

func main() {
	opts, _ := docopt.ParseDoc(usage)

	var cfg config
	if err := opts.Bind(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "feather-cat: %v\n", err)
		os.Exit(2)
	}

	logger := log.With(cmdutil.NewLogger(os.Stderr, cfg.Verbose), "cmd", "feather-cat")
	if err := processFiles(context.Background(), os.Stdout, cfg, logger); err != nil {
		level.Error(logger).Log("msg", "could not display file", "err", err)
		os.Exit(1)
	}
}

func processFiles(ctx context.Context, w io.Writer, cfg config, logger log.Logger) error {
	for _, name := range cfg.Files {
		if err := processFile(ctx, w, name, cfg.JSON, logger); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

type column struct {
	Name   string      `json:"name"`
	Values arrow.Array `json:"values"`
}

type batch struct {
	Batch   int      `json:"batch"`
	Rows    int64    `json:"rows"`
	Columns []column `json:"columns"`
}

func processFile(ctx context.Context, w io.Writer, fname string, asJSON bool, logger log.Logger) error {
	f, err := cmdutil.Open(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	r, err := ipc.NewFileReader(f, ipc.WithLogger(logger))
	if err != nil {
		return err
	}
	defer r.Close()

	tbls, err := r.ReadAll(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	for i, tbl := range tbls {
		if asJSON {
			out := batch{Batch: i, Rows: tbl.NumRows(), Columns: make([]column, tbl.NumCols())}
			for j, col := range tbl.Columns() {
				out.Columns[j] = column{Name: tbl.ColumnName(j), Values: col}
			}
			if err := enc.Encode(out); err != nil {
				return fmt.Errorf("could not encode batch %d: %w", i, err)
			}
			continue
		}

		fmt.Fprintf(w, "record %d/%d...\n", i+1, len(tbls))
		for j, col := range tbl.Columns() {
			fmt.Fprintf(w, "  col[%d] %q: %v\n", j, tbl.ColumnName(j), col)
		}
	}
	return nil
}

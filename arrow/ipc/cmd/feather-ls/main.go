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

// Command feather-ls displays the listing of Arrow files.
//
// Examples:
//
//	$> feather-ls ./testdata/strings.arrow
//	file: ./testdata/strings.arrow
//	version: V5
//	schema:
//	  fields: 2
//	    - strings: type=utf8, nullable
//	    - bytes: type=binary, nullable
//	records: 3
//	+-------+------+--------+----------+-------+
//	| BATCH | ROWS | OFFSET | METADATA | BODY  |
//	+-------+------+--------+----------+-------+
//	|     0 |    5 |    168 | 232 B    | 112 B |
//	...
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/arrowfixtures/feather/arrow/internal/cmdutil"
	"github.com/arrowfixtures/feather/arrow/ipc"
	"github.com/docopt/docopt-go"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/olekukonko/tablewriter"

	_ "time/tzdata"
)

const usage = `Command feather-ls displays the listing of Arrow files.

Files ending in .lz4, .zst, .sz, .gz or .br are decompressed first.

Usage:
  feather-ls -h | --help
  feather-ls [--verbose] <file>...

Options:
  -h --help  Show this screen.
  --verbose  Log every decoded batch.`

type config struct {
	Verbose bool     `docopt:"--verbose"`
	Files   []string `docopt:"<file>"`
}

func main() {
	opts, _ := docopt.ParseDoc(usage)

	var cfg config
	if err := opts.Bind(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "feather-ls: %v\n", err)
		os.Exit(2)
	}

	logger := log.With(cmdutil.NewLogger(os.Stderr, cfg.Verbose), "cmd", "feather-ls")
	if err := processFiles(os.Stdout, cfg.Files, logger); err != nil {
		level.Error(logger).Log("msg", "could not list file", "err", err)
		os.Exit(1)
	}
}

func processFiles(w io.Writer, names []string, logger log.Logger) error {
	for _, name := range names {
		if err := processFile(w, name, logger); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func processFile(w io.Writer, fname string, logger log.Logger) error {
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

	fmt.Fprintf(w, "file: %s\n", fname)
	fmt.Fprintf(w, "version: %v\n", r.Version())
	fmt.Fprintf(w, "%v\n", r.Schema())
	fmt.Fprintf(w, "records: %d\n", r.NumRecords())

	if r.NumRecords() == 0 {
		return nil
	}

	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"batch", "rows", "offset", "metadata", "body"})
	tw.SetAlignment(tablewriter.ALIGN_RIGHT)

	var rows, meta, body int64
	for i, blk := range r.Blocks() {
		tbl, err := r.Record(i)
		if err != nil {
			return err
		}
		rows += tbl.NumRows()
		meta += int64(blk.Meta)
		body += blk.Body
		tw.Append([]string{
			strconv.Itoa(i),
			humanize.Comma(tbl.NumRows()),
			strconv.FormatInt(blk.Offset, 10),
			humanize.IBytes(uint64(blk.Meta)),
			humanize.IBytes(uint64(blk.Body)),
		})
	}
	tw.SetFooter([]string{"total", humanize.Comma(rows), "", humanize.IBytes(uint64(meta)), humanize.IBytes(uint64(body))})
	tw.Render()
	return nil
}

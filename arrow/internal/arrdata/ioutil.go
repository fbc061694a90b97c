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

package arrdata

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/arrowfixtures/feather/arrow/array"
	"github.com/arrowfixtures/feather/arrow/ipc"
)

// CheckArrowFile checks whether a given Arrow file contains the expected list of tables.
func CheckArrowFile(t *testing.T, f *os.File, tbls []*array.Table, opts ...ipc.Option) {
	t.Helper()

	_, err := f.Seek(0, io.SeekStart)
	if err != nil {
		t.Fatal(err)
	}

	r, err := ipc.NewFileReader(f, opts...)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if got, want := r.NumRecords(), len(tbls); got != want {
		t.Fatalf("invalid number of record batches. got=%d, want=%d", got, want)
	}
	if len(tbls) > 0 && !r.Schema().Equal(tbls[0].Schema()) {
		t.Fatalf("schemas differ.\ngot:\n%s\nwant:\n%s", r.Schema(), tbls[0].Schema())
	}

	for i := 0; i < r.NumRecords(); i++ {
		tbl, err := r.Record(i)
		if err != nil {
			t.Fatalf("could not read record batch %d: %v", i, err)
		}
		if !tbl.Equal(tbls[i]) {
			t.Fatalf("record batches[%d] differ.\ngot:\n%s\nwant:\n%s", i, tbl, tbls[i])
		}
	}

	all, err := r.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("could not read all record batches: %v", err)
	}
	for i := range all {
		if !all[i].Equal(tbls[i]) {
			t.Fatalf("concurrently read batches[%d] differ", i)
		}
	}

	err = r.Close()
	if err != nil {
		t.Fatal(err)
	}
}

// WriteFile writes a list of tables to the given file descriptor, one
// record batch each, as an Arrow file.
func WriteFile(t *testing.T, f *os.File, tbls []*array.Table, opts ...ipc.Option) {
	t.Helper()

	w, err := ipc.NewFileWriter(f, append(opts, ipc.WithSchema(tbls[0].Schema()))...)
	if err != nil {
		t.Fatal(err)
	}

	for i, tbl := range tbls {
		err = w.Write(tbl)
		if err != nil {
			t.Fatalf("could not write record batch[%d]: %v", i, err)
		}
	}

	err = w.Close()
	if err != nil {
		t.Fatal(err)
	}

	err = f.Sync()
	if err != nil {
		t.Fatalf("could not sync data to disk: %v", err)
	}

	_, err = f.Seek(0, io.SeekStart)
	if err != nil {
		t.Fatalf("could not seek to start: %v", err)
	}
}

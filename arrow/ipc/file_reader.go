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
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"math"
	"os"
	"runtime"
	"sync"

	"github.com/JohnCGriffin/overflow"
	"github.com/arrowfixtures/feather/arrow"
	"github.com/arrowfixtures/feather/arrow/array"
	"github.com/arrowfixtures/feather/arrow/compress"
	"github.com/arrowfixtures/feather/arrow/internal/flatbuf"
	"github.com/arrowfixtures/feather/arrow/memory"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	flatbuffers "github.com/google/flatbuffers/go"
	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"
)

func corruptErrorf(format string, args ...interface{}) error {
	return xerrors.Errorf("arrow/ipc: "+format+": %w", append(args, ErrCorrupt)...)
}

// catchPanic turns a panic raised while walking an untrusted flatbuffer
// into an error wrapping sentinel.
func catchPanic(err *error, sentinel error) {
	if pErr := recover(); pErr != nil {
		*err = xerrors.Errorf("arrow/ipc: invalid flatbuffer: %v: %w", pErr, sentinel)
	}
}

// FileReader is an Arrow file reader. Record batches are decoded lazily by
// Record. After the first decoding failure every call returns an error
// wrapping that failure.
type FileReader struct {
	r      ReadAtSeeker
	reg    *arrow.ExtensionRegistry
	logger log.Logger

	size      int64
	footerPos int64
	version   MetadataVersion
	schema    *arrow.Schema
	blocks    []FileBlock

	mu  sync.Mutex
	err error
}

// NewFileReader opens an Arrow file using the provided reader r. Only the
// footer and the leading schema message are read.
func NewFileReader(r ReadAtSeeker, opts ...Option) (*FileReader, error) {
	cfg := newConfig(opts...)
	f := FileReader{
		r:      r,
		reg:    cfg.registry,
		logger: cfg.logger,
	}

	if cfg.footer.offset <= 0 {
		var err error
		cfg.footer.offset, err = r.Seek(0, io.SeekEnd)
		if err != nil {
			return nil, xerrors.Errorf("arrow/ipc: could not retrieve footer offset: %w", err)
		}
	}
	f.size = cfg.footer.offset

	if err := f.readFooter(); err != nil {
		return nil, xerrors.Errorf("arrow/ipc: could not decode footer: %w", err)
	}
	if err := f.readSchemaMessage(); err != nil {
		return nil, xerrors.Errorf("arrow/ipc: could not decode schema message: %w", err)
	}

	level.Debug(f.logger).Log("msg", "opened file", "size", f.size, "version", f.version,
		"fields", f.schema.NumFields(), "batches", len(f.blocks))
	return &f, nil
}

func (f *FileReader) readAt(buf []byte, off int64) error {
	_, err := f.r.ReadAt(buf, off)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

func (f *FileReader) readFooter() (err error) {
	var tail [4 + 6]byte
	if f.size < int64(len(paddedMagic)+len(tail)) {
		return formatErrorf("file too small (size=%d)", f.size)
	}

	if err := f.readAt(tail[:], f.size-int64(len(tail))); err != nil {
		return formatErrorf("could not read file trailer: %v", err)
	}
	if !bytes.Equal(tail[4:], Magic) {
		return formatErrorf("not an Arrow file: trailing magic %q", tail[4:])
	}

	size := int64(int32(binary.LittleEndian.Uint32(tail[:4])))
	if size <= 0 || size > f.size-int64(len(paddedMagic)+len(tail)) {
		return formatErrorf("footer length %d outside file of %d bytes", size, f.size)
	}
	f.footerPos = f.size - int64(len(tail)) - size

	var head [6]byte
	if err := f.readAt(head[:], 0); err != nil {
		return formatErrorf("could not read file header: %v", err)
	}
	if !bytes.Equal(head[:], Magic) {
		return formatErrorf("not an Arrow file: leading magic %q", head[:])
	}

	buf := make([]byte, size)
	if err := f.readAt(buf, f.footerPos); err != nil {
		return formatErrorf("could not read footer: %v", err)
	}

	defer catchPanic(&err, ErrFormat)

	footer := flatbuf.GetRootAsFooter(buf, 0)
	f.version = MetadataVersion(footer.Version())
	if !supportedVersion(f.version) {
		return formatErrorf("unsupported metadata version %s", f.version)
	}
	if footer.DictionariesLength() > 0 {
		return unsupportedErrorf("dictionary batches")
	}

	schema := footer.Schema(nil)
	if schema == nil {
		return formatErrorf("footer without schema")
	}
	f.schema, err = schemaFromFB(schema, f.reg)
	if err != nil {
		return err
	}

	n, err := vectorLen(footer.RecordBatchesLength(), blockSize, buf, "record batch blocks")
	if err != nil {
		return err
	}
	f.blocks = make([]FileBlock, n)
	for i := range f.blocks {
		var blk flatbuf.Block
		if !footer.RecordBatches(&blk, i) {
			return formatErrorf("could not read record batch block %d", i)
		}
		f.blocks[i] = FileBlock{
			Offset: blk.Offset(),
			Meta:   blk.MetaDataLength(),
			Body:   blk.BodyLength(),
		}
	}
	return nil
}

// readSchemaMessage decodes the schema message that follows the leading
// magic and checks it against the footer.
func (f *FileReader) readSchemaMessage() (err error) {
	pos := int64(len(paddedMagic))
	var hdr [8]byte
	if pos+int64(len(hdr)) > f.footerPos {
		return formatErrorf("no room for a schema message")
	}
	if err := f.readAt(hdr[:], pos); err != nil {
		return formatErrorf("could not read schema message prefix: %v", err)
	}
	prefix, metaLen, err := readMessageHeader(hdr[:])
	if err != nil {
		return formatErrorf("%v", err)
	}
	if pos+int64(prefix)+int64(metaLen) > f.footerPos {
		return formatErrorf("schema message of %d bytes overlaps the footer", metaLen)
	}

	meta := make([]byte, metaLen)
	if err := f.readAt(meta, pos+int64(prefix)); err != nil {
		return formatErrorf("could not read schema message: %v", err)
	}

	defer catchPanic(&err, ErrFormat)

	msg := newMessage(memory.NewBufferBytes(meta), nil)
	if msg.Type() != MessageSchema {
		return formatErrorf("first message is a %s message", msg.Type())
	}
	if !supportedVersion(msg.Version()) {
		return formatErrorf("unsupported schema message version %s", msg.Version())
	}

	var tbl flatbuffers.Table
	if !msg.msg.Header(&tbl) {
		return formatErrorf("schema message without header")
	}
	var fb flatbuf.Schema
	fb.Init(tbl.Bytes, tbl.Pos)

	schema, err := schemaFromFB(&fb, f.reg)
	if err != nil {
		return err
	}
	if !schema.Equal(f.schema) {
		return formatErrorf("schema message does not match footer schema:\n%s\nvs\n%s", schema, f.schema)
	}
	return nil
}

// Schema returns the schema of the file. No record batch is read.
func (f *FileReader) Schema() *arrow.Schema { return f.schema }

// NumRecords returns the number of record batches in the file.
func (f *FileReader) NumRecords() int { return len(f.blocks) }

// Blocks returns the footer entries of the record batches in file order.
func (f *FileReader) Blocks() []FileBlock {
	return append([]FileBlock(nil), f.blocks...)
}

// Version returns the metadata version of the file footer.
func (f *FileReader) Version() MetadataVersion { return f.version }

// Close releases the reader. The underlying file is not closed. Later calls
// fail with an error wrapping os.ErrClosed.
func (f *FileReader) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err == nil {
		f.err = xerrors.Errorf("arrow/ipc: file reader: %w", os.ErrClosed)
	}
	return nil
}

func (f *FileReader) stickyErr() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err == nil {
		return nil
	}
	return xerrors.Errorf("arrow/ipc: reader unusable: %w", f.err)
}

func (f *FileReader) setErr(err error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err == nil {
		f.err = err
	}
	return err
}

// Record returns the i-th record batch of the file as a table.
func (f *FileReader) Record(i int) (*array.Table, error) {
	return f.ReadBatch(i)
}

// ReadBatch decodes the i-th record batch. It is safe to call from several
// goroutines when the source supports concurrent ReadAt.
func (f *FileReader) ReadBatch(i int) (*array.Table, error) {
	if err := f.stickyErr(); err != nil {
		return nil, err
	}
	if i < 0 || i >= len(f.blocks) {
		return nil, xerrors.Errorf("arrow/ipc: record index %d out of bounds [0, %d): %w", i, len(f.blocks), arrow.ErrIndex)
	}

	tbl, err := f.readBatch(i)
	if err != nil {
		return nil, f.setErr(xerrors.Errorf("arrow/ipc: could not read record batch %d: %w", i, err))
	}
	return tbl, nil
}

func (f *FileReader) readBlock(blk FileBlock) (*message, error) {
	if blk.Offset < int64(len(paddedMagic)) || blk.Meta <= 0 || blk.Body < 0 {
		return nil, corruptErrorf("invalid block (offset=%d, meta=%d, body=%d)", blk.Offset, blk.Meta, blk.Body)
	}
	size, ok := overflow.Add64(int64(blk.Meta), blk.Body)
	if !ok {
		return nil, corruptErrorf("block size overflows (meta=%d, body=%d)", blk.Meta, blk.Body)
	}
	if end, ok := overflow.Add64(blk.Offset, size); !ok || end > f.footerPos {
		return nil, corruptErrorf("block [%d, +%d) extends past the footer at %d", blk.Offset, size, f.footerPos)
	}

	buf := make([]byte, size)
	if err := f.readAt(buf, blk.Offset); err != nil {
		return nil, xerrors.Errorf("arrow/ipc: could not read block at %d: %w", blk.Offset, err)
	}

	prefix, metaLen, err := readMessageHeader(buf)
	if err != nil {
		return nil, corruptErrorf("%v", err)
	}
	if int64(prefix)+int64(metaLen) > int64(blk.Meta) {
		return nil, corruptErrorf("message metadata of %d bytes exceeds block metadata of %d", metaLen, blk.Meta)
	}

	meta := memory.NewBufferBytes(buf[prefix : prefix+int(metaLen)])
	body := memory.NewBufferBytes(buf[blk.Meta:])
	return newMessage(meta, body), nil
}

func (f *FileReader) readBatch(i int) (tbl *array.Table, err error) {
	blk := f.blocks[i]

	defer catchPanic(&err, ErrCorrupt)

	msg, err := f.readBlock(blk)
	if err != nil {
		return nil, err
	}
	if msg.Type() != MessageRecordBatch {
		return nil, corruptErrorf("block holds a %s message", msg.Type())
	}
	if !supportedVersion(msg.Version()) {
		return nil, corruptErrorf("unsupported message version %s", msg.Version())
	}
	if msg.BodyLen() != blk.Body {
		return nil, corruptErrorf("message body length %d does not match block body length %d", msg.BodyLen(), blk.Body)
	}

	var hdr flatbuffers.Table
	if !msg.msg.Header(&hdr) {
		return nil, corruptErrorf("record batch message without header")
	}
	var rec flatbuf.RecordBatch
	rec.Init(hdr.Bytes, hdr.Pos)

	rows := rec.Length()
	if rows < 0 || rows > math.MaxInt32 {
		return nil, corruptErrorf("invalid row count %d", rows)
	}

	ld := batchLoader{
		rec:     &rec,
		body:    msg.body,
		version: msg.Version(),
	}
	if c := rec.Compression(nil); c != nil {
		if c.Method() != flatbuf.BodyCompressionMethodBUFFER {
			return nil, unsupportedErrorf("body compression method %d", c.Method())
		}
		ld.codec, err = codecFromFB(c.Codec())
		if err != nil {
			return nil, err
		}
	}

	cols := make([]arrow.Array, f.schema.NumFields())
	for j, field := range f.schema.Fields() {
		data, err := ld.load(field.Type, 0)
		if err != nil {
			return nil, xerrors.Errorf("arrow/ipc: column %d (%q): %w", j, field.Name, err)
		}
		if int64(data.Len()) != rows {
			return nil, corruptErrorf("column %q has %d rows, batch has %d", field.Name, data.Len(), rows)
		}
		if err := array.ValidateLayout(data); err != nil {
			return nil, corruptErrorf("column %q: %v", field.Name, err)
		}
		cols[j] = array.MakeFromData(data)
	}

	if ld.node != rec.NodesLength() {
		return nil, corruptErrorf("%d field nodes present, %d consumed", rec.NodesLength(), ld.node)
	}
	if ld.buf != rec.BuffersLength() {
		return nil, corruptErrorf("%d buffers present, %d consumed", rec.BuffersLength(), ld.buf)
	}

	level.Debug(f.logger).Log("msg", "read record batch", "index", i, "rows", rows,
		"offset", blk.Offset, "meta", blk.Meta, "body", blk.Body, "compressed", ld.codec != nil)

	return array.NewTable(f.schema, cols)
}

// batchLoader walks the field nodes and buffers of one record batch in
// depth-first field order.
type batchLoader struct {
	rec     *flatbuf.RecordBatch
	body    *memory.Buffer
	codec   compress.Codec
	version MetadataVersion

	node int
	buf  int
}

func (l *batchLoader) nextNode() (length, nulls int, err error) {
	if l.node >= l.rec.NodesLength() {
		return 0, 0, corruptErrorf("schema needs more than the %d field nodes present", l.rec.NodesLength())
	}
	var node flatbuf.FieldNode
	if !l.rec.Nodes(&node, l.node) {
		return 0, 0, corruptErrorf("could not read field node %d", l.node)
	}
	l.node++

	n, k := node.Length(), node.NullCount()
	if n < 0 || n > math.MaxInt32 || k < 0 || k > n {
		return 0, 0, corruptErrorf("field node %d has length %d and null count %d", l.node-1, n, k)
	}
	return int(n), int(k), nil
}

func (l *batchLoader) nextBuffer() (*memory.Buffer, error) {
	if l.buf >= l.rec.BuffersLength() {
		return nil, corruptErrorf("schema needs more than the %d buffers present", l.rec.BuffersLength())
	}
	var buf flatbuf.Buffer
	if !l.rec.Buffers(&buf, l.buf) {
		return nil, corruptErrorf("could not read buffer %d", l.buf)
	}
	l.buf++

	off, size := buf.Offset(), buf.Length()
	end, ok := overflow.Add64(off, size)
	if off < 0 || size < 0 || !ok || end > int64(l.body.Len()) {
		return nil, corruptErrorf("buffer %d [%d, +%d) outside body of %d bytes", l.buf-1, off, size, l.body.Len())
	}
	if size == 0 {
		return nil, nil
	}

	raw := memory.NewSliceBuffer(l.body, int(off), int(size))
	if l.codec == nil {
		return raw, nil
	}
	out, err := decompressBuffer(l.codec, raw.Bytes())
	if err != nil {
		return nil, xerrors.Errorf("arrow/ipc: buffer %d: %w", l.buf-1, err)
	}
	return memory.NewBufferBytes(out), nil
}

func (l *batchLoader) nextBuffers(n int) ([]*memory.Buffer, error) {
	bufs := make([]*memory.Buffer, n)
	for i := range bufs {
		var err error
		if bufs[i], err = l.nextBuffer(); err != nil {
			return nil, err
		}
	}
	return bufs, nil
}

func (l *batchLoader) load(dt arrow.DataType, depth int) (arrow.ArrayData, error) {
	if depth > maxNestingDepth {
		return nil, corruptErrorf("nesting deeper than %d levels", maxNestingDepth)
	}

	st := dt
	for {
		ext, ok := st.(arrow.ExtensionType)
		if !ok {
			break
		}
		st = ext.StorageType()
	}

	length, nulls, err := l.nextNode()
	if err != nil {
		return nil, err
	}

	var (
		bufs []*memory.Buffer
		nbuf = arrow.LayoutOf(st).NumBuffers()
	)
	switch st.ID() {
	case arrow.NULL:
		bufs, nulls = make([]*memory.Buffer, nbuf), length
	case arrow.SPARSE_UNION, arrow.DENSE_UNION:
		if l.version < MetadataV5 {
			// pre-V5 unions carry a validity bitmap, which is ignored
			if _, err := l.nextBuffer(); err != nil {
				return nil, err
			}
		}
		if bufs, err = l.nextBuffers(nbuf); err != nil {
			return nil, err
		}
		nulls = 0
	default:
		if bufs, err = l.nextBuffers(nbuf); err != nil {
			return nil, err
		}
		if nulls == 0 {
			bufs[0] = nil
		}
	}

	var kids []arrow.ArrayData
	if nested, ok := st.(arrow.NestedType); ok {
		fields := nested.Fields()
		kids = make([]arrow.ArrayData, len(fields))
		for i, field := range fields {
			if kids[i], err = l.load(field.Type, depth+1); err != nil {
				return nil, err
			}
		}
	}

	return array.NewData(dt, length, bufs, kids, nulls, 0), nil
}

// ReadAll decodes every record batch concurrently and returns them in
// file order.
func (f *FileReader) ReadAll(ctx context.Context) ([]*array.Table, error) {
	out := make([]*array.Table, len(f.blocks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range out {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tbl, err := f.ReadBatch(i)
			if err != nil {
				return err
			}
			out[i] = tbl
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadTable decodes every record batch and concatenates them into a single
// table. A file without batches yields an empty table.
func (f *FileReader) ReadTable(ctx context.Context) (*array.Table, error) {
	tbls, err := f.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(tbls) == 0 {
		return emptyTable(f.schema)
	}
	return array.ConcatenateTables(tbls...)
}

func emptyTable(schema *arrow.Schema) (*array.Table, error) {
	cols := make([]arrow.Array, schema.NumFields())
	for i, field := range schema.Fields() {
		cols[i] = array.MakeFromData(emptyData(field.Type))
	}
	return array.NewTable(schema, cols)
}

func emptyData(dt arrow.DataType) arrow.ArrayData {
	st := dt
	for {
		ext, ok := st.(arrow.ExtensionType)
		if !ok {
			break
		}
		st = ext.StorageType()
	}

	var kids []arrow.ArrayData
	if nested, ok := st.(arrow.NestedType); ok {
		for _, field := range nested.Fields() {
			kids = append(kids, emptyData(field.Type))
		}
	}
	return array.NewData(dt, 0, make([]*memory.Buffer, arrow.LayoutOf(st).NumBuffers()), kids, 0, 0)
}

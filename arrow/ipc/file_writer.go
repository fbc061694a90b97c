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
	"encoding/binary"
	"fmt"
	"io"

	"github.com/arrowfixtures/feather/arrow"
	"github.com/arrowfixtures/feather/arrow/array"
	"github.com/arrowfixtures/feather/arrow/bitutil"
	"github.com/arrowfixtures/feather/arrow/internal/flatbuf"
	"github.com/arrowfixtures/feather/arrow/memory"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/xerrors"
)

type writerState int8

const (
	stateInit writerState = iota
	stateSchemaWritten
	stateBatchWritten
	stateFinalized
	stateFailed
)

func (s writerState) String() string {
	switch s {
	case stateInit:
		return "init"
	case stateSchemaWritten:
		return "schema written"
	case stateBatchWritten:
		return "batch written"
	case stateFinalized:
		return "finalized"
	}
	return "failed"
}

// countingWriter tracks the file position.
type countingWriter struct {
	w   io.Writer
	pos int64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}

// FileWriter is an Arrow file writer. Tables written to it become record
// batches of the file; Close writes the footer. A FileWriter is not safe
// for concurrent use.
type FileWriter struct {
	w      *countingWriter
	mem    memory.Allocator
	schema *arrow.Schema
	logger log.Logger

	schemaMsg *memory.Buffer
	codec     *bufferCompressor

	state  writerState
	err    error
	blocks []FileBlock
}

// NewFileWriter returns a writer that writes an Arrow file to w. The
// schema must be given with WithSchema. Nothing is written until the first
// call to Write or Close, and the underlying writer is never closed.
func NewFileWriter(w io.Writer, opts ...Option) (*FileWriter, error) {
	cfg := newConfig(opts...)
	if cfg.codecErr != nil {
		return nil, cfg.codecErr
	}
	if cfg.schema == nil {
		return nil, xerrors.Errorf("arrow/ipc: file writer needs a schema: %w", arrow.ErrSchema)
	}

	codec, err := newBufferCompressor(cfg.codec)
	if err != nil {
		return nil, err
	}

	schemaMsg, err := writeSchemaMessage(cfg.schema)
	if err != nil {
		return nil, err
	}

	return &FileWriter{
		w:         &countingWriter{w: w},
		mem:       cfg.alloc,
		schema:    cfg.schema,
		logger:    cfg.logger,
		schemaMsg: schemaMsg,
		codec:     codec,
	}, nil
}

// Schema returns the schema of the file being written.
func (f *FileWriter) Schema() *arrow.Schema { return f.schema }

func (f *FileWriter) checkState(op string) error {
	switch f.state {
	case stateFinalized:
		return xerrors.Errorf("arrow/ipc: %s on a closed file writer: %w", op, ErrSequence)
	case stateFailed:
		return fmt.Errorf("arrow/ipc: %s after a failed write: %w: %w", op, ErrSequence, f.err)
	}
	return nil
}

func (f *FileWriter) fail(err error) error {
	f.state, f.err = stateFailed, err
	return err
}

func (f *FileWriter) start() error {
	if _, err := f.w.Write(paddedMagic); err != nil {
		return xerrors.Errorf("arrow/ipc: could not write magic Arrow bytes: %w", err)
	}

	n, err := writeMessage(f.w, f.schemaMsg.Bytes())
	if err != nil {
		return err
	}
	level.Debug(f.logger).Log("msg", "wrote schema", "fields", f.schema.NumFields(), "meta", n)
	f.state = stateSchemaWritten
	return nil
}

// Write appends tbl to the file as one record batch. The schema of tbl must
// equal the writer schema.
func (f *FileWriter) Write(tbl *array.Table) (err error) {
	if err := f.checkState("write"); err != nil {
		return err
	}
	if !tbl.Schema().Equal(f.schema) {
		return fmt.Errorf("arrow/ipc: table schema does not match writer schema:\n%s\nvs\n%s: %w: %w",
			tbl.Schema(), f.schema, ErrSequence, arrow.ErrSchema)
	}

	defer func() {
		if pErr := recover(); pErr != nil {
			err = f.fail(xerrors.Errorf("arrow/ipc: unknown error while writing: %v", pErr))
		}
	}()

	if f.state == stateInit {
		if err := f.start(); err != nil {
			return f.fail(err)
		}
	}

	var p payload
	enc := newRecordEncoder(f.mem, f.codec)
	if err := enc.encode(&p, tbl); err != nil {
		// nothing has been written for this batch yet
		return err
	}

	blk, err := p.writeTo(f.w)
	if err != nil {
		return f.fail(err)
	}
	f.blocks = append(f.blocks, blk)
	f.state = stateBatchWritten

	level.Debug(f.logger).Log("msg", "wrote record batch", "index", len(f.blocks)-1,
		"rows", tbl.NumRows(), "offset", blk.Offset, "meta", blk.Meta, "body", blk.Body,
		"codec", f.codecName())
	return nil
}

func (f *FileWriter) codecName() string {
	if f.codec == nil {
		return "NONE"
	}
	return f.codec.fb.String()
}

// Close writes the file footer. The schema is written first when no batch
// was. Closing twice fails with ErrSequence.
func (f *FileWriter) Close() error {
	if err := f.checkState("close"); err != nil {
		return err
	}

	if f.state == stateInit {
		if err := f.start(); err != nil {
			return f.fail(err)
		}
	}

	pos := f.w.pos
	if err := writeFileFooter(f.schema, f.blocks, f.w); err != nil {
		return f.fail(xerrors.Errorf("arrow/ipc: could not write file footer: %w", err))
	}

	size := f.w.pos - pos
	if size <= 0 || size > 1<<31-1 {
		return f.fail(xerrors.Errorf("arrow/ipc: invalid file footer size (size=%d)", size))
	}

	var tail [4]byte
	binary.LittleEndian.PutUint32(tail[:], uint32(size))
	if _, err := f.w.Write(tail[:]); err != nil {
		return f.fail(xerrors.Errorf("arrow/ipc: could not write file footer size: %w", err))
	}
	if _, err := f.w.Write(Magic); err != nil {
		return f.fail(xerrors.Errorf("arrow/ipc: could not write Arrow magic bytes: %w", err))
	}

	level.Debug(f.logger).Log("msg", "wrote footer", "batches", len(f.blocks), "offset", pos, "size", size)
	f.state = stateFinalized
	return nil
}

// payload is an encoded record batch: its metadata message and the body
// buffers, each of which is padded to 8 bytes on write.
type payload struct {
	meta *memory.Buffer
	body []*memory.Buffer
	size int64
}

func (p *payload) writeTo(w *countingWriter) (FileBlock, error) {
	blk := FileBlock{Offset: w.pos, Body: p.size}

	n, err := writeMessage(w, p.meta.Bytes())
	if err != nil {
		return blk, err
	}
	blk.Meta = n

	for _, buf := range p.body {
		size := int64(buf.Len())
		if size == 0 {
			continue
		}
		if _, err := w.Write(buf.Bytes()); err != nil {
			return blk, xerrors.Errorf("arrow/ipc: could not write payload message body: %w", err)
		}
		if err := writePadding(w, bitutil.PaddedLength(size, 8)-size); err != nil {
			return blk, err
		}
	}
	return blk, nil
}

type recordEncoder struct {
	mem   memory.Allocator
	codec *bufferCompressor

	fields []fieldMetadata
	meta   []bufferMetadata

	depth int64
}

func newRecordEncoder(mem memory.Allocator, codec *bufferCompressor) *recordEncoder {
	return &recordEncoder{
		mem:   mem,
		codec: codec,
		depth: maxNestingDepth,
	}
}

func (w *recordEncoder) encode(p *payload, tbl *array.Table) error {
	for i, col := range tbl.Columns() {
		if err := w.visit(p, col); err != nil {
			return xerrors.Errorf("arrow/ipc: could not encode column %d (%q): %w", i, tbl.ColumnName(i), err)
		}
	}

	if w.codec != nil {
		for i, buf := range p.body {
			p.body[i] = w.codec.compress(buf)
		}
	}

	w.meta = make([]bufferMetadata, len(p.body))
	var offset int64
	for i, buf := range p.body {
		size := int64(buf.Len())
		w.meta[i] = bufferMetadata{Offset: offset, Len: size}
		offset += bitutil.PaddedLength(size, 8)
	}
	p.size = offset

	var codec *flatbuf.CompressionType
	if w.codec != nil {
		codec = &w.codec.fb
	}
	p.meta = writeRecordMessage(tbl.NumRows(), p.size, w.fields, w.meta, codec)
	return nil
}

func (w *recordEncoder) visit(p *payload, arr arrow.Array) error {
	if w.depth <= 0 {
		return xerrors.Errorf("arrow/ipc: nesting deeper than %d levels: %w", maxNestingDepth, ErrUnsupportedType)
	}

	if ext, ok := arr.(array.ExtensionArray); ok {
		arr = ext.Storage()
	}

	data := arr.Data()
	offset, length := data.Offset(), data.Len()
	node := fieldMetadata{Len: int64(length)}

	switch arr.DataType().ID() {
	case arrow.NULL:
		node.Nulls = node.Len
		w.fields = append(w.fields, node)
		return nil
	case arrow.SPARSE_UNION, arrow.DENSE_UNION:
		// no validity bitmap since metadata V5, so no nulls of their own
		w.fields = append(w.fields, node)
	default:
		node.Nulls = int64(arr.NullN())
		w.fields = append(w.fields, node)
		var validity *memory.Buffer
		if arr.NullN() > 0 {
			validity = newTruncatedBitmap(w.mem, int64(offset), int64(length), data.Buffers()[0])
		}
		p.body = append(p.body, validity)
	}

	w.depth--
	defer func() { w.depth++ }()

	switch arr := arr.(type) {
	case *array.Boolean:
		p.body = append(p.body, newTruncatedBitmap(w.mem, int64(offset), int64(length), data.Buffers()[1]))

	case *array.Binary:
		return encodeVarBinary(w, p, data, arr.ValueOffsets())
	case *array.String:
		return encodeVarBinary(w, p, data, arr.ValueOffsets())
	case *array.LargeBinary:
		return encodeVarBinary(w, p, data, arr.ValueOffsets())
	case *array.LargeString:
		return encodeVarBinary(w, p, data, arr.ValueOffsets())

	case *array.List:
		offsets, beg, end := zeroBasedOffsets(w.mem, arr.Offsets(), length)
		p.body = append(p.body, offsets)
		return w.visit(p, array.NewSlice(arr.ListValues(), beg, end))
	case *array.LargeList:
		offsets, beg, end := zeroBasedOffsets(w.mem, arr.Offsets(), length)
		p.body = append(p.body, offsets)
		return w.visit(p, array.NewSlice(arr.ListValues(), beg, end))

	case *array.FixedSizeList:
		n := int64(arr.DataType().(*arrow.FixedSizeListType).Len())
		beg := int64(offset) * n
		return w.visit(p, array.NewSlice(arr.ListValues(), beg, beg+int64(length)*n))

	case *array.Struct:
		for i := 0; i < arr.NumField(); i++ {
			if err := w.visit(p, arr.Field(i)); err != nil {
				return err
			}
		}

	case *array.SparseUnion:
		p.body = append(p.body, sliceBuffer(data.Buffers()[0], offset, length, 1))
		for i := 0; i < arr.NumFields(); i++ {
			if err := w.visit(p, arr.Field(i)); err != nil {
				return err
			}
		}

	case *array.DenseUnion:
		return w.visitDenseUnion(p, arr)

	default:
		fw, ok := arr.DataType().(arrow.FixedWidthDataType)
		if !ok || len(data.Buffers()) != 2 {
			return xerrors.Errorf("arrow/ipc: cannot encode array of type %s: %w", arr.DataType(), ErrUnsupportedType)
		}
		p.body = append(p.body, sliceBuffer(data.Buffers()[1], offset, length, fw.Bytes()))
	}

	return nil
}

func encodeVarBinary[O arrow.OffsetType](w *recordEncoder, p *payload, data arrow.ArrayData, offsets []O) error {
	rebased, beg, end := zeroBasedOffsets(w.mem, offsets, data.Len())
	p.body = append(p.body, rebased)

	values := data.Buffers()[2]
	if end > int64(values.Len()) || beg > end {
		return xerrors.Errorf("arrow/ipc: value offsets [%d, %d) outside data buffer of %d bytes", beg, end, values.Len())
	}
	if beg == end {
		p.body = append(p.body, nil)
		return nil
	}
	p.body = append(p.body, memory.NewSliceBuffer(values, int(beg), int(end-beg)))
	return nil
}

// visitDenseUnion re-bases the value offsets of a sliced dense union: each
// child is trimmed to the range of positions the slice refers to and the
// offsets are shifted by the start of that range.
func (w *recordEncoder) visitDenseUnion(p *payload, arr *array.DenseUnion) error {
	data := arr.Data()
	length := data.Len()
	ut := arr.UnionType()

	p.body = append(p.body, sliceBuffer(data.Buffers()[0], data.Offset(), length, 1))

	codes := arr.RawTypeCodes()
	offsets := arr.RawValueOffsets()
	ids := ut.ChildIDs()

	nkids := arr.NumFields()
	lo := make([]int32, nkids)
	hi := make([]int32, nkids)
	for i := range lo {
		lo[i], hi[i] = -1, -1
	}
	for i, c := range codes {
		child, o := ids[c], offsets[i]
		if lo[child] < 0 || o < lo[child] {
			lo[child] = o
		}
		if o+1 > hi[child] {
			hi[child] = o + 1
		}
	}

	if length > 0 {
		shifted := make([]int32, length)
		for i, c := range codes {
			child := ids[c]
			shifted[i] = offsets[i] - lo[child]
		}
		p.body = append(p.body, memory.NewBufferBytes(arrow.GetBytes(shifted)))
	} else {
		p.body = append(p.body, nil)
	}

	for i := 0; i < nkids; i++ {
		child := arr.Field(i)
		beg, end := int64(0), int64(0)
		if lo[i] >= 0 {
			beg, end = int64(lo[i]), int64(hi[i])
		}
		if err := w.visit(p, array.NewSlice(child, beg, end)); err != nil {
			return err
		}
	}
	return nil
}

// sliceBuffer returns the bytes of length fixed-width values starting at
// value offset, without copying.
func sliceBuffer(buf *memory.Buffer, offset, length, width int) *memory.Buffer {
	if length == 0 || buf.Len() == 0 {
		return nil
	}
	beg, size := offset*width, length*width
	if beg == 0 && size == buf.Len() {
		return buf
	}
	return memory.NewSliceBuffer(buf, beg, size)
}

// newTruncatedBitmap returns the bits [offset, offset+length) of input as a
// bitmap starting at bit 0. Byte-aligned offsets share the input memory.
func newTruncatedBitmap(mem memory.Allocator, offset, length int64, input *memory.Buffer) *memory.Buffer {
	if input == nil || input.Len() == 0 {
		return nil
	}

	minLength := bitutil.BytesForBits(length)
	switch {
	case offset == 0 && int64(input.Len()) <= minLength:
		return input
	case offset%8 == 0:
		return memory.NewSliceBuffer(input, int(offset/8), int(minLength))
	default:
		out := memory.NewAllocatedBuffer(mem, int(bitutil.PaddedLength(minLength, 8)))
		bitutil.CopyBitmap(input.Bytes(), int(offset), int(length), out.Bytes(), 0)
		return memory.NewSliceBuffer(out, 0, int(minLength))
	}
}

// zeroBasedOffsets returns the length+1 offsets of a possibly sliced array
// shifted to start at zero, together with the child or data range they
// cover.
func zeroBasedOffsets[O arrow.OffsetType](mem memory.Allocator, offsets []O, length int) (*memory.Buffer, int64, int64) {
	if length == 0 || len(offsets) == 0 {
		return nil, 0, 0
	}
	offsets = offsets[:length+1]
	beg, end := int64(offsets[0]), int64(offsets[length])
	if beg == 0 {
		return memory.NewBufferBytes(arrow.GetBytes(offsets)), beg, end
	}

	out := memory.NewAllocatedBuffer(mem, len(offsets)*int(arrow.SizeOf[O]()))
	shifted := arrow.GetData[O](out.Bytes())
	for i, o := range offsets {
		shifted[i] = o - O(beg)
	}
	return out, beg, end
}

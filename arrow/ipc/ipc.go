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

// Package ipc implements the Arrow IPC random-access file format, the
// format Feather v2 files are written in.
//
// A file is the magic string "ARROW1" padded to 8 bytes, an encapsulated
// schema message, one encapsulated message per record batch, and a footer
// flatbuffer indexing the batches, followed by the footer length and the
// magic string again.
package ipc

import (
	"errors"
	"io"

	"github.com/arrowfixtures/feather/arrow"
	"github.com/arrowfixtures/feather/arrow/compress"
	"github.com/arrowfixtures/feather/arrow/internal/flatbuf"
	"github.com/arrowfixtures/feather/arrow/memory"
	"github.com/go-kit/log"
	"golang.org/x/xerrors"
)

var (
	// ErrSequence is returned when a FileWriter is used out of order.
	ErrSequence = errors.New("arrow/ipc: invalid writer state")
	// ErrFormat is returned when a file is not a well formed Arrow file.
	ErrFormat = errors.New("arrow/ipc: malformed file")
	// ErrCorrupt is returned when a record batch is inconsistent with its
	// metadata or its schema.
	ErrCorrupt = errors.New("arrow/ipc: corrupt record batch")
	// ErrDecompression is returned when a compressed buffer cannot be
	// decoded to its recorded length.
	ErrDecompression = errors.New("arrow/ipc: decompression failed")
	// ErrUnsupportedType is returned for types this package cannot encode
	// or decode, such as dictionary-encoded fields.
	ErrUnsupportedType = errors.New("arrow/ipc: unsupported type")
	// ErrUnsupportedCodec is returned for buffer compression other than
	// LZ4_FRAME and ZSTD.
	ErrUnsupportedCodec = compress.ErrUnsupportedCodec
)

// Magic string identifying an Apache Arrow file.
var Magic = []byte("ARROW1")

const (
	currentMetadataVersion = MetadataV5
	minMetadataVersion     = MetadataV4

	// maxNestingDepth is an arbitrary value to catch user mistakes.
	maxNestingDepth = 64

	// DefaultChunkSize is the number of rows per record batch WriteFeather
	// uses unless WithChunkSize says otherwise.
	DefaultChunkSize = 64 * 1024
)

// paddedMagic is the 8-byte file prefix.
var paddedMagic = []byte("ARROW1\x00\x00")

// MetadataVersion represents the Arrow metadata version.
type MetadataVersion flatbuf.MetadataVersion

const (
	MetadataV1 = MetadataVersion(flatbuf.MetadataVersionV1) // version for Arrow-0.1.0
	MetadataV2 = MetadataVersion(flatbuf.MetadataVersionV2) // version for Arrow-0.2.0
	MetadataV3 = MetadataVersion(flatbuf.MetadataVersionV3) // version for Arrow-0.3.0 to 0.7.1
	MetadataV4 = MetadataVersion(flatbuf.MetadataVersionV4) // version for >= Arrow-0.8.0
	MetadataV5 = MetadataVersion(flatbuf.MetadataVersionV5) // version for >= Arrow-1.0.0
)

func (m MetadataVersion) String() string { return flatbuf.MetadataVersion(m).String() }

func supportedVersion(v MetadataVersion) bool {
	return v >= minMetadataVersion && v <= currentMetadataVersion
}

// ReadAtSeeker is the input a FileReader needs: random access plus a way
// to find the end of the file.
type ReadAtSeeker interface {
	io.Reader
	io.Seeker
	io.ReaderAt
}

type config struct {
	alloc     memory.Allocator
	schema    *arrow.Schema
	codec     compress.Compression
	codecErr  error
	chunkSize int64
	registry  *arrow.ExtensionRegistry
	logger    log.Logger
	footer    struct {
		offset int64
	}
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		alloc:     memory.NewGoAllocator(),
		codec:     compress.Uncompressed,
		chunkSize: DefaultChunkSize,
		registry:  arrow.DefaultExtensionRegistry(),
		logger:    log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option is a functional option to configure opening or creating Arrow files.
type Option func(*config)

// WithFooterOffset specifies the Arrow footer position in bytes, which is
// the size of the file when it is not embedded in a larger one.
func WithFooterOffset(offset int64) Option {
	return func(cfg *config) {
		cfg.footer.offset = offset
	}
}

// WithAllocator specifies the Arrow memory allocator used while building
// records.
func WithAllocator(mem memory.Allocator) Option {
	return func(cfg *config) {
		cfg.alloc = mem
	}
}

// WithSchema specifies the Arrow schema to be used for writing.
func WithSchema(schema *arrow.Schema) Option {
	return func(cfg *config) {
		cfg.schema = schema
	}
}

// WithCompression sets the codec record batch buffers are compressed with.
// Only compress.Lz4Frame and compress.Zstd can be expressed in the file
// format; any other codec makes NewFileWriter fail with ErrUnsupportedCodec.
func WithCompression(codec compress.Compression) Option {
	return func(cfg *config) {
		switch codec {
		case compress.Uncompressed, compress.Lz4Frame, compress.Zstd:
			cfg.codec, cfg.codecErr = codec, nil
		default:
			cfg.codecErr = xerrors.Errorf("arrow/ipc: %s buffer compression: %w", codec, ErrUnsupportedCodec)
		}
	}
}

// WithLZ4 compresses record batch buffers with LZ4 frames.
func WithLZ4() Option { return WithCompression(compress.Lz4Frame) }

// WithZstd compresses record batch buffers with Zstandard.
func WithZstd() Option { return WithCompression(compress.Zstd) }

// WithChunkSize sets the maximum number of rows per record batch written by
// WriteFeather. Values below 1 select DefaultChunkSize.
func WithChunkSize(n int64) Option {
	return func(cfg *config) {
		if n < 1 {
			n = DefaultChunkSize
		}
		cfg.chunkSize = n
	}
}

// WithExtensionRegistry sets the registry extension types are resolved in
// while reading. The default is arrow.DefaultExtensionRegistry().
func WithExtensionRegistry(reg *arrow.ExtensionRegistry) Option {
	return func(cfg *config) {
		cfg.registry = reg
	}
}

// WithLogger enables debug logging of the messages written and read.
func WithLogger(logger log.Logger) Option {
	return func(cfg *config) {
		if logger == nil {
			logger = log.NewNopLogger()
		}
		cfg.logger = logger
	}
}

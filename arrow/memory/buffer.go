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

package memory

// Buffer is a contiguous, immutable run of bytes backing part of an array.
type Buffer struct {
	buf []byte
}

// NewBufferBytes wraps data without copying it.
func NewBufferBytes(data []byte) *Buffer {
	return &Buffer{buf: data}
}

// NewAllocatedBuffer allocates a zeroed buffer of n bytes from mem.
func NewAllocatedBuffer(mem Allocator, n int) *Buffer {
	if mem == nil {
		mem = DefaultAllocator
	}
	return &Buffer{buf: mem.Allocate(n)}
}

// Buf returns the underlying bytes. A nil Buffer yields nil.
func (b *Buffer) Buf() []byte {
	if b == nil {
		return nil
	}
	return b.buf
}

// Bytes is an alias of Buf.
func (b *Buffer) Bytes() []byte { return b.Buf() }

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.buf)
}

// NewSliceBuffer returns a buffer sharing b's memory over [offset, offset+length).
func NewSliceBuffer(b *Buffer, offset, length int) *Buffer {
	return &Buffer{buf: b.Buf()[offset : offset+length : offset+length]}
}

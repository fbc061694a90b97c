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

import (
	"fmt"
	"sync/atomic"
)

// CheckedAllocator wraps another allocator and keeps a running count of
// outstanding bytes and allocation calls. Tests use it to prove that an
// operation did (or did not) allocate.
type CheckedAllocator struct {
	mem Allocator
	sz  int64
	n   int64
}

func NewCheckedAllocator(mem Allocator) *CheckedAllocator {
	return &CheckedAllocator{mem: mem}
}

// CurrentAlloc returns the number of bytes allocated and not yet freed.
func (a *CheckedAllocator) CurrentAlloc() int { return int(atomic.LoadInt64(&a.sz)) }

// Allocations returns the number of Allocate and Reallocate calls made so far.
func (a *CheckedAllocator) Allocations() int { return int(atomic.LoadInt64(&a.n)) }

func (a *CheckedAllocator) Allocate(size int) []byte {
	atomic.AddInt64(&a.sz, int64(size))
	atomic.AddInt64(&a.n, 1)
	return a.mem.Allocate(size)
}

func (a *CheckedAllocator) Reallocate(size int, b []byte) []byte {
	atomic.AddInt64(&a.sz, int64(size-len(b)))
	atomic.AddInt64(&a.n, 1)
	return a.mem.Reallocate(size, b)
}

func (a *CheckedAllocator) Free(b []byte) {
	atomic.AddInt64(&a.sz, int64(len(b)*-1))
	a.mem.Free(b)
}

type TestingT interface {
	Errorf(format string, args ...interface{})
	Helper()
}

// AssertSize fails t when the outstanding byte count differs from sz.
func (a *CheckedAllocator) AssertSize(t TestingT, sz int) {
	t.Helper()
	if cur := a.CurrentAlloc(); cur != sz {
		t.Errorf("invalid memory size exp=%d, got=%d", sz, cur)
	}
}

// CheckedAllocatorScope records the state of a CheckedAllocator so a test
// can later assert that nothing was allocated in between.
type CheckedAllocatorScope struct {
	alloc *CheckedAllocator
	sz    int
	n     int
}

func NewCheckedAllocatorScope(alloc *CheckedAllocator) *CheckedAllocatorScope {
	return &CheckedAllocatorScope{alloc: alloc, sz: alloc.CurrentAlloc(), n: alloc.Allocations()}
}

// CheckSize fails t when bytes were allocated since the scope was opened.
func (c *CheckedAllocatorScope) CheckSize(t TestingT) {
	t.Helper()
	if cur := c.alloc.CurrentAlloc(); c.sz != cur {
		t.Errorf("invalid memory size exp=%d, got=%d", c.sz, cur)
	}
}

// CheckNoAllocations fails t when any allocation call happened since the
// scope was opened.
func (c *CheckedAllocatorScope) CheckNoAllocations(t TestingT) {
	t.Helper()
	if n := c.alloc.Allocations(); n != c.n {
		t.Errorf("%s", fmt.Sprintf("unexpected allocations: %d", n-c.n))
	}
}

var (
	_ Allocator = (*CheckedAllocator)(nil)
	_ Allocator = (*GoAllocator)(nil)
)

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

/*
Package arrow describes the logical types of Arrow-compatible columnar data
and the physical buffer layout each of them uses.

# Arrays

Arrays are immutable sequences of values of a single logical type, stored
as a validity bitmap plus type-specific buffers and child arrays.
Concrete array implementations live in package array; this package only
exposes the Array and ArrayData interfaces so that types, schemas and
arrays can refer to each other without import cycles.

# Layouts

Every DataType reports its physical layout through Layout, a list of
BufferSpecs in the order the buffers appear in memory and on the wire:

	bool                 bitmap, bitmap
	int32                bitmap, 4-byte fixed width
	utf8                 bitmap, 4-byte offsets, variable width data
	large_utf8           bitmap, 8-byte offsets, variable width data
	list<T>              bitmap, 4-byte offsets (+ one child)
	struct<...>          bitmap (+ one child per field)
	sparse_union<...>    1-byte type ids (+ one child per field)
	dense_union<...>     1-byte type ids, 4-byte offsets (+ one child per field)

# Extension types

User-defined logical types are layered on a storage type and registered in
an ExtensionRegistry under a unique name. The IPC reader resolves extension
columns through the registry it is given and refuses to decode columns
whose extension name is unknown.
*/
package arrow

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

// Package flatbuf holds accessors and builders for the flatbuffers tables of
// the Arrow columnar format (Schema.fbs, Message.fbs and File.fbs). Readers
// follow the flatc Go layout: each table wraps a flatbuffers.Table and looks
// fields up through its vtable, falling back to the schema default when a
// field is absent.
//
// Accessors do not bounds-check the underlying bytes and panic on malformed
// input; callers decoding untrusted data must recover.
package flatbuf

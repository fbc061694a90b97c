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

package arrow

import "errors"

var (
	// ErrType is returned for malformed or mismatched type descriptors.
	ErrType = errors.New("type error")
	// ErrLayout is returned when buffers or children do not match the
	// physical layout required by a data type.
	ErrLayout = errors.New("layout error")
	// ErrInvalid is returned when values violate a constraint of their
	// logical type, such as a decimal exceeding its precision.
	ErrInvalid = errors.New("invalid")
	// ErrIndex is returned for out of range offsets, lengths and indices.
	ErrIndex = errors.New("index out of range")
	// ErrSchema is returned when columns cannot form a consistent table.
	ErrSchema = errors.New("schema error")
	// ErrConflict is returned when an extension name is registered twice
	// with different definitions.
	ErrConflict = errors.New("conflicting definition")
	// ErrUnknownExtension is returned when an extension name has not been
	// registered.
	ErrUnknownExtension = errors.New("unknown extension type")
	ErrNotImplemented   = errors.New("not implemented")
)

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
Package array provides immutable, garbage-collected implementations of the
Arrow array types, the validation that guards their construction, and the
Table type grouping equal-length named columns.

Arrays are created either from Go values with the New* constructors, from
raw buffers with Build, or from already validated data with MakeFromData.
Slicing never copies: a slice shares every buffer and child with its parent
and only adjusts offset and length.
*/
package array

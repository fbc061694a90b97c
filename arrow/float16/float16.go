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

// Package float16 implements the IEEE 754 half-precision values stored by
// Arrow float16 columns.
package float16

import (
	"math"
	"strconv"
)

// Num is a half-precision float in its 16-bit storage form.
type Num uint16

// New converts f, truncating the mantissa. Values too small for a normal
// half-precision number become zero and values too large become infinity.
func New(f float32) Num {
	b := math.Float32bits(f)
	sn := uint16((b >> 31) & 0x1)
	exp := (b >> 23) & 0xff
	res := int16(exp) - 127 + 15
	fc := uint16(b>>13) & 0x3ff
	switch {
	case exp == 0:
		res, fc = 0, 0
	case exp == 0xff:
		res = 0x1f
		if b&0x7fffff != 0 {
			// keep NaN a NaN when the payload sits in the dropped bits
			fc |= 0x200
		}
	case res > 0x1e:
		res, fc = 0x1f, 0
	case res < 0x01:
		res, fc = 0, 0
	}
	return Num((sn << 15) | uint16(res<<10) | fc)
}

// Float32 widens n without loss.
func (n Num) Float32() float32 {
	sn := uint32(n>>15) << 31
	exp := uint32(n>>10) & 0x1f
	fc := uint32(n) & 0x3ff
	switch exp {
	case 0:
		// zero or subnormal: fc * 2^-24
		v := float32(fc) / (1 << 24)
		if sn != 0 {
			return -v
		}
		return v
	case 0x1f:
		return math.Float32frombits(sn | 0xff<<23 | fc<<13)
	}
	return math.Float32frombits(sn | (exp+127-15)<<23 | fc<<13)
}

func (n Num) Uint16() uint16 { return uint16(n) }

func (n Num) IsNaN() bool { return n&0x7c00 == 0x7c00 && n&0x3ff != 0 }

func (n Num) String() string { return strconv.FormatFloat(float64(n.Float32()), 'g', -1, 32) }

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

// Package decimal128 implements the signed 128-bit two's complement integers
// backing Decimal128 arrays.
package decimal128

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// MaxPrecision is the largest number of decimal digits a Num can hold.
const MaxPrecision = 38

var (
	MaxDecimal128 = New(542101086242752217, 687399551400673280-1)

	// ErrOutOfRange is returned when a value does not fit the requested precision.
	ErrOutOfRange = errors.New("decimal128: value out of range")
	// ErrSyntax is returned for strings that are not decimal numbers.
	ErrSyntax = errors.New("decimal128: invalid syntax")

	pt10 = func() [MaxPrecision + 1]*big.Int {
		var out [MaxPrecision + 1]*big.Int
		v := big.NewInt(1)
		for i := range out {
			out[i] = new(big.Int).Set(v)
			v.Mul(v, big.NewInt(10))
		}
		return out
	}()
)

// Num represents a signed 128-bit integer in two's complement.
// Calculations wrap around and overflow is ignored.
type Num struct {
	lo uint64 // low bits
	hi int64  // high bits
}

// New returns a new signed 128-bit integer value.
func New(hi int64, lo uint64) Num {
	return Num{lo: lo, hi: hi}
}

// FromU64 returns a new signed 128-bit integer value from the provided uint64 one.
func FromU64(v uint64) Num {
	return New(0, v)
}

// FromI64 returns a new signed 128-bit integer value from the provided int64 one.
func FromI64(v int64) Num {
	switch {
	case v > 0:
		return New(0, uint64(v))
	case v < 0:
		return New(-1, uint64(v))
	default:
		return Num{}
	}
}

func fromBigIntPositive(v *big.Int) Num {
	var buf [16]byte
	v.FillBytes(buf[:])
	return Num{
		lo: binary.BigEndian.Uint64(buf[8:]),
		hi: int64(binary.BigEndian.Uint64(buf[:8])),
	}
}

// FromBigInt converts v, which must fit in 127 bits plus sign.
func FromBigInt(v *big.Int) Num {
	if v.Sign() < 0 {
		return fromBigIntPositive(new(big.Int).Abs(v)).Negate()
	}
	return fromBigIntPositive(v)
}

// FromBytes decodes a 16-byte little-endian two's complement value.
func FromBytes(b []byte) Num {
	return Num{
		lo: binary.LittleEndian.Uint64(b[:8]),
		hi: int64(binary.LittleEndian.Uint64(b[8:16])),
	}
}

// PutBytes encodes n as 16 little-endian bytes into b.
func (n Num) PutBytes(b []byte) {
	binary.LittleEndian.PutUint64(b[:8], n.lo)
	binary.LittleEndian.PutUint64(b[8:16], uint64(n.hi))
}

// LowBits returns the low bits of the two's complement representation of the number.
func (n Num) LowBits() uint64 { return n.lo }

// HighBits returns the high bits of the two's complement representation of the number.
func (n Num) HighBits() int64 { return n.hi }

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
func (n Num) Sign() int {
	if n == (Num{}) {
		return 0
	}
	return int(1 | (n.hi >> 63))
}

// Negate returns -n.
func (n Num) Negate() Num {
	n.lo = ^n.lo + 1
	n.hi = ^n.hi
	if n.lo == 0 {
		n.hi += 1
	}
	return n
}

// Abs returns |n|.
func (n Num) Abs() Num {
	if n.Sign() < 0 {
		return n.Negate()
	}
	return n
}

func toBigInt(n Num) *big.Int {
	hi := big.NewInt(n.hi)
	return hi.Lsh(hi, 64).Add(hi, new(big.Int).SetUint64(n.lo))
}

func (n Num) BigInt() *big.Int {
	if n.Sign() < 0 {
		ret := toBigInt(n.Negate())
		return ret.Neg(ret)
	}
	return toBigInt(n)
}

// Cmp compares n and other and returns -1, 0 or +1.
func (n Num) Cmp(other Num) int {
	switch {
	case n.hi < other.hi:
		return -1
	case n.hi > other.hi:
		return 1
	case n.lo < other.lo:
		return -1
	case n.lo > other.lo:
		return 1
	}
	return 0
}

// FitsInPrecision reports whether |n| < 10^prec.
func (n Num) FitsInPrecision(prec int32) bool {
	if prec < 1 || prec > MaxPrecision {
		return false
	}
	return n.Abs().BigInt().Cmp(pt10[prec]) < 0
}

// ToString formats n as a decimal number with scale fractional digits.
func (n Num) ToString(scale int32) string {
	digits := n.Abs().BigInt().String()
	sign := ""
	if n.Sign() < 0 {
		sign = "-"
	}
	if scale <= 0 {
		return sign + digits + strings.Repeat("0", int(-scale))
	}
	if len(digits) <= int(scale) {
		digits = strings.Repeat("0", int(scale)-len(digits)+1) + digits
	}
	point := len(digits) - int(scale)
	return sign + digits[:point] + "." + digits[point:]
}

// FromString parses s into a Num with the given precision and scale.
// Extra fractional digits beyond scale are rejected rather than rounded.
func FromString(s string, prec, scale int32) (Num, error) {
	if s == "" {
		return Num{}, fmt.Errorf("%w: empty string", ErrSyntax)
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	if len(intPart)+len(frac) == 0 {
		return Num{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	if int32(len(frac)) > scale {
		if strings.TrimRight(frac[scale:], "0") != "" {
			return Num{}, fmt.Errorf("%w: %q has more than %d fractional digits", ErrOutOfRange, s, scale)
		}
		frac = frac[:scale]
	}
	frac += strings.Repeat("0", int(scale)-len(frac))

	v, ok := new(big.Int).SetString(intPart+frac, 10)
	if !ok {
		return Num{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	if prec < 1 || prec > MaxPrecision || v.Cmp(pt10[prec]) >= 0 {
		return Num{}, fmt.Errorf("%w: %q does not fit precision %d", ErrOutOfRange, s, prec)
	}
	if neg {
		v.Neg(v)
	}
	return FromBigInt(v), nil
}

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

// Package bitutil holds the LSB-ordered bitmap helpers used for validity
// bitmaps and boolean data.
package bitutil

import (
	"math/bits"

	"github.com/arrowfixtures/feather/arrow/memory"
)

var (
	BitMask        = [8]byte{1, 2, 4, 8, 16, 32, 64, 128}
	FlippedBitMask = [8]byte{254, 253, 251, 247, 239, 223, 191, 127}
)

// IsMultipleOf8 returns whether v is a multiple of 8.
func IsMultipleOf8(v int64) bool { return v&7 == 0 }

// IsMultipleOf64 returns whether v is a multiple of 64.
func IsMultipleOf64(v int64) bool { return v&63 == 0 }

// CeilByte rounds size to the next multiple of 8.
func CeilByte(size int) int { return (size + 7) &^ 7 }

// CeilByte64 rounds size to the next multiple of 8.
func CeilByte64(size int64) int64 { return (size + 7) &^ 7 }

// BytesForBits returns the number of bytes required to hold n bits.
func BytesForBits(n int64) int64 { return (n + 7) >> 3 }

// PaddedLength rounds n up to the next multiple of align.
func PaddedLength(n, align int64) int64 { return (n + align - 1) &^ (align - 1) }

// BitIsSet returns true if the bit at index i in buf is set (1).
func BitIsSet(buf []byte, i int) bool { return (buf[uint(i)/8] & BitMask[byte(i)%8]) != 0 }

// BitIsNotSet returns true if the bit at index i in buf is not set (0).
func BitIsNotSet(buf []byte, i int) bool { return (buf[uint(i)/8] & BitMask[byte(i)%8]) == 0 }

// SetBit sets the bit at index i in buf to 1.
func SetBit(buf []byte, i int) { buf[uint(i)/8] |= BitMask[byte(i)%8] }

// ClearBit sets the bit at index i in buf to 0.
func ClearBit(buf []byte, i int) { buf[uint(i)/8] &= FlippedBitMask[byte(i)%8] }

// SetBitTo sets the bit at index i in buf to val.
func SetBitTo(buf []byte, i int, val bool) {
	if val {
		SetBit(buf, i)
	} else {
		ClearBit(buf, i)
	}
}

// CountSetBits counts the number of 1's in buf up to n bits starting at
// bit offset.
func CountSetBits(buf []byte, offset, n int) int {
	count := 0
	i := offset
	end := offset + n
	for ; i < end && i%8 != 0; i++ {
		if BitIsSet(buf, i) {
			count++
		}
	}
	for ; i+8 <= end; i += 8 {
		count += bits.OnesCount8(buf[i/8])
	}
	for ; i < end; i++ {
		if BitIsSet(buf, i) {
			count++
		}
	}
	return count
}

// CopyBitmap copies length bits from src starting at srcOffset into dst
// starting at dstOffset.
func CopyBitmap(src []byte, srcOffset, length int, dst []byte, dstOffset int) {
	if length == 0 {
		return
	}
	if srcOffset%8 == 0 && dstOffset%8 == 0 && length%8 == 0 {
		copy(dst[dstOffset/8:], src[srcOffset/8:(srcOffset+length)/8])
		return
	}
	for i := 0; i < length; i++ {
		SetBitTo(dst, dstOffset+i, BitIsSet(src, srcOffset+i))
	}
}

// BitmapFromBools packs vals into a newly allocated bitmap.
func BitmapFromBools(vals []bool) []byte {
	out := make([]byte, BytesForBits(int64(len(vals))))
	for i, v := range vals {
		if v {
			SetBit(out, i)
		}
	}
	return out
}

// AllSet returns a bitmap of n bits with every bit set.
func AllSet(n int) []byte {
	out := make([]byte, BytesForBits(int64(n)))
	memory.Set(out, 0xff)
	return out
}

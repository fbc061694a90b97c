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

package decimal128_test

import (
	"math/big"
	"testing"

	"github.com/arrowfixtures/feather/arrow/decimal128"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromI64(t *testing.T) {
	for _, tc := range []struct {
		v    int64
		want decimal128.Num
	}{
		{0, decimal128.New(0, 0)},
		{1, decimal128.New(0, 1)},
		{-1, decimal128.New(-1, ^uint64(0))},
	} {
		assert.Equal(t, tc.want, decimal128.FromI64(tc.v))
	}
}

func TestBigIntRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "-1", "123456789012345678901234567890", "-98765432109876543210"} {
		v, ok := new(big.Int).SetString(s, 10)
		require.True(t, ok)
		n := decimal128.FromBigInt(v)
		assert.Equal(t, s, n.BigInt().String())
	}
}

func TestBytesRoundTrip(t *testing.T) {
	n := decimal128.FromI64(-4930)
	buf := make([]byte, 16)
	n.PutBytes(buf)
	assert.Equal(t, n, decimal128.FromBytes(buf))
	assert.Equal(t, byte(0xff), buf[15])
}

func TestFromString(t *testing.T) {
	tests := []struct {
		s          string
		prec, scl  int32
		want       int64
		wantString string
	}{
		{"1.23", 10, 3, 1230, "1.230"},
		{"-4.93", 10, 3, -4930, "-4.930"},
		{"0.001", 5, 3, 1, "0.001"},
		{"42", 2, 0, 42, "42"},
		{"1.500", 4, 1, 15, "1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			n, err := decimal128.FromString(tt.s, tt.prec, tt.scl)
			require.NoError(t, err)
			assert.Equal(t, decimal128.FromI64(tt.want), n)
			assert.Equal(t, tt.wantString, n.ToString(tt.scl))
		})
	}
}

func TestFromStringErrors(t *testing.T) {
	_, err := decimal128.FromString("123", 2, 0)
	assert.ErrorIs(t, err, decimal128.ErrOutOfRange)

	_, err = decimal128.FromString("1.2345", 10, 2)
	assert.ErrorIs(t, err, decimal128.ErrOutOfRange)

	_, err = decimal128.FromString("abc", 10, 2)
	assert.ErrorIs(t, err, decimal128.ErrSyntax)

	_, err = decimal128.FromString("", 10, 2)
	assert.ErrorIs(t, err, decimal128.ErrSyntax)
}

func TestFitsInPrecision(t *testing.T) {
	assert.True(t, decimal128.FromI64(999).FitsInPrecision(3))
	assert.False(t, decimal128.FromI64(1000).FitsInPrecision(3))
	assert.True(t, decimal128.FromI64(-999).FitsInPrecision(3))
	assert.True(t, decimal128.MaxDecimal128.FitsInPrecision(38))
	assert.False(t, decimal128.FromI64(1).FitsInPrecision(0))
}

func TestCmpAndSign(t *testing.T) {
	a, b := decimal128.FromI64(-5), decimal128.FromI64(3)
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(a))
	assert.Equal(t, -1, a.Sign())
	assert.Equal(t, decimal128.FromI64(5), a.Abs())
	assert.Equal(t, "0.05", decimal128.FromI64(5).ToString(2))
}

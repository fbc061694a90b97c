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

package array_test

import (
	"fmt"
	"reflect"
	"strconv"
	"testing"

	"github.com/arrowfixtures/feather/arrow"
	"github.com/arrowfixtures/feather/arrow/array"
	"github.com/stretchr/testify/suite"
)

// centsType stores an amount of money as int64 cents.
type centsType struct {
	arrow.ExtensionBase
	currency string
}

func newCentsType(currency string) *centsType {
	return &centsType{ExtensionBase: arrow.ExtensionBase{Storage: arrow.PrimitiveTypes.Int64}, currency: currency}
}

func (*centsType) ArrayType() reflect.Type { return reflect.TypeOf(centsArray{}) }
func (*centsType) ExtensionName() string   { return "cents" }
func (c *centsType) Serialize() string     { return c.currency }
func (c *centsType) String() string        { return "cents<" + c.currency + ">" }

func (*centsType) Deserialize(storage arrow.DataType, data string) (arrow.ExtensionType, error) {
	if !arrow.TypeEqual(storage, arrow.PrimitiveTypes.Int64) {
		return nil, fmt.Errorf("cents needs int64 storage, got %s", storage)
	}
	return newCentsType(data), nil
}

func (c *centsType) ExtensionEquals(other arrow.ExtensionType) bool {
	o, ok := other.(*centsType)
	return ok && o.currency == c.currency
}

type centsArray struct {
	array.ExtensionArrayBase
}

func (a *centsArray) ValueStr(i int) string {
	if a.IsNull(i) {
		return array.NullValueStr
	}
	v := a.Storage().(*array.Int64).Value(i)
	return strconv.FormatInt(v/100, 10) + "." + fmt.Sprintf("%02d", v%100)
}

type ExtensionArrayTestSuite struct {
	suite.Suite
	reg *arrow.ExtensionRegistry
}

func (s *ExtensionArrayTestSuite) SetupTest() {
	s.reg = arrow.NewExtensionRegistry()
	s.Require().NoError(s.reg.Register(newCentsType("EUR")))
}

func (s *ExtensionArrayTestSuite) TestWithStorage() {
	storage := array.NewInt64([]int64{150, 0, 99}, []bool{true, false, true})
	arr, err := array.NewExtensionArrayWithStorage(newCentsType("EUR"), storage)
	s.Require().NoError(err)

	cents, ok := arr.(*centsArray)
	s.Require().True(ok)
	s.Equal("1.50", cents.ValueStr(0))
	s.True(cents.IsNull(1))
	s.Equal(1, cents.NullN())
	s.Equal(arrow.EXTENSION, arr.DataType().ID())
	s.Same(storage.Data().Buffers()[1], arr.Data().Buffers()[1])
	s.Equal(int64(99), array.GetValue(arr, 2))

	_, err = array.NewExtensionArrayWithStorage(newCentsType("EUR"), array.NewInt32([]int32{1}, nil))
	s.ErrorIs(err, arrow.ErrType)
}

func (s *ExtensionArrayTestSuite) TestByName() {
	arr, err := array.NewExtensionArrayByName(s.reg, "cents", array.NewInt64([]int64{1}, nil))
	s.Require().NoError(err)
	s.Equal("cents", arr.ExtensionType().ExtensionName())

	_, err = array.NewExtensionArrayByName(s.reg, "dollars", array.NewInt64([]int64{1}, nil))
	s.ErrorIs(err, arrow.ErrUnknownExtension)
}

func (s *ExtensionArrayTestSuite) TestSliceEqualConcat() {
	mk := func(currency string, vals ...int64) arrow.Array {
		arr, err := array.NewExtensionArrayWithStorage(newCentsType(currency), array.NewInt64(vals, nil))
		s.Require().NoError(err)
		return arr
	}
	a := mk("EUR", 1, 2, 3)
	s.True(array.Equal(array.NewSlice(a, 1, 3), mk("EUR", 2, 3)))
	s.False(array.Equal(a, mk("USD", 1, 2, 3)))

	slice := array.NewSlice(a, 1, 3)
	_, ok := slice.(*centsArray)
	s.True(ok)

	joined, err := array.Concatenate([]arrow.Array{slice, mk("EUR", 4)})
	s.Require().NoError(err)
	s.True(array.Equal(mk("EUR", 2, 3, 4), joined))
	s.NoError(array.ValidateData(joined.Data()))

	_, err = array.Concatenate([]arrow.Array{a, mk("USD", 1)})
	s.ErrorIs(err, arrow.ErrType)
}

func TestExtensionArrays(t *testing.T) {
	suite.Run(t, new(ExtensionArrayTestSuite))
}

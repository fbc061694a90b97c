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
	"testing"

	"github.com/arrowfixtures/feather/arrow"
	"github.com/arrowfixtures/feather/arrow/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcatenatePrimitives(t *testing.T) {
	tests := []struct {
		name string
		in   []arrow.Array
		want arrow.Array
	}{
		{
			name: "int32",
			in:   []arrow.Array{array.NewInt32([]int32{1, 2}, []bool{true, false}), array.NewInt32([]int32{3}, nil)},
			want: array.NewInt32([]int32{1, 0, 3}, []bool{true, false, true}),
		},
		{
			name: "bool sliced",
			in: []arrow.Array{
				array.NewSlice(array.NewBoolean([]bool{false, true, true, false, true, false, true, true, false}, nil), 3, 9),
				array.NewBoolean([]bool{true}, []bool{false}),
			},
			want: array.NewBoolean([]bool{false, true, false, true, true, false, false}, []bool{true, true, true, true, true, true, false}),
		},
		{
			name: "string sliced",
			in:   []arrow.Array{array.NewSlice(array.NewString([]string{"aa", "b", "ccc"}, nil), 1, 3), array.NewString([]string{"", "d"}, []bool{false, true})},
			want: array.NewString([]string{"b", "ccc", "", "d"}, []bool{true, true, false, true}),
		},
		{
			name: "large binary",
			in:   []arrow.Array{array.NewLargeBinary([][]byte{{1}}, nil), array.NewLargeBinary(nil, nil), array.NewLargeBinary([][]byte{{2, 3}}, nil)},
			want: array.NewLargeBinary([][]byte{{1}, {2, 3}}, nil),
		},
		{
			name: "null",
			in:   []arrow.Array{array.NewNull(2), array.NewNull(3)},
			want: array.NewNull(5),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := array.Concatenate(tt.in)
			require.NoError(t, err)
			require.NoError(t, array.ValidateData(got.Data()))
			assert.Truef(t, array.Equal(tt.want, got), "got=%v, want=%v", got, tt.want)
			assert.Equal(t, tt.want.NullN(), got.NullN())
		})
	}
}

func TestConcatenateNested(t *testing.T) {
	values := array.NewInt32([]int32{1, 2, 3, 4, 5, 6}, nil)
	l1, err := array.NewListFromArrays([]int32{0, 2, 3, 6}, values, []bool{true, false, true})
	require.NoError(t, err)
	l2, err := array.NewListFromArrays([]int32{0, 1}, array.NewInt32([]int32{7}, nil), nil)
	require.NoError(t, err)

	got, err := array.Concatenate([]arrow.Array{array.NewSlice(l1, 1, 3), l2})
	require.NoError(t, err)
	require.NoError(t, array.ValidateData(got.Data()))
	list := got.(*array.List)
	assert.Equal(t, "[(null) [4 5 6] [7]]", list.String())
	assert.Equal(t, 5, list.ListValues().Len())

	fsl, err := array.NewFixedSizeListFromArrays(2, values, nil)
	require.NoError(t, err)
	got, err = array.Concatenate([]arrow.Array{array.NewSlice(fsl, 2, 3), array.NewSlice(fsl, 0, 1)})
	require.NoError(t, err)
	assert.Equal(t, "[[5 6] [1 2]]", got.String())

	st, err := array.NewStructFromArrays([]arrow.Field{{Name: "v", Type: arrow.PrimitiveTypes.Int32, Nullable: true}}, []arrow.Array{values}, nil)
	require.NoError(t, err)
	got, err = array.Concatenate([]arrow.Array{array.NewSlice(st, 4, 6), array.NewSlice(st, 0, 1)})
	require.NoError(t, err)
	require.NoError(t, array.ValidateData(got.Data()))
	assert.Equal(t, []int32{5, 6, 1}, got.(*array.Struct).Field(0).(*array.Int32).Values())
}

func TestConcatenateUnions(t *testing.T) {
	dense, err := array.NewDenseUnionFromArrays(
		[]arrow.UnionTypeCode{0, 1, 0, 1},
		[]int32{0, 0, 1, 1},
		[]arrow.Array{array.NewInt32([]int32{10, 20}, nil), array.NewBoolean([]bool{true, false}, nil)},
		unionFields(), nil)
	require.NoError(t, err)

	got, err := array.Concatenate([]arrow.Array{array.NewSlice(dense, 2, 4), array.NewSlice(dense, 0, 1)})
	require.NoError(t, err)
	require.NoError(t, array.ValidateData(got.Data()))
	du := got.(*array.DenseUnion)
	assert.Equal(t, []any{int32(20), false, int32(10)}, []any{array.GetValue(du, 0), array.GetValue(du, 1), array.GetValue(du, 2)})
	assert.Equal(t, 2, du.Field(0).Len(), "only referenced child values are kept")
	assert.Equal(t, 1, du.Field(1).Len())

	sparse, err := array.NewSparseUnionFromArrays(
		[]arrow.UnionTypeCode{1, 0},
		[]arrow.Array{array.NewInt32([]int32{0, 3}, nil), array.NewBoolean([]bool{true, false}, nil)},
		unionFields(), nil)
	require.NoError(t, err)
	got, err = array.Concatenate([]arrow.Array{sparse, array.NewSlice(sparse, 1, 2)})
	require.NoError(t, err)
	require.NoError(t, array.ValidateData(got.Data()))
	assert.Equal(t, []any{true, int32(3), int32(3)}, []any{array.GetValue(got, 0), array.GetValue(got, 1), array.GetValue(got, 2)})
}

func TestConcatenateErrors(t *testing.T) {
	_, err := array.Concatenate(nil)
	assert.ErrorIs(t, err, arrow.ErrInvalid)

	_, err = array.Concatenate([]arrow.Array{array.NewInt32(nil, nil), array.NewInt64(nil, nil)})
	assert.ErrorIs(t, err, arrow.ErrType)
}

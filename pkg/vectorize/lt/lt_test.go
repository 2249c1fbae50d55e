// Copyright 2022 The Impala-1 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lt

import (
	"testing"

	"github.com/MyqueWooMiddo/Impala-1/pkg/container/nulls"
	"github.com/MyqueWooMiddo/Impala-1/pkg/container/types"
	"github.com/stretchr/testify/require"
)

func TestDecimal8LtSameScale(t *testing.T) {
	xs := []types.Decimal8{-1, 2, 2}
	ys := []types.Decimal8{1, 2, 1}
	rs := make([]bool, 3)

	Decimal8Lt(xs, ys, 2, 2, nil, rs)
	require.Equal(t, []bool{true, false, false}, rs)
}

func TestDecimal8LtCrossScale(t *testing.T) {
	// 1.00 < 1.1 and 1.00 !< 1.0
	xs := []types.Decimal8{100, 100}
	ys := []types.Decimal8{11, 10}
	rs := make([]bool, 2)

	Decimal8Lt(xs, ys, 2, 1, nil, rs)
	require.Equal(t, []bool{true, false}, rs)
}

func TestDecimal16Lt(t *testing.T) {
	x := types.Pow10Decimal16(30)
	rs := make([]bool, 1)

	Decimal16Lt([]types.Decimal16{x.Neg()}, []types.Decimal16{x}, 0, 0, nil, rs)
	require.True(t, rs[0])

	Decimal16LtScalar(x, []types.Decimal16{x}, 0, 1, nil, rs)
	require.False(t, rs[0]) // 10^30 at scale 0 vs 10^29 at wider scale

	rs[0] = false
	Decimal16LtScalar(x, []types.Decimal16{types.Pow10Decimal16(32)}, 0, 1, nil, rs)
	require.True(t, rs[0])
}

func TestNumericLtNulls(t *testing.T) {
	rs := make([]bool, 2)
	NumericLt([]types.Decimal4{1, 1}, []types.Decimal4{2, 2}, nulls.Build(0), rs)
	require.False(t, rs[0])
	require.True(t, rs[1])
}

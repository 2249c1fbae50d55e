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

package add

import (
	"testing"

	"github.com/MyqueWooMiddo/Impala-1/pkg/common/moerr"
	"github.com/MyqueWooMiddo/Impala-1/pkg/container/nulls"
	"github.com/MyqueWooMiddo/Impala-1/pkg/container/types"
	"github.com/stretchr/testify/require"
)

func TestDecimal8Add(t *testing.T) {
	xs := []types.Decimal8{100, 200, -300}
	ys := []types.Decimal8{25, 25, 25} // scale 1 vs scale 2 below
	rs := make([]types.Decimal16, 3)

	_, err := Decimal8Add(xs, ys, 2, 1, 18, 2, nil, rs)
	require.NoError(t, err)
	require.Equal(t, "3.50", rs[0].String(2))
	require.Equal(t, "4.50", rs[1].String(2))
	require.Equal(t, "-0.50", rs[2].String(2))
}

func TestDecimal8AddNulls(t *testing.T) {
	xs := []types.Decimal8{1, 2, 3}
	ys := []types.Decimal8{1, 1, 1}
	rs := make([]types.Decimal16, 3)
	nsp := nulls.Build(1)

	_, err := Decimal8Add(xs, ys, 0, 0, 18, 0, nsp, rs)
	require.NoError(t, err)
	require.Equal(t, "2", rs[0].String(0))
	require.True(t, rs[1].IsZero()) // null row untouched
	require.Equal(t, "4", rs[2].String(0))
}

func TestDecimal8AddOverflow(t *testing.T) {
	xs := []types.Decimal8{99}
	ys := []types.Decimal8{1}
	rs := make([]types.Decimal16, 1)

	_, err := Decimal8Add(xs, ys, 0, 0, 2, 0, nil, rs)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrOutOfRange))

	// A null row cannot overflow the column.
	_, err = Decimal8Add(xs, ys, 0, 0, 2, 0, nulls.Build(0), rs)
	require.NoError(t, err)
}

func TestDecimal4AddScalar(t *testing.T) {
	ys := []types.Decimal4{10, -10}
	rs := make([]types.Decimal8, 2)
	_, err := Decimal4AddScalar(5, ys, 1, 1, 9, 1, nil, rs)
	require.NoError(t, err)
	require.Equal(t, types.Decimal8(15), rs[0])
	require.Equal(t, types.Decimal8(-5), rs[1])
}

func TestDecimal16Add(t *testing.T) {
	big := types.MaxUnscaledDecimal16(38)
	xs := []types.Decimal16{big}
	ys := []types.Decimal16{big}
	rs := make([]types.Decimal16, 1)
	_, err := Decimal16Add(xs, ys, 0, 0, 38, 0, nil, rs)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrOutOfRange))

	_, err = Decimal16AddScalar(big.Neg(), ys, 0, 0, 38, 0, nil, rs)
	require.NoError(t, err)
	require.True(t, rs[0].IsZero())
}

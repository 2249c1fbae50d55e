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

package mod

import (
	"testing"

	"github.com/MyqueWooMiddo/Impala-1/pkg/common/moerr"
	"github.com/MyqueWooMiddo/Impala-1/pkg/container/types"
	"github.com/stretchr/testify/require"
)

func TestDecimal8Mod(t *testing.T) {
	xs := []types.Decimal8{7, -7, 7}
	ys := []types.Decimal8{3, 3, -3}
	rs := make([]types.Decimal16, 3)

	_, err := Decimal8Mod(xs, ys, 0, 0, 38, 0, nil, rs)
	require.NoError(t, err)
	require.Equal(t, "1", rs[0].String(0))
	require.Equal(t, "-1", rs[1].String(0))
	require.Equal(t, "1", rs[2].String(0))
}

func TestDecimal8ModMixedScale(t *testing.T) {
	// 5.0 mod 0.75 = 0.50
	xs := []types.Decimal8{50}
	ys := []types.Decimal8{75}
	rs := make([]types.Decimal16, 1)

	_, err := Decimal8Mod(xs, ys, 1, 2, 38, 2, nil, rs)
	require.NoError(t, err)
	require.Equal(t, "0.50", rs[0].String(2))
}

func TestDecimal8ModByZero(t *testing.T) {
	rs := make([]types.Decimal16, 1)
	_, err := Decimal8Mod([]types.Decimal8{7}, []types.Decimal8{0}, 0, 0, 38, 0, nil, rs)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrDivByZero))

	rs4 := make([]types.Decimal8, 1)
	_, err = Decimal4ModScalar(7, []types.Decimal4{0}, 0, 0, 18, 0, nil, rs4)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrDivByZero))
}

func TestDecimal16ModScalar(t *testing.T) {
	ys := []types.Decimal16{types.Pow10Decimal16(3)}
	rs := make([]types.Decimal16, 1)
	x := types.Pow10Decimal16(20) // 10^20 mod 10^3 = 0

	_, err := Decimal16ModScalar(x, ys, 0, 0, 38, 0, nil, rs)
	require.NoError(t, err)
	require.True(t, rs[0].IsZero())
}

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

package mul

import (
	"testing"

	"github.com/MyqueWooMiddo/Impala-1/pkg/common/moerr"
	"github.com/MyqueWooMiddo/Impala-1/pkg/container/nulls"
	"github.com/MyqueWooMiddo/Impala-1/pkg/container/types"
	"github.com/stretchr/testify/require"
)

func TestDecimal8Mul(t *testing.T) {
	xs := []types.Decimal8{12345, 15}
	ys := []types.Decimal8{100, 15}
	rs := make([]types.Decimal16, 2)

	_, err := Decimal8Mul(xs, ys, 2, 2, 38, 4, nil, rs)
	require.NoError(t, err)
	require.Equal(t, "123.4500", rs[0].String(4))
	require.Equal(t, "0.0225", rs[1].String(4))
}

func TestDecimal8MulRounds(t *testing.T) {
	// 1.5 * 1.5 = 2.25, result scale 1 rounds half away from zero.
	xs := []types.Decimal8{15}
	ys := []types.Decimal8{15}
	rs := make([]types.Decimal16, 1)

	_, err := Decimal8Mul(xs, ys, 1, 1, 38, 1, nil, rs)
	require.NoError(t, err)
	require.Equal(t, "2.3", rs[0].String(1))
}

func TestDecimal16MulOverflow(t *testing.T) {
	big := types.MaxUnscaledDecimal16(38)
	rs := make([]types.Decimal16, 1)
	_, err := Decimal16Mul([]types.Decimal16{big}, []types.Decimal16{big}, 0, 0, 38, 0, nil, rs)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrOutOfRange))

	// Nulls mask the offending row.
	_, err = Decimal16MulScalar(big, []types.Decimal16{big}, 0, 0, 38, 0, nulls.Build(0), rs)
	require.NoError(t, err)
}

func TestDecimal4MulScalar(t *testing.T) {
	ys := []types.Decimal4{25, -25}
	rs := make([]types.Decimal8, 2)
	_, err := Decimal4MulScalar(4, ys, 0, 2, 18, 2, nil, rs)
	require.NoError(t, err)
	require.Equal(t, "1.00", rs[0].String(2))
	require.Equal(t, "-1.00", rs[1].String(2))
}

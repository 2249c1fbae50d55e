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

package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMagAddSub(t *testing.T) {
	a := mag128{Lo: math.MaxUint64, Hi: 0}
	sum, carry := magAdd(a, mag128{Lo: 1})
	require.Equal(t, uint64(0), carry)
	require.Equal(t, mag128{Lo: 0, Hi: 1}, sum)

	// Carry out of the high limb.
	full := mag128{Lo: math.MaxUint64, Hi: math.MaxUint64}
	sum, carry = magAdd(full, mag128{Lo: 1})
	require.Equal(t, uint64(1), carry)
	require.True(t, sum.isZero())

	// Subtraction undoes addition when no carry was lost.
	b := mag128{Lo: 123, Hi: 456}
	sum, carry = magAdd(a, b)
	require.Equal(t, uint64(0), carry)
	require.Equal(t, a, magSub(sum, b))
	require.Equal(t, b, magSub(sum, a))
}

func TestMagCmp(t *testing.T) {
	require.Equal(t, 0, magCmp(mag128{Lo: 5}, mag128{Lo: 5}))
	require.Equal(t, -1, magCmp(mag128{Lo: 5}, mag128{Lo: 6}))
	require.Equal(t, 1, magCmp(mag128{Hi: 1}, mag128{Lo: math.MaxUint64}))
}

func TestMagMul(t *testing.T) {
	// (2^64 - 1)^2 = 2^128 - 2^65 + 1
	a := mag128{Lo: math.MaxUint64}
	p := magMul(a, a)
	require.Equal(t, [4]uint64{1, math.MaxUint64 - 1, 0, 0}, p)

	// (2^128 - 1)^2 = 2^256 - 2^129 + 1
	full := mag128{Lo: math.MaxUint64, Hi: math.MaxUint64}
	p = magMul(full, full)
	require.Equal(t, [4]uint64{1, 0, math.MaxUint64 - 1, math.MaxUint64}, p)

	prod, ovf := magMulChecked(a, a)
	require.False(t, ovf)
	require.Equal(t, mag128{Lo: 1, Hi: math.MaxUint64 - 1}, prod)

	_, ovf = magMulChecked(full, mag128{Lo: 2})
	require.True(t, ovf)
}

func TestMagDivMod(t *testing.T) {
	// Small divisor path.
	q, r := magDivMod(mag128{Lo: 100}, mag128{Lo: 7})
	require.Equal(t, mag128{Lo: 14}, q)
	require.Equal(t, mag128{Lo: 2}, r)

	// (10^38 - 1) / 10^20 = 10^18 - 1 rem 10^20 - 1, divisor high limb set.
	n := maxUnscaledMag16(38)
	d := pow10Mag16[20]
	require.NotEqual(t, uint64(0), d.Hi)
	q, r = magDivMod(n, d)
	require.Equal(t, mag128{Lo: uint64(pow10Int64[18]) - 1}, q)
	require.Equal(t, maxUnscaledMag16(20), r)

	// Reconstruct: q*d + r == n.
	back, ovf := magMulChecked(q, d)
	require.False(t, ovf)
	back, carry := magAdd(back, r)
	require.Equal(t, uint64(0), carry)
	require.Equal(t, n, back)

	// Dividend smaller than divisor.
	q, r = magDivMod(mag128{Lo: 3}, pow10Mag16[25])
	require.True(t, q.isZero())
	require.Equal(t, mag128{Lo: 3}, r)
}

func TestMagDivMod64(t *testing.T) {
	q, r := magDivMod64(pow10Mag16[21], 1000)
	require.Equal(t, pow10Mag16[18], q)
	require.Equal(t, uint64(0), r)

	q, r = magDivMod64(mag128{Lo: 19, Hi: 0}, 5)
	require.Equal(t, mag128{Lo: 3}, q)
	require.Equal(t, uint64(4), r)
}

func TestRoundHalfAway(t *testing.T) {
	require.True(t, roundHalfAway(mag128{Lo: 5}, mag128{Lo: 10}))
	require.True(t, roundHalfAway(mag128{Lo: 6}, mag128{Lo: 10}))
	require.False(t, roundHalfAway(mag128{Lo: 4}, mag128{Lo: 10}))

	// Doubling the remainder may carry out of 128 bits; that always rounds.
	big := mag128{Lo: 0, Hi: 1 << 63}
	require.True(t, roundHalfAway(big, mag128{Lo: 1, Hi: 1 << 63}))
}

func TestCmp256(t *testing.T) {
	require.Equal(t, 0, cmp256([4]uint64{1, 2, 3, 4}, [4]uint64{1, 2, 3, 4}))
	require.Equal(t, -1, cmp256([4]uint64{9, 2, 3, 4}, [4]uint64{1, 2, 3, 5}))
	require.Equal(t, 1, cmp256([4]uint64{0, 0, 1, 0}, [4]uint64{math.MaxUint64, math.MaxUint64, 0, 0}))
}

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
	"math/bits"
)

// mag128 is an unsigned 128-bit magnitude. All decimal arithmetic is done on
// sign/magnitude pairs; the two's-complement form only appears in storage.
type mag128 struct {
	Lo uint64
	Hi uint64
}

func (u mag128) isZero() bool {
	return u.Lo == 0 && u.Hi == 0
}

func magCmp(a, b mag128) int {
	switch {
	case a.Hi != b.Hi:
		if a.Hi < b.Hi {
			return -1
		}
		return 1
	case a.Lo != b.Lo:
		if a.Lo < b.Lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

func magAdd(a, b mag128) (mag128, uint64) {
	lo, carry := bits.Add64(a.Lo, b.Lo, 0)
	hi, carry := bits.Add64(a.Hi, b.Hi, carry)
	return mag128{Lo: lo, Hi: hi}, carry
}

// magSub computes a - b; the caller guarantees a >= b.
func magSub(a, b mag128) mag128 {
	lo, borrow := bits.Sub64(a.Lo, b.Lo, 0)
	hi, _ := bits.Sub64(a.Hi, b.Hi, borrow)
	return mag128{Lo: lo, Hi: hi}
}

// magMul returns the full 256-bit product as four little-endian limbs.
func magMul(a, b mag128) [4]uint64 {
	h0, l0 := bits.Mul64(a.Lo, b.Lo)
	h1, l1 := bits.Mul64(a.Lo, b.Hi)
	h2, l2 := bits.Mul64(a.Hi, b.Lo)
	h3, l3 := bits.Mul64(a.Hi, b.Hi)

	// mid = a.Lo*b.Hi + a.Hi*b.Lo, at limb weight 1.
	midLo, c := bits.Add64(l1, l2, 0)
	midHi, midCarry := bits.Add64(h1, h2, c)

	var p [4]uint64
	p[0] = l0
	p[1], c = bits.Add64(h0, midLo, 0)
	p[2], c = bits.Add64(midHi, l3, c)
	p[3] = h3 + midCarry + c
	return p
}

// magMulChecked multiplies two magnitudes and reports whether the product
// exceeds 128 bits.
func magMulChecked(a, b mag128) (mag128, bool) {
	p := magMul(a, b)
	return mag128{Lo: p[0], Hi: p[1]}, p[2] != 0 || p[3] != 0
}

// mul128by64 returns the low 128 bits of a 128x64 product. Used only where
// the product is known to fit.
func mul128by64(a mag128, m uint64) mag128 {
	hi, lo := bits.Mul64(a.Lo, m)
	return mag128{Lo: lo, Hi: a.Hi*m + hi}
}

// magDivMod64 divides a 128-bit magnitude by a 64-bit divisor.
func magDivMod64(u mag128, v uint64) (q mag128, r uint64) {
	if u.Hi < v {
		lo, rem := bits.Div64(u.Hi, u.Lo, v)
		return mag128{Lo: lo}, rem
	}
	qHi := u.Hi / v
	rem := u.Hi % v
	qLo, r := bits.Div64(rem, u.Lo, v)
	return mag128{Lo: qLo, Hi: qHi}, r
}

// magDivMod divides two 128-bit magnitudes. The divisor must be non-zero.
// The 128-by-128 case reduces to a single 64-bit quotient estimate after
// normalization (Knuth's algorithm D with one digit).
func magDivMod(u, v mag128) (q, r mag128) {
	if v.Hi == 0 {
		q, rem := magDivMod64(u, v.Lo)
		return q, mag128{Lo: rem}
	}
	n := uint(bits.LeadingZeros64(v.Hi))
	v1Hi := v.Hi<<n | v.Lo>>(64-n)
	u1Hi := u.Hi >> 1
	u1Lo := u.Hi<<63 | u.Lo>>1
	tq, _ := bits.Div64(u1Hi, u1Lo, v1Hi)
	tq >>= 63 - n
	if tq != 0 {
		tq--
	}
	r = magSub(u, mul128by64(v, tq))
	if magCmp(r, v) >= 0 {
		tq++
		r = magSub(r, v)
	}
	return mag128{Lo: tq}, r
}

// cmp256 compares two 256-bit magnitudes in little-endian limb order.
func cmp256(a, b [4]uint64) int {
	for i := 3; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// roundHalfAway reports whether truncated division with remainder r and
// divisor v should be rounded away from zero, i.e. whether 2*r >= v.
func roundHalfAway(r, v mag128) bool {
	twice, carry := magAdd(r, r)
	if carry != 0 {
		return true
	}
	return magCmp(twice, v) >= 0
}

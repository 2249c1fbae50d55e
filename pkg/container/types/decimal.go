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
	"math/bits"
	"strconv"
	"strings"

	"github.com/MyqueWooMiddo/Impala-1/pkg/common/moerr"
)

// Fixed-point decimals over three storage widths. A decimal stores only its
// unscaled value; precision and scale live in the column type and are passed
// into every operation: decimal = unscaled / 10^scale.
//
// Overflow handling: any operation that can overflow takes an output flag and
// ORs into it (*overflow = *overflow || cond), never assigns false. A caller
// can therefore chain several operations and check the flag once at the end.
// On overflow the returned value is the zero decimal, except for the
//ConstructFrom* functions which clamp to the maximum representable magnitude
// with the correct sign. Division and modulo report a zero divisor through a
// separate isNaN flag; the two flags are independent and must be checked
// independently.
//
// Arithmetic operators return the next wider decimal so intermediate results
// cannot silently truncate; the planner-supplied result precision and scale
// decide what actually fits. Decimal16 operators compute in 128 bits and flag
// intermediates that exceed the width.

type Decimal4 int32

type Decimal8 int64

// Decimal16 is a two's-complement signed 128-bit integer stored as two
// little-endian limbs.
type Decimal16 struct {
	B0_63   uint64
	B64_127 uint64
}

const (
	MaxDecimal4Digits  = 9
	MaxDecimal8Digits  = 18
	MaxDecimal16Digits = 38
)

var pow10Int64 = [MaxDecimal8Digits + 1]int64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000,
}

var pow10Mag16 [MaxDecimal16Digits + 1]mag128

func init() {
	pow10Mag16[0] = mag128{Lo: 1}
	for i := 1; i <= MaxDecimal16Digits; i++ {
		pow10Mag16[i] = mul128by64(pow10Mag16[i-1], 10)
	}
}

// Pow10Decimal4 returns 10^n. n must lie in [0, MaxDecimal4Digits]; callers
// always derive it from validated precision/scale metadata.
func Pow10Decimal4(n int32) Decimal4 {
	return Decimal4(pow10Int64[n])
}

func Pow10Decimal8(n int32) Decimal8 {
	return Decimal8(pow10Int64[n])
}

func Pow10Decimal16(n int32) Decimal16 {
	m := pow10Mag16[n]
	return Decimal16{B0_63: m.Lo, B64_127: m.Hi}
}

// MaxUnscaledDecimal4 returns 10^precision - 1, the overflow boundary for a
// decimal with the given precision.
func MaxUnscaledDecimal4(precision int32) Decimal4 {
	return Decimal4(pow10Int64[precision] - 1)
}

func MaxUnscaledDecimal8(precision int32) Decimal8 {
	return Decimal8(pow10Int64[precision] - 1)
}

func MaxUnscaledDecimal16(precision int32) Decimal16 {
	return decimal16FromMag(maxUnscaledMag16(precision), false)
}

func maxUnscaledMag16(precision int32) mag128 {
	return magSub(pow10Mag16[precision], mag128{Lo: 1})
}

func decimal16FromInt64(v int64) Decimal16 {
	return Decimal16{B0_63: uint64(v), B64_127: uint64(v >> 63)}
}

func decimal16FromMag(m mag128, neg bool) Decimal16 {
	d := Decimal16{B0_63: m.Lo, B64_127: m.Hi}
	if neg {
		d = d.Neg()
	}
	return d
}

// magSign decomposes the value into magnitude and sign. Zero is non-negative.
func (x Decimal16) magSign() (mag128, bool) {
	if x.B64_127>>63 == 0 {
		return mag128{Lo: x.B0_63, Hi: x.B64_127}, false
	}
	n := x.Neg()
	return mag128{Lo: n.B0_63, Hi: n.B64_127}, true
}

// toInt64 returns the value assuming it fits in 64 bits; callers guarantee
// this through a prior precision check.
func (x Decimal16) toInt64() int64 {
	return int64(x.B0_63)
}

func (x Decimal16) IsZero() bool {
	return x.B0_63 == 0 && x.B64_127 == 0
}

func (x Decimal4) IsNegative() bool { return x < 0 }
func (x Decimal8) IsNegative() bool { return x < 0 }
func (x Decimal16) IsNegative() bool {
	return x.B64_127>>63 != 0
}

func (x Decimal4) Neg() Decimal4 { return -x }
func (x Decimal8) Neg() Decimal8 { return -x }

// Neg returns -x. Negating the minimum representable value is unsupported;
// planner-chosen precisions always leave headroom, so it cannot arise from
// in-range decimals.
func (x Decimal16) Neg() Decimal16 {
	lo, borrow := bits.Sub64(0, x.B0_63, 0)
	hi, _ := bits.Sub64(0, x.B64_127, borrow)
	return Decimal16{B0_63: lo, B64_127: hi}
}

func (x Decimal4) Abs() Decimal4 {
	if x < 0 {
		return -x
	}
	return x
}

func (x Decimal8) Abs() Decimal8 {
	if x < 0 {
		return -x
	}
	return x
}

func (x Decimal16) Abs() Decimal16 {
	if x.IsNegative() {
		return x.Neg()
	}
	return x
}

// CompareDecimal4 compares two decimals of equal scale. This is the fast path
// for sort and group-by keys sharing one physical scale; the equal-scale
// precondition is not checked.
func CompareDecimal4(x, y Decimal4) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func CompareDecimal8(x, y Decimal8) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func CompareDecimal16(x, y Decimal16) int {
	xh, yh := int64(x.B64_127), int64(y.B64_127)
	switch {
	case xh < yh:
		return -1
	case xh > yh:
		return 1
	case x.B0_63 < y.B0_63:
		return -1
	case x.B0_63 > y.B0_63:
		return 1
	default:
		return 0
	}
}

// scaleUpMag multiplies by 10^delta, reporting overflow past 128 bits.
func scaleUpMag(m mag128, delta int32) (mag128, bool) {
	if delta == 0 || m.isZero() {
		return m, false
	}
	return magMulChecked(m, pow10Mag16[delta])
}

// scaleDownMag divides by 10^delta, rounding half away from zero when round
// is set and truncating toward zero otherwise.
func scaleDownMag(m mag128, delta int32, round bool) mag128 {
	d := pow10Mag16[delta]
	q, r := magDivMod(m, d)
	if round && roundHalfAway(r, d) {
		q, _ = magAdd(q, mag128{Lo: 1})
	}
	return q
}

// rescaleMag moves a magnitude across a signed scale delta.
func rescaleMag(m mag128, delta int32, round bool) (mag128, bool) {
	if delta > 0 {
		return scaleUpMag(m, delta)
	}
	if delta < 0 {
		return scaleDownMag(m, -delta, round), false
	}
	return m, false
}

// adjustToSameScale scales whichever magnitude has the smaller scale up to
// max(xScale, yScale). If the scaled operand exceeds the result precision the
// inputs are returned unmodified and overflow is reported; callers must check
// the flag before using the outputs.
func adjustToSameScale(xm mag128, xScale int32, ym mag128, yScale int32,
	resultPrecision int32) (mag128, mag128, bool) {
	delta := xScale - yScale
	if delta == 0 {
		return xm, ym, false
	}
	bound := maxUnscaledMag16(resultPrecision)
	if delta > 0 {
		scaled, ovf := scaleUpMag(ym, delta)
		if ovf || magCmp(scaled, bound) > 0 {
			return xm, ym, true
		}
		return xm, scaled, false
	}
	scaled, ovf := scaleUpMag(xm, -delta)
	if ovf || magCmp(scaled, bound) > 0 {
		return xm, ym, true
	}
	return scaled, ym, false
}

func add16(x Decimal16, xScale int32, y Decimal16, yScale int32,
	resultPrecision, resultScale int32, round bool, overflow *bool) Decimal16 {
	maxScale := xScale
	if yScale > maxScale {
		maxScale = yScale
	}
	xm, xn := x.magSign()
	ym, yn := y.magSign()
	xm, ym, ovf := adjustToSameScale(xm, xScale, ym, yScale, resultPrecision)
	if ovf {
		*overflow = true
		return Decimal16{}
	}

	var sum mag128
	var neg bool
	if xn == yn {
		var carry uint64
		sum, carry = magAdd(xm, ym)
		neg = xn
		if carry != 0 {
			*overflow = true
			return Decimal16{}
		}
	} else if magCmp(xm, ym) >= 0 {
		sum, neg = magSub(xm, ym), xn
	} else {
		sum, neg = magSub(ym, xm), yn
	}

	if resultScale != maxScale {
		sum, ovf = rescaleMag(sum, resultScale-maxScale, round)
		if ovf {
			*overflow = true
			return Decimal16{}
		}
	}
	if magCmp(sum, maxUnscaledMag16(resultPrecision)) > 0 {
		*overflow = true
		return Decimal16{}
	}
	if sum.isZero() {
		neg = false
	}
	return decimal16FromMag(sum, neg)
}

func mul16(x Decimal16, xScale int32, y Decimal16, yScale int32,
	resultPrecision, resultScale int32, round bool, overflow *bool) Decimal16 {
	xm, xn := x.magSign()
	ym, yn := y.magSign()

	// No pre-alignment: the raw product carries scale xScale+yScale.
	prod, ovf := magMulChecked(xm, ym)
	if ovf {
		*overflow = true
		return Decimal16{}
	}
	prod, ovf = rescaleMag(prod, resultScale-(xScale+yScale), round)
	if ovf || magCmp(prod, maxUnscaledMag16(resultPrecision)) > 0 {
		*overflow = true
		return Decimal16{}
	}
	neg := xn != yn
	if prod.isZero() {
		neg = false
	}
	return decimal16FromMag(prod, neg)
}

func div16(x Decimal16, xScale int32, y Decimal16, yScale int32,
	resultPrecision, resultScale int32, round bool, isNaN, overflow *bool) Decimal16 {
	ym, yn := y.magSign()
	if ym.isZero() {
		*isNaN = true
		return Decimal16{}
	}
	xm, xn := x.magSign()

	// Scale the numerator so the quotient lands directly on resultScale:
	// (x/10^xScale) / (y/10^yScale) = x*10^(resultScale+yScale-xScale) / y
	// at scale resultScale. The planner guarantees the exponent is >= 0.
	num, ovf := scaleUpMag(xm, resultScale+yScale-xScale)
	if ovf {
		*overflow = true
		return Decimal16{}
	}
	q, r := magDivMod(num, ym)
	if round && roundHalfAway(r, ym) {
		q, _ = magAdd(q, mag128{Lo: 1})
	}
	if magCmp(q, maxUnscaledMag16(resultPrecision)) > 0 {
		*overflow = true
		return Decimal16{}
	}
	neg := xn != yn
	if q.isZero() {
		neg = false
	}
	return decimal16FromMag(q, neg)
}

func mod16(x Decimal16, xScale int32, y Decimal16, yScale int32,
	resultPrecision int32, isNaN, overflow *bool) Decimal16 {
	ym, _ := y.magSign()
	if ym.isZero() {
		*isNaN = true
		return Decimal16{}
	}
	xm, xn := x.magSign()
	xm, ym, ovf := adjustToSameScale(xm, xScale, ym, yScale, resultPrecision)
	if ovf {
		*overflow = true
		return Decimal16{}
	}
	// Truncated division: the remainder takes the dividend's sign.
	_, r := magDivMod(xm, ym)
	if magCmp(r, maxUnscaledMag16(resultPrecision)) > 0 {
		*overflow = true
		return Decimal16{}
	}
	neg := xn && !r.isZero()
	return decimal16FromMag(r, neg)
}

func compare16(x Decimal16, xScale int32, y Decimal16, yScale int32) int {
	if xScale == yScale {
		return CompareDecimal16(x, y)
	}
	xm, xn := x.magSign()
	ym, yn := y.magSign()
	if xm.isZero() && ym.isZero() {
		return 0
	}
	if xn != yn {
		if xn {
			return -1
		}
		return 1
	}
	// Align through the full 256-bit product so the widening itself can
	// never overflow.
	var xw, yw [4]uint64
	if xScale < yScale {
		xw = magMul(xm, pow10Mag16[yScale-xScale])
		yw = [4]uint64{ym.Lo, ym.Hi, 0, 0}
	} else {
		xw = [4]uint64{xm.Lo, xm.Hi, 0, 0}
		yw = magMul(ym, pow10Mag16[xScale-yScale])
	}
	c := cmp256(xw, yw)
	if xn {
		c = -c
	}
	return c
}

func scaleTo16(x Decimal16, srcScale, dstScale, dstPrecision int32, overflow *bool) Decimal16 {
	xm, xn := x.magSign()
	var ovf bool
	if delta := dstScale - srcScale; delta >= 0 {
		xm, ovf = scaleUpMag(xm, delta)
	} else {
		// Truncate; ScaleTo never rounds, unlike the operators' rescale.
		xm = scaleDownMag(xm, -delta, false)
	}
	if ovf || magCmp(xm, maxUnscaledMag16(dstPrecision)) > 0 {
		*overflow = true
		return Decimal16{}
	}
	if xm.isZero() {
		xn = false
	}
	return decimal16FromMag(xm, xn)
}

// Decimal16 operators.

func (x Decimal16) Add(xScale int32, y Decimal16, yScale int32,
	resultPrecision, resultScale int32, round bool, overflow *bool) Decimal16 {
	return add16(x, xScale, y, yScale, resultPrecision, resultScale, round, overflow)
}

func (x Decimal16) Sub(xScale int32, y Decimal16, yScale int32,
	resultPrecision, resultScale int32, round bool, overflow *bool) Decimal16 {
	return add16(x, xScale, y.Neg(), yScale, resultPrecision, resultScale, round, overflow)
}

func (x Decimal16) Mul(xScale int32, y Decimal16, yScale int32,
	resultPrecision, resultScale int32, round bool, overflow *bool) Decimal16 {
	return mul16(x, xScale, y, yScale, resultPrecision, resultScale, round, overflow)
}

func (x Decimal16) Div(xScale int32, y Decimal16, yScale int32,
	resultPrecision, resultScale int32, round bool, isNaN, overflow *bool) Decimal16 {
	return div16(x, xScale, y, yScale, resultPrecision, resultScale, round, isNaN, overflow)
}

// Mod returns the remainder at max(xScale, yScale); resultScale is taken on
// trust the same way the other operators take theirs.
func (x Decimal16) Mod(xScale int32, y Decimal16, yScale int32,
	resultPrecision, resultScale int32, round bool, isNaN, overflow *bool) Decimal16 {
	return mod16(x, xScale, y, yScale, resultPrecision, isNaN, overflow)
}

func (x Decimal16) Compare(xScale int32, y Decimal16, yScale int32) int {
	return compare16(x, xScale, y, yScale)
}

func (x Decimal16) Eq(xScale int32, y Decimal16, yScale int32) bool {
	return compare16(x, xScale, y, yScale) == 0
}

func (x Decimal16) Ne(xScale int32, y Decimal16, yScale int32) bool {
	return compare16(x, xScale, y, yScale) != 0
}

func (x Decimal16) Ge(xScale int32, y Decimal16, yScale int32) bool {
	return compare16(x, xScale, y, yScale) >= 0
}

func (x Decimal16) Gt(xScale int32, y Decimal16, yScale int32) bool {
	return compare16(x, xScale, y, yScale) > 0
}

func (x Decimal16) Le(xScale int32, y Decimal16, yScale int32) bool {
	return compare16(x, xScale, y, yScale) <= 0
}

func (x Decimal16) Lt(xScale int32, y Decimal16, yScale int32) bool {
	return compare16(x, xScale, y, yScale) < 0
}

func (x Decimal16) ScaleTo(srcScale, dstScale, dstPrecision int32, overflow *bool) Decimal16 {
	return scaleTo16(x, srcScale, dstScale, dstPrecision, overflow)
}

// Decimal8 operators widen into Decimal16; narrow back with ToDecimal8 once
// the planner says the result precision fits.

func (x Decimal8) ToDecimal16() Decimal16 {
	return decimal16FromInt64(int64(x))
}

func (x Decimal8) Add(xScale int32, y Decimal8, yScale int32,
	resultPrecision, resultScale int32, round bool, overflow *bool) Decimal16 {
	return add16(x.ToDecimal16(), xScale, y.ToDecimal16(), yScale,
		resultPrecision, resultScale, round, overflow)
}

func (x Decimal8) Sub(xScale int32, y Decimal8, yScale int32,
	resultPrecision, resultScale int32, round bool, overflow *bool) Decimal16 {
	return add16(x.ToDecimal16(), xScale, y.Neg().ToDecimal16(), yScale,
		resultPrecision, resultScale, round, overflow)
}

func (x Decimal8) Mul(xScale int32, y Decimal8, yScale int32,
	resultPrecision, resultScale int32, round bool, overflow *bool) Decimal16 {
	return mul16(x.ToDecimal16(), xScale, y.ToDecimal16(), yScale,
		resultPrecision, resultScale, round, overflow)
}

func (x Decimal8) Div(xScale int32, y Decimal8, yScale int32,
	resultPrecision, resultScale int32, round bool, isNaN, overflow *bool) Decimal16 {
	return div16(x.ToDecimal16(), xScale, y.ToDecimal16(), yScale,
		resultPrecision, resultScale, round, isNaN, overflow)
}

func (x Decimal8) Mod(xScale int32, y Decimal8, yScale int32,
	resultPrecision, resultScale int32, round bool, isNaN, overflow *bool) Decimal16 {
	return mod16(x.ToDecimal16(), xScale, y.ToDecimal16(), yScale,
		resultPrecision, isNaN, overflow)
}

func (x Decimal8) Compare(xScale int32, y Decimal8, yScale int32) int {
	return compare16(x.ToDecimal16(), xScale, y.ToDecimal16(), yScale)
}

func (x Decimal8) Eq(xScale int32, y Decimal8, yScale int32) bool {
	return x.Compare(xScale, y, yScale) == 0
}

func (x Decimal8) Ne(xScale int32, y Decimal8, yScale int32) bool {
	return x.Compare(xScale, y, yScale) != 0
}

func (x Decimal8) Ge(xScale int32, y Decimal8, yScale int32) bool {
	return x.Compare(xScale, y, yScale) >= 0
}

func (x Decimal8) Gt(xScale int32, y Decimal8, yScale int32) bool {
	return x.Compare(xScale, y, yScale) > 0
}

func (x Decimal8) Le(xScale int32, y Decimal8, yScale int32) bool {
	return x.Compare(xScale, y, yScale) <= 0
}

func (x Decimal8) Lt(xScale int32, y Decimal8, yScale int32) bool {
	return x.Compare(xScale, y, yScale) < 0
}

func (x Decimal8) ScaleTo(srcScale, dstScale, dstPrecision int32, overflow *bool) Decimal8 {
	r := scaleTo16(x.ToDecimal16(), srcScale, dstScale, dstPrecision, overflow)
	return Decimal8(r.toInt64())
}

// Decimal4 operators widen into Decimal8.

func (x Decimal4) ToDecimal8() Decimal8 {
	return Decimal8(x)
}

func (x Decimal4) ToDecimal16() Decimal16 {
	return decimal16FromInt64(int64(x))
}

func (x Decimal4) Add(xScale int32, y Decimal4, yScale int32,
	resultPrecision, resultScale int32, round bool, overflow *bool) Decimal8 {
	r := add16(x.ToDecimal16(), xScale, y.ToDecimal16(), yScale,
		resultPrecision, resultScale, round, overflow)
	return Decimal8(r.toInt64())
}

func (x Decimal4) Sub(xScale int32, y Decimal4, yScale int32,
	resultPrecision, resultScale int32, round bool, overflow *bool) Decimal8 {
	return x.Add(xScale, -y, yScale, resultPrecision, resultScale, round, overflow)
}

func (x Decimal4) Mul(xScale int32, y Decimal4, yScale int32,
	resultPrecision, resultScale int32, round bool, overflow *bool) Decimal8 {
	r := mul16(x.ToDecimal16(), xScale, y.ToDecimal16(), yScale,
		resultPrecision, resultScale, round, overflow)
	return Decimal8(r.toInt64())
}

func (x Decimal4) Div(xScale int32, y Decimal4, yScale int32,
	resultPrecision, resultScale int32, round bool, isNaN, overflow *bool) Decimal8 {
	r := div16(x.ToDecimal16(), xScale, y.ToDecimal16(), yScale,
		resultPrecision, resultScale, round, isNaN, overflow)
	return Decimal8(r.toInt64())
}

func (x Decimal4) Mod(xScale int32, y Decimal4, yScale int32,
	resultPrecision, resultScale int32, round bool, isNaN, overflow *bool) Decimal8 {
	r := mod16(x.ToDecimal16(), xScale, y.ToDecimal16(), yScale,
		resultPrecision, isNaN, overflow)
	return Decimal8(r.toInt64())
}

func (x Decimal4) Compare(xScale int32, y Decimal4, yScale int32) int {
	return compare16(x.ToDecimal16(), xScale, y.ToDecimal16(), yScale)
}

func (x Decimal4) Eq(xScale int32, y Decimal4, yScale int32) bool {
	return x.Compare(xScale, y, yScale) == 0
}

func (x Decimal4) Ne(xScale int32, y Decimal4, yScale int32) bool {
	return x.Compare(xScale, y, yScale) != 0
}

func (x Decimal4) Ge(xScale int32, y Decimal4, yScale int32) bool {
	return x.Compare(xScale, y, yScale) >= 0
}

func (x Decimal4) Gt(xScale int32, y Decimal4, yScale int32) bool {
	return x.Compare(xScale, y, yScale) > 0
}

func (x Decimal4) Le(xScale int32, y Decimal4, yScale int32) bool {
	return x.Compare(xScale, y, yScale) <= 0
}

func (x Decimal4) Lt(xScale int32, y Decimal4, yScale int32) bool {
	return x.Compare(xScale, y, yScale) < 0
}

func (x Decimal4) ScaleTo(srcScale, dstScale, dstPrecision int32, overflow *bool) Decimal4 {
	r := scaleTo16(x.ToDecimal16(), srcScale, dstScale, dstPrecision, overflow)
	return Decimal4(r.toInt64())
}

// Narrowing conversions. The precision is the target's, and exceeding it is
// overflow.

func (x Decimal16) ToDecimal8(precision int32, overflow *bool) Decimal8 {
	m, neg := x.magSign()
	if magCmp(m, maxUnscaledMag16(precision)) > 0 {
		*overflow = true
		return 0
	}
	v := int64(m.Lo)
	if neg {
		v = -v
	}
	return Decimal8(v)
}

func (x Decimal16) ToDecimal4(precision int32, overflow *bool) Decimal4 {
	return Decimal4(x.ToDecimal8(precision, overflow))
}

func (x Decimal8) ToDecimal4(precision int32, overflow *bool) Decimal4 {
	if x.Abs() > MaxUnscaledDecimal8(precision) {
		*overflow = true
		return 0
	}
	return Decimal4(x)
}

// Construction.

func Decimal16FromFloat64(precision, scale int32, d float64, round bool, overflow *bool) Decimal16 {
	v := d * math.Pow10(int(scale))
	if round {
		v = math.Round(v)
	} else {
		v = math.Trunc(v)
	}
	neg := math.Signbit(v)
	maxMag := maxUnscaledMag16(precision)
	m, ok := magFromFloat64(math.Abs(v))
	if !ok || magCmp(m, maxMag) > 0 {
		// Clamp to the maximum representable magnitude, keeping the sign.
		*overflow = true
		return decimal16FromMag(maxMag, neg)
	}
	if m.isZero() {
		neg = false
	}
	return decimal16FromMag(m, neg)
}

func Decimal8FromFloat64(precision, scale int32, d float64, round bool, overflow *bool) Decimal8 {
	r := Decimal16FromFloat64(precision, scale, d, round, overflow)
	return Decimal8(r.toInt64())
}

func Decimal4FromFloat64(precision, scale int32, d float64, round bool, overflow *bool) Decimal4 {
	r := Decimal16FromFloat64(precision, scale, d, round, overflow)
	return Decimal4(r.toInt64())
}

const twoPow64 = 1 << 64

// magFromFloat64 converts a non-negative float to a magnitude, reporting
// whether it fits in 128 bits. NaN and infinities do not fit.
func magFromFloat64(f float64) (mag128, bool) {
	if math.IsNaN(f) || f >= math.Ldexp(1, 128) {
		return mag128{}, false
	}
	hi := math.Floor(f / twoPow64)
	lo := f - hi*twoPow64
	if lo < 0 {
		hi--
		lo += twoPow64
	}
	return mag128{Lo: uint64(lo), Hi: uint64(hi)}, true
}

func Decimal16FromInt64(precision, scale int32, v int64, overflow *bool) Decimal16 {
	neg := v < 0
	m := mag128{Lo: uint64(v)}
	if neg {
		m.Lo = -m.Lo
	}
	maxMag := maxUnscaledMag16(precision)
	scaled, ovf := scaleUpMag(m, scale)
	if ovf || magCmp(scaled, maxMag) > 0 {
		*overflow = true
		return decimal16FromMag(maxMag, neg)
	}
	if scaled.isZero() {
		neg = false
	}
	return decimal16FromMag(scaled, neg)
}

func Decimal8FromInt64(precision, scale int32, v int64, overflow *bool) Decimal8 {
	r := Decimal16FromInt64(precision, scale, v, overflow)
	return Decimal8(r.toInt64())
}

func Decimal4FromInt64(precision, scale int32, v int64, overflow *bool) Decimal4 {
	r := Decimal16FromInt64(precision, scale, v, overflow)
	return Decimal4(r.toInt64())
}

// Integer conversions round half away from zero.

func (x Decimal16) ToInt64(scale int32, overflow *bool) int64 {
	m, neg := x.magSign()
	if scale > 0 {
		m = scaleDownMag(m, scale, true)
	}
	if neg {
		if m.Hi != 0 || m.Lo > 1<<63 {
			*overflow = true
			return 0
		}
		return -int64(m.Lo)
	}
	if m.Hi != 0 || m.Lo > math.MaxInt64 {
		*overflow = true
		return 0
	}
	return int64(m.Lo)
}

func (x Decimal16) ToInt32(scale int32, overflow *bool) int32 {
	v := x.ToInt64(scale, overflow)
	if v > math.MaxInt32 || v < math.MinInt32 {
		*overflow = true
		return 0
	}
	return int32(v)
}

func (x Decimal8) ToInt64(scale int32, overflow *bool) int64 {
	if scale == 0 {
		return int64(x)
	}
	p := pow10Int64[scale]
	q := int64(x) / p
	r := int64(x) % p
	if r < 0 {
		r = -r
	}
	if 2*r >= p {
		if x < 0 {
			q--
		} else {
			q++
		}
	}
	return q
}

func (x Decimal8) ToInt32(scale int32, overflow *bool) int32 {
	v := x.ToInt64(scale, overflow)
	if v > math.MaxInt32 || v < math.MinInt32 {
		*overflow = true
		return 0
	}
	return int32(v)
}

func (x Decimal4) ToInt64(scale int32, overflow *bool) int64 {
	return Decimal8(x).ToInt64(scale, overflow)
}

func (x Decimal4) ToInt32(scale int32, overflow *bool) int32 {
	return Decimal8(x).ToInt32(scale, overflow)
}

// Floating-point conversions are approximate by nature and documented as
// such; they are not guaranteed bit-exact.

func (x Decimal4) ToFloat64(scale int32) float64 {
	return float64(x) / math.Pow10(int(scale))
}

func (x Decimal8) ToFloat64(scale int32) float64 {
	return float64(x) / math.Pow10(int(scale))
}

func (x Decimal16) ToFloat64(scale int32) float64 {
	m, neg := x.magSign()
	f := float64(m.Hi)*twoPow64 + float64(m.Lo)
	if neg {
		f = -f
	}
	return f / math.Pow10(int(scale))
}

// Whole and fractional parts, both truncating toward zero. The fractional
// part keeps the value's sign.

func (x Decimal4) WholePart(scale int32) Decimal4 {
	return x / Pow10Decimal4(scale)
}

func (x Decimal4) FractionalPart(scale int32) Decimal4 {
	return x % Pow10Decimal4(scale)
}

func (x Decimal8) WholePart(scale int32) Decimal8 {
	return x / Pow10Decimal8(scale)
}

func (x Decimal8) FractionalPart(scale int32) Decimal8 {
	return x % Pow10Decimal8(scale)
}

func (x Decimal16) WholePart(scale int32) Decimal16 {
	m, neg := x.magSign()
	q, _ := magDivMod(m, pow10Mag16[scale])
	if q.isZero() {
		neg = false
	}
	return decimal16FromMag(q, neg)
}

func (x Decimal16) FractionalPart(scale int32) Decimal16 {
	m, neg := x.magSign()
	_, r := magDivMod(m, pow10Mag16[scale])
	if r.isZero() {
		neg = false
	}
	return decimal16FromMag(r, neg)
}

// Text formatting: the unscaled digits with a decimal point inserted scale
// places from the right, zero-padded so at least one digit precedes the
// point. Scale zero omits the point.

func (x Decimal4) String(scale int32) string {
	return formatInt64(int64(x), scale)
}

func (x Decimal8) String(scale int32) string {
	return formatInt64(int64(x), scale)
}

func (x Decimal16) String(scale int32) string {
	m, neg := x.magSign()
	return formatUnscaled(magDigits(m), neg, scale)
}

func (x Decimal4) Format(precision, scale int32) string { return x.String(scale) }
func (x Decimal8) Format(precision, scale int32) string { return x.String(scale) }
func (x Decimal16) Format(precision, scale int32) string {
	return x.String(scale)
}

func formatInt64(v int64, scale int32) string {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = -u
	}
	return formatUnscaled(strconv.FormatUint(u, 10), neg, scale)
}

// magDigits renders a magnitude in decimal, peeling 19-digit chunks.
func magDigits(m mag128) string {
	if m.Hi == 0 {
		return strconv.FormatUint(m.Lo, 10)
	}
	const chunk = 10_000_000_000_000_000_000 // 10^19
	q, r0 := magDivMod64(m, chunk)
	if q.Hi == 0 {
		return strconv.FormatUint(q.Lo, 10) + pad19(r0)
	}
	q, r1 := magDivMod64(q, chunk)
	return strconv.FormatUint(q.Lo, 10) + pad19(r1) + pad19(r0)
}

func pad19(v uint64) string {
	s := strconv.FormatUint(v, 10)
	return strings.Repeat("0", 19-len(s)) + s
}

func formatUnscaled(digits string, neg bool, scale int32) string {
	s := int(scale)
	if len(digits) <= s {
		digits = strings.Repeat("0", s-len(digits)+1) + digits
	}
	var b strings.Builder
	b.Grow(len(digits) + 2)
	if neg {
		b.WriteByte('-')
	}
	if s == 0 {
		b.WriteString(digits)
		return b.String()
	}
	b.WriteString(digits[:len(digits)-s])
	b.WriteByte('.')
	b.WriteString(digits[len(digits)-s:])
	return b.String()
}

// Parsing. This is the cast/text path, not the per-row hot path, so it
// reports through errors rather than flags.

func ParseDecimal16(s string, precision, scale int32) (Decimal16, error) {
	m, neg, err := parseUnscaled(s, scale)
	if err != nil {
		return Decimal16{}, err
	}
	if magCmp(m, maxUnscaledMag16(precision)) > 0 {
		return Decimal16{}, moerr.NewOutOfRangeNoCtx("decimal",
			"value '%s' does not fit in decimal(%d,%d)", s, precision, scale)
	}
	if m.isZero() {
		neg = false
	}
	return decimal16FromMag(m, neg), nil
}

func ParseDecimal8(s string, precision, scale int32) (Decimal8, error) {
	r, err := ParseDecimal16(s, precision, scale)
	if err != nil {
		return 0, err
	}
	return Decimal8(r.toInt64()), nil
}

func ParseDecimal4(s string, precision, scale int32) (Decimal4, error) {
	r, err := ParseDecimal16(s, precision, scale)
	if err != nil {
		return 0, err
	}
	return Decimal4(r.toInt64()), nil
}

// parseUnscaled scans [+-]digits[.digits], scaling the result to the target
// scale and rounding half away from zero when fractional digits are dropped.
func parseUnscaled(s string, scale int32) (mag128, bool, error) {
	t := strings.TrimSpace(s)
	var neg bool
	if len(t) > 0 && (t[0] == '+' || t[0] == '-') {
		neg = t[0] == '-'
		t = t[1:]
	}
	if len(t) == 0 {
		return mag128{}, false, moerr.NewInvalidInputNoCtxf("invalid decimal value '%s'", s)
	}

	var m mag128
	var sawDigit, sawDot bool
	var fracDigits int32
	var roundUp bool
	for i := 0; i < len(t); i++ {
		c := t[i]
		switch {
		case c == '.':
			if sawDot {
				return mag128{}, false, moerr.NewInvalidInputNoCtxf("invalid decimal value '%s'", s)
			}
			sawDot = true
		case c >= '0' && c <= '9':
			sawDigit = true
			if sawDot {
				if fracDigits == scale {
					// First dropped digit decides the rounding; the rest
					// cannot flip a half-away-from-zero decision.
					roundUp = c >= '5'
					for j := i + 1; j < len(t); j++ {
						if t[j] < '0' || t[j] > '9' {
							return mag128{}, false, moerr.NewInvalidInputNoCtxf("invalid decimal value '%s'", s)
						}
					}
					i = len(t)
					break
				}
				fracDigits++
			}
			var ovf bool
			m, ovf = magMulChecked(m, mag128{Lo: 10})
			if !ovf {
				var carry uint64
				m, carry = magAdd(m, mag128{Lo: uint64(c - '0')})
				ovf = carry != 0
			}
			if ovf {
				return mag128{}, false, moerr.NewOutOfRangeNoCtx("decimal",
					"value '%s' is too large for decimal128 storage", s)
			}
		default:
			return mag128{}, false, moerr.NewInvalidInputNoCtxf("invalid decimal value '%s'", s)
		}
	}
	if !sawDigit {
		return mag128{}, false, moerr.NewInvalidInputNoCtxf("invalid decimal value '%s'", s)
	}

	if fracDigits < scale {
		var ovf bool
		m, ovf = scaleUpMag(m, scale-fracDigits)
		if ovf {
			return mag128{}, false, moerr.NewOutOfRangeNoCtx("decimal",
				"value '%s' is too large for decimal128 storage", s)
		}
	}
	if roundUp {
		var carry uint64
		m, carry = magAdd(m, mag128{Lo: 1})
		if carry != 0 {
			return mag128{}, false, moerr.NewOutOfRangeNoCtx("decimal",
				"value '%s' is too large for decimal128 storage", s)
		}
	}
	return m, neg, nil
}

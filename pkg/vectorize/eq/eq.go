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

// Package eq holds the column-at-a-time equality kernels. Same-scale columns
// compare on the raw unscaled values; mixed-scale columns go through the
// scale-aligning comparison, which never overflows.
package eq

import (
	"github.com/MyqueWooMiddo/Impala-1/pkg/container/nulls"
	"github.com/MyqueWooMiddo/Impala-1/pkg/container/types"
	"golang.org/x/exp/constraints"
)

// NumericEq is the fast path for any ordered fixed-size column pair sharing
// one physical representation, decimal columns of equal scale included.
func NumericEq[T constraints.Ordered](xs, ys []T, nsp *nulls.Nulls, rs []bool) []bool {
	for i, x := range xs {
		if nulls.Contains(nsp, uint64(i)) {
			continue
		}
		rs[i] = x == ys[i]
	}
	return rs
}

func NumericEqScalar[T constraints.Ordered](x T, ys []T, nsp *nulls.Nulls, rs []bool) []bool {
	for i, y := range ys {
		if nulls.Contains(nsp, uint64(i)) {
			continue
		}
		rs[i] = x == y
	}
	return rs
}

func Decimal4Eq(xs, ys []types.Decimal4, xScale, yScale int32, nsp *nulls.Nulls, rs []bool) []bool {
	if xScale == yScale {
		return NumericEq(xs, ys, nsp, rs)
	}
	for i, x := range xs {
		if nulls.Contains(nsp, uint64(i)) {
			continue
		}
		rs[i] = x.Eq(xScale, ys[i], yScale)
	}
	return rs
}

func Decimal8Eq(xs, ys []types.Decimal8, xScale, yScale int32, nsp *nulls.Nulls, rs []bool) []bool {
	if xScale == yScale {
		return NumericEq(xs, ys, nsp, rs)
	}
	for i, x := range xs {
		if nulls.Contains(nsp, uint64(i)) {
			continue
		}
		rs[i] = x.Eq(xScale, ys[i], yScale)
	}
	return rs
}

func Decimal16Eq(xs, ys []types.Decimal16, xScale, yScale int32, nsp *nulls.Nulls, rs []bool) []bool {
	for i, x := range xs {
		if nulls.Contains(nsp, uint64(i)) {
			continue
		}
		if xScale == yScale {
			rs[i] = x == ys[i]
		} else {
			rs[i] = x.Eq(xScale, ys[i], yScale)
		}
	}
	return rs
}

func Decimal8EqScalar(x types.Decimal8, ys []types.Decimal8, xScale, yScale int32,
	nsp *nulls.Nulls, rs []bool) []bool {
	if xScale == yScale {
		return NumericEqScalar(x, ys, nsp, rs)
	}
	for i, y := range ys {
		if nulls.Contains(nsp, uint64(i)) {
			continue
		}
		rs[i] = x.Eq(xScale, y, yScale)
	}
	return rs
}

func Decimal16EqScalar(x types.Decimal16, ys []types.Decimal16, xScale, yScale int32,
	nsp *nulls.Nulls, rs []bool) []bool {
	for i, y := range ys {
		if nulls.Contains(nsp, uint64(i)) {
			continue
		}
		if xScale == yScale {
			rs[i] = x == y
		} else {
			rs[i] = x.Eq(xScale, y, yScale)
		}
	}
	return rs
}

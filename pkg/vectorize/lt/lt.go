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

// Package lt holds the column-at-a-time less-than kernels. The remaining
// orderings derive from these and the equality kernels by argument swapping
// and negation, so only eq and lt carry loops of their own.
package lt

import (
	"github.com/MyqueWooMiddo/Impala-1/pkg/container/nulls"
	"github.com/MyqueWooMiddo/Impala-1/pkg/container/types"
	"golang.org/x/exp/constraints"
)

func NumericLt[T constraints.Ordered](xs, ys []T, nsp *nulls.Nulls, rs []bool) []bool {
	for i, x := range xs {
		if nulls.Contains(nsp, uint64(i)) {
			continue
		}
		rs[i] = x < ys[i]
	}
	return rs
}

func NumericLtScalar[T constraints.Ordered](x T, ys []T, nsp *nulls.Nulls, rs []bool) []bool {
	for i, y := range ys {
		if nulls.Contains(nsp, uint64(i)) {
			continue
		}
		rs[i] = x < y
	}
	return rs
}

func Decimal4Lt(xs, ys []types.Decimal4, xScale, yScale int32, nsp *nulls.Nulls, rs []bool) []bool {
	if xScale == yScale {
		return NumericLt(xs, ys, nsp, rs)
	}
	for i, x := range xs {
		if nulls.Contains(nsp, uint64(i)) {
			continue
		}
		rs[i] = x.Lt(xScale, ys[i], yScale)
	}
	return rs
}

func Decimal8Lt(xs, ys []types.Decimal8, xScale, yScale int32, nsp *nulls.Nulls, rs []bool) []bool {
	if xScale == yScale {
		return NumericLt(xs, ys, nsp, rs)
	}
	for i, x := range xs {
		if nulls.Contains(nsp, uint64(i)) {
			continue
		}
		rs[i] = x.Lt(xScale, ys[i], yScale)
	}
	return rs
}

func Decimal16Lt(xs, ys []types.Decimal16, xScale, yScale int32, nsp *nulls.Nulls, rs []bool) []bool {
	for i, x := range xs {
		if nulls.Contains(nsp, uint64(i)) {
			continue
		}
		rs[i] = x.Lt(xScale, ys[i], yScale)
	}
	return rs
}

func Decimal8LtScalar(x types.Decimal8, ys []types.Decimal8, xScale, yScale int32,
	nsp *nulls.Nulls, rs []bool) []bool {
	if xScale == yScale {
		return NumericLtScalar(x, ys, nsp, rs)
	}
	for i, y := range ys {
		if nulls.Contains(nsp, uint64(i)) {
			continue
		}
		rs[i] = x.Lt(xScale, y, yScale)
	}
	return rs
}

func Decimal16LtScalar(x types.Decimal16, ys []types.Decimal16, xScale, yScale int32,
	nsp *nulls.Nulls, rs []bool) []bool {
	for i, y := range ys {
		if nulls.Contains(nsp, uint64(i)) {
			continue
		}
		rs[i] = x.Lt(xScale, y, yScale)
	}
	return rs
}

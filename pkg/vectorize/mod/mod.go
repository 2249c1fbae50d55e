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

// Package mod holds the column-at-a-time remainder kernels. The remainder
// takes the dividend's sign; a zero divisor on a non-null row fails the
// column.
package mod

import (
	"github.com/MyqueWooMiddo/Impala-1/pkg/common/moerr"
	"github.com/MyqueWooMiddo/Impala-1/pkg/container/nulls"
	"github.com/MyqueWooMiddo/Impala-1/pkg/container/types"
)

func Decimal4Mod(xs, ys []types.Decimal4, xScale, yScale int32,
	resultPrecision, resultScale int32, nsp *nulls.Nulls, rs []types.Decimal8) ([]types.Decimal8, error) {
	var isNaN, overflow bool
	for i, x := range xs {
		if nulls.Contains(nsp, uint64(i)) {
			continue
		}
		rs[i] = x.Mod(xScale, ys[i], yScale, resultPrecision, resultScale, true, &isNaN, &overflow)
		if isNaN {
			return nil, moerr.NewDivByZeroNoCtx()
		}
	}
	if overflow {
		return nil, moerr.NewOutOfRangeNoCtx("decimal", "decimal mod overflow")
	}
	return rs, nil
}

func Decimal4ModScalar(x types.Decimal4, ys []types.Decimal4, xScale, yScale int32,
	resultPrecision, resultScale int32, nsp *nulls.Nulls, rs []types.Decimal8) ([]types.Decimal8, error) {
	var isNaN, overflow bool
	for i, y := range ys {
		if nulls.Contains(nsp, uint64(i)) {
			continue
		}
		rs[i] = x.Mod(xScale, y, yScale, resultPrecision, resultScale, true, &isNaN, &overflow)
		if isNaN {
			return nil, moerr.NewDivByZeroNoCtx()
		}
	}
	if overflow {
		return nil, moerr.NewOutOfRangeNoCtx("decimal", "decimal mod overflow")
	}
	return rs, nil
}

func Decimal8Mod(xs, ys []types.Decimal8, xScale, yScale int32,
	resultPrecision, resultScale int32, nsp *nulls.Nulls, rs []types.Decimal16) ([]types.Decimal16, error) {
	var isNaN, overflow bool
	for i, x := range xs {
		if nulls.Contains(nsp, uint64(i)) {
			continue
		}
		rs[i] = x.Mod(xScale, ys[i], yScale, resultPrecision, resultScale, true, &isNaN, &overflow)
		if isNaN {
			return nil, moerr.NewDivByZeroNoCtx()
		}
	}
	if overflow {
		return nil, moerr.NewOutOfRangeNoCtx("decimal", "decimal mod overflow")
	}
	return rs, nil
}

func Decimal8ModScalar(x types.Decimal8, ys []types.Decimal8, xScale, yScale int32,
	resultPrecision, resultScale int32, nsp *nulls.Nulls, rs []types.Decimal16) ([]types.Decimal16, error) {
	var isNaN, overflow bool
	for i, y := range ys {
		if nulls.Contains(nsp, uint64(i)) {
			continue
		}
		rs[i] = x.Mod(xScale, y, yScale, resultPrecision, resultScale, true, &isNaN, &overflow)
		if isNaN {
			return nil, moerr.NewDivByZeroNoCtx()
		}
	}
	if overflow {
		return nil, moerr.NewOutOfRangeNoCtx("decimal", "decimal mod overflow")
	}
	return rs, nil
}

func Decimal16Mod(xs, ys []types.Decimal16, xScale, yScale int32,
	resultPrecision, resultScale int32, nsp *nulls.Nulls, rs []types.Decimal16) ([]types.Decimal16, error) {
	var isNaN, overflow bool
	for i, x := range xs {
		if nulls.Contains(nsp, uint64(i)) {
			continue
		}
		rs[i] = x.Mod(xScale, ys[i], yScale, resultPrecision, resultScale, true, &isNaN, &overflow)
		if isNaN {
			return nil, moerr.NewDivByZeroNoCtx()
		}
	}
	if overflow {
		return nil, moerr.NewOutOfRangeNoCtx("decimal", "decimal mod overflow")
	}
	return rs, nil
}

func Decimal16ModScalar(x types.Decimal16, ys []types.Decimal16, xScale, yScale int32,
	resultPrecision, resultScale int32, nsp *nulls.Nulls, rs []types.Decimal16) ([]types.Decimal16, error) {
	var isNaN, overflow bool
	for i, y := range ys {
		if nulls.Contains(nsp, uint64(i)) {
			continue
		}
		rs[i] = x.Mod(xScale, y, yScale, resultPrecision, resultScale, true, &isNaN, &overflow)
		if isNaN {
			return nil, moerr.NewDivByZeroNoCtx()
		}
	}
	if overflow {
		return nil, moerr.NewOutOfRangeNoCtx("decimal", "decimal mod overflow")
	}
	return rs, nil
}

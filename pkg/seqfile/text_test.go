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

package seqfile

import (
	"testing"

	"github.com/MyqueWooMiddo/Impala-1/pkg/common/moerr"
	"github.com/MyqueWooMiddo/Impala-1/pkg/container/types"
	"github.com/stretchr/testify/require"
)

func testColumns(t *testing.T) []*DecimalColumn {
	t1, err := types.New(types.T_decimal8, 18, 2)
	require.NoError(t, err)
	t2, err := types.New(types.T_decimal16, 38, 6)
	require.NoError(t, err)

	c1, err := NewDecimalColumn(t1)
	require.NoError(t, err)
	c2, err := NewDecimalColumn(t2)
	require.NoError(t, err)
	return []*DecimalColumn{c1, c2}
}

func TestDecodeRow(t *testing.T) {
	cols := testColumns(t)

	require.NoError(t, DecodeRow([]byte("1.25|33.5"), '|', cols))
	require.NoError(t, DecodeRow([]byte(`\N|0.000001`), '|', cols))
	require.NoError(t, DecodeRow([]byte("-0.05|"), '|', cols))

	require.Equal(t, 3, cols[0].Len())
	require.Equal(t, "1.25", cols[0].Values[0].String(2))
	require.Equal(t, "-0.05", cols[0].Values[2].String(2))
	require.True(t, cols[0].Nsp.Contains(1))

	require.Equal(t, "33.500000", cols[1].Values[0].String(6))
	require.Equal(t, "0.000001", cols[1].Values[1].String(6))
	require.True(t, cols[1].Nsp.Contains(2)) // empty field is null
}

func TestDecodeRowFieldCount(t *testing.T) {
	cols := testColumns(t)
	err := DecodeRow([]byte("1.25"), '|', cols)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrDataTruncated))
	require.Zero(t, cols[0].Len())
}

func TestDecodeRowParseErrorRollsBack(t *testing.T) {
	cols := testColumns(t)
	err := DecodeRow([]byte("1.25|garbage"), '|', cols)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))
	require.Zero(t, cols[0].Len())
	require.Zero(t, cols[1].Len())

	// A later good row lands on clean state.
	require.NoError(t, DecodeRow([]byte(`\N|1`), '|', cols))
	require.True(t, cols[0].Nsp.Contains(0))
	require.Equal(t, "1.000000", cols[1].Values[0].String(6))
}

func TestNewDecimalColumnRejectsNonDecimal(t *testing.T) {
	typ, err := types.New(types.T_int64, 0, 0)
	require.NoError(t, err)
	_, err = NewDecimalColumn(typ)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidArg))
}

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
	"testing"

	"github.com/MyqueWooMiddo/Impala-1/pkg/common/moerr"
	"github.com/stretchr/testify/require"
)

func TestNewType(t *testing.T) {
	typ, err := New(T_decimal8, 18, 4)
	require.NoError(t, err)
	require.Equal(t, int32(18), typ.Precision)
	require.Equal(t, int32(4), typ.Scale)
	require.Equal(t, int32(8), typ.Oid.FixedLength())

	_, err = New(T_decimal4, 10, 0)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidArg))

	_, err = New(T_decimal16, 38, 39)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidArg))

	_, err = New(T_decimal8, 0, 0)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidArg))
}

func TestTypeString(t *testing.T) {
	typ, err := New(T_decimal16, 38, 6)
	require.NoError(t, err)
	require.Contains(t, typ.String(), "38")
	require.True(t, typ.Oid.IsDecimal())
	require.False(t, T_int64.IsDecimal())
}

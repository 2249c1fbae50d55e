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

	"github.com/stretchr/testify/require"
)

func TestEncodeDecimal(t *testing.T) {
	d4 := Decimal4(-5)
	require.Equal(t, Decimal4Size, len(EncodeDecimal4(&d4)))
	require.Equal(t, d4, DecodeDecimal4(EncodeDecimal4(&d4)))

	d8 := Decimal8(1234500)
	require.Equal(t, d8, DecodeDecimal8(EncodeDecimal8(&d8)))

	d16 := decimal16FromInt64(-42)
	buf := EncodeDecimal16(&d16)
	require.Equal(t, Decimal16Size, len(buf))
	require.Equal(t, d16, DecodeDecimal16(buf))
}

func TestEncodeSlice(t *testing.T) {
	vs := []Decimal8{1, -2, 3}
	buf := EncodeSlice(vs)
	require.Equal(t, 3*Decimal8Size, len(buf))
	require.Equal(t, vs, DecodeSlice[Decimal8](buf))

	require.Nil(t, EncodeSlice[Decimal16](nil))
	require.Nil(t, DecodeSlice[Decimal16](nil))

	require.Panics(t, func() {
		DecodeSlice[Decimal16](make([]byte, 7))
	})
}

func TestEncodeType(t *testing.T) {
	typ, err := New(T_decimal16, 38, 6)
	require.NoError(t, err)
	require.Equal(t, typ, DecodeType(EncodeType(&typ)))

	require.Equal(t, typ, DecodeFixed[Type](EncodeFixed(typ)))
	require.Equal(t, Decimal8(7), DecodeFixed[Decimal8](EncodeFixed(Decimal8(7))))
}

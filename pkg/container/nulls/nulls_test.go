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

package nulls

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNullsBasic(t *testing.T) {
	var nsp *Nulls
	require.False(t, Any(nsp))
	require.False(t, Contains(nsp, 0))
	require.Equal(t, 0, Length(nsp))

	nsp = Build(1, 3, 5)
	require.True(t, Any(nsp))
	require.True(t, nsp.Contains(3))
	require.False(t, nsp.Contains(2))
	require.Equal(t, 3, nsp.Count())

	Del(nsp, 3)
	require.False(t, nsp.Contains(3))
	require.Equal(t, []uint64{1, 5}, nsp.ToArray())

	Reset(nsp)
	require.False(t, Any(nsp))
}

func TestNullsOr(t *testing.T) {
	require.Nil(t, Or(nil, nil))
	require.Nil(t, Or(&Nulls{}, nil))

	x := Build(1, 2)
	y := Build(2, 7)
	r := Or(x, y)
	require.Equal(t, []uint64{1, 2, 7}, r.ToArray())
	// inputs untouched
	require.Equal(t, 2, x.Count())
	require.Equal(t, 2, y.Count())

	r = Or(x, nil)
	require.Equal(t, []uint64{1, 2}, r.ToArray())
}

func TestNullsRangeFilter(t *testing.T) {
	nsp := Build(2, 4, 9)
	m := Range(nsp, 2, 5, 2, &Nulls{})
	require.Equal(t, []uint64{0, 2}, m.ToArray())

	f := Filter(Build(0, 3), []int64{3, 1, 0})
	require.Equal(t, []uint64{0, 2}, f.ToArray())
}

func TestNullsShowRead(t *testing.T) {
	nsp := Build(1, 1<<40)
	data, err := nsp.Show()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	var back Nulls
	require.NoError(t, back.Read(data))
	require.True(t, back.IsSame(nsp))
	require.True(t, back.Contains(1<<40))

	var empty Nulls
	data, err = empty.Show()
	require.NoError(t, err)
	require.Nil(t, data)
	require.NoError(t, empty.Read(nil))
	require.False(t, empty.Any())
}

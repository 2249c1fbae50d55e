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

// Package ndv estimates the number of distinct values in a decimal column
// with a HyperLogLog sketch over the deterministic decimal hashes. Sketches
// from different column chunks merge, so a scan can fold per-file estimates
// into one.
package ndv

import (
	"github.com/axiomhq/hyperloglog"

	"github.com/MyqueWooMiddo/Impala-1/pkg/container/nulls"
	"github.com/MyqueWooMiddo/Impala-1/pkg/container/types"
)

// hashSeed fixes the sketch input; estimates are only comparable when every
// producer hashes with the same seed.
const hashSeed = 0x9e3779b97f4a7c15

type Sketch struct {
	hll *hyperloglog.Sketch
}

func New() *Sketch {
	return &Sketch{hll: hyperloglog.New14()}
}

func (s *Sketch) InsertDecimal4(xs []types.Decimal4, nsp *nulls.Nulls) {
	for i, x := range xs {
		if nulls.Contains(nsp, uint64(i)) {
			continue
		}
		s.hll.InsertHash(x.Hash(hashSeed))
	}
}

func (s *Sketch) InsertDecimal8(xs []types.Decimal8, nsp *nulls.Nulls) {
	for i, x := range xs {
		if nulls.Contains(nsp, uint64(i)) {
			continue
		}
		s.hll.InsertHash(x.Hash(hashSeed))
	}
}

func (s *Sketch) InsertDecimal16(xs []types.Decimal16, nsp *nulls.Nulls) {
	for i, x := range xs {
		if nulls.Contains(nsp, uint64(i)) {
			continue
		}
		s.hll.InsertHash(x.Hash(hashSeed))
	}
}

// Estimate returns the approximate distinct count. Nulls never contribute.
func (s *Sketch) Estimate() uint64 {
	return s.hll.Estimate()
}

func (s *Sketch) Merge(other *Sketch) error {
	return s.hll.Merge(other.hll)
}

func (s *Sketch) MarshalBinary() ([]byte, error) {
	return s.hll.MarshalBinary()
}

func (s *Sketch) UnmarshalBinary(data []byte) error {
	if s.hll == nil {
		s.hll = hyperloglog.New14()
	}
	return s.hll.UnmarshalBinary(data)
}

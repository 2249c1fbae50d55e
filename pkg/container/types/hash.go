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

import "math/bits"

// Decimal hashing for join and group-by keys. Hashes cover the raw unscaled
// bytes, so two decimals hash alike only when their unscaled value and width
// match; callers must normalize operands to one scale before hashing, the
// same precondition the equal-scale comparators carry.
//
// The keys are fixed constants rather than per-process randoms. Hashes feed
// distributed exchange partitioning, so every node has to compute the same
// value for the same input.

const (
	hashM1 = 0xa0761d6478bd642f
	hashM2 = 0xe7037ed1a0b428db
	hashM3 = 0x8ebc6af09c88c6e3
	hashM4 = 0x589965cc75374cc3
)

func mix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}

func (x Decimal4) Hash(seed uint64) uint64 {
	return mix(uint64(uint32(x))^hashM2, seed^hashM1)
}

func (x Decimal8) Hash(seed uint64) uint64 {
	return mix(uint64(x)^hashM2, seed^hashM1)
}

func (x Decimal16) Hash(seed uint64) uint64 {
	h := mix(x.B0_63^hashM2, seed^hashM1)
	return mix(x.B64_127^hashM3, h^hashM4)
}

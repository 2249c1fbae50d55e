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
	"io"

	"github.com/MyqueWooMiddo/Impala-1/pkg/common/moerr"
)

// Hadoop's zero-compressed integers. A first byte in [-112, 127] is the
// value itself; otherwise it encodes sign and how many big-endian magnitude
// bytes follow: -113..-120 positive of 1..8 bytes, -121..-128 negative of
// 1..8 bytes, the negative magnitude stored ones-complemented.

func vintSize(first int8) int {
	switch {
	case first >= -112:
		return 1
	case first < -120:
		return int(-119 - first)
	default:
		return int(-111 - first)
	}
}

func vintNegative(first int8) bool {
	return first < -120 || (first >= -112 && first < 0)
}

// readVInt64 decodes one zero-compressed integer from r.
func readVInt64(r io.ByteReader) (int64, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	first := int8(b)
	if first >= -112 {
		return int64(first), nil
	}
	n := vintSize(first) - 1
	var v int64
	for i := 0; i < n; i++ {
		b, err = r.ReadByte()
		if err != nil {
			if err == io.EOF {
				err = moerr.NewUnexpectedEOFNoCtx("varint")
			}
			return 0, err
		}
		v = v<<8 | int64(b)
	}
	if vintNegative(first) {
		v = ^v
	}
	return v, nil
}

// readVInt decodes a zero-compressed integer that must fit in 32 bits, the
// form the file format uses for lengths and counts.
func readVInt(r io.ByteReader) (int32, error) {
	v, err := readVInt64(r)
	if err != nil {
		return 0, err
	}
	if v > (1<<31)-1 || v < -(1<<31) {
		return 0, moerr.NewParseErrorNoCtx("varint %d out of int32 range", v)
	}
	return int32(v), nil
}

// appendVInt64 encodes v the way Hadoop writers do. Only tests and tooling
// write sequence files here, the scanner itself never does.
func appendVInt64(dst []byte, v int64) []byte {
	if v >= -112 && v <= 127 {
		return append(dst, byte(v))
	}
	base := int8(-113)
	if v < 0 {
		v = ^v
		base = -121
	}
	var n int
	for tmp := v; tmp != 0; tmp >>= 8 {
		n++
	}
	dst = append(dst, byte(base-int8(n-1)))
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, byte(v>>(8*uint(i))))
	}
	return dst
}

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
	"unsafe"

	"github.com/MyqueWooMiddo/Impala-1/pkg/common/moerr"
)

// Zero-copy reinterpretation between fixed-size values and their in-memory
// byte images. Encodings are therefore native-endian; they are meant for
// intra-process column buffers, not for a portable wire format.

const (
	TSize         int = int(unsafe.Sizeof(Type{}))
	Decimal4Size  int = 4
	Decimal8Size  int = 8
	Decimal16Size int = 16
)

// FixedSizeT enumerates the value types that may live in a fixed-width
// column buffer.
type FixedSizeT interface {
	bool | int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		Decimal4 | Decimal8 | Decimal16 | Type | T
}

func EncodeSlice[T any](v []T) []byte {
	var t T
	sz := int(unsafe.Sizeof(t))
	if len(v) > 0 {
		return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*sz)[:len(v)*sz]
	}
	return nil
}

func DecodeSlice[T any](v []byte) []T {
	var t T
	sz := int(unsafe.Sizeof(t))
	if len(v)%sz != 0 {
		panic(moerr.NewInternalErrorNoCtx("decode slice that is not a multiple of element size"))
	}
	if len(v) > 0 {
		return unsafe.Slice((*T)(unsafe.Pointer(&v[0])), len(v)/sz)[:len(v)/sz]
	}
	return nil
}

func EncodeFixed[T FixedSizeT](v T) []byte {
	sz := unsafe.Sizeof(v)
	return unsafe.Slice((*byte)(unsafe.Pointer(&v)), sz)
}

func DecodeFixed[T FixedSizeT](v []byte) T {
	return *(*T)(unsafe.Pointer(&v[0]))
}

func EncodeType(v *Type) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), TSize)
}

func DecodeType(v []byte) Type {
	return *(*Type)(unsafe.Pointer(&v[0]))
}

func EncodeDecimal4(v *Decimal4) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), Decimal4Size)
}

func DecodeDecimal4(v []byte) Decimal4 {
	return *(*Decimal4)(unsafe.Pointer(&v[0]))
}

func EncodeDecimal8(v *Decimal8) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), Decimal8Size)
}

func DecodeDecimal8(v []byte) Decimal8 {
	return *(*Decimal8)(unsafe.Pointer(&v[0]))
}

func EncodeDecimal16(v *Decimal16) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), Decimal16Size)
}

func DecodeDecimal16(v []byte) Decimal16 {
	return *(*Decimal16)(unsafe.Pointer(&v[0]))
}

func EncodeInt32(v *int32) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), 4)
}

func DecodeInt32(v []byte) int32 {
	return *(*int32)(unsafe.Pointer(&v[0]))
}

func EncodeInt64(v *int64) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), 8)
}

func DecodeInt64(v []byte) int64 {
	return *(*int64)(unsafe.Pointer(&v[0]))
}

func EncodeFloat64(v *float64) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), 8)
}

func DecodeFloat64(v []byte) float64 {
	return *(*float64)(unsafe.Pointer(&v[0]))
}

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
	"fmt"

	"github.com/MyqueWooMiddo/Impala-1/pkg/common/moerr"
)

type T uint8

const (
	T_any T = iota
	T_bool

	T_int8
	T_int16
	T_int32
	T_int64

	T_float32
	T_float64

	T_decimal4
	T_decimal8
	T_decimal16

	T_char
	T_varchar
)

// Type describes a column type. Decimal values never carry their own
// precision and scale; they always come from here.
type Type struct {
	Oid  T
	Size int32

	// Width is the display width for fixed-width character types.
	Width     int32
	Precision int32
	Scale     int32
}

// New builds a validated column type. For decimal oids the precision must fit
// the storage width and the scale may not exceed the precision; violating
// either is a caller bug surfaced as an error rather than silent truncation
// down the line.
func New(oid T, precision, scale int32) (Type, error) {
	t := Type{Oid: oid, Size: oid.FixedLength(), Precision: precision, Scale: scale}
	if oid.IsDecimal() {
		if precision <= 0 || precision > oid.maxDigits() {
			return Type{}, moerr.NewInvalidArgNoCtx("decimal precision", precision)
		}
		if scale < 0 || scale > precision {
			return Type{}, moerr.NewInvalidArgNoCtx("decimal scale", scale)
		}
	}
	return t, nil
}

func (t T) IsDecimal() bool {
	return t == T_decimal4 || t == T_decimal8 || t == T_decimal16
}

func (t T) maxDigits() int32 {
	switch t {
	case T_decimal4:
		return MaxDecimal4Digits
	case T_decimal8:
		return MaxDecimal8Digits
	case T_decimal16:
		return MaxDecimal16Digits
	}
	return 0
}

// FixedLength returns the storage size in bytes, or -1 for variable-length
// types.
func (t T) FixedLength() int32 {
	switch t {
	case T_bool, T_int8:
		return 1
	case T_int16:
		return 2
	case T_int32, T_float32, T_decimal4:
		return 4
	case T_int64, T_float64, T_decimal8:
		return 8
	case T_decimal16:
		return 16
	}
	return -1
}

func (t T) String() string {
	switch t {
	case T_any:
		return "ANY"
	case T_bool:
		return "BOOL"
	case T_int8:
		return "TINYINT"
	case T_int16:
		return "SMALLINT"
	case T_int32:
		return "INT"
	case T_int64:
		return "BIGINT"
	case T_float32:
		return "FLOAT"
	case T_float64:
		return "DOUBLE"
	case T_decimal4:
		return "DECIMAL4"
	case T_decimal8:
		return "DECIMAL8"
	case T_decimal16:
		return "DECIMAL16"
	case T_char:
		return "CHAR"
	case T_varchar:
		return "VARCHAR"
	}
	return fmt.Sprintf("unexpected_type[%d]", uint8(t))
}

func (t Type) String() string {
	if t.Oid.IsDecimal() {
		return fmt.Sprintf("%s(%d,%d)", t.Oid, t.Precision, t.Scale)
	}
	return t.Oid.String()
}

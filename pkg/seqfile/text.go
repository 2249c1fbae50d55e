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
	"bytes"

	"github.com/MyqueWooMiddo/Impala-1/pkg/common/moerr"
	"github.com/MyqueWooMiddo/Impala-1/pkg/container/nulls"
	"github.com/MyqueWooMiddo/Impala-1/pkg/container/types"
)

// Record values produced by Hive and friends are delimited text. nullSeq is
// the escape Hive writes for a NULL field.
var nullSeq = []byte(`\N`)

// SplitFields cuts one text row into fields. Empty trailing fields are kept,
// matching how the writers emit them.
func SplitFields(row []byte, delim byte) [][]byte {
	return bytes.Split(row, []byte{delim})
}

// DecimalColumn accumulates one column of parsed decimals with its null
// bitmap. All values are held in the widest representation; narrow on the
// way out with ToDecimal8/ToDecimal4 once the column type says it fits.
type DecimalColumn struct {
	Typ    types.Type
	Values []types.Decimal16
	Nsp    *nulls.Nulls
}

func NewDecimalColumn(typ types.Type) (*DecimalColumn, error) {
	if !typ.Oid.IsDecimal() {
		return nil, moerr.NewInvalidArgNoCtx("decimal column type", typ.Oid.String())
	}
	return &DecimalColumn{Typ: typ, Nsp: &nulls.Nulls{}}, nil
}

// AppendField parses one text field into the column. The Hive null sequence
// and the empty field both become NULL rather than parse errors; anything
// else must parse within the column's precision and scale.
func (c *DecimalColumn) AppendField(field []byte) error {
	row := uint64(len(c.Values))
	if len(field) == 0 || bytes.Equal(field, nullSeq) {
		c.Values = append(c.Values, types.Decimal16{})
		c.Nsp.Set(row)
		return nil
	}
	d, err := types.ParseDecimal16(string(field), c.Typ.Precision, c.Typ.Scale)
	if err != nil {
		return err
	}
	c.Values = append(c.Values, d)
	return nil
}

func (c *DecimalColumn) Len() int {
	return len(c.Values)
}

// DecodeRow splits a record value and appends each field to its column.
// Rows with the wrong field count are data truncation errors; the columns
// are left unchanged so a caller can skip the row and carry on.
func DecodeRow(row []byte, delim byte, cols []*DecimalColumn) error {
	fields := SplitFields(row, delim)
	if len(fields) != len(cols) {
		return moerr.NewDataTruncatedNoCtx("row", "has %d fields, want %d", len(fields), len(cols))
	}
	for i, f := range fields {
		if err := cols[i].AppendField(f); err != nil {
			for j := 0; j < i; j++ {
				row := uint64(len(cols[j].Values) - 1)
				cols[j].Values = cols[j].Values[:row]
				nulls.Del(cols[j].Nsp, row)
			}
			return err
		}
	}
	return nil
}

/*
 * Copyright 2025 WITS contributors.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// ScalarKind enumerates the primitive shapes a filter value may take after
// normalization.
type ScalarKind int

const (
	KindNull ScalarKind = iota
	KindString
	KindInt32
	KindInt64
	KindDecimal
	KindDouble
	KindBool
)

func (k ScalarKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindDecimal:
		return "decimal"
	case KindDouble:
		return "double"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Scalar is the closed sum of primitive values accepted as filter criteria.
// A value arriving from the wire as untyped JSON is normalized exactly once,
// at unmarshal time; the predicate compiler only ever sees primitives.
type Scalar struct {
	kind ScalarKind
	str  string
	i64  int64
	dec  decimal.Decimal
	f64  float64
	b    bool
}

// Null returns the null scalar.
func Null() Scalar { return Scalar{kind: KindNull} }

// String boxes a string value.
func String(s string) Scalar { return Scalar{kind: KindString, str: s} }

// Int32 boxes a 32-bit integer value.
func Int32(i int32) Scalar { return Scalar{kind: KindInt32, i64: int64(i)} }

// Int64 boxes a 64-bit integer value.
func Int64(i int64) Scalar { return Scalar{kind: KindInt64, i64: i} }

// Decimal boxes an exact decimal value.
func Decimal(d decimal.Decimal) Scalar { return Scalar{kind: KindDecimal, dec: d} }

// Double boxes a floating point value.
func Double(f float64) Scalar { return Scalar{kind: KindDouble, f64: f} }

// Bool boxes a boolean value.
func Bool(b bool) Scalar { return Scalar{kind: KindBool, b: b} }

// ScalarOf normalizes an already-typed Go value into a Scalar. Structured
// values (maps, slices, arbitrary structs) are rejected with
// ErrUnsupportedValueShape.
func ScalarOf(v any) (Scalar, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case Scalar:
		return t, nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case int8:
		return Int32(int32(t)), nil
	case int16:
		return Int32(int32(t)), nil
	case int32:
		return Int32(t), nil
	case int:
		return normalizeInt(int64(t)), nil
	case int64:
		return normalizeInt(t), nil
	case uint8:
		return Int32(int32(t)), nil
	case uint16:
		return Int32(int32(t)), nil
	case uint32:
		return normalizeInt(int64(t)), nil
	case float32:
		return Double(float64(t)), nil
	case float64:
		return Double(t), nil
	case decimal.Decimal:
		return Decimal(t), nil
	case json.Number:
		return parseNumber(t.String())
	case map[string]any, []any:
		return Scalar{}, ErrUnsupportedValueShape
	default:
		return Scalar{}, fmt.Errorf("unsupported scalar type %T", v)
	}
}

func normalizeInt(i int64) Scalar {
	if i >= math.MinInt32 && i <= math.MaxInt32 {
		return Int32(int32(i))
	}
	return Int64(i)
}

// parseNumber tries integer widths before exact decimal before floating
// point, mirroring the normalization order of the query wire format.
func parseNumber(s string) (Scalar, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return normalizeInt(i), nil
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return Decimal(d), nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Double(f), nil
	}
	return Scalar{}, fmt.Errorf("unsupported numeric value %q", s)
}

// Kind reports the normalized shape of the value.
func (s Scalar) Kind() ScalarKind { return s.kind }

// IsNull reports whether the scalar is the JSON null value.
func (s Scalar) IsNull() bool { return s.kind == KindNull }

// Primitive returns the bindable primitive form of the value: string, int32,
// int64, decimal.Decimal, float64, bool, or nil.
func (s Scalar) Primitive() any {
	switch s.kind {
	case KindString:
		return s.str
	case KindInt32:
		return int32(s.i64)
	case KindInt64:
		return s.i64
	case KindDecimal:
		return s.dec
	case KindDouble:
		return s.f64
	case KindBool:
		return s.b
	default:
		return nil
	}
}

// UnmarshalJSON normalizes a raw JSON scalar. Objects and arrays are a hard
// error; everything else collapses to its primitive form.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty scalar value")
	}
	switch data[0] {
	case '{', '[':
		return ErrUnsupportedValueShape
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = String(str)
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*s = Bool(b)
		return nil
	case 'n':
		if !bytes.Equal(data, []byte("null")) {
			return fmt.Errorf("invalid scalar literal %q", data)
		}
		*s = Null()
		return nil
	default:
		v, err := parseNumber(string(data))
		if err != nil {
			return err
		}
		*s = v
		return nil
	}
}

// MarshalJSON renders the primitive form back onto the wire.
func (s Scalar) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case KindDecimal:
		// Exact decimals serialize as bare JSON numbers.
		return []byte(s.dec.String()), nil
	default:
		return json.Marshal(s.Primitive())
	}
}

func (s Scalar) String() string {
	switch s.kind {
	case KindNull:
		return "null"
	case KindString:
		return s.str
	case KindDecimal:
		return s.dec.String()
	default:
		return fmt.Sprintf("%v", s.Primitive())
	}
}

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
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestScalarUnmarshalNormalization(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		kind ScalarKind
		want any
	}{
		{"small int", `5`, KindInt32, int32(5)},
		{"int32 max", `2147483647`, KindInt32, int32(2147483647)},
		{"int32 overflow", `2147483648`, KindInt64, int64(2147483648)},
		{"negative", `-17`, KindInt32, int32(-17)},
		{"decimal", `12.5`, KindDecimal, nil},
		{"string", `"smith"`, KindString, "smith"},
		{"bool true", `true`, KindBool, true},
		{"bool false", `false`, KindBool, false},
		{"null", `null`, KindNull, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var s Scalar
			if err := json.Unmarshal([]byte(tc.raw), &s); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.raw, err)
			}
			if s.Kind() != tc.kind {
				t.Fatalf("kind = %v, want %v", s.Kind(), tc.kind)
			}
			if tc.kind == KindDecimal {
				d, ok := s.Primitive().(decimal.Decimal)
				if !ok {
					t.Fatalf("primitive = %T, want decimal.Decimal", s.Primitive())
				}
				if d.String() != "12.5" {
					t.Fatalf("decimal = %s, want 12.5", d)
				}
				return
			}
			if tc.kind == KindNull {
				if s.Primitive() != nil {
					t.Fatalf("primitive = %v, want nil", s.Primitive())
				}
				return
			}
			if s.Primitive() != tc.want {
				t.Fatalf("primitive = %v (%T), want %v (%T)", s.Primitive(), s.Primitive(), tc.want, tc.want)
			}
		})
	}
}

func TestScalarRejectsStructuredValues(t *testing.T) {
	for _, raw := range []string{`{"nested":1}`, `[1,2,3]`, `{}`, `[]`} {
		var s Scalar
		err := json.Unmarshal([]byte(raw), &s)
		if !errors.Is(err, ErrUnsupportedValueShape) {
			t.Fatalf("unmarshal %s: err = %v, want ErrUnsupportedValueShape", raw, err)
		}
	}
}

func TestScalarOf(t *testing.T) {
	s, err := ScalarOf(7)
	if err != nil {
		t.Fatalf("ScalarOf(7): %v", err)
	}
	if s.Kind() != KindInt32 || s.Primitive() != int32(7) {
		t.Fatalf("ScalarOf(7) = %v %v", s.Kind(), s.Primitive())
	}

	s, err = ScalarOf(int64(5_000_000_000))
	if err != nil {
		t.Fatalf("ScalarOf(int64): %v", err)
	}
	if s.Kind() != KindInt64 {
		t.Fatalf("wide int kind = %v, want int64", s.Kind())
	}

	s, err = ScalarOf(2.5)
	if err != nil {
		t.Fatalf("ScalarOf(float64): %v", err)
	}
	if s.Kind() != KindDouble || s.Primitive() != 2.5 {
		t.Fatalf("ScalarOf(2.5) = %v %v", s.Kind(), s.Primitive())
	}

	d := decimal.NewFromInt(42)
	s, err = ScalarOf(d)
	if err != nil {
		t.Fatalf("ScalarOf(decimal): %v", err)
	}
	if s.Kind() != KindDecimal {
		t.Fatalf("decimal kind = %v", s.Kind())
	}

	if _, err := ScalarOf(map[string]any{"a": 1}); !errors.Is(err, ErrUnsupportedValueShape) {
		t.Fatalf("map err = %v, want ErrUnsupportedValueShape", err)
	}
	if _, err := ScalarOf([]any{1, 2}); !errors.Is(err, ErrUnsupportedValueShape) {
		t.Fatalf("slice err = %v, want ErrUnsupportedValueShape", err)
	}
	if _, err := ScalarOf(struct{ X int }{1}); err == nil {
		t.Fatal("expected error for arbitrary struct")
	}
}

func TestScalarMarshalRoundTrip(t *testing.T) {
	d, _ := decimal.NewFromString("12.50")
	out, err := json.Marshal(Decimal(d))
	if err != nil {
		t.Fatalf("marshal decimal: %v", err)
	}
	if string(out) != "12.5" {
		t.Fatalf("decimal wire form = %s, want 12.5", out)
	}

	out, err = json.Marshal(Int32(7))
	if err != nil {
		t.Fatalf("marshal int32: %v", err)
	}
	if string(out) != "7" {
		t.Fatalf("int wire form = %s, want 7", out)
	}

	out, err = json.Marshal(String("a b"))
	if err != nil {
		t.Fatalf("marshal string: %v", err)
	}
	if string(out) != `"a b"` {
		t.Fatalf("string wire form = %s", out)
	}

	out, err = json.Marshal(Null())
	if err != nil {
		t.Fatalf("marshal null: %v", err)
	}
	if string(out) != "null" {
		t.Fatalf("null wire form = %s", out)
	}
}

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

package repository

import (
	"testing"

	"github.com/knatz-personal/wits/types"

	"github.com/uptrace/bun"
)

func mustCriteria(t *testing.T, value any, operator string) types.FilterCriteria {
	t.Helper()
	c, err := types.NewFilterCriteria(value, operator)
	if err != nil {
		t.Fatalf("criterion %v %q: %v", value, operator, err)
	}
	return c
}

func TestCompileFiltersDropsUnknownColumns(t *testing.T) {
	reg := employeeRegistry(t)
	filters := map[string]types.FilterCriteria{
		"name":        mustCriteria(t, "smith", ""),
		"no_such_col": mustCriteria(t, 1, ""),
		"1=1; --":     mustCriteria(t, 1, ""),
	}

	preds := compileFilters(reg, filters, nil)
	if len(preds) != 1 {
		t.Fatalf("got %d predicates, want 1", len(preds))
	}
	if preds[0].Args[0] != bun.Ident("name") {
		t.Fatalf("bound column = %v, want name", preds[0].Args[0])
	}
}

func TestCompileFiltersDropsUnknownOperators(t *testing.T) {
	reg := employeeRegistry(t)
	filters := map[string]types.FilterCriteria{
		"name":   mustCriteria(t, "x", "BETWEEN"),
		"status": mustCriteria(t, 1, "UNION SELECT"),
	}

	if preds := compileFilters(reg, filters, nil); len(preds) != 0 {
		t.Fatalf("got %d predicates, want 0", len(preds))
	}
}

func TestCompileFiltersOperators(t *testing.T) {
	reg := employeeRegistry(t)

	preds := compileFilters(reg, map[string]types.FilterCriteria{
		"status": mustCriteria(t, 2, ""),
	}, nil)
	if len(preds) != 1 || preds[0].Expr != "? = ?" {
		t.Fatalf("default operator predicate = %+v", preds)
	}
	if preds[0].Args[1] != int32(2) {
		t.Fatalf("bound value = %v (%T)", preds[0].Args[1], preds[0].Args[1])
	}

	preds = compileFilters(reg, map[string]types.FilterCriteria{
		"status": mustCriteria(t, 5, "GTE"),
	}, nil)
	if preds[0].Expr != "? >= ?" {
		t.Fatalf("GTE expr = %q", preds[0].Expr)
	}
}

func TestCompileFiltersContainsWrapsValue(t *testing.T) {
	reg := employeeRegistry(t)

	preds := compileFilters(reg, map[string]types.FilterCriteria{
		"name": mustCriteria(t, "smi", "CONTAINS"),
	}, nil)
	if len(preds) != 1 {
		t.Fatalf("got %d predicates, want 1", len(preds))
	}
	if preds[0].Expr != "? LIKE ?" {
		t.Fatalf("contains expr = %q", preds[0].Expr)
	}
	if preds[0].Args[1] != "%smi%" {
		t.Fatalf("contains value = %v, want %%smi%%", preds[0].Args[1])
	}
}

func TestCompileFiltersDeterministicOrder(t *testing.T) {
	reg := employeeRegistry(t)
	filters := map[string]types.FilterCriteria{
		"status": mustCriteria(t, 1, ""),
		"code":   mustCriteria(t, "A", ""),
		"name":   mustCriteria(t, "b", ""),
	}

	want := []bun.Ident{"code", "name", "status"}
	for i := 0; i < 5; i++ {
		preds := compileFilters(reg, filters, nil)
		if len(preds) != len(want) {
			t.Fatalf("got %d predicates, want %d", len(preds), len(want))
		}
		for j, p := range preds {
			if p.Args[0] != want[j] {
				t.Fatalf("run %d: predicate %d bound to %v, want %v", i, j, p.Args[0], want[j])
			}
		}
	}
}

func TestNotDeletedGuard(t *testing.T) {
	guard := notDeleted()
	if guard.Expr != "? = ?" {
		t.Fatalf("guard expr = %q", guard.Expr)
	}
	if guard.Args[0] != bun.Ident("is_deleted") || guard.Args[1] != false {
		t.Fatalf("guard args = %v", guard.Args)
	}
}

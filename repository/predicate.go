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
	"fmt"
	"sort"

	"github.com/knatz-personal/wits/database"
	"github.com/knatz-personal/wits/types"

	"github.com/uptrace/bun"
)

const softDeleteColumn = "is_deleted"

// Predicate is a single SQL boolean fragment plus its bound arguments.
// Identifiers are bound as bun.Ident so the dialect quotes them; values stay
// placeholder-bound, never interpolated.
type Predicate struct {
	Expr string
	Args []any
}

// notDeleted is the fixed predicate prepended to every read path. It is
// never caller-controlled.
func notDeleted() Predicate {
	return Predicate{Expr: "? = ?", Args: []any{bun.Ident(softDeleteColumn), false}}
}

// compileFilters translates per-column criteria into predicates, in column
// name order so the generated SQL is deterministic. Criteria on columns
// outside the registry contribute nothing, as do criteria with operator
// tokens outside the fixed set; both are dropped without error.
func compileFilters(reg *ColumnRegistry, filters map[string]types.FilterCriteria, logger database.Logger) []Predicate {
	if len(filters) == 0 {
		return nil
	}

	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)

	preds := make([]Predicate, 0, len(names))
	for _, name := range names {
		criteria := filters[name]

		column, ok := reg.Resolve(name)
		if !ok {
			if logger != nil {
				logger.Debug("Dropping criterion on unknown column", "column", name)
			}
			continue
		}

		op := criteria.Op()
		if !op.IsValid() {
			if logger != nil {
				logger.Debug("Dropping criterion with unknown operator", "column", name, "operator", criteria.Operator)
			}
			continue
		}

		value := criteria.Value.Primitive()
		if op == types.OpContains {
			value = fmt.Sprintf("%%%s%%", criteria.Value)
		}

		preds = append(preds, Predicate{
			Expr: fmt.Sprintf("? %s ?", op),
			Args: []any{bun.Ident(column), value},
		})
	}
	return preds
}

// applyPredicates attaches predicates to a select query as an AND
// conjunction, the soft-delete guard first.
func applyPredicates(q *bun.SelectQuery, preds []Predicate) *bun.SelectQuery {
	guard := notDeleted()
	q = q.Where(guard.Expr, guard.Args...)
	for _, p := range preds {
		q = q.Where(p.Expr, p.Args...)
	}
	return q
}

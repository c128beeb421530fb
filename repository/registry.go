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
	"strings"

	"github.com/uptrace/bun/schema"
)

const fallbackIDColumn = "id"

// ColumnRegistry is the whitelist of column names eligible for filtering and
// sorting on one entity type: every persisted field except the identifier.
// It is derived once from the Bun table schema when the repository is built
// and never mutated afterwards, so concurrent reads need no locking.
type ColumnRegistry struct {
	idColumn string
	columns  []string
	byFold   map[string]string
}

func newColumnRegistry(table *schema.Table) *ColumnRegistry {
	reg := &ColumnRegistry{
		idColumn: fallbackIDColumn,
		byFold:   make(map[string]string, len(table.Fields)),
	}

	pks := make(map[string]struct{}, len(table.PKs))
	for _, pk := range table.PKs {
		pks[pk.Name] = struct{}{}
	}
	if len(table.PKs) > 0 {
		reg.idColumn = table.PKs[0].Name
	}

	for _, field := range table.Fields {
		if _, isPK := pks[field.Name]; isPK {
			continue
		}
		reg.columns = append(reg.columns, field.Name)
		reg.byFold[strings.ToLower(field.Name)] = field.Name
	}
	return reg
}

// Columns returns the ordered whitelist.
func (r *ColumnRegistry) Columns() []string {
	out := make([]string, len(r.columns))
	copy(out, r.columns)
	return out
}

// IDColumn returns the identifier column name.
func (r *ColumnRegistry) IDColumn() string { return r.idColumn }

// Resolve matches a caller-supplied name case-insensitively against the
// whitelist and returns the canonical column name. Only the canonical name
// is ever interpolated into SQL.
func (r *ColumnRegistry) Resolve(name string) (string, bool) {
	canonical, ok := r.byFold[strings.ToLower(strings.TrimSpace(name))]
	return canonical, ok
}

// ResolveSort validates a requested sort column, falling back to the
// identifier when the request is blank or outside the whitelist.
func (r *ColumnRegistry) ResolveSort(requested string) string {
	if canonical, ok := r.Resolve(requested); ok {
		return canonical
	}
	return r.idColumn
}

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
	"context"
	"fmt"

	"github.com/knatz-personal/wits/types"

	"github.com/uptrace/bun"
)

// Column used as the exact-match scope on the search path. Searchable
// entities carry it (users, projects, tickets).
const searchScopeColumn = "organisation_id"

// ftsTableSuffix names the FTS5 shadow table paired with an entity table,
// sharing the entity identifier as its rowid.
const ftsTableSuffix = "_fts"

// Search runs the relevance-ranked full-text path: the entity table joined
// to its FTS index on the shared row identifier, constrained by the match
// predicate, the soft-delete guard, and the organisation scope. Results are
// ordered by ascending bm25 score (lower is more relevant), ties broken by
// descending identifier, then paginated. The count statement shares the
// exact predicate set.
func (r *baseRepositoryImpl[T]) Search(ctx context.Context, params *types.SearchParams) (*types.PagedResult[T], error) {
	if params == nil {
		return nil, fmt.Errorf("search params cannot be nil")
	}
	pageNumber, pageSize := params.GetPageNumber(), params.GetPageSize()

	conn, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = conn.Close() }()

	ftsTable := r.table.Name + ftsTableSuffix
	idColumn := r.registry.IDColumn()

	match := func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			ModelTableExpr("? AS main", bun.Ident(r.table.Name)).
			Join("JOIN ? AS fts ON fts.rowid = main.?", bun.Ident(ftsTable), bun.Ident(idColumn)).
			// Under an alias, FTS5 exposes the match target as a hidden
			// column named after the table, so the MATCH operand must be
			// qualified as fts.<fts table>.
			Where("?.? MATCH ?", bun.Ident("fts"), bun.Ident(ftsTable), params.SearchString).
			Where("main.? = ?", bun.Ident(softDeleteColumn), false).
			Where("main.? = ?", bun.Ident(searchScopeColumn), params.OrganisationID)
	}

	total, err := match(conn.NewSelect().Model((*T)(nil))).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("search count on %s: %w", r.table.Name, err)
	}
	if total == 0 {
		return types.NewPagedResult[T](nil, 0, pageNumber, pageSize)
	}

	var items []*T
	err = match(conn.NewSelect().Model(&items).ColumnExpr("main.*")).
		OrderExpr("bm25(?.?) ASC, main.? DESC", bun.Ident("fts"), bun.Ident(ftsTable), bun.Ident(idColumn)).
		Limit(pageSize).
		Offset(params.GetOffset()).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("search query on %s: %w", r.table.Name, err)
	}

	return types.NewPagedResult(items, total, pageNumber, pageSize)
}

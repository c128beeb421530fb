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
	"reflect"
	"time"

	"github.com/knatz-personal/wits/database"
	"github.com/knatz-personal/wits/types"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"
)

type config struct {
	logger        database.Logger
	strictListing bool
}

// Option customizes a repository.
type Option func(*config)

// WithLogger replaces the default database logger.
func WithLogger(logger database.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithStrictListing makes the unfiltered GetAll path propagate store errors
// instead of degrading to an empty page.
func WithStrictListing() Option {
	return func(c *config) { c.strictListing = true }
}

type baseRepositoryImpl[T any] struct {
	db            *bun.DB
	table         *schema.Table
	registry      *ColumnRegistry
	logger        database.Logger
	strictListing bool
}

// NewRepository returns a generic repository for T backed by the provided
// Bun DB. The column whitelist is derived from the Bun schema here, once,
// and shared read-only by every operation.
func NewRepository[T any](db *bun.DB, opts ...Option) Repository[T] {
	cfg := config{logger: database.GetLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}

	table := db.Table(reflect.TypeOf((*T)(nil)).Elem())
	return &baseRepositoryImpl[T]{
		db:            db,
		table:         table,
		registry:      newColumnRegistry(table),
		logger:        cfg.logger,
		strictListing: cfg.strictListing,
	}
}

func (r *baseRepositoryImpl[T]) Columns() []string { return r.registry.Columns() }

// conn acquires a dedicated connection for the duration of one operation.
// The caller must release it on every exit path.
func (r *baseRepositoryImpl[T]) conn(ctx context.Context) (bun.Conn, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return conn, fmt.Errorf("acquire connection: %w", err)
	}
	return conn, nil
}

func (r *baseRepositoryImpl[T]) GetByID(ctx context.Context, id any) (*T, error) {
	conn, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = conn.Close() }()

	var entity T
	err = conn.NewSelect().
		Model(&entity).
		Where("? = ?", bun.Ident(r.registry.IDColumn()), id).
		Where("? = ?", bun.Ident(softDeleteColumn), false).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *baseRepositoryImpl[T]) Insert(ctx context.Context, entity *T) error {
	conn, err := r.conn(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	_, err = conn.NewInsert().Model(entity).Exec(ctx)
	return err
}

func (r *baseRepositoryImpl[T]) Update(ctx context.Context, entity *T) error {
	conn, err := r.conn(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	_, err = conn.NewUpdate().Model(entity).WherePK().Exec(ctx)
	return err
}

func (r *baseRepositoryImpl[T]) SoftDelete(ctx context.Context, id any) error {
	conn, err := r.conn(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	_, err = conn.NewUpdate().
		Model((*T)(nil)).
		Set("? = ?", bun.Ident(softDeleteColumn), true).
		Set("? = ?", bun.Ident("last_modified"), time.Now()).
		Where("? = ?", bun.Ident(r.registry.IDColumn()), id).
		Exec(ctx)
	return err
}

func (r *baseRepositoryImpl[T]) Delete(ctx context.Context, id any) error {
	conn, err := r.conn(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	_, err = conn.NewDelete().
		Model((*T)(nil)).
		Where("? = ?", bun.Ident(r.registry.IDColumn()), id).
		Exec(ctx)
	return err
}

// GetAll is the unfiltered paged listing, ordered by identifier. Store
// errors degrade to an empty page unless the repository was built with
// WithStrictListing; the degradation is logged, never silent.
func (r *baseRepositoryImpl[T]) GetAll(ctx context.Context, pageNumber, pageSize int) (*types.PagedResult[T], error) {
	spec := types.GenericFilter{PageNumber: pageNumber, PageSize: pageSize}
	pageNumber, pageSize = spec.GetPageNumber(), spec.GetPageSize()

	result, err := r.page(ctx, nil, r.registry.IDColumn(), types.SortAsc, pageNumber, pageSize)
	if err != nil {
		if r.strictListing {
			return nil, err
		}
		if r.logger != nil {
			if is, kind := database.IsSQLError(err); is {
				r.logger.Warn("Unfiltered listing failed, returning empty page", "table", r.table.Name, "kind", kind, "error", err)
			} else {
				r.logger.Warn("Unfiltered listing failed, returning empty page", "table", r.table.Name, "error", err)
			}
		}
		return types.EmptyPagedResult[T](pageNumber, pageSize), nil
	}
	return result, nil
}

// Query translates the declarative filter into predicates and runs the
// count and page statements with an identical predicate set.
func (r *baseRepositoryImpl[T]) Query(ctx context.Context, filter *types.GenericFilter) (*types.PagedResult[T], error) {
	if filter == nil {
		filter = &types.GenericFilter{}
	}

	preds := compileFilters(r.registry, filter.Filters, r.logger)
	sortColumn := r.registry.ResolveSort(filter.SortColumn)

	return r.page(ctx, preds, sortColumn, filter.GetSortDirection(), filter.GetPageNumber(), filter.GetPageSize())
}

// page runs the count statement and then the page statement over the same
// predicate set on a single scoped connection, and wraps the rows in the
// paged envelope.
func (r *baseRepositoryImpl[T]) page(ctx context.Context, preds []Predicate, sortColumn string, dir types.SortDirection, pageNumber, pageSize int) (*types.PagedResult[T], error) {
	conn, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = conn.Close() }()

	var items []*T
	q := applyPredicates(conn.NewSelect().Model(&items), preds)

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count query on %s: %w", r.table.Name, err)
	}
	if total == 0 {
		return types.NewPagedResult[T](nil, 0, pageNumber, pageSize)
	}

	err = q.
		OrderExpr("? ?", bun.Ident(sortColumn), bun.Safe(dir.String())).
		Limit(pageSize).
		Offset((pageNumber - 1) * pageSize).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("page query on %s: %w", r.table.Name, err)
	}

	return types.NewPagedResult(items, total, pageNumber, pageSize)
}

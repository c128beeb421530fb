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

// Package wits exposes a typed data-access facade over the generic
// repository, bound lazily to the global database connection.
package wits

import (
	"context"
	"sync"

	"github.com/knatz-personal/wits/database"
	"github.com/knatz-personal/wits/repository"
	"github.com/knatz-personal/wits/types"
)

type Service[T any] interface {
	// Get returns a single live entity by its identifier.
	Get(ctx context.Context, id any) (*T, error)

	// All returns a page of live entities ordered by identifier.
	All(ctx context.Context, pageNumber, pageSize int) (*types.PagedResult[T], error)

	// Query returns the page of live entities matching the filter.
	Query(ctx context.Context, filter *types.GenericFilter) (*types.PagedResult[T], error)

	// Search returns a relevance-ranked page of full-text matches.
	Search(ctx context.Context, params *types.SearchParams) (*types.PagedResult[T], error)

	// Save inserts a new entity and populates its generated identifier.
	Save(ctx context.Context, model *T) error

	// Update rewrites an existing entity by primary key.
	Update(ctx context.Context, model *T) error

	// Delete marks an entity as deleted without removing the row.
	Delete(ctx context.Context, id any) error

	// Purge permanently removes an entity row.
	Purge(ctx context.Context, id any) error

	// Columns lists the filterable column names for the entity.
	Columns() []string
}

type baseServiceImpl[T any] struct {
	repo repository.Repository[T]
	opts []repository.Option
	once sync.Once
}

// NewService returns a default Service implementation using the generic
// repository backed by the global database connection.
func NewService[T any](opts ...repository.Option) Service[T] {
	return &baseServiceImpl[T]{opts: opts}
}

func (s *baseServiceImpl[T]) baseRepo() repository.Repository[T] {
	s.once.Do(func() { s.repo = repository.NewRepository[T](database.GetDB(), s.opts...) })
	return s.repo
}

func (s *baseServiceImpl[T]) Get(ctx context.Context, id any) (*T, error) {
	return s.baseRepo().GetByID(ctx, id)
}

func (s *baseServiceImpl[T]) All(ctx context.Context, pageNumber, pageSize int) (*types.PagedResult[T], error) {
	return s.baseRepo().GetAll(ctx, pageNumber, pageSize)
}

func (s *baseServiceImpl[T]) Query(ctx context.Context, filter *types.GenericFilter) (*types.PagedResult[T], error) {
	return s.baseRepo().Query(ctx, filter)
}

func (s *baseServiceImpl[T]) Search(ctx context.Context, params *types.SearchParams) (*types.PagedResult[T], error) {
	return s.baseRepo().Search(ctx, params)
}

func (s *baseServiceImpl[T]) Save(ctx context.Context, model *T) error {
	return s.baseRepo().Insert(ctx, model)
}

func (s *baseServiceImpl[T]) Update(ctx context.Context, model *T) error {
	return s.baseRepo().Update(ctx, model)
}

func (s *baseServiceImpl[T]) Delete(ctx context.Context, id any) error {
	return s.baseRepo().SoftDelete(ctx, id)
}

func (s *baseServiceImpl[T]) Purge(ctx context.Context, id any) error {
	return s.baseRepo().Delete(ctx, id)
}

func (s *baseServiceImpl[T]) Columns() []string {
	return s.baseRepo().Columns()
}

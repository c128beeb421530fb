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

	"github.com/knatz-personal/wits/types"
)

// CrudRepository defines identifier-keyed operations for a generic entity
// type. Delete removes the row; SoftDelete only marks it removed, which is
// what every read path honors.
type CrudRepository[T any] interface {
	GetByID(ctx context.Context, id any) (*T, error)

	Insert(ctx context.Context, entity *T) error

	Update(ctx context.Context, entity *T) error

	SoftDelete(ctx context.Context, id any) error

	Delete(ctx context.Context, id any) error
}

// PageQueryRepository defines the paged read paths. GetAll is the unfiltered
// listing; Query applies a declarative filter/sort/page description.
type PageQueryRepository[T any] interface {
	GetAll(ctx context.Context, pageNumber, pageSize int) (*types.PagedResult[T], error)

	Query(ctx context.Context, filter *types.GenericFilter) (*types.PagedResult[T], error)
}

// SearchRepository defines the relevance-ranked full-text path.
type SearchRepository[T any] interface {
	Search(ctx context.Context, params *types.SearchParams) (*types.PagedResult[T], error)
}

// Repository combines CRUD, paged querying, and full-text search, and
// exposes the whitelisted column set for the entity type.
type Repository[T any] interface {
	CrudRepository[T]
	PageQueryRepository[T]
	SearchRepository[T]

	// Columns returns the bindable, whitelisted column names for the
	// entity type, excluding the identifier.
	Columns() []string
}

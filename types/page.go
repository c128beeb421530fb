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

// PagedResult is the uniform envelope returned by every read path: one page
// of items, the pre-pagination match count, and the page spec that produced
// it. Items keep the ordering produced by the query.
type PagedResult[T any] struct {
	Items        []*T `json:"items"`
	TotalRecords int  `json:"totalRecords"`
	PageNumber   int  `json:"pageNumber"`
	PageSize     int  `json:"pageSize"`
	TotalPages   int  `json:"totalPages"`
}

// NewPagedResult wraps a page of items. A page size of zero or less is
// rejected with ErrInvalidPageSize rather than dividing by zero.
func NewPagedResult[T any](items []*T, totalRecords, pageNumber, pageSize int) (*PagedResult[T], error) {
	if pageSize <= 0 {
		return nil, ErrInvalidPageSize
	}
	if items == nil {
		items = make([]*T, 0)
	}
	return &PagedResult[T]{
		Items:        items,
		TotalRecords: totalRecords,
		PageNumber:   pageNumber,
		PageSize:     pageSize,
		TotalPages:   totalPages(totalRecords, pageSize),
	}, nil
}

// EmptyPagedResult is the zero-row envelope for a given page spec.
func EmptyPagedResult[T any](pageNumber, pageSize int) *PagedResult[T] {
	return &PagedResult[T]{
		Items:      make([]*T, 0),
		PageNumber: pageNumber,
		PageSize:   pageSize,
	}
}

func totalPages(totalRecords, pageSize int) int {
	if totalRecords <= 0 {
		return 0
	}
	return (totalRecords + pageSize - 1) / pageSize
}

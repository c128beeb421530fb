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

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
)

// FilterCriteria is a single per-column criterion: a normalized scalar value
// and an operator token. An absent operator means Equals.
type FilterCriteria struct {
	Value    Scalar `json:"value"`
	Operator string `json:"operator,omitempty"`
}

// NewFilterCriteria builds a criterion from an already-typed value.
func NewFilterCriteria(value any, operator string) (FilterCriteria, error) {
	s, err := ScalarOf(value)
	if err != nil {
		return FilterCriteria{}, err
	}
	return FilterCriteria{Value: s, Operator: operator}, nil
}

// Op returns the canonical operator for the criterion.
func (c FilterCriteria) Op() FilterOperator { return ParseOperator(c.Operator) }

// GenericFilter describes what a caller may ask of a paged query: per-column
// criteria keyed by column name, an optional sort spec, and a page spec.
type GenericFilter struct {
	Filters    map[string]FilterCriteria `json:"filters,omitempty"`
	SortColumn string                    `json:"sortColumn,omitempty"`
	SortOrder  string                    `json:"sortOrder,omitempty"`
	PageNumber int                       `json:"pageNumber"`
	PageSize   int                       `json:"pageSize"`
}

// GetPageNumber clamps the requested page number to >= 1.
func (f *GenericFilter) GetPageNumber() int {
	if f.PageNumber < 1 {
		return DefaultPageNumber
	}
	return f.PageNumber
}

// GetPageSize clamps the requested page size to >= 1, defaulting to 10.
func (f *GenericFilter) GetPageSize() int {
	if f.PageSize < 1 {
		return DefaultPageSize
	}
	return f.PageSize
}

// GetOffset returns the row offset implied by the page spec.
func (f *GenericFilter) GetOffset() int {
	return (f.GetPageNumber() - 1) * f.GetPageSize()
}

// GetSortDirection returns the validated sort direction.
func (f *GenericFilter) GetSortDirection() SortDirection {
	return ParseSortDirection(f.SortOrder)
}

// SearchParams drives the full-text search path: a search string, the
// organisation scope, and a page spec.
type SearchParams struct {
	SearchString   string `json:"searchString"`
	OrganisationID int64  `json:"organisationId"`
	PageNumber     int    `json:"pageNumber"`
	PageSize       int    `json:"pageSize"`
}

// GetPageNumber clamps the requested page number to >= 1.
func (p *SearchParams) GetPageNumber() int {
	if p.PageNumber < 1 {
		return DefaultPageNumber
	}
	return p.PageNumber
}

// GetPageSize clamps the requested page size to >= 1, defaulting to 10.
func (p *SearchParams) GetPageSize() int {
	if p.PageSize < 1 {
		return DefaultPageSize
	}
	return p.PageSize
}

// GetOffset returns the row offset implied by the page spec.
func (p *SearchParams) GetOffset() int {
	return (p.GetPageNumber() - 1) * p.GetPageSize()
}

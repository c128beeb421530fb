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

import "strings"

// Common illegal/default values used by enums.
const (
	IllegalValue = -1
	IllegalName  = "unknown"
)

// BaseEnum represents a basic enum contract used by domain types.
type BaseEnum interface {
	IsValid() bool
	Number() int
	String() string
	Name() string
}

// FilterOperator is the closed set of comparison operators a filter
// criterion may request. Tokens outside the set parse to OpUnknown and the
// criterion contributes no predicate.
type FilterOperator int

const (
	OpUnknown FilterOperator = IllegalValue

	OpEquals FilterOperator = iota
	OpContains
	OpGreaterThan
	OpGreaterOrEqual
	OpLessThan
	OpLessOrEqual
)

// ParseOperator canonicalizes an operator token case-insensitively. An empty
// token defaults to Equals, matching the wire contract.
func ParseOperator(token string) FilterOperator {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "", "EQUALS", "=":
		return OpEquals
	case "CONTAINS":
		return OpContains
	case "GT", ">":
		return OpGreaterThan
	case "GTE", ">=":
		return OpGreaterOrEqual
	case "LT", "<":
		return OpLessThan
	case "LTE", "<=":
		return OpLessOrEqual
	default:
		return OpUnknown
	}
}

func (op FilterOperator) IsValid() bool { return op != OpUnknown }

func (op FilterOperator) Number() int { return int(op) }

func (op FilterOperator) Name() string {
	switch op {
	case OpEquals:
		return "Equals"
	case OpContains:
		return "Contains"
	case OpGreaterThan:
		return "GT"
	case OpGreaterOrEqual:
		return "GTE"
	case OpLessThan:
		return "LT"
	case OpLessOrEqual:
		return "LTE"
	default:
		return IllegalName
	}
}

// String returns the SQL comparison token for the operator.
func (op FilterOperator) String() string {
	switch op {
	case OpEquals:
		return "="
	case OpContains:
		return "LIKE"
	case OpGreaterThan:
		return ">"
	case OpGreaterOrEqual:
		return ">="
	case OpLessThan:
		return "<"
	case OpLessOrEqual:
		return "<="
	default:
		return IllegalName
	}
}

// SortDirection is the validated ORDER BY direction.
type SortDirection int

const (
	SortAsc SortDirection = iota
	SortDesc
)

// ParseSortDirection treats anything other than case-insensitive "DESC" as
// ascending.
func ParseSortDirection(s string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(s), "DESC") {
		return SortDesc
	}
	return SortAsc
}

func (d SortDirection) IsValid() bool { return d == SortAsc || d == SortDesc }

func (d SortDirection) Number() int { return int(d) }

func (d SortDirection) Name() string { return d.String() }

func (d SortDirection) String() string {
	if d == SortDesc {
		return "DESC"
	}
	return "ASC"
}

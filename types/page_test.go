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

import (
	"errors"
	"testing"
)

func TestPagedResultTotalPages(t *testing.T) {
	cases := []struct {
		total, size, pages int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{25, 25, 1},
		{-3, 10, 0},
	}
	for _, tc := range cases {
		r, err := NewPagedResult[int](nil, tc.total, 1, tc.size)
		if err != nil {
			t.Fatalf("NewPagedResult(%d, %d): %v", tc.total, tc.size, err)
		}
		if r.TotalPages != tc.pages {
			t.Errorf("total=%d size=%d: TotalPages = %d, want %d", tc.total, tc.size, r.TotalPages, tc.pages)
		}
	}
}

func TestPagedResultRejectsZeroPageSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := NewPagedResult[int](nil, 10, 1, size); !errors.Is(err, ErrInvalidPageSize) {
			t.Fatalf("pageSize=%d: err = %v, want ErrInvalidPageSize", size, err)
		}
	}
}

func TestPagedResultItemsNeverNil(t *testing.T) {
	r, err := NewPagedResult[int](nil, 0, 1, 10)
	if err != nil {
		t.Fatalf("NewPagedResult: %v", err)
	}
	if r.Items == nil {
		t.Fatal("Items is nil, want empty slice")
	}
	if len(r.Items) != 0 {
		t.Fatalf("len(Items) = %d, want 0", len(r.Items))
	}
}

func TestEmptyPagedResult(t *testing.T) {
	r := EmptyPagedResult[string](3, 20)
	if r.Items == nil || len(r.Items) != 0 {
		t.Fatalf("Items = %v, want empty slice", r.Items)
	}
	if r.TotalRecords != 0 || r.TotalPages != 0 {
		t.Fatalf("counts = %d/%d, want 0/0", r.TotalRecords, r.TotalPages)
	}
	if r.PageNumber != 3 || r.PageSize != 20 {
		t.Fatalf("page spec = %d/%d, want 3/20", r.PageNumber, r.PageSize)
	}
}

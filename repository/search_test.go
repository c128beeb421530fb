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
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/knatz-personal/wits/entity"
	"github.com/knatz-personal/wits/types"
)

func TestSearchJoinsIndexAndScopesOrganisation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository[entity.User](db)

	mock.ExpectQuery(`SELECT count\(\*\) .*FROM "users" AS main JOIN "users_fts" AS fts ON fts\.rowid = main\."id" WHERE .+"fts"\."users_fts" MATCH 'beta'.+main\."is_deleted".+main\."organisation_id" = 42`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT main\.\* FROM "users" AS main JOIN "users_fts" AS fts .+ORDER BY bm25\("fts"\."users_fts"\) ASC, main\."id" DESC LIMIT 10`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "organisation_id"}).
			AddRow(9, "beta.tester", 42).
			AddRow(4, "beta.admin", 42))

	result, err := repo.Search(context.Background(), &types.SearchParams{
		SearchString:   "beta",
		OrganisationID: 42,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if result.TotalRecords != 2 || len(result.Items) != 2 {
		t.Fatalf("result = %+v", result)
	}
	if result.Items[0].Username != "beta.tester" {
		t.Fatalf("first match = %+v", result.Items[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSearchSkipsPageStatementWhenNoMatches(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository[entity.User](db)

	mock.ExpectQuery(`SELECT count\(\*\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	result, err := repo.Search(context.Background(), &types.SearchParams{
		SearchString:   "nothing",
		OrganisationID: 7,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(result.Items) != 0 || result.TotalPages != 0 {
		t.Fatalf("result = %+v", result)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSearchRejectsNilParams(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewRepository[entity.User](db)

	if _, err := repo.Search(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil params")
	}
}

func TestSearchClampsPageSpec(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository[entity.User](db)

	mock.ExpectQuery(`SELECT count\(\*\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`LIMIT 10`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "organisation_id"}).
			AddRow(1, "solo", 7))

	result, err := repo.Search(context.Background(), &types.SearchParams{
		SearchString:   "solo",
		OrganisationID: 7,
		PageNumber:     -2,
		PageSize:       0,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if result.PageNumber != 1 || result.PageSize != types.DefaultPageSize {
		t.Fatalf("page spec = %d/%d", result.PageNumber, result.PageSize)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

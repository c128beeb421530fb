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

package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestIsSQLErrorMySQL(t *testing.T) {
	cases := []struct {
		number uint16
		want   SQLError
	}{
		{1054, NoColumnErr},
		{1062, DuplicateKeyErr},
		{1048, NotNullViolationErr},
		{1216, ForeignKeyViolationErr},
		{1217, ForeignKeyViolationErr},
		{3819, CheckConstraintViolationErr},
		{1265, DataTruncatedErr},
		{9999, UnknownErr},
	}
	for _, tc := range cases {
		err := &mysql.MySQLError{Number: tc.number, Message: "boom"}
		is, kind := IsSQLError(err)
		if !is || kind != tc.want {
			t.Errorf("mysql %d: got %v/%v, want true/%v", tc.number, is, kind, tc.want)
		}
	}
}

func TestIsSQLErrorWrapped(t *testing.T) {
	inner := &mysql.MySQLError{Number: 1062, Message: "dup"}
	is, kind := IsSQLError(fmt.Errorf("insert users: %w", inner))
	if !is || kind != DuplicateKeyErr {
		t.Fatalf("wrapped mysql error: got %v/%v", is, kind)
	}
}

func TestIsSQLErrorMessageText(t *testing.T) {
	cases := []struct {
		msg  string
		want SQLError
	}{
		{"ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)", DuplicateKeyErr},
		{"UNIQUE constraint failed: users.username", DuplicateKeyErr},
		{"no such table: tickets", NoTableErr},
		{"no such column: nope", NoColumnErr},
		{"NOT NULL constraint failed: users.username", NotNullViolationErr},
		{"FOREIGN KEY constraint failed", ForeignKeyViolationErr},
		{"sql: no rows in result set", NoRowsErr},
	}
	for _, tc := range cases {
		is, kind := IsSQLError(errors.New(tc.msg))
		if !is || kind != tc.want {
			t.Errorf("%q: got %v/%v, want true/%v", tc.msg, is, kind, tc.want)
		}
	}
}

func TestIsSQLErrorUnrecognized(t *testing.T) {
	is, kind := IsSQLError(errors.New("context deadline exceeded"))
	if is || kind != UnknownErr {
		t.Fatalf("got %v/%v, want false/unknown", is, kind)
	}
}

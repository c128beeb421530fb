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

package entity

import (
	"reflect"
	"testing"

	"github.com/knatz-personal/wits/database"
)

func TestAllEntitiesRegistered(t *testing.T) {
	want := []interface{}{
		(*Organisation)(nil),
		(*Company)(nil),
		(*User)(nil),
		(*ProjectType)(nil),
		(*TicketStatus)(nil),
		(*TicketType)(nil),
		(*TaskType)(nil),
		(*Project)(nil),
		(*UserProject)(nil),
		(*Employee)(nil),
		(*Ticket)(nil),
		(*ActivityLog)(nil),
	}

	registered := database.RegisteredEntities()
	byType := make(map[reflect.Type]int, len(registered))
	for i, m := range registered {
		byType[reflect.TypeOf(m)] = i
	}

	for _, w := range want {
		if _, ok := byType[reflect.TypeOf(w)]; !ok {
			t.Errorf("%T is not registered", w)
		}
	}
	// Lookup tables come before the rows that reference them.
	if byType[reflect.TypeOf((*Ticket)(nil))] < byType[reflect.TypeOf((*Project)(nil))] {
		t.Error("tickets registered before projects")
	}
	if byType[reflect.TypeOf((*Project)(nil))] < byType[reflect.TypeOf((*ProjectType)(nil))] {
		t.Error("projects registered before project types")
	}
}

func TestTicketRef(t *testing.T) {
	ticket := &Ticket{ProjectCode: "CORE"}
	ticket.ID = 42
	if got := ticket.TicketRef(); got != "CORE-00000042" {
		t.Fatalf("TicketRef() = %q", got)
	}
}

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
	"github.com/knatz-personal/wits/database"

	"github.com/uptrace/bun"
)

// TicketType classifies a ticket (defect, change request, task).
type TicketType struct {
	bun.BaseModel `bun:"table:ticket_types,alias:tt"`
	BaseEntity

	Name  string `bun:"name,notnull,unique" json:"name"`
	Order int    `bun:"display_order" json:"order"`
}

func init() {
	database.RegisterEntity((*TicketType)(nil), 37)
}

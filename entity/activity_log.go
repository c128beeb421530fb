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
	"time"

	"github.com/knatz-personal/wits/database"

	"github.com/uptrace/bun"
)

// ActivityLog records work logged against a ticket.
type ActivityLog struct {
	bun.BaseModel `bun:"table:activity_logs,alias:al"`
	BaseEntity

	TicketID    int64     `bun:"ticket_id,notnull" json:"ticketId"`
	TypeID      int64     `bun:"type_id,notnull" json:"typeId"`
	EntryDate   time.Time `bun:"entry_date,nullzero,notnull" json:"entryDate"`
	LoggedBy    string    `bun:"logged_by,notnull" json:"loggedBy"`
	Description string    `bun:"description,notnull" json:"description"`
	FilePath    string    `bun:"file_path" json:"filePath,omitempty"`
}

func init() {
	database.RegisterEntity((*ActivityLog)(nil), 60)
}

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
	"fmt"
	"time"

	"github.com/knatz-personal/wits/database"

	"github.com/uptrace/bun"
)

// Ticket is a logged defect or work item on a project. Tickets are
// organisation-scoped so they can participate in the search path.
type Ticket struct {
	bun.BaseModel `bun:"table:tickets,alias:t"`
	BaseEntity

	Summary            string     `bun:"summary,notnull" json:"summary"`
	Description        string     `bun:"description" json:"description,omitempty"`
	TypeID             int        `bun:"type_id,notnull" json:"typeId"`
	StatusID           int        `bun:"status_id,notnull" json:"statusId"`
	PriorityID         int        `bun:"priority_id" json:"priorityId"`
	DateCreated        time.Time  `bun:"date_created,nullzero" json:"dateCreated"`
	DateResolved       *time.Time `bun:"date_resolved,nullzero" json:"dateResolved,omitempty"`
	LoggedByUsername   string     `bun:"logged_by_username,notnull" json:"loggedByUsername"`
	Reference          string     `bun:"reference,notnull" json:"reference"`
	NextAction         string     `bun:"next_action" json:"nextAction,omitempty"`
	Assignee           *int64     `bun:"assignee,nullzero" json:"assignee,omitempty"`
	ReportedByUsername string     `bun:"reported_by_username,notnull" json:"reportedByUsername"`
	ContactEmail       string     `bun:"contact_email" json:"contactEmail,omitempty"`
	Details            string     `bun:"details" json:"details,omitempty"`
	ProjectID          int64      `bun:"project_id,notnull" json:"projectId"`
	ProjectCode        string     `bun:"project_code,notnull" json:"projectCode"`
	OrganisationID     int64      `bun:"organisation_id,notnull" json:"organisationId"`
}

// TicketRef is the human-facing reference, the project code followed by the
// zero-padded identifier, e.g. CORE-00000042.
func (t *Ticket) TicketRef() string {
	return fmt.Sprintf("%s-%08d", t.ProjectCode, t.ID)
}

func init() {
	database.RegisterEntity((*Ticket)(nil), 55)
}

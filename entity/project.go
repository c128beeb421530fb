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

// Project groups tickets under an organisation.
type Project struct {
	bun.BaseModel `bun:"table:projects,alias:p"`
	BaseEntity

	Code             string `bun:"code,notnull,unique" json:"code"`
	Name             string `bun:"name,notnull" json:"name"`
	Description      string `bun:"description,notnull" json:"description"`
	Type             int    `bun:"type" json:"type"`
	AdminUserName    string `bun:"admin_user_name,notnull" json:"adminUserName"`
	EmailOnNewDefect bool   `bun:"email_on_new_defect" json:"emailOnNewDefect"`
	OrganisationID   int64  `bun:"organisation_id,notnull" json:"organisationId"`
	ProjectGroup     string `bun:"project_group" json:"projectGroup,omitempty"`
}

func init() {
	database.RegisterEntity((*Project)(nil), 40)
}

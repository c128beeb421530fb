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

// UserProject links a user to a project they may log tickets against.
// The username and code are denormalised alongside the identifiers, matching
// how the membership rows are written.
type UserProject struct {
	bun.BaseModel `bun:"table:user_projects,alias:up"`
	BaseEntity

	Username    string `bun:"username,notnull" json:"username"`
	ProjectCode string `bun:"project_code,notnull" json:"projectCode"`
	ProjectID   int64  `bun:"project_id,notnull" json:"projectId"`
	UserID      int64  `bun:"user_id,notnull" json:"userId"`
}

func init() {
	database.RegisterEntity((*UserProject)(nil), 45)
}

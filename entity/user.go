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

// User is an account within an organisation. The password column holds the
// externally-produced hash; this layer never hashes or verifies it.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`
	BaseEntity

	Username       string `bun:"username,notnull,unique" json:"username"`
	Password       string `bun:"password,notnull" json:"-"`
	FullName       string `bun:"full_name,notnull" json:"fullName"`
	Status         int    `bun:"status" json:"status"`
	RoleLevel      int    `bun:"role_level" json:"roleLevel"`
	TelephoneNos   string `bun:"telephone_nos" json:"telephoneNos"`
	OrganisationID int64  `bun:"organisation_id,notnull" json:"organisationId"`
	Organisation   string `bun:"organisation" json:"organisation"`
	EmailAddress   string `bun:"email_address,notnull" json:"emailAddress"`
}

func init() {
	database.RegisterEntity((*User)(nil), 30)
}

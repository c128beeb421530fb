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

// Employee is a staff record assignable to tickets.
type Employee struct {
	bun.BaseModel `bun:"table:employees,alias:e"`
	BaseEntity

	Code   string `bun:"code,notnull,unique" json:"code"`
	Name   string `bun:"name,notnull" json:"name"`
	Status int    `bun:"status" json:"status"`
}

func init() {
	database.RegisterEntity((*Employee)(nil), 50)
}

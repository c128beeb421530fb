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

// TaskType is a lookup row classifying employee timesheet tasks.
type TaskType struct {
	bun.BaseModel `bun:"table:task_types,alias:tk"`
	BaseEntity

	Code        string `bun:"code,notnull,unique" json:"code"`
	Description string `bun:"description,notnull" json:"description"`
	Order       int    `bun:"display_order" json:"order"`
}

func init() {
	database.RegisterEntity((*TaskType)(nil), 38)
}

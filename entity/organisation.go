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

// Organisation is the tenant boundary every scoped query filters on.
type Organisation struct {
	bun.BaseModel `bun:"table:organisations,alias:org"`
	BaseEntity

	Name string `bun:"name,notnull" json:"name"`
	Code string `bun:"code,notnull,unique" json:"code"`
}

func init() {
	database.RegisterEntity((*Organisation)(nil), 10)
}

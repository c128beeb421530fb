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

// Package entity declares the persisted record types. Every entity embeds
// BaseEntity and is registered with the database model registry at init, so
// its bindable column set is declared once at process start.
package entity

import "time"

// BaseEntity carries the fields shared by every persisted record: the
// identifier, the soft-delete flag, and the audit timestamps. Rows with
// IsDeleted set are excluded from every default read path.
type BaseEntity struct {
	ID           int64      `bun:"id,pk,autoincrement" json:"id"`
	IsDeleted    bool       `bun:"is_deleted,notnull,default:false" json:"isDeleted"`
	Created      time.Time  `bun:"created,nullzero,notnull,default:current_timestamp" json:"created"`
	LastModified *time.Time `bun:"last_modified,nullzero" json:"lastModified,omitempty"`
}

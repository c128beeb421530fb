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

package database

import (
	"sort"
	"sync"
)

// entityRegistry collects the persisted entity types declared at init time.
// Priority orders registration with Bun so referenced tables (organisations)
// come before the tables referencing them (users, projects).
type entityRegistry struct {
	mu      sync.Mutex
	entries []entityEntry
}

type entityEntry struct {
	instance interface{}
	priority int
}

var entities entityRegistry

// RegisterEntity declares a persisted entity type. instance must be a nil
// struct pointer carrying Bun tags, e.g. (*User)(nil). Entities register
// themselves from init funcs; lower priorities are handed to Bun first.
func RegisterEntity(instance interface{}, priority int) {
	entities.mu.Lock()
	defer entities.mu.Unlock()
	entities.entries = append(entities.entries, entityEntry{instance: instance, priority: priority})
}

// RegisteredEntities returns the declared entity instances in ascending
// priority order, ready to hand to bun.DB.RegisterModel.
func RegisteredEntities() []interface{} {
	entities.mu.Lock()
	entries := make([]entityEntry, len(entities.entries))
	copy(entries, entities.entries)
	entities.mu.Unlock()

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].priority < entries[j].priority
	})

	instances := make([]interface{}, len(entries))
	for i, e := range entries {
		instances[i] = e.instance
	}
	return instances
}

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

package types

import "errors"

var (
	// ErrUnsupportedValueShape reports a filter value that is a JSON object
	// or array rather than a scalar.
	ErrUnsupportedValueShape = errors.New("filter value must be a scalar, not an object or array")

	// ErrInvalidPageSize reports a page size of zero or less.
	ErrInvalidPageSize = errors.New("page size must be greater than zero")
)

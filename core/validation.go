// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// ValidateFilter validates a FilterCriteria according to domain rules.
//
// Validation rules:
//   - ContainsCharacter, when present, must be exactly one character
//     (one byte; multi-byte runes are rejected)
//
// A nil criteria is valid and imposes no constraints. Callers must
// validate before scanning any records, so an invalid filter is
// reported even when the store is empty.
func ValidateFilter(criteria *FilterCriteria) error {
	if criteria == nil {
		return nil
	}

	if criteria.ContainsCharacter != nil && len(*criteria.ContainsCharacter) != 1 {
		return fmt.Errorf("%w: %w", ErrInvalidFilter, ErrInvalidContainsCharacter)
	}

	return nil
}

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


// Package query evaluates structured filters against string records and
// translates small natural-language phrases into those same filters.
//
// The two halves are deliberately decoupled: Matches applies a
// core.FilterCriteria to a record, and Translate produces a
// core.FilterCriteria from a phrase. The natural-language path is a
// fixed, ordered rule set scanned over whitespace tokens with an
// advancing cursor, not a language model; unrecognized input never
// fails, it simply constrains nothing.
package query

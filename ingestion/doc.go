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


// Package ingestion bulk-loads raw strings into a record repository.
//
// Analysis is pure and embarrassingly parallel, so the pipeline fans
// each value out to a worker pool, analyzes it there, and inserts the
// resulting record. Content addressing makes the whole thing
// idempotent: re-ingesting a value is a conflict, which the pipeline
// counts as a duplicate rather than a failure.
package ingestion

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


// Package storage provides the storage abstraction layer for lexit.
//
// This package defines the repository interface that decouples storage
// implementation from business logic. Records are content-addressed:
// the key of a record is the SHA-256 hex digest of its value, so the
// same value always lands on the same key and a second insert of an
// identical value is a conflict, never a duplicate row.
//
// # Constructor Return Type Pattern
//
// This package follows a strict "return interface" pattern for public
// backend constructors:
//
//	repo := memory.NewStore()              // returns storage.RecordRepository
//	repo, err := badger.NewRecordRepository(backend)
//
// This keeps consumers decoupled from any particular backend and lets
// tests construct isolated store instances.
//
// # Backends
//
//   - memory: a map behind a single mutex. The default. All state is
//     process-lifetime; nothing survives a restart.
//   - badger: BadgerDB with MUS-serialized values. Shipped wirings
//     only ever open it in memory, so it is equally volatile; the
//     package itself can open a path for ad hoc tooling.
//
// # Thread Safety
//
// All repository implementations must be safe for concurrent use from
// multiple goroutines. Every operation observes a consistent state:
// List in particular returns a snapshot, never a view that interleaves
// with concurrent writes.
//
// # Context Support
//
// All repository methods accept context.Context. No operation blocks
// on I/O while holding internal locks, so critical sections are short
// and an abandoned caller never wedges the store.
package storage

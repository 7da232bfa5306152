// Package memory implements storage.RecordRepository as a map behind a
// single mutex. It is the default backend: the whole store lives and
// dies with the process.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/poiesic/lexit/core"
	"github.com/poiesic/lexit/storage"
)

// Store holds records keyed by content address behind one exclusive
// lock. The lock is held for the full duration of every operation,
// reads included, so operations are linearized and List always sees a
// consistent snapshot. The coarse lock is a deliberate trade-off: the
// operation set is small, nothing blocks while the lock is held, and
// the workload is not latency-critical enough to justify finer
// granularity.
type Store struct {
	mu      sync.Mutex
	records map[string]core.StringRecord
	now     func() time.Time
	closed  bool
}

var _ storage.RecordRepository = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used to stamp CreatedAt. Intended for
// tests; the default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates an empty in-memory record repository.
func NewStore(opts ...Option) storage.RecordRepository {
	s := &Store{
		records: make(map[string]core.StringRecord),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add stores record under its content address, stamping CreatedAt.
// Returns storage.ErrConflict when the address is already occupied;
// the stored state is untouched in that case.
func (s *Store) Add(ctx context.Context, record *core.StringRecord) (*core.StringRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, storage.ErrStorageClosed
	}
	if _, exists := s.records[record.Id]; exists {
		return nil, storage.ErrConflict
	}

	stored := *record
	stored.CreatedAt = s.now().UTC()
	s.records[record.Id] = stored

	out := stored
	return &out, nil
}

// GetByValue re-derives the content address of value and returns a
// copy of the matching record.
func (s *Store) GetByValue(ctx context.Context, value string) (*core.StringRecord, error) {
	id := core.IDFromContent(value)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, storage.ErrStorageClosed
	}
	record, exists := s.records[id]
	if !exists {
		return nil, storage.ErrNotFound
	}

	out := record
	return &out, nil
}

// List returns copies of every stored record. Map iteration dictates
// the order, which is unspecified.
func (s *Store) List(ctx context.Context) ([]*core.StringRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, storage.ErrStorageClosed
	}

	records := make([]*core.StringRecord, 0, len(s.records))
	for _, record := range s.records {
		out := record
		records = append(records, &out)
	}
	return records, nil
}

// DeleteByValue re-derives the content address of value and removes
// the matching record.
func (s *Store) DeleteByValue(ctx context.Context, value string) error {
	id := core.IDFromContent(value)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrStorageClosed
	}
	if _, exists := s.records[id]; !exists {
		return storage.ErrNotFound
	}

	delete(s.records, id)
	return nil
}

// Len reports the number of stored records.
func (s *Store) Len(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, storage.ErrStorageClosed
	}
	return len(s.records), nil
}

// Close marks the store closed. Subsequent operations fail with
// storage.ErrStorageClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.records = nil
	return nil
}

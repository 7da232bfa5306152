package storage

import (
	"context"

	"github.com/poiesic/lexit/core"
)

// RecordRepository provides content-addressed storage of string
// records. Implementations must be thread-safe and support concurrent
// access; every method returns fresh copies, so no caller ever holds a
// reference into the store's own state.
type RecordRepository interface {
	// Add stores a new record under its content address and stamps
	// CreatedAt at insertion. Returns the stored record, or
	// ErrConflict if a record with the same id already exists.
	Add(ctx context.Context, record *core.StringRecord) (*core.StringRecord, error)

	// GetByValue re-derives the content address of value and returns
	// the matching record. Returns ErrNotFound if absent.
	GetByValue(ctx context.Context, value string) (*core.StringRecord, error)

	// List returns every stored record as a consistent snapshot.
	// Order is unspecified; insertion order is not a contract.
	List(ctx context.Context) ([]*core.StringRecord, error)

	// DeleteByValue re-derives the content address of value and
	// removes the matching record. Returns ErrNotFound if absent.
	DeleteByValue(ctx context.Context, value string) error

	// Len reports the number of stored records.
	Len(ctx context.Context) (int, error)

	// Close closes the repository and releases its resources.
	Close() error
}

package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/lexit/core"
	"github.com/poiesic/lexit/storage"
)

// RecordRepository implements storage.RecordRepository for BadgerDB.
// Records are stored MUS-serialized under their content address.
type RecordRepository struct {
	backend *Backend
	now     func() time.Time
}

var _ storage.RecordRepository = (*RecordRepository)(nil)

// Option configures a RecordRepository.
type Option func(*RecordRepository)

// WithClock overrides the clock used to stamp CreatedAt. Intended for
// tests; the default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *RecordRepository) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRecordRepository creates a new RecordRepository on backend. The
// backend stays owned by the caller; closing the repository does not
// close it.
func NewRecordRepository(backend *Backend, opts ...Option) (storage.RecordRepository, error) {
	r := &RecordRepository{
		backend: backend,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Close releases the repository. The underlying backend is closed by
// its owner.
func (r *RecordRepository) Close() error {
	return nil
}

// Add stores record under its content address, stamping CreatedAt.
func (r *RecordRepository) Add(ctx context.Context, record *core.StringRecord) (*core.StringRecord, error) {
	stored := *record

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeStringRecordKey(stored.Id)

		_, err := tx.Get(key)
		if err == nil {
			return storage.ErrConflict
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		stored.CreatedAt = r.now().UTC()
		if err := tx.Set(key, storage.MarshalStringRecord(&stored)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}

	return &stored, nil
}

// GetByValue re-derives the content address of value and returns the
// matching record.
func (r *RecordRepository) GetByValue(ctx context.Context, value string) (*core.StringRecord, error) {
	id := core.IDFromContent(value)

	var result *core.StringRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readStringRecord(tx, makeStringRecordKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// List returns every stored record in a single read transaction, so
// the result is a consistent snapshot.
func (r *RecordRepository) List(ctx context.Context) ([]*core.StringRecord, error) {
	records := make([]*core.StringRecord, 0)
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(stringRecordPrefix + ":")
		it := tx.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				record, err := storage.UnmarshalStringRecord(val)
				if err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteByValue re-derives the content address of value and removes
// the matching record.
func (r *RecordRepository) DeleteByValue(ctx context.Context, value string) error {
	id := core.IDFromContent(value)

	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeStringRecordKey(id)

		_, err := tx.Get(key)
		if err == badger.ErrKeyNotFound {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}

		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Len reports the number of stored records.
func (r *RecordRepository) Len(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(stringRecordPrefix + ":")
		opts.PrefetchValues = false
		it := tx.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// readStringRecord reads and deserializes a record by key.
// Returns nil (no error) if the key does not exist.
func readStringRecord(tx *badger.Txn, key []byte) (*core.StringRecord, error) {
	item, err := tx.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var record *core.StringRecord
	err = item.Value(func(val []byte) error {
		record, err = storage.UnmarshalStringRecord(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

package ingestion

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/lexit/core"
	"github.com/poiesic/lexit/storage"
)

// Pipeline loads raw strings into a record repository through a worker
// pool. Each value is analyzed and inserted on the pool; duplicates
// are expected under content addressing and counted, not failed.
type Pipeline struct {
	records storage.RecordRepository
	pool    *ants.Pool
	logger  *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(records storage.RecordRepository, opts ...Option) (*Pipeline, error) {
	if records == nil {
		return nil, ErrRecordRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		records: records,
		pool:    pool,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Result summarizes one ingestion batch.
type Result struct {
	Inserted   int
	Duplicates int
	Failed     int
}

// Ingest analyzes and stores every value, fanning the work out to the
// pool and waiting for the batch to drain. Individual failures are
// logged and counted; only a refusal by the pool itself aborts the
// batch.
func (p *Pipeline) Ingest(ctx context.Context, values ...string) (Result, error) {
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		result Result
	)

	for _, value := range values {
		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()

			_, err := p.records.Add(ctx, core.NewStringRecord(value))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				result.Inserted++
			case errors.Is(err, storage.ErrConflict):
				result.Duplicates++
			default:
				result.Failed++
				p.logger.Error("error ingesting value", "err", err)
			}
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return result, err
		}
	}

	wg.Wait()
	return result, nil
}

// Release shuts the worker pool down.
func (p *Pipeline) Release() {
	p.pool.Release()
}

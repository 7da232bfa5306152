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


package main

import (
	"bufio"
	"context"
	"fmt"
	"iter"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/lexit"
	"github.com/poiesic/lexit/ingestion"
	"github.com/poiesic/lexit/server"
	"github.com/poiesic/lexit/storage"
	"github.com/poiesic/lexit/storage/badger"
	"github.com/poiesic/lexit/storage/memory"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "lexit",
		Usage: "Content-addressed string analysis service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API server",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Usage:   "TCP port to listen on",
						Value:   8080,
						EnvVars: []string{"PORT"},
					},
					&cli.StringFlag{
						Name:  "store",
						Usage: "Storage backend (memory, badger)",
						Value: "memory",
					},
					&cli.StringFlag{
						Name:  "seed-file",
						Usage: "File of strings to ingest before serving, one per line",
					},
					&cli.IntFlag{
						Name:  "seed-batch-size",
						Usage: "Number of seed strings submitted to the pipeline at a time",
						Value: 64,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand(c *cli.Context) error {
	ctx := context.Background()

	records, cleanup, err := openRepository(c.String("store"))
	if err != nil {
		return err
	}
	defer cleanup()

	service, err := lexit.NewService(records)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	defer service.Close()

	if seedFile := c.String("seed-file"); seedFile != "" {
		batchSize := c.Int("seed-batch-size")
		if batchSize <= 0 {
			return fmt.Errorf("seed-batch-size must be greater than 0")
		}
		if err := seedFromFile(ctx, service, seedFile, batchSize); err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}
	}

	srv, err := server.New(service)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	addr := fmt.Sprintf(":%d", c.Int("port"))
	slog.Info("starting server", "addr", addr, "store", c.String("store"))
	return srv.Run(addr)
}

// openRepository builds the record repository named by the store flag.
// The returned cleanup releases the repository and any backend under it.
func openRepository(store string) (storage.RecordRepository, func(), error) {
	switch store {
	case "memory":
		repo := memory.NewStore()
		return repo, func() { repo.Close() }, nil
	case "badger":
		// Badger runs in its in-memory mode here: the service stores
		// nothing across restarts regardless of backend.
		backend, err := badger.OpenBackend("", true)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open badger backend: %w", err)
		}
		repo, err := badger.NewRecordRepository(backend)
		if err != nil {
			backend.Close()
			return nil, nil, fmt.Errorf("failed to create repository: %w", err)
		}
		return repo, func() {
			repo.Close()
			backend.Close()
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q: must be one of memory, badger", store)
	}
}

func seedFromFile(ctx context.Context, service *lexit.Service, filename string, batchSize int) error {
	pipeline, err := service.NewIngestionPipeline()
	if err != nil {
		return err
	}
	defer pipeline.Release()

	source, err := linesFromFile(filename)
	if err != nil {
		return err
	}

	result, err := ingestBatched(ctx, pipeline, source, batchSize)
	if err != nil {
		return err
	}

	slog.Info("seeding complete",
		"file", filename,
		"inserted", result.Inserted,
		"duplicates", result.Duplicates,
		"failed", result.Failed)
	return nil
}

// linesFromFile returns an iterator over lines in a file.
func linesFromFile(filename string) (iter.Seq[string], error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	return func(yield func(string) bool) {
		defer f.Close()
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
	}, nil
}

// ingestBatched reads from a source iterator and ingests values in batches,
// accumulating the per-batch results into a single total.
func ingestBatched(ctx context.Context, pipeline *ingestion.Pipeline, source iter.Seq[string], batchSize int) (ingestion.Result, error) {
	var total ingestion.Result
	batch := make([]string, 0, batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		result, err := pipeline.Ingest(ctx, batch...)
		if err != nil {
			return err
		}
		total.Inserted += result.Inserted
		total.Duplicates += result.Duplicates
		total.Failed += result.Failed
		batch = batch[:0]
		return nil
	}

	for line := range source {
		batch = append(batch, line)
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}

	return total, flush()
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

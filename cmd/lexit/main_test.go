package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/lexit"
	"github.com/poiesic/lexit/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSetupLogger(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected slog.Level
		}{
			{"debug", slog.LevelDebug},
			{"info", slog.LevelInfo},
			{"warn", slog.LevelWarn},
			{"error", slog.LevelError},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "log-level",
							Value: "info",
						},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error {
						return nil
					},
				}

				err := app.Run([]string{"test", "--log-level", tc.input})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		testCases := []string{
			"DEBUG",
			"Info",
			"WaRn",
			"ERROR",
		}

		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "log-level",
							Value: "info",
						},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error {
						return nil
					},
				}

				err := app.Run([]string{"test", "--log-level", tc})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		app := &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "log-level",
					Value: "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				return nil
			},
		}

		err := app.Run([]string{"test", "--log-level", "invalid"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestOpenRepository(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		repo, cleanup, err := openRepository("memory")
		require.NoError(t, err)
		require.NotNil(t, repo)
		cleanup()
	})

	t.Run("badger", func(t *testing.T) {
		repo, cleanup, err := openRepository("badger")
		require.NoError(t, err)
		require.NotNil(t, repo)
		cleanup()
	})

	t.Run("unknown backend fails", func(t *testing.T) {
		_, _, err := openRepository("postgres")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown store")
	})
}

func TestSeedFromFile(t *testing.T) {
	seedFile := filepath.Join(t.TempDir(), "seed.txt")
	content := "racecar\nhello world\nracecar\n"
	require.NoError(t, os.WriteFile(seedFile, []byte(content), 0o644))

	repo := memory.NewStore()
	service, err := lexit.NewService(repo)
	require.NoError(t, err)
	defer service.Close()

	require.NoError(t, seedFromFile(context.Background(), service, seedFile, 2))

	records, err := service.ListAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestSeedFromFile_MissingFile(t *testing.T) {
	repo := memory.NewStore()
	service, err := lexit.NewService(repo)
	require.NoError(t, err)
	defer service.Close()

	err = seedFromFile(context.Background(), service, "/nonexistent/seed.txt", 2)
	require.Error(t, err)
}

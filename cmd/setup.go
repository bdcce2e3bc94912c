package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/chris-regnier/notectl/internal/config"
	"github.com/chris-regnier/notectl/internal/storage"
	"github.com/chris-regnier/notectl/internal/storage/markdown"
	"github.com/chris-regnier/notectl/internal/storage/sqlite"
)

// setupLogger opens the log file and returns a text logger writing to it.
// The TUI owns the terminal, so nothing is logged to stderr.
func setupLogger(cfg *config.Config, debug bool) (*slog.Logger, io.Closer, error) {
	path := config.LogPath(cfg)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(handler), f, nil
}

// openStorage initializes the configured backend and returns it with a
// human-readable location for the help screen.
func openStorage(cfg *config.Config, logger *slog.Logger) (storage.Storage, string, error) {
	switch cfg.Storage {
	case sqlite.DriverLibSQL, sqlite.DriverSQLite:
		url := config.ResolveDatabaseURL(cfg)
		s, err := sqlite.Open(cfg.Storage, url, logger)
		if err != nil {
			return nil, "", fmt.Errorf("initializing %s storage: %w", cfg.Storage, err)
		}
		return s, url, nil
	case "markdown":
		s, err := markdown.New(cfg.DataDir)
		if err != nil {
			return nil, "", fmt.Errorf("initializing markdown storage: %w", err)
		}
		return s.WithLogger(logger), filepath.Join(cfg.DataDir, "notes"), nil
	default:
		return nil, "", fmt.Errorf("%w: unknown storage backend: %s", storage.ErrValidation, cfg.Storage)
	}
}

package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// newLogger returns a text logger writing to logFile when debug is set. The
// terminal belongs to the TUI, so without debug all records are discarded.
func newLogger(logFile string, debug bool) (*slog.Logger, func(), error) {
	if !debug {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return logger, func() { _ = file.Close() }, nil
}

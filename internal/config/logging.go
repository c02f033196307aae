package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// NewLogger returns a text logger writing to w at the configured level.
func NewLogger(c Config, w io.Writer) (*slog.Logger, error) {
	lvl, err := ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// OpenLogFile appends to forklifts.log in the state directory. The terminal
// belongs to the game screen, so the local game logs here instead of stderr.
func OpenLogFile(c Config) (*slog.Logger, io.Closer, error) {
	dir, err := StateDir()
	if err != nil {
		return nil, nil, fmt.Errorf("log dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, appName+".log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger, err := NewLogger(c, f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

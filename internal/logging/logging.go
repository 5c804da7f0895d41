// Package logging sets up the application logger. The TUI owns the
// terminal, so logs go to a file under the config directory.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// DefaultLogPath returns the default log file path: ~/.config/tabdash/tabdash.log
func DefaultLogPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "tabdash", "tabdash.log"), nil
}

// New creates a file-backed logger. Creates the directory if needed.
func New(path string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	return cfg.Build()
}

// NewOrNop returns a file logger, or a no-op logger if the file cannot
// be opened. Logging must never block startup.
func NewOrNop(path string) *zap.Logger {
	log, err := New(path)
	if err != nil {
		return zap.NewNop()
	}
	return log
}

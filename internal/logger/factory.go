package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Printer creates a plain logger for user-facing output on w.
// It prints at every level and carries no timestamp or prefix.
func Printer(w io.Writer) *log.Logger {
	return NewWithConfig(w, "", log.DebugLevel, false, false, log.TextFormatter)
}

// RedirectToFile points the global logger at a size-rotated file, keeping the current level.
// The terminal UI owns the screen, so debug output has to go elsewhere.
func RedirectToFile(path string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log dir for %s: %w", path, err)
	}
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // MB
		MaxBackups: 2,
		MaxAge:     7,
	}
	log.SetOutput(w)
	log.SetReportTimestamp(true)
	return w, nil
}

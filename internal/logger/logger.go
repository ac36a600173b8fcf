// Package logger provides the process-wide logger.
//
// Output goes to stderr so it never mixes with command output or the MCP
// stdio stream. The default level is warn; SetVerbose lowers it to debug.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

var (
	level     = new(slog.LevelVar)
	singleton atomic.Pointer[slog.Logger]
)

func init() {
	level.Set(slog.LevelWarn)
	singleton.Store(newLogger(os.Stderr))
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetVerbose toggles debug output.
func SetVerbose(verbose bool) {
	if verbose {
		level.Set(slog.LevelDebug)
		return
	}
	level.Set(slog.LevelWarn)
}

// SetOutput redirects log output to w, keeping the current level.
func SetOutput(w io.Writer) {
	singleton.Store(newLogger(w))
}

// Get returns the underlying *slog.Logger for injection into libraries.
func Get() *slog.Logger {
	return singleton.Load()
}

// Debug logs a formatted message at debug level.
func Debug(format string, args ...any) {
	Get().Debug(fmt.Sprintf(format, args...))
}

// Info logs a formatted message at info level.
func Info(format string, args ...any) {
	Get().Info(fmt.Sprintf(format, args...))
}

// Warn logs a formatted message at warning level.
func Warn(format string, args ...any) {
	Get().Warn(fmt.Sprintf(format, args...))
}

// Error logs a formatted message at error level.
func Error(format string, args ...any) {
	Get().Error(fmt.Sprintf(format, args...))
}

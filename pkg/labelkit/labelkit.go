// Package labelkit binds color lookup tables to label selector widgets.
//
// A LabelComboBox mirrors a ColorSource (indexed RGBA colors with names) into
// an ItemList of swatch rows, optionally preceded by a "None" row, and
// reports every selection change to its subscribers as a color, a name and
// a logical index, always in that order.
//
// The package itself draws nothing. The ui package hosts a LabelComboBox in
// an SDL window and the tui package hosts one in a terminal.
package labelkit

import (
	"io"
	"log/slog"

	"github.com/BrandonKowalski/labelkit/pkg/labelkit/internal"
)

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before anything logs to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetLogOutput sends all log output to w instead of stdout and the log file.
// Call before anything logs to take effect.
func SetLogOutput(w io.Writer) {
	internal.SetLogOutput(w)
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetInternalLogLevel sets the minimum level for widget diagnostics.
// Defaults to error.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// CloseLogger closes the log file, if one was opened.
func CloseLogger() {
	internal.CloseLogger()
}

// SetLanguage selects the language of fixed labels such as the "None" row.
// Takes effect on the next rebuild.
func SetLanguage(tag string) error {
	return internal.SetLanguage(tag)
}

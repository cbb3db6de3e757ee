// Package output provides terminal output utilities.
package output

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the global logger instance. Pipeline stages log through it;
// per-bundle and per-unit scopes are derived with BundleLogger and
// UnitLogger.
var Logger *log.Logger

func init() {
	Logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// LogOptions configures the global logger.
type LogOptions struct {
	// Verbose enables debug-level stage logging.
	Verbose bool

	// Timestamps forces timestamps on or off; nil follows Verbose.
	Timestamps *bool
}

// SetupLogging reconfigures the global logger. Verbose builds log every
// pipeline stage per unit; default builds log warnings and the final summary.
func SetupLogging(opts LogOptions) {
	level := log.InfoLevel
	if opts.Verbose {
		level = log.DebugLevel
	}

	timestamps := opts.Verbose
	if opts.Timestamps != nil {
		timestamps = *opts.Timestamps
	}

	Logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    opts.Verbose,
	})
}

// BundleLogger returns a logger scoped to one bundle's build.
func BundleLogger(name string) *log.Logger {
	return Logger.With("bundle", name)
}

// UnitLogger returns a logger scoped to one unit's transform.
func UnitLogger(bundle, unit string) *log.Logger {
	return Logger.With("bundle", bundle, "unit", unit)
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

// Fatal logs a fatal message and exits.
func Fatal(msg string, keyvals ...interface{}) {
	Logger.Fatal(msg, keyvals...)
}

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	os.Stdout.WriteString(msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	os.Stdout.WriteString(msg + "\n")
}

package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ConsoleLogger writes log messages to stderr through zerolog.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	log zerolog.Logger
}

// NewConsoleLogger creates a ConsoleLogger writing human-readable lines to stderr.
// If verbose is true, Verbose() calls will produce output.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return newConsoleLogger(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}, verbose)
}

// NewPlainLogger creates a ConsoleLogger writing uncolored, timestamp-free lines to w.
func NewPlainLogger(w io.Writer, verbose bool) *ConsoleLogger {
	return newConsoleLogger(zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}, verbose)
}

func newConsoleLogger(out zerolog.ConsoleWriter, verbose bool) *ConsoleLogger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return &ConsoleLogger{
		log: zerolog.New(zerolog.SyncWriter(out)).Level(level).With().Timestamp().Logger(),
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	l.log.Debug().Msg(render(format, args))
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.log.Info().Msg(render(format, args))
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.log.Error().Msg(render(format, args))
}

func render(format string, args []interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// Package logger provides the structured logger used across panelsched.
package logger

import (
	"io"
	"os"
)

// Logger is the logging surface the scheduler and CLI depend on.
type Logger interface {
	Debugf(format string, args ...any)
	Debugw(msg string, fields map[string]any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no-op methods.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any)         {}
func (NopLogger) Debugw(string, map[string]any) {}
func (NopLogger) Infof(string, ...any)          {}
func (NopLogger) Warnf(string, ...any)          {}
func (NopLogger) Errorf(string, ...any)         {}

// Options selects the level and output format of a zerolog-backed Logger.
type Options struct {
	// Level is a zerolog level name; empty or unknown means "info".
	Level string

	// Format is "json" or "console"; empty means "json".
	Format string

	// Out defaults to os.Stderr so stdout stays free for command output.
	Out io.Writer
}

// New returns a JSON Logger at info level on stderr for the given component.
func New(component string) Logger {
	return NewZerologLogger(component, Options{})
}

func (o Options) out() io.Writer {
	if o.Out == nil {
		return os.Stderr
	}

	return o.Out
}

package calculation

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Logger is a minimal logging interface for the calculation engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// WriterLogger writes leveled text records to an io.Writer through log/slog.
// Debug records are dropped unless verbose is set. Records carry no timestamp so
// output for a given run is reproducible.
type WriterLogger struct {
	level  *slog.LevelVar
	logger *slog.Logger
}

// NewWriterLogger creates a WriterLogger
func NewWriterLogger(w io.Writer, verbose bool) *WriterLogger {
	level := new(slog.LevelVar)
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	l := &WriterLogger{level: level, logger: slog.New(handler)}
	l.SetVerbose(verbose)
	return l
}

// SetVerbose toggles debug records
func (l *WriterLogger) SetVerbose(verbose bool) {
	if verbose {
		l.level.Set(slog.LevelDebug)
		return
	}
	l.level.Set(slog.LevelInfo)
}

func (l *WriterLogger) log(level slog.Level, format string, args ...any) {
	ctx := context.Background()
	if !l.logger.Enabled(ctx, level) {
		return
	}
	l.logger.Log(ctx, level, strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
}

func (l *WriterLogger) Debugf(format string, args ...any) { l.log(slog.LevelDebug, format, args...) }
func (l *WriterLogger) Infof(format string, args ...any)  { l.log(slog.LevelInfo, format, args...) }
func (l *WriterLogger) Warnf(format string, args ...any)  { l.log(slog.LevelWarn, format, args...) }
func (l *WriterLogger) Errorf(format string, args ...any) { l.log(slog.LevelError, format, args...) }

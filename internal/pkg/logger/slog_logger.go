package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/natefinch/lumberjack"
)

// slogLogger backs both the console and the file logger; only the handler differs
type slogLogger struct {
	logger *slog.Logger
	exit   func(code int)
}

// NewConsoleLogger creates a human readable logger writing to stdout
func NewConsoleLogger(level string) Logger {
	return newTextLogger(os.Stdout, level)
}

func newTextLogger(w io.Writer, level string) *slogLogger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	return &slogLogger{logger: slog.New(slog.NewTextHandler(w, opts)), exit: os.Exit}
}

// FileOptions controls rotation of the file logger
type FileOptions struct {
	Path       string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// NewFileLogger creates a JSON logger writing to a size-rotated file
func NewFileLogger(level string, opts FileOptions) Logger {
	writer := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAge,
		Compress:   opts.Compress,
	}
	return newJSONLogger(writer, level)
}

func newJSONLogger(w io.Writer, level string) *slogLogger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	return &slogLogger{logger: slog.New(slog.NewJSONHandler(w, opts)), exit: os.Exit}
}

func (l *slogLogger) Debug(args ...interface{}) {
	l.logger.Debug(formatArgs(args...))
}

func (l *slogLogger) Info(args ...interface{}) {
	l.logger.Info(formatArgs(args...))
}

func (l *slogLogger) Warn(args ...interface{}) {
	l.logger.Warn(formatArgs(args...))
}

func (l *slogLogger) Error(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
}

// Fatal logs at error level and terminates the process
func (l *slogLogger) Fatal(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
	l.exit(1)
}

// Panic logs at error level and panics with the formatted message
func (l *slogLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.logger.Error(msg)
	panic(msg)
}

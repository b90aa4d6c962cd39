package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/liuran001/SocialValidator-Go/validator"
)

// Logger wraps slog.Logger to satisfy validator.Logger.
type Logger struct {
	logger  *slog.Logger
	logFile *os.File // Keep reference to close on shutdown
}

// New creates a new Logger with configurable output format.
// Logs go to stderr, and additionally to filePath when it is not empty.
func New(level, format string, addSource bool, filePath string) (*Logger, error) {
	return NewTo(os.Stderr, level, format, addSource, filePath)
}

// NewTo is New with w in place of stderr.
func NewTo(w io.Writer, level, format string, addSource bool, filePath string) (*Logger, error) {
	logFile, output, err := logOutput(w, filePath)
	if err != nil {
		return nil, err
	}

	return &Logger{logger: slog.New(newHandler(output, level, format, addSource)), logFile: logFile}, nil
}

// NewWithWriter creates a Logger writing to w only.
func NewWithWriter(w io.Writer, level, format string) *Logger {
	return &Logger{logger: slog.New(newHandler(w, level, format, false))}
}

func newHandler(output io.Writer, level, format string, addSource bool) slog.Handler {
	options := &slog.HandlerOptions{
		Level:     parseLevel(level),
		AddSource: addSource,
	}

	format = strings.ToLower(strings.TrimSpace(format))
	if format == "json" {
		return slog.NewJSONHandler(output, options)
	}
	return slog.NewTextHandler(output, options)
}

// With returns a child logger with additional fields.
func (l *Logger) With(args ...any) validator.Logger {
	return &Logger{logger: l.logger.With(args...)}
}

func (l *Logger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// Slog returns the underlying slog.Logger.
func (l *Logger) Slog() *slog.Logger {
	return l.logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info":
		fallthrough
	default:
		return slog.LevelInfo
	}
}

func logOutput(w io.Writer, filePath string) (*os.File, io.Writer, error) {
	filePath = strings.TrimSpace(filePath)
	if filePath == "" {
		return nil, w, nil
	}

	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, err
		}
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, err
	}

	return file, io.MultiWriter(w, file), nil
}

// Close closes the log file handle.
func (l *Logger) Close() error {
	if l == nil || l.logFile == nil {
		return nil
	}
	return l.logFile.Close()
}

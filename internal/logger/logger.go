// Package logger configures the process-wide slog logger. Output goes to the
// console, to a rotated file, or both.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/KirkDiggler/dungeon-gains/internal/errors"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds logging configuration
type Config struct {
	Level          string `mapstructure:"level"`
	ConsoleEnabled bool   `mapstructure:"console_enabled"`
	ConsoleFormat  string `mapstructure:"console_format"`
	FileEnabled    bool   `mapstructure:"file_enabled"`
	FilePath       string `mapstructure:"file_path"`
	FileFormat     string `mapstructure:"file_format"`
	FileMaxSizeMB  int    `mapstructure:"file_max_size_mb"`
	FileMaxBackups int    `mapstructure:"file_max_backups"`
	FileMaxAgeDays int    `mapstructure:"file_max_age_days"`
}

// DefaultConfig logs INFO text to the console
func DefaultConfig() Config {
	return Config{
		Level:          "INFO",
		ConsoleEnabled: true,
		ConsoleFormat:  FormatText,
		FilePath:       "logs/dungeon-gains.log",
		FileFormat:     FormatJSON,
		FileMaxSizeMB:  10,
		FileMaxBackups: 5,
		FileMaxAgeDays: 30,
	}
}

// Validate checks formats and file settings
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.ConsoleEnabled {
		errors.ValidateEnum("console_format", c.ConsoleFormat, []string{FormatText, FormatJSON}, vb)
	}
	if c.FileEnabled {
		errors.ValidateRequired("file_path", c.FilePath, vb)
		errors.ValidateEnum("file_format", c.FileFormat, []string{FormatText, FormatJSON}, vb)
	}
	return vb.Build()
}

// Logger is a configured slog logger plus whatever it writes to
type Logger struct {
	*slog.Logger
	closers []io.Closer
}

// Close flushes and closes the log file, if any
func (l *Logger) Close() error {
	var first error
	for _, c := range l.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// New builds a logger writing console output to stdout
func New(cfg Config) (*Logger, error) {
	return newLogger(cfg, os.Stdout)
}

// Setup builds a logger and installs it as the slog default
func Setup(cfg Config) (*Logger, error) {
	l, err := New(cfg)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(l.Logger)
	return l, nil
}

func newLogger(cfg Config, console io.Writer) (*Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var (
		handlers []slog.Handler
		closers  []io.Closer
	)

	if cfg.ConsoleEnabled {
		handlers = append(handlers, newHandler(console, cfg.ConsoleFormat, opts))
	}

	if cfg.FileEnabled {
		file := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.FileMaxSizeMB,
			MaxBackups: cfg.FileMaxBackups,
			MaxAge:     cfg.FileMaxAgeDays,
		}
		handlers = append(handlers, newHandler(file, cfg.FileFormat, opts))
		closers = append(closers, file)
	}

	if len(handlers) == 0 {
		handlers = append(handlers, slog.NewTextHandler(console, opts))
	}

	var h slog.Handler
	if len(handlers) == 1 {
		h = handlers[0]
	} else {
		h = newMultiHandler(handlers...)
	}

	return &Logger{Logger: slog.New(h), closers: closers}, nil
}

func newHandler(w io.Writer, format string, opts *slog.HandlerOptions) slog.Handler {
	if format == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// ParseLevel converts a level name to a slog.Level, defaulting to INFO
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// multiHandler fans records out to several handlers
type multiHandler struct {
	handlers []slog.Handler
}

func newMultiHandler(handlers ...slog.Handler) *multiHandler {
	return &multiHandler{handlers: handlers}
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, r.Level) {
			continue
		}
		if err := handler.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return newMultiHandler(handlers...)
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return newMultiHandler(handlers...)
}

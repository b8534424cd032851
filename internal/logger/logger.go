// Package logger wraps zerolog behind a builder so every entry point
// constructs logging the same way: console and/or rotated file output,
// parsed level and format.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/aleister1102/ocrdiff/internal/common"
)

// LogFormat identifies the output format of a logger.
type LogFormat string

const (
	// FormatConsole is human-readable colored console output.
	FormatConsole LogFormat = "console"
	// FormatJSON is structured JSON output.
	FormatJSON LogFormat = "json"
	// FormatText is console output without colors.
	FormatText LogFormat = "text"
)

// LoggerConfig is the resolved logger configuration.
type LoggerConfig struct {
	Level         zerolog.Level
	Format        LogFormat
	EnableConsole bool
	EnableFile    bool
	FilePath      string
	MaxSizeMB     int
	MaxBackups    int
}

// FileLogConfig is the YAML/JSON facing logging configuration section.
type FileLogConfig struct {
	LogFile       string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
	LogFormat     string `json:"log_format,omitempty" yaml:"log_format,omitempty" validate:"omitempty,logformat"`
	LogLevel      string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,loglevel"`
	MaxLogSizeMB  int    `json:"max_log_size_mb,omitempty" yaml:"max_log_size_mb,omitempty"`
	MaxLogBackups int    `json:"max_log_backups,omitempty" yaml:"max_log_backups,omitempty"`
}

// NewDefaultFileLogConfig creates default log configuration
func NewDefaultFileLogConfig() FileLogConfig {
	return FileLogConfig{
		LogFormat:     string(FormatConsole),
		LogLevel:      "info",
		MaxLogSizeMB:  10,
		MaxLogBackups: 3,
	}
}

// Logger owns a configured zerolog.Logger and its file sink, if any.
type Logger struct {
	zl       zerolog.Logger
	config   LoggerConfig
	fileSink *lumberjack.Logger
}

// GetZerolog returns the underlying zerolog logger.
func (l *Logger) GetZerolog() zerolog.Logger { return l.zl }

// GetConfig returns the resolved configuration.
func (l *Logger) GetConfig() LoggerConfig { return l.config }

// Close releases the file sink, if one was opened.
func (l *Logger) Close() error {
	if l.fileSink != nil {
		return l.fileSink.Close()
	}
	return nil
}

// LoggerBuilder provides a fluent interface for creating Logger instances.
type LoggerBuilder struct {
	config LoggerConfig
}

// NewLoggerBuilder creates a builder with console output at info level.
func NewLoggerBuilder() *LoggerBuilder {
	return &LoggerBuilder{
		config: LoggerConfig{
			Level:         zerolog.InfoLevel,
			Format:        FormatConsole,
			EnableConsole: true,
		},
	}
}

// WithLevel sets the minimum log level.
func (b *LoggerBuilder) WithLevel(level zerolog.Level) *LoggerBuilder {
	b.config.Level = level
	return b
}

// WithFormat sets the output format.
func (b *LoggerBuilder) WithFormat(format LogFormat) *LoggerBuilder {
	b.config.Format = format
	return b
}

// WithConsole enables or disables console output.
func (b *LoggerBuilder) WithConsole(enable bool) *LoggerBuilder {
	b.config.EnableConsole = enable
	return b
}

// WithFile enables rotated file output.
func (b *LoggerBuilder) WithFile(path string, maxSizeMB, maxBackups int) *LoggerBuilder {
	b.config.EnableFile = true
	b.config.FilePath = path
	b.config.MaxSizeMB = maxSizeMB
	b.config.MaxBackups = maxBackups
	return b
}

// WithFileConfig applies a YAML/JSON facing configuration section.
func (b *LoggerBuilder) WithFileConfig(cfg FileLogConfig) *LoggerBuilder {
	if cfg.LogLevel != "" {
		if level, err := ParseLevel(cfg.LogLevel); err == nil {
			b.config.Level = level
		}
	}
	if cfg.LogFormat != "" {
		b.config.Format = ParseFormat(cfg.LogFormat)
	}
	if cfg.LogFile != "" {
		b.WithFile(cfg.LogFile, cfg.MaxLogSizeMB, cfg.MaxLogBackups)
	}
	return b
}

// Build creates the configured Logger.
func (b *LoggerBuilder) Build() (*Logger, error) {
	var writers []io.Writer

	if b.config.EnableConsole {
		writers = append(writers, formatWriter(b.config.Format, os.Stderr))
	}

	logger := &Logger{config: b.config}

	if b.config.EnableFile {
		if b.config.FilePath == "" {
			return nil, common.NewValidationError("log_file", b.config.FilePath, "file logging enabled without a path")
		}
		if err := os.MkdirAll(filepath.Dir(b.config.FilePath), 0755); err != nil {
			return nil, common.WrapError(err, "failed to create log directory")
		}
		logger.fileSink = &lumberjack.Logger{
			Filename:   b.config.FilePath,
			MaxSize:    b.config.MaxSizeMB,
			MaxBackups: b.config.MaxBackups,
		}
		// File output is always structured JSON regardless of console format.
		writers = append(writers, logger.fileSink)
	}

	var out io.Writer = io.Discard
	if len(writers) == 1 {
		out = writers[0]
	} else if len(writers) > 1 {
		out = zerolog.MultiLevelWriter(writers...)
	}

	logger.zl = zerolog.New(out).Level(b.config.Level).With().Timestamp().Logger()
	return logger, nil
}

// New builds a zerolog.Logger directly from a config file section.
func New(cfg FileLogConfig) (zerolog.Logger, error) {
	logger, err := NewLoggerBuilder().WithFileConfig(cfg).Build()
	if err != nil {
		return zerolog.Nop(), err
	}
	return logger.GetZerolog(), nil
}

// ParseLevel parses a textual log level.
func ParseLevel(level string) (zerolog.Level, error) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, common.NewError("unknown log level '%s': %w", level, err)
	}
	return parsed, nil
}

// ParseFormat parses a textual log format, falling back to console.
func ParseFormat(format string) LogFormat {
	switch LogFormat(format) {
	case FormatJSON:
		return FormatJSON
	case FormatText:
		return FormatText
	default:
		return FormatConsole
	}
}

// formatWriter wraps the output according to the configured format.
func formatWriter(format LogFormat, output io.Writer) io.Writer {
	switch format {
	case FormatJSON:
		return output
	case FormatText:
		return zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339, NoColor: true}
	default:
		return zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}
}

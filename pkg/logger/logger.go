package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TimeFormat is ISO-8601 with millisecond precision, always rendered in UTC.
const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Supported output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Default is the application-wide logger used by the package-level helpers.
// It stays nil until Init is called, in which case the helpers are no-ops.
var Default *Logger

// Config holds configuration for the logger system
type Config struct {
	Level      Level
	Format     string
	OutputPath string
}

// DefaultConfig returns a default logger configuration
func DefaultConfig() *Config {
	return &Config{
		Level:      LevelInfo,
		Format:     FormatConsole,
		OutputPath: "stdout",
	}
}

// Logger writes leveled messages through zap. The console format renders
// each entry as "[timestamp] [LEVEL] message".
type Logger struct {
	threshold Level
	zap       *zap.Logger
	sugar     *zap.SugaredLogger
	// helper skips one extra frame for the package-level functions.
	helper *zap.SugaredLogger
}

// Init builds a logger from cfg and installs it as Default.
func Init(cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	output, err := openOutput(cfg.OutputPath)
	if err != nil {
		return err
	}

	Default = New(cfg, output)
	return nil
}

// New returns a Logger writing to w.
func New(cfg *Config, w io.Writer) *Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	var encoder zapcore.Encoder
	switch cfg.Format {
	case FormatJSON:
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(TimeFormat)
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		encoder = zapcore.NewConsoleEncoder(consoleEncoderConfig())
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), thresholdEnabler(cfg.Level))
	base := zap.New(core, zap.AddCaller())

	return &Logger{
		threshold: cfg.Level,
		zap:       base,
		sugar:     base.WithOptions(zap.AddCallerSkip(1)).Sugar(),
		helper:    base.WithOptions(zap.AddCallerSkip(2)).Sugar(),
	}
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "timestamp",
		LevelKey:         "level",
		MessageKey:       "message",
		LineEnding:       zapcore.DefaultLineEnding,
		ConsoleSeparator: " ",
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString("[" + t.UTC().Format(TimeFormat) + "]")
		},
		EncodeLevel: func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString("[" + l.CapitalString() + "]")
		},
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

func openOutput(path string) (io.Writer, error) {
	switch path {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	}
}

// Enabled reports whether a message at level would be written.
func (l *Logger) Enabled(level Level) bool {
	return l != nil && level.Enabled(l.threshold)
}

// Log writes message at level if level passes the threshold.
func (l *Logger) Log(level Level, message string) {
	if l == nil {
		return
	}
	write(l.sugar, level, message)
}

// Logf is Log with printf-style formatting.
func (l *Logger) Logf(level Level, template string, args ...interface{}) {
	if l == nil || !l.Enabled(level) {
		return
	}
	write(l.sugar, level, fmt.Sprintf(template, args...))
}

// Sync flushes any buffered entries.
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	return l.zap.Sync()
}

func write(s *zap.SugaredLogger, level Level, message string) {
	switch level {
	case LevelError:
		s.Error(message)
	case LevelWarn:
		s.Warn(message)
	case LevelDebug:
		s.Debug(message)
	default:
		s.Info(message)
	}
}

// Log writes message at level through Default.
func Log(level Level, message string) {
	if Default != nil {
		write(Default.helper, level, message)
	}
}

// Info writes message at info level through Default.
func Info(message string) {
	if Default != nil {
		Default.helper.Info(message)
	}
}

func Debugf(template string, args ...interface{}) {
	if Default != nil {
		Default.helper.Debugf(template, args...)
	}
}

func Infof(template string, args ...interface{}) {
	if Default != nil {
		Default.helper.Infof(template, args...)
	}
}

func Warnf(template string, args ...interface{}) {
	if Default != nil {
		Default.helper.Warnf(template, args...)
	}
}

func Errorf(template string, args ...interface{}) {
	if Default != nil {
		Default.helper.Errorf(template, args...)
	}
}

// Fatalf logs at error severity and exits with status 1. Without an
// initialized Default it still exits.
func Fatalf(template string, args ...interface{}) {
	if Default != nil {
		Default.helper.Fatalf(template, args...)
	}
	os.Exit(1)
}

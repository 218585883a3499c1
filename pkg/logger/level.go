package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is a log severity. Lower values are more severe; a message is emitted
// when its level is less than or equal to the configured threshold.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// ParseLevel maps a level name to a Level. Unknown names resolve to LevelInfo.
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "error":
		return LevelError
	case "warn", "warning":
		return LevelWarn
	case "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	default:
		return LevelInfo
	}
}

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelDebug:
		return "debug"
	default:
		return "info"
	}
}

// Enabled reports whether a message at level l passes the threshold.
func (l Level) Enabled(threshold Level) bool {
	return l <= threshold
}

// fromZap folds zap's levels onto the four ranks. Everything at or above
// zap's error level ranks as LevelError.
func fromZap(level zapcore.Level) Level {
	switch {
	case level >= zapcore.ErrorLevel:
		return LevelError
	case level == zapcore.WarnLevel:
		return LevelWarn
	case level == zapcore.InfoLevel:
		return LevelInfo
	default:
		return LevelDebug
	}
}

// thresholdEnabler admits zap entries whose rank passes threshold.
func thresholdEnabler(threshold Level) zapcore.LevelEnabler {
	return zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return fromZap(level).Enabled(threshold)
	})
}

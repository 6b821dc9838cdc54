package logger

import (
	"strconv"
	"strings"
)

// Level defines log severity. Higher values are more verbose.
type Level uint

const (
	// NoneLevel disables every level except SpecialLevel when used as threshold.
	NoneLevel Level = iota
	// ErrorLevel enables error logging.
	ErrorLevel
	// WarningLevel enables warning logging.
	WarningLevel
	// DebugLevel enables debug logging.
	DebugLevel
	// SpecialLevel is always emitted regardless of the threshold. Timers report on it.
	SpecialLevel

	// levelGuard bounds the valid levels; never assigned to a message.
	levelGuard
)

// DefaultThreshold is used when LOG_LEVEL is missing or malformed.
const DefaultThreshold = ErrorLevel

// AllLevels returns every level that owns a counter, in summary order.
func AllLevels() []Level {
	return []Level{ErrorLevel, WarningLevel, DebugLevel, SpecialLevel}
}

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case NoneLevel:
		return "none"
	case ErrorLevel:
		return "error"
	case WarningLevel:
		return "warning"
	case DebugLevel:
		return "debug"
	case SpecialLevel:
		return "special"
	default:
		return "level(" + strconv.FormatUint(uint64(l), 10) + ")"
	}
}

// label returns the fixed display label of a level, or "" for levels without a record.
func (l Level) label() string {
	switch l {
	case ErrorLevel:
		return "[error  ]"
	case WarningLevel:
		return "[warning]"
	case DebugLevel:
		return "[debug  ]"
	case SpecialLevel:
		return "[special]"
	default:
		return ""
	}
}

// ParseThreshold parses an unsigned integer level code as found in LOG_LEVEL.
// Surrounding whitespace is ignored. Values past SpecialLevel are accepted and
// simply enable every level.
func ParseThreshold(s string) (Level, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 0)
	if err != nil {
		return DefaultThreshold, err
	}
	return Level(v), nil
}

package logger

import (
	"sync"
	"sync/atomic"
)

// global state
var (
	// std is the process-wide default Logger, created on first use.
	std atomic.Pointer[Logger]
	// stdMu serializes creation and replacement of std.
	stdMu sync.Mutex
)

// Default returns the process-wide Logger, creating it from LOG_LEVEL on
// first use.
func Default() *Logger {
	if l := std.Load(); l != nil {
		return l
	}
	stdMu.Lock()
	defer stdMu.Unlock()
	if l := std.Load(); l != nil {
		return l
	}
	l := New(Config{})
	std.Store(l)
	return l
}

// Init replaces the default Logger with one built from config. A previous
// default that was already in use is closed first, so it prints its summary.
func Init(config Config) *Logger {
	l := New(config)
	stdMu.Lock()
	old := std.Swap(l)
	stdMu.Unlock()
	if old != nil {
		old.Close()
	}
	return l
}

// Close writes the default Logger's summary once. It does nothing if the
// default Logger was never used.
func Close() {
	if l := std.Load(); l != nil {
		l.Close()
	}
}

// Active reports whether the default Logger would emit a message at level.
func Active(level Level) bool {
	return Default().Active(level)
}

// --- Formatted logging shims (fmt.Sprintf style) ---

// Logf logs a message at level on the default Logger.
func Logf(level Level, format string, args ...any) {
	if !Active(level) {
		return
	}
	Default().Logf(level, format, args...)
}

// Errorf logs an error message on the default Logger.
func Errorf(format string, args ...any) {
	if !Active(ErrorLevel) {
		return
	}
	Default().Logf(ErrorLevel, format, args...)
}

// Warnf logs a warning message on the default Logger.
func Warnf(format string, args ...any) {
	if !Active(WarningLevel) {
		return
	}
	Default().Logf(WarningLevel, format, args...)
}

// Debugf logs a debug message on the default Logger.
func Debugf(format string, args ...any) {
	if !Active(DebugLevel) {
		return
	}
	Default().Logf(DebugLevel, format, args...)
}

// Specialf logs a message on the default Logger that bypasses the threshold.
func Specialf(format string, args ...any) {
	Default().Logf(SpecialLevel, format, args...)
}

// Raw writes text verbatim on the default Logger.
func Raw(text string) {
	Default().Raw(text)
}

// Summary writes the default Logger's counters without closing it.
func Summary() {
	Default().Summary()
}

// --- Timing ---

// StartTimer starts a block timer reporting to the default Logger.
//
//	defer logger.StartTimer("compile").Stop()
func StartTimer(name string) *Timer {
	return Default().StartTimer(name)
}

// Time runs fn inside a timer reporting to the default Logger.
func Time(name string, fn func() error) error {
	return Default().Time(name, fn)
}

// LastTime returns the selected duration in seconds from the default Logger.
func LastTime(mode TimeMode) float64 {
	return Default().LastTime(mode)
}

// resetDefault drops the default Logger without closing it. Tests only.
func resetDefault() {
	stdMu.Lock()
	defer stdMu.Unlock()
	std.Store(nil)
}

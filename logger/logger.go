package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
	"unicode/utf8"
)

const (
	// EnvLevel is the environment variable holding the threshold level code.
	EnvLevel = "LOG_LEVEL"
	// Prefix starts every formatted log line.
	Prefix = "[LOGGER]"
	// DefaultMessageLimit is the maximum length in bytes of a rendered message.
	DefaultMessageLimit = 299

	summaryHeader = "SUMMARY"
	summaryRule   = "-------------------------------------------------"
	colorReset    = "\033[0m"
)

// Dependency injection point for testing output.
var outStdout io.Writer = os.Stdout

var levelColors = map[Level]string{
	ErrorLevel:   "\033[31m",
	WarningLevel: "\033[33m",
	DebugLevel:   "\033[36m",
	SpecialLevel: "\033[35m",
}

// Config defines options for New and Init.
type Config struct {
	// Threshold is the most verbose level emitted. SpecialLevel is emitted regardless.
	// Default: nil (resolved once from LOG_LEVEL, falling back to ErrorLevel)
	Threshold *Level
	// Output receives every line.
	// Default: nil (os.Stdout)
	Output io.Writer
	// Colorize wraps level labels in ANSI colors. Summary lines stay plain.
	// Default: false
	Colorize bool
	// MessageLimit truncates rendered messages to this many bytes; negative disables truncation.
	// Default: 0 (DefaultMessageLimit)
	MessageLimit int
	// Start is the instant cumulative timer durations are measured from.
	// Default: zero (process start)
	Start time.Time
}

// Threshold returns a pointer to level for use in Config literals.
func Threshold(level Level) *Level {
	return &level
}

// record is the label and occurrence counter of a single level.
type record struct {
	level Level
	label string
	count uint64
}

// Logger gates, formats, counts and emits diagnostic lines to a single writer.
// The threshold and level table are fixed at construction; counters and timer
// state are guarded by mu so a Logger is safe for concurrent use.
type Logger struct {
	threshold Level
	colorize  bool
	limit     int
	start     time.Time
	now       func() time.Time

	// records is indexed by level; order keeps summary output stable.
	records map[Level]*record
	order   []*record

	mu     sync.Mutex
	out    io.Writer
	closed bool
	timing timerStats

	closeOnce sync.Once
}

// New creates a Logger. When cfg.Threshold is nil the threshold is read from
// LOG_LEVEL and the resolved value is written to the output once.
func New(cfg Config) *Logger {
	l := &Logger{
		out:      cfg.Output,
		colorize: cfg.Colorize,
		limit:    cfg.MessageLimit,
		start:    cfg.Start,
		now:      time.Now,
		records:  make(map[Level]*record, len(AllLevels())),
	}
	if l.out == nil {
		l.out = outStdout
	}
	if l.limit == 0 {
		l.limit = DefaultMessageLimit
	}
	if l.start.IsZero() {
		l.start = processStart
	}
	for _, level := range AllLevels() {
		rec := &record{level: level, label: level.label()}
		l.records[level] = rec
		l.order = append(l.order, rec)
	}

	if cfg.Threshold != nil {
		l.threshold = *cfg.Threshold
	} else {
		l.threshold = l.thresholdFromEnv()
	}
	return l
}

// thresholdFromEnv resolves LOG_LEVEL. Malformed values fall back to
// DefaultThreshold with a notice; the resolved value is always reported.
func (l *Logger) thresholdFromEnv() Level {
	level := DefaultThreshold
	if v, ok := os.LookupEnv(EnvLevel); ok {
		parsed, err := ParseThreshold(v)
		if err != nil {
			l.writeLine(fmt.Sprintf("%s extraction failed: %q is not a level code", EnvLevel, v))
		} else {
			level = parsed
		}
	}
	l.writeLine(fmt.Sprintf("%s = %d", EnvLevel, uint(level)))
	return level
}

// Threshold returns the configured threshold.
func (l *Logger) Threshold() Level {
	return l.threshold
}

// Active reports whether a message at level would be emitted.
func (l *Logger) Active(level Level) bool {
	if level == SpecialLevel {
		return true
	}
	if level <= NoneLevel || level >= levelGuard || level > l.threshold {
		return false
	}
	_, ok := l.records[level]
	return ok
}

// Logf formats a message with fmt.Sprintf and writes it at level, tagged with
// the level's counter before it is incremented. Inactive levels are dropped
// before formatting, as is everything logged after Close.
func (l *Logger) Logf(level Level, format string, args ...any) {
	if !l.Active(level) {
		return
	}
	msg := truncate(fmt.Sprintf(format, args...), l.limit)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	rec := l.records[level]
	l.writeLine(l.formatLine(rec, msg))
	rec.count++
}

// Errorf logs at ErrorLevel.
func (l *Logger) Errorf(format string, args ...any) {
	l.Logf(ErrorLevel, format, args...)
}

// Warnf logs at WarningLevel.
func (l *Logger) Warnf(format string, args ...any) {
	l.Logf(WarningLevel, format, args...)
}

// Debugf logs at DebugLevel.
func (l *Logger) Debugf(format string, args ...any) {
	l.Logf(DebugLevel, format, args...)
}

// Specialf logs at SpecialLevel, which is never filtered.
func (l *Logger) Specialf(format string, args ...any) {
	l.Logf(SpecialLevel, format, args...)
}

// Raw writes text followed by a newline, without prefix, label or counting.
func (l *Logger) Raw(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writeLine(text)
}

// Count returns the number of messages accepted at level so far.
func (l *Logger) Count(level Level) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, ok := l.records[level]
	if !ok {
		return 0
	}
	return rec.count
}

// Summary writes the per-level counters. It can be called at any time;
// Close calls it once.
func (l *Logger) Summary() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writeSummary()
}

// Close writes the summary exactly once and stops accepting messages.
// Further calls are no-ops.
func (l *Logger) Close() {
	l.closeOnce.Do(func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.writeSummary()
		l.closed = true
	})
}

func (l *Logger) formatLine(rec *record, msg string) string {
	label := rec.label
	if l.colorize {
		label = levelColors[rec.level] + label + colorReset
	}
	return fmt.Sprintf("%s%s[%5d] - %s", Prefix, label, rec.count, msg)
}

func (l *Logger) writeSummary() {
	l.writeLine(summaryHeader)
	l.writeLine(summaryRule)
	for _, rec := range l.order {
		l.writeLine(fmt.Sprintf("%s = %5d", rec.label, rec.count))
	}
}

// writeLine must be called with mu held, or before the Logger is shared.
func (l *Logger) writeLine(s string) {
	_, _ = io.WriteString(l.out, s+"\n")
}

// truncate cuts s to at most limit bytes without splitting a UTF-8 sequence.
func truncate(s string, limit int) string {
	if limit < 0 || len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

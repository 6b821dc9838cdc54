package logger

import (
	"sync"
	"time"
)

// processStart is the fixed origin of cumulative timer durations.
var processStart = time.Now()

// TimeMode selects which recorded duration LastTime returns.
type TimeMode int

const (
	// TimeElapsed is the duration of the most recently stopped block.
	TimeElapsed TimeMode = iota
	// TimeCumulative is the time from process start to the most recent stop.
	TimeCumulative
	// TimeAverage is the mean elapsed time over every stopped block.
	TimeAverage
	// TimeMax is the longest elapsed time over every stopped block.
	TimeMax
)

// Measurement is the result of one stopped Timer.
type Measurement struct {
	Name       string
	Elapsed    time.Duration
	Cumulative time.Duration
}

// timerStats is the last-measurement state shared by all timers of a Logger.
type timerStats struct {
	last  Measurement
	count int
	total time.Duration
	max   time.Duration
}

// Timer measures the wall-clock duration of one block. It reports once, on
// the first call to Stop.
//
//	t := log.StartTimer("load")
//	defer t.Stop()
type Timer struct {
	l     *Logger
	name  string
	start time.Time

	once   sync.Once
	result Measurement
}

// StartTimer starts timing a block named name.
func (l *Logger) StartTimer(name string) *Timer {
	return &Timer{l: l, name: name, start: l.now()}
}

// Stop records the measurement on the Logger and reports it at SpecialLevel.
// Only the first call measures; later calls return the same Measurement.
func (t *Timer) Stop() Measurement {
	t.once.Do(func() {
		now := t.l.now()
		t.result = Measurement{
			Name:       t.name,
			Elapsed:    nonNegative(now.Sub(t.start)),
			Cumulative: nonNegative(now.Sub(t.l.start)),
		}
		t.l.record(t.result)
		t.l.Specialf("Elapsed time of %s = %2.4f sec (%2.4f cumulative)",
			t.name, t.result.Elapsed.Seconds(), t.result.Cumulative.Seconds())
	})
	return t.result
}

// Time runs fn inside a timer named name. The report is written on every
// exit path, including a panic in fn, which keeps propagating.
func (l *Logger) Time(name string, fn func() error) error {
	t := l.StartTimer(name)
	defer t.Stop()
	return fn()
}

// LastTime returns the selected duration in seconds. It is zero until a
// timer has been stopped, and for unknown modes.
func (l *Logger) LastTime(mode TimeMode) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch mode {
	case TimeElapsed:
		return l.timing.last.Elapsed.Seconds()
	case TimeCumulative:
		return l.timing.last.Cumulative.Seconds()
	case TimeAverage:
		if l.timing.count == 0 {
			return 0
		}
		return (l.timing.total / time.Duration(l.timing.count)).Seconds()
	case TimeMax:
		return l.timing.max.Seconds()
	default:
		return 0
	}
}

// LastMeasurement returns the most recently stopped measurement and false if
// no timer has been stopped yet.
func (l *Logger) LastMeasurement() (Measurement, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.timing.last, l.timing.count > 0
}

func (l *Logger) record(m Measurement) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.timing.last = m
	l.timing.count++
	l.timing.total += m.Elapsed
	if m.Elapsed > l.timing.max {
		l.timing.max = m.Elapsed
	}
}

// nonNegative clamps d at zero; only an injected clock can go backwards.
func nonNegative(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}

package logger

import (
	"bytes"
	"errors"
	"math"
	"regexp"
	"testing"
	"time"
)

// fakeClock is a manually advanced clock for deterministic timer output.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newClockLogger(threshold Level) (*Logger, *bytes.Buffer, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	var buf bytes.Buffer
	l := New(Config{Threshold: Threshold(threshold), Output: &buf, Start: clock.Now()})
	l.now = clock.Now
	return l, &buf, clock
}

var timerLine = regexp.MustCompile(`^\[LOGGER\]\[special\]\[\s*\d+\] - Elapsed time of (.+) = \d+\.\d{4} sec \(\d+\.\d{4} cumulative\)$`)

func TestTimer_ElapsedAtLeastSleep(t *testing.T) {
	l, buf := newTestLogger(ErrorLevel)
	const sleep = 20 * time.Millisecond

	timer := l.StartTimer("sleep")
	time.Sleep(sleep)
	m := timer.Stop()

	if m.Elapsed < sleep {
		t.Errorf("Elapsed = %v, want >= %v", m.Elapsed, sleep)
	}
	if m.Cumulative < m.Elapsed {
		t.Errorf("Cumulative %v < Elapsed %v", m.Cumulative, m.Elapsed)
	}
	if got := l.LastTime(TimeElapsed); got != m.Elapsed.Seconds() {
		t.Errorf("LastTime(TimeElapsed) = %v, want %v", got, m.Elapsed.Seconds())
	}
	if got := l.LastTime(TimeCumulative); got != m.Cumulative.Seconds() {
		t.Errorf("LastTime(TimeCumulative) = %v, want %v", got, m.Cumulative.Seconds())
	}
	got := lines(buf)
	if len(got) != 1 || !timerLine.MatchString(got[0]) {
		t.Fatalf("timer report = %q", got)
	}
}

func TestTimer_SequentialCumulativeIsMonotonic(t *testing.T) {
	l, _ := newTestLogger(ErrorLevel)

	first := l.StartTimer("first")
	time.Sleep(2 * time.Millisecond)
	m1 := first.Stop()

	second := l.StartTimer("second")
	time.Sleep(2 * time.Millisecond)
	m2 := second.Stop()

	if m2.Cumulative < m1.Cumulative {
		t.Errorf("second cumulative %v < first cumulative %v", m2.Cumulative, m1.Cumulative)
	}
	if m, ok := l.LastMeasurement(); !ok || m.Name != "second" {
		t.Errorf("LastMeasurement() = %+v, %v; want second", m, ok)
	}
}

func TestTimer_ReportsWithThresholdNone(t *testing.T) {
	l, buf := newTestLogger(NoneLevel)
	l.StartTimer("quiet").Stop()

	got := lines(buf)
	if len(got) != 1 {
		t.Fatalf("expected one special line, got %q", got)
	}
	if m := timerLine.FindStringSubmatch(got[0]); m == nil || m[1] != "quiet" {
		t.Fatalf("timer report = %q", got[0])
	}
	if n := l.Count(SpecialLevel); n != 1 {
		t.Errorf("Count(special) = %d, want 1", n)
	}
}

func TestTimer_MessageFormat(t *testing.T) {
	l, buf, clock := newClockLogger(ErrorLevel)

	clock.Advance(time.Second)
	timer := l.StartTimer("parse")
	clock.Advance(500 * time.Millisecond)
	m := timer.Stop()

	want := "[LOGGER][special][    0] - Elapsed time of parse = 0.5000 sec (1.5000 cumulative)\n"
	if got := buf.String(); got != want {
		t.Fatalf("report = %q, want %q", got, want)
	}
	if m.Name != "parse" || m.Elapsed != 500*time.Millisecond || m.Cumulative != 1500*time.Millisecond {
		t.Errorf("Measurement = %+v", m)
	}
}

func TestTimer_StopIsIdempotent(t *testing.T) {
	l, buf, clock := newClockLogger(ErrorLevel)

	timer := l.StartTimer("once")
	clock.Advance(time.Second)
	first := timer.Stop()
	clock.Advance(time.Second)
	second := timer.Stop()

	if first != second {
		t.Errorf("second Stop() = %+v, want %+v", second, first)
	}
	if n := len(lines(buf)); n != 1 {
		t.Errorf("got %d report lines, want 1", n)
	}
	if got := l.LastTime(TimeElapsed); got != 1 {
		t.Errorf("LastTime(TimeElapsed) = %v, want 1", got)
	}
}

func TestTimer_EarlyReturnStillReports(t *testing.T) {
	l, buf := newTestLogger(ErrorLevel)

	find := func(xs []int, want int) int {
		defer l.StartTimer("find").Stop()
		for i, x := range xs {
			if x == want {
				return i
			}
		}
		return -1
	}

	if got := find([]int{4, 5, 6}, 4); got != 0 {
		t.Fatalf("find() = %d", got)
	}
	if got := lines(buf); len(got) != 1 || !timerLine.MatchString(got[0]) {
		t.Fatalf("early return should still report, got %q", got)
	}
}

func TestTime_ReturnsFnError(t *testing.T) {
	l, buf := newTestLogger(ErrorLevel)
	errBoom := errors.New("boom")

	err := l.Time("failing", func() error { return errBoom })
	if !errors.Is(err, errBoom) {
		t.Fatalf("Time() error = %v, want %v", err, errBoom)
	}
	if got := lines(buf); len(got) != 1 {
		t.Fatalf("expected one report, got %q", got)
	}
}

func TestTime_ReportsOnPanic(t *testing.T) {
	l, buf := newTestLogger(ErrorLevel)

	func() {
		defer func() {
			if r := recover(); r != "kaboom" {
				t.Errorf("recover() = %v, want kaboom", r)
			}
		}()
		_ = l.Time("panicking", func() error { panic("kaboom") })
	}()

	got := lines(buf)
	if len(got) != 1 {
		t.Fatalf("expected one report, got %q", got)
	}
	if m := timerLine.FindStringSubmatch(got[0]); m == nil || m[1] != "panicking" {
		t.Fatalf("report = %q", got[0])
	}
}

func TestLastTime_AverageAndMax(t *testing.T) {
	l, _, clock := newClockLogger(ErrorLevel)

	for _, d := range []time.Duration{time.Second, 3 * time.Second, 2 * time.Second} {
		timer := l.StartTimer("block")
		clock.Advance(d)
		timer.Stop()
	}

	if got := l.LastTime(TimeAverage); math.Abs(got-2) > 1e-9 {
		t.Errorf("LastTime(TimeAverage) = %v, want 2", got)
	}
	if got := l.LastTime(TimeMax); got != 3 {
		t.Errorf("LastTime(TimeMax) = %v, want 3", got)
	}
	if got := l.LastTime(TimeElapsed); got != 2 {
		t.Errorf("LastTime(TimeElapsed) = %v, want 2", got)
	}
	if got := l.LastTime(TimeCumulative); got != 6 {
		t.Errorf("LastTime(TimeCumulative) = %v, want 6", got)
	}
}

func TestLastTime_BeforeAnyTimer(t *testing.T) {
	l, _ := newTestLogger(ErrorLevel)
	for _, mode := range []TimeMode{TimeElapsed, TimeCumulative, TimeAverage, TimeMax, TimeMode(42)} {
		if got := l.LastTime(mode); got != 0 {
			t.Errorf("LastTime(%d) = %v, want 0", mode, got)
		}
	}
	if _, ok := l.LastMeasurement(); ok {
		t.Error("LastMeasurement() should report false before any timer stops")
	}
}

func TestTimer_CumulativeFromProcessStart(t *testing.T) {
	l, _ := newTestLogger(ErrorLevel)
	before := time.Since(processStart)
	m := l.StartTimer("origin").Stop()

	if m.Cumulative < before {
		t.Errorf("Cumulative %v should be measured from process start (>= %v)", m.Cumulative, before)
	}
}

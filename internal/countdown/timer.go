// Package countdown implements the force-distribution analysis timer: an MMSS
// digit buffer, a once-per-second countdown and the scan/tint animations that run
// alongside it.
//
// Timer is a plain state machine. It does not start goroutines; callers deliver
// ticker fires and tint completion as events tagged with the run they belong to.
// Runner does that with wall-clock timers, the TUI does it with Bubble Tea ticks.
package countdown

import (
	"sync/atomic"
	"time"
)

// TickInterval is the countdown ticker period.
const TickInterval = time.Second

// runSeq hands out run ids. It is shared by every Timer so an event left over
// from a discarded timer never matches a run of its replacement.
var runSeq atomic.Uint64

type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Timer owns the digit buffer and the run state of one analysis screen.
type Timer struct {
	now func() time.Time

	digits    Digits
	state     State
	run       uint64
	remaining int
	total     time.Duration

	scan Animation
	tint Animation
}

// New returns an idle timer with a zeroed buffer. A nil now uses time.Now.
func New(now func() time.Time) *Timer {
	if now == nil {
		now = time.Now
	}
	return &Timer{now: now, digits: ZeroDigits, scan: newScan(), tint: newTint(0)}
}

func (t *Timer) State() State { return t.state }

// Analyzing reports whether a run is in progress.
func (t *Timer) Analyzing() bool { return t.state == Running }

func (t *Timer) Digits() Digits { return t.digits }

// Remaining is the number of seconds left in the current or last run.
func (t *Timer) Remaining() int { return t.remaining }

// Total is the duration captured when the current or last run started.
func (t *Timer) Total() time.Duration { return t.total }

// Run identifies the current run. Events carrying another id are stale.
func (t *Timer) Run() uint64 { return t.run }

func (t *Timer) ScanPhase() float64 { return t.scan.Value(t.now()) }

func (t *Timer) TintPhase() float64 { return t.tint.Value(t.now()) }

func (t *Timer) ScanRunning() bool { return t.scan.Running() }

func (t *Timer) TintRunning() bool { return t.tint.Running() }

// SetDigits replaces the buffer. Ignored while running.
func (t *Timer) SetDigits(d Digits) {
	if t.state == Idle {
		t.digits = d.normalize()
	}
}

func (t *Timer) PushDigit(c rune) { t.SetDigits(t.digits.PushDigit(c)) }
func (t *Timer) Backspace() { t.SetDigits(t.digits.Backspace()) }
func (t *Timer) IncrementMinutes() { t.SetDigits(t.digits.IncrementMinutes()) }
func (t *Timer) DecrementMinutes() { t.SetDigits(t.digits.DecrementMinutes()) }

// Toggle starts an idle timer or cancels a running one and returns the new state.
func (t *Timer) Toggle() State {
	if t.state == Idle {
		t.start()
	} else {
		t.Cancel()
	}
	return t.state
}

func (t *Timer) start() {
	if t.state == Running {
		return
	}
	secs := t.digits.TotalSeconds()
	if secs == 0 {
		secs = 1
	}
	now := t.now()
	t.total = time.Duration(secs) * time.Second
	// At 100 minutes or more the buffer only keeps the last 4 digits, so the
	// display lags Remaining until the countdown drops below 99:59.
	t.digits = FromSeconds(secs)
	t.remaining = secs
	t.state = Running
	t.run = runSeq.Add(1)

	t.scan = newScan()
	t.scan.start(now)
	t.tint = newTint(t.total)
	t.tint.start(now)
}

// Cancel stops a running analysis. It reports whether anything was stopped; a
// second call, or a call after the run already finished, is a no-op.
func (t *Timer) Cancel() bool {
	if t.state != Running {
		return false
	}
	t.finish()
	return true
}

// Tick delivers one countdown ticker fire for run. It reports whether the timer
// changed. The fire that finds one second or less remaining ends the run without
// touching the buffer.
func (t *Timer) Tick(run uint64) bool {
	if t.stale(run) {
		return false
	}
	if t.remaining <= 1 {
		t.remaining = 0
		t.finish()
		return true
	}
	t.remaining--
	t.digits = FromSeconds(t.remaining)
	return true
}

// TintDone delivers natural completion of the tint animation for run.
func (t *Timer) TintDone(run uint64) bool {
	if t.stale(run) {
		return false
	}
	t.finish()
	return true
}

func (t *Timer) stale(run uint64) bool {
	return t.state != Running || run != t.run
}

// finish is the single terminal transition shared by cancel, ticker expiry and
// tint completion.
func (t *Timer) finish() {
	now := t.now()
	t.scan.stop(now)
	t.tint.stop(now)
	t.state = Idle
}

// Snapshot is a copy of the display-relevant timer state.
type Snapshot struct {
	State     State
	Digits    Digits
	Remaining int
	Total     time.Duration
	Run       uint64
}

func (t *Timer) Snapshot() Snapshot {
	return Snapshot{State: t.state, Digits: t.digits, Remaining: t.remaining, Total: t.total, Run: t.run}
}

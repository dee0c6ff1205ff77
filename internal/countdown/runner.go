package countdown

import (
	"log/slog"
	"sync"
)

// Reason tells observers why a run ended.
type Reason int

const (
	ReasonCompleted Reason = iota
	ReasonCancelled
)

func (r Reason) String() string {
	if r == ReasonCancelled {
		return "cancelled"
	}
	return "completed"
}

// Runner drives a Timer with real timers: a ticker re-armed every TickInterval
// and a one-shot fired when the tint animation completes. All events go through
// one mutex; observers are called after it is released.
type Runner struct {
	mu     sync.Mutex
	clock  Clock
	timer  *Timer
	ticker Stopper
	tint   Stopper
	closed bool

	onChange func(Snapshot)
	onFinish func(Snapshot, Reason)
	log      *slog.Logger
}

type RunnerOption func(*Runner)

func WithClock(c Clock) RunnerOption { return func(r *Runner) { r.clock = c } }

// OnChange registers a callback invoked after every start, tick and finish.
func OnChange(f func(Snapshot)) RunnerOption { return func(r *Runner) { r.onChange = f } }

// OnFinish registers a callback invoked once when a run ends.
func OnFinish(f func(Snapshot, Reason)) RunnerOption { return func(r *Runner) { r.onFinish = f } }

func WithLogger(l *slog.Logger) RunnerOption { return func(r *Runner) { r.log = l } }

func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{clock: SystemClock, log: slog.Default()}
	for _, o := range opts {
		o(r)
	}
	r.timer = New(r.clock.Now)
	return r
}

// Edit applies a digit-editor operation to the buffer. It has no effect while running.
func (r *Runner) Edit(f func(*Timer)) Snapshot {
	r.mu.Lock()
	f(r.timer)
	snap := r.timer.Snapshot()
	r.mu.Unlock()
	return snap
}

func (r *Runner) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.timer.Snapshot()
}

// Phases samples the two animations.
func (r *Runner) Phases() (scan, tint float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.timer.ScanPhase(), r.timer.TintPhase()
}

// Toggle starts or cancels the analysis. A closed runner ignores it.
func (r *Runner) Toggle() Snapshot {
	r.mu.Lock()
	if r.closed {
		snap := r.timer.Snapshot()
		r.mu.Unlock()
		return snap
	}
	var notify []func()
	if r.timer.Toggle() == Running {
		run := r.timer.Run()
		r.armTicker(run)
		r.tint = r.clock.AfterFunc(r.timer.Total(), func() { r.fireTint(run) })
		r.log.Debug("analysis started", "run", run, "total", r.timer.Total(), "digits", r.timer.Digits())
		notify = r.changed()
	} else {
		r.release()
		r.log.Debug("analysis cancelled", "run", r.timer.Run(), "remaining", r.timer.Remaining())
		notify = r.finished(ReasonCancelled)
	}
	snap := r.timer.Snapshot()
	r.mu.Unlock()
	notifyAll(notify)
	return snap
}

// Close cancels any run and releases pending timers. Safe to call repeatedly.
func (r *Runner) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	var notify []func()
	if r.timer.Cancel() {
		notify = r.finished(ReasonCancelled)
	}
	r.release()
	r.mu.Unlock()
	notifyAll(notify)
}

func (r *Runner) armTicker(run uint64) {
	r.ticker = r.clock.AfterFunc(TickInterval, func() { r.fireTick(run) })
}

func (r *Runner) fireTick(run uint64) {
	r.mu.Lock()
	if r.closed || !r.timer.Tick(run) {
		r.mu.Unlock()
		return
	}
	var notify []func()
	if r.timer.Analyzing() {
		r.armTicker(run)
		notify = r.changed()
	} else {
		r.release()
		r.log.Debug("analysis finished by ticker", "run", run)
		notify = r.finished(ReasonCompleted)
	}
	r.mu.Unlock()
	notifyAll(notify)
}

func (r *Runner) fireTint(run uint64) {
	r.mu.Lock()
	if r.closed || !r.timer.TintDone(run) {
		r.mu.Unlock()
		return
	}
	r.release()
	r.log.Debug("analysis finished by tint", "run", run)
	notify := r.finished(ReasonCompleted)
	r.mu.Unlock()
	notifyAll(notify)
}

// release stops both scheduled callbacks. A fire already dispatched still runs
// and is dropped by the run check.
func (r *Runner) release() {
	if r.ticker != nil {
		r.ticker.Stop()
		r.ticker = nil
	}
	if r.tint != nil {
		r.tint.Stop()
		r.tint = nil
	}
}

func (r *Runner) changed() []func() {
	if r.onChange == nil {
		return nil
	}
	snap := r.timer.Snapshot()
	return []func(){func() { r.onChange(snap) }}
}

func (r *Runner) finished(why Reason) []func() {
	out := r.changed()
	if r.onFinish != nil {
		snap := r.timer.Snapshot()
		out = append(out, func() { r.onFinish(snap, why) })
	}
	return out
}

func notifyAll(fs []func()) {
	for _, f := range fs {
		f()
	}
}

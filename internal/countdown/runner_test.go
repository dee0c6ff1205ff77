package countdown

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualClock fires AfterFunc callbacks only when advanced.
type manualClock struct {
	mu      sync.Mutex
	now     time.Time
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	c       *manualClock
	at      time.Time
	seq     int
	f       func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	t.c.mu.Lock()
	defer t.c.mu.Unlock()
	was := !t.stopped
	t.stopped = true
	return was
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) Stopper {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &manualTimer{c: c, at: c.now.Add(d), seq: c.seq, f: f}
	c.pending = append(c.pending, t)
	return t
}

// Advance moves time forward, firing due callbacks in deadline order.
func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()
	for {
		c.mu.Lock()
		sort.SliceStable(c.pending, func(i, j int) bool {
			if c.pending[i].at.Equal(c.pending[j].at) {
				return c.pending[i].seq < c.pending[j].seq
			}
			return c.pending[i].at.Before(c.pending[j].at)
		})
		var next *manualTimer
		for i, t := range c.pending {
			if t.stopped {
				continue
			}
			if !t.at.After(target) {
				next = t
				c.pending = append(c.pending[:i], c.pending[i+1:]...)
			}
			break
		}
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = next.at
		next.stopped = true
		c.mu.Unlock()
		next.f()
	}
}

func (c *manualClock) live() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.pending {
		if !t.stopped {
			n++
		}
	}
	return n
}

type finishLog struct {
	mu      sync.Mutex
	reasons []Reason
	snaps   []Snapshot
}

func (l *finishLog) record(s Snapshot, r Reason) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.reasons = append(l.reasons, r)
	l.snaps = append(l.snaps, s)
}

func TestRunnerCountsDownAndFinishesOnce(t *testing.T) {
	clk := newManualClock()
	var finished finishLog
	var changes []Digits
	r := NewRunner(WithClock(clk), OnFinish(finished.record), OnChange(func(s Snapshot) {
		changes = append(changes, s.Digits)
	}))
	r.Edit(func(tm *Timer) { tm.SetDigits("0003") })

	snap := r.Toggle()
	require.Equal(t, Running, snap.State)
	assert.Equal(t, 3, snap.Remaining)

	clk.Advance(time.Second)
	assert.Equal(t, 2, r.Snapshot().Remaining)
	assert.Equal(t, Digits("0002"), r.Snapshot().Digits)

	clk.Advance(time.Second)
	assert.Equal(t, 1, r.Snapshot().Remaining)

	// the third tick and the tint completion are due at the same instant
	clk.Advance(time.Second)
	assert.Equal(t, Idle, r.Snapshot().State)
	assert.Equal(t, []Reason{ReasonCompleted}, finished.reasons)
	assert.Equal(t, 0, clk.live(), "no timer may stay armed after finishing")

	clk.Advance(5 * time.Second)
	assert.Len(t, finished.reasons, 1)
	assert.Equal(t, []Digits{"0003", "0002", "0001", "0001"}, changes)
}

func TestRunnerTintFiresBeforeTicker(t *testing.T) {
	clk := newManualClock()
	var finished finishLog
	r := NewRunner(WithClock(clk), OnFinish(finished.record))
	r.Edit(func(tm *Timer) { tm.SetDigits("0002") })
	r.Toggle()

	// deliver the tint completion directly, as if its timer won the race
	r.fireTint(r.Snapshot().Run)
	assert.Equal(t, Idle, r.Snapshot().State)

	clk.Advance(10 * time.Second)
	assert.Equal(t, []Reason{ReasonCompleted}, finished.reasons)
}

func TestRunnerToggleCancels(t *testing.T) {
	clk := newManualClock()
	var finished finishLog
	r := NewRunner(WithClock(clk), OnFinish(finished.record))
	r.Edit(func(tm *Timer) { tm.SetDigits("0130") })
	r.Toggle()
	clk.Advance(3 * time.Second)

	snap := r.Toggle()
	assert.Equal(t, Idle, snap.State)
	assert.Equal(t, 87, snap.Remaining)
	assert.Equal(t, 0, clk.live())
	assert.Equal(t, []Reason{ReasonCancelled}, finished.reasons)

	clk.Advance(time.Minute)
	assert.Equal(t, 87, r.Snapshot().Remaining)
}

func TestRunnerCloseReleasesTimers(t *testing.T) {
	clk := newManualClock()
	var finished finishLog
	r := NewRunner(WithClock(clk), OnFinish(finished.record))
	r.Toggle()
	require.Equal(t, 2, clk.live())

	r.Close()
	r.Close()
	assert.Equal(t, 0, clk.live())
	assert.Equal(t, Idle, r.Snapshot().State)
	assert.Equal(t, []Reason{ReasonCancelled}, finished.reasons)

	assert.Equal(t, Idle, r.Toggle().State, "closed runner does not restart")
}

func TestRunnerEditIgnoredWhileRunning(t *testing.T) {
	clk := newManualClock()
	r := NewRunner(WithClock(clk))
	r.Edit(func(tm *Timer) { tm.SetDigits("0010") })
	r.Toggle()
	snap := r.Edit(func(tm *Timer) { tm.PushDigit('9') })
	assert.Equal(t, Digits("0010"), snap.Digits)
	r.Close()
}

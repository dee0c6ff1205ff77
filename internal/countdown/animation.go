package countdown

import (
	"fmt"
	"time"
)

const (
	// ScanHalfPeriod is the time the scan line takes to sweep one way.
	ScanHalfPeriod = time.Second
	// ScanPeriod is one full down-and-up sweep.
	ScanPeriod = 2 * ScanHalfPeriod
)

// ScanPhase is the repeating triangle wave driving the scan line: 0→1 over the
// first half period, 1→0 over the second.
func ScanPhase(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	pos := elapsed % ScanPeriod
	if pos < ScanHalfPeriod {
		return float64(pos) / float64(ScanHalfPeriod)
	}
	return 1 - float64(pos-ScanHalfPeriod)/float64(ScanHalfPeriod)
}

// TintPhase ramps linearly from 0 to 1 over total.
func TintPhase(elapsed, total time.Duration) float64 {
	if total <= 0 || elapsed >= total {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(total)
}

// ScanOffset maps a scan phase onto a row within a container of the given height.
// The line is two units tall, so the last reachable row is height-2.
func ScanOffset(phase float64, height int) int {
	if height <= 2 {
		return 0
	}
	return int(clamp01(phase)*float64(height-2) + 0.5)
}

var (
	tintRest = rgb{0x4a, 0x4a, 0x4a}
	tintPeak = rgb{0x00, 0x00, 0x00}
)

// TintColor interpolates the insole icon colour: grey at 0, black at 0.5, grey again at 1.
func TintColor(phase float64) string {
	p := clamp01(phase)
	if p <= 0.5 {
		return tintRest.lerp(tintPeak, p/0.5).hex()
	}
	return tintPeak.lerp(tintRest, (p-0.5)/0.5).hex()
}

type rgb struct{ r, g, b uint8 }

func (c rgb) lerp(to rgb, t float64) rgb {
	mix := func(a, b uint8) uint8 { return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5) }
	return rgb{mix(c.r, to.r), mix(c.g, to.g), mix(c.b, to.b)}
}

func (c rgb) hex() string { return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b) }

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Animation is one animated progress value owned by a Timer run. Its value is
// computed from the elapsed time when sampled, so there is nothing to schedule.
type Animation struct {
	sample  func(elapsed time.Duration) float64
	started time.Time
	running bool
	frozen  float64
}

func newScan() Animation {
	return Animation{sample: ScanPhase}
}

func newTint(total time.Duration) Animation {
	return Animation{sample: func(e time.Duration) float64 { return TintPhase(e, total) }}
}

func (a *Animation) start(now time.Time) {
	a.started = now
	a.running = true
	a.frozen = 0
}

// stop freezes the value where it is. Stopping a stopped animation does nothing.
func (a *Animation) stop(now time.Time) {
	if !a.running {
		return
	}
	a.frozen = a.Value(now)
	a.running = false
}

// Running reports whether the animation is still advancing.
func (a Animation) Running() bool { return a.running }

// Value samples the animation at now.
func (a Animation) Value(now time.Time) float64 {
	if !a.running || a.sample == nil {
		return a.frozen
	}
	return a.sample(now.Sub(a.started))
}

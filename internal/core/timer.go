package core

import "time"

// FixedStep paces a periodic task, such as a renderer refresh, at a steady
// rate. Ticks that were missed are dropped rather than replayed.
type FixedStep struct {
	step time.Duration
	next time.Time
	now  func() time.Time
}

// NewFixedStep constructs a FixedStep targeting the given ticks per second.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the interval between ticks.
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether a tick is due and schedules the next one.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.next.IsZero() {
		f.next = now.Add(f.step)
		return true
	}
	if now.Before(f.next) {
		return false
	}
	f.next = f.next.Add(f.step)
	if !f.next.After(now) {
		f.next = now.Add(f.step)
	}
	return true
}

// Until returns how long to wait before the next tick is due.
func (f *FixedStep) Until() time.Duration {
	if f.next.IsZero() {
		return 0
	}
	d := f.next.Sub(f.now())
	if d < 0 {
		return 0
	}
	return d
}

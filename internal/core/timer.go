package core

import "time"

// FixedStep paces simulation updates so that at least one delay elapses
// between consecutive steps.
type FixedStep struct {
	step time.Duration
	last time.Time
	now  func() time.Time
}

// NewFixedStep constructs a FixedStep controller with the given minimum delay.
func NewFixedStep(delay time.Duration) *FixedStep {
	if delay <= 0 {
		delay = time.Millisecond
	}
	return &FixedStep{step: delay, now: time.Now}
}

// SetDelay changes the minimum delay between steps. Non-positive values are
// ignored and reported as false.
func (f *FixedStep) SetDelay(delay time.Duration) bool {
	if delay <= 0 {
		return false
	}
	f.step = delay
	return true
}

// Delay returns the current minimum delay between steps.
func (f *FixedStep) Delay() time.Duration { return f.step }

// Rearm makes the next ShouldStep call fire immediately.
func (f *FixedStep) Rearm() { f.last = time.Time{} }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if !f.last.IsZero() && now.Sub(f.last) < f.step {
		return false
	}
	f.last = now
	return true
}

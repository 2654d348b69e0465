package core

import "time"

// DefaultTick is the simulated time between generations.
const DefaultTick = 50 * time.Millisecond

// FixedStep accumulates frame time and reports when a simulation tick is due.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
}

// NewFixedStep constructs a FixedStep that fires once per step.
func NewFixedStep(step time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetStep(step)
	return fs
}

// SetStep changes the threshold. Non-positive values fall back to DefaultTick.
func (f *FixedStep) SetStep(step time.Duration) {
	if step <= 0 {
		step = DefaultTick
	}
	f.step = step
}

// Step returns the configured threshold.
func (f *FixedStep) Step() time.Duration { return f.step }

// Add accumulates elapsed frame time. Negative deltas are ignored.
func (f *FixedStep) Add(delta time.Duration) {
	if delta > 0 {
		f.accumulator += delta
	}
}

// Elapsed returns the time accumulated since the last tick.
func (f *FixedStep) Elapsed() time.Duration { return f.accumulator }

// ShouldStep reports whether a tick is due and, if so, restarts the
// accumulator from zero. Surplus time is dropped.
func (f *FixedStep) ShouldStep() bool {
	if f.accumulator < f.step {
		return false
	}
	f.accumulator = 0
	return true
}

// Clock yields monotonic frame deltas.
type Clock struct {
	last time.Time
	now  func() time.Time
}

// NewClock returns a Clock reading time.Now.
func NewClock() *Clock { return &Clock{now: time.Now} }

// Delta returns the time since the previous call. The first call returns 0.
func (c *Clock) Delta() time.Duration {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	return d
}

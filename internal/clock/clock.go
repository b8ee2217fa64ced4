// Package clock supplies the timestamps of recorded runs.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Since returns the time elapsed on clk since start.
func Since(clk Clock, start time.Time) time.Duration {
	return clk.Now().Sub(start)
}

// RealClock reads the system clock, normalized to UTC.
type RealClock struct{}

// NewRealClock creates a RealClock.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time in UTC.
func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// FakeClock is a settable clock for tests. With a step configured, every
// call to Now moves it forward so consecutive runs get distinct timestamps.
type FakeClock struct {
	current time.Time
	step    time.Duration
}

// NewFakeClock creates a FakeClock stopped at t.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{current: t}
}

// WithStep makes each call to Now advance the clock by d.
func (c *FakeClock) WithStep(d time.Duration) *FakeClock {
	c.step = d
	return c
}

// Now returns the current fake time, then applies the step.
func (c *FakeClock) Now() time.Time {
	now := c.current
	c.current = c.current.Add(c.step)
	return now
}

// Set moves the clock to t.
func (c *FakeClock) Set(t time.Time) {
	c.current = t
}

// Advance moves the clock by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

// Package loop implements the real-time frame scheduler that drives games:
// a monotonic clock, a frame-rate estimator, rate caps in both directions,
// and the integrator used for rate-independent motion. It depends only on
// core so games and platforms can share one loop.
package loop

import "time"

// Clock abstracts time for the scheduler so tests can drive it manually.
// Now must be monotonic between calls; Delay blocks for at least d.
type Clock interface {
	Now() time.Time
	Delay(d time.Duration)
}

// SystemClock is the Clock used outside tests.
type SystemClock struct{}

// Now returns the current time, carrying Go's monotonic reading.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Delay sleeps for d. Non-positive durations return immediately.
func (SystemClock) Delay(d time.Duration) {
	if d <= 0 {
		return
	}
	time.Sleep(d)
}

// ManualClock is a Clock whose time only moves when told to. Delay advances
// the clock by the requested amount and records it, so scheduler tests can
// assert both the timing math and the sleep requests.
type ManualClock struct {
	now    time.Time
	delays []time.Duration
}

// NewManualClock starts a manual clock at the Unix epoch.
func NewManualClock() *ManualClock {
	return &ManualClock{now: time.Unix(0, 0)}
}

// Now returns the clock's current time.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Delay records the request and advances the clock as a real sleep would.
func (c *ManualClock) Delay(d time.Duration) {
	if d > 0 {
		c.now = c.now.Add(d)
	}
	c.delays = append(c.delays, d)
}

// Delays returns every duration passed to Delay, in order.
func (c *ManualClock) Delays() []time.Duration {
	return c.delays
}

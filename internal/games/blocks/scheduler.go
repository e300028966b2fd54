package blocks

import "time"

// Scheduler arms the periodic gravity callback.
// At most one callback is armed; Schedule replaces it and Unschedule is
// safe to call when nothing is armed.
type Scheduler interface {
	Schedule(interval time.Duration)
	Unschedule()
}

type nopScheduler struct{}

func (nopScheduler) Schedule(time.Duration) {}
func (nopScheduler) Unschedule()            {}

// GravityTimer is a frame-driven Scheduler. The owner feeds it elapsed
// frame time with Advance and runs one gravity tick per successful Fire.
type GravityTimer struct {
	interval time.Duration
	elapsed  time.Duration
	armed    bool
}

// Schedule arms the timer and restarts the countdown.
func (t *GravityTimer) Schedule(interval time.Duration) {
	t.interval = interval
	t.elapsed = 0
	t.armed = interval > 0
}

// Unschedule disarms the timer.
func (t *GravityTimer) Unschedule() {
	t.armed = false
	t.elapsed = 0
}

// Armed reports whether a callback is pending.
func (t *GravityTimer) Armed() bool {
	return t.armed
}

// Interval returns the armed interval.
func (t *GravityTimer) Interval() time.Duration {
	return t.interval
}

// Advance accumulates frame time while armed.
func (t *GravityTimer) Advance(dt time.Duration) {
	if t.armed {
		t.elapsed += dt
	}
}

// Fire consumes one due interval and reports whether a tick should run.
// A tick may re-arm the timer, so callers loop until Fire returns false.
func (t *GravityTimer) Fire() bool {
	if !t.armed || t.elapsed < t.interval {
		return false
	}
	t.elapsed -= t.interval
	return true
}

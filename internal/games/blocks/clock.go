package blocks

import "time"

// Clock supplies the engine's notion of "now" for the freeze grace window.
type Clock interface {
	Now() time.Duration
}

// SimClock is a manually advanced clock. The game adapter moves it
// forward by one frame per step, so time only passes while the game runs.
type SimClock struct {
	now time.Duration
}

// Now returns the elapsed simulated time.
func (c *SimClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d.
func (c *SimClock) Advance(d time.Duration) {
	c.now += d
}

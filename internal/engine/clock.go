package engine

import "math"

// Clock is the authoritative time source once playback has started.
type Clock interface {
	// Start begins playback, it is called once when the preroll runs out.
	Start()
	Started() bool
	// Seconds elapsed since playback started
	Seconds() float64
	// Ended reports that the track played out
	Ended() bool
}

// ManualClock is moved by hand, for tests and replays.
type ManualClock struct {
	now     float64
	end     float64
	started bool
}

// NewManualClock returns a clock that ends at end seconds. A non-positive end never ends.
func NewManualClock(end float64) *ManualClock {
	if end <= 0 {
		end = math.Inf(1)
	}
	return &ManualClock{end: end}
}

func (c *ManualClock) Start() { c.started = true }
func (c *ManualClock) Started() bool { return c.started }
func (c *ManualClock) Seconds() float64 { return c.now }
func (c *ManualClock) Ended() bool { return c.started && c.now >= c.end }
func (c *ManualClock) Set(t float64) { c.now = t }
func (c *ManualClock) Advance(dt float64) {
	c.now += dt
}

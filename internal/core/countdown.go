package core

// Countdown is an integer frame timer. It is decremented once per tick and
// never goes below zero. The zero value is an expired countdown.
type Countdown struct {
	start     int
	remaining int
}

// NewCountdown returns a countdown running for n ticks.
func NewCountdown(n int) Countdown {
	n = Max(0, n)
	return Countdown{start: n, remaining: n}
}

// Restart sets the countdown to run for n ticks.
func (c *Countdown) Restart(n int) {
	*c = NewCountdown(n)
}

// Reset restarts the countdown with its original length.
func (c *Countdown) Reset() {
	c.remaining = c.start
}

// Tick advances the countdown by one frame and reports whether it just
// reached zero. Ticking an expired countdown reports false.
func (c *Countdown) Tick() bool {
	if c.remaining == 0 {
		return false
	}
	c.remaining--
	return c.remaining == 0
}

// Active reports whether ticks remain.
func (c Countdown) Active() bool {
	return c.remaining > 0
}

// Remaining returns the number of ticks left.
func (c Countdown) Remaining() int {
	return c.remaining
}

// Length returns the tick count the countdown was started with.
func (c Countdown) Length() int {
	return c.start
}

// Progress returns how far the countdown has run, from 0 (just started) to 1 (expired).
func (c Countdown) Progress() float64 {
	if c.start == 0 {
		return 1
	}
	return float64(c.start-c.remaining) / float64(c.start)
}

// Stop expires the countdown immediately.
func (c *Countdown) Stop() {
	c.remaining = 0
}

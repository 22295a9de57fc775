package core

import "time"

// Clock paces a frame loop to a target rate, sleeping off whatever is left
// of the current frame. A zero Clock is ready to use.
type Clock struct {
	last  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

// NewClock creates a clock with injectable time sources (used by tests).
func NewClock(now func() time.Time, sleep func(time.Duration)) *Clock {
	return &Clock{now: now, sleep: sleep}
}

// Tick waits until 1/fps has elapsed since the previous Tick and returns the
// time actually elapsed. The first call never waits.
func (c *Clock) Tick(fps int) time.Duration {
	now, sleep := c.now, c.sleep
	if now == nil {
		now = time.Now
	}
	if sleep == nil {
		sleep = time.Sleep
	}

	t := now()
	if c.last.IsZero() || fps <= 0 {
		c.last = t
		return 0
	}

	frame := time.Second / time.Duration(fps)
	if remaining := frame - t.Sub(c.last); remaining > 0 {
		sleep(remaining)
		t = now()
	}
	elapsed := t.Sub(c.last)
	c.last = t
	return elapsed
}

package app

import "time"

// Clock reports monotonic milliseconds since it was created. It is the only
// place the hosts read time; the controller is handed the values.
type Clock struct {
	start time.Time
	now   func() time.Time
}

// NewClock starts a clock at zero.
func NewClock() *Clock {
	return newClockAt(time.Now)
}

func newClockAt(now func() time.Time) *Clock {
	return &Clock{start: now(), now: now}
}

// Millis returns the elapsed milliseconds.
func (c *Clock) Millis() int64 {
	return c.now().Sub(c.start).Milliseconds()
}

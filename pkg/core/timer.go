package core

// Pacer decides when a polled simulation is due for its next step. It never
// reads a clock itself: callers pass a monotonically increasing millisecond
// value so behaviour is deterministic under test.
type Pacer struct {
	intervalMs int64
	lastMs     int64
}

// NewPacer constructs a Pacer with the given interval and a zero baseline.
func NewPacer(intervalMs int) *Pacer {
	p := &Pacer{}
	p.SetInterval(intervalMs)
	return p
}

// SetInterval changes the step interval. The baseline is left untouched, so
// the new interval is measured from the last step rather than from now.
func (p *Pacer) SetInterval(intervalMs int) {
	if intervalMs < 0 {
		intervalMs = 0
	}
	p.intervalMs = int64(intervalMs)
}

// Interval returns the current interval in milliseconds.
func (p *Pacer) Interval() int { return int(p.intervalMs) }

// Last returns the baseline recorded by the most recent Mark.
func (p *Pacer) Last() int64 { return p.lastMs }

// Due reports whether at least one interval has elapsed since the baseline.
func (p *Pacer) Due(nowMs int64) bool {
	return nowMs-p.lastMs >= p.intervalMs
}

// Mark records nowMs as the new baseline.
func (p *Pacer) Mark(nowMs int64) { p.lastMs = nowMs }

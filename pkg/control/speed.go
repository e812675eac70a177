package control

const (
	// MinIntervalMs is the shortest permitted delay between generations.
	MinIntervalMs = 50
	// MaxIntervalMs is the longest permitted delay between generations.
	MaxIntervalMs = 1000
	// IntervalStepMs is the granularity every interval is rounded down to.
	IntervalStepMs = 50
	// DefaultIntervalMs is the interval a new controller starts with.
	DefaultIntervalMs = 200
)

// ClampInterval limits valueMs to [MinIntervalMs, MaxIntervalMs] and rounds it
// down to a multiple of IntervalStepMs.
func ClampInterval(valueMs int) int {
	if valueMs < MinIntervalMs {
		valueMs = MinIntervalMs
	}
	if valueMs > MaxIntervalMs {
		valueMs = MaxIntervalMs
	}
	return valueMs / IntervalStepMs * IntervalStepMs
}

package control

import (
	"errors"
	"testing"

	"mad-life/pkg/core"
	"mad-life/pkg/sims/life"
)

type countingEngine struct {
	steps, toggles, clears, randomizes int
	lastDensity                        float64
}

func (e *countingEngine) Step()                     { e.steps++ }
func (e *countingEngine) Toggle(row, col int) error { e.toggles++; return nil }
func (e *countingEngine) Clear()                    { e.clears++ }
func (e *countingEngine) Randomize(p float64)       { e.randomizes++; e.lastDensity = p }

func newLifeController(t *testing.T, rows, cols int) (*Controller, *life.Engine) {
	t.Helper()
	e, err := life.New(rows, cols)
	if err != nil {
		t.Fatal(err)
	}
	return New(e, DefaultConfig()), e
}

func TestNewControllerDefaults(t *testing.T) {
	c := New(&countingEngine{}, DefaultConfig())
	want := State{Generation: 0, Running: false, IntervalMs: DefaultIntervalMs}
	if got := c.State(); got != want {
		t.Fatalf("State()=%+v, want %+v", got, want)
	}
	if c.Phase() != Stopped {
		t.Fatalf("new controller should be stopped, got %v", c.Phase())
	}
}

func TestNewControllerNormalizesConfig(t *testing.T) {
	eng := &countingEngine{}
	c := New(eng, Config{IntervalMs: 333, Density: 4})
	if got := c.State().IntervalMs; got != 300 {
		t.Fatalf("interval=%d, want 300", got)
	}
	if err := c.Randomize(); err != nil {
		t.Fatal(err)
	}
	if eng.lastDensity != life.DefaultDensity {
		t.Fatalf("out-of-range density should fall back to default, got %v", eng.lastDensity)
	}
}

func TestStartStopIdempotent(t *testing.T) {
	c := New(&countingEngine{}, DefaultConfig())
	c.Stop()
	once := c.State()
	c.Stop()
	if c.State() != once {
		t.Fatalf("second Stop changed state: %+v -> %+v", once, c.State())
	}

	c.Start()
	c.Start()
	if !c.Running() || c.Phase() != Running {
		t.Fatal("expected running after Start")
	}
	c.Stop()
	c.Stop()
	if c.Running() {
		t.Fatal("expected stopped after Stop")
	}
}

func TestEditsRejectedWhileRunning(t *testing.T) {
	eng := &countingEngine{}
	c := New(eng, DefaultConfig())
	c.Start()

	if err := c.Clear(); !errors.Is(err, core.ErrInvalidOperation) {
		t.Fatalf("Clear err=%v, want ErrInvalidOperation", err)
	}
	if err := c.Randomize(); !errors.Is(err, core.ErrInvalidOperation) {
		t.Fatalf("Randomize err=%v, want ErrInvalidOperation", err)
	}
	if err := c.ToggleCell(0, 0); !errors.Is(err, core.ErrInvalidOperation) {
		t.Fatalf("ToggleCell err=%v, want ErrInvalidOperation", err)
	}
	if eng.clears+eng.randomizes+eng.toggles != 0 {
		t.Fatalf("rejected edits reached the engine: %+v", eng)
	}
}

func TestMaybeAdvanceRejectedWhileStopped(t *testing.T) {
	eng := &countingEngine{}
	c := New(eng, DefaultConfig())
	stepped, err := c.MaybeAdvance(10_000)
	if stepped || !errors.Is(err, core.ErrInvalidOperation) {
		t.Fatalf("MaybeAdvance while stopped = (%v, %v)", stepped, err)
	}
	if eng.steps != 0 || c.State().Generation != 0 {
		t.Fatal("stopped controller must not step")
	}
}

func TestMaybeAdvanceHonoursInterval(t *testing.T) {
	c, e := newLifeController(t, 3, 3)
	for col := 0; col < 3; col++ {
		if err := c.ToggleCell(1, col); err != nil {
			t.Fatal(err)
		}
	}
	c.Start()

	stepped, err := c.MaybeAdvance(200)
	if err != nil || !stepped {
		t.Fatalf("first poll after one interval = (%v, %v)", stepped, err)
	}
	if c.State().Generation != 1 {
		t.Fatalf("generation=%d, want 1", c.State().Generation)
	}
	after := e.Snapshot()

	stepped, err = c.MaybeAdvance(399)
	if err != nil || stepped {
		t.Fatalf("early poll = (%v, %v), want no step", stepped, err)
	}
	if c.State().Generation != 1 {
		t.Fatalf("early poll changed generation to %d", c.State().Generation)
	}
	if !e.Snapshot().Equal(after) {
		t.Fatal("early poll changed the grid")
	}

	stepped, _ = c.MaybeAdvance(400)
	if !stepped || c.State().Generation != 2 {
		t.Fatalf("poll at baseline+interval should step, generation=%d", c.State().Generation)
	}
}

func TestUpdateSpeedClamps(t *testing.T) {
	c := New(&countingEngine{}, DefaultConfig())
	cases := []struct{ in, want int }{
		{10, 50},
		{5000, 1000},
		{73, 50},
		{275, 250},
		{1000, 1000},
		{-20, 50},
	}
	for _, tc := range cases {
		if got := c.UpdateSpeed(tc.in); got != tc.want {
			t.Fatalf("UpdateSpeed(%d)=%d, want %d", tc.in, got, tc.want)
		}
		if got := c.State().IntervalMs; got != tc.want {
			t.Fatalf("State().IntervalMs=%d after UpdateSpeed(%d), want %d", got, tc.in, tc.want)
		}
	}
}

func TestUpdateSpeedKeepsBaseline(t *testing.T) {
	eng := &countingEngine{}
	c := New(eng, Config{IntervalMs: 100, Density: 0.3})
	c.Start()
	if stepped, _ := c.MaybeAdvance(1000); !stepped {
		t.Fatal("expected a step at t=1000")
	}

	// Slowing down mid-wait extends the wait from the t=1000 baseline.
	c.UpdateSpeed(500)
	if stepped, _ := c.MaybeAdvance(1200); stepped {
		t.Fatal("slower interval should not fire 200ms after the baseline")
	}
	if stepped, _ := c.MaybeAdvance(1500); !stepped {
		t.Fatal("expected a step 500ms after the baseline")
	}

	// Speed changes are accepted while stopped too.
	c.Stop()
	if got := c.UpdateSpeed(750); got != 750 || c.State().IntervalMs != 750 {
		t.Fatalf("UpdateSpeed while stopped stored %d", c.State().IntervalMs)
	}
}

func TestClearAndRandomizeResetGeneration(t *testing.T) {
	c, e := newLifeController(t, 10, 10)
	if err := c.Randomize(); err != nil {
		t.Fatal(err)
	}
	c.Start()
	c.MaybeAdvance(200)
	c.MaybeAdvance(400)
	if c.State().Generation != 2 {
		t.Fatalf("generation=%d, want 2", c.State().Generation)
	}
	c.Stop()

	if err := c.Clear(); err != nil {
		t.Fatal(err)
	}
	if c.State().Generation != 0 || e.Population() != 0 {
		t.Fatalf("clear left generation=%d population=%d", c.State().Generation, e.Population())
	}

	c.Start()
	c.MaybeAdvance(600)
	c.Stop()
	if err := c.Randomize(); err != nil {
		t.Fatal(err)
	}
	if c.State().Generation != 0 {
		t.Fatalf("randomize left generation=%d", c.State().Generation)
	}
}

func TestToggleCellOutOfBounds(t *testing.T) {
	c, _ := newLifeController(t, 3, 3)
	if err := c.ToggleCell(3, 0); !errors.Is(err, core.ErrOutOfBounds) {
		t.Fatalf("ToggleCell(3,0) err=%v, want ErrOutOfBounds", err)
	}
}

func TestParametersReflectState(t *testing.T) {
	c := New(&countingEngine{}, DefaultConfig())
	c.UpdateSpeed(450)
	c.Start()
	c.MaybeAdvance(450)
	snap := c.Parameters()
	checks := map[string]string{
		"generation":  "1",
		"running":     "true",
		"interval_ms": "450",
		"density":     "0.3",
	}
	for key, want := range checks {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("missing parameter %q", key)
		}
		if p.Value != want {
			t.Fatalf("%s=%q, want %q", key, p.Value, want)
		}
	}
}

func TestPhaseString(t *testing.T) {
	if Stopped.String() != "stopped" || Running.String() != "running" {
		t.Fatalf("unexpected phase names %q %q", Stopped, Running)
	}
}

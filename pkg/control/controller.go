package control

import (
	"fmt"
	"strconv"

	"mad-life/pkg/core"
	"mad-life/pkg/sims/life"
)

// Phase is the playback state of a Controller.
type Phase uint8

const (
	// Stopped permits edits and blocks stepping.
	Stopped Phase = iota
	// Running advances generations and blocks edits.
	Running
)

func (p Phase) String() string {
	switch p {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	default:
		return "phase(" + strconv.Itoa(int(p)) + ")"
	}
}

// Engine is the part of the grid engine the controller drives.
type Engine interface {
	Step()
	Toggle(row, col int) error
	Clear()
	Randomize(probabilityAlive float64)
}

// Config holds the controller's starting parameters.
type Config struct {
	IntervalMs int
	Density    float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{IntervalMs: DefaultIntervalMs, Density: life.DefaultDensity}
}

// State is the playback state exposed to renderers.
type State struct {
	Generation int
	Running    bool
	IntervalMs int
}

// Controller gates edits on the playback phase, counts generations and
// decides, when polled, whether the next generation is due. It is not safe
// for concurrent use.
type Controller struct {
	engine     Engine
	phase      Phase
	generation int
	density    float64
	pacer      *core.Pacer
}

// New returns a stopped Controller driving engine.
func New(engine Engine, cfg Config) *Controller {
	density := cfg.Density
	if density < 0 || density > 1 {
		density = life.DefaultDensity
	}
	return &Controller{
		engine:  engine,
		phase:   Stopped,
		density: density,
		pacer:   core.NewPacer(ClampInterval(cfg.IntervalMs)),
	}
}

// Phase returns the current playback phase.
func (c *Controller) Phase() Phase { return c.phase }

// Running reports whether the simulation is advancing.
func (c *Controller) Running() bool { return c.phase == Running }

// State returns a copy of the playback state.
func (c *Controller) State() State {
	return State{
		Generation: c.generation,
		Running:    c.phase == Running,
		IntervalMs: c.pacer.Interval(),
	}
}

// Start begins playback. It is a no-op when already running.
func (c *Controller) Start() { c.phase = Running }

// Stop halts playback. It is a no-op when already stopped.
func (c *Controller) Stop() { c.phase = Stopped }

// Clear kills every cell and resets the generation counter.
func (c *Controller) Clear() error {
	if err := c.requireStopped("clear"); err != nil {
		return err
	}
	c.engine.Clear()
	c.generation = 0
	return nil
}

// Randomize reseeds the grid at the configured density and resets the
// generation counter.
func (c *Controller) Randomize() error {
	if err := c.requireStopped("randomize"); err != nil {
		return err
	}
	c.engine.Randomize(c.density)
	c.generation = 0
	return nil
}

// ToggleCell flips a single cell.
func (c *Controller) ToggleCell(row, col int) error {
	if err := c.requireStopped("toggle cells"); err != nil {
		return err
	}
	return c.engine.Toggle(row, col)
}

// MaybeAdvance steps the engine when at least one interval has elapsed since
// the previous step, and reports whether it did. nowMs must come from a
// monotonically increasing millisecond clock owned by the caller.
func (c *Controller) MaybeAdvance(nowMs int64) (bool, error) {
	if c.phase != Running {
		return false, fmt.Errorf("%w: cannot advance while stopped", core.ErrInvalidOperation)
	}
	if !c.pacer.Due(nowMs) {
		return false, nil
	}
	c.engine.Step()
	c.generation++
	c.pacer.Mark(nowMs)
	return true, nil
}

// UpdateSpeed stores a new step interval, clamped and rounded down to a
// multiple of IntervalStepMs, and returns the stored value. It is permitted in
// either phase and keeps the baseline of the last step.
func (c *Controller) UpdateSpeed(valueMs int) int {
	v := ClampInterval(valueMs)
	c.pacer.SetInterval(v)
	return v
}

// Parameters reports playback values for display.
func (c *Controller) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Playback",
		Params: []core.Parameter{
			{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(c.generation)},
			{Key: "running", Label: "Running", Type: core.ParamTypeBool, Value: strconv.FormatBool(c.phase == Running)},
			{Key: "interval_ms", Label: "Speed", Type: core.ParamTypeInt, Value: strconv.Itoa(c.pacer.Interval())},
			{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(c.density, 'f', -1, 64)},
		},
	}}}
}

func (c *Controller) requireStopped(action string) error {
	if c.phase == Running {
		return fmt.Errorf("%w: cannot %s while running", core.ErrInvalidOperation, action)
	}
	return nil
}

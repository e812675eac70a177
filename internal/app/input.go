package app

import (
	"mad-life/internal/ui"
	"mad-life/pkg/core"
)

// Playback is the controller surface pointer input drives.
type Playback interface {
	Running() bool
	Start()
	Stop()
	Clear() error
	Randomize() error
	ToggleCell(row, col int) error
	UpdateSpeed(valueMs int) int
}

// Action records what a pointer event resolved to.
type Action struct {
	Control ui.Control
	Cell    core.Coord
	Toggled bool
}

// HandlePointerDown resolves a press at (x, y) to a control or a grid cell
// and applies it. Disabled controls and grid presses while running resolve to
// nothing.
func HandlePointerDown(p Playback, l ui.Layout, x, y int) (Action, error) {
	running := p.Running()
	act := Action{Control: l.ControlAt(x, y, running)}
	var err error
	switch act.Control {
	case ui.ControlStart:
		p.Start()
	case ui.ControlStop:
		p.Stop()
	case ui.ControlClear:
		err = p.Clear()
	case ui.ControlRandomize:
		err = p.Randomize()
	case ui.ControlSpeed:
		p.UpdateSpeed(l.SliderInterval(x))
	}
	if act.Control != ui.ControlNone || running {
		return act, err
	}

	if cell, ok := l.CellAt(x, y); ok {
		act.Cell = cell
		if err := p.ToggleCell(cell.Row, cell.Col); err != nil {
			return act, err
		}
		act.Toggled = true
	}
	return act, nil
}

// HandlePointerDrag updates the speed while the pointer is held over the
// slider. It reports whether the speed was changed.
func HandlePointerDrag(p Playback, l ui.Layout, x, y int) bool {
	if l.ControlAt(x, y, p.Running()) != ui.ControlSpeed {
		return false
	}
	p.UpdateSpeed(l.SliderInterval(x))
	return true
}

package ui

import (
	"image"

	"mad-life/pkg/control"
	"mad-life/pkg/core"
)

// Control identifies an on-screen control.
type Control uint8

const (
	ControlNone Control = iota
	ControlStart
	ControlStop
	ControlClear
	ControlRandomize
	ControlSpeed
)

func (c Control) String() string {
	switch c {
	case ControlStart:
		return "start"
	case ControlStop:
		return "stop"
	case ControlClear:
		return "clear"
	case ControlRandomize:
		return "randomize"
	case ControlSpeed:
		return "speed"
	default:
		return "none"
	}
}

// DefaultCellSize is the pixel size of one cell, including its gutter.
const DefaultCellSize = 15

const (
	gridOrigin = 20

	buttonWidth   = 100
	buttonHeight  = 40
	buttonSpacing = 15
	buttonStartX  = 50
	buttonOffsetY = 30

	sliderWidth   = 200
	sliderHeight  = 20
	sliderGap     = 20
	handleWidth   = 10
	handleOverlap = 5

	footerHeight = 90
	rightMargin  = 30
	minWidth     = buttonStartX + 4*buttonWidth + 3*buttonSpacing + 50
)

// Button describes a clickable control and its caption.
type Button struct {
	Control Control
	Label   string
	Rect    image.Rectangle
}

// Enabled reports whether the button accepts clicks in the given phase.
func (b Button) Enabled(running bool) bool {
	if b.Control == ControlStop {
		return running
	}
	return !running
}

// Layout places the grid and controls in window coordinates.
type Layout struct {
	Rows, Cols int
	CellSize   int

	Grid    image.Rectangle
	Buttons []Button
	Slider  image.Rectangle

	Width, Height int
}

// NewLayout computes positions for a rows×cols grid. A non-positive cellSize
// selects DefaultCellSize.
func NewLayout(rows, cols, cellSize int) Layout {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	gridW, gridH := cols*cellSize, rows*cellSize
	l := Layout{
		Rows:     rows,
		Cols:     cols,
		CellSize: cellSize,
		Grid:     image.Rect(gridOrigin, gridOrigin, gridOrigin+gridW, gridOrigin+gridH),
	}

	buttonY := gridH + buttonOffsetY
	labels := []struct {
		control Control
		label   string
	}{
		{ControlStart, "Start"},
		{ControlStop, "Stop"},
		{ControlClear, "Clear"},
		{ControlRandomize, "Random"},
	}
	for i, b := range labels {
		x := buttonStartX + i*(buttonWidth+buttonSpacing)
		l.Buttons = append(l.Buttons, Button{
			Control: b.control,
			Label:   b.label,
			Rect:    image.Rect(x, buttonY, x+buttonWidth, buttonY+buttonHeight),
		})
	}

	sliderY := buttonY + buttonHeight + sliderGap
	l.Slider = image.Rect(buttonStartX, sliderY, buttonStartX+sliderWidth, sliderY+sliderHeight)

	l.Width = max(l.Grid.Max.X+rightMargin, minWidth)
	l.Height = l.Slider.Max.Y + footerHeight
	return l
}

// CellAt translates a pointer position into a grid coordinate. It reports
// false when the position is outside the grid's pixel region.
func (l Layout) CellAt(x, y int) (core.Coord, bool) {
	if !image.Pt(x, y).In(l.Grid) {
		return core.Coord{}, false
	}
	row := (y - l.Grid.Min.Y) / l.CellSize
	col := (x - l.Grid.Min.X) / l.CellSize
	if row < 0 || row >= l.Rows || col < 0 || col >= l.Cols {
		return core.Coord{}, false
	}
	return core.Coord{Row: row, Col: col}, true
}

// CellRect returns the pixel rectangle covered by a cell, gutter included.
func (l Layout) CellRect(row, col int) image.Rectangle {
	x := l.Grid.Min.X + col*l.CellSize
	y := l.Grid.Min.Y + row*l.CellSize
	return image.Rect(x, y, x+l.CellSize, y+l.CellSize)
}

// ControlAt returns the enabled control under the pointer, or ControlNone.
func (l Layout) ControlAt(x, y int, running bool) Control {
	p := image.Pt(x, y)
	for _, b := range l.Buttons {
		if b.Enabled(running) && p.In(b.Rect) {
			return b.Control
		}
	}
	if p.In(l.Slider) {
		return ControlSpeed
	}
	return ControlNone
}

// SliderInterval maps a pointer x position on the slider linearly onto the
// interval range and snaps it down to a multiple of the interval step.
func (l Layout) SliderInterval(x int) int {
	span := control.MaxIntervalMs - control.MinIntervalMs
	rel := x - l.Slider.Min.X
	return control.ClampInterval(control.MinIntervalMs + rel*span/l.Slider.Dx())
}

// Handle returns the slider handle rectangle for the given interval.
func (l Layout) Handle(intervalMs int) image.Rectangle {
	span := control.MaxIntervalMs - control.MinIntervalMs
	x := l.Slider.Min.X + (intervalMs-control.MinIntervalMs)*l.Slider.Dx()/span
	return image.Rect(x, l.Slider.Min.Y-handleOverlap, x+handleWidth, l.Slider.Max.Y+handleOverlap)
}

// SpeedLabelAt is the top-left corner of the "Speed:" caption.
func (l Layout) SpeedLabelAt() image.Point {
	return image.Pt(l.Slider.Min.X, l.Slider.Min.Y-20)
}

// SpeedValueAt is the top-left corner of the interval readout.
func (l Layout) SpeedValueAt() image.Point {
	return image.Pt(l.Slider.Max.X+15, l.Slider.Min.Y-5)
}

// GenerationAt is the top-left corner of the generation counter.
func (l Layout) GenerationAt() image.Point { return image.Pt(gridOrigin, l.Height-40) }

// HintAt is the top-left corner of the editing hint.
func (l Layout) HintAt() image.Point { return image.Pt(gridOrigin, l.Height-20) }

//go:build ebiten

package app

import (
	"errors"
	"log"

	"mad-life/internal/render"
	"mad-life/internal/ui"
	"mad-life/pkg/control"
	"mad-life/pkg/core"
	"mad-life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the engine and controller to the ebiten.Game interface.
type Game struct {
	engine *life.Engine
	ctl    *control.Controller
	layout ui.Layout
	clock  *Clock

	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
}

// New constructs a Game for the provided engine and controller.
func New(engine *life.Engine, ctl *control.Controller, layout ui.Layout) *Game {
	painter := render.NewGridPainter(layout.Rows, layout.Cols, layout.CellSize)
	painter.On = ui.Indigo
	painter.Off = ui.White
	painter.Gutter = ui.GridBG
	return &Game{
		engine:  engine,
		ctl:     ctl,
		layout:  layout,
		clock:   NewClock(),
		painter: painter,
		hud:     ui.NewHUD(layout),
		overlay: ui.NewOverlay(layout),
	}
}

// Update handles per-frame input and polls the controller for a step.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.ctl.Running() {
			g.ctl.Stop()
		} else {
			g.ctl.Start()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.report(g.ctl.Clear())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.report(g.ctl.Randomize())
	}
	g.overlay.Update()

	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		_, err := HandlePointerDown(g.ctl, g.layout, x, y)
		g.report(err)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		HandlePointerDrag(g.ctl, g.layout, x, y)
	}

	if g.ctl.Running() {
		_, err := g.ctl.MaybeAdvance(g.clock.Millis())
		g.report(err)
	}
	return nil
}

// Draw renders the grid, overlay and controls.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.Background)
	g.painter.Blit(screen, g.engine.Snapshot(), g.layout.Grid.Min)
	g.overlay.Draw(screen, g.engine)
	g.hud.Draw(screen, g.ctl.State())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.Width, g.layout.Height
}

func (g *Game) report(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, core.ErrInvalidOperation) {
		log.Printf("ignored: %v", err)
		return
	}
	log.Printf("input: %v", err)
}

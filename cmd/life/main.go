//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"mad-life/internal/app"
	"mad-life/internal/ui"
	"mad-life/pkg/control"
	"mad-life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	engine, err := life.NewWithConfig(cfg.LifeConfig())
	if err != nil {
		log.Fatalf("create grid: %v", err)
	}
	ctl := control.New(engine, cfg.ControlConfig())
	if cfg.Randomize {
		if err := ctl.Randomize(); err != nil {
			log.Fatalf("seed grid: %v", err)
		}
	}

	layout := ui.NewLayout(cfg.Rows, cfg.Cols, cfg.CellSize)
	game := app.New(engine, ctl, layout)

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(layout.Width, layout.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"mad-life/internal/app"
	"mad-life/internal/render"
	"mad-life/pkg/control"
	"mad-life/pkg/sims/life"

	"github.com/gosuri/uilive"
)

func main() {
	def := life.DefaultConfig()
	rows := flag.Int("rows", def.Rows, "grid rows")
	cols := flag.Int("cols", def.Cols, "grid columns")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for the random board")
	density := flag.Float64("density", def.Density, "probability a cell starts alive")
	interval := flag.Int("interval", control.DefaultIntervalMs, "milliseconds between generations (50-1000)")
	generations := flag.Int("generations", 0, "stop after this many generations (0 runs until extinction)")
	poll := flag.Duration("poll", 10*time.Millisecond, "how often the controller is polled")
	flag.Parse()

	engine, err := life.NewWithConfig(life.Config{Rows: *rows, Cols: *cols, Seed: *seed, Density: *density})
	if err != nil {
		log.Fatalf("create grid: %v", err)
	}
	ctl := control.New(engine, control.Config{IntervalMs: *interval, Density: *density})
	if err := ctl.Randomize(); err != nil {
		log.Fatalf("seed grid: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	writer := uilive.New()
	writer.Start()
	defer writer.Stop()

	draw := func() {
		fmt.Fprintln(writer, render.Text(engine.Snapshot(), '█', '·'))
		fmt.Fprintf(writer, "%s  Population: %d\n", render.StatusLine(ctl.Parameters()), engine.Population())
	}
	draw()

	clock := app.NewClock()
	ctl.Start()
	ticker := time.NewTicker(*poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			ctl.Stop()
			draw()
			return
		case <-ticker.C:
		}

		stepped, err := ctl.MaybeAdvance(clock.Millis())
		if err != nil {
			log.Printf("advance: %v", err)
			return
		}
		if !stepped {
			continue
		}
		done := engine.Population() == 0 || (*generations > 0 && ctl.State().Generation >= *generations)
		if done {
			ctl.Stop()
		}
		draw()
		if done {
			return
		}
	}
}

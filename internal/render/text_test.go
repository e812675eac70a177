package render

import (
	"testing"

	"mad-life/pkg/core"
	"mad-life/pkg/sims/life"
)

func TestText(t *testing.T) {
	e, _ := life.New(2, 3)
	_ = e.Toggle(0, 1)
	_ = e.Toggle(1, 2)
	got := Text(e.Snapshot(), 'O', '-')
	want := "-O-\n--O"
	if got != want {
		t.Fatalf("Text()=%q, want %q", got, want)
	}
}

func TestStatusLine(t *testing.T) {
	ps := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Playback", Params: []core.Parameter{
			{Key: "generation", Label: "Generation", Value: "7"},
			{Key: "interval_ms", Label: "Speed", Value: "200"},
		}},
		{Name: "Grid", Params: []core.Parameter{
			{Key: "population", Label: "Population", Value: "12"},
		}},
	}}
	want := "Generation: 7  Speed: 200  Population: 12"
	if got := StatusLine(ps); got != want {
		t.Fatalf("StatusLine()=%q, want %q", got, want)
	}
}

package life

import "testing"

func TestSurveyEmptyBoardSettlesImmediately(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = 8, 8
	cfg.Density = 0
	res, err := Survey(cfg, 100)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Extinct() || !res.Settled() || res.SettledAt != 0 {
		t.Fatalf("empty board should settle on the first step, got %+v", res)
	}
	if res.Generations != 1 {
		t.Fatalf("expected the run to stop after one generation, ran %d", res.Generations)
	}
}

func TestSurveyFullBoardDiesOut(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = 6, 6
	cfg.Density = 1
	res, err := Survey(cfg, 50)
	if err != nil {
		t.Fatal(err)
	}
	if res.Initial != 36 || res.Peak != 36 {
		t.Fatalf("unexpected initial/peak population %+v", res)
	}
	if !res.Extinct() {
		t.Fatalf("a packed 6x6 board should die out, got %+v", res)
	}
}

func TestSurveyDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	a, err := Survey(cfg, 40)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Survey(cfg, 40)
	if a != b {
		t.Fatalf("survey not deterministic: %+v vs %+v", a, b)
	}
}

func TestSurveyRejectsInvalidDimensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 0
	if _, err := Survey(cfg, 10); err == nil {
		t.Fatal("expected an error for a zero-row board")
	}
}

package life

// SurveyResult summarises a headless run of a randomly seeded board.
type SurveyResult struct {
	Density     float64
	Seed        int64
	Generations int

	Initial int
	Final   int
	Peak    int

	// SettledAt is the first generation whose successor was identical, or -1
	// if the board was still changing when the run ended.
	SettledAt int
}

// Extinct reports whether the board died out.
func (r SurveyResult) Extinct() bool { return r.Final == 0 }

// Settled reports whether the board reached a still life.
func (r SurveyResult) Settled() bool { return r.SettledAt >= 0 }

// Survey seeds a board from cfg and steps it up to generations times. The run
// stops early once a generation reproduces itself exactly.
func Survey(cfg Config, generations int) (SurveyResult, error) {
	e, err := NewWithConfig(cfg)
	if err != nil {
		return SurveyResult{}, err
	}
	e.Randomize(cfg.Density)

	res := SurveyResult{
		Density:   cfg.Density,
		Seed:      cfg.Seed,
		Initial:   e.Population(),
		SettledAt: -1,
	}
	res.Peak = res.Initial

	prev := e.Snapshot()
	for gen := 0; gen < generations; gen++ {
		e.Step()
		res.Generations = gen + 1
		next := e.Snapshot()
		if pop := next.Population(); pop > res.Peak {
			res.Peak = pop
		}
		if next.Equal(prev) {
			res.SettledAt = gen
			break
		}
		prev = next
	}
	res.Final = e.Population()
	return res, nil
}

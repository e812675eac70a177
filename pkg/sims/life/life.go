package life

import (
	"mad-life/pkg/core"
)

// Engine implements Conway's Game of Life on a finite grid with hard edges:
// cells beyond the border do not exist and are never counted as neighbours.
type Engine struct {
	cur *core.BoolGrid
	nxt *core.BoolGrid
	rng *core.RNG
}

// New returns an Engine with the provided dimensions and every cell dead.
func New(rows, cols int) (*Engine, error) {
	cur, err := core.NewBoolGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	nxt, err := core.NewBoolGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	return &Engine{cur: cur, nxt: nxt, rng: core.NewRNG(DefaultConfig().Seed)}, nil
}

// NewWithConfig returns an Engine sized and seeded from cfg. The grid starts
// empty; call Randomize to populate it.
func NewWithConfig(cfg Config) (*Engine, error) {
	e, err := New(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	e.Reseed(cfg.Seed)
	return e, nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.cur.Size() }

// Reseed replaces the random source used by Randomize.
func (e *Engine) Reseed(seed int64) { e.rng = core.NewRNG(seed) }

// SetSource installs a caller-owned random source for Randomize.
func (e *Engine) SetSource(rng *core.RNG) {
	if rng != nil {
		e.rng = rng
	}
}

// CountLiveNeighbors returns the number of live cells in the Moore
// neighbourhood of (row, col).
func (e *Engine) CountLiveNeighbors(row, col int) (int, error) {
	if err := e.cur.Check(row, col); err != nil {
		return 0, err
	}
	return liveNeighbors(e.cur, row, col), nil
}

// NeighborCounts writes the live-neighbour count of every cell into dst,
// growing it if needed, and returns it.
func (e *Engine) NeighborCounts(dst []uint8) []uint8 {
	total := e.cur.Size().Cells()
	if cap(dst) < total {
		dst = make([]uint8, total)
	}
	dst = dst[:total]
	for row := 0; row < e.cur.Rows; row++ {
		for col := 0; col < e.cur.Cols; col++ {
			dst[e.cur.Index(row, col)] = uint8(liveNeighbors(e.cur, row, col))
		}
	}
	return dst
}

// Step advances the simulation by one generation. Every cell of the next
// generation is computed from the current buffer into the scratch buffer, and
// the two are swapped only once the pass is complete.
func (e *Engine) Step() {
	cur, nxt := e.cur.Cells(), e.nxt.Cells()
	for row := 0; row < e.cur.Rows; row++ {
		for col := 0; col < e.cur.Cols; col++ {
			idx := e.cur.Index(row, col)
			neighbors := liveNeighbors(e.cur, row, col)
			alive := cur[idx]
			nxt[idx] = (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
		}
	}
	e.cur, e.nxt = e.nxt, e.cur
}

// Toggle flips the state of a single cell.
func (e *Engine) Toggle(row, col int) error {
	if err := e.cur.Check(row, col); err != nil {
		return err
	}
	idx := e.cur.Index(row, col)
	e.cur.Cells()[idx] = !e.cur.Cells()[idx]
	return nil
}

// Set forces a single cell alive or dead.
func (e *Engine) Set(row, col int, alive bool) error {
	if err := e.cur.Check(row, col); err != nil {
		return err
	}
	e.cur.Cells()[e.cur.Index(row, col)] = alive
	return nil
}

// Clear kills every cell.
func (e *Engine) Clear() { e.cur.Clear() }

// Randomize sets each cell alive independently with probability
// probabilityAlive using the engine's random source.
func (e *Engine) Randomize(probabilityAlive float64) {
	e.rng.FillChance(e.cur.Cells(), probabilityAlive)
}

// Population returns the number of live cells.
func (e *Engine) Population() int { return e.cur.Count() }

// Snapshot returns a read-only copy of the current generation.
func (e *Engine) Snapshot() Snapshot {
	return newSnapshot(e.cur)
}

func liveNeighbors(g *core.BoolGrid, row, col int) int {
	cells := g.Cells()
	neighbors := 0
	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= g.Rows {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			c := col + dc
			if (dr == 0 && dc == 0) || c < 0 || c >= g.Cols {
				continue
			}
			if cells[g.Index(r, c)] {
				neighbors++
			}
		}
	}
	return neighbors
}

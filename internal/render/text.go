package render

import (
	"strings"

	"mad-life/pkg/core"
	"mad-life/pkg/sims/life"
)

// Text renders a snapshot for a terminal, one line per row.
func Text(snap life.Snapshot, alive, dead rune) string {
	var b strings.Builder
	for row := 0; row < snap.Rows(); row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < snap.Cols(); col++ {
			if snap.At(row, col) {
				b.WriteRune(alive)
			} else {
				b.WriteRune(dead)
			}
		}
	}
	return b.String()
}

// StatusLine flattens a parameter snapshot into "Label: value" pairs.
func StatusLine(ps core.ParameterSnapshot) string {
	var parts []string
	for _, g := range ps.Groups {
		for _, p := range g.Params {
			parts = append(parts, p.Label+": "+p.Value)
		}
	}
	return strings.Join(parts, "  ")
}

package life

import (
	"fmt"
	"sort"
)

// Pattern is a set of live cells given as (row, col) offsets from an anchor.
type Pattern [][2]int

// Patterns lists the named seeds the drivers can place.
var Patterns = map[string]Pattern{
	"block":   {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	"blinker": {{0, 0}, {0, 1}, {0, 2}},
	"toad":    {{0, 1}, {0, 2}, {0, 3}, {1, 0}, {1, 1}, {1, 2}},
	"beacon":  {{0, 0}, {0, 1}, {1, 0}, {2, 3}, {3, 2}, {3, 3}},
	"glider":  {{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
}

// PatternNames returns the pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(Patterns))
	for name := range Patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Place brings the cells of p anchored at (row, col) to life. Nothing is
// written unless every cell fits on the board.
func (b *Board) Place(p Pattern, row, col int) error {
	for _, off := range p {
		r, c := row+off[0], col+off[1]
		if !b.cur.Contains(r, c) {
			return fmt.Errorf("pattern cell (%d,%d) outside %s board", r, c, b.Size())
		}
	}
	for _, off := range p {
		b.SetCell(row+off[0], col+off[1], Alive)
	}
	return nil
}

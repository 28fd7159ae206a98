package render

import (
	"strings"

	"threshold-life/internal/core"
)

// Glyphs used by Text.
const (
	AliveGlyph = '#'
	DeadGlyph  = '.'
)

// Text renders the sim as one line per row using AliveGlyph and DeadGlyph.
func Text(sim core.Sim) string {
	size := sim.Size()
	cells := sim.CopyCells(nil)
	var sb strings.Builder
	sb.Grow(size.Rows * (size.Cols + 1))
	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			if cells[row*size.Cols+col] != 0 {
				sb.WriteByte(AliveGlyph)
			} else {
				sb.WriteByte(DeadGlyph)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

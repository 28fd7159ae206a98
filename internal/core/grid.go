package core

import (
	"fmt"
	"math"
)

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// Rows run top to bottom and columns left to right; there is no wrapping.
type ByteGrid struct {
	Rows, Cols int
	data       []uint8
}

// NewByteGrid allocates a zeroed grid with the given dimensions. It panics
// when rows*cols does not fit in an int.
func NewByteGrid(rows, cols int) *ByteGrid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	if cols > math.MaxInt/rows {
		panic(fmt.Sprintf("grid %dx%d has too many cells", rows, cols))
	}
	return &ByteGrid{Rows: rows, Cols: cols, data: make([]uint8, rows*cols)}
}

// Cells exposes the backing slice so owners can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *ByteGrid) Index(row, col int) int { return row*g.Cols + col }

// Contains reports whether (row, col) lies on the grid.
func (g *ByteGrid) Contains(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// MustContain panics when (row, col) is off the grid.
func (g *ByteGrid) MustContain(row, col int) {
	if !g.Contains(row, col) {
		panic(fmt.Sprintf("cell (%d,%d) outside %dx%d grid", row, col, g.Rows, g.Cols))
	}
}

// At returns the value stored at (row, col).
func (g *ByteGrid) At(row, col int) uint8 { return g.data[g.Index(row, col)] }

// Set stores v at (row, col).
func (g *ByteGrid) Set(row, col int, v uint8) { g.data[g.Index(row, col)] = v }

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

package core

import "fmt"

// Size describes the dimensions of a simulation grid.
type Size struct {
	Rows int
	Cols int
}

// String renders the size as "<rows>x<cols>".
func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// Sim is the read side of an automaton that drivers render and advance.
type Sim interface {
	Name() string
	Size() Size
	Step()
	Generation() int
	Population() int
	// CopyCells writes the row-major cell values into dst, growing it when
	// needed, and returns the filled slice.
	CopyCells(dst []uint8) []uint8
}

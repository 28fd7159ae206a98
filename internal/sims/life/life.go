package life

import (
	"fmt"

	"threshold-life/internal/config"
	"threshold-life/internal/core"
)

// State is the value of a single cell.
type State uint8

const (
	Dead  State = 0
	Alive State = 1
)

func (s State) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Board is a Game of Life grid with hard edges and a configurable birth
// threshold. A Board is not safe for concurrent use.
type Board struct {
	cfg config.Config
	cur *core.ByteGrid
	nxt *core.ByteGrid
	gen int
}

// New returns an all-dead board sized and ruled by cfg. It panics if cfg is
// the invalid zero value.
func New(cfg config.Config) *Board {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("life.New: %v", err))
	}
	return &Board{
		cfg: cfg,
		cur: core.NewByteGrid(cfg.Rows(), cfg.Cols()),
		nxt: core.NewByteGrid(cfg.Rows(), cfg.Cols()),
	}
}

// Name returns the simulation identifier.
func (b *Board) Name() string { return "life" }

// Config returns the configuration the board was built from.
func (b *Board) Config() config.Config { return b.cfg }

// Size returns the grid dimensions.
func (b *Board) Size() core.Size { return core.Size{Rows: b.cur.Rows, Cols: b.cur.Cols} }

// Generation returns the number of steps since construction or Clear.
func (b *Board) Generation() int { return b.gen }

// Cell returns the state of (row, col). Off-grid coordinates panic.
func (b *Board) Cell(row, col int) State {
	b.cur.MustContain(row, col)
	return State(b.cur.At(row, col))
}

// SetCell overwrites the state of (row, col) without applying the rule.
// Off-grid coordinates panic.
func (b *Board) SetCell(row, col int, s State) {
	b.cur.MustContain(row, col)
	if s != Dead {
		s = Alive
	}
	b.cur.Set(row, col, uint8(s))
}

// CountLiveNeighbors counts the live cells among the up to eight cells
// surrounding (row, col). Positions past the edges do not exist.
func (b *Board) CountLiveNeighbors(row, col int) int {
	b.cur.MustContain(row, col)
	return b.neighbors(row, col)
}

func (b *Board) neighbors(row, col int) int {
	rows, cols := b.cur.Rows, b.cur.Cols
	cells := b.cur.Cells()
	count := 0
	for r := max(0, row-1); r < min(rows, row+2); r++ {
		for c := max(0, col-1); c < min(cols, col+2); c++ {
			count += int(cells[b.cur.Index(r, c)])
		}
	}
	return count - int(cells[b.cur.Index(row, col)])
}

// Step advances the board by one generation. Every cell of the next
// generation is computed from the current one before the buffers swap.
func (b *Board) Step() {
	rows, cols := b.cur.Rows, b.cur.Cols
	cur, nxt := b.cur.Cells(), b.nxt.Cells()
	birth := b.cfg.BirthThreshold()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			idx := b.cur.Index(row, col)
			n := b.neighbors(row, col)
			nxt[idx] = 0
			if cur[idx] == 1 {
				if n == 2 || n == 3 {
					nxt[idx] = 1
				}
			} else if n == birth {
				nxt[idx] = 1
			}
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
	b.gen++
}

// Population returns the number of live cells.
func (b *Board) Population() int {
	n := 0
	for _, v := range b.cur.Cells() {
		n += int(v)
	}
	return n
}

// Clear kills every cell and resets the generation counter.
func (b *Board) Clear() {
	b.cur.Clear()
	b.nxt.Clear()
	b.gen = 0
}

// Randomize fills the board with a deterministic soup where each cell is
// alive with probability density, and resets the generation counter.
func (b *Board) Randomize(seed int64, density float64) {
	core.FillBinary(core.NewRNG(seed), b.cur.Cells(), density)
	b.gen = 0
}

// CopyCells copies the row-major grid (1 alive, 0 dead) into dst.
func (b *Board) CopyCells(dst []uint8) []uint8 {
	src := b.cur.Cells()
	if cap(dst) < len(src) {
		dst = make([]uint8, len(src))
	}
	dst = dst[:len(src)]
	copy(dst, src)
	return dst
}

var _ core.Sim = (*Board)(nil)

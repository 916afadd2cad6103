package model

import (
	"crypto/md5"
	"fmt"

	"github.com/sheikhrachel/torus-gol/rules"
)

const (
	AliveGlyph = '@'
	DeadGlyph  = '*'
)

// neighborOffsets are the 8 compass offsets around a cell as (row, col)
var neighborOffsets = [8][2]int{
	{-1, 0},
	{-1, -1},
	{0, -1},
	{1, -1},
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
}

// Grid is a dense, row-major game board whose edges wrap around (a torus)
type Grid struct {
	rows  int
	cols  int
	cells []bool

	// scratch holds the previous generation during AdvanceGeneration
	scratch []bool
}

// New creates a grid with every cell dead. rows and cols must be positive.
func New(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("model: New(%d, %d) requires positive dimensions", rows, cols))
	}
	return &Grid{
		rows:    rows,
		cols:    cols,
		cells:   make([]bool, rows*cols),
		scratch: make([]bool, rows*cols),
	}
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// index maps an in-range coordinate onto the cell slice, failing fast otherwise
func (g *Grid) index(op string, r, c int) int {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		panic(fmt.Sprintf("model: %s(%d, %d) out of range for %dx%d grid", op, r, c, g.rows, g.cols))
	}
	return r*g.cols + c
}

// SetAlive marks a cell as alive
func (g *Grid) SetAlive(r, c int) {
	g.cells[g.index("SetAlive", r, c)] = true
}

// SetDead marks a cell as dead
func (g *Grid) SetDead(r, c int) {
	g.cells[g.index("SetDead", r, c)] = false
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(r, c int, alive bool) {
	g.cells[g.index("Set", r, c)] = alive
}

// IsAlive returns the state of a cell
func (g *Grid) IsAlive(r, c int) bool {
	return g.cells[g.index("IsAlive", r, c)]
}

// IsDead reports whether a cell is dead
func (g *Grid) IsDead(r, c int) bool {
	return !g.cells[g.index("IsDead", r, c)]
}

// wrap normalises a coordinate that is at most one step past either edge
func wrap(v, n int) int {
	return (v + n) % n
}

// CountLiveNeighbors counts the live cells among the 8 wrapped neighbours of (r, c)
func (g *Grid) CountLiveNeighbors(r, c int) int {
	g.index("CountLiveNeighbors", r, c)
	return countNeighbors(g.cells, g.rows, g.cols, r, c)
}

func countNeighbors(cells []bool, rows, cols, r, c int) (count int) {
	for _, off := range neighborOffsets {
		if cells[wrap(r+off[0], rows)*cols+wrap(c+off[1], cols)] {
			count++
		}
	}
	return
}

// AdvanceGeneration moves the grid forward by one generation. Neighbour counts
// are taken from a snapshot of the current generation, so no cell sees an
// update made earlier in the same pass.
func (g *Grid) AdvanceGeneration() {
	copy(g.scratch, g.cells)
	prev := g.scratch

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			i := r*g.cols + c
			g.cells[i] = rules.Next(prev[i], countNeighbors(prev, g.rows, g.cols, r, c))
		}
	}
}

// Render emits one glyph per cell in row-major order, ending each row with EndRow
func (g *Grid) Render(renderer Renderer) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r*g.cols+c] {
				renderer.Glyph(AliveGlyph)
			} else {
				renderer.Glyph(DeadGlyph)
			}
		}
		renderer.EndRow()
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the current grid state
func (g *Grid) Hash() string {
	buf := make([]byte, len(g.cells))
	for i, alive := range g.cells {
		if alive {
			buf[i] = 1
		}
	}
	return fmt.Sprintf("%x", md5.Sum(buf))
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	next := New(g.rows, g.cols)
	copy(next.cells, g.cells)
	return next
}

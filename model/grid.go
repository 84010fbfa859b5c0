package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// neighborOffsets lists the Moore neighborhood as (row, col) deltas
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is a fixed-size Game of Life board. Cells outside the grid are always dead.
//
// A Grid is not safe for concurrent use; callers must serialize access.
type Grid struct {
	rows  int
	cols  int
	cells []bool // row-major, index row*cols + col
	next  []bool // scratch buffer, only written inside UpdateGrid
}

// NewGrid creates a grid with the given dimensions and every cell dead
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] rows: %d, cols: %d", rows, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]bool, rows*cols),
		next:  make([]bool, rows*cols),
	}, nil
}

// GetRows returns the number of rows in the grid
func (g *Grid) GetRows() int {
	return g.rows
}

// GetCols returns the number of columns in the grid
func (g *Grid) GetCols() int {
	return g.cols
}

// IsCellWithinGrid reports whether (row, col) addresses a cell of the grid
func (g *Grid) IsCellWithinGrid(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// GetCellState returns whether the cell at (row, col) is alive
func (g *Grid) GetCellState(row, col int) (bool, error) {
	if !g.IsCellWithinGrid(row, col) {
		return false, errors.Wrapf(ErrOutOfBounds, "[GetCellState] (%d, %d) on %dx%d grid", row, col, g.rows, g.cols)
	}
	return g.cells[row*g.cols+col], nil
}

// SetCellState sets the cell at (row, col) to alive (true) or dead (false)
func (g *Grid) SetCellState(row, col int, alive bool) error {
	if !g.IsCellWithinGrid(row, col) {
		return errors.Wrapf(ErrOutOfBounds, "[SetCellState] (%d, %d) on %dx%d grid", row, col, g.rows, g.cols)
	}
	g.cells[row*g.cols+col] = alive
	return nil
}

// CountLiveNeighbors counts the living cells in the Moore neighborhood of (row, col).
// Neighbors that fall outside the grid count as dead.
func (g *Grid) CountLiveNeighbors(row, col int) int {
	count := 0
	for _, offset := range neighborOffsets {
		nr, nc := row+offset[0], col+offset[1]
		if !g.IsCellWithinGrid(nr, nc) {
			continue
		}
		if g.cells[nr*g.cols+nc] {
			count++
		}
	}
	return count
}

// UpdateGrid advances the grid by exactly one generation.
// The next state is computed entirely from the current buffer and swapped in at the end.
func (g *Grid) UpdateGrid() {
	clear(g.next)

	for row := range g.rows {
		for col := range g.cols {
			idx := row*g.cols + col
			g.next[idx] = rules.ApplyConwayRules(g.CountLiveNeighbors(row, col), g.cells[idx])
		}
	}

	g.cells, g.next = g.next, g.cells
}

// Clear kills every cell
func (g *Grid) Clear() {
	clear(g.cells)
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

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, alive := range g.cells {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

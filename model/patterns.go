package model

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Pattern names accepted by Seed
const (
	PatternRandom  = "random"
	PatternBlinker = "blinker"
	PatternBlock   = "block"
	PatternGlider  = "glider"
	PatternMixed   = "mixed"
)

var (
	blinkerPattern = [][]bool{
		{true, true, true},
	}
	blockPattern = [][]bool{
		{true, true},
		{true, true},
	}
	gliderPattern = [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
)

// stamp copies pattern onto the grid with its top-left corner at (startRow, startCol).
// Cells that fall outside the grid are dropped.
func (g *Grid) stamp(startRow, startCol int, pattern [][]bool) {
	for r, line := range pattern {
		for c, alive := range line {
			if g.IsCellWithinGrid(startRow+r, startCol+c) {
				_ = g.SetCellState(startRow+r, startCol+c, alive)
			}
		}
	}
}

// AddBlinker adds a horizontal blinker oscillator starting at (row, col)
func (g *Grid) AddBlinker(row, col int) {
	g.stamp(row, col, blinkerPattern)
}

// AddBlock adds a 2x2 block still life with its top-left cell at (row, col)
func (g *Grid) AddBlock(row, col int) {
	g.stamp(row, col, blockPattern)
}

// AddGlider adds a glider heading down and to the right
func (g *Grid) AddGlider(row, col int) {
	g.stamp(row, col, gliderPattern)
}

// Randomize sets every cell alive with probability density
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for i := range g.cells {
		g.cells[i] = rng.Float64() < density
	}
}

// Seed clears the grid and lays down the named pattern
func (g *Grid) Seed(pattern string, rng *rand.Rand, density float64) error {
	g.Clear()

	switch pattern {
	case PatternRandom:
		g.Randomize(rng, density)
	case PatternBlinker:
		g.AddBlinker(g.rows/2, g.cols/2-1)
	case PatternBlock:
		g.AddBlock(g.rows/2-1, g.cols/2-1)
	case PatternGlider:
		g.AddGlider(0, 0)
	case PatternMixed:
		g.Randomize(rng, density)
		if g.rows >= 10 && g.cols >= 10 {
			g.AddGlider(1, 1)
			g.AddBlinker(g.rows/4, g.cols/2)
			g.AddBlock(3*g.rows/4, g.cols/4)
		}
	default:
		return errors.Wrapf(ErrUnknownPattern, "[Seed] pattern: %q", pattern)
	}
	return nil
}

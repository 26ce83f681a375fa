// Package board holds the fixed-size grid of cells the snake moves on.
package board

import (
	"fmt"

	"snake-grid/game/types"
)

// Board is a rows x cols array of cells, row-major
type Board struct {
	rows  int
	cols  int
	cells []types.Cell
}

// New returns a board with every cell blank
func New(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("board %dx%d: %w", rows, cols, types.ErrInvalidConfiguration)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]types.Cell, rows*cols),
	}, nil
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// InBounds treats rows and cols as exclusive upper bounds
func (b *Board) InBounds(p types.Position) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// At returns the cell at p. Callers must check InBounds first.
func (b *Board) At(p types.Position) types.Cell {
	return b.cells[b.index(p)]
}

// Set writes c at p. Callers must check InBounds first.
func (b *Board) Set(p types.Position, c types.Cell) {
	b.cells[b.index(p)] = c
}

func (b *Board) index(p types.Position) int {
	if !b.InBounds(p) {
		panic(fmt.Sprintf("board: position %v outside %dx%d", p, b.rows, b.cols))
	}
	return p.Row*b.cols + p.Col
}

// Count returns how many cells hold c
func (b *Board) Count(c types.Cell) int {
	n := 0
	for _, v := range b.cells {
		if v == c {
			n++
		}
	}
	return n
}

// Blanks lists every blank position in row-major order
func (b *Board) Blanks() []types.Position {
	out := make([]types.Position, 0, len(b.cells))
	for i, v := range b.cells {
		if v == types.Blank {
			out = append(out, types.Position{Row: i / b.cols, Col: i % b.cols})
		}
	}
	return out
}

// Clear sets every cell back to blank
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = types.Blank
	}
}

// Snapshot returns a deep copy indexed [row][col] for renderers
func (b *Board) Snapshot() [][]types.Cell {
	out := make([][]types.Cell, b.rows)
	for r := 0; r < b.rows; r++ {
		row := make([]types.Cell, b.cols)
		copy(row, b.cells[r*b.cols:(r+1)*b.cols])
		out[r] = row
	}
	return out
}

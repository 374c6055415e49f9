// Package board implements the sliding-merge puzzle core: the grid model,
// the line reducer, the move engine, and the terminal-state evaluator.
// Everything in this package is pure and deterministic; randomness (tile
// spawning) lives in the game package behind an injectable chooser.
package board

import "fmt"

// Cell identifies one grid position.
type Cell struct {
	Row int
	Col int
}

// Grid is a square matrix of tile values. Zero means empty; non-zero values
// are positive multiples of the minimum tile reachable by doubling merges.
// Only the move engine and the spawn policy mutate a grid.
type Grid struct {
	size  int
	cells [][]int
}

// NewGrid creates an empty size×size grid.
func NewGrid(size int) Grid {
	cells := make([][]int, size)
	for r := range cells {
		cells[r] = make([]int, size)
	}
	return Grid{size: size, cells: cells}
}

// GridFromRows builds a grid from explicit row data.
// The input must be square with non-negative values.
func GridFromRows(rows [][]int) (Grid, error) {
	size := len(rows)
	if size == 0 {
		return Grid{}, fmt.Errorf("board: empty grid")
	}

	g := NewGrid(size)
	for r, row := range rows {
		if len(row) != size {
			return Grid{}, fmt.Errorf("board: row %d has %d cells, want %d", r, len(row), size)
		}
		for c, v := range row {
			if v < 0 {
				return Grid{}, fmt.Errorf("board: negative value %d at (%d,%d)", v, r, c)
			}
			g.cells[r][c] = v
		}
	}
	return g, nil
}

// Size returns the board dimension.
func (g Grid) Size() int {
	return g.size
}

// At returns the value at (row, col).
func (g Grid) At(row, col int) int {
	return g.cells[row][col]
}

// Set places a value at (row, col).
func (g *Grid) Set(row, col, value int) {
	g.cells[row][col] = value
}

// Clone returns a deep copy with independent backing storage.
func (g Grid) Clone() Grid {
	out := NewGrid(g.size)
	for r := range g.cells {
		copy(out.cells[r], g.cells[r])
	}
	return out
}

// Rows returns a deep copy of the cell data, row-major.
func (g Grid) Rows() [][]int {
	rows := make([][]int, g.size)
	for r := range rows {
		rows[r] = make([]int, g.size)
		copy(rows[r], g.cells[r])
	}
	return rows
}

// Equal reports whether two grids hold identical cells.
func (g Grid) Equal(other Grid) bool {
	if g.size != other.size {
		return false
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// EmptyCells returns the coordinates of all zero-valued cells in row-major order.
func (g Grid) EmptyCells() []Cell {
	var cells []Cell
	for r := range g.cells {
		for c, v := range g.cells[r] {
			if v == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// MaxTile returns the highest tile value on the grid.
func (g Grid) MaxTile() int {
	maxVal := 0
	for r := range g.cells {
		for _, v := range g.cells[r] {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

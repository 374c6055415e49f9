package board

import "errors"

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// ErrInvalidDirection is returned by Apply for values outside the Direction enum.
var ErrInvalidDirection = errors.New("board: invalid direction")

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "invalid"
	}
}

// Valid reports whether d is one of the four recognized directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// horizontal reports whether the direction operates row-wise.
func (d Direction) horizontal() bool {
	return d == DirLeft || d == DirRight
}

// Displacement records one tile's journey within a single move. Both source
// tiles of a merge produce a displacement sharing the same destination; the
// Value is the tile's pre-merge value.
type Displacement struct {
	From  Cell
	To    Cell
	Value int
}

// MoveResult aggregates per-line reductions into a whole-grid result.
type MoveResult struct {
	Grid          Grid
	Moved         bool
	Merges        []Cell
	Displacements []Displacement
}

// Apply slides and merges the grid in the given direction. The input grid is
// not mutated. For a fixed grid and direction the result is fully
// deterministic; no merge or displacement ever crosses a row or column
// boundary.
func Apply(g Grid, dir Direction) (MoveResult, error) {
	if !dir.Valid() {
		return MoveResult{}, ErrInvalidDirection
	}

	res := MoveResult{Grid: g.Clone()}
	size := g.Size()
	line := make([]int, size)

	if dir.horizontal() {
		forward := dir == DirLeft
		for r := 0; r < size; r++ {
			for c := 0; c < size; c++ {
				line[c] = g.At(r, c)
			}
			lr := ReduceLine(line, forward)
			for c := 0; c < size; c++ {
				res.Grid.Set(r, c, lr.Cells[c])
			}
			if lr.Moved {
				res.Moved = true
			}
			for _, idx := range lr.MergedIndices {
				res.Merges = append(res.Merges, Cell{Row: r, Col: idx})
			}
			for _, d := range lr.Displacements {
				res.Displacements = append(res.Displacements, Displacement{
					From:  Cell{Row: r, Col: d.From},
					To:    Cell{Row: r, Col: d.To},
					Value: d.Value,
				})
			}
		}
		return res, nil
	}

	forward := dir == DirUp
	for c := 0; c < size; c++ {
		for r := 0; r < size; r++ {
			line[r] = g.At(r, c)
		}
		lr := ReduceLine(line, forward)
		for r := 0; r < size; r++ {
			res.Grid.Set(r, c, lr.Cells[r])
		}
		if lr.Moved {
			res.Moved = true
		}
		for _, idx := range lr.MergedIndices {
			res.Merges = append(res.Merges, Cell{Row: idx, Col: c})
		}
		for _, d := range lr.Displacements {
			res.Displacements = append(res.Displacements, Displacement{
				From:  Cell{Row: d.From, Col: c},
				To:    Cell{Row: d.To, Col: c},
				Value: d.Value,
			})
		}
	}
	return res, nil
}

package game

import (
	"math/rand"

	"github.com/dkotenko/trine/internal/board"
)

// CellChooser selects one cell from a non-empty candidate list. It is the
// session's only source of randomness; injecting a scripted chooser makes
// every turn fully reproducible in tests.
type CellChooser interface {
	Choose(empty []board.Cell) board.Cell
}

// ChooserFunc adapts a plain function to the CellChooser interface.
type ChooserFunc func(empty []board.Cell) board.Cell

// Choose calls f.
func (f ChooserFunc) Choose(empty []board.Cell) board.Cell {
	return f(empty)
}

// NewRandomChooser returns a uniformly random chooser backed by a seeded
// source, so the same seed replays the same spawn sequence.
func NewRandomChooser(seed int64) CellChooser {
	rng := rand.New(rand.NewSource(seed))
	return ChooserFunc(func(empty []board.Cell) board.Cell {
		return empty[rng.Intn(len(empty))]
	})
}

// spawn inserts up to count minimum-value tiles into empty cells and returns
// the cells filled. The empty set is recomputed after each insertion so a
// cell is never chosen twice. Running out of empty cells spawns nothing;
// the terminal-state evaluator is what surfaces that as a stalemate.
func (s *Session) spawn(count int) []board.Cell {
	var spawned []board.Cell
	for i := 0; i < count; i++ {
		empty := s.grid.EmptyCells()
		if len(empty) == 0 {
			break
		}
		cell := s.chooser.Choose(empty)
		s.grid.Set(cell.Row, cell.Col, s.rules.MinTile)
		spawned = append(spawned, cell)
	}
	return spawned
}

package game

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dkotenko/trine/internal/board"
)

// Snapshot is the session's entire durable state. The store treats it as an
// opaque blob; Restore re-validates everything so a malformed or stale
// snapshot degrades to a fresh game instead of crashing.
type Snapshot struct {
	Cells [][]int `yaml:"cells"`
	Moves int     `yaml:"moves"`
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Cells: s.grid.Rows(),
		Moves: s.moves,
	}
}

// Restore replaces the session state with a previously captured snapshot.
// The snapshot must match the session's board size, carry a non-negative
// move count, and hold only empty cells or values on the tile ladder.
// On error the session is left unchanged; the caller falls back to Reset.
func (s *Session) Restore(snap Snapshot) error {
	if snap.Moves < 0 {
		return fmt.Errorf("game: negative move count %d", snap.Moves)
	}
	if len(snap.Cells) != s.rules.BoardSize {
		return fmt.Errorf("game: snapshot has %d rows, want %d", len(snap.Cells), s.rules.BoardSize)
	}

	grid, err := board.GridFromRows(snap.Cells)
	if err != nil {
		return err
	}
	for r := 0; r < grid.Size(); r++ {
		for c := 0; c < grid.Size(); c++ {
			v := grid.At(r, c)
			if v != 0 && !onLadder(v, s.rules.MinTile) {
				return fmt.Errorf("game: value %d at (%d,%d) not on the tile ladder", v, r, c)
			}
		}
	}

	s.grid = grid
	s.moves = snap.Moves
	s.outcome = board.Evaluate(grid, s.rules.Target)
	s.locked = false
	return nil
}

// EncodeSnapshot serializes a snapshot for storage.
func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("game: cannot encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a stored snapshot blob. Malformed data is an error,
// not a crash; callers treat it as "no prior state".
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("game: cannot decode snapshot: %w", err)
	}
	return snap, nil
}

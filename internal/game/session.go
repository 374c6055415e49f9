package game

import (
	"time"

	"github.com/dkotenko/trine/internal/board"
)

// TurnResult describes one accepted turn (or the initial spawn after a
// reset). It is immutable once returned: the grid is a private copy and the
// slices are never reused. Displacements and Merges together fully describe
// the transition from the old grid to the new one, so the presentation layer
// can animate the turn without re-deriving anything.
type TurnResult struct {
	Grid          board.Grid
	Moved         bool
	Merges        []board.Cell
	Displacements []board.Displacement
	Spawned       []board.Cell
	Outcome       board.Outcome
	MoveCount     int
}

// Session owns one game's state: the grid and the move counter. Sessions are
// independent; any number can exist side by side. A session is not safe for
// concurrent use: exactly one turn may be in flight at a time, which the
// input lock enforces against accidental reentrancy.
type Session struct {
	rules   Rules
	chooser CellChooser

	grid    board.Grid
	moves   int
	outcome board.Outcome
	locked  bool
}

// NewSession creates a session with the given rules. A nil chooser falls
// back to a time-seeded uniform random chooser. The session starts with an
// empty board; call Reset to spawn the opening tiles.
func NewSession(rules Rules, chooser CellChooser) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if chooser == nil {
		chooser = NewRandomChooser(time.Now().UnixNano())
	}
	return &Session{
		rules:   rules,
		chooser: chooser,
		grid:    board.NewGrid(rules.BoardSize),
	}, nil
}

// Rules returns the session's rule set.
func (s *Session) Rules() Rules {
	return s.rules
}

// Grid returns a copy of the current grid.
func (s *Session) Grid() board.Grid {
	return s.grid.Clone()
}

// MoveCount returns the number of accepted moves this game.
func (s *Session) MoveCount() int {
	return s.moves
}

// Outcome returns the current terminal-state classification.
func (s *Session) Outcome() board.Outcome {
	return s.outcome
}

// Reset starts a fresh game: empty grid, zero moves, opening spawn. The
// returned TurnResult carries the spawned cells so the presentation layer
// can animate them appearing.
func (s *Session) Reset() TurnResult {
	s.grid = board.NewGrid(s.rules.BoardSize)
	s.moves = 0
	s.locked = false

	spawned := s.spawn(s.rules.SpawnAtStart)
	s.outcome = board.Evaluate(s.grid, s.rules.Target)

	return TurnResult{
		Grid:      s.grid.Clone(),
		Spawned:   spawned,
		Outcome:   s.outcome,
		MoveCount: s.moves,
	}
}

// SubmitMove runs one full turn. The second return value reports whether the
// move was accepted: a locked session, a terminal outcome, an invalid
// direction, or a move that changes nothing are all rejected silently: no
// counter increment, no spawn, nothing to animate or persist.
func (s *Session) SubmitMove(dir board.Direction) (TurnResult, bool) {
	if s.locked || s.outcome.Terminal() {
		return TurnResult{}, false
	}
	s.locked = true
	defer func() { s.locked = false }()

	res, err := board.Apply(s.grid, dir)
	if err != nil || !res.Moved {
		return TurnResult{}, false
	}

	s.grid = res.Grid
	s.moves++
	spawned := s.spawn(s.rules.SpawnPerMove)
	s.outcome = board.Evaluate(s.grid, s.rules.Target)

	return TurnResult{
		Grid:          s.grid.Clone(),
		Moved:         true,
		Merges:        res.Merges,
		Displacements: res.Displacements,
		Spawned:       spawned,
		Outcome:       s.outcome,
		MoveCount:     s.moves,
	}, true
}

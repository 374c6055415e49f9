package game

import (
	"testing"

	"github.com/dkotenko/trine/internal/board"
)

// firstEmptyChooser deterministically picks the first empty cell in
// row-major order.
func firstEmptyChooser() CellChooser {
	return ChooserFunc(func(empty []board.Cell) board.Cell {
		return empty[0]
	})
}

// scriptedChooser returns the given cells in order, matching each against
// the candidate list; it falls back to the first candidate when exhausted.
func scriptedChooser(cells ...board.Cell) CellChooser {
	i := 0
	return ChooserFunc(func(empty []board.Cell) board.Cell {
		for i < len(cells) {
			want := cells[i]
			i++
			for _, c := range empty {
				if c == want {
					return c
				}
			}
		}
		return empty[0]
	})
}

func testRules() Rules {
	r := DefaultRules()
	r.BoardSize = 4
	return r
}

func newTestSession(t *testing.T, rules Rules, chooser CellChooser) *Session {
	t.Helper()
	s, err := NewSession(rules, chooser)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}

func setGrid(t *testing.T, s *Session, rows [][]int, moves int) {
	t.Helper()
	if err := s.Restore(Snapshot{Cells: rows, Moves: moves}); err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}
}

func TestResetSpawnsOpeningTiles(t *testing.T) {
	s := newTestSession(t, testRules(), firstEmptyChooser())

	res := s.Reset()

	if len(res.Spawned) != 2 {
		t.Fatalf("Reset() spawned %d tiles, want 2", len(res.Spawned))
	}
	if res.MoveCount != 0 {
		t.Errorf("Reset() move count = %d, want 0", res.MoveCount)
	}
	if res.Outcome != board.Ongoing {
		t.Errorf("Reset() outcome = %v, want ongoing", res.Outcome)
	}
	for _, c := range res.Spawned {
		if got := res.Grid.At(c.Row, c.Col); got != 3 {
			t.Errorf("spawned cell %v holds %d, want 3", c, got)
		}
	}
}

func TestSubmitMoveMergeToTheRight(t *testing.T) {
	s := newTestSession(t, testRules(), scriptedChooser(board.Cell{Row: 3, Col: 0}))
	setGrid(t, s, [][]int{
		{0, 0, 3, 3},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, 5)

	res, accepted := s.SubmitMove(board.DirRight)
	if !accepted {
		t.Fatal("SubmitMove(Right) should be accepted")
	}

	if got := res.Grid.At(0, 3); got != 6 {
		t.Errorf("cell (0,3) = %d, want merged 6", got)
	}
	if len(res.Merges) != 1 || res.Merges[0] != (board.Cell{Row: 0, Col: 3}) {
		t.Errorf("merges = %v, want [(0,3)]", res.Merges)
	}
	if res.MoveCount != 6 {
		t.Errorf("move count = %d, want 6", res.MoveCount)
	}
	if len(res.Spawned) != 1 {
		t.Fatalf("spawned %d tiles, want 1", len(res.Spawned))
	}
	if res.Spawned[0] != (board.Cell{Row: 3, Col: 0}) {
		t.Errorf("spawned at %v, want (3,0)", res.Spawned[0])
	}
	if got := res.Grid.At(3, 0); got != 3 {
		t.Errorf("spawned cell holds %d, want min tile 3", got)
	}
}

func TestSubmitMoveRejectsNoOp(t *testing.T) {
	s := newTestSession(t, testRules(), firstEmptyChooser())
	// Two tiles in different rows, both already at column 0.
	setGrid(t, s, [][]int{
		{3, 0, 0, 0},
		{0, 0, 0, 0},
		{6, 0, 0, 0},
		{0, 0, 0, 0},
	}, 7)

	_, accepted := s.SubmitMove(board.DirLeft)
	if accepted {
		t.Fatal("SubmitMove(Left) on left-aligned tiles should be rejected")
	}

	if s.MoveCount() != 7 {
		t.Errorf("rejected move changed move count to %d", s.MoveCount())
	}
	if len(s.Grid().EmptyCells()) != 14 {
		t.Error("rejected move must not spawn a tile")
	}
}

func TestSubmitMoveRejectsInvalidDirection(t *testing.T) {
	s := newTestSession(t, testRules(), firstEmptyChooser())
	s.Reset()

	if _, accepted := s.SubmitMove(board.Direction(99)); accepted {
		t.Error("SubmitMove with invalid direction should be rejected")
	}
}

func TestSubmitMoveDisplacementsShareMergeDestination(t *testing.T) {
	s := newTestSession(t, testRules(), firstEmptyChooser())
	setGrid(t, s, [][]int{
		{3, 3, 6, 6},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, 0)

	res, accepted := s.SubmitMove(board.DirLeft)
	if !accepted {
		t.Fatal("SubmitMove(Left) should be accepted")
	}

	// Four occupied cells -> four displacements, pairwise sharing targets.
	if len(res.Displacements) != 4 {
		t.Fatalf("got %d displacements, want 4", len(res.Displacements))
	}
	targets := make(map[board.Cell]int)
	for _, d := range res.Displacements {
		targets[d.To]++
	}
	if targets[board.Cell{Row: 0, Col: 0}] != 2 || targets[board.Cell{Row: 0, Col: 1}] != 2 {
		t.Errorf("displacement targets = %v, want two tiles onto (0,0) and two onto (0,1)", targets)
	}
}

func TestWinEndsSession(t *testing.T) {
	rules := testRules()
	rules.Target = 12
	s := newTestSession(t, rules, firstEmptyChooser())
	setGrid(t, s, [][]int{
		{6, 6, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, 0)

	res, accepted := s.SubmitMove(board.DirLeft)
	if !accepted {
		t.Fatal("SubmitMove(Left) should be accepted")
	}
	if res.Outcome != board.Won {
		t.Fatalf("outcome = %v, want won", res.Outcome)
	}

	if _, accepted := s.SubmitMove(board.DirRight); accepted {
		t.Error("moves after a win must be rejected until reset")
	}

	reset := s.Reset()
	if reset.Outcome != board.Ongoing {
		t.Errorf("Reset() after win: outcome = %v, want ongoing", reset.Outcome)
	}
	if s.MoveCount() != 0 {
		t.Errorf("Reset() after win: move count = %d, want 0", s.MoveCount())
	}
}

func TestSpawnCanCompleteStalemate(t *testing.T) {
	rules := testRules()
	rules.BoardSize = 2
	rules.SpawnAtStart = 1
	s := newTestSession(t, rules, firstEmptyChooser())
	// Up packs the first column and the spawn fills the freed hole with a 3,
	// leaving no empty cell and no adjacent equal pair.
	setGrid(t, s, [][]int{
		{0, 12},
		{6, 24},
	}, 3)

	res, accepted := s.SubmitMove(board.DirUp)
	if !accepted {
		t.Fatal("SubmitMove(Up) should be accepted")
	}
	if res.Outcome != board.Stalemate {
		t.Errorf("outcome = %v, want stalemate after spawn fills the board", res.Outcome)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	a := newTestSession(t, testRules(), firstEmptyChooser())
	b := newTestSession(t, testRules(), firstEmptyChooser())
	a.Reset()
	b.Reset()

	setGrid(t, a, [][]int{
		{3, 3, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, 0)

	if _, accepted := a.SubmitMove(board.DirLeft); !accepted {
		t.Fatal("SubmitMove on session a should be accepted")
	}

	if b.MoveCount() != 0 {
		t.Error("a move on one session leaked into another")
	}
}

func TestTurnResultGridIsACopy(t *testing.T) {
	s := newTestSession(t, testRules(), firstEmptyChooser())
	setGrid(t, s, [][]int{
		{0, 3, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, 0)

	res, accepted := s.SubmitMove(board.DirLeft)
	if !accepted {
		t.Fatal("SubmitMove(Left) should be accepted")
	}

	res.Grid.Set(3, 3, 999)
	if s.Grid().At(3, 3) == 999 {
		t.Error("mutating a TurnResult grid leaked into the session")
	}
}

func TestNewSessionRejectsBadRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Rules)
	}{
		{"tiny board", func(r *Rules) { r.BoardSize = 1 }},
		{"zero min tile", func(r *Rules) { r.MinTile = 0 }},
		{"target off ladder", func(r *Rules) { r.Target = 100 }},
		{"target below min", func(r *Rules) { r.Target = 1 }},
		{"zero spawn per move", func(r *Rules) { r.SpawnPerMove = 0 }},
		{"opening spawn exceeds board", func(r *Rules) { r.BoardSize = 2; r.SpawnAtStart = 5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := DefaultRules()
			tt.mutate(&rules)
			if _, err := NewSession(rules, nil); err == nil {
				t.Errorf("NewSession() accepted invalid rules %+v", rules)
			}
		})
	}
}

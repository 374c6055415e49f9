package tui

import (
	"testing"

	"github.com/dkotenko/trine/internal/board"
	"github.com/dkotenko/trine/internal/core"
	"github.com/dkotenko/trine/internal/game"
)

func TestSlideAnimationsMarksMergeDestinations(t *testing.T) {
	grid, err := board.GridFromRows([][]int{
		{6, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	if err != nil {
		t.Fatalf("GridFromRows() failed: %v", err)
	}

	res := game.TurnResult{
		Grid:   grid,
		Moved:  true,
		Merges: []board.Cell{{Row: 0, Col: 0}},
		Displacements: []board.Displacement{
			{From: board.Cell{Row: 0, Col: 2}, To: board.Cell{Row: 0, Col: 0}, Value: 3},
			{From: board.Cell{Row: 0, Col: 3}, To: board.Cell{Row: 0, Col: 0}, Value: 3},
		},
	}

	anims := slideAnimations(res)
	if len(anims) != 2 {
		t.Fatalf("Expected 2 animations, got %d", len(anims))
	}
	for i, a := range anims {
		if !a.Merged {
			t.Errorf("Animation %d should be marked merged", i)
		}
		if a.IsNew {
			t.Errorf("Animation %d should not be marked new", i)
		}
		if a.ToRow != 0 || a.ToCol != 0 {
			t.Errorf("Animation %d destination = (%d,%d), want (0,0)", i, a.ToRow, a.ToCol)
		}
		if a.Value != 3 {
			t.Errorf("Animation %d carries value %d, want pre-merge 3", i, a.Value)
		}
	}
}

func TestPopAnimationsReadPostTurnValues(t *testing.T) {
	grid, err := board.GridFromRows([][]int{
		{6, 0},
		{0, 3},
	})
	if err != nil {
		t.Fatalf("GridFromRows() failed: %v", err)
	}

	res := game.TurnResult{
		Grid:    grid,
		Merges:  []board.Cell{{Row: 0, Col: 0}},
		Spawned: []board.Cell{{Row: 1, Col: 1}},
	}

	anims := popAnimations(res)
	if len(anims) != 2 {
		t.Fatalf("Expected 2 animations, got %d", len(anims))
	}

	if anims[0].Value != 6 || !anims[0].Merged {
		t.Errorf("Merge pop = {value %d, merged %v}, want {6, true}", anims[0].Value, anims[0].Merged)
	}
	if anims[1].Value != 3 || !anims[1].IsNew {
		t.Errorf("Spawn pop = {value %d, new %v}, want {3, true}", anims[1].Value, anims[1].IsNew)
	}
}

func TestInterpolateEndpoints(t *testing.T) {
	a := TileAnimation{FromRow: 2, FromCol: 0, ToRow: 2, ToCol: 3}

	a.Progress = 0
	row, col := a.interpolate()
	if row != 2 || col != 0 {
		t.Errorf("Start position = (%v,%v), want (2,0)", row, col)
	}

	a.Progress = 1
	row, col = a.interpolate()
	if row != 2 || col != 3 {
		t.Errorf("End position = (%v,%v), want (2,3)", row, col)
	}
}

func TestEaseOutQuadMonotonic(t *testing.T) {
	prev := easeOutQuad(0)
	if prev != 0 {
		t.Errorf("easeOutQuad(0) = %v, want 0", prev)
	}
	for i := 1; i <= 10; i++ {
		cur := easeOutQuad(float64(i) / 10)
		if cur < prev {
			t.Errorf("easeOutQuad not monotonic at t=%v", float64(i)/10)
		}
		prev = cur
	}
	if prev != 1 {
		t.Errorf("easeOutQuad(1) = %v, want 1", prev)
	}
}

func TestTileColorLadder(t *testing.T) {
	// Same rank, same color regardless of ladder base
	if tileColor(3, 3) != tileColor(2, 2) {
		t.Error("Rank-0 tiles should share a color across ladder bases")
	}

	// Adjacent ranks differ until the ramp saturates
	if tileColor(3, 3) == tileColor(6, 3) {
		t.Error("Adjacent ranks should get distinct colors")
	}

	// Values past the end of the ramp reuse the last color
	huge := 3 << 30
	if tileColor(huge, 3) != tileRamp[len(tileRamp)-1] {
		t.Error("Oversized rank should clamp to the last ramp color")
	}

	if tileColor(0, 3) != core.ColorDefault {
		t.Error("Empty cell should map to the default color")
	}
}

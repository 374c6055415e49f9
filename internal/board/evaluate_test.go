package board

import "testing"

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]int
		target   int
		expected Outcome
	}{
		{
			name: "ongoing with empty cells",
			rows: [][]int{
				{3, 0, 0},
				{0, 6, 0},
				{0, 0, 0},
			},
			target:   3072,
			expected: Ongoing,
		},
		{
			name: "won on target tile",
			rows: [][]int{
				{3072, 0, 0},
				{0, 0, 0},
				{0, 0, 0},
			},
			target:   3072,
			expected: Won,
		},
		{
			name: "won above target",
			rows: [][]int{
				{6144, 3, 0},
				{0, 0, 0},
				{0, 0, 0},
			},
			target:   3072,
			expected: Won,
		},
		{
			name: "stalemate on packed grid without pairs",
			rows: [][]int{
				{3, 6, 3},
				{6, 3, 6},
				{3, 6, 3},
			},
			target:   3072,
			expected: Stalemate,
		},
		{
			name: "packed grid with horizontal pair stays ongoing",
			rows: [][]int{
				{3, 3, 6},
				{6, 12, 3},
				{3, 6, 12},
			},
			target:   3072,
			expected: Ongoing,
		},
		{
			name: "packed grid with vertical pair stays ongoing",
			rows: [][]int{
				{3, 6, 12},
				{3, 12, 6},
				{6, 3, 12},
			},
			target:   3072,
			expected: Ongoing,
		},
		{
			name: "win takes precedence over stalemate",
			rows: [][]int{
				{3072, 6, 3},
				{6, 3, 6},
				{3, 6, 3},
			},
			target:   3072,
			expected: Won,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, tt.rows)
			if got := Evaluate(g, tt.target); got != tt.expected {
				t.Errorf("Evaluate() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestOutcomeTerminal(t *testing.T) {
	if Ongoing.Terminal() {
		t.Error("Ongoing should not be terminal")
	}
	if !Won.Terminal() {
		t.Error("Won should be terminal")
	}
	if !Stalemate.Terminal() {
		t.Error("Stalemate should be terminal")
	}
}

package board

// Outcome is the terminal-state classification of a grid.
type Outcome int

const (
	Ongoing Outcome = iota
	Won
	Stalemate
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case Won:
		return "won"
	case Stalemate:
		return "stalemate"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome ends the session.
func (o Outcome) Terminal() bool {
	return o == Won || o == Stalemate
}

// Evaluate classifies a grid against the target value. Won takes precedence:
// reaching the target while also filling the board still counts as a win.
// Must be called on the post-spawn grid, since a spawn can itself produce or
// prevent a stalemate.
func Evaluate(g Grid, target int) Outcome {
	if g.MaxTile() >= target {
		return Won
	}
	if hasEmptyCell(g) || hasAdjacentPair(g) {
		return Ongoing
	}
	return Stalemate
}

func hasEmptyCell(g Grid) bool {
	for r := 0; r < g.Size(); r++ {
		for c := 0; c < g.Size(); c++ {
			if g.At(r, c) == 0 {
				return true
			}
		}
	}
	return false
}

// hasAdjacentPair checks right and down neighbors only; equality is symmetric.
func hasAdjacentPair(g Grid) bool {
	size := g.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			v := g.At(r, c)
			if v == 0 {
				continue
			}
			if c < size-1 && g.At(r, c+1) == v {
				return true
			}
			if r < size-1 && g.At(r+1, c) == v {
				return true
			}
		}
	}
	return false
}

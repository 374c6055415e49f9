package tui

import (
	"github.com/dkotenko/trine/internal/board"
	"github.com/dkotenko/trine/internal/game"
)

// Animation durations in ticks (~133ms and ~100ms at 60fps).
const (
	slideTicks = 8
	popTicks   = 6
)

// AnimationPhase represents the current phase of turn animation.
type AnimationPhase int

const (
	PhaseNone AnimationPhase = iota
	PhaseSlide
	PhasePop
)

// TileAnimation represents one animated tile. During the slide phase the tile
// travels from its old cell to its destination; during the pop phase it sits
// still and flashes.
type TileAnimation struct {
	Value    int
	FromRow  int
	FromCol  int
	ToRow    int
	ToCol    int
	Progress float64 // 0.0 → 1.0
	Merged   bool
	IsNew    bool
}

// slideAnimations builds one animation per moved tile from the turn's
// displacement records. Every tile occupied before the move has exactly one
// displacement, so drawing these covers the whole board.
func slideAnimations(res game.TurnResult) []TileAnimation {
	merged := make(map[board.Cell]bool, len(res.Merges))
	for _, c := range res.Merges {
		merged[c] = true
	}

	anims := make([]TileAnimation, 0, len(res.Displacements))
	for _, d := range res.Displacements {
		anims = append(anims, TileAnimation{
			Value:   d.Value,
			FromRow: d.From.Row,
			FromCol: d.From.Col,
			ToRow:   d.To.Row,
			ToCol:   d.To.Col,
			Merged:  merged[d.To],
		})
	}
	return anims
}

// popAnimations builds flash animations for merge results and spawned tiles.
// Values are read from the post-turn grid.
func popAnimations(res game.TurnResult) []TileAnimation {
	anims := make([]TileAnimation, 0, len(res.Merges)+len(res.Spawned))
	for _, c := range res.Merges {
		anims = append(anims, TileAnimation{
			Value:   res.Grid.At(c.Row, c.Col),
			FromRow: c.Row,
			FromCol: c.Col,
			ToRow:   c.Row,
			ToCol:   c.Col,
			Merged:  true,
		})
	}
	for _, c := range res.Spawned {
		anims = append(anims, TileAnimation{
			Value:   res.Grid.At(c.Row, c.Col),
			FromRow: c.Row,
			FromCol: c.Col,
			ToRow:   c.Row,
			ToCol:   c.Col,
			IsNew:   true,
		})
	}
	return anims
}

// easeOutQuad provides smooth deceleration for the slide.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// interpolate returns the tile's current position in cell coordinates.
func (a *TileAnimation) interpolate() (row, col float64) {
	t := easeOutQuad(a.Progress)
	row = float64(a.FromRow) + (float64(a.ToRow)-float64(a.FromRow))*t
	col = float64(a.FromCol) + (float64(a.ToCol)-float64(a.FromCol))*t
	return row, col
}

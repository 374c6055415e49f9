// Package game orchestrates puzzle turns: it owns the session state machine,
// the spawn policy, and snapshotting of the durable {grid, move count} pair.
package game

import "fmt"

// Rules holds the tunable parameters of a session. Nothing in the core is
// hard-coded to a board size or tile ladder; these values normally come from
// the YAML config.
type Rules struct {
	BoardSize    int // board dimension N
	MinTile      int // value of freshly spawned tiles
	Target       int // tile value that wins the game
	SpawnPerMove int // tiles spawned after each accepted move
	SpawnAtStart int // tiles spawned on reset
}

// DefaultRules returns the standard 5x5 game: spawn 3s, win at 3072.
func DefaultRules() Rules {
	return Rules{
		BoardSize:    5,
		MinTile:      3,
		Target:       3072,
		SpawnPerMove: 1,
		SpawnAtStart: 2,
	}
}

// Validate checks that the rules describe a playable game.
func (r Rules) Validate() error {
	if r.BoardSize < 2 {
		return fmt.Errorf("game: board size %d too small", r.BoardSize)
	}
	if r.MinTile <= 0 {
		return fmt.Errorf("game: min tile %d must be positive", r.MinTile)
	}
	if !onLadder(r.Target, r.MinTile) {
		return fmt.Errorf("game: target %d not reachable by doubling %d", r.Target, r.MinTile)
	}
	if r.SpawnPerMove < 1 {
		return fmt.Errorf("game: spawn per move %d must be at least 1", r.SpawnPerMove)
	}
	if r.SpawnAtStart < 1 {
		return fmt.Errorf("game: spawn at start %d must be at least 1", r.SpawnAtStart)
	}
	if r.SpawnAtStart > r.BoardSize*r.BoardSize {
		return fmt.Errorf("game: spawn at start %d exceeds board capacity", r.SpawnAtStart)
	}
	return nil
}

// onLadder reports whether v is min·2^k for some k ≥ 0.
func onLadder(v, min int) bool {
	if v < min || v%min != 0 {
		return false
	}
	q := v / min
	return q&(q-1) == 0
}

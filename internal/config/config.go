// Package config provides YAML-based configuration loading for the puzzle:
// game rules (board size, tile ladder, win target, spawn counts) and UI
// tuning.
package config

import (
	"github.com/dkotenko/trine/internal/game"
)

// Config is the top-level configuration file structure.
type Config struct {
	Rules RulesConfig `yaml:"rules"`
	UI    UIConfig    `yaml:"ui"`
}

// RulesConfig mirrors game.Rules in YAML form.
type RulesConfig struct {
	BoardSize    int `yaml:"board_size"`
	MinTile      int `yaml:"min_tile"`
	Target       int `yaml:"target"`
	SpawnPerMove int `yaml:"spawn_per_move"`
	SpawnAtStart int `yaml:"spawn_at_start"`
}

// UIConfig defines presentation-layer tuning.
type UIConfig struct {
	TickRate  int  `yaml:"tick_rate"` // simulation ticks per second
	Animation bool `yaml:"animation"` // animate slides and spawns
}

// GameRules converts the YAML form into validated-ready game rules.
func (c Config) GameRules() game.Rules {
	return game.Rules{
		BoardSize:    c.Rules.BoardSize,
		MinTile:      c.Rules.MinTile,
		Target:       c.Rules.Target,
		SpawnPerMove: c.Rules.SpawnPerMove,
		SpawnAtStart: c.Rules.SpawnAtStart,
	}
}

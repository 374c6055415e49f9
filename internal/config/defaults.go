package config

import (
	_ "embed"
)

//go:embed defaults/trine.yaml
var defaultYAML []byte

// Default returns the built-in configuration: a 5x5 board spawning 3s,
// one tile per move, two at game start, winning at 3072.
func Default() Config {
	return Config{
		Rules: RulesConfig{
			BoardSize:    5,
			MinTile:      3,
			Target:       3072,
			SpawnPerMove: 1,
			SpawnAtStart: 2,
		},
		UI: UIConfig{
			TickRate:  60,
			Animation: true,
		},
	}
}

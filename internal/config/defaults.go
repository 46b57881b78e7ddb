package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// Default returns the default configuration: the classic 11x20 field
// at 15 frames per second with one forced drop per second.
func Default() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  11,
			Height: 20,
		},
		Timing: TimingConfig{
			FPS:       15,
			GravityMS: 1000,
		},
	}
}

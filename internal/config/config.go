// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

// TetrisConfig contains all tunable parameters for the game.
type TetrisConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines frame rate and gravity speed.
type TimingConfig struct {
	FPS       int `yaml:"fps"`        // Target frames per second
	GravityMS int `yaml:"gravity_ms"` // Milliseconds between forced drops
}

// DifficultyPreset represents a named difficulty level. Presets scale
// the gravity interval; "fixed" keeps whatever the config file says.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// GravityForPreset returns the gravity interval in milliseconds for a
// difficulty preset, given the configured base interval.
func GravityForPreset(preset DifficultyPreset, baseMS int) int {
	switch preset {
	case DifficultyEasy:
		return baseMS * 13 / 10
	case DifficultyNormal:
		return baseMS
	case DifficultyHard:
		return baseMS * 6 / 10
	default:
		return baseMS
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if preset == "" || preset == DifficultyFixed {
		return
	}
	cfg.Timing.GravityMS = GravityForPreset(preset, cfg.Timing.GravityMS)
}

// ValidPreset reports whether the preset name is recognized.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMatchesEmbeddedYAML(t *testing.T) {
	cfg, err := Load(filepath.Join("defaults", "tetris.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v, Default() = %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tetris.yaml")
	data := []byte("board:\n  width: 8\n  height: 16\ntiming:\n  fps: 30\n  gravity_ms: 500\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Board.Width != 8 || cfg.Board.Height != 16 {
		t.Errorf("board = %+v, expected 8x16", cfg.Board)
	}
	if cfg.Timing.FPS != 30 || cfg.Timing.GravityMS != 500 {
		t.Errorf("timing = %+v, expected fps 30 gravity 500", cfg.Timing)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestLoadPartialConfigFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tetris.yaml")
	if err := os.WriteFile(path, []byte("timing:\n  fps: 60\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Timing.FPS != 60 {
		t.Errorf("FPS = %d, expected 60", cfg.Timing.FPS)
	}
	if cfg.Board != Default().Board {
		t.Errorf("board = %+v, expected defaults", cfg.Board)
	}
	if cfg.Timing.GravityMS != Default().Timing.GravityMS {
		t.Errorf("gravity = %d, expected default", cfg.Timing.GravityMS)
	}
}

func TestGravityForPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		base   int
		want   int
	}{
		{DifficultyEasy, 1000, 1300},
		{DifficultyNormal, 1000, 1000},
		{DifficultyHard, 1000, 600},
		{DifficultyFixed, 700, 700},
	}
	for _, tt := range tests {
		if got := GravityForPreset(tt.preset, tt.base); got != tt.want {
			t.Errorf("GravityForPreset(%q, %d) = %d, expected %d", tt.preset, tt.base, got, tt.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Timing.GravityMS != 600 {
		t.Errorf("hard preset gravity = %d, expected 600", cfg.Timing.GravityMS)
	}

	cfg = Default()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg != Default() {
		t.Error("fixed preset must not modify the config")
	}
}

func TestValidPreset(t *testing.T) {
	for _, p := range []DifficultyPreset{"", "easy", "normal", "hard", "fixed"} {
		if !ValidPreset(p) {
			t.Errorf("ValidPreset(%q) = false, expected true", p)
		}
	}
	if ValidPreset("nightmare") {
		t.Error(`ValidPreset("nightmare") = true, expected false`)
	}
}

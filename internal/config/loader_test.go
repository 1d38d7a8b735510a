package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultParses(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("Embedded default YAML failed to parse: %v", err)
	}

	if cfg.Platforms.Total != 200 {
		t.Errorf("Total = %d, want 200", cfg.Platforms.Total)
	}
	if cfg.Screen.BaseHeight != 24 {
		t.Errorf("BaseHeight = %d, want 24", cfg.Screen.BaseHeight)
	}
	if cfg.Physics.JumpVelocity >= 0 {
		t.Errorf("JumpVelocity = %v, want negative (up)", cfg.Physics.JumpVelocity)
	}
	if cfg.Platforms.MinGap > cfg.Platforms.MaxGap {
		t.Errorf("MinGap %v > MaxGap %v", cfg.Platforms.MinGap, cfg.Platforms.MaxGap)
	}
	if cfg.Platforms.MinWidth > cfg.Platforms.MaxWidth {
		t.Errorf("MinWidth %v > MaxWidth %v", cfg.Platforms.MinWidth, cfg.Platforms.MaxWidth)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	custom := []byte(`
screen:
  base_height: 24
  ground_margin: 4
platforms:
  total: 7
scroll:
  speed: 99
`)
	if err := os.WriteFile(path, custom, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Platforms.Total != 7 {
		t.Errorf("Total = %d, want 7", cfg.Platforms.Total)
	}
	if cfg.Scroll.Speed != 99 {
		t.Errorf("Speed = %v, want 99", cfg.Scroll.Speed)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Error("Load() with missing custom path should fail")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"easy", "normal", "hard"} {
		if _, ok := ParsePreset(s); !ok {
			t.Errorf("ParsePreset(%q) not recognized", s)
		}
	}

	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset should reject unknown names")
	}
}

func TestApplyPreset(t *testing.T) {
	base := Default()

	easy := base
	ApplyPreset(&easy, PresetEasy)
	if easy.Scroll.Speed >= base.Scroll.Speed {
		t.Errorf("Easy speed %v should be below default %v", easy.Scroll.Speed, base.Scroll.Speed)
	}

	hard := base
	ApplyPreset(&hard, PresetHard)
	if hard.Scroll.Speed <= base.Scroll.Speed {
		t.Errorf("Hard speed %v should be above default %v", hard.Scroll.Speed, base.Scroll.Speed)
	}
	if hard.Platforms.MaxGap <= easy.Platforms.MaxGap {
		t.Error("Hard gaps should be wider than easy gaps")
	}

	normal := base
	ApplyPreset(&normal, PresetNormal)
	if normal != base {
		t.Error("Normal preset should leave the config unchanged")
	}
}

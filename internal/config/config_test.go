package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsParse(t *testing.T) {
	var m MeadowConfig
	if err := yaml.Unmarshal(defaultMeadowYAML, &m); err != nil {
		t.Fatalf("meadow defaults do not parse: %v", err)
	}
	if m.Combo.WindowMs != 2000 {
		t.Errorf("combo window = %d, want 2000", m.Combo.WindowMs)
	}
	if len(m.Combo.Multipliers) != 4 || m.Combo.Multipliers[3] != 5 {
		t.Errorf("multipliers = %v", m.Combo.Multipliers)
	}

	var c CrashConfig
	if err := yaml.Unmarshal(defaultCrashYAML, &c); err != nil {
		t.Fatalf("crash defaults do not parse: %v", err)
	}
	if c.Letters.HitRadius != 2.5 {
		t.Errorf("hit radius = %v, want 2.5", c.Letters.HitRadius)
	}
}

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	var m MeadowConfig
	if err := yaml.Unmarshal(defaultMeadowYAML, &m); err != nil {
		t.Fatal(err)
	}
	want := DefaultMeadowConfig()
	if m.Movement != want.Movement || m.Popups != want.Popups || m.Vanish != want.Vanish {
		t.Errorf("embedded meadow defaults drifted: %+v vs %+v", m, want)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crash.yaml")
	custom := []byte("car:\n  max_speed: 42\n")
	if err := os.WriteFile(path, custom, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCrash(path)
	if err != nil {
		t.Fatalf("LoadCrash() failed: %v", err)
	}
	if cfg.Car.MaxSpeed != 42 {
		t.Errorf("max speed = %v, want 42", cfg.Car.MaxSpeed)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := LoadMeadow(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom path")
	}
}

func TestGetDefaultYAML(t *testing.T) {
	if GetDefaultYAML("meadow") == nil || GetDefaultYAML("crash") == nil {
		t.Error("missing embedded defaults")
	}
	if GetDefaultYAML("tetris") != nil {
		t.Error("unknown game returned yaml")
	}
}

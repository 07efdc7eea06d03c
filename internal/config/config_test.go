package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg GameConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("Embedded default YAML should parse: %v", err)
	}

	want := DefaultGameConfig()
	if cfg != want {
		t.Errorf("Embedded YAML drifted from hardcoded defaults:\n got %+v\nwant %+v", cfg, want)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "rules.yaml")

	custom := `
ship:
  width: 7
  height: 3
  hull: 5
  max_speed: 40.0
mining:
  duration_secs: 2.5
  max_active_units: 3
`
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Ship.Width != 7 || cfg.Ship.Hull != 5 {
		t.Errorf("Custom ship values not loaded: %+v", cfg.Ship)
	}
	if cfg.Mining.DurationSecs != 2.5 || cfg.Mining.MaxActiveUnits != 3 {
		t.Errorf("Custom mining values not loaded: %+v", cfg.Mining)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestLoadBadYAMLFails(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.yaml")
	if err := os.WriteFile(path, []byte("ship: ["), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}
}

func TestDefaultConfigSanity(t *testing.T) {
	cfg := DefaultGameConfig()

	if cfg.Ship.Hull <= 0 {
		t.Error("Default hull must be positive")
	}
	if cfg.Asteroids.MinFallSpeed > cfg.Asteroids.MaxFallSpeed {
		t.Error("Fall speed range is inverted")
	}
	if cfg.Asteroids.PreciousChance < 0 || cfg.Asteroids.PreciousChance > 1 {
		t.Errorf("Precious chance must be a probability, got %f", cfg.Asteroids.PreciousChance)
	}
	if cfg.Mining.DurationSecs <= 0 {
		t.Error("Mining duration must be positive")
	}
	if cfg.Mining.RatePrecious <= cfg.Mining.RatePlain {
		t.Error("Precious asteroids should pay a higher rate than plain ones")
	}
	if cfg.Asteroids.DamagePrecious < cfg.Asteroids.DamagePlain {
		t.Error("Precious asteroids should hit at least as hard as plain ones")
	}
	if cfg.Mining.MaxActiveUnits < 1 {
		t.Error("At least one mining unit must be allowed")
	}
}

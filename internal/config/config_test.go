package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg CrossingConfig
	if err := yaml.Unmarshal(DefaultCrossingYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultCrossingConfig() {
		t.Errorf("embedded defaults differ from DefaultCrossingConfig():\n%+v\n%+v", cfg, DefaultCrossingConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultCrossingConfig().Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if got := DefaultCrossingConfig().Level.FinishRow(); got != 44 {
		t.Errorf("FinishRow() = %d, expected 44", got)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *CrossingConfig)
	}{
		{"zero width", func(c *CrossingConfig) { c.Level.Width = 0 }},
		{"negative height", func(c *CrossingConfig) { c.Level.Height = -1 }},
		{"zero cell", func(c *CrossingConfig) { c.Level.CellSize = 0 }},
		{"start column outside", func(c *CrossingConfig) { c.Level.StartColumn = 19 }},
		{"start row outside", func(c *CrossingConfig) { c.Level.StartRow = -1 }},
		{"finish beyond level", func(c *CrossingConfig) { c.Level.FinishOffset = 51 }},
		{"zero finish offset", func(c *CrossingConfig) { c.Level.FinishOffset = 0 }},
		{"road chance", func(c *CrossingConfig) { c.Level.RoadChance = 1.5 }},
		{"spawn interval", func(c *CrossingConfig) { c.Level.SpawnMax = 1 }},
		{"move duration", func(c *CrossingConfig) { c.Player.MoveDuration = 0 }},
		{"player footprint", func(c *CrossingConfig) { c.Player.Footprint = 0 }},
		{"travel duration", func(c *CrossingConfig) { c.Obstacles.TravelDuration = 0 }},
		{"obstacle footprint", func(c *CrossingConfig) { c.Obstacles.Length = 0 }},
		{"restart fade", func(c *CrossingConfig) { c.Round.RestartFade = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultCrossingConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadCrossingCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("level:\n  width: 11\n  start_column: 5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCrossing(path)
	if err != nil {
		t.Fatalf("LoadCrossing() error = %v", err)
	}
	if cfg.Level.Width != 11 || cfg.Level.StartColumn != 5 {
		t.Errorf("overrides not applied: %+v", cfg.Level)
	}
	if cfg.Level.Height != 50 || cfg.Obstacles.TravelDuration != 10 {
		t.Errorf("unspecified keys should keep defaults: %+v", cfg)
	}
}

func TestLoadCrossingCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadCrossing(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("level: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCrossing(bad); err == nil {
		t.Error("malformed custom config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("level:\n  width: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCrossing(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadCrossing(invalid) = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadCrossingUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, DirName, "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "crossing.yaml"), []byte("round:\n  restart_fade: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCrossing("")
	if err != nil {
		t.Fatalf("LoadCrossing() error = %v", err)
	}
	if cfg.Round.RestartFade != 2 {
		t.Errorf("RestartFade = %v, expected 2 from user config", cfg.Round.RestartFade)
	}
}

func TestLoadCrossingFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadCrossing("")
	if err != nil {
		t.Fatalf("LoadCrossing() error = %v", err)
	}
	if cfg != DefaultCrossingConfig() {
		t.Errorf("expected embedded defaults, got %+v", cfg)
	}
}

func TestSeconds(t *testing.T) {
	if got := Seconds(0.25); got != 250*time.Millisecond {
		t.Errorf("Seconds(0.25) = %v", got)
	}
	if got := Seconds(10); got != 10*time.Second {
		t.Errorf("Seconds(10) = %v", got)
	}
}

func TestSchemaJSON(t *testing.T) {
	data, err := SchemaJSON()
	if err != nil {
		t.Fatalf("SchemaJSON() error = %v", err)
	}
	for _, key := range []string{"start_column", "travel_duration", "restart_fade", "Crossing configuration"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("schema missing %q", key)
		}
	}
}

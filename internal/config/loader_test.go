package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	var cfg BreakoutConfig
	if err := Decode(DefaultYAML(), FormatYAML, &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultBreakoutConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultBreakoutConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded defaults invalid: %v", err)
	}
}

func TestLoadBreakoutPartialYAML(t *testing.T) {
	path := writeTemp(t, "custom.yaml", "ball:\n  speed_ratio: 1.2\ngameplay:\n  freeze_ms: 900\n")

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() error = %v", err)
	}
	if cfg.Ball.SpeedRatio != 1.2 {
		t.Errorf("Ball.SpeedRatio = %v, expected 1.2", cfg.Ball.SpeedRatio)
	}
	if cfg.Gameplay.FreezeMillis != 900 {
		t.Errorf("Gameplay.FreezeMillis = %v, expected 900", cfg.Gameplay.FreezeMillis)
	}
	// Untouched keys keep their defaults
	if cfg.Paddle != DefaultBreakoutConfig().Paddle {
		t.Errorf("Paddle = %+v, expected defaults", cfg.Paddle)
	}
}

func TestLoadBreakoutTOML(t *testing.T) {
	path := writeTemp(t, "custom.toml", "[world]\nwidth = 1024.0\nheight = 768.0\n\n[gameplay]\nmin_lives = 2\nmax_lives = 3\n")

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() error = %v", err)
	}
	if cfg.World.Width != 1024 || cfg.World.Height != 768 {
		t.Errorf("World = %+v, expected 1024x768", cfg.World)
	}
	if cfg.Gameplay.MinLives != 2 || cfg.Gameplay.MaxLives != 3 {
		t.Errorf("Gameplay lives = [%d, %d], expected [2, 3]", cfg.Gameplay.MinLives, cfg.Gameplay.MaxLives)
	}
	if cfg.Ball != DefaultBreakoutConfig().Ball {
		t.Errorf("Ball = %+v, expected defaults", cfg.Ball)
	}
}

func TestLoadBreakoutErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadBreakout(filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil || !strings.Contains(err.Error(), "failed to read config") {
			t.Errorf("expected read error, got %v", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeTemp(t, "bad.yaml", "ball: [unterminated\n")
		_, err := LoadBreakout(path)
		if err == nil || !strings.Contains(err.Error(), "failed to parse config") {
			t.Errorf("expected parse error, got %v", err)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeTemp(t, "bad.yaml", "gameplay:\n  min_lives: 5\n  max_lives: 2\n")
		cfg, err := LoadBreakout(path)
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("expected ErrInvalid, got %v", err)
		}
		if cfg != DefaultBreakoutConfig() {
			t.Error("failed load should return defaults")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
		field  string
	}{
		{"zero width", func(c *BreakoutConfig) { c.World.Width = 0 }, "world.width"},
		{"negative ball speed", func(c *BreakoutConfig) { c.Ball.SpeedRatio = -1 }, "ball.speed_ratio"},
		{"paddle wider than world", func(c *BreakoutConfig) { c.Paddle.WidthRatio = 1 }, "paddle.width_ratio"},
		{"block lives", func(c *BreakoutConfig) { c.Blocks.MinLives = 0 }, "blocks lives"},
		{"negative freeze", func(c *BreakoutConfig) { c.Gameplay.FreezeMillis = -5 }, "freeze_ms"},
		{"negative hold", func(c *BreakoutConfig) { c.Input.HoldMillis = -1 }, "hold_ms"},
		{"unknown progression", func(c *BreakoutConfig) { c.Difficulty.Progression.Type = "lunar" }, "progression"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() = %v, expected ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("Validate() = %q, expected mention of %q", err, tc.field)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	cfg := DefaultBreakoutConfig()

	y, err := Encode(cfg, FormatYAML)
	if err != nil {
		t.Fatalf("Encode(yaml) error = %v", err)
	}
	if !strings.Contains(string(y), "freeze_ms: 1400") {
		t.Errorf("yaml output missing freeze_ms:\n%s", y)
	}

	tm, err := Encode(cfg, FormatTOML)
	if err != nil {
		t.Fatalf("Encode(toml) error = %v", err)
	}
	if !strings.Contains(string(tm), "[gameplay]") {
		t.Errorf("toml output missing [gameplay] table:\n%s", tm)
	}

	if _, err := Encode(cfg, Format("ini")); err == nil {
		t.Error("Encode with unknown format should fail")
	}
}

func TestFormatFor(t *testing.T) {
	tests := map[string]Format{
		"a.toml":  FormatTOML,
		"a.TOML":  FormatTOML,
		"a.yaml":  FormatYAML,
		"a.yml":   FormatYAML,
		"noext":   FormatYAML,
		"dir/x.t": FormatYAML,
	}
	for path, expected := range tests {
		if got := FormatFor(path); got != expected {
			t.Errorf("FormatFor(%q) = %q, expected %q", path, got, expected)
		}
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		enabled      bool
		initialLevel float64
		speedRatio   float64
	}{
		{DifficultyEasy, true, 0.0, 0.7},
		{DifficultyNormal, true, 0.3, 0.84},
		{DifficultyHard, true, 0.7, 0.84},
		{DifficultyFixed, false, 0.0, 0.84},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			ApplyBreakoutPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initialLevel {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initialLevel)
			}
			if cfg.Ball.SpeedRatio != tc.speedRatio {
				t.Errorf("Ball.SpeedRatio = %v, expected %v", cfg.Ball.SpeedRatio, tc.speedRatio)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}

	cfg := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&cfg, "")
	if cfg != DefaultBreakoutConfig() {
		t.Error("empty preset should leave the config untouched")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should be DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestLoadWithPreset(t *testing.T) {
	path := writeTemp(t, "custom.yaml", "ball:\n  deflect_degrees: 20\n")

	cfg, err := LoadWithPreset(path, "hard")
	if err != nil {
		t.Fatalf("LoadWithPreset() error = %v", err)
	}
	if cfg.Ball.DeflectDegrees != 20 {
		t.Errorf("DeflectDegrees = %v, expected 20", cfg.Ball.DeflectDegrees)
	}
	if cfg.Paddle.WidthRatio != 0.12 {
		t.Errorf("Paddle.WidthRatio = %v, expected 0.12", cfg.Paddle.WidthRatio)
	}

	if _, err := LoadWithPreset(path, "nightmare"); !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown preset should wrap ErrInvalid, got %v", err)
	}
}

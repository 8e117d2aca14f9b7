package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Format is a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the decoder for a file by extension. Anything that is not
// .toml is treated as YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.breaker/configs/breakout.{yaml,toml} ->
// ./configs/breakout.{yaml,toml} -> embedded default.
// Files only need to mention the keys they override.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return DefaultBreakoutConfig(), err
		}
		if err := cfg.Validate(); err != nil {
			return DefaultBreakoutConfig(), fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Discovered files are best-effort; broken ones are skipped.
	for _, path := range searchPaths() {
		cfg, err := readFile(path)
		if err != nil {
			continue
		}
		if cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(defaultBreakoutYAML, &cfg); err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	for _, name := range []string{"breakout.yaml", "breakout.toml"} {
		if p := userConfigPath(name); p != "" {
			paths = append(paths, p)
		}
	}
	return append(paths, "configs/breakout.yaml", "configs/breakout.toml")
}

// readFile decodes a config file on top of the defaults.
func readFile(path string) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := Decode(data, FormatFor(path), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode unmarshals data in the given format into cfg.
func Decode(data []byte, format Format, cfg *BreakoutConfig) error {
	switch format {
	case FormatTOML:
		_, err := toml.Decode(string(data), cfg)
		return err
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// Encode renders cfg in the given format.
func Encode(cfg BreakoutConfig, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("failed to encode toml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown config format %q", format)
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breaker", "configs", filename)
}

// Validate reports the first value that would make the simulation degenerate.
func (c BreakoutConfig) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"world.width", c.World.Width},
		{"world.height", c.World.Height},
		{"ball.radius_ratio", c.Ball.RadiusRatio},
		{"ball.speed_ratio", c.Ball.SpeedRatio},
		{"ball.hitbox_scale", c.Ball.HitboxScale},
		{"paddle.width_ratio", c.Paddle.WidthRatio},
		{"paddle.height_ratio", c.Paddle.HeightRatio},
		{"paddle.speed_ratio", c.Paddle.SpeedRatio},
		{"blocks.width_ratio", c.Blocks.WidthRatio},
		{"blocks.height_ratio", c.Blocks.HeightRatio},
		{"blocks.columns_fill", c.Blocks.ColumnsFill},
		{"blocks.rows_fill", c.Blocks.RowsFill},
		{"timing.max_frame_time", c.Timing.MaxFrameTime},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, p.name, p.v)
		}
	}

	if c.Paddle.WidthRatio >= 1 {
		return fmt.Errorf("%w: paddle.width_ratio must be below 1, got %v", ErrInvalid, c.Paddle.WidthRatio)
	}
	if c.Blocks.MinLives < 1 || c.Blocks.MaxLives < c.Blocks.MinLives {
		return fmt.Errorf("%w: blocks lives range [%d, %d]", ErrInvalid, c.Blocks.MinLives, c.Blocks.MaxLives)
	}
	if c.Gameplay.MinLives < 1 || c.Gameplay.MaxLives < c.Gameplay.MinLives {
		return fmt.Errorf("%w: gameplay lives range [%d, %d]", ErrInvalid, c.Gameplay.MinLives, c.Gameplay.MaxLives)
	}
	if c.Gameplay.FreezeMillis < 0 {
		return fmt.Errorf("%w: gameplay.freeze_ms must not be negative, got %v", ErrInvalid, c.Gameplay.FreezeMillis)
	}
	if c.Input.HoldMillis < 0 {
		return fmt.Errorf("%w: input.hold_ms must not be negative, got %d", ErrInvalid, c.Input.HoldMillis)
	}

	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		return fmt.Errorf("%w: difficulty.progression.type %q", ErrInvalid, c.Difficulty.Progression.Type)
	}
	return nil
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Ball.SpeedRatio = 0.7
		cfg.Paddle.WidthRatio = 0.18
		cfg.Gameplay.FreezeMillis = 1000
	case DifficultyHard:
		cfg.Paddle.WidthRatio = 0.12
		cfg.Paddle.SpeedRatio = 1.1
		cfg.Gameplay.FreezeMillis = 2000
	}
}

// LoadWithPreset loads the config like LoadBreakout and applies a named
// difficulty preset on top. An empty preset applies nothing.
func LoadWithPreset(customPath, preset string) (BreakoutConfig, error) {
	cfg, err := LoadBreakout(customPath)
	if err != nil {
		return cfg, err
	}
	if preset == "" {
		return cfg, nil
	}

	p := ParsePreset(preset)
	if p == "" {
		return cfg, fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalid, preset)
	}
	ApplyBreakoutPreset(&cfg, p)
	return cfg, nil
}

// Package config provides YAML/TOML-based game configuration loading,
// validation and difficulty management for the breaker.
package config

// BreakoutConfig contains all tunables for the brick breaker.
// Sizes and speeds are ratios of the world dimensions so the same file works
// for any world size.
type BreakoutConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world"`
	Ball       BallConfig       `yaml:"ball" toml:"ball"`
	Paddle     PaddleConfig     `yaml:"paddle" toml:"paddle"`
	Blocks     BlocksConfig     `yaml:"blocks" toml:"blocks"`
	Gameplay   GameplayConfig   `yaml:"gameplay" toml:"gameplay"`
	Timing     TimingConfig     `yaml:"timing" toml:"timing"`
	Input      InputConfig      `yaml:"input" toml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// WorldConfig defines the simulated playfield in virtual pixels.
type WorldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// BallConfig defines ball size, speed and collision shaping.
type BallConfig struct {
	RadiusRatio    float64 `yaml:"radius_ratio" toml:"radius_ratio"`       // Of (width + height)
	SpeedRatio     float64 `yaml:"speed_ratio" toml:"speed_ratio"`         // Of height, per second
	LaunchX        float64 `yaml:"launch_x" toml:"launch_x"`               // Of width
	LaunchY        float64 `yaml:"launch_y" toml:"launch_y"`               // Of height
	HitboxScale    float64 `yaml:"hitbox_scale" toml:"hitbox_scale"`       // Square side in radii
	SteepThreshold float64 `yaml:"steep_threshold" toml:"steep_threshold"` // Downward component that triggers deflection
	DeflectDegrees float64 `yaml:"deflect_degrees" toml:"deflect_degrees"`
}

// PaddleConfig defines the paddle geometry and speed.
type PaddleConfig struct {
	WidthRatio   float64 `yaml:"width_ratio" toml:"width_ratio"`
	HeightRatio  float64 `yaml:"height_ratio" toml:"height_ratio"`
	BottomOffset float64 `yaml:"bottom_offset" toml:"bottom_offset"` // Pixels from the bottom edge
	SpeedRatio   float64 `yaml:"speed_ratio" toml:"speed_ratio"`     // Of width, per second
	DropMargin   float64 `yaml:"drop_margin" toml:"drop_margin"`     // Paddle heights above the bottom where balls are lost
}

// BlocksConfig defines the board layout and block durability.
type BlocksConfig struct {
	WidthRatio   float64 `yaml:"width_ratio" toml:"width_ratio"`
	HeightRatio  float64 `yaml:"height_ratio" toml:"height_ratio"`
	PaddingRatio float64 `yaml:"padding_ratio" toml:"padding_ratio"` // Of block width
	ColumnsFill  float64 `yaml:"columns_fill" toml:"columns_fill"`   // Share of width covered by columns
	RowsFill     float64 `yaml:"rows_fill" toml:"rows_fill"`         // Share of height covered by rows
	Top          float64 `yaml:"top" toml:"top"`
	MinLives     int     `yaml:"min_lives" toml:"min_lives"`
	MaxLives     int     `yaml:"max_lives" toml:"max_lives"`
}

// GameplayConfig defines round rules.
type GameplayConfig struct {
	MinLives     int     `yaml:"min_lives" toml:"min_lives"`
	MaxLives     int     `yaml:"max_lives" toml:"max_lives"`
	FreezeMillis float64 `yaml:"freeze_ms" toml:"freeze_ms"`
}

// TimingConfig bounds the frame driver's delta-time.
type TimingConfig struct {
	MaxFrameTime float64 `yaml:"max_frame_time" toml:"max_frame_time"` // Seconds
}

// InputConfig tunes the terminal key-hold emulation.
type InputConfig struct {
	HoldMillis int `yaml:"hold_ms" toml:"hold_ms"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Added to ball speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

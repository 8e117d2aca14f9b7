package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Ball: BallConfig{
			RadiusRatio:    0.02,
			SpeedRatio:     0.84,
			LaunchX:        0.5,
			LaunchY:        0.55,
			HitboxScale:    1.8,
			SteepThreshold: 0.8,
			DeflectDegrees: 15,
		},
		Paddle: PaddleConfig{
			WidthRatio:   0.15,
			HeightRatio:  0.05,
			BottomOffset: 100,
			SpeedRatio:   0.95,
			DropMargin:   1.1,
		},
		Blocks: BlocksConfig{
			WidthRatio:   0.10,
			HeightRatio:  0.05,
			PaddingRatio: 0.05,
			ColumnsFill:  0.8,
			RowsFill:     0.4,
			Top:          50,
			MinLives:     1,
			MaxLives:     3,
		},
		Gameplay: GameplayConfig{
			MinLives:     4,
			MaxLives:     6,
			FreezeMillis: 1400,
		},
		Timing: TimingConfig{
			MaxFrameTime: 0.05,
		},
		Input: InputConfig{
			HoldMillis: 150,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 150,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}

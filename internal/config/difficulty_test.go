package config

import (
	"math"
	"testing"
)

func TestDifficultyDisabledUsesInitialLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.4,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 1},
	})

	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if got := d.Level(1000, 1000); got != 0.4 {
		t.Errorf("Level() = %v, expected 0.4", got)
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 0.5},
	})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0},
		{50, 0.5},
		{100, 1},
		{500, 1}, // clamped
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	if got := d.Speed(400, 100, 0); math.Abs(got-600) > 1e-9 {
		t.Errorf("Speed at max = %v, expected 600", got)
	}
	if got := d.Speed(400, 0, 0); got != 400 {
		t.Errorf("Speed at start = %v, expected 400", got)
	}
}

func TestDifficultyTimeProgressionFromInitial(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 0},
	})

	// MaxAt of zero is treated as one tick
	if got := d.Level(0, 1); got != 1 {
		t.Errorf("Level() = %v, expected 1", got)
	}
	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level() = %v, expected 0.5", got)
	}
}

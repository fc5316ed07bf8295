package config

import (
	_ "embed"
)

//go:embed defaults/catch.yaml
var defaultCatchYAML []byte

// DefaultCatchConfig returns the default catch game configuration.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		World: CatchWorld{
			Width:  1280,
			Height: 720,
		},
		Player: CatchPlayer{
			Width:        90,
			Height:       90,
			Speed:        9,
			BottomMargin: 30,
		},
		Objects: CatchObjects{
			Size:       55,
			Count:      8,
			MinSpeed:   3,
			MaxSpeed:   6,
			SpawnMinY:  -600,
			SpawnMaxY:  -50,
			HazardSpin: 5,
			Weights: CatchWeights{
				Fruit:  50,
				Hazard: 40,
				Bonus:  5,
				Life:   3,
				Shield: 2,
			},
		},
		Rules: CatchRules{
			Lives:           3,
			SpeedScoreStep:  12,
			BonusMultiplier: 2,
			BonusDurationMS: 5000, // 300 ticks at 60 FPS
			ShieldTicks:     300,
			LevelThresholds: []int{50, 120},
		},
		Audio: CatchAudio{
			Music:   true,
			Effects: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCatchYAML
}

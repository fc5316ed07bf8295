// Package config provides YAML-based game configuration loading and
// difficulty presets for the catch game.
package config

import "time"

// CatchConfig contains all configuration for the catch game.
type CatchConfig struct {
	World   CatchWorld   `yaml:"world"`
	Player  CatchPlayer  `yaml:"player"`
	Objects CatchObjects `yaml:"objects"`
	Rules   CatchRules   `yaml:"rules"`
	Audio   CatchAudio   `yaml:"audio"`
}

// CatchWorld defines the simulated playfield in world pixels.
// Rendering scales these to whatever terminal the session runs in.
type CatchWorld struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CatchPlayer defines the catcher.
type CatchPlayer struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	Speed        int `yaml:"speed"`         // Pixels per tick while a direction is held
	BottomMargin int `yaml:"bottom_margin"` // Gap between the catcher and the bottom edge
}

// CatchObjects defines falling object spawning.
type CatchObjects struct {
	Size       int          `yaml:"size"`
	Count      int          `yaml:"count"`
	MinSpeed   int          `yaml:"min_speed"`
	MaxSpeed   int          `yaml:"max_speed"`
	SpawnMinY  int          `yaml:"spawn_min_y"`
	SpawnMaxY  int          `yaml:"spawn_max_y"`
	HazardSpin int          `yaml:"hazard_spin"` // Degrees per tick
	Weights    CatchWeights `yaml:"weights"`
}

// CatchWeights are the relative spawn weights per object kind.
type CatchWeights struct {
	Fruit  int `yaml:"fruit"`
	Hazard int `yaml:"hazard"`
	Bonus  int `yaml:"bonus"`
	Life   int `yaml:"life"`
	Shield int `yaml:"shield"`
}

// Total returns the sum of all weights.
func (w CatchWeights) Total() int {
	return w.Fruit + w.Hazard + w.Bonus + w.Life + w.Shield
}

// CatchRules defines scoring, lives, timed effects and level progression.
type CatchRules struct {
	Lives           int   `yaml:"lives"`
	SpeedScoreStep  int   `yaml:"speed_score_step"` // Every N points add 1 to fall speed
	BonusMultiplier int   `yaml:"bonus_multiplier"`
	BonusDurationMS int   `yaml:"bonus_duration_ms"`
	ShieldTicks     int   `yaml:"shield_ticks"`
	LevelThresholds []int `yaml:"level_thresholds"` // Highest score of each level but the last
}

// BonusDuration returns the multiplier lifetime as a duration.
func (r CatchRules) BonusDuration() time.Duration {
	return time.Duration(r.BonusDurationMS) * time.Millisecond
}

// CatchAudio defines the initial sound settings.
type CatchAudio struct {
	Music   bool `yaml:"music"`
	Effects bool `yaml:"effects"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Empty and unknown values
// map to "" which leaves the loaded config unchanged.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// LivesForPreset returns the starting lives for a preset, or 0 for no override.
func LivesForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 5
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 2
	default:
		return 0
	}
}

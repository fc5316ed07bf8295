package catch

import (
	"time"

	"github.com/vovakirdan/tui-catch/internal/config"
)

// State holds the session-wide score, lives and timed effects.
// Level is never stored; it is always derived from score.
type State struct {
	score int
	lives int

	multiplier      int
	multiplierArmed bool
	multiplierUntil time.Duration // Simulation time at which the multiplier reverts

	shieldActive bool
	shieldTimer  int // Ticks left

	rules config.CatchRules
}

// newState returns the session-start state for the given rules.
func newState(rules config.CatchRules) State {
	return State{
		lives:      rules.Lives,
		multiplier: 1,
		rules:      rules,
	}
}

// LevelFor maps a score onto a 1-based level. A score at or below
// thresholds[0] is level 1, at or below thresholds[1] level 2, and so on.
func LevelFor(score int, thresholds []int) int {
	level := 1
	for _, t := range thresholds {
		if score <= t {
			break
		}
		level++
	}
	return level
}

// Score returns the current score.
func (s *State) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *State) Lives() int { return s.lives }

// Multiplier returns the current fruit score multiplier.
func (s *State) Multiplier() int { return s.multiplier }

// ShieldActive reports whether hazards are currently absorbed.
func (s *State) ShieldActive() bool { return s.shieldActive }

// ShieldTimer returns the ticks left on the shield.
func (s *State) ShieldTimer() int { return s.shieldTimer }

// Level returns the level derived from the current score.
func (s *State) Level() int {
	return LevelFor(s.score, s.rules.LevelThresholds)
}

// MultiplierRemaining returns how long the multiplier has left at simulation time now.
func (s *State) MultiplierRemaining(now time.Duration) time.Duration {
	if !s.multiplierArmed || s.multiplierUntil <= now {
		return 0
	}
	return s.multiplierUntil - now
}

// catchFruit adds the multiplier to the score and returns the points gained.
func (s *State) catchFruit() int {
	s.score += s.multiplier
	return s.multiplier
}

// hitHazard costs a life unless the shield is up. Returns true if absorbed.
func (s *State) hitHazard() bool {
	if s.shieldActive {
		return true
	}
	s.lives--
	return false
}

// catchBonus sets the multiplier and (re)arms its deadline. Never stacks.
func (s *State) catchBonus(now time.Duration) {
	s.multiplier = s.rules.BonusMultiplier
	s.multiplierArmed = true
	s.multiplierUntil = now + s.rules.BonusDuration()
}

// catchLife adds a life.
func (s *State) catchLife() {
	s.lives++
}

// catchShield raises the shield with a full timer. Never stacks.
func (s *State) catchShield() {
	s.shieldActive = true
	s.shieldTimer = s.rules.ShieldTicks
}

// expire runs the once-per-tick timer bookkeeping at simulation time now.
// The multiplier reverts once its deadline passes; the shield counts down one
// tick and drops when the counter reaches zero.
func (s *State) expire(now time.Duration) (multiplierEnded, shieldEnded bool) {
	if s.multiplierArmed && now >= s.multiplierUntil {
		s.multiplier = 1
		s.multiplierArmed = false
		multiplierEnded = true
	}

	if s.shieldActive {
		s.shieldTimer--
		if s.shieldTimer <= 0 {
			s.shieldTimer = 0
			s.shieldActive = false
			shieldEnded = true
		}
	}

	return multiplierEnded, shieldEnded
}

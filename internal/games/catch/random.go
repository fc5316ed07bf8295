package catch

import (
	"errors"
	"math/rand"
)

// ErrRandomExhausted is returned when a scripted random source has no values left.
var ErrRandomExhausted = errors.New("catch: random source exhausted")

// Source supplies random integers to the object factory.
// Intn returns a value in [0, n) for n > 0.
type Source interface {
	Intn(n int) (int, error)
}

// RandSource adapts a seeded math/rand generator. It never fails.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a source seeded with seed.
func NewRandSource(seed int64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a pseudo-random value in [0, n).
func (s *RandSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	return s.rng.Intn(n), nil
}

// ScriptedSource replays a fixed list of values, reduced modulo n.
// It is used for deterministic tests and replays.
type ScriptedSource struct {
	values []int
	pos    int
}

// NewScriptedSource creates a source that yields values in order.
func NewScriptedSource(values ...int) *ScriptedSource {
	return &ScriptedSource{values: values}
}

// Intn returns the next scripted value modulo n, or ErrRandomExhausted.
func (s *ScriptedSource) Intn(n int) (int, error) {
	if s.pos >= len(s.values) {
		return 0, ErrRandomExhausted
	}
	v := s.values[s.pos]
	s.pos++
	if n <= 0 {
		return 0, nil
	}
	return ((v % n) + n) % n, nil
}

// Remaining returns how many values are left.
func (s *ScriptedSource) Remaining() int {
	return len(s.values) - s.pos
}

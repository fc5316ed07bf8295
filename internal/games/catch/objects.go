package catch

import (
	"fmt"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// FallingObject is one falling entity. X is fixed at spawn, Y grows every tick.
type FallingObject struct {
	X        int
	Y        int
	Kind     Kind
	Speed    int // Base fall speed in pixels per tick
	Rotation int // Degrees, only advances for hazards; renderers take it mod 360
}

// Rect returns the collision rectangle for an object of the given size.
func (o FallingObject) Rect(size int) core.Rect {
	return core.NewRect(o.X, o.Y, size, size)
}

// ObjectSet owns a fixed-size population of falling objects.
// Slots are never added or removed; recycling overwrites a slot in place.
type ObjectSet struct {
	objects   []FallingObject
	factory   *ObjectFactory
	size      int // Object edge length
	worldH    int
	scoreStep int // Every scoreStep points add 1 to fall speed
	spin      int // Hazard rotation per tick
}

// NewObjectSet spawns count objects from factory.
func NewObjectSet(factory *ObjectFactory, count, size, worldH, scoreStep, spin int) (*ObjectSet, error) {
	set := &ObjectSet{
		objects:   make([]FallingObject, count),
		factory:   factory,
		size:      size,
		worldH:    worldH,
		scoreStep: scoreStep,
		spin:      spin,
	}

	for i := range set.objects {
		obj, err := factory.Spawn()
		if err != nil {
			return nil, fmt.Errorf("initial object %d: %w", i, err)
		}
		set.objects[i] = obj
	}

	return set, nil
}

// Len returns the population size.
func (s *ObjectSet) Len() int {
	return len(s.objects)
}

// At returns a copy of the object in slot i.
func (s *ObjectSet) At(i int) FallingObject {
	return s.objects[i]
}

// Objects returns a copy of all objects in slot order.
func (s *ObjectSet) Objects() []FallingObject {
	out := make([]FallingObject, len(s.objects))
	copy(out, s.objects)
	return out
}

// FallDistance returns how far an object with base speed moves in one tick.
// The score term is unbounded on purpose: long sessions keep getting faster.
func (s *ObjectSet) FallDistance(speed, level, score int) int {
	return speed + score/s.scoreStep + level
}

// Advance moves every object down by its fall distance and recycles objects
// that left the bottom of the world. Returns the indices that were recycled.
func (s *ObjectSet) Advance(level, score int) ([]int, error) {
	var recycled []int
	for i := range s.objects {
		obj := &s.objects[i]
		obj.Y += s.FallDistance(obj.Speed, level, score)
		if obj.Kind == KindHazard {
			obj.Rotation += s.spin
		}

		if obj.Y > s.worldH {
			if err := s.Recycle(i); err != nil {
				return recycled, err
			}
			recycled = append(recycled, i)
		}
	}
	return recycled, nil
}

// Recycle replaces slot i with a freshly spawned object.
func (s *ObjectSet) Recycle(i int) error {
	obj, err := s.factory.Spawn()
	if err != nil {
		return fmt.Errorf("recycle slot %d: %w", i, err)
	}
	s.objects[i] = obj
	return nil
}

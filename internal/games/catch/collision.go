package catch

import (
	"time"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// Resolver tests the player against every falling object and applies the
// effect of each object it overlaps.
type Resolver struct {
	objectSize int
}

// NewResolver creates a resolver for objects of the given size.
func NewResolver(objectSize int) Resolver {
	return Resolver{objectSize: objectSize}
}

// Resolve applies one effect per overlapping object in slot order, recycles the
// object, and returns the feedback events. now is the simulation time used to
// arm the bonus multiplier.
func (r Resolver) Resolve(player core.Rect, set *ObjectSet, st *State, now time.Duration) ([]Event, error) {
	var events []Event

	for i := 0; i < set.Len(); i++ {
		obj := set.At(i)
		if !player.Intersects(obj.Rect(r.objectSize)) {
			continue
		}

		if ev, ok := r.apply(obj.Kind, st, now); ok {
			events = append(events, ev)
		}

		if err := set.Recycle(i); err != nil {
			return events, err
		}
	}

	return events, nil
}

// apply mutates state for a caught object. The bool is false when nothing
// should be reported (a hazard absorbed by the shield).
func (r Resolver) apply(kind Kind, st *State, now time.Duration) (Event, bool) {
	ev := Event{Kind: kind}

	switch kind {
	case KindFruit:
		st.catchFruit()
		ev.Type = EventCaughtFruit
	case KindHazard:
		if st.hitHazard() {
			return Event{}, false
		}
		ev.Type = EventHitHazard
	case KindBonus:
		st.catchBonus(now)
		ev.Type = EventPickedPowerup
	case KindLife:
		st.catchLife()
		ev.Type = EventPickedPowerup
	case KindShield:
		st.catchShield()
		ev.Type = EventPickedPowerup
	default:
		return Event{}, false
	}

	ev.Score = st.score
	return ev, true
}

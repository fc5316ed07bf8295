package catch

// EventType classifies something that happened during a tick.
type EventType int

const (
	EventCaughtFruit   EventType = iota // A fruit was caught
	EventHitHazard                      // An unshielded hazard cost a life
	EventPickedPowerup                  // A bonus, life or shield was caught
	EventLevelChanged                   // The derived level changed this tick
	EventGameOver                       // Lives ran out this tick
)

// String returns the name of the event type.
func (t EventType) String() string {
	switch t {
	case EventCaughtFruit:
		return "CaughtFruit"
	case EventHitHazard:
		return "HitHazard"
	case EventPickedPowerup:
		return "PickedPowerup"
	case EventLevelChanged:
		return "LevelChanged"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is a discrete notification emitted by a tick.
type Event struct {
	Type  EventType
	Kind  Kind // Object kind for collision events
	Level int  // New level for EventLevelChanged
	Score int  // Score after the event
}

// IsFeedback reports whether the event is a collision outcome meant for audio feedback.
func (e Event) IsFeedback() bool {
	return e.Type == EventCaughtFruit || e.Type == EventHitHazard || e.Type == EventPickedPowerup
}

// Feedback receives collision outcomes. Implementations decide whether and
// how to play them.
type Feedback interface {
	Notify(ev Event)
}

// HighScoreStore persists the best score across sessions.
type HighScoreStore interface {
	// Best returns the current best score, 0 if none is recorded.
	Best() (int, error)
	// Record stores a final score and returns the best score after recording.
	Record(score int) (int, error)
}

package catch

import (
	"time"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Phase    Phase
	Settings Settings

	Tick    uint64
	Elapsed time.Duration

	Score      int
	Lives      int
	Level      int
	Multiplier int
	Best       int
	FinalScore int

	MultiplierRemaining time.Duration
	ShieldActive        bool
	ShieldRemaining     time.Duration

	Player     core.Rect
	Objects    []FallingObject
	ObjectSize int

	WorldW, WorldH int
}

// Snapshot copies the current session state.
func (s *Session) Snapshot() Snapshot {
	st := &s.run.state
	now := s.Elapsed()

	return Snapshot{
		Phase:               s.phase,
		Settings:            s.settings,
		Tick:                s.run.tick,
		Elapsed:             now,
		Score:               st.Score(),
		Lives:               st.Lives(),
		Level:               st.Level(),
		Multiplier:          st.Multiplier(),
		Best:                s.best,
		FinalScore:          s.finalScore,
		MultiplierRemaining: st.MultiplierRemaining(now),
		ShieldActive:        st.ShieldActive(),
		ShieldRemaining:     time.Duration(st.ShieldTimer()) * time.Second / time.Duration(s.tickRate),
		Player:              s.run.player.Rect(),
		Objects:             s.run.objects.Objects(),
		ObjectSize:          s.cfg.Objects.Size,
		WorldW:              s.cfg.World.Width,
		WorldH:              s.cfg.World.Height,
	}
}

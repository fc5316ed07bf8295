// Package catch implements a falling-object catching game.
// The player moves a catcher along the bottom of the playfield to catch fruit,
// dodge hazards and pick up power-ups while objects fall faster and faster.
//
// The package is pure simulation: it owns no terminal, clock, audio device or
// file. The platform drives it one tick at a time and reads snapshots back.
package catch

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
)

// ErrInvalidConfiguration is returned by NewSession for unusable settings.
var ErrInvalidConfiguration = errors.New("catch: invalid configuration")

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseSettings
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseClosed
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseSettings:
		return "settings"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	case PhaseClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Settings are the player-facing sound toggles.
type Settings struct {
	Music   bool
	Effects bool
}

// Options configures a Session's collaborators.
type Options struct {
	TickRate   int            // Ticks per second, default 60
	Seed       int64          // Seed for the default random source
	Source     Source         // Overrides Seed when set
	Logger     *log.Logger    // Defaults to a discarding logger
	Feedback   Feedback       // Optional collision feedback sink
	HighScores HighScoreStore // Optional best-score persistence
}

// run is everything a restart replaces. It is swapped in as one value.
type run struct {
	state   State
	player  Player
	objects *ObjectSet
	tick    uint64
	level   int
}

// StepResult is returned by Session.Step after each simulation tick.
type StepResult struct {
	Phase  Phase
	Events []Event
}

// Session orchestrates the game: phase transitions, the per-tick update and
// the game-over bookkeeping. It is not safe for concurrent use; the platform
// drives it from a single goroutine.
type Session struct {
	cfg      config.CatchConfig
	tickRate int
	factory  *ObjectFactory
	resolver Resolver
	logger   *log.Logger
	feedback Feedback
	scores   HighScoreStore

	phase      Phase
	run        run
	settings   Settings
	best       int
	finalScore int
}

// NewSession validates cfg and builds a session sitting in the menu.
func NewSession(cfg config.CatchConfig, opts Options) (*Session, error) {
	if opts.TickRate == 0 {
		opts.TickRate = 60
	}
	if err := validateConfig(cfg, opts.TickRate); err != nil {
		return nil, err
	}

	src := opts.Source
	if src == nil {
		src = NewRandSource(opts.Seed)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		cfg:      cfg,
		tickRate: opts.TickRate,
		factory:  NewObjectFactory(cfg, src),
		resolver: NewResolver(cfg.Objects.Size),
		logger:   logger,
		feedback: opts.Feedback,
		scores:   opts.HighScores,
		phase:    PhaseMenu,
		settings: Settings{
			Music:   cfg.Audio.Music,
			Effects: cfg.Audio.Effects,
		},
	}

	r, err := s.newRun()
	if err != nil {
		return nil, err
	}
	s.run = r
	s.RefreshBest()

	return s, nil
}

// validateConfig rejects settings the simulation cannot run with.
func validateConfig(cfg config.CatchConfig, tickRate int) error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
	}

	w, p, o, r := cfg.World, cfg.Player, cfg.Objects, cfg.Rules
	switch {
	case w.Width <= 0 || w.Height <= 0:
		return invalid("world size %dx%d must be positive", w.Width, w.Height)
	case p.Width <= 0 || p.Height <= 0:
		return invalid("player size %dx%d must be positive", p.Width, p.Height)
	case p.Width > w.Width || p.Height+p.BottomMargin > w.Height:
		return invalid("player %dx%d does not fit the %dx%d world", p.Width, p.Height, w.Width, w.Height)
	case p.Speed < 0 || p.BottomMargin < 0:
		return invalid("player speed and bottom margin must not be negative")
	case o.Size <= 0 || o.Size > w.Width || o.Size > w.Height:
		return invalid("object size %d does not fit the %dx%d world", o.Size, w.Width, w.Height)
	case o.Count <= 0:
		return invalid("object count %d must be positive", o.Count)
	case o.MinSpeed > o.MaxSpeed:
		return invalid("object speed range [%d, %d] is empty", o.MinSpeed, o.MaxSpeed)
	case o.SpawnMinY > o.SpawnMaxY:
		return invalid("spawn range [%d, %d] is empty", o.SpawnMinY, o.SpawnMaxY)
	case o.Weights.Fruit < 0 || o.Weights.Hazard < 0 || o.Weights.Bonus < 0 ||
		o.Weights.Life < 0 || o.Weights.Shield < 0:
		return invalid("spawn weights must not be negative")
	case o.Weights.Total() <= 0:
		return invalid("spawn weights sum to zero")
	case r.Lives <= 0:
		return invalid("lives %d must be positive", r.Lives)
	case r.SpeedScoreStep <= 0:
		return invalid("speed score step %d must be positive", r.SpeedScoreStep)
	case r.BonusMultiplier < 1:
		return invalid("bonus multiplier %d must be at least 1", r.BonusMultiplier)
	case r.BonusDurationMS < 0 || r.ShieldTicks < 0:
		return invalid("effect durations must not be negative")
	case tickRate <= 0:
		return invalid("tick rate %d must be positive", tickRate)
	}

	for i := 1; i < len(r.LevelThresholds); i++ {
		if r.LevelThresholds[i] <= r.LevelThresholds[i-1] {
			return invalid("level thresholds %v must be strictly increasing", r.LevelThresholds)
		}
	}

	return nil
}

// newRun builds a fresh state, player and object population.
func (s *Session) newRun() (run, error) {
	objects, err := NewObjectSet(
		s.factory,
		s.cfg.Objects.Count,
		s.cfg.Objects.Size,
		s.cfg.World.Height,
		s.cfg.Rules.SpeedScoreStep,
		s.cfg.Objects.HazardSpin,
	)
	if err != nil {
		return run{}, err
	}

	state := newState(s.cfg.Rules)
	return run{
		state:   state,
		player:  newPlayer(s.cfg),
		objects: objects,
		level:   state.Level(),
	}, nil
}

// ID returns the identifier used for score storage.
func (s *Session) ID() string {
	return "catch"
}

// Title returns the display name.
func (s *Session) Title() string {
	return "Jungle Catch"
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Settings returns the current sound settings.
func (s *Session) Settings() Settings {
	return s.settings
}

// State returns the live game state. Callers must not hold it across ticks.
func (s *Session) State() *State {
	return &s.run.state
}

// Elapsed returns the simulated time of the current run.
// Computed from the tick count so it never accumulates rounding error.
func (s *Session) Elapsed() time.Duration {
	return time.Duration(s.run.tick) * time.Second / time.Duration(s.tickRate)
}

// Best returns the cached best score.
func (s *Session) Best() int {
	return s.best
}

// FinalScore returns the score the last finished run ended with.
func (s *Session) FinalScore() int {
	return s.finalScore
}

// RefreshBest reloads the best score from the high-score store.
// A store error keeps the cached value.
func (s *Session) RefreshBest() int {
	if s.scores == nil {
		return s.best
	}
	best, err := s.scores.Best()
	if err != nil {
		s.logger.Warn("high score unavailable", "error", err)
		return s.best
	}
	s.best = max(s.best, best)
	return s.best
}

// Start begins a new run from the menu or after game over. The new state,
// player and objects replace the old ones together; on error nothing changes.
func (s *Session) Start() error {
	if s.phase != PhaseMenu && s.phase != PhaseGameOver {
		return nil
	}

	r, err := s.newRun()
	if err != nil {
		return err
	}
	s.run = r
	s.phase = PhasePlaying
	s.RefreshBest()

	s.logger.Info("session started", "lives", r.state.Lives(), "objects", r.objects.Len())
	return nil
}

// Restart is Start after game over.
func (s *Session) Restart() error {
	if s.phase != PhaseGameOver {
		return nil
	}
	return s.Start()
}

// Pause freezes a running game.
func (s *Session) Pause() {
	if s.phase == PhasePlaying {
		s.phase = PhasePaused
		s.logger.Debug("paused", "tick", s.run.tick)
	}
}

// Resume continues a paused game.
func (s *Session) Resume() {
	if s.phase == PhasePaused {
		s.phase = PhasePlaying
		s.logger.Debug("resumed", "tick", s.run.tick)
	}
}

// OpenSettings moves from the menu to the settings screen.
func (s *Session) OpenSettings() {
	if s.phase == PhaseMenu {
		s.phase = PhaseSettings
	}
}

// BackToMenu returns to the menu from settings or after game over.
func (s *Session) BackToMenu() {
	if s.phase == PhaseSettings || s.phase == PhaseGameOver {
		s.phase = PhaseMenu
	}
}

// ToggleMusic flips the background music setting.
func (s *Session) ToggleMusic() {
	s.settings.Music = !s.settings.Music
}

// ToggleEffects flips the sound effects setting.
func (s *Session) ToggleEffects() {
	s.settings.Effects = !s.settings.Effects
}

// Quit closes the session. Closed is terminal.
func (s *Session) Quit() {
	if s.phase != PhaseClosed {
		s.logger.Info("session closed", "phase", s.phase, "score", s.run.state.Score())
		s.phase = PhaseClosed
	}
}

// Step handles one tick of input. Only the Playing phase advances the
// simulation; every other phase just reacts to discrete actions.
func (s *Session) Step(in core.InputFrame) (StepResult, error) {
	if in.Has(core.ActionQuit) {
		s.Quit()
		return StepResult{Phase: s.phase}, nil
	}

	var (
		events []Event
		err    error
	)

	switch s.phase {
	case PhaseMenu:
		switch {
		case in.Has(core.ActionConfirm):
			err = s.Start()
		case in.Has(core.ActionSettings):
			s.OpenSettings()
		}

	case PhaseSettings:
		if in.Has(core.ActionToggleMusic) {
			s.ToggleMusic()
		}
		if in.Has(core.ActionToggleEffects) {
			s.ToggleEffects()
		}
		if in.Has(core.ActionBack) {
			s.BackToMenu()
		}

	case PhasePlaying:
		if in.Has(core.ActionPause) {
			s.Pause()
			break
		}
		events, err = s.tick(in.Has(core.ActionLeft), in.Has(core.ActionRight))

	case PhasePaused:
		if in.Has(core.ActionPause) {
			s.Resume()
		}

	case PhaseGameOver:
		switch {
		case in.Has(core.ActionRestart):
			err = s.Restart()
		case in.Has(core.ActionBack):
			s.BackToMenu()
		}
	}

	return StepResult{Phase: s.phase, Events: events}, err
}

// tick advances the running game by one simulation step:
// timers, player movement, falling, collisions, level, termination.
func (s *Session) tick(left, right bool) ([]Event, error) {
	r := &s.run
	st := &r.state

	r.tick++
	now := s.Elapsed()

	multiplierEnded, shieldEnded := st.expire(now)
	if multiplierEnded {
		s.logger.Debug("multiplier expired", "tick", r.tick)
	}
	if shieldEnded {
		s.logger.Debug("shield expired", "tick", r.tick)
	}

	r.player.Move(left, right)

	if _, err := r.objects.Advance(st.Level(), st.Score()); err != nil {
		return nil, fmt.Errorf("advance tick %d: %w", r.tick, err)
	}

	events, err := s.resolver.Resolve(r.player.Rect(), r.objects, st, now)
	if s.feedback != nil {
		for _, ev := range events {
			s.feedback.Notify(ev)
		}
	}
	if err != nil {
		return events, fmt.Errorf("resolve tick %d: %w", r.tick, err)
	}

	if level := st.Level(); level != r.level {
		r.level = level
		events = append(events, Event{Type: EventLevelChanged, Level: level, Score: st.Score()})
		s.logger.Info("level changed", "level", level, "score", st.Score())
	}

	if st.Lives() <= 0 {
		s.endGame()
		events = append(events, Event{Type: EventGameOver, Score: s.finalScore})
	}

	return events, nil
}

// endGame moves to GameOver and records the final score exactly once.
func (s *Session) endGame() {
	s.phase = PhaseGameOver
	s.finalScore = s.run.state.Score()

	best := max(s.best, s.finalScore)
	if s.scores != nil {
		recorded, err := s.scores.Record(s.finalScore)
		if err != nil {
			s.logger.Warn("high score not saved", "score", s.finalScore, "error", err)
		} else {
			best = max(best, recorded)
			s.logger.Debug("high score saved", "score", s.finalScore, "best", recorded)
		}
	}
	s.best = best

	s.logger.Info("game over", "score", s.finalScore, "best", s.best, "ticks", s.run.tick)
}

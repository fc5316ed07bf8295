// Package audio plays the game's sound effects and background music
// through the system speaker.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-catch/internal/games/catch"
)

const sampleRate = beep.SampleRate(44100)

// Player turns game events into sounds. It is safe to use without a working
// audio device: until Init succeeds every call is a no-op.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	effects     bool
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player with effects and music enabled.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:   &beep.Mixer{},
		effects: true,
		logger:  logger,
	}
}

// Init opens the speaker and starts the (paused) music loop.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	p.music = &beep.Ctrl{Streamer: Music(sampleRate), Paused: true}
	p.mixer.Add(p.music)
	speaker.Play(p.mixer)
	p.initialized = true

	p.logger.Debug("audio initialized", "rate", int(sampleRate))
	return nil
}

// Apply syncs music and effects with the session settings.
func (p *Player) Apply(s catch.Settings) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.effects = s.Effects
	if !p.initialized {
		return
	}

	speaker.Lock()
	p.music.Paused = !s.Music
	speaker.Unlock()
}

// Notify plays the sound for ev when effects are on.
func (p *Player) Notify(ev catch.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.effects {
		return
	}

	s := SoundFor(ev, sampleRate)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences everything. The speaker itself stays open since the
// device cannot be reopened within one process.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Clear()
	p.mixer.Clear()
	p.initialized = false
}

// SoundFor returns the effect for an event, or nil if it has none.
func SoundFor(ev catch.Event, rate beep.SampleRate) beep.Streamer {
	switch ev.Type {
	case catch.EventCaughtFruit:
		return catchSound(rate)
	case catch.EventHitHazard:
		return hazardSound(rate)
	case catch.EventPickedPowerup:
		return powerupSound(rate)
	case catch.EventLevelChanged:
		return levelSound(rate)
	case catch.EventGameOver:
		return gameOverSound(rate)
	default:
		return nil
	}
}

var _ catch.Feedback = (*Player)(nil)

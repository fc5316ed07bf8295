package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/games/catch"
)

// Sound is the audio side of a running game.
type Sound interface {
	catch.Feedback
	Apply(s catch.Settings)
}

// Options configures a Model.
type Options struct {
	TickRate      int
	Width, Height int         // Initial screen size until the first resize
	Sound         Sound       // Optional
	Logger        *log.Logger // Defaults to a discarding logger
	ScreenshotDir string      // Defaults to ~/.catch/screenshots
}

// Model is the Bubble Tea model that drives one game session.
type Model struct {
	session  *catch.Session
	screen   *core.Screen
	keys     KeyMap
	hold     holdTracker
	pending  core.InputFrame
	opts     Options
	logger   *log.Logger
	err      error
	quitting bool
}

// NewModel creates a model for an existing session.
func NewModel(session *catch.Session, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		session: session,
		screen:  core.NewScreen(opts.Width, opts.Height),
		keys:    DefaultKeyMap(),
		hold:    newHoldTracker(opts.TickRate),
		pending: core.NewInputFrame(),
		opts:    opts,
		logger:  logger,
	}
	if opts.Sound != nil {
		opts.Sound.Apply(session.Settings())
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world is scaled to the screen, so a resize never resets the game.
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionNone:
	case core.ActionLeft, core.ActionRight:
		m.hold.Press(action)
	default:
		m.pending.Set(action)
	}

	return m, nil
}

// handleTick steps the session once with the queued input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.pending.Clone()
	m.pending.Clear()
	m.hold.Apply(&frame)

	res, err := m.session.Step(frame)
	if err != nil {
		m.logger.Error("tick failed", "error", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	if m.opts.Sound != nil {
		m.opts.Sound.Apply(m.session.Settings())
		for _, ev := range res.Events {
			// Collision outcomes already reached the sound through the session.
			if !ev.IsFeedback() {
				m.opts.Sound.Notify(ev)
			}
		}
	}

	if res.Phase != catch.PhasePlaying {
		m.hold.Reset()
	}
	if res.Phase == catch.PhaseClosed {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.opts.TickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".catch", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	m.session.Render(m.screen)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.session.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// Err returns the error that stopped the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for session and blocks until it quits.
func Run(session *catch.Session, opts Options) error {
	p := tea.NewProgram(
		NewModel(session, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}

package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/games/catch"
)

// fakeSound records what the model sends to the audio side.
type fakeSound struct {
	settings []catch.Settings
	events   []catch.Event
}

func (f *fakeSound) Notify(ev catch.Event) { f.events = append(f.events, ev) }
func (f *fakeSound) Apply(s catch.Settings) { f.settings = append(f.settings, s) }

func newTestModel(t *testing.T, sound Sound) Model {
	t.Helper()
	session, err := catch.NewSession(config.DefaultCatchConfig(), catch.Options{Seed: 42})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return NewModel(session, Options{
		TickRate:      60,
		Width:         80,
		Height:        24,
		Sound:         sound,
		ScreenshotDir: t.TempDir(),
	})
}

func send(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelStartAndMove(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{})
	if m.session.Phase() != catch.PhasePlaying {
		t.Fatalf("Phase = %v, want playing", m.session.Phase())
	}

	before := m.session.Snapshot().Player.X
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyLeft}, TickMsg{}, TickMsg{}, TickMsg{})
	after := m.session.Snapshot().Player.X
	if after >= before {
		t.Errorf("player X %d -> %d, want movement left", before, after)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := send(m, runeKey('q'), TickMsg{})
	if m.session.Phase() != catch.PhaseClosed {
		t.Errorf("Phase = %v, want closed", m.session.Phase())
	}
	if !isQuit(cmd) {
		t.Error("expected tea.Quit after closing")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelSyncsSound(t *testing.T) {
	sound := &fakeSound{}
	m := newTestModel(t, sound)

	m, _ = send(m, runeKey('s'), TickMsg{}, runeKey('m'), TickMsg{})

	last := sound.settings[len(sound.settings)-1]
	if last.Music || !last.Effects {
		t.Errorf("last settings = %+v, want music off, effects on", last)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{}, TickMsg{})
	tick := m.session.Snapshot().Tick

	m, _ = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 120x40", m.screen.Width(), m.screen.Height())
	}
	if got := m.session.Snapshot().Tick; got != tick {
		t.Errorf("resize changed tick %d -> %d", tick, got)
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.opts.ScreenshotDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d screenshots, want 1", len(entries))
	}

	data, err := os.ReadFile(filepath.Join(m.opts.ScreenshotDir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "JUNGLE CATCH") {
		t.Error("screenshot does not contain the menu")
	}
	if m.session.Phase() != catch.PhaseMenu {
		t.Error("screenshot key changed the phase")
	}
}

func TestRenderScreenColors(t *testing.T) {
	scr := core.NewScreen(10, 2)
	scr.DrawText(0, 0, "plain")
	scr.DrawTextColor(0, 1, "red", core.ColorRed)
	scr.ShadeRect(core.NewRect(5, 1, 3, 1), core.ColorJungle)

	out := RenderScreen(scr)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "plain") {
		t.Errorf("default-colored row should be unstyled, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "red") {
		t.Errorf("row 1 = %q, want text", lines[1])
	}
}

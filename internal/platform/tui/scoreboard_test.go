package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-catch/internal/storage"
)

type fakeSource struct {
	runs  []storage.Run
	stats *storage.GameStats
	err   error
}

func (f fakeSource) TopScores(string, int) ([]storage.Run, error) {
	return f.runs, f.err
}

func (f fakeSource) GetGameStats(string) (*storage.GameStats, error) {
	if f.stats == nil {
		return &storage.GameStats{}, nil
	}
	return f.stats, nil
}

func TestScoreRows(t *testing.T) {
	when := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)
	rows := ScoreRows([]storage.Run{
		{Player: "ann", Score: 120, Level: 3, Duration: 95 * time.Second, CreatedAt: when},
		{Player: "local", Score: 40, Level: 1, Duration: 20 * time.Second, CreatedAt: when},
	})

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	want := []string{"#1", "ann", "120", "3", "1:35", "Mar 04 15:30"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("row 0 col %d = %q, want %q", i, rows[0][i], cell)
		}
	}
	if rows[1][0] != "#2" {
		t.Errorf("second rank = %q", rows[1][0])
	}
}

func TestScoreboardView(t *testing.T) {
	src := fakeSource{
		runs: []storage.Run{{Player: "ann", Score: 77, Level: 2}},
		stats: &storage.GameStats{
			GamesCount: 4, HighScore: 77, AvgScore: 30.5, MaxLevel: 2, PlayTime: 3 * time.Minute,
		},
	}
	m := NewScoreboardModel(src, "catch", "Jungle Catch", 100, 30)
	view := m.View()

	for _, want := range []string{"HIGH SCORES - Jungle Catch", "ann", "77", "4 games", "avg 30.5"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardEmptyAndError(t *testing.T) {
	empty := NewScoreboardModel(fakeSource{}, "catch", "Jungle Catch", 80, 24)
	if !strings.Contains(empty.View(), "No scores recorded yet") {
		t.Error("empty scoreboard should say so")
	}

	broken := NewScoreboardModel(fakeSource{err: errors.New("locked")}, "catch", "Jungle Catch", 80, 24)
	if !strings.Contains(broken.View(), "locked") {
		t.Error("error not shown")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "catch", "Jungle Catch", 80, 24)
	_, cmd := m.Update(runeKey('q'))
	if !isQuit(cmd) {
		t.Error("q should quit the scoreboard")
	}
}

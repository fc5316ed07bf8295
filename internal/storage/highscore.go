package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/vovakirdan/tui-catch/internal/games/catch"
)

// ScoreBook adapts a Store to the game's best-score interface for one
// game and player. Every recorded score becomes a run row.
type ScoreBook struct {
	store  *Store
	gameID string
	player string

	// Optional extra columns for the next Record call.
	Level    func() int
	Duration func() time.Duration
}

// NewScoreBook binds store to gameID and player.
func NewScoreBook(store *Store, gameID, player string) *ScoreBook {
	return &ScoreBook{store: store, gameID: gameID, player: player}
}

// Best returns the best score across all players.
func (b *ScoreBook) Best() (int, error) {
	return b.store.HighScore(b.gameID)
}

// Record saves a finished run and returns the best score afterwards.
func (b *ScoreBook) Record(score int) (int, error) {
	r := Run{GameID: b.gameID, Player: b.player, Score: score}
	if b.Level != nil {
		r.Level = b.Level()
	}
	if b.Duration != nil {
		r.Duration = b.Duration()
	}

	if _, err := b.store.SaveRun(r); err != nil {
		return 0, err
	}
	return b.store.HighScore(b.gameID)
}

var _ catch.HighScoreStore = (*ScoreBook)(nil)

// FileHighScore keeps a single best score as decimal text in a file.
// A missing file reads as 0.
type FileHighScore struct {
	mu   sync.Mutex
	path string
}

// NewFileHighScore creates a file-backed store. ~ is expanded.
func NewFileHighScore(path string) (*FileHighScore, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	return &FileHighScore{path: expanded}, nil
}

// Path returns the backing file.
func (f *FileHighScore) Path() string {
	return f.path
}

// Best reads the stored score.
func (f *FileHighScore) Best() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

// Record writes max(score, stored) and returns it.
func (f *FileHighScore) Record(score int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	best, err := f.read()
	if err != nil {
		return 0, err
	}
	if score <= best {
		return best, nil
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return 0, fmt.Errorf("storage: cannot create directory for %s: %w", f.path, err)
	}
	if err := os.WriteFile(f.path, []byte(strconv.Itoa(score)+"\n"), 0o644); err != nil {
		return 0, fmt.Errorf("storage: cannot write high score: %w", err)
	}
	return score, nil
}

// Clear removes the backing file.
func (f *FileHighScore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	return nil
}

func (f *FileHighScore) read() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read high score: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("storage: corrupt high score file %s: %w", f.path, err)
	}
	return n, nil
}

var _ catch.HighScoreStore = (*FileHighScore)(nil)

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadGameConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catch.yaml")
	if err := os.WriteFile(path, []byte("rules:\n  lives: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		difficulty string
		wantLives  int
		wantErr    bool
	}{
		{name: "file only", difficulty: "", wantLives: 7},
		{name: "easy preset", difficulty: "easy", wantLives: 5},
		{name: "hard preset", difficulty: "hard", wantLives: 2},
		{name: "unknown preset", difficulty: "nightmare", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagConfig = path
			flagDifficulty = tt.difficulty
			t.Cleanup(func() {
				flagConfig = ""
				flagDifficulty = ""
			})

			cfg, err := loadGameConfig()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("loadGameConfig: %v", err)
			}
			if cfg.Rules.Lives != tt.wantLives {
				t.Errorf("lives = %d, want %d", cfg.Rules.Lives, tt.wantLives)
			}
			if cfg.World.Width != 1280 {
				t.Errorf("world width = %d, want default 1280", cfg.World.Width)
			}
		})
	}
}

func TestLoadGameConfigMissingFile(t *testing.T) {
	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")
	t.Cleanup(func() { flagConfig = "" })

	if _, err := loadGameConfig(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestOpenLoggerDiscardsByDefault(t *testing.T) {
	flagLogFile = ""
	logger, closer, err := openLogger("catch")
	if err != nil {
		t.Fatalf("openLogger: %v", err)
	}
	defer closer.Close()
	logger.Info("nothing to see")
}

func TestOpenLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catch.log")
	flagLogFile = path
	t.Cleanup(func() { flagLogFile = "" })

	logger, closer, err := openLogger("catch")
	if err != nil {
		t.Fatalf("openLogger: %v", err)
	}
	logger.Info("hello", "n", 1)
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}

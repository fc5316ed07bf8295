package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-catch/internal/audio"
	"github.com/vovakirdan/tui-catch/internal/games/catch"
	"github.com/vovakirdan/tui-catch/internal/platform/tui"
	"github.com/vovakirdan/tui-catch/internal/storage"
)

var (
	flagScores        string
	flagHighScoreFile string
	flagNoAudio       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the terminal.

Controls:
  Left/Right, A/D  - Move the catcher
  Enter            - Start (menu)
  S                - Settings (menu)
  M / E            - Toggle music / effects (settings)
  B                - Back to menu
  P                - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Esc/Ctrl+C     - Quit

Objects:
  )  fruit   +1 point (x2 while the bonus is active)
  ◐  rock    -1 life unless shielded
  $  bonus   double points for 5 seconds
  ♥  life    +1 life
  ◊  shield  rocks are harmless for 5 seconds

Examples:
  catch play
  catch play --difficulty easy
  catch play --scores file
  catch play --seed 42 --no-audio`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagScores, "scores", "sqlite", "High score backend: sqlite or file")
	playCmd.Flags().StringVar(&flagHighScoreFile, "highscore-file", "~/.catch/highscore.txt", "High score file for --scores file")
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound entirely")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closer, err := openLogger("catch")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := catch.Options{
		TickRate: flagFPS,
		Seed:     seed,
		Logger:   logger,
	}

	scores, cleanup := openHighScores(logger)
	defer cleanup()

	var sound *audio.Player
	if !flagNoAudio {
		sound = audio.NewPlayer(logger)
		if err := sound.Init(); err != nil {
			logger.Warn("audio unavailable", "error", err)
		}
		defer sound.Close()
		opts.Feedback = sound
	}

	var book *storage.ScoreBook
	if b, ok := scores.(*storage.ScoreBook); ok {
		book = b
	}
	if scores != nil {
		opts.HighScores = scores
	}

	session, err := catch.NewSession(cfg, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if book != nil {
		book.Level = func() int { return session.State().Level() }
		book.Duration = session.Elapsed
	}
	logger.Info("starting", "seed", seed, "fps", flagFPS, "lives", cfg.Rules.Lives)

	modelOpts := tui.Options{
		TickRate: flagFPS,
		Width:    width,
		Height:   height,
		Logger:   logger,
	}
	if sound != nil {
		modelOpts.Sound = sound
	}

	if err := tui.Run(session, modelOpts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if session.FinalScore() > 0 {
		fmt.Printf("Final score: %d  |  Best: %d\n", session.FinalScore(), session.Best())
	}
}

// openHighScores picks the best-score backend from --scores.
// A nil store means the game runs without persistence.
func openHighScores(logger *log.Logger) (catch.HighScoreStore, func()) {
	switch flagScores {
	case "file":
		hs, err := storage.NewFileHighScore(flagHighScoreFile)
		if err != nil {
			logger.Warn("high score file unavailable", "error", err)
			return nil, func() {}
		}
		return hs, func() {}

	case "sqlite", "":
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
			// Continue without storage - game still works
			return nil, func() {}
		}
		return storage.NewScoreBook(store, "catch", "local"), func() { store.Close() }

	default:
		fmt.Fprintf(os.Stderr, "Warning: unknown --scores backend %q, scores will not be saved\n", flagScores)
		return nil, func() {}
	}
}

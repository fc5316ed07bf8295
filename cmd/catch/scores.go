package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-catch/internal/platform/tui"
	"github.com/vovakirdan/tui-catch/internal/storage"
)

const (
	gameID    = "catch"
	gameTitle = "Jungle Catch"
)

var (
	flagPlain bool
	flagClear bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs recorded in the scores database.

With --scores file the single best score from the high score file is shown.

Examples:
  catch scores
  catch scores --plain --limit 5
  catch scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores as plain text instead of the interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show in plain mode")
	scoresCmd.Flags().StringVar(&flagScores, "scores", "sqlite", "High score backend: sqlite or file")
	scoresCmd.Flags().StringVar(&flagHighScoreFile, "highscore-file", "~/.catch/highscore.txt", "High score file for --scores file")
}

func runScores(_ *cobra.Command, _ []string) {
	if flagScores == "file" {
		runFileScores()
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, gameID, gameTitle, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printScores(store)
}

func printScores(store *storage.Store) {
	runs, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", gameTitle)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'catch play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-12s  %s\n", "Rank", "Score", "Level", "Player", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-12s  %s\n", "----", "-----", "-----", "------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-10d  %-5d  %-12s  %s\n",
			i+1, r.Score, r.Level, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Println(tui.StatsLine(stats))
	}
}

func runFileScores() {
	hs, err := storage.NewFileHighScore(flagHighScoreFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagClear {
		if err := hs.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing high score: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("High score cleared.")
		return
	}

	best, err := hs.Best()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", hs.Path(), err)
		os.Exit(1)
	}
	fmt.Printf("High Score - %s: %d\n", gameTitle, best)
}

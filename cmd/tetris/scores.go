package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagScoresLimit int
	flagInteractive bool
	flagRunID       string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best finished games.

Examples:
  tetris scores
  tetris scores --limit 25
  tetris scores -i                  # Browse scores in a table
  tetris scores --run <run-id>      # Show one stored game`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores interactively")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single result by run id")
}

func runScores(_ *cobra.Command, _ []string) error {
	game := tetris.New()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagRunID != "" {
		return showRun(store, flagRunID)
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, game.ID(), game.Title(), width, height)
	}

	scores, err := store.TopScores(game.ID(), flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetris play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-12s  %-16s  %s\n", "Rank", "Score", "Lines", "Level", "Player", "Date", "Run")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-12s  %-16s  %s\n", "----", "-----", "-----", "-----", "------", "----", "---")
	for i, r := range scores {
		fmt.Printf("  %-4d  %-8d  %-5d  %-5d  %-12s  %-16s  %s\n",
			i+1, r.Score, r.Lines, r.Level, r.Player, r.CreatedAt.Format("2006-01-02 15:04"), r.RunID[:8])
	}

	if stats, err := store.GetGameStats(game.ID()); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Lines: %d\n", stats.HighScore, stats.GamesCount, stats.TotalLines)
	}
	return nil
}

func showRun(store *storage.Store, runID string) error {
	r, err := store.ResultByRunID(runID)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no stored game with run id %s", runID)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Run     %s\n", r.RunID)
	fmt.Printf("Player  %s\n", r.Player)
	fmt.Printf("Score   %d\n", r.Score)
	fmt.Printf("Lines   %d\n", r.Lines)
	fmt.Printf("Level   %d\n", r.Level)
	fmt.Printf("Seed    %s\n", r.Seed)
	fmt.Printf("Date    %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

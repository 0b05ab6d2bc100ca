// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris play              - Play locally
//	tetris serve             - Start SSH server for remote play
//	tetris scores            - Show high scores
//	tetris levels            - Show the level speed table
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible piece sequences
//	--db <path>           - Set database path (default: ~/.tetris/scores.db)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `A frame-accurate falling-block puzzle game for the terminal, with
deterministic replays, a local score history and an SSH server.

Available commands:
  play     - Play a game
  serve    - Start SSH server for remote play
  scores   - View high scores
  levels   - Show the level speed table

Examples:
  tetris play
  tetris play --level 9
  tetris serve --ssh :2222
  tetris scores -i`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

// newLogger builds the stderr logger. fallback applies when --log-level
// is not set.
func newLogger(fallback log.Level) (*log.Logger, error) {
	level := fallback
	if flagLogLevel != "" {
		parsed, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid --log-level: %w", err)
		}
		level = parsed
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           level,
	}), nil
}

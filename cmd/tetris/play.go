package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/audio"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start the game on the ready screen.

Controls:
  ←/→ or A/D   - Move (choose start level on the ready screen)
  ↓ or S       - Soft drop
  ↑/W or X     - Rotate
  Z            - Rotate counter-clockwise
  Space        - Hard drop
  Enter/P      - Start, pause, resume
  G            - Watch the last game again
  R            - Restart
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at level 0
  normal - Start at level 5
  hard   - Start at level 10
  fixed  - No level progression

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --level 12 --sound=false
  tetris play --seed 42 --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().BoolVar(&flagSound, "sound", true, "Play sound effects")
}

// addGameFlags registers the flags that shape the engine configuration.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tetris config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().IntVar(&flagLevel, "level", -1, "Start level (overrides difficulty)")
}

// applyGameFlags hands the flags to the game package and checks that they
// produce a valid engine configuration before any terminal takes over.
func applyGameFlags() error {
	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficulty(config.DifficultyPreset(flagDifficulty))
	tetris.SetStartLevel(flagLevel)

	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return err
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return err
	}
	if flagLevel >= 0 {
		cfg.Levels.Start = flagLevel
	}
	_, err = cfg.EngineConfig()
	return err
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(log.WarnLevel)
	if err != nil {
		return err
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create("tetris")
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	opts := tui.Options{Logger: logger, Player: os.Getenv("USER")}

	// Continue without storage - game still works
	if store, err := storage.Open(flagDBPath); err != nil {
		logger.Warn("could not open scores database", "error", err)
	} else {
		opts.Store = store
		defer store.Close()
	}

	if flagSound {
		player := audio.NewPlayer()
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			opts.Cues = player
			defer player.Close()
		}
	}

	if err := tui.Run(game, cfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

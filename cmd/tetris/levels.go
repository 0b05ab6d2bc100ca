package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level speed table",
	Long: `Shows the gravity interval and line threshold of every level in the
active configuration.

Examples:
  tetris levels
  tetris levels --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tetris config YAML")
}

func runLevels(_ *cobra.Command, _ []string) error {
	tc, err := config.LoadTetris(flagConfig)
	if err != nil {
		return err
	}
	ec, err := tc.EngineConfig()
	if err != nil {
		return err
	}

	fps := float64(tc.Timing.FPS)
	levels := ec.Levels

	fmt.Printf("  %-5s  %-7s  %-9s  %s\n", "Level", "Frames", "Rows/sec", "Lines")
	fmt.Printf("  %-5s  %-7s  %-9s  %s\n", "-----", "------", "--------", "-----")
	for lvl := 0; lvl <= levels.MaxLevel(); lvl++ {
		frames := levels.SpeedFrames(lvl)
		lines := "-"
		if n := levels.LinesToAdvance(lvl); n > 0 && lvl < levels.MaxLevel() {
			lines = fmt.Sprintf("%d", n)
		}
		fmt.Printf("  %-5d  %-7d  %-9.2f  %s\n", lvl, frames, fps/float64(frames), lines)
	}

	fmt.Println()
	fmt.Printf("Lock delay: %d frames minus the level's gravity interval\n", tc.Timing.LockDelayBase)
	return nil
}

package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default configuration, matching the
// embedded defaults/tetris.yaml.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Rows:     20,
			Cols:     10,
			SpawnRow: -3,
		},
		Timing: TimingConfig{
			FPS:                    60,
			LockDelayBase:          68,
			ClearDelayFrames:       26,
			DASFrames:              16,
			HorizontalRepeatFrames: 4,
			SoftDropRepeatFrames:   2,
			MaxCatchupFrames:       10,
		},
		Levels: LevelsConfig{
			Start:         0,
			Progression:   true,
			SpeedFrames:   engine.DefaultSpeedTable(),
			LinesPerLevel: engine.DefaultLinesTable(),
		},
		Queue: QueueConfig{
			Preview: 4,
		},
		Replay: ReplayConfig{
			Match: "exact",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}

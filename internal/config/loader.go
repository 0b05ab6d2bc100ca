package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

const configFile = "tetris.yaml"

// LoadTetris loads the tetris configuration. Fields missing from a file keep
// their default values.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
func LoadTetris(customPath string) (TetrisConfig, error) {
	// Try custom path first; its errors are the caller's to see
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TetrisConfig{}, fmt.Errorf("config: failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return TetrisConfig{}, fmt.Errorf("config: failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultTetrisYAML)
	if err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	// Lists replace rather than merge
	cfg.Levels.SpeedFrames = nil
	cfg.Levels.LinesPerLevel = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TetrisConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}

// EngineConfig converts the file configuration into an engine configuration.
// Seeds are left for the caller to fill in.
func (c TetrisConfig) EngineConfig() (engine.Config, error) {
	match, err := engine.ParseMatchPolicy(c.Replay.Match)
	if err != nil {
		return engine.Config{}, fmt.Errorf("config: %w", err)
	}
	if c.Timing.FPS <= 0 {
		return engine.Config{}, fmt.Errorf("config: fps must be positive, got %d", c.Timing.FPS)
	}

	levels := engine.LevelTable{Speed: c.Levels.SpeedFrames, Lines: c.Levels.LinesPerLevel}
	if len(levels.Speed) == 0 {
		levels.Speed = engine.DefaultSpeedTable()
	}
	switch {
	case !c.Levels.Progression:
		levels.Lines = nil
	case len(levels.Lines) == 0:
		levels.Lines = engine.DefaultLinesTable()
	}

	ec := engine.Config{
		Rows:                   c.Board.Rows,
		Cols:                   c.Board.Cols,
		SpawnRow:               c.Board.SpawnRow,
		PreviewCount:           c.Queue.Preview,
		LockDelayBase:          c.Timing.LockDelayBase,
		ClearDelayFrames:       c.Timing.ClearDelayFrames,
		DASFrames:              c.Timing.DASFrames,
		HorizontalRepeatFrames: c.Timing.HorizontalRepeatFrames,
		SoftDropRepeatFrames:   c.Timing.SoftDropRepeatFrames,
		FrameDuration:          time.Second / time.Duration(c.Timing.FPS),
		MaxFramesPerAdvance:    c.Timing.MaxCatchupFrames,
		Levels:                 levels,
		StartLevel:             c.Levels.Start,
		ReplayMatch:            match,
	}
	if err := ec.Validate(); err != nil {
		return engine.Config{}, fmt.Errorf("config: %w", err)
	}
	return ec, nil
}

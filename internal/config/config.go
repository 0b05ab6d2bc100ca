// Package config provides YAML configuration of the tetris engine: board
// geometry, frame timing, level tables, the preview queue and replay
// matching, plus the difficulty presets the CLI exposes.
package config

// TetrisConfig contains all configuration for a tetris game.
type TetrisConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Levels LevelsConfig `yaml:"levels"`
	Queue  QueueConfig  `yaml:"queue"`
	Replay ReplayConfig `yaml:"replay"`
}

// BoardConfig defines the playfield.
type BoardConfig struct {
	Rows     int `yaml:"rows"`
	Cols     int `yaml:"cols"`
	SpawnRow int `yaml:"spawn_row"` // Top row of a new piece's box, negative is above the grid
}

// TimingConfig defines frame-based timing. All durations are in frames.
type TimingConfig struct {
	FPS                    int `yaml:"fps"`
	LockDelayBase          int `yaml:"lock_delay_base"` // Lock delay is this minus the level's gravity interval
	ClearDelayFrames       int `yaml:"clear_delay_frames"`
	DASFrames              int `yaml:"das_frames"`
	HorizontalRepeatFrames int `yaml:"horizontal_repeat_frames"`
	SoftDropRepeatFrames   int `yaml:"soft_drop_repeat_frames"`
	MaxCatchupFrames       int `yaml:"max_catchup_frames"` // Upper bound on frames stepped per wall-clock update
}

// LevelsConfig defines the starting level and the level tables.
type LevelsConfig struct {
	Start         int   `yaml:"start"`
	Progression   bool  `yaml:"progression"`     // false keeps the start level for the whole game
	SpeedFrames   []int `yaml:"speed_frames"`    // Gravity interval per level; empty uses the classic curve
	LinesPerLevel []int `yaml:"lines_per_level"` // Lines to leave each level; empty uses 3 everywhere
}

// QueueConfig defines the lookahead queue.
type QueueConfig struct {
	Preview int `yaml:"preview"`
}

// ReplayConfig defines replay playback.
type ReplayConfig struct {
	Match string `yaml:"match"` // "exact" or "at_or_after"
}

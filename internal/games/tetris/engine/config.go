package engine

import (
	"errors"
	"fmt"
	"time"
)

// Config holds everything that shapes a simulation. Two engines built from
// equal configs and fed the same inputs step identically.
type Config struct {
	Rows     int
	Cols     int
	SpawnRow int

	PreviewCount int

	// LockDelayBase minus the level's gravity interval gives the lock
	// delay in frames.
	LockDelayBase    int
	ClearDelayFrames int

	DASFrames              int
	HorizontalRepeatFrames int
	SoftDropRepeatFrames   int

	FrameDuration       time.Duration
	MaxFramesPerAdvance int

	Levels     LevelTable
	StartLevel int

	ReplayMatch MatchPolicy

	// Seed seeds the first game. SeedSource, when set, supplies a fresh
	// seed for every live restart; otherwise Seed is reused.
	Seed       string
	SeedSource func() string
}

// DefaultConfig returns the classic 20x10 setup at 60 frames per second.
func DefaultConfig() Config {
	return Config{
		Rows:                   20,
		Cols:                   10,
		SpawnRow:               -3,
		PreviewCount:           4,
		LockDelayBase:          68,
		ClearDelayFrames:       26,
		DASFrames:              16,
		HorizontalRepeatFrames: 4,
		SoftDropRepeatFrames:   2,
		FrameDuration:          time.Second / 60,
		MaxFramesPerAdvance:    10,
		Levels:                 DefaultLevelTable(),
	}
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Rows, c.Cols)
	}
	if c.Cols < 4 {
		return fmt.Errorf("engine: board needs at least 4 columns, got %d", c.Cols)
	}
	if c.PreviewCount < 1 {
		return errors.New("engine: preview count must be at least 1")
	}
	if c.ClearDelayFrames < 0 || c.DASFrames < 0 ||
		c.HorizontalRepeatFrames < 0 || c.SoftDropRepeatFrames < 0 || c.MaxFramesPerAdvance < 0 {
		return errors.New("engine: frame counts must not be negative")
	}
	if c.FrameDuration <= 0 {
		return errors.New("engine: frame duration must be positive")
	}
	if len(c.Levels.Speed) == 0 {
		return errors.New("engine: speed table is empty")
	}
	for i, v := range c.Levels.Speed {
		if v < 1 {
			return fmt.Errorf("engine: speed table entry %d must be at least 1, got %d", i, v)
		}
	}
	if c.StartLevel < 0 || c.StartLevel > c.Levels.MaxLevel() {
		return fmt.Errorf("engine: start level %d outside 0..%d", c.StartLevel, c.Levels.MaxLevel())
	}
	return nil
}

func (c Config) spawnCol() int {
	return (c.Cols - 4) / 2
}

package core

// RuntimeConfig is what the platform tells a game at initialization. Device
// facts are passed here explicitly, never queried from the environment.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // Seed of the first game; 0 means derive one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the summary a game reports to the platform.
type GameState struct {
	Score     int
	Lines     int
	Level     int
	Seed      string // generator seed of the current game, empty if none
	GameOver  bool
	Paused    bool
	Replaying bool
}

// Cue names a sound effect requested by the game.
type Cue string

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
	Cues  []Cue // sounds triggered during this tick, in order
}

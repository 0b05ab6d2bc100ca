// Package tetris adapts the falling-block engine to the platform driver: it
// loads the YAML configuration, translates platform actions into engine
// actions, forwards audio cues and draws the playfield into a core.Screen.
package tetris

import (
	"slices"
	"strconv"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Game implements registry.Game on top of engine.Engine.
type Game struct {
	eng    *engine.Engine
	cancel func()
	err    error

	tickDur time.Duration
	cues    []core.Cue

	// notice is a transient message shown over the board for noticeTicks.
	notice      string
	noticeTicks int
	tickRate    int
}

// noticeSeconds is how long a notice stays on screen.
const noticeSeconds = 2

// Package-level variables for config
var (
	configPath       string
	difficulty       config.DifficultyPreset
	selectedStartLvl = -1
)

// SetConfigPath sets a custom YAML config path. Empty uses the search path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficulty sets the difficulty preset applied on top of the config.
func SetDifficulty(preset config.DifficultyPreset) {
	difficulty = preset
}

// SetStartLevel overrides the starting level. Negative keeps the configured one.
func SetStartLevel(level int) {
	selectedStartLvl = level
}

// GetStartLevel returns the selected start level, or -1 when unset.
func GetStartLevel() int {
	return selectedStartLvl
}

// New creates a tetris game. Reset must be called before use.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset builds a fresh engine waiting on the ready screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	g.eng = nil
	g.cues = g.cues[:0]

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.tickDur = time.Second / time.Duration(tickRate)
	g.tickRate = tickRate
	g.notice, g.noticeTicks = "", 0

	ec, err := loadEngineConfig()
	if err != nil {
		g.err = err
		return
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ec.Seed = strconv.FormatInt(seed, 10)
	ec.SeedSource = seedSource(seed)

	eng, err := engine.New(ec)
	if err != nil {
		g.err = err
		return
	}
	g.err = nil
	g.eng = eng
	g.cancel = eng.Subscribe(g.onEvent)
}

// Err reports why the last Reset could not build an engine.
func (g *Game) Err() error {
	return g.err
}

// Engine exposes the underlying simulation, nil after a failed Reset.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

func loadEngineConfig() (engine.Config, error) {
	tc, err := config.LoadTetris(configPath)
	if err != nil {
		return engine.Config{}, err
	}
	if err := config.ApplyPreset(&tc, difficulty); err != nil {
		return engine.Config{}, err
	}
	if selectedStartLvl >= 0 {
		tc.Levels.Start = selectedStartLvl
	}
	return tc.EngineConfig()
}

// seedSource derives a new seed per live restart from the session seed, so
// a fixed --seed yields the same run of games.
func seedSource(base int64) func() string {
	n := 0
	prefix := strconv.FormatInt(base, 10) + "-"
	return func() string {
		n++
		return prefix + strconv.Itoa(n)
	}
}

func (g *Game) onEvent(ev engine.Event) {
	switch ev.Kind {
	case engine.EventCue:
		g.cues = append(g.cues, core.Cue(ev.Cue))
	case engine.EventReplayUnavailable:
		g.notice = "No replay yet"
		g.noticeTicks = noticeSeconds * g.tickRate
	}
}

// Notice returns the message currently shown over the board, if any.
func (g *Game) Notice() string {
	return g.notice
}

// Step applies this tick's actions and advances the engine by one tick of
// wall time.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.cues = g.cues[:0]
	if g.eng == nil {
		return core.StepResult{State: g.State()}
	}
	if g.noticeTicks > 0 {
		g.noticeTicks--
		if g.noticeTicks == 0 {
			g.notice = ""
		}
	}

	for _, a := range in.Actions() {
		if ea := engineAction(a); ea != engine.ActionNone {
			g.eng.Input(ea)
		}
	}
	g.eng.Advance(g.tickDur)

	return core.StepResult{
		State: g.State(),
		Cues:  slices.Clone(g.cues),
	}
}

func engineAction(a core.Action) engine.Action {
	switch a {
	case core.ActionUp:
		return engine.ActionUp
	case core.ActionDown:
		return engine.ActionDown
	case core.ActionLeft:
		return engine.ActionLeft
	case core.ActionRight:
		return engine.ActionRight
	case core.ActionRotate:
		return engine.ActionRotate
	case core.ActionCounterRotate:
		return engine.ActionCounterRotate
	case core.ActionHardDrop:
		return engine.ActionHardDrop
	case core.ActionConfirm:
		return engine.ActionEnter
	case core.ActionRestart:
		return engine.ActionRestart
	case core.ActionReplay:
		return engine.ActionWatchReplay
	}
	return engine.ActionNone
}

// State returns the summary the platform uses for score saving.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	st := g.eng.State()
	return core.GameState{
		Score:     g.eng.Score(),
		Lines:     g.eng.Lines(),
		Level:     g.eng.Level(),
		Seed:      g.eng.Seed(),
		GameOver:  st == engine.StateEnd,
		Paused:    st == engine.StatePaused,
		Replaying: g.eng.Replaying(),
	}
}

package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// CuePlayer consumes the sound cues a game emits.
type CuePlayer interface {
	Play(c core.Cue)
}

// Options carries the collaborators a Model reports to. Every field is
// optional.
type Options struct {
	Store  *storage.Store
	Cues   CuePlayer
	Logger *log.Logger
	Player string // name stored with results
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model that drives one game at a fixed tick.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether the current game over has been recorded
	lastRunID  string
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		opts:       opts,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.playfieldHeight(cfg.ScreenH))
	return m
}

// playfieldHeight is the screen height left after the help line(s).
func (m Model) playfieldHeight(total int) int {
	return max(total-lipgloss.Height(m.helpView()), 0)
}

// Init initializes the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// gameState is set on the first tick (value receiver)
	return tickAfter(tickInterval(m.config.TickRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.playfieldHeight(m.config.ScreenH))
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize keeps the game running and only resizes the buffer; the
// game lays itself out on every render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.playfieldHeight(msg.Height))
	return m, nil
}

// handleTick processes one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.opts.Cues != nil {
		for _, c := range result.Cues {
			m.opts.Cues.Play(c)
		}
	}

	switch {
	case !m.gameState.GameOver:
		m.scoreSaved = false
	case !m.scoreSaved:
		m.recordGameOver()
		m.scoreSaved = true
	}

	return m, tickAfter(tickInterval(m.config.TickRate))
}

// recordGameOver stores a finished live game. Playbacks are not results.
func (m *Model) recordGameOver() {
	st := m.gameState
	if st.Replaying {
		return
	}
	if m.opts.Logger != nil {
		m.opts.Logger.Info("game over",
			"user", m.opts.Player,
			"score", st.Score,
			"lines", st.Lines,
			"level", st.Level,
		)
	}
	if m.opts.Store == nil || st.Score == 0 {
		return
	}

	runID, err := m.opts.Store.SaveResult(storage.Result{
		GameID: m.game.ID(),
		Player: m.opts.Player,
		Score:  st.Score,
		Lines:  st.Lines,
		Level:  st.Level,
		Seed:   st.Seed,
	})
	if err != nil {
		if m.opts.Logger != nil {
			m.opts.Logger.Warn("could not save score", "error", err)
		}
		return
	}
	m.lastRunID = runID
}

// LastRunID returns the run id of the most recently saved result.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".tetris", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil && m.opts.Logger != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
	}
}

func (m Model) helpView() string {
	return helpStyle.Render(m.help.View(m.keys))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.helpView()
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

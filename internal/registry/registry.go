// Package registry maps game ids to factories. The tetris package registers
// itself from init, so front ends only need a blank import and an id.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// ErrUnknownGame is returned by Create for an id nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the contract between a front end and a game. A Game never touches
// the terminal: the front end maps keys into an InputFrame, calls Step once
// per tick and hands it a Screen to draw into.
type Game interface {
	// ID is the stable key used for score storage.
	ID() string
	// Title is shown in headers.
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Factory creates a fresh, unreset Game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = map[string]Factory{}
)

// Register adds a factory under id and panics if id is taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, taken := factories[id]; taken {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := factories[id]
	return ok
}

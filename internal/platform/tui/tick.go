// Package tui provides the Bubble Tea integration: the fixed-tick game loop,
// key mapping, colored screen output, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to step the game once.
type TickMsg time.Time

// tickInterval is the wall time between simulation ticks at rate ticks per
// second. Non-positive rates fall back to 60.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

func tickAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

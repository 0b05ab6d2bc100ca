package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"x", runeKey('x'), core.ActionRotate},
		{"z", runeKey('z'), core.ActionCounterRotate},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionHardDrop},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"p", runeKey('p'), core.ActionConfirm},
		{"g", runeKey('g'), core.ActionReplay},
		{"r", runeKey('r'), core.ActionRestart},
		{"unbound", runeKey('m'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if quit {
				t.Error("unexpected quit")
			}
			if got != tt.want {
				t.Errorf("MapKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := DefaultKeyMap()
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		if _, quit := km.MapKey(msg); !quit {
			t.Errorf("%q should quit", msg.String())
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := DefaultKeyMap()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame)
	km.MapKeyToFrame(runeKey('x'), &frame)
	km.MapKeyToFrame(runeKey('m'), &frame)

	got := frame.Actions()
	if len(got) != 2 || got[0] != core.ActionLeft || got[1] != core.ActionRotate {
		t.Errorf("Actions() = %v, want [left rotate]", got)
	}

	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should report quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit should not be queued as a game action")
	}
}

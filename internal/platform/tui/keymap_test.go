package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if s == "ctrl+c" {
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapperGameplay(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key      string
		gameOver bool
		want     core.Action
		wantQuit bool
	}{
		{" ", false, core.ActionRotate, false},
		{"r", false, core.ActionRotate, false},
		{"r", true, core.ActionRestart, false},
		{"h", false, core.ActionLeft, false},
		{"l", false, core.ActionRight, false},
		{"j", false, core.ActionSoftDrop, false},
		{"p", false, core.ActionPause, false},
		{"q", false, core.ActionQuit, true},
		{"ctrl+c", false, core.ActionQuit, true},
		{"x", false, core.ActionNone, false},
	}

	for _, tt := range tests {
		action, isQuit := km.MapKey(keyMsg(tt.key), tt.gameOver)
		if action != tt.want || isQuit != tt.wantQuit {
			t.Errorf("MapKey(%q, gameOver=%v) = (%v, %v), expected (%v, %v)",
				tt.key, tt.gameOver, action, isQuit, tt.want, tt.wantQuit)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(keyMsg("h"), &frame, false); quit {
		t.Error("h should not be a quit request")
	}
	if !frame.Has(core.ActionLeft) {
		t.Error("h should set ActionLeft in the frame")
	}

	if quit := km.MapKeyToFrame(keyMsg("q"), &frame, false); !quit {
		t.Error("q should be a quit request")
	}
}

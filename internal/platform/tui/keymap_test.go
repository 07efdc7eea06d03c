package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jangam/internal/core"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperActions(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    rune
		action core.Action
	}{
		{'a', core.ActionLeft},
		{'d', core.ActionRight},
		{'x', core.ActionLaunch},
		{'z', core.ActionFire},
		{'p', core.ActionPause},
		{'r', core.ActionRestart},
	}

	for _, tc := range tests {
		action, isQuit := km.MapKey(keyMsg(tc.key))
		if action != tc.action {
			t.Errorf("MapKey(%q) = %v, expected %v", tc.key, action, tc.action)
		}
		if isQuit {
			t.Errorf("MapKey(%q) should not be a quit request", tc.key)
		}
	}
}

func TestKeyMapperQuit(t *testing.T) {
	km := NewKeyMapper()

	if _, isQuit := km.MapKey(keyMsg('q')); !isQuit {
		t.Error("'q' should be a quit request")
	}
	if _, isQuit := km.MapKey(tea.KeyMsg{Type: tea.KeyCtrlC}); !isQuit {
		t.Error("ctrl+c should be a quit request")
	}
}

func TestKeyMapperFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(keyMsg('a'), &frame); quit {
		t.Error("'a' should not quit")
	}
	if !frame.Has(core.ActionLeft) {
		t.Error("Frame should record the left action")
	}

	// Unmapped keys leave the frame untouched
	km.MapKeyToFrame(keyMsg('?'), &frame)
	if frame.Has(core.ActionFire) {
		t.Error("Unmapped key should not set actions")
	}
}

func TestScoreboardKey(t *testing.T) {
	km := NewKeyMapper()

	if !km.IsScoreboardKey(tea.KeyMsg{Type: tea.KeyTab}) {
		t.Error("Tab should open the scoreboard")
	}
	if km.IsScoreboardKey(keyMsg('s')) {
		t.Error("'s' should not open the scoreboard")
	}
}

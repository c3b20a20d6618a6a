package input

import (
	"testing"

	"github.com/eiannone/keyboard"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
)

func TestFromLine(t *testing.T) {
	tests := []struct {
		line string
		want Intent
	}{
		{"W", move(engine.Up)},
		{"a", move(engine.Left)},
		{" s \n", move(engine.Down)},
		{"D", move(engine.Right)},
		{"k", move(engine.Up)},
		{"right", move(engine.Right)},
		{"UP", move(engine.Up)},
		{"q", Intent{Type: IntentQuit}},
		{"Q", Intent{Type: IntentQuit}},
		{"quit", Intent{Type: IntentQuit}},
		{"", Intent{Type: IntentNone}},
		{"x", Intent{Type: IntentInvalid}},
		{"north", Intent{Type: IntentInvalid}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := FromLine(tt.line); got != tt.want {
				t.Errorf("FromLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestFromTcell(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want Intent
	}{
		{"arrow up", tcell.KeyUp, 0, move(engine.Up)},
		{"arrow left", tcell.KeyLeft, 0, move(engine.Left)},
		{"rune j", tcell.KeyRune, 'j', move(engine.Down)},
		{"rune L", tcell.KeyRune, 'L', move(engine.Right)},
		{"escape", tcell.KeyEscape, 0, Intent{Type: IntentQuit}},
		{"ctrl-c", tcell.KeyCtrlC, 0, Intent{Type: IntentQuit}},
		{"pause", tcell.KeyRune, 'p', Intent{Type: IntentPause}},
		{"restart", tcell.KeyRune, 'r', Intent{Type: IntentRestart}},
		{"enter", tcell.KeyEnter, 0, Intent{Type: IntentNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromTcell(tt.key, tt.r); got != tt.want {
				t.Errorf("FromTcell = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFromKeyboard(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		key  keyboard.Key
		want Intent
	}{
		{"arrow down", 0, keyboard.KeyArrowDown, move(engine.Down)},
		{"arrow right", 0, keyboard.KeyArrowRight, move(engine.Right)},
		{"rune w", 'w', 0, move(engine.Up)},
		{"esc", 0, keyboard.KeyEsc, Intent{Type: IntentQuit}},
		{"space", 0, keyboard.KeySpace, Intent{Type: IntentPause}},
		{"unbound rune", 'z', 0, Intent{Type: IntentInvalid}},
		{"unbound key", 0, keyboard.KeyF1, Intent{Type: IntentNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromKeyboard(tt.r, tt.key); got != tt.want {
				t.Errorf("FromKeyboard = %+v, want %+v", got, tt.want)
			}
		})
	}
}

package input

import (
	"strings"
	"unicode/utf8"

	"github.com/eiannone/keyboard"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
)

// runeTable binds printable keys; WASD from the classic game, hjkl for vi hands
var runeTable = map[rune]Intent{
	'w': move(engine.Up),
	'a': move(engine.Left),
	's': move(engine.Down),
	'd': move(engine.Right),

	'k': move(engine.Up),
	'h': move(engine.Left),
	'j': move(engine.Down),
	'l': move(engine.Right),

	'q': {Type: IntentQuit},
	'p': {Type: IntentPause},
	' ': {Type: IntentPause},
	'r': {Type: IntentRestart},
}

// FromRune decodes a single printable key, case-insensitively
func FromRune(r rune) Intent {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if in, ok := runeTable[r]; ok {
		return in
	}
	return Intent{Type: IntentInvalid}
}

// FromLine decodes one line of the line protocol
// A single key or a direction name is accepted; blank lines are ignored
func FromLine(line string) Intent {
	s := strings.TrimSpace(line)
	if s == "" {
		return Intent{Type: IntentNone}
	}

	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return FromRune(r)
	}

	if strings.EqualFold(s, "quit") || strings.EqualFold(s, "exit") {
		return Intent{Type: IntentQuit}
	}
	if d, err := engine.ParseDirection(s); err == nil {
		return move(d)
	}
	return Intent{Type: IntentInvalid}
}

// FromTcell decodes a tcell key event's key and rune
func FromTcell(key tcell.Key, r rune) Intent {
	switch key {
	case tcell.KeyUp:
		return move(engine.Up)
	case tcell.KeyDown:
		return move(engine.Down)
	case tcell.KeyLeft:
		return move(engine.Left)
	case tcell.KeyRight:
		return move(engine.Right)
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return Intent{Type: IntentQuit}
	case tcell.KeyRune:
		return FromRune(r)
	}
	return Intent{Type: IntentNone}
}

// FromKeyboard decodes a keypress read with eiannone/keyboard
// The library reports printable keys as a rune with key 0
func FromKeyboard(r rune, key keyboard.Key) Intent {
	switch key {
	case keyboard.KeyArrowUp:
		return move(engine.Up)
	case keyboard.KeyArrowDown:
		return move(engine.Down)
	case keyboard.KeyArrowLeft:
		return move(engine.Left)
	case keyboard.KeyArrowRight:
		return move(engine.Right)
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Intent{Type: IntentQuit}
	case keyboard.KeySpace:
		return Intent{Type: IntentPause}
	}
	if r == 0 {
		return Intent{Type: IntentNone}
	}
	return FromRune(r)
}

package input

import "github.com/lixenwraith/vi-snake/engine"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone    IntentType = iota
	IntentMove               // w/a/s/d, h/j/k/l, arrows, direction names
	IntentQuit               // q, Esc, Ctrl+C
	IntentPause              // p, space (realtime only)
	IntentRestart            // r (after game over)
	IntentInvalid            // anything else; the caller reports it
)

func (t IntentType) String() string {
	switch t {
	case IntentMove:
		return "move"
	case IntentQuit:
		return "quit"
	case IntentPause:
		return "pause"
	case IntentRestart:
		return "restart"
	case IntentInvalid:
		return "invalid"
	default:
		return "none"
	}
}

// Intent is a decoded player action
// Direction is only meaningful for IntentMove
type Intent struct {
	Type      IntentType
	Direction engine.Direction
}

func move(d engine.Direction) Intent {
	return Intent{Type: IntentMove, Direction: d}
}

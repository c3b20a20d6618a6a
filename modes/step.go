package modes

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/eiannone/keyboard"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/terminal"
)

// KeySource delivers single keypresses
type KeySource interface {
	GetKey() (rune, keyboard.Key, error)
	Close() error
}

type keyboardSource struct{}

// OpenKeyboard puts the terminal in raw mode and reads keys from it
func OpenKeyboard() (KeySource, error) {
	if err := keyboard.Open(); err != nil {
		return nil, fmt.Errorf("open keyboard: %w", err)
	}
	return keyboardSource{}, nil
}

func (keyboardSource) GetKey() (rune, keyboard.Key, error) {
	return keyboard.GetKey()
}

func (keyboardSource) Close() error {
	keyboard.Close()
	return nil
}

// Step advances one tick per keypress, without a timer
type Step struct {
	keys    KeySource
	out     io.Writer
	session *Session
	glyphs  render.Glyphs
}

// NewStep creates a step driver; it closes keys when Run returns
func NewStep(keys KeySource, out io.Writer, s *Session, glyphs render.Glyphs) *Step {
	return &Step{keys: keys, out: out, session: s, glyphs: glyphs}
}

// Run plays until quit, key read failure or ctx cancellation
// Game over waits for r to restart or q to quit
func (d *Step) Run(ctx context.Context) error {
	defer d.keys.Close()

	res, err := d.session.Start()
	if err != nil {
		return err
	}
	if err := d.frame(res, ""); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		r, key, err := d.keys.GetKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}

		msg := ""
		intent := input.FromKeyboard(r, key)
		switch intent.Type {
		case input.IntentQuit:
			return nil
		case input.IntentMove:
			if !d.session.Running() {
				continue
			}
			if err := d.session.Steer(intent.Direction); err != nil {
				return err
			}
			if res, err = d.session.Step(); err != nil {
				return err
			}
		case input.IntentRestart:
			if d.session.Running() {
				continue
			}
			if res, err = d.session.Restart(); err != nil {
				return err
			}
		case input.IntentNone:
			if !d.session.Running() || !d.session.Autopilot() {
				continue
			}
			if res, err = d.session.Step(); err != nil {
				return err
			}
		case input.IntentPause:
			continue
		default:
			msg = constants.TextInvalid
		}

		if err := d.frame(res, msg); err != nil {
			return err
		}
	}
}

// frame writes with CRLF line endings since the keyboard holds the terminal in raw mode
func (d *Step) frame(res engine.TickResult, msg string) error {
	var sb strings.Builder
	terminal.ClearScreen(&sb)
	sb.WriteString(strings.ReplaceAll(render.Text(res.Grid, d.glyphs), "\n", "\r\n"))
	fmt.Fprintf(&sb, "length %d  score %d  tick %d\r\n", res.Length, res.Score, res.Tick)

	switch {
	case res.GameOver:
		fmt.Fprintf(&sb, "%s (%s) - r to restart, q to quit\r\n", constants.TextGameOver, res.Cause)
	case msg != "":
		sb.WriteString(msg + "\r\n")
	default:
		sb.WriteString(constants.TextKeyHelp + "\r\n")
	}

	_, err := io.WriteString(d.out, sb.String())
	return err
}

package modes

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/terminal"
)

// Line plays the line protocol: one command per line, one tick per valid move
type Line struct {
	in      *bufio.Scanner
	out     io.Writer
	session *Session
	glyphs  render.Glyphs

	clear        bool
	welcomeDelay time.Duration
}

// LineOption configures a Line driver
type LineOption func(*Line)

// WithClearScreen erases the terminal before each frame
func WithClearScreen(on bool) LineOption {
	return func(l *Line) { l.clear = on }
}

// WithWelcomeDelay sets the pause after the welcome banner
func WithWelcomeDelay(d time.Duration) LineOption {
	return func(l *Line) { l.welcomeDelay = d }
}

// NewLine creates a line driver reading commands from in
func NewLine(in io.Reader, out io.Writer, s *Session, glyphs render.Glyphs, opts ...LineOption) *Line {
	l := &Line{
		in:           bufio.NewScanner(in),
		out:          out,
		session:      s,
		glyphs:       glyphs,
		welcomeDelay: constants.WelcomeDelay,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run plays until quit, game over, end of input or ctx cancellation
func (l *Line) Run(ctx context.Context) error {
	fmt.Fprintln(l.out, constants.TextWelcome)
	if err := sleepCtx(ctx, l.welcomeDelay); err != nil {
		return err
	}

	snap, err := l.session.Start()
	if err != nil {
		return err
	}
	fmt.Fprintln(l.out, constants.TextInstructions)
	if err := l.frame(snap); err != nil {
		return err
	}

	for l.in.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		intent := input.FromLine(l.in.Text())
		switch {
		case intent.Type == input.IntentQuit:
			return nil
		case intent.Type == input.IntentMove:
			if err := l.session.Steer(intent.Direction); err != nil {
				return err
			}
		case intent.Type == input.IntentNone && l.session.Autopilot():
			// Blank line advances the autopilot
		default:
			fmt.Fprintln(l.out, constants.TextInvalid)
			continue
		}

		res, err := l.session.Step()
		if err != nil {
			return err
		}
		if err := l.frame(res); err != nil {
			return err
		}
		if res.GameOver {
			fmt.Fprintln(l.out, constants.TextGameOver)
			fmt.Fprintf(l.out, "Score: %d  Length: %d\n", res.Score, res.Length)
			return nil
		}
	}
	return l.in.Err()
}

func (l *Line) frame(res engine.TickResult) error {
	if l.clear {
		if err := terminal.ClearScreen(l.out); err != nil {
			return err
		}
	}
	return render.WriteText(l.out, res.Grid, l.glyphs)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

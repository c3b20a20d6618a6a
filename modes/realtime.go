package modes

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
)

// errQuit ends the game loop without reporting a failure
var errQuit = errors.New("quit")

// Realtime advances on a fixed interval and redraws a full-screen tcell view
type Realtime struct {
	screen   tcell.Screen
	view     *render.Screen
	session  *Session
	clock    *Clock
	interval time.Duration

	finiOnce sync.Once
}

// NewRealtime takes ownership of an initialized screen; Run finalizes it
func NewRealtime(screen tcell.Screen, s *Session, glyphs render.Glyphs, interval time.Duration) *Realtime {
	r := &Realtime{
		screen:   screen,
		view:     render.NewScreen(screen, glyphs),
		session:  s,
		clock:    NewClock(nil),
		interval: interval,
	}
	core.SetCrashCleanup(r.fini)
	return r
}

// Run plays until quit or ctx cancellation
func (r *Realtime) Run(ctx context.Context) error {
	defer r.fini()
	defer core.SetCrashCleanup(nil)

	if _, err := r.session.Start(); err != nil {
		return err
	}
	r.clock.Reset()
	r.draw()

	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, constants.EventBufferSize)

	// PollEvent returns nil once the screen is finalized
	g.Go(func() error {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer r.fini()

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		frames := time.NewTicker(constants.FrameUpdateInterval)
		defer frames.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				if err := r.handleEvent(ev); err != nil {
					return err
				}
			case <-ticker.C:
				if err := r.advance(); err != nil {
					return err
				}
			case <-frames.C:
				// Keeps the elapsed timer moving between ticks
				if r.session.Running() && !r.clock.Paused() {
					r.draw()
				}
			}
		}
	})

	err := g.Wait()
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

// handleEvent applies one input event; errQuit ends the loop
func (r *Realtime) handleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		r.screen.Sync()
		r.draw()
		return nil
	case *tcell.EventKey:
		return r.handleKey(ev)
	}
	return nil
}

func (r *Realtime) handleKey(ev *tcell.EventKey) error {
	return r.handleIntent(input.FromTcell(ev.Key(), ev.Rune()))
}

func (r *Realtime) handleIntent(intent input.Intent) error {
	switch intent.Type {
	case input.IntentQuit:
		return errQuit
	case input.IntentMove:
		if r.session.Running() && !r.clock.Paused() {
			return r.session.Steer(intent.Direction)
		}
	case input.IntentPause:
		if r.session.Running() {
			paused := r.clock.Toggle()
			log.Printf("realtime: paused=%t", paused)
			r.draw()
		}
	case input.IntentRestart:
		if !r.session.Running() {
			if _, err := r.session.Restart(); err != nil {
				return err
			}
			r.clock.Reset()
			r.draw()
		}
	}
	return nil
}

// advance runs one scheduled tick unless paused or over
func (r *Realtime) advance() error {
	if !r.session.Running() || r.clock.Paused() {
		return nil
	}
	res, err := r.session.Step()
	if err != nil {
		return err
	}
	if res.GameOver {
		r.clock.Pause()
	}
	r.draw()
	return nil
}

func (r *Realtime) draw() {
	res := r.session.Last()
	r.view.Draw(res, render.Status{
		Length:    res.Length,
		Score:     res.Score,
		Tick:      res.Tick,
		Elapsed:   r.clock.Elapsed(),
		Paused:    r.clock.Paused() && !res.GameOver,
		GameOver:  res.GameOver,
		Cause:     res.Cause,
		Autopilot: r.session.Autopilot(),
	})
}

func (r *Realtime) fini() {
	r.finiOnce.Do(r.screen.Fini)
}

// Package modes holds the game drivers: the line protocol, single-key
// stepping, the realtime tcell loop, and the Session they all share.
package modes

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/navigation"
	"github.com/lixenwraith/vi-snake/status"
)

// Sounder plays game cues; audio.Player implements it
type Sounder interface {
	Play(t audio.SoundType)
}

type silent struct{}

func (silent) Play(audio.SoundType) {}

// Session owns one engine and everything that reacts to its ticks
// Drivers call Start once, then Steer and Step; Restart begins a fresh game
type Session struct {
	width, height int
	policy        engine.BoundaryPolicy
	queueSize     int
	preset        []engine.Coord
	seed          uint64

	engine    *engine.Engine
	stats     *status.Registry
	sound     Sounder
	planner   *navigation.Planner
	autopilot bool

	games int
	last  engine.TickResult
}

// NewSession validates settings from cfg; preset is the food file contents
// stats and sound may be nil
func NewSession(cfg *config.Config, preset []engine.Coord, stats *status.Registry, sound Sounder) (*Session, error) {
	policy, err := engine.ParseBoundaryPolicy(cfg.Boundary)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = status.NewRegistry()
	}
	if sound == nil {
		sound = silent{}
	}

	seed := uint64(cfg.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &Session{
		width:     cfg.Width,
		height:    cfg.Height,
		policy:    policy,
		queueSize: cfg.QueueSize,
		preset:    preset,
		seed:      seed,
		stats:     stats,
		sound:     sound,
		planner:   navigation.NewPlanner(),
		autopilot: cfg.Autopilot,
	}, nil
}

// Start begins a game with a fresh preset cursor
func (s *Session) Start() (engine.TickResult, error) {
	// Each game gets its own random stream so restarts don't replay the fallback cells
	feeder := engine.NewFeeder(s.preset, s.seed+uint64(s.games))
	e := engine.New(feeder, engine.WithBoundary(s.policy), engine.WithQueueSize(s.queueSize))
	if err := e.Initialize(s.width, s.height); err != nil {
		return engine.TickResult{}, fmt.Errorf("start game: %w", err)
	}

	snap, err := e.Snapshot()
	if err != nil {
		return engine.TickResult{}, err
	}

	s.engine = e
	s.games++
	s.last = snap
	s.stats.BeginGame(snap)
	log.Printf("session: game %d started on %dx%d (%s), %d preset food", s.games, s.width, s.height, s.policy, len(s.preset))
	return snap, nil
}

// Restart discards the current game and starts another
func (s *Session) Restart() (engine.TickResult, error) {
	return s.Start()
}

// Steer queues a direction; ignored while the autopilot drives
func (s *Session) Steer(d engine.Direction) error {
	if s.engine == nil {
		return engine.ErrNotInitialized
	}
	if s.autopilot {
		return nil
	}
	return s.engine.Enqueue(d)
}

// Step advances one tick, consulting the autopilot first when enabled
func (s *Session) Step() (engine.TickResult, error) {
	if s.engine == nil {
		return engine.TickResult{}, engine.ErrNotInitialized
	}

	prev := s.engine.Heading()
	if s.autopilot && s.engine.State() == engine.StateRunning {
		food, hasFood := s.engine.Food()
		d := s.planner.Next(navigation.View{
			Bounds:  s.engine.Bounds(),
			Body:    s.engine.Segments(),
			Heading: prev,
			Food:    food,
			HasFood: hasFood,
		})
		if err := s.engine.Enqueue(d); err != nil {
			return engine.TickResult{}, err
		}
	}

	res, err := s.engine.Tick()
	if err != nil {
		return res, err
	}
	s.last = res
	s.stats.Publish(res)

	switch {
	case res.GameOver:
		s.sound.Play(audio.SoundGameOver)
	case res.Ate:
		s.sound.Play(audio.SoundEat)
	case res.Heading != prev:
		s.sound.Play(audio.SoundTurn)
	}
	return res, nil
}

// Last returns the most recent view
func (s *Session) Last() engine.TickResult {
	return s.last
}

// Running reports whether the current game accepts ticks
func (s *Session) Running() bool {
	return s.engine != nil && s.engine.State() == engine.StateRunning
}

// Autopilot reports whether the planner drives
func (s *Session) Autopilot() bool {
	return s.autopilot
}

// ToggleAutopilot flips planner control and returns the new state
func (s *Session) ToggleAutopilot() bool {
	s.autopilot = !s.autopilot
	log.Printf("session: autopilot %t", s.autopilot)
	return s.autopilot
}

// Games returns how many games were started
func (s *Session) Games() int {
	return s.games
}

// Stats returns the registry this session publishes to
func (s *Session) Stats() *status.Registry {
	return s.stats
}

package engine

import (
	"fmt"
	"log"
	"strings"
)

// State is the session lifecycle
type State uint8

const (
	StateUninitialized State = iota
	StateRunning
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "uninitialized"
	}
}

// BoundaryPolicy decides what a move off the board does
type BoundaryPolicy uint8

const (
	// BoundaryWall ends the game on the tick the head would leave the board
	BoundaryWall BoundaryPolicy = iota
	// BoundaryClamp pins the head to the edge it tried to cross
	BoundaryClamp
)

func (p BoundaryPolicy) String() string {
	if p == BoundaryClamp {
		return "clamp"
	}
	return "wall"
}

// ParseBoundaryPolicy accepts "wall" or "clamp"
func ParseBoundaryPolicy(s string) (BoundaryPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wall", "":
		return BoundaryWall, nil
	case "clamp":
		return BoundaryClamp, nil
	}
	return 0, fmt.Errorf("unknown boundary policy %q", s)
}

// Cause explains a game over
type Cause uint8

const (
	CauseNone Cause = iota
	CauseSelf
	CauseWall
)

func (c Cause) String() string {
	switch c {
	case CauseSelf:
		return "self"
	case CauseWall:
		return "wall"
	default:
		return "none"
	}
}

// MarshalText encodes the cause by name
func (c Cause) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// TickResult is everything a renderer or driver needs after one step
type TickResult struct {
	Tick     uint64    `json:"tick"`
	Grid     Grid      `json:"grid"`
	GameOver bool      `json:"game_over"`
	Cause    Cause     `json:"cause"`
	Score    int       `json:"score"`
	Length   int       `json:"length"`
	Head     Coord     `json:"head"`
	Heading  Direction `json:"heading"`

	// Ate is set when the head consumed food this tick
	Ate bool `json:"ate"`
	// FoodPlaced is set when a new food cell was marked this tick
	FoodPlaced bool  `json:"food_placed"`
	HasFood    bool  `json:"has_food"`
	Food       Coord `json:"food"`
}

// Option configures an Engine
type Option func(*Engine)

// WithBoundary selects the boundary policy
func WithBoundary(p BoundaryPolicy) Option {
	return func(e *Engine) { e.policy = p }
}

// WithQueueSize bounds the pending direction queue, minimum 1
func WithQueueSize(n int) Option {
	return func(e *Engine) {
		if n < 1 {
			n = 1
		}
		e.queueSize = n
	}
}

// Engine runs the snake simulation one tick at a time
// Not safe for concurrent use; a single driver goroutine owns it
type Engine struct {
	source    FoodSource
	policy    BoundaryPolicy
	queueSize int

	board   *Board
	snake   *Snake
	heading Direction
	queue   []Direction

	food    Coord
	hasFood bool

	state State
	ticks uint64
	eaten int
	cause Cause
}

// New creates an uninitialized engine drawing food from source
func New(source FoodSource, opts ...Option) *Engine {
	e := &Engine{
		source:    source,
		policy:    BoundaryWall,
		queueSize: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.queue = make([]Direction, 0, e.queueSize)
	return e
}

// Initialize starts a fresh session on a width x height board
// The snake spawns at the center, length 2, heading right
func (e *Engine) Initialize(width, height int) error {
	if width < 3 || height < 2 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	row, col := height/2, width/2
	e.board = NewBoard(width, height)
	e.snake = NewSnake(At(row, col), At(row, col-1))
	e.heading = Right
	e.queue = e.queue[:0]
	e.hasFood = false
	e.ticks = 0
	e.eaten = 0
	e.cause = CauseNone
	e.state = StateRunning

	e.placeFood()
	return nil
}

// Enqueue records a direction for an upcoming tick
// When the queue is full the newest request overwrites the last pending one
// Returns ErrNotInitialized before Initialize and ErrGameOver once the game has ended
func (e *Engine) Enqueue(d Direction) error {
	switch e.state {
	case StateUninitialized:
		return ErrNotInitialized
	case StateGameOver:
		return ErrGameOver
	}
	if !d.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, uint8(d))
	}

	if len(e.queue) < e.queueSize {
		e.queue = append(e.queue, d)
	} else {
		e.queue[len(e.queue)-1] = d
	}
	return nil
}

// Pending returns the number of queued directions
func (e *Engine) Pending() int {
	return len(e.queue)
}

// Tick advances the game by one step
func (e *Engine) Tick() (TickResult, error) {
	switch e.state {
	case StateUninitialized:
		return TickResult{}, ErrNotInitialized
	case StateGameOver:
		return e.result(false, false), ErrGameOver
	}

	if len(e.queue) > 0 {
		e.heading = e.queue[0]
		copy(e.queue, e.queue[1:])
		e.queue = e.queue[:len(e.queue)-1]
	}
	e.ticks++

	next := e.snake.Head().Add(e.heading)
	if !e.board.IsInBounds(next) {
		if e.policy == BoundaryWall {
			e.end(CauseWall)
			return e.result(false, false), nil
		}
		next = e.board.Clamp(next)
	}

	e.snake.Prepend(next)

	// The colliding head stays in the body so renderers can show where the
	// game ended; result reports length from food eaten
	if e.snake.CollidesWithBody(next) {
		e.end(CauseSelf)
		return e.result(false, false), nil
	}

	// Tail always follows the head; eating duplicates the new tail so the body
	// ends one segment longer and the copy unfolds on the next move
	e.snake.DropTail()

	ate, placed := false, false
	if e.hasFood && next == e.food {
		ate = true
		e.eaten++
		e.snake.GrowTail()
		e.board.ClearFood(e.food)
		e.hasFood = false
		placed = e.placeFood()
	} else if !e.hasFood {
		placed = e.placeFood()
	}

	if e.snake.Len() != MinSnakeLength+e.eaten {
		panic(fmt.Sprintf("engine: snake length %d, want %d", e.snake.Len(), MinSnakeLength+e.eaten))
	}

	return e.result(ate, placed), nil
}

// Snapshot returns the current view without advancing
func (e *Engine) Snapshot() (TickResult, error) {
	if e.state == StateUninitialized {
		return TickResult{}, ErrNotInitialized
	}
	return e.result(false, false), nil
}

// State returns the lifecycle state
func (e *Engine) State() State {
	return e.state
}

// Heading returns the last applied direction
func (e *Engine) Heading() Direction {
	return e.heading
}

// Segments returns a copy of the snake body, head first; nil before Initialize
func (e *Engine) Segments() []Coord {
	if e.snake == nil {
		return nil
	}
	return e.snake.Segments()
}

// Bounds returns the board extent
func (e *Engine) Bounds() Bounds {
	if e.board == nil {
		return Bounds{}
	}
	return e.board.Bounds()
}

// Food returns the current food cell and whether one is placed
func (e *Engine) Food() (Coord, bool) {
	return e.food, e.hasFood
}

// Occupied reports whether c is covered by the snake
func (e *Engine) Occupied(c Coord) bool {
	if e.snake == nil {
		return false
	}
	return e.snake.Contains(c)
}

// placeFood asks the source for a free cell and marks it
// Returns false when the board has no room; the game continues without food
func (e *Engine) placeFood() bool {
	bounds := e.board.Bounds()
	for attempt := 0; attempt < MaxFoodAttempts; attempt++ {
		c, err := e.source.Next(bounds, e.snake.Contains)
		if err != nil {
			log.Printf("engine: food placement skipped: %v", err)
			return false
		}
		if !e.board.IsInBounds(c) || e.snake.Contains(c) {
			continue
		}
		e.board.MarkFood(c)
		e.food = c
		e.hasFood = true
		return true
	}
	log.Printf("engine: food source returned no usable cell after %d attempts", MaxFoodAttempts)
	return false
}

func (e *Engine) end(cause Cause) {
	e.state = StateGameOver
	e.cause = cause
	e.queue = e.queue[:0]
	log.Printf("engine: game over (%s) at %v after %d ticks, length %d", cause, e.snake.Head(), e.ticks, e.snake.Len())
}

func (e *Engine) result(ate, placed bool) TickResult {
	return TickResult{
		Tick:       e.ticks,
		Grid:       buildGrid(e.board, e.snake),
		GameOver:   e.state == StateGameOver,
		Cause:      e.cause,
		Score:      e.eaten,
		Length:     MinSnakeLength + e.eaten,
		Head:       e.snake.Head(),
		Heading:    e.heading,
		Ate:        ate,
		FoodPlaced: placed,
		HasFood:    e.hasFood,
		Food:       e.food,
	}
}

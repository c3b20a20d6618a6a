package constants

import "time"

// Board defaults
const (
	// DefaultBoardWidth matches the classic 40-column playfield
	DefaultBoardWidth = 40

	// DefaultBoardHeight matches the classic 20-row playfield
	DefaultBoardHeight = 20

	// MinBoardWidth and MinBoardHeight fit a length-2 snake with room to turn
	MinBoardWidth  = 3
	MinBoardHeight = 2

	// MaxBoardWidth and MaxBoardHeight keep text frames printable
	MaxBoardWidth  = 500
	MaxBoardHeight = 200
)

// Game loop timing
const (
	// DefaultTickInterval is the realtime auto-advance period
	DefaultTickInterval = 150 * time.Millisecond

	// MinTickInterval keeps the realtime loop from spinning
	MinTickInterval = 20 * time.Millisecond

	// FrameUpdateInterval redraws the status bar between ticks (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond

	// WelcomeDelay pauses on the banner before the first frame in line mode
	WelcomeDelay = 1 * time.Second
)

// Input defaults
const (
	// DefaultQueueSize holds only the most recent un-applied direction
	DefaultQueueSize = 1

	// MaxQueueSize bounds buffered directions when the user opts into more
	MaxQueueSize = 8

	// EventBufferSize is the realtime input channel depth
	EventBufferSize = 64
)

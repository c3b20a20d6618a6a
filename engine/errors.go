package engine

import "errors"

var (
	// ErrNotInitialized is returned by Tick and Enqueue before Initialize
	ErrNotInitialized = errors.New("engine not initialized")

	// ErrGameOver is returned by Tick once the session has ended
	ErrGameOver = errors.New("game over")

	// ErrInvalidDimensions rejects boards that cannot hold the starting snake
	ErrInvalidDimensions = errors.New("invalid board dimensions")

	// ErrInvalidDirection rejects headings outside Up/Down/Left/Right
	ErrInvalidDirection = errors.New("invalid direction")

	// ErrBoardFull is returned by food sources when no free cell exists
	ErrBoardFull = errors.New("no free cell for food")
)

package constants

// Default glyphs, one per cell
const (
	GlyphSnake = '●'
	GlyphHead  = '●'
	GlyphFood  = '@'
	GlyphEmpty = ' '
)

// Text shown by the drivers
const (
	TextWelcome      = "Welcome to the Snake Game!"
	TextInstructions = "Use WASD keys to control the snake. Type Q to quit."
	TextKeyHelp      = "arrows/wasd/hjkl move  p pause  r restart  q quit"
	TextInvalid      = "Invalid command."
	TextGameOver     = "Game Over!"
	TextPaused       = "PAUSED"
)

// StatusBarHeight is the number of rows below the board in realtime mode
const StatusBarHeight = 1

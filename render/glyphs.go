package render

import "github.com/lixenwraith/vi-snake/constants"

// Glyphs maps each cell kind to the character drawn for it
type Glyphs struct {
	Snake rune
	Head  rune
	Food  rune
	Empty rune
}

// DefaultGlyphs matches the classic game: ● for the body, @ for food
var DefaultGlyphs = Glyphs{
	Snake: constants.GlyphSnake,
	Head:  constants.GlyphHead,
	Food:  constants.GlyphFood,
	Empty: constants.GlyphEmpty,
}

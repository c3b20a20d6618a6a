package render

import (
	"io"
	"strings"

	"github.com/lixenwraith/vi-snake/engine"
)

// Lines renders the grid as one string per row, one glyph per cell
func Lines(grid engine.Grid, g Glyphs) []string {
	lines := make([]string, grid.Height)
	var sb strings.Builder
	for row := 0; row < grid.Height; row++ {
		sb.Reset()
		for col := 0; col < grid.Width; col++ {
			sb.WriteRune(glyphAt(grid, engine.At(row, col), g))
		}
		lines[row] = sb.String()
	}
	return lines
}

// Text renders the grid with rows separated by newlines, trailing newline included
func Text(grid engine.Grid, g Glyphs) string {
	var sb strings.Builder
	sb.Grow(grid.Height * (grid.Width + 1))
	for _, line := range Lines(grid, g) {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteText writes Text(grid, g) to w
func WriteText(w io.Writer, grid engine.Grid, g Glyphs) error {
	_, err := io.WriteString(w, Text(grid, g))
	return err
}

func glyphAt(grid engine.Grid, c engine.Coord, g Glyphs) rune {
	switch grid.At(c) {
	case engine.CellSnake:
		if c == grid.Head {
			return g.Head
		}
		return g.Snake
	case engine.CellFood:
		return g.Food
	default:
		return g.Empty
	}
}

package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// Status carries the session facts shown under the board
type Status struct {
	Length    int
	Score     int
	Tick      uint64
	Elapsed   time.Duration
	Paused    bool
	GameOver  bool
	Cause     engine.Cause
	Autopilot bool
}

// Styles for each drawn element
type Styles struct {
	Border tcell.Style
	Snake  tcell.Style
	Head   tcell.Style
	Food   tcell.Style
	Empty  tcell.Style
	Status tcell.Style
	Banner tcell.Style
}

// DefaultStyles is a green snake on the terminal background with red food
var DefaultStyles = Styles{
	Border: tcell.StyleDefault.Foreground(tcell.ColorGray),
	Snake:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
	Head:   tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true),
	Food:   tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	Empty:  tcell.StyleDefault,
	Status: tcell.StyleDefault.Foreground(tcell.ColorWhite),
	Banner: tcell.StyleDefault.Foreground(tcell.ColorYellow).Reverse(true),
}

// Screen draws frames into a tcell screen
// The board sits inside a one-cell border; the status bar follows the bottom border
type Screen struct {
	screen tcell.Screen
	glyphs Glyphs
	styles Styles
}

// NewScreen wraps an initialized tcell screen
func NewScreen(screen tcell.Screen, glyphs Glyphs) *Screen {
	return &Screen{
		screen: screen,
		glyphs: glyphs,
		styles: DefaultStyles,
	}
}

// CellOrigin returns the screen position of board cell (0,0)
func (r *Screen) CellOrigin() (x, y int) {
	return 1, 1
}

// Draw renders one frame and shows it
func (r *Screen) Draw(res engine.TickResult, st Status) {
	r.screen.Clear()

	grid := res.Grid
	r.drawBorder(grid.Width, grid.Height)

	ox, oy := r.CellOrigin()
	for row := 0; row < grid.Height; row++ {
		for col := 0; col < grid.Width; col++ {
			c := engine.At(row, col)
			glyph, style := r.cellLook(grid, c)
			r.screen.SetContent(ox+col, oy+row, glyph, nil, style)
		}
	}

	statusRow := oy + grid.Height + 1
	r.drawText(0, statusRow, r.statusLine(st), r.styles.Status)
	r.drawText(0, statusRow+constants.StatusBarHeight, constants.TextKeyHelp, r.styles.Border)

	switch {
	case st.GameOver:
		msg := fmt.Sprintf(" %s (%s) - r to restart, q to quit ", constants.TextGameOver, st.Cause)
		r.drawCentered(grid, msg)
	case st.Paused:
		r.drawCentered(grid, " "+constants.TextPaused+" ")
	}

	r.screen.Show()
}

func (r *Screen) cellLook(grid engine.Grid, c engine.Coord) (rune, tcell.Style) {
	switch grid.At(c) {
	case engine.CellSnake:
		if c == grid.Head {
			return r.glyphs.Head, r.styles.Head
		}
		return r.glyphs.Snake, r.styles.Snake
	case engine.CellFood:
		return r.glyphs.Food, r.styles.Food
	default:
		return r.glyphs.Empty, r.styles.Empty
	}
}

func (r *Screen) statusLine(st Status) string {
	line := fmt.Sprintf(" length %d  score %d  tick %d  time %s",
		st.Length, st.Score, st.Tick, st.Elapsed.Truncate(time.Second))
	if st.Autopilot {
		line += "  [autopilot]"
	}
	return line
}

func (r *Screen) drawBorder(w, h int) {
	style := r.styles.Border
	right, bottom := w+1, h+1

	for x := 1; x < right; x++ {
		r.screen.SetContent(x, 0, tcell.RuneHLine, nil, style)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(0, 0, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(right, 0, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(0, bottom, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

func (r *Screen) drawCentered(grid engine.Grid, msg string) {
	ox, oy := r.CellOrigin()
	n := len([]rune(msg))
	x := ox + (grid.Width-n)/2
	if x < 0 {
		x = 0
	}
	r.drawText(x, oy+grid.Height/2, msg, r.styles.Banner)
}

func (r *Screen) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

package engine

import "fmt"

// Coord is a board cell addressed by row (top to bottom) and column (left to right)
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// At is shorthand for Coord{Row: row, Col: col}
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Add returns c offset by the unit delta of d
func (c Coord) Add(d Direction) Coord {
	dr, dc := d.Delta()
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Manhattan returns the grid distance between two cells
func (c Coord) Manhattan(o Coord) int {
	dr := c.Row - o.Row
	dc := c.Col - o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Bounds is the extent of a board, used by food sources that must not know the board itself
type Bounds struct {
	Width  int
	Height int
}

// Contains reports whether c lies inside the bounds
func (b Bounds) Contains(c Coord) bool {
	return c.Row >= 0 && c.Row < b.Height && c.Col >= 0 && c.Col < b.Width
}

// Area returns the number of cells
func (b Bounds) Area() int {
	return b.Width * b.Height
}

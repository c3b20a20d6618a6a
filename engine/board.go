package engine

// Board holds the grid extent and the food markers
// Food is stored row-major in a flat slice: food[row*width + col]
type Board struct {
	width  int
	height int
	food   []bool
}

// NewBoard creates an empty board of the given size
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		food:   make([]bool, width*height),
	}
}

// Width returns the number of columns
func (b *Board) Width() int { return b.width }

// Height returns the number of rows
func (b *Board) Height() int { return b.height }

// Bounds returns the board extent
func (b *Board) Bounds() Bounds {
	return Bounds{Width: b.width, Height: b.height}
}

// IsInBounds reports whether c addresses a cell on the board
func (b *Board) IsInBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.height && c.Col >= 0 && c.Col < b.width
}

// Clamp pulls c onto the nearest edge cell
func (b *Board) Clamp(c Coord) Coord {
	return Coord{
		Row: clamp(c.Row, 0, b.height-1),
		Col: clamp(c.Col, 0, b.width-1),
	}
}

// MarkFood flags c as holding food, out-of-bounds cells are ignored
func (b *Board) MarkFood(c Coord) bool {
	if !b.IsInBounds(c) {
		return false
	}
	b.food[b.index(c)] = true
	return true
}

// ClearFood removes the food flag at c
func (b *Board) ClearFood(c Coord) {
	if !b.IsInBounds(c) {
		return
	}
	b.food[b.index(c)] = false
}

// HasFoodAt reports whether c holds food
func (b *Board) HasFoodAt(c Coord) bool {
	if !b.IsInBounds(c) {
		return false
	}
	return b.food[b.index(c)]
}

// FoodCount returns the number of food cells currently marked
func (b *Board) FoodCount() int {
	n := 0
	for _, f := range b.food {
		if f {
			n++
		}
	}
	return n
}

func (b *Board) index(c Coord) int {
	return c.Row*b.width + c.Col
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package engine

// Cell tags one grid position for rendering
type Cell uint8

const (
	CellEmpty Cell = iota
	CellFood
	CellSnake
)

func (c Cell) String() string {
	switch c {
	case CellFood:
		return "FOOD"
	case CellSnake:
		return "SNAKE"
	default:
		return "EMPTY"
	}
}

// Grid is a render-ready view of the board, row-major: Cells[row*Width + col]
type Grid struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Cells  []Cell `json:"-"`
	Head   Coord  `json:"head"`
}

// At returns the tag of c, CellEmpty outside the grid
func (g Grid) At(c Coord) Cell {
	if c.Row < 0 || c.Row >= g.Height || c.Col < 0 || c.Col >= g.Width {
		return CellEmpty
	}
	return g.Cells[c.Row*g.Width+c.Col]
}

// Count returns how many cells carry tag
func (g Grid) Count(tag Cell) int {
	n := 0
	for _, c := range g.Cells {
		if c == tag {
			n++
		}
	}
	return n
}

func buildGrid(b *Board, s *Snake) Grid {
	g := Grid{
		Width:  b.width,
		Height: b.height,
		Cells:  make([]Cell, len(b.food)),
		Head:   s.Head(),
	}
	for i, f := range b.food {
		if f {
			g.Cells[i] = CellFood
		}
	}
	for i := 0; i < s.length; i++ {
		c := s.at(i)
		if b.IsInBounds(c) {
			g.Cells[b.index(c)] = CellSnake
		}
	}
	return g
}

package engine

import (
	"log"

	"golang.org/x/exp/rand"
)

// MaxFoodAttempts caps random draws before falling back to a free-cell scan
const MaxFoodAttempts = 64

// FoodSource supplies the next food cell
// occupied reports cells the food must not land on (the live snake)
type FoodSource interface {
	Next(b Bounds, occupied func(Coord) bool) (Coord, error)
}

// Feeder serves preset coordinates in load order, then uniform random cells
type Feeder struct {
	preset []Coord
	cursor int

	rng         *rand.Rand
	maxAttempts int
}

// NewFeeder creates a food source over a copy of preset, seeding the random fallback
func NewFeeder(preset []Coord, seed uint64) *Feeder {
	queue := make([]Coord, len(preset))
	copy(queue, preset)
	return &Feeder{
		preset:      queue,
		rng:         rand.New(rand.NewSource(seed)),
		maxAttempts: MaxFoodAttempts,
	}
}

// Remaining returns the number of preset entries not yet served
func (f *Feeder) Remaining() int {
	return len(f.preset) - f.cursor
}

// Next returns the next food cell that is in bounds and unoccupied
// Preset entries that do not fit the board or sit under the snake are skipped
func (f *Feeder) Next(b Bounds, occupied func(Coord) bool) (Coord, error) {
	if occupied == nil {
		occupied = func(Coord) bool { return false }
	}

	for f.cursor < len(f.preset) {
		c := f.preset[f.cursor]
		f.cursor++
		if !b.Contains(c) {
			log.Printf("food: preset %v outside %dx%d board, skipped", c, b.Width, b.Height)
			continue
		}
		if occupied(c) {
			log.Printf("food: preset %v occupied, skipped", c)
			continue
		}
		return c, nil
	}

	if b.Area() <= 0 {
		return Coord{}, ErrBoardFull
	}

	for i := 0; i < f.maxAttempts; i++ {
		c := Coord{Row: f.rng.Intn(b.Height), Col: f.rng.Intn(b.Width)}
		if !occupied(c) {
			return c, nil
		}
	}

	// Nearly full board: pick uniformly among the cells still free
	free := make([]Coord, 0, 16)
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			c := Coord{Row: row, Col: col}
			if !occupied(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return Coord{}, ErrBoardFull
	}
	return free[f.rng.Intn(len(free))], nil
}

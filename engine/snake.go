package engine

import "fmt"

// MinSnakeLength is the length of a freshly spawned snake and the floor it may never drop below
const MinSnakeLength = 2

// Snake is the ordered body, head first, stored in a ring buffer
// occupancy counts segments per cell; a grown tail is counted twice until it moves
type Snake struct {
	buf       []Coord
	head      int // Index of segment 0 in buf
	length    int
	occupancy map[Coord]int
}

// NewSnake builds a snake from segments given head first
func NewSnake(segments ...Coord) *Snake {
	if len(segments) < MinSnakeLength {
		panic(fmt.Sprintf("snake: need at least %d segments, got %d", MinSnakeLength, len(segments)))
	}

	capacity := 16
	for capacity < len(segments) {
		capacity *= 2
	}

	s := &Snake{
		buf:       make([]Coord, capacity),
		occupancy: make(map[Coord]int, capacity),
	}
	for _, c := range segments {
		s.pushBack(c)
	}
	return s
}

// Len returns the number of segments, duplicates included
func (s *Snake) Len() int {
	return s.length
}

// Head returns segment 0
func (s *Snake) Head() Coord {
	return s.buf[s.head]
}

// Tail returns the last segment
func (s *Snake) Tail() Coord {
	return s.at(s.length - 1)
}

// Segment returns the i-th segment, head is 0
func (s *Snake) Segment(i int) Coord {
	if i < 0 || i >= s.length {
		panic(fmt.Sprintf("snake: segment %d out of range [0,%d)", i, s.length))
	}
	return s.at(i)
}

// Segments returns a copy of the body, head first
func (s *Snake) Segments() []Coord {
	out := make([]Coord, s.length)
	for i := range out {
		out[i] = s.at(i)
	}
	return out
}

// Contains reports whether any segment occupies c
func (s *Snake) Contains(c Coord) bool {
	return s.occupancy[c] > 0
}

// CollidesWithBody reports whether c overlaps a segment other than the head itself
func (s *Snake) CollidesWithBody(c Coord) bool {
	n := s.occupancy[c]
	if c == s.Head() {
		n--
	}
	return n > 0
}

// Prepend pushes a new head
func (s *Snake) Prepend(c Coord) {
	s.grow()
	s.head = (s.head - 1 + len(s.buf)) % len(s.buf)
	s.buf[s.head] = c
	s.length++
	s.occupancy[c]++
}

// DropTail removes the last segment
// Panics if it would leave the snake shorter than MinSnakeLength
func (s *Snake) DropTail() Coord {
	if s.length <= MinSnakeLength {
		panic(fmt.Sprintf("snake: drop tail would leave %d segments", s.length-1))
	}
	tail := s.at(s.length - 1)
	s.length--
	if s.occupancy[tail]--; s.occupancy[tail] == 0 {
		delete(s.occupancy, tail)
	}
	return tail
}

// GrowTail duplicates the last segment; the copy unfolds on the next move
func (s *Snake) GrowTail() {
	s.pushBack(s.Tail())
}

func (s *Snake) pushBack(c Coord) {
	s.grow()
	s.buf[(s.head+s.length)%len(s.buf)] = c
	s.length++
	s.occupancy[c]++
}

func (s *Snake) at(i int) Coord {
	return s.buf[(s.head+i)%len(s.buf)]
}

// grow doubles the ring when full, unrolling it so head lands at index 0
func (s *Snake) grow() {
	if s.length < len(s.buf) {
		return
	}
	next := make([]Coord, len(s.buf)*2)
	for i := 0; i < s.length; i++ {
		next[i] = s.at(i)
	}
	s.buf = next
	s.head = 0
}

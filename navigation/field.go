// Package navigation drives the autopilot: a breadth-first distance field
// toward the food and a planner that picks a safe heading from it.
package navigation

import (
	"github.com/lixenwraith/vi-snake/engine"
)

// Unreachable marks cells the search never reached
const Unreachable = -1

// Blocker reports whether a cell cannot be entered
type Blocker func(c engine.Coord) bool

// DistanceField stores step counts from a target over 4-connected free cells
// Buffers are reused across Compute calls
type DistanceField struct {
	Width, Height int
	Distances     []int

	// Cache state
	Target engine.Coord
	Valid  bool

	queue []int
}

// NewDistanceField creates an empty field for the given dimensions
func NewDistanceField(width, height int) *DistanceField {
	size := width * height
	return &DistanceField{
		Width:     width,
		Height:    height,
		Distances: make([]int, size),
		queue:     make([]int, 0, size/4),
	}
}

// Resize adjusts field dimensions, invalidates cache
func (f *DistanceField) Resize(width, height int) {
	size := width * height
	if cap(f.Distances) < size {
		f.Distances = make([]int, size)
	} else {
		f.Distances = f.Distances[:size]
	}
	f.Width = width
	f.Height = height
	f.Valid = false
}

// Distance returns steps from the target to c, Unreachable if blocked or outside
func (f *DistanceField) Distance(c engine.Coord) int {
	if !f.Valid || !f.inside(c) {
		return Unreachable
	}
	return f.Distances[c.Row*f.Width+c.Col]
}

// Compute runs a breadth-first search outward from target
// The target itself is always seeded even when blocked reports it
func (f *DistanceField) Compute(target engine.Coord, blocked Blocker) {
	if !f.inside(target) {
		f.Valid = false
		return
	}

	for i := range f.Distances {
		f.Distances[i] = Unreachable
	}

	w := f.Width
	start := target.Row*w + target.Col
	f.Distances[start] = 0
	f.queue = append(f.queue[:0], start)

	for head := 0; head < len(f.queue); head++ {
		idx := f.queue[head]
		cur := engine.At(idx/w, idx%w)
		for _, d := range engine.Directions {
			n := cur.Add(d)
			if !f.inside(n) || blocked(n) {
				continue
			}
			nIdx := n.Row*w + n.Col
			if f.Distances[nIdx] != Unreachable {
				continue
			}
			f.Distances[nIdx] = f.Distances[idx] + 1
			f.queue = append(f.queue, nIdx)
		}
	}

	f.Target = target
	f.Valid = true
}

// Region counts cells reachable from start, start included, stopping at limit
// Uses the field's buffers; invalidates the distance cache
func (f *DistanceField) Region(start engine.Coord, blocked Blocker, limit int) int {
	f.Valid = false
	if !f.inside(start) || blocked(start) {
		return 0
	}

	for i := range f.Distances {
		f.Distances[i] = Unreachable
	}

	w := f.Width
	idx := start.Row*w + start.Col
	f.Distances[idx] = 0
	f.queue = append(f.queue[:0], idx)

	for head := 0; head < len(f.queue) && len(f.queue) < limit; head++ {
		cur := engine.At(f.queue[head]/w, f.queue[head]%w)
		for _, d := range engine.Directions {
			n := cur.Add(d)
			if !f.inside(n) || blocked(n) {
				continue
			}
			nIdx := n.Row*w + n.Col
			if f.Distances[nIdx] != Unreachable {
				continue
			}
			f.Distances[nIdx] = 0
			f.queue = append(f.queue, nIdx)
		}
	}
	return min(len(f.queue), limit)
}

func (f *DistanceField) inside(c engine.Coord) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < f.Height && c.Col < f.Width
}

package navigation

import (
	"github.com/joonazan/vec2"

	"github.com/lixenwraith/vi-snake/engine"
)

// View is the slice of game state the planner reads
type View struct {
	Bounds  engine.Bounds
	Body    []engine.Coord // head first
	Heading engine.Direction
	Food    engine.Coord
	HasFood bool
}

// Planner chooses autopilot headings
// Not safe for concurrent use; buffers are reused between calls
type Planner struct {
	field    *DistanceField
	occupied map[engine.Coord]struct{}
}

// NewPlanner creates a planner; buffers grow to the board on first use
func NewPlanner() *Planner {
	return &Planner{
		field:    NewDistanceField(0, 0),
		occupied: make(map[engine.Coord]struct{}),
	}
}

type candidate struct {
	dir    engine.Direction
	next   engine.Coord
	dist   int
	region int
	euclid float64
}

// Next returns the heading for the coming tick
// Preference: shortest path to food that leaves room for the body, else the
// move with the most reachable space, else the current heading
func (p *Planner) Next(v View) engine.Direction {
	if len(v.Body) == 0 {
		return v.Heading
	}
	if p.field.Width != v.Bounds.Width || p.field.Height != v.Bounds.Height {
		p.field.Resize(v.Bounds.Width, v.Bounds.Height)
	}

	// The head lands before the tail moves, so every segment blocks
	clear(p.occupied)
	for _, c := range v.Body {
		p.occupied[c] = struct{}{}
	}
	blocked := func(c engine.Coord) bool {
		_, ok := p.occupied[c]
		return ok
	}

	head := v.Body[0]
	var cands []candidate
	for _, d := range engine.Directions {
		next := head.Add(d)
		if !v.Bounds.Contains(next) || blocked(next) {
			continue
		}
		cands = append(cands, candidate{dir: d, next: next, dist: Unreachable})
	}
	if len(cands) == 0 {
		return v.Heading
	}

	need := len(v.Body)
	for i := range cands {
		cands[i].region = p.field.Region(cands[i].next, blocked, need)
	}

	if v.HasFood {
		p.field.Compute(v.Food, blocked)
		target := vec(v.Food)
		for i := range cands {
			cands[i].dist = p.field.Distance(cands[i].next)
			cands[i].euclid = vec(cands[i].next).Minus(target).Length()
		}
	}

	best := -1
	for i, c := range cands {
		if c.dist == Unreachable || c.region < need {
			continue
		}
		if best < 0 || p.closer(c, cands[best], v.Heading) {
			best = i
		}
	}
	if best >= 0 {
		return cands[best].dir
	}

	// Survival: maximize space
	best = 0
	for i := 1; i < len(cands); i++ {
		c, b := cands[i], cands[best]
		if c.region > b.region || (c.region == b.region && c.dir == v.Heading) {
			best = i
		}
	}
	return cands[best].dir
}

func (p *Planner) closer(a, b candidate, heading engine.Direction) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	if a.euclid != b.euclid {
		return a.euclid < b.euclid
	}
	return a.dir == heading
}

func vec(c engine.Coord) vec2.Vector {
	return vec2.Vector{X: float64(c.Col), Y: float64(c.Row)}
}

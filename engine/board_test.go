package engine

import "testing"

func TestBoardFoodMarkers(t *testing.T) {
	b := NewBoard(40, 20)

	if b.HasFoodAt(At(3, 4)) {
		t.Error("Expected empty board")
	}
	if !b.MarkFood(At(3, 4)) {
		t.Fatal("Expected MarkFood to accept an in-bounds cell")
	}
	if !b.HasFoodAt(At(3, 4)) {
		t.Error("Expected food at (3,4)")
	}
	if b.FoodCount() != 1 {
		t.Errorf("Expected 1 food cell, got %d", b.FoodCount())
	}

	b.ClearFood(At(3, 4))
	if b.HasFoodAt(At(3, 4)) {
		t.Error("Expected food cleared")
	}

	if b.MarkFood(At(20, 0)) {
		t.Error("Expected MarkFood to reject row 20 on a 20-row board")
	}
	if b.HasFoodAt(At(-1, -1)) {
		t.Error("Out-of-bounds lookups must report no food")
	}
}

func TestBoardBoundsAndClamp(t *testing.T) {
	b := NewBoard(40, 20)

	tests := []struct {
		name    string
		in      Coord
		inside  bool
		clamped Coord
	}{
		{"origin", At(0, 0), true, At(0, 0)},
		{"far corner", At(19, 39), true, At(19, 39)},
		{"above", At(-1, 5), false, At(0, 5)},
		{"below", At(20, 5), false, At(19, 5)},
		{"left", At(5, -3), false, At(5, 0)},
		{"right", At(5, 40), false, At(5, 39)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.IsInBounds(tt.in); got != tt.inside {
				t.Errorf("IsInBounds(%v) = %v, want %v", tt.in, got, tt.inside)
			}
			if got := b.Clamp(tt.in); got != tt.clamped {
				t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.clamped)
			}
		})
	}
}

func TestDirectionDeltas(t *testing.T) {
	origin := At(5, 5)
	tests := []struct {
		dir  Direction
		want Coord
		opp  Direction
	}{
		{Up, At(4, 5), Down},
		{Down, At(6, 5), Up},
		{Left, At(5, 4), Right},
		{Right, At(5, 6), Left},
	}
	for _, tt := range tests {
		if got := origin.Add(tt.dir); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.dir, tt.want, got)
		}
		if tt.dir.Opposite() != tt.opp {
			t.Errorf("%s: expected opposite %s, got %s", tt.dir, tt.opp, tt.dir.Opposite())
		}
		parsed, err := ParseDirection(tt.dir.String())
		if err != nil || parsed != tt.dir {
			t.Errorf("ParseDirection(%q) = %v, %v", tt.dir.String(), parsed, err)
		}
	}

	if _, err := ParseDirection("north"); err == nil {
		t.Error("Expected error for unknown direction")
	}
}

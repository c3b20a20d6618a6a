package engine

import (
	"errors"
	"testing"
)

func TestFeederPresetOrder(t *testing.T) {
	f := NewFeeder([]Coord{At(5, 5), At(10, 10)}, 1)
	b := Bounds{Width: 40, Height: 20}

	for i, want := range []Coord{At(5, 5), At(10, 10)} {
		got, err := f.Next(b, nil)
		if err != nil {
			t.Fatalf("Next %d failed: %v", i, err)
		}
		if got != want {
			t.Errorf("Next %d: expected %v, got %v", i, want, got)
		}
	}
	if f.Remaining() != 0 {
		t.Errorf("Expected preset exhausted, %d left", f.Remaining())
	}

	// Falls back to random cells inside the board
	for i := 0; i < 100; i++ {
		c, err := f.Next(b, nil)
		if err != nil {
			t.Fatalf("Random Next failed: %v", err)
		}
		if !b.Contains(c) {
			t.Fatalf("Random food %v outside board", c)
		}
	}
}

func TestFeederSkipsUnusablePreset(t *testing.T) {
	preset := []Coord{At(50, 50), At(1, 1), At(2, 2)}
	f := NewFeeder(preset, 1)
	occupied := func(c Coord) bool { return c == At(1, 1) }

	got, err := f.Next(Bounds{Width: 10, Height: 10}, occupied)
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if got != At(2, 2) {
		t.Errorf("Expected (2,2) after skipping out-of-bounds and occupied entries, got %v", got)
	}

	// Loaded slice is copied, caller mutations do not leak in
	preset[2] = At(9, 9)
	if f.Remaining() != 0 {
		t.Errorf("Expected 0 remaining, got %d", f.Remaining())
	}
}

func TestFeederRandomAvoidsOccupied(t *testing.T) {
	b := Bounds{Width: 4, Height: 3}
	free := At(2, 3)
	occupied := func(c Coord) bool { return c != free }

	f := NewFeeder(nil, 42)
	for i := 0; i < 10; i++ {
		got, err := f.Next(b, occupied)
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if got != free {
			t.Fatalf("Expected the single free cell %v, got %v", free, got)
		}
	}
}

func TestFeederBoardFull(t *testing.T) {
	f := NewFeeder(nil, 7)
	_, err := f.Next(Bounds{Width: 3, Height: 3}, func(Coord) bool { return true })
	if !errors.Is(err, ErrBoardFull) {
		t.Errorf("Expected ErrBoardFull, got %v", err)
	}
}

func TestFeederDeterministicSeed(t *testing.T) {
	b := Bounds{Width: 40, Height: 20}
	a, c := NewFeeder(nil, 99), NewFeeder(nil, 99)
	for i := 0; i < 20; i++ {
		x, _ := a.Next(b, nil)
		y, _ := c.Next(b, nil)
		if x != y {
			t.Fatalf("Draw %d differs for equal seeds: %v vs %v", i, x, y)
		}
	}
}

package modes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/vi-snake/config"
)

func TestFitBoard(t *testing.T) {
	tests := []struct {
		cols, rows int
		w, h       int
	}{
		{80, 24, 78, 20},
		{2, 3, 3, 2},
		{1000, 1000, 500, 200},
	}
	for _, tt := range tests {
		w, h := FitBoard(tt.cols, tt.rows)
		if w != tt.w || h != tt.h {
			t.Errorf("FitBoard(%d,%d) = %dx%d, want %dx%d", tt.cols, tt.rows, w, h, tt.w, tt.h)
		}
	}
}

func TestResolve(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "io"))
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	defer f.Close()

	if got := Resolve(config.ModeAuto, f, f); got != config.ModeLine {
		t.Errorf("Expected line mode for non-terminal IO, got %s", got)
	}
	if got := Resolve(config.ModeStep, f, f); got != config.ModeStep {
		t.Errorf("Expected explicit mode kept, got %s", got)
	}
}

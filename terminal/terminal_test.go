package terminal

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestClearScreen(t *testing.T) {
	var buf bytes.Buffer
	if err := ClearScreen(&buf); err != nil {
		t.Fatalf("ClearScreen failed: %v", err)
	}
	if got := buf.String(); got != "\x1b[H\x1b[2J" {
		t.Errorf("Expected home+clear sequence, got %q", got)
	}
}

func TestCursorVisibility(t *testing.T) {
	var buf bytes.Buffer
	HideCursor(&buf)
	ShowCursor(&buf)
	if got := buf.String(); got != "\x1b[?25l\x1b[?25h" {
		t.Errorf("Unexpected cursor sequences %q", got)
	}
}

func TestEmergencyResetWritesSequences(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	out := buf.Bytes()
	for _, seq := range [][]byte{csiCursorShow, csiAltScreenExit, csiSGR0, csiRIS} {
		if !bytes.Contains(out, seq) {
			t.Errorf("Expected reset output to contain %q", seq)
		}
	}
	// RIS goes last so the terminal ends in its initial state
	if !bytes.HasSuffix(out, csiRIS) {
		t.Errorf("Expected output to end with RIS, got %q", out)
	}
}

func TestRegularFileIsNotTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	defer f.Close()

	if IsTerminal(f) {
		t.Error("Expected regular file not to be a terminal")
	}
	if IsTerminal(nil) {
		t.Error("Expected nil file not to be a terminal")
	}

	cols, rows := Size(f)
	if cols != fallbackCols || rows != fallbackRows {
		t.Errorf("Expected fallback %dx%d, got %dx%d", fallbackCols, fallbackRows, cols, rows)
	}
}

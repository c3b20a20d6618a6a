// Package terminal holds the small amount of raw terminal handling the
// snake drivers need outside tcell: TTY detection, size queries, screen
// clearing and last-resort restoration after a crash.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Fallback dimensions when the size cannot be queried
const (
	fallbackCols = 80
	fallbackRows = 24
)

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Size returns the terminal dimensions in columns and rows for f
// Returns 80x24 when f is not a terminal
func Size(f *os.File) (cols, rows int) {
	if f == nil {
		return fallbackCols, fallbackRows
	}
	cols, rows, err := querySize(int(f.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		return fallbackCols, fallbackRows
	}
	return cols, rows
}

// EmergencyReset restores a usable terminal after a panic
// Writes reset sequences to w and, when possible, re-enables canonical mode on /dev/tty
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseMotionOff)
	w.Write(csiMouseClickOff)
	w.Write(csiMouseSGROff)

	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}

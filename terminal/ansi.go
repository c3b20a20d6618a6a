package terminal

import "io"

// ANSI sequences used by the line and step drivers and by crash recovery
var (
	csiClearHome      = []byte("\x1b[H\x1b[2J")
	csiCursorHide     = []byte("\x1b[?25l")
	csiCursorShow     = []byte("\x1b[?25h")
	csiSGR0           = []byte("\x1b[0m")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	csiAutoWrapOn     = []byte("\x1b[?7h")
	csiMouseClickOff  = []byte("\x1b[?1000l")
	csiMouseMotionOff = []byte("\x1b[?1003l")
	csiMouseSGROff    = []byte("\x1b[?1006l")
	csiRIS            = []byte("\x1bc") // Reset to Initial State
)

// ClearScreen moves the cursor home and erases the display
func ClearScreen(w io.Writer) error {
	_, err := w.Write(csiClearHome)
	return err
}

// HideCursor hides the text cursor
func HideCursor(w io.Writer) error {
	_, err := w.Write(csiCursorHide)
	return err
}

// ShowCursor restores the text cursor
func ShowCursor(w io.Writer) error {
	_, err := w.Write(csiCursorShow)
	return err
}

package modes

import (
	"os"

	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/terminal"
)

// Resolve maps "auto" to realtime when both stdin and stdout are terminals, line otherwise
func Resolve(mode string, stdin, stdout *os.File) string {
	if mode != config.ModeAuto {
		return mode
	}
	if terminal.IsTerminal(stdin) && terminal.IsTerminal(stdout) {
		return config.ModeRealtime
	}
	return config.ModeLine
}

// Rows reserved around the board in realtime mode: two border rows, status bar and key help
const chromeRows = 2 + constants.StatusBarHeight + 1

// FitBoard sizes the board to a cols x rows terminal, clamped to the allowed range
func FitBoard(cols, rows int) (width, height int) {
	width = clampInt(cols-2, constants.MinBoardWidth, constants.MaxBoardWidth)
	height = clampInt(rows-chromeRows, constants.MinBoardHeight, constants.MaxBoardHeight)
	return width, height
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

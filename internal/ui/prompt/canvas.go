package prompt

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func blankCanvas(width, rows int) []string {
	canvas := make([]string, rows)
	for i := range canvas {
		canvas[i] = strings.Repeat(" ", width)
	}
	return canvas
}

// overlay draws block over canvas with its top-left cell at (col, row).
// Parts falling outside the canvas are cut off.
func overlay(canvas []string, block string, col, row, width int) {
	for i, line := range strings.Split(block, "\n") {
		r := row + i
		if r < 0 || r >= len(canvas) {
			continue
		}

		c := col
		if c < 0 {
			line = ansi.TruncateLeft(line, -c, "")
			c = 0
		}
		if c >= width {
			continue
		}
		lw := ansi.StringWidth(line)
		if c+lw > width {
			line = ansi.Truncate(line, width-c, "")
			lw = width - c
		}

		canvas[r] = ansi.Truncate(canvas[r], c, "") + line + ansi.TruncateLeft(canvas[r], c+lw, "")
	}
}

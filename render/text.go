package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes s starting at (x, y), advancing by display width; returns the column after the text
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// drawCentered writes s centered on the span [x, x+width)
func drawCentered(screen tcell.Screen, x, y, width int, s string, style tcell.Style) {
	s = runewidth.Truncate(s, width, "")
	pad := (width - runewidth.StringWidth(s)) / 2
	drawText(screen, x+pad, y, s, style)
}

// fitWidth truncates or right-pads s to exactly width display columns
func fitWidth(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

// fillRect paints a rectangle with spaces in style
func fillRect(screen tcell.Screen, x, y, width, height int, style tcell.Style) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// drawBox outlines a rectangle with single-line box characters
func drawBox(screen tcell.Screen, x, y, width, height int, style tcell.Style) {
	if width < 2 || height < 2 {
		return
	}
	right, bottom := x+width-1, y+height-1
	for col := x + 1; col < right; col++ {
		screen.SetContent(col, y, '─', nil, style)
		screen.SetContent(col, bottom, '─', nil, style)
	}
	for row := y + 1; row < bottom; row++ {
		screen.SetContent(x, row, '│', nil, style)
		screen.SetContent(right, row, '│', nil, style)
	}
	screen.SetContent(x, y, '┌', nil, style)
	screen.SetContent(right, y, '┐', nil, style)
	screen.SetContent(x, bottom, '└', nil, style)
	screen.SetContent(right, bottom, '┘', nil, style)
}

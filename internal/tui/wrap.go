package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText wraps text to width display cells. Chinese has no spaces, so
// lines break between any two runes.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		var line strings.Builder
		lineWidth := 0
		for _, r := range para {
			w := runewidth.RuneWidth(r)
			if lineWidth+w > width && lineWidth > 0 {
				lines = append(lines, line.String())
				line.Reset()
				lineWidth = 0
			}
			line.WriteRune(r)
			lineWidth += w
		}
		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n")
}

// truncate shortens text to width display cells.
func truncate(text string, width int) string {
	return runewidth.Truncate(text, width, "…")
}

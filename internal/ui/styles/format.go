// Package styles contains Lip Gloss style definitions.
package styles

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateString truncates a string to fit within maxWidth display cells,
// adding an ellipsis if needed. Width is measured in terminal cells so
// CJK and other wide runes count as two.
func TruncateString(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}

	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}

	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}

	var b strings.Builder
	width := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if width+rw > maxWidth-3 {
			break
		}
		b.WriteRune(r)
		width += rw
	}

	return b.String() + "..."
}

// StatusLetterStyled renders a one-letter change code in its color.
func StatusLetterStyled(letter string) string {
	switch letter {
	case "M":
		return FileModifiedStyle.Render(letter)
	case "A":
		return FileAddedStyle.Render(letter)
	case "D":
		return FileDeletedStyle.Render(letter)
	case "R":
		return FileRenamedStyle.Render(letter)
	case "C":
		return FileRenamedStyle.Render(letter)
	case "U":
		return FileUnmergedStyle.Render(letter)
	case "?":
		return FileUntrackedStyle.Render(letter)
	default:
		return letter
	}
}

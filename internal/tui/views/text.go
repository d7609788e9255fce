package views

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
)

// sanitizeForTerminal drops the codepoints that tcell cannot lay out in a
// single cell run: skin tone modifiers, zero width joiners and variation
// selectors. A modified emoji such as 👍🏻 renders as the plain 👍.
func sanitizeForTerminal(s string) string {
	return strings.Map(func(r rune) rune {
		if isProblematicRune(r) {
			return -1
		}
		return r
	}, s)
}

func isProblematicRune(r rune) bool {
	switch {
	case r >= 0x1F3FB && r <= 0x1F3FF:
		return true
	case r == 0x200D:
		return true
	case r >= 0xFE00 && r <= 0xFE0F:
		return true
	case r >= 0xE0100 && r <= 0xE01EF:
		return true
	default:
		return false
	}
}

// truncate shortens s to at most width terminal cells, ending in an ellipsis
// when something was cut. Newlines are flattened first.
func truncate(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// display prepares user-supplied text for a tview cell or text view.
func display(s string) string {
	return tview.Escape(sanitizeForTerminal(s))
}

// Package textutil measures and fits plain text to terminal columns.
// Wide runes (CJK, emoji) count as two columns.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in Ellipsis when
// anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	avail := maxWidth - Width(Ellipsis)
	if avail < 0 {
		return Ellipsis
	}

	out := make([]rune, 0, len(s))
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > avail {
			break
		}
		out = append(out, r)
		w += rw
	}
	return string(out) + Ellipsis
}

// PadRight fills s with spaces up to width columns, truncating when longer.
func PadRight(s string, width int) string {
	w := Width(s)
	if w > width {
		return Truncate(s, width)
	}
	return runewidth.FillRight(s, width)
}

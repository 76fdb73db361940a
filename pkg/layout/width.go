// Package layout measures and arranges styled terminal text.
//
// Labels handed to this package may carry embedded ANSI SGR sequences;
// all measurement is done on printable cells only, so padding and
// column math never drift when color is enabled.
package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StripSGR removes ANSI SGR escape sequences from a string.
func StripSGR(s string) string {
	if !strings.ContainsRune(s, '\033') {
		return s
	}
	var result strings.Builder
	result.Grow(len(s))
	inEscape := false
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\033':
			inEscape = true
		case inEscape && s[i] == 'm':
			inEscape = false
		case !inEscape:
			result.WriteByte(s[i])
		}
	}
	return result.String()
}

// DisplayWidth returns the printable width of s in terminal cells.
// Embedded SGR sequences count for nothing; East Asian Wide runes and
// emoji count per go-runewidth.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(StripSGR(s))
}

// pad right-pads s with spaces until its printable width reaches w.
// The styled string is returned unchanged when already wide enough.
func pad(s string, w int) string {
	gap := w - DisplayWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// ABOUTME: Display width of cell text with grapheme-aware segmentation
// ABOUTME: ANSI escape sequences are zero width; East Asian wide runes count as two columns

package pretty

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	s = stripANSI(s)
	w := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		r, _ := utf8.DecodeRuneInString(cluster)
		w += runewidth.RuneWidth(r)
	}
	return w
}

// Truncate shortens s to at most w columns, marking the cut with an ellipsis.
func Truncate(s string, w int) string {
	if Width(s) <= w {
		return s
	}
	return runewidth.Truncate(stripANSI(s), w, "…")
}

func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

// stripANSI removes CSI sequences (ESC [ ... final byte) and two-byte ESC
// sequences from s.
func stripANSI(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '\x1b' {
			b.WriteByte(s[i])
			i++
			continue
		}
		i++
		if i < len(s) && s[i] == '[' {
			i++
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7E) {
				i++
			}
		}
		i++
	}
	return b.String()
}

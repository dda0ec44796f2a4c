// ABOUTME: Terminal detection for output styling via golang.org/x/term
// ABOUTME: Non-terminals get plain output at a fixed width

package report

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal or its size is unknown.
const DefaultWidth = 100

// Terminal reports whether f is a terminal and its width in columns.
func Terminal(f *os.File) (isTTY bool, width int) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return false, DefaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return true, DefaultWidth
	}
	return true, w
}

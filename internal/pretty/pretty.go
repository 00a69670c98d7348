// Terminal detection helpers for output rendering.
package pretty

import (
	"os"

	"golang.org/x/term"
)

func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the column width to render at: max, clamped to the terminal
// width when f is a terminal narrower than max.
func Width(f *os.File, max int) int {
	if !term.IsTerminal(int(f.Fd())) {
		return max
	}

	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 || w >= max {
		return max
	}

	return w
}

//go:build windows
// +build windows

package speedtui

import (
	"os"

	"golang.org/x/term"
)

// TerminalSize reports the size in cells of the terminal attached to f
func TerminalSize(f *os.File) (width int, height int, err error) {
	return term.GetSize(int(f.Fd()))
}

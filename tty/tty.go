// Package tty wraps raw-mode setup and terminal geometry queries.
// Raw-mode handling is inherently platform-specific (termios on Unix,
// console modes on Windows), so it is kept behind this small interface
// and delegated entirely to golang.org/x/term rather than reimplemented.
package tty

import (
	"os"

	"golang.org/x/term"

	"termdoc/ansi"
)

// State is the saved terminal mode, returned by Enable and consumed by
// Restore.
type State struct {
	state *term.State
}

// Enable puts f (typically os.Stdin) into raw mode and returns the
// previous state so it can be restored later. It is an error to call
// Enable on a non-terminal file descriptor.
func Enable(f *os.File) (*State, error) {
	old, err := term.MakeRaw(int(f.Fd()))
	if err != nil {
		return nil, err
	}
	return &State{state: old}, nil
}

// Restore puts f back into the mode it was in before Enable. A nil
// state (or one from a file that was never in raw mode) is a no-op.
func Restore(f *os.File, s *State) error {
	if s == nil || s.state == nil {
		return nil
	}
	return term.Restore(int(f.Fd()), s.state)
}

// Size reports f's current width and height in cells.
func Size(f *os.File) (width, height int, err error) {
	return term.GetSize(int(f.Fd()))
}

// IsTerminal reports whether f is attached to a terminal at all (it is
// not under redirection or in CI, for example).
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// EnterAlternateScreen switches w to the alternate screen buffer and
// hides the cursor, matching the reference Renderer.setup sequence.
func EnterAlternateScreen(w *os.File) {
	w.WriteString(ansi.AlternateOn)
	w.WriteString(ansi.CursorHide)
}

// LeaveAlternateScreen restores the cursor and switches back to the
// primary screen buffer, matching the reference Renderer.cleanup
// sequence. Order is the exact reverse of EnterAlternateScreen.
func LeaveAlternateScreen(w *os.File) {
	w.WriteString(ansi.CursorShow)
	w.WriteString(ansi.AlternateOff)
}

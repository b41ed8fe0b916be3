//go:build unix

package scr

import (
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// termState stores the original terminal mode for restoration.
type termState struct {
	prev *term.State
}

// enterRawMode puts the terminal into raw (no-echo, byte-at-a-time) mode and
// returns the previous state.
func enterRawMode(fd int) (*termState, error) {
	prev, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &termState{prev: prev}, nil
}

// leaveRawMode restores the terminal to the mode captured by enterRawMode.
func leaveRawMode(fd int, st *termState) error {
	if st == nil || st.prev == nil {
		return nil
	}
	return term.Restore(fd, st.prev)
}

// terminalSize queries the kernel for the terminal geometry.
func terminalSize(fd int) (rows, columns int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Row), int(ws.Col), nil
}

// isTerminal reports whether fd is attached to a terminal.
func isTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

//go:build windows

package scr

import (
	"golang.org/x/term"
)

// termState stores the original terminal mode for restoration.
type termState struct {
	prev *term.State
}

// enterRawMode puts the console into raw (no-echo, byte-at-a-time) mode and
// returns the previous state.
func enterRawMode(fd int) (*termState, error) {
	prev, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &termState{prev: prev}, nil
}

// leaveRawMode restores the console to the mode captured by enterRawMode.
func leaveRawMode(fd int, st *termState) error {
	if st == nil || st.prev == nil {
		return nil
	}
	return term.Restore(fd, st.prev)
}

// terminalSize queries the console geometry.
func terminalSize(fd int) (rows, columns int, err error) {
	columns, rows, err = term.GetSize(fd)
	return rows, columns, err
}

// isTerminal reports whether fd is attached to a console.
func isTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

package scr

import (
	"strconv"
	"unicode/utf8"
)

// escBuilder efficiently builds ANSI escape sequences into a reusable,
// pre-allocated buffer.
type escBuilder struct {
	buf []byte
}

func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{
		buf: make([]byte, 0, capacity),
	}
}

// Reset clears the buffer for reuse.
func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

// Bytes returns the built escape sequence.
func (e *escBuilder) Bytes() []byte {
	return e.buf
}

// writeCSI writes the Control Sequence Introducer (ESC [).
func (e *escBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// MoveTo moves the cursor to the given 1-indexed position.
func (e *escBuilder) MoveTo(row, column int) {
	e.writeCSI()
	e.writeInt(row)
	e.buf = append(e.buf, ';')
	e.writeInt(column)
	e.buf = append(e.buf, 'H')
}

// ClearScreen clears the entire screen.
func (e *escBuilder) ClearScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '2', 'J')
}

// HideCursor makes the cursor invisible.
func (e *escBuilder) HideCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'l')
}

// ShowCursor makes the cursor visible.
func (e *escBuilder) ShowCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'h')
}

// EnterAltScreen switches to the alternate screen buffer.
func (e *escBuilder) EnterAltScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '1', '0', '4', '9', 'h')
}

// ExitAltScreen switches back to the main screen buffer.
func (e *escBuilder) ExitAltScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '1', '0', '4', '9', 'l')
}

// ResetStyle resets all display attributes to the terminal default.
func (e *escBuilder) ResetStyle() {
	e.writeCSI()
	e.buf = append(e.buf, '0', 'm')
}

// sgrColors maps the IBM 3-bit color values onto the ANSI SGR color order.
// The bit meanings differ: IBM uses blue=1, green=2, red=4 while ANSI counts
// red=1, green=2, blue=4 from its base codes.
var sgrColors = [8]int{
	0, // Black
	4, // Blue
	2, // Green
	6, // Cyan
	1, // Red
	5, // Magenta
	3, // Brown -> yellow
	7, // White
}

// SetAttribute emits the SGR sequence selecting the colors and effects of
// one attribute byte. It always starts from a reset so no prior state leaks
// between cells.
func (e *escBuilder) SetAttribute(a Attribute) {
	e.writeCSI()
	e.buf = append(e.buf, '0')

	if a.HasBright() {
		e.buf = append(e.buf, ';', '1')
	}
	if a.HasBlink() {
		e.buf = append(e.buf, ';', '5')
	}

	e.buf = append(e.buf, ';')
	e.writeInt(30 + sgrColors[a.Foreground()])
	e.buf = append(e.buf, ';')
	e.writeInt(40 + sgrColors[a.Background()])

	e.buf = append(e.buf, 'm')
}

// WriteRune appends a UTF-8 encoded rune to the buffer.
func (e *escBuilder) WriteRune(r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	e.buf = append(e.buf, buf[:n]...)
}

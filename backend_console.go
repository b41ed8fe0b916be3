package scr

import (
	"io"
	"os"
)

// ConsoleBackend is the direct, bulk-transfer rendering strategy: every
// Refresh serializes the entire virtual image into one frame and hands it to
// the display in a single Write call, the way a console API blits a whole
// screen buffer. There is no shadow image and no diffing; Refresh and
// Redraw are the same operation.
type ConsoleBackend struct {
	out io.Writer
	in  io.Reader

	outFd    int
	inFd     int
	hasOutFd bool
	hasInFd  bool

	rows    int
	columns int
	fixed   bool

	esc *escBuilder
	raw *termState
}

var _ Backend = (*ConsoleBackend)(nil)

// NewConsoleBackend returns a bulk-transfer backend writing to out and
// reading keys from in.
func NewConsoleBackend(out io.Writer, in io.Reader) *ConsoleBackend {
	b := &ConsoleBackend{out: out, in: in}
	if f, ok := out.(*os.File); ok {
		b.outFd = int(f.Fd())
		b.hasOutFd = true
	}
	if f, ok := in.(*os.File); ok {
		b.inFd = int(f.Fd())
		b.hasInFd = true
	}
	return b
}

// NewConsoleBackendSize is NewConsoleBackend with a fixed geometry.
func NewConsoleBackendSize(out io.Writer, in io.Reader, rows, columns int) *ConsoleBackend {
	b := NewConsoleBackend(out, in)
	b.rows = rows
	b.columns = columns
	b.fixed = true
	return b
}

// Init puts the input terminal into raw mode and detects geometry.
func (b *ConsoleBackend) Init() error {
	if !b.fixed {
		b.rows, b.columns = 24, 80
		if b.hasOutFd && isTerminal(b.outFd) {
			rows, columns, err := terminalSize(b.outFd)
			if err == nil && rows > 0 && columns > 0 {
				b.rows, b.columns = rows, columns
			}
		}
	}

	if b.hasInFd && isTerminal(b.inFd) {
		raw, err := enterRawMode(b.inFd)
		if err != nil {
			return err
		}
		b.raw = raw
	}

	// The frame buffer is sized generously up front so a full-screen frame
	// never reallocates mid-refresh.
	b.esc = newEscBuilder(16 * b.rows * b.columns)

	b.esc.Reset()
	b.esc.EnterAltScreen()
	b.esc.ResetStyle()
	b.esc.ClearScreen()
	b.esc.MoveTo(1, 1)
	b.out.Write(b.esc.Bytes())

	return nil
}

// Fini restores the main screen and the previous terminal mode.
func (b *ConsoleBackend) Fini() {
	b.esc.Reset()
	b.esc.ResetStyle()
	b.esc.ClearScreen()
	b.esc.MoveTo(1, 1)
	b.esc.ExitAltScreen()
	b.out.Write(b.esc.Bytes())

	if b.raw != nil {
		leaveRawMode(b.inFd, b.raw)
		b.raw = nil
	}
}

// Size returns the geometry detected by Init.
func (b *ConsoleBackend) Size() (rows, columns int) {
	return b.rows, b.columns
}

// Monochrome always reports false.
func (b *ConsoleBackend) Monochrome() bool {
	return false
}

// Refresh transfers the whole virtual image in one write.
func (b *ConsoleBackend) Refresh(img *Buffer, cursor Position) {
	b.blit(img, cursor)
}

// Redraw is identical to Refresh for a bulk-transfer backend.
func (b *ConsoleBackend) Redraw(img *Buffer, cursor Position) {
	b.blit(img, cursor)
}

func (b *ConsoleBackend) blit(img *Buffer, cursor Position) {
	b.esc.Reset()
	b.esc.HideCursor()

	var last Attribute
	valid := false
	for row := 1; row <= b.rows; row++ {
		b.esc.MoveTo(row, 1)
		idx := (row - 1) * b.columns
		for column := 1; column <= b.columns; column++ {
			c := img.cells[idx]
			idx++
			if !valid || c.Attr != last {
				b.esc.SetAttribute(c.Attr)
				last = c.Attr
				valid = true
			}
			b.esc.WriteRune(glyphRune(c.Char))
		}
	}

	b.esc.MoveTo(cursor.Row, cursor.Column)
	b.esc.ShowCursor()
	b.out.Write(b.esc.Bytes())
}

// ClearPhysical blanks the display immediately.
func (b *ConsoleBackend) ClearPhysical() {
	b.esc.Reset()
	b.esc.ResetStyle()
	b.esc.ClearScreen()
	b.esc.MoveTo(1, 1)
	b.out.Write(b.esc.Bytes())
}

// Off reverts to the main screen and cooked mode.
func (b *ConsoleBackend) Off() {
	b.esc.Reset()
	b.esc.ResetStyle()
	b.esc.ExitAltScreen()
	b.out.Write(b.esc.Bytes())

	if b.raw != nil {
		leaveRawMode(b.inFd, b.raw)
		b.raw = nil
	}
}

// On reasserts raw mode and the alternate screen; the session follows with
// a redraw, which for this backend rebuilds the whole frame anyway.
func (b *ConsoleBackend) On() {
	if b.hasInFd && isTerminal(b.inFd) {
		if raw, err := enterRawMode(b.inFd); err == nil {
			b.raw = raw
		}
	}

	b.esc.Reset()
	b.esc.EnterAltScreen()
	b.esc.ResetStyle()
	b.esc.ClearScreen()
	b.out.Write(b.esc.Bytes())
}

package scr

import (
	"io"
	"os"
)

// AnsiBackend renders through ANSI escape sequences written to an ordinary
// stream. It needs no console API or terminal database, which makes it the
// most portable backend and the right choice for serial links; in exchange
// every update costs escape-sequence traffic, so it leans hardest on the
// diffing shadow image to keep writes proportional to what changed.
type AnsiBackend struct {
	out io.Writer
	in  io.Reader

	outFd    int
	inFd     int
	hasOutFd bool
	hasInFd  bool

	rows    int
	columns int
	fixed   bool // geometry was supplied, skip detection

	sh        *shadow
	esc       *escBuilder
	lastAttr  Attribute
	attrValid bool // lastAttr reflects what the terminal currently has

	raw *termState
}

var _ Backend = (*AnsiBackend)(nil)

// NewAnsiBackend returns an ANSI backend writing to out and reading keys
// from in, usually os.Stdout and os.Stdin. Geometry is detected at Init;
// when out is not a terminal the backend falls back to 24x80.
func NewAnsiBackend(out io.Writer, in io.Reader) *AnsiBackend {
	b := &AnsiBackend{out: out, in: in}
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

// NewAnsiBackendSize is NewAnsiBackend with a fixed geometry, for displays
// whose size cannot be queried (serial consoles, captured output).
func NewAnsiBackendSize(out io.Writer, in io.Reader, rows, columns int) *AnsiBackend {
	b := NewAnsiBackend(out, in)
	b.rows = rows
	b.columns = columns
	b.fixed = true
	return b
}

// Init puts the input terminal into raw mode, detects the display geometry,
// and switches to the alternate screen.
func (b *AnsiBackend) Init() error {
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

	b.sh = newShadow(b.rows, b.columns)
	b.esc = newEscBuilder(4096)
	b.attrValid = false

	b.esc.Reset()
	b.esc.EnterAltScreen()
	b.esc.ResetStyle()
	b.esc.ClearScreen()
	b.esc.MoveTo(1, 1)
	b.out.Write(b.esc.Bytes())

	return nil
}

// Fini restores the main screen and the previous terminal mode.
func (b *AnsiBackend) Fini() {
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
	b.sh = nil
}

// Size returns the geometry detected by Init.
func (b *AnsiBackend) Size() (rows, columns int) {
	return b.rows, b.columns
}

// Monochrome always reports false: a display that accepts ANSI escape
// sequences is assumed to honor the SGR color codes.
func (b *AnsiBackend) Monochrome() bool {
	return false
}

// Refresh writes only the cells that differ from the shadow image,
// re-emitting cursor motion only across discontinuities and SGR codes only
// when the attribute changes between consecutive writes. The whole update is
// flushed with a single Write.
func (b *AnsiBackend) Refresh(img *Buffer, cursor Position) {
	b.esc.Reset()
	b.sh.sync(img, b.moveTo, b.writeCell)
	b.sh.place(cursor, b.moveTo)
	b.flush()
}

// Redraw rewrites every cell from the virtual image.
func (b *AnsiBackend) Redraw(img *Buffer, cursor Position) {
	b.esc.Reset()
	b.attrValid = false
	b.sh.rewrite(img, b.moveTo, b.writeCell)
	b.sh.place(cursor, b.moveTo)
	b.flush()
}

// ClearPhysical blanks the display immediately and resets the shadow.
func (b *AnsiBackend) ClearPhysical() {
	b.esc.Reset()
	b.esc.ResetStyle()
	b.esc.ClearScreen()
	b.esc.MoveTo(1, 1)
	b.flush()

	b.sh.reset()
	b.attrValid = false
}

// Off reverts to the main screen and cooked mode so the host can use
// ordinary stream I/O.
func (b *AnsiBackend) Off() {
	b.esc.Reset()
	b.esc.ResetStyle()
	b.esc.ExitAltScreen()
	b.flush()

	if b.raw != nil {
		leaveRawMode(b.inFd, b.raw)
		b.raw = nil
	}
}

// On reasserts raw mode and the alternate screen after Off. Whatever the
// display shows now is untrusted, so the shadow is reset; the session
// follows On with a full redraw.
func (b *AnsiBackend) On() {
	if b.hasInFd && isTerminal(b.inFd) {
		if raw, err := enterRawMode(b.inFd); err == nil {
			b.raw = raw
		}
	}

	b.esc.Reset()
	b.esc.EnterAltScreen()
	b.esc.ResetStyle()
	b.esc.ClearScreen()
	b.flush()

	b.sh.reset()
	b.attrValid = false
}

func (b *AnsiBackend) moveTo(row, column int) {
	b.esc.MoveTo(row, column)
}

func (b *AnsiBackend) writeCell(c Cell) {
	if !b.attrValid || c.Attr != b.lastAttr {
		b.esc.SetAttribute(c.Attr)
		b.lastAttr = c.Attr
		b.attrValid = true
	}
	b.esc.WriteRune(glyphRune(c.Char))
}

func (b *AnsiBackend) flush() {
	if len(b.esc.Bytes()) > 0 {
		b.out.Write(b.esc.Bytes())
	}
}

package scr

import (
	"fmt"
	"io"
	"os"

	"github.com/pchapin/yexa/internal/debug"
)

// Screen is one display session: the virtual image, the cursor, the backend
// link, and the keyboard decoder. All drawing operations act on the virtual
// image only; nothing reaches the physical display until Refresh or Redraw.
//
// The lifecycle is reference counted so independent parts of a program can
// each bracket their screen use with Initialize and Terminate: only the first
// Initialize takes control of the display and only the matching outermost
// Terminate releases it.
type Screen struct {
	backend  Backend
	keys     KeyDecoder
	explicit KeyDecoder // decoder forced by option, overrides resolution

	out io.Writer
	in  io.Reader

	buf     *Buffer
	rows    int
	columns int
	mono    bool

	cursorRow    int
	cursorColumn int

	count        int // lifecycle reference count, zero means inactive
	asciiBoxes   bool
	monoOverride bool
	refreshOnKey bool
}

// New builds an inactive session. With no options the session drives an ANSI
// backend on standard output and input.
func New(opts ...Option) (*Screen, error) {
	s := &Screen{
		out:          os.Stdout,
		in:           os.Stdin,
		refreshOnKey: true,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("scr: applying option: %w", err)
		}
	}

	if s.backend == nil {
		s.backend = NewAnsiBackend(s.out, s.in)
	}
	return s, nil
}

// Active reports whether the session currently controls the display.
func (s *Screen) Active() bool {
	return s.count > 0
}

// Initialize takes control of the display. Nested calls only increment the
// reference count; the display is set up once, by the outermost call, and the
// geometry it detects is fixed for the rest of the session.
func (s *Screen) Initialize() error {
	if s.count > 0 {
		s.count++
		return nil
	}

	if err := s.backend.Init(); err != nil {
		return fmt.Errorf("scr: initializing backend: %w", err)
	}

	s.rows, s.columns = s.backend.Size()
	s.mono = s.backend.Monochrome() || s.monoOverride
	s.buf = newBuffer(s.rows, s.columns, s.mono)

	switch {
	case s.explicit != nil:
		s.keys = s.explicit
	default:
		if kd, ok := s.backend.(KeyDecoder); ok {
			s.keys = kd
		} else {
			s.keys = newEscDecoder(s.in)
		}
	}
	if err := s.keys.InitializeKeys(); err != nil {
		s.backend.Fini()
		s.buf = nil
		s.keys = nil
		s.rows, s.columns = 0, 0
		s.mono = false
		return fmt.Errorf("scr: initializing keyboard: %w", err)
	}

	s.count = 1
	s.cursorRow, s.cursorColumn = 1, 1
	s.ClearScreen()

	debug.Logf("screen initialized: %dx%d monochrome=%v", s.rows, s.columns, s.mono)
	return nil
}

// Terminate releases one reference. The outermost call clears the display and
// gives it back; calls on an inactive session are no-ops.
func (s *Screen) Terminate() {
	if s.count == 0 {
		return
	}
	if s.count > 1 {
		s.count--
		return
	}

	s.ClearScreen()
	s.keys.TerminateKeys()
	s.backend.Fini()

	s.count = 0
	s.buf = nil
	s.keys = nil
	s.rows, s.columns = 0, 0
	s.mono = false
	s.cursorRow, s.cursorColumn = 0, 0

	debug.Logf("screen terminated")
	debug.Close()
}

// NumberOfRows returns the display height. Zero when inactive.
func (s *Screen) NumberOfRows() int {
	return s.rows
}

// NumberOfColumns returns the display width. Zero when inactive.
func (s *Screen) NumberOfColumns() int {
	return s.columns
}

// IsMonochrome reports whether attributes are being reduced for a display
// without color support.
func (s *Screen) IsMonochrome() bool {
	return s.mono
}

// SetCursorPosition moves the virtual cursor, clamping out-of-range
// coordinates to the nearest edge. The physical cursor follows at the next
// Refresh.
func (s *Screen) SetCursorPosition(row, column int) {
	if s.count == 0 {
		return
	}

	r := NewRegion(row, column, 1, 1).clamp(s.rows, s.columns)
	s.cursorRow, s.cursorColumn = r.Row, r.Column
}

// CursorPosition returns the virtual cursor location.
func (s *Screen) CursorPosition() (row, column int) {
	return s.cursorRow, s.cursorColumn
}

// BoxCharacters returns the glyph set for one border style, reduced to the
// ASCII approximations when the session was configured for ASCII-only
// output.
func (s *Screen) BoxCharacters(t BoxType) BoxChars {
	if s.asciiBoxes {
		return asciiBoxCharacters(t)
	}
	return BoxCharacters(t)
}

// Read copies a region of the virtual image into dst as alternating
// character and attribute bytes. Fails when inactive or dst is too small.
func (s *Screen) Read(region Region, dst []byte) error {
	if s.count == 0 {
		return fmt.Errorf("scr: read on inactive screen")
	}
	return s.buf.Read(region, dst)
}

// Write copies alternating character and attribute bytes from src into a
// region of the virtual image. Fails when inactive or src is too small.
func (s *Screen) Write(region Region, src []byte) error {
	if s.count == 0 {
		return fmt.Errorf("scr: write on inactive screen")
	}
	return s.buf.Write(region, src)
}

// ReadText is like Read but transfers characters only.
func (s *Screen) ReadText(region Region, dst []byte) error {
	if s.count == 0 {
		return fmt.Errorf("scr: read on inactive screen")
	}
	return s.buf.ReadText(region, dst)
}

// WriteText is like Write but rewrites characters only, preserving each
// cell's attribute.
func (s *Screen) WriteText(region Region, src []byte) error {
	if s.count == 0 {
		return fmt.Errorf("scr: write on inactive screen")
	}
	return s.buf.WriteText(region, src)
}

// Print renders formatted text into one row of the virtual image, writing at
// most count characters and never past the right edge.
func (s *Screen) Print(row, column, count int, attr Attribute, format string, args ...any) {
	if s.count == 0 {
		return
	}
	s.buf.Print(row, column, count, attr, format, args...)
}

// PrintText is like Print but preserves existing attributes.
func (s *Screen) PrintText(row, column, count int, format string, args ...any) {
	if s.count == 0 {
		return
	}
	s.buf.PrintText(row, column, count, format, args...)
}

// Clear fills a region of the virtual image with blanks in attr.
func (s *Screen) Clear(region Region, attr Attribute) {
	if s.count == 0 {
		return
	}
	s.buf.Clear(region, attr)
}

// SetColor recolors a region of the virtual image without touching its text.
func (s *Screen) SetColor(region Region, attr Attribute) {
	if s.count == 0 {
		return
	}
	s.buf.SetColor(region, attr)
}

// Scroll shifts a region's rows and clears the vacated ones with attr.
func (s *Screen) Scroll(direction Direction, region Region, count int, attr Attribute) {
	if s.count == 0 {
		return
	}
	s.buf.Scroll(direction, region, count, attr)
}

// DrawBox draws a border around the inside edge of a region in the given
// style, leaving the region's interior untouched.
func (s *Screen) DrawBox(region Region, t BoxType, attr Attribute) {
	if s.count == 0 {
		return
	}

	region = region.clamp(s.rows, s.columns)
	if region.Width < 2 || region.Height < 2 {
		return
	}
	chars := s.BoxCharacters(t)
	attr = attr.convert(s.mono)

	top := s.buf.index(region.Row, region.Column)
	bottom := s.buf.index(region.Row+region.Height-1, region.Column)
	s.buf.cells[top] = Cell{Char: chars.UpperLeft, Attr: attr}
	s.buf.cells[bottom] = Cell{Char: chars.LowerLeft, Attr: attr}
	for i := 1; i < region.Width-1; i++ {
		s.buf.cells[top+i] = Cell{Char: chars.Horizontal, Attr: attr}
		s.buf.cells[bottom+i] = Cell{Char: chars.Horizontal, Attr: attr}
	}
	s.buf.cells[top+region.Width-1] = Cell{Char: chars.UpperRight, Attr: attr}
	s.buf.cells[bottom+region.Width-1] = Cell{Char: chars.LowerRight, Attr: attr}

	for row := region.Row + 1; row < region.Row+region.Height-1; row++ {
		left := s.buf.index(row, region.Column)
		s.buf.cells[left] = Cell{Char: chars.Vertical, Attr: attr}
		s.buf.cells[left+region.Width-1] = Cell{Char: chars.Vertical, Attr: attr}
	}
}

// Refresh reconciles the physical display with the virtual image, touching
// only what changed, and parks the physical cursor at the virtual position.
func (s *Screen) Refresh() {
	if s.count == 0 {
		return
	}
	s.backend.Refresh(s.buf, Position{Row: s.cursorRow, Column: s.cursorColumn})
}

// Redraw rewrites the entire physical display from the virtual image,
// recovering from anything that corrupted the display behind the session's
// back.
func (s *Screen) Redraw() {
	if s.count == 0 {
		return
	}
	s.backend.Redraw(s.buf, Position{Row: s.cursorRow, Column: s.cursorColumn})
}

// ClearScreen blanks the virtual image, homes the cursor, and clears the
// physical display immediately, without waiting for a Refresh.
func (s *Screen) ClearScreen() {
	if s.count == 0 {
		return
	}

	s.buf.reset()
	s.cursorRow, s.cursorColumn = 1, 1
	s.backend.ClearPhysical()
}

// Off suspends physical control of the display so the hosting process can
// fall back to ordinary stream I/O. The virtual image and session state
// survive untouched.
func (s *Screen) Off() {
	if s.count == 0 {
		return
	}
	s.backend.Off()
}

// On resumes control after Off and repaints the display from the preserved
// virtual image.
func (s *Screen) On() {
	if s.count == 0 {
		return
	}
	s.backend.On()
	s.Redraw()
}

// SetRefreshOnKey controls whether KeyWait refreshes the display before
// blocking. On by default: a program about to wait for input almost always
// wants its latest drawing visible.
func (s *Screen) SetRefreshOnKey(enabled bool) {
	s.refreshOnKey = enabled
}

// Key blocks until a keystroke is available and returns its code: plain
// ASCII for ordinary keys, the extended codes from key.go for special keys,
// -1 on input failure. Returns -1 when inactive.
func (s *Screen) Key() int {
	if s.count == 0 {
		return -1
	}
	return s.keys.Key()
}

// KeyWait refreshes the display (unless disabled with SetRefreshOnKey) and
// then blocks for a keystroke.
func (s *Screen) KeyWait() int {
	if s.count == 0 {
		return -1
	}
	if s.refreshOnKey {
		s.Refresh()
	}
	return s.keys.Key()
}

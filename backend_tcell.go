package scr

import (
	"github.com/gdamore/tcell/v2"
)

// TcellBackend renders through a tcell screen, which consults the terminal
// database and so adapts to displays whose escape dialect differs from plain
// ANSI. It keeps the same shadow-diff strategy as AnsiBackend but emits cell
// updates through SetContent instead of raw escapes, and it doubles as a
// KeyDecoder because tcell owns the input stream once initialized.
type TcellBackend struct {
	screen   tcell.Screen
	provided bool // screen was injected, used for simulation screens

	rows    int
	columns int
	mono    bool

	sh     *shadow
	curRow int
	curCol int

	// Color pairs in the classic curses layout: eight background blocks of
	// eight foreground slots. Attributes whose pair index falls outside
	// maxPairs fall back to pair zero.
	pairs    [64]tcell.Style
	maxPairs int
}

var (
	_ Backend    = (*TcellBackend)(nil)
	_ KeyDecoder = (*TcellBackend)(nil)
)

// NewTcellBackend returns a backend that allocates the real terminal screen
// at Init.
func NewTcellBackend() *TcellBackend {
	return &TcellBackend{}
}

// NewTcellBackendFor wraps an existing tcell screen, typically a
// tcell.SimulationScreen under test.
func NewTcellBackendFor(screen tcell.Screen) *TcellBackend {
	return &TcellBackend{screen: screen, provided: true}
}

// fgSlot orders the foreground colors within one background block. White
// leads so that pair zero is white on black, the terminal default.
var fgSlot = [8]int{
	White:   0,
	Blue:    1,
	Green:   2,
	Cyan:    3,
	Red:     4,
	Magenta: 5,
	Brown:   6,
	Black:   7,
}

// ibmToAnsi converts the IBM 3-bit color values to ANSI palette indices.
var ibmToAnsi = [8]int{0, 4, 2, 6, 1, 5, 3, 7}

// Init allocates and initializes the tcell screen and builds the pair table.
func (b *TcellBackend) Init() error {
	if b.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		b.screen = screen
	}

	if err := b.screen.Init(); err != nil {
		if !b.provided {
			b.screen = nil
		}
		return err
	}

	width, height := b.screen.Size()
	b.rows, b.columns = height, width
	b.mono = b.screen.Colors() == 0

	b.maxPairs = len(b.pairs)
	for bg := 0; bg < 8; bg++ {
		for fg := 0; fg < 8; fg++ {
			style := tcell.StyleDefault.
				Foreground(tcell.PaletteColor(ibmToAnsi[fg])).
				Background(tcell.PaletteColor(ibmToAnsi[bg]))
			b.pairs[bg*8+fgSlot[fg]] = style
		}
	}

	b.sh = newShadow(b.rows, b.columns)
	b.screen.Clear()

	return nil
}

// Fini releases the terminal.
func (b *TcellBackend) Fini() {
	b.screen.Fini()
	if !b.provided {
		b.screen = nil
	}
	b.sh = nil
}

// Size returns the geometry detected by Init.
func (b *TcellBackend) Size() (rows, columns int) {
	return b.rows, b.columns
}

// Monochrome reports whether the underlying terminal lacks color support.
func (b *TcellBackend) Monochrome() bool {
	return b.mono
}

// Refresh pushes only the changed cells through SetContent, then shows the
// accumulated update in one step.
func (b *TcellBackend) Refresh(img *Buffer, cursor Position) {
	b.sh.sync(img, b.moveTo, b.setCell)
	b.sh.place(cursor, b.moveTo)
	b.screen.ShowCursor(cursor.Column-1, cursor.Row-1)
	b.screen.Show()
}

// Redraw rewrites every cell and forces a full repaint.
func (b *TcellBackend) Redraw(img *Buffer, cursor Position) {
	b.sh.rewrite(img, b.moveTo, b.setCell)
	b.sh.place(cursor, b.moveTo)
	b.screen.ShowCursor(cursor.Column-1, cursor.Row-1)
	b.screen.Sync()
}

// ClearPhysical blanks the display immediately and resets the shadow.
func (b *TcellBackend) ClearPhysical() {
	b.screen.Clear()
	b.screen.ShowCursor(0, 0)
	b.screen.Show()
	b.sh.reset()
}

// Off suspends tcell, restoring the prior terminal state.
func (b *TcellBackend) Off() {
	b.screen.Suspend()
}

// On resumes tcell. Whatever the display shows now is untrusted, so the
// shadow is reset; the session follows On with a full redraw.
func (b *TcellBackend) On() {
	b.screen.Resume()
	b.sh.reset()
}

func (b *TcellBackend) moveTo(row, column int) {
	b.curRow, b.curCol = row, column
}

func (b *TcellBackend) setCell(c Cell) {
	b.screen.SetContent(b.curCol-1, b.curRow-1, glyphRune(c.Char), nil, b.style(c.Attr))
	b.curCol++
}

// style maps one attribute byte onto a tcell style. Color pairs come from
// the precomputed table; brightness and blink are applied per cell on top of
// the pair.
func (b *TcellBackend) style(a Attribute) tcell.Style {
	var style tcell.Style
	if b.mono {
		// Converted monochrome attributes encode emphasis in the
		// background field.
		style = tcell.StyleDefault.Reverse(a.Background() != Black)
	} else {
		idx := int(a.Background())*8 + fgSlot[a.Foreground()]
		if idx >= b.maxPairs {
			idx = 0
		}
		style = b.pairs[idx]
	}

	if a.HasBright() {
		style = style.Bold(true)
	}
	if a.HasBlink() {
		style = style.Blink(true)
	}
	return style
}

// InitializeKeys is satisfied by Init; tcell owns the input stream already.
func (b *TcellBackend) InitializeKeys() error {
	return nil
}

// TerminateKeys is satisfied by Fini.
func (b *TcellBackend) TerminateKeys() {}

// Key blocks on the tcell event queue until a key event arrives and
// translates it into the legacy code space. Returns -1 once the screen is
// finalized.
func (b *TcellBackend) Key() int {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return -1
		}
		if key, ok := ev.(*tcell.EventKey); ok {
			if code, ok := translateKeyEvent(key); ok {
				return code
			}
		}
	}
}

// navKeys maps tcell cursor pad keys to their plain codes.
var navKeys = map[tcell.Key]int{
	tcell.KeyUp:     KeyUp,
	tcell.KeyDown:   KeyDown,
	tcell.KeyLeft:   KeyLeft,
	tcell.KeyRight:  KeyRight,
	tcell.KeyHome:   KeyHome,
	tcell.KeyEnd:    KeyEnd,
	tcell.KeyPgUp:   KeyPgUp,
	tcell.KeyPgDn:   KeyPgDn,
	tcell.KeyInsert: KeyInsert,
	tcell.KeyDelete: KeyDelete,
}

func translateKeyEvent(ev *tcell.EventKey) (int, bool) {
	mod := ev.Modifiers()

	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		r := ev.Rune()
		if mod&tcell.ModAlt != 0 {
			if r >= 'A' && r <= 'Z' {
				r = r - 'A' + 'a'
			}
			if code, ok := altLetters[byte(r)]; ok {
				return code, true
			}
			if code, ok := altDigits[byte(r)]; ok {
				return code, true
			}
			return 0, false
		}
		if r < 256 {
			return int(r), true
		}
		return 0, false

	case k >= tcell.KeyF1 && k <= tcell.KeyF12:
		n := int(k - tcell.KeyF1)
		switch {
		case mod&tcell.ModShift != 0:
			return shiftFunctionKeys[n], true
		case mod&tcell.ModCtrl != 0:
			return ctrlFunctionKeys[n], true
		case mod&tcell.ModAlt != 0:
			return altFunctionKeys[n], true
		}
		return functionKeys[n], true

	case k == tcell.KeyEscape:
		return KeyEsc, true
	case k == tcell.KeyEnter:
		return KeyReturn, true
	case k == tcell.KeyTab:
		return KeyTab, true
	case k == tcell.KeyBackspace || k == tcell.KeyBackspace2:
		return KeyBackspace, true

	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		// tcell numbers these from 'A', not from the control codes.
		return int(k-tcell.KeyCtrlA) + 1, true

	default:
		if code, ok := navKeys[k]; ok {
			if mod&tcell.ModCtrl != 0 {
				return ctrlNavKeys[code], true
			}
			return code, true
		}
		return 0, false
	}
}

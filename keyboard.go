package scr

import (
	"bufio"
	"io"
)

// KeyDecoder turns raw terminal input into the integer key codes defined in
// key.go. The session calls InitializeKeys and TerminateKeys at the outermost
// lifecycle transitions; Key blocks until a complete keystroke is available.
type KeyDecoder interface {
	InitializeKeys() error
	TerminateKeys()
	Key() int
}

// escDecoder decodes the ANSI byte stream of a raw-mode terminal: CSI and
// SS3 sequences for special keys, ESC-prefixed letters for Alt combinations,
// everything else passed through as its ASCII value.
type escDecoder struct {
	in io.Reader
	r  *bufio.Reader
}

var _ KeyDecoder = (*escDecoder)(nil)

func newEscDecoder(in io.Reader) *escDecoder {
	return &escDecoder{in: in}
}

func (d *escDecoder) InitializeKeys() error {
	d.r = bufio.NewReader(d.in)
	return nil
}

func (d *escDecoder) TerminateKeys() {
	d.r = nil
}

// Key reads one keystroke. Input errors (including end of stream) come back
// as -1 so a caller loop can terminate.
func (d *escDecoder) Key() int {
	if d.r == nil {
		return -1
	}

	b, err := d.r.ReadByte()
	if err != nil {
		return -1
	}
	if b != 0x1b {
		return int(b)
	}

	// In raw mode an escape sequence arrives as one burst, so a lone ESC
	// with nothing buffered behind it is the Escape key itself.
	if d.r.Buffered() == 0 {
		return KeyEsc
	}

	b, err = d.r.ReadByte()
	if err != nil {
		return KeyEsc
	}

	switch {
	case b == '[':
		return d.readCSI()
	case b == 'O':
		return d.readSS3()
	case b >= 'a' && b <= 'z':
		return altLetters[b]
	case b >= 'A' && b <= 'Z':
		return altLetters[b-'A'+'a']
	case b >= '0' && b <= '9':
		return altDigits[b]
	default:
		return KeyEsc
	}
}

// readCSI consumes the remainder of a CSI sequence (parameters, then one
// final byte in 0x40..0x7e) and translates it.
func (d *escDecoder) readCSI() int {
	params := [4]int{}
	count := 0
	value := 0
	haveValue := false

	for {
		b, err := d.r.ReadByte()
		if err != nil {
			return KeyEsc
		}

		switch {
		case b >= '0' && b <= '9':
			value = value*10 + int(b-'0')
			haveValue = true
		case b == ';':
			if count < len(params) {
				params[count] = value
				count++
			}
			value = 0
			haveValue = false
		case b >= 0x40 && b <= 0x7e:
			if haveValue && count < len(params) {
				params[count] = value
				count++
			}
			return translateCSI(b, params[:count])
		default:
			return KeyEsc
		}
	}
}

// readSS3 handles the application-keypad encodings for F1 through F4 and
// Home/End.
func (d *escDecoder) readSS3() int {
	b, err := d.r.ReadByte()
	if err != nil {
		return KeyEsc
	}

	switch b {
	case 'P':
		return KeyF1
	case 'Q':
		return KeyF2
	case 'R':
		return KeyF3
	case 'S':
		return KeyF4
	case 'H':
		return KeyHome
	case 'F':
		return KeyEnd
	default:
		return KeyEsc
	}
}

// xterm modifier parameter values, offset by one from a bitmask of
// shift=1, alt=2, ctrl=4.
const (
	modShift = 2
	modAlt   = 3
	modCtrl  = 5
)

var functionKeys = [12]int{
	KeyF1, KeyF2, KeyF3, KeyF4, KeyF5, KeyF6,
	KeyF7, KeyF8, KeyF9, KeyF10, KeyF11, KeyF12,
}

var shiftFunctionKeys = [12]int{
	KeyShiftF1, KeyShiftF2, KeyShiftF3, KeyShiftF4, KeyShiftF5, KeyShiftF6,
	KeyShiftF7, KeyShiftF8, KeyShiftF9, KeyShiftF10, KeyShiftF11, KeyShiftF12,
}

var ctrlFunctionKeys = [12]int{
	KeyCtrlF1, KeyCtrlF2, KeyCtrlF3, KeyCtrlF4, KeyCtrlF5, KeyCtrlF6,
	KeyCtrlF7, KeyCtrlF8, KeyCtrlF9, KeyCtrlF10, KeyCtrlF11, KeyCtrlF12,
}

var altFunctionKeys = [12]int{
	KeyAltF1, KeyAltF2, KeyAltF3, KeyAltF4, KeyAltF5, KeyAltF6,
	KeyAltF7, KeyAltF8, KeyAltF9, KeyAltF10, KeyAltF11, KeyAltF12,
}

// ctrlNavKeys maps the plain cursor pad codes to their Ctrl variants.
var ctrlNavKeys = map[int]int{
	KeyHome:   KeyCtrlHome,
	KeyEnd:    KeyCtrlEnd,
	KeyPgUp:   KeyCtrlPgUp,
	KeyPgDn:   KeyCtrlPgDn,
	KeyLeft:   KeyCtrlLeft,
	KeyRight:  KeyCtrlRight,
	KeyUp:     KeyCtrlUp,
	KeyDown:   KeyCtrlDown,
	KeyInsert: KeyCtrlInsert,
	KeyDelete: KeyCtrlDelete,
}

// tildeKeys maps the first parameter of a CSI ~ sequence to a key code.
var tildeKeys = map[int]int{
	1: KeyHome, 2: KeyInsert, 3: KeyDelete,
	4: KeyEnd, 5: KeyPgUp, 6: KeyPgDn,
	11: KeyF1, 12: KeyF2, 13: KeyF3, 14: KeyF4, 15: KeyF5,
	17: KeyF6, 18: KeyF7, 19: KeyF8, 20: KeyF9, 21: KeyF10,
	23: KeyF11, 24: KeyF12,
}

// functionNumber inverts functionKeys.
func functionNumber(key int) int {
	for i, k := range functionKeys {
		if k == key {
			return i
		}
	}
	return -1
}

// translateCSI turns a completed CSI sequence into a key code. Unrecognized
// sequences degrade to KeyEsc rather than leaking sequence bytes to the
// caller as spurious keystrokes.
func translateCSI(final byte, params []int) int {
	mod := 1
	switch final {
	case 'A', 'B', 'C', 'D', 'H', 'F':
		if len(params) == 2 {
			mod = params[1]
		}

		var key int
		switch final {
		case 'A':
			key = KeyUp
		case 'B':
			key = KeyDown
		case 'C':
			key = KeyRight
		case 'D':
			key = KeyLeft
		case 'H':
			key = KeyHome
		case 'F':
			key = KeyEnd
		}
		if mod == modCtrl {
			return ctrlNavKeys[key]
		}
		return key

	case '~':
		if len(params) == 0 {
			return KeyEsc
		}
		if len(params) == 2 {
			mod = params[1]
		}

		key, ok := tildeKeys[params[0]]
		if !ok {
			return KeyEsc
		}

		if n := functionNumber(key); n >= 0 {
			switch mod {
			case modShift:
				return shiftFunctionKeys[n]
			case modCtrl:
				return ctrlFunctionKeys[n]
			case modAlt:
				return altFunctionKeys[n]
			}
			return key
		}
		if mod == modCtrl {
			return ctrlNavKeys[key]
		}
		return key

	default:
		return KeyEsc
	}
}

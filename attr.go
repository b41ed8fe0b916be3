// Package scr provides portable text-mode screen handling: applications
// write characters and color attributes into a virtual screen buffer and the
// library synchronizes that buffer to the physical terminal through one of
// several interchangeable backends.
package scr

// Attribute packs the color and effects of one screen cell into a single
// byte: three foreground color bits, three background color bits, one bright
// bit, and one blink bit. The values are the classic IBM PC BIOS attribute
// encoding and form the wire-level contract for any serialized screen dump.
type Attribute byte

// Foreground colors. Each color is a combination of the primitive red,
// green, and blue bits; for example Magenta is Red|Blue.
const (
	Black   Attribute = 0x00
	Blue    Attribute = 0x01
	Green   Attribute = 0x02
	Cyan    Attribute = 0x03 // Green|Blue
	Red     Attribute = 0x04
	Magenta Attribute = 0x05 // Red|Blue
	Brown   Attribute = 0x06 // Red|Green
	White   Attribute = 0x07 // Red|Green|Blue
)

// Background colors. These are the foreground values shifted left four bits.
const (
	RevBlack   Attribute = 0x00
	RevBlue    Attribute = 0x10
	RevGreen   Attribute = 0x20
	RevCyan    Attribute = 0x30
	RevRed     Attribute = 0x40
	RevMagenta Attribute = 0x50
	RevBrown   Attribute = 0x60
	RevWhite   Attribute = 0x70
)

// Effects.
const (
	Bright Attribute = 0x08 // Bold.
	Blink  Attribute = 0x80 // Not always supported.
)

// DefaultAttribute is the attribute used for cleared cells.
const DefaultAttribute = White | RevBlack

const (
	foregroundMask Attribute = 0x07
	backgroundMask Attribute = 0x70
)

// Foreground returns the three-bit foreground color field.
func (a Attribute) Foreground() Attribute {
	return a & foregroundMask
}

// Background returns the background color field shifted down into the
// foreground value range, so it compares directly against the color
// constants above.
func (a Attribute) Background() Attribute {
	return (a & backgroundMask) >> 4
}

// HasBright reports whether the bright (bold) effect bit is set.
func (a Attribute) HasBright() bool {
	return a&Bright != 0
}

// HasBlink reports whether the blink effect bit is set.
func (a Attribute) HasBlink() bool {
	return a&Blink != 0
}

// Reverse swaps the foreground and background color fields. The blink and
// bright bits are untouched, so Reverse is an involution.
func (a Attribute) Reverse() Attribute {
	fg := a & foregroundMask
	bg := (a & backgroundMask) >> 4

	a &^= foregroundMask | backgroundMask
	a |= fg << 4
	a |= bg

	return a
}

// convert adjusts an attribute so text stays visible on a monochrome
// display. If the background is black the foreground is forced to white;
// any colored background forces reverse video with a cleared foreground.
// On color displays the attribute is returned unchanged.
func (a Attribute) convert(monochrome bool) Attribute {
	if !monochrome {
		return a
	}

	if a&backgroundMask == RevBlack {
		return a | White
	}

	a |= RevWhite
	a &^= foregroundMask
	return a
}

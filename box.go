package scr

// BoxType selects one of the built-in border styles. The ordinal values
// index the glyph table, so the order here is load-bearing: reordering the
// constants is a breaking change for any saved screen content.
type BoxType int

const (
	// BoxDouble draws double-line borders.
	BoxDouble BoxType = iota
	// BoxSingle draws single-line borders.
	BoxSingle
	// BoxDarkGraphic draws a dark "hash" border.
	BoxDarkGraphic
	// BoxLightGraphic draws a light "hash" border.
	BoxLightGraphic
	// BoxSolid draws a solid block border.
	BoxSolid
	// BoxASCII draws borders from plain ASCII characters only.
	BoxASCII
	// BoxBlank draws borders made of spaces.
	BoxBlank
)

// BoxChars holds the eleven glyph codes used to draw one border style.
// The codes are from the legacy single-byte extended character set (CP437)
// and are a binary contract for captured screen dumps; backends translate
// them to native glyphs on output.
type BoxChars struct {
	Horizontal byte // Horizontal line.
	Vertical   byte // Vertical line.
	UpperLeft  byte // Upper left corner.
	UpperRight byte // Upper right corner.
	LowerLeft  byte // Lower left corner.
	LowerRight byte // Lower right corner.
	LeftStop   byte // Vertical line meeting a horizontal line from the left.
	RightStop  byte // Vertical line meeting a horizontal line from the right.
	TopStop    byte // Horizontal line with a vertical line above.
	BottomStop byte // Horizontal line with a vertical line below.
	Cross      byte // Intersection of two lines.
}

// boxDefinitions is indexed by BoxType ordinal. If these codes ever change,
// boxRunes below must be updated to match.
var boxDefinitions = [...]BoxChars{
	{205, 186, 201, 187, 200, 188, 181, 198, 208, 210, 206}, // Double lines.
	{196, 179, 218, 191, 192, 217, 180, 195, 193, 194, 197}, // Single lines.
	{177, 177, 177, 177, 177, 177, 177, 177, 177, 177, 177}, // Dark graphic.
	{176, 176, 176, 176, 176, 176, 176, 176, 176, 176, 176}, // Light graphic.
	{219, 219, 219, 219, 219, 219, 219, 219, 219, 219, 219}, // Solid.
	{45, 124, 43, 43, 43, 43, 43, 43, 43, 43, 43},           // ASCII.
	{32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32},            // Blank.
}

// BoxCharacters returns the glyph set for a box style. The result is a
// copy; mutating it has no effect on other callers. Styles outside the
// valid range fall back to BoxASCII.
func BoxCharacters(t BoxType) BoxChars {
	if t < BoxDouble || t > BoxBlank {
		t = BoxASCII
	}
	return boxDefinitions[t]
}

// asciiBoxCharacters returns the glyph set for a style with every style
// except BoxBlank coerced to plain ASCII.
func asciiBoxCharacters(t BoxType) BoxChars {
	if t == BoxBlank {
		return boxDefinitions[BoxBlank]
	}
	return boxDefinitions[BoxASCII]
}

// boxRunes maps the legacy box-drawing codes to the Unicode box-drawing
// runes backends emit. Bytes absent from this table pass through to the
// display unchanged.
var boxRunes = map[byte]rune{
	// Double line.
	205: '═', 186: '║',
	201: '╔', 187: '╗', 200: '╚', 188: '╝',
	181: '╡', 198: '╞', 208: '╨', 210: '╥', 206: '╬',

	// Single line.
	196: '─', 179: '│',
	218: '┌', 191: '┐', 192: '└', 217: '┘',
	180: '┤', 195: '├', 193: '┴', 194: '┬', 197: '┼',

	// Graphic fills.
	176: '░', 177: '▒', 219: '█',
}

// glyphRune translates one cell character for physical output. Mapped box
// codes become their Unicode equivalents; other bytes above the control
// range pass through as Latin-1; control bytes render as spaces so they
// cannot corrupt the display.
func glyphRune(b byte) rune {
	if r, ok := boxRunes[b]; ok {
		return r
	}
	if b < 0x20 {
		return ' '
	}
	return rune(b)
}

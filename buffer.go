package scr

import (
	"errors"
	"fmt"
)

// Cell is one character position in a screen image: a single-byte character
// plus its Attribute.
type Cell struct {
	Char byte
	Attr Attribute
}

// blankCell is what cleared cells hold.
var blankCell = Cell{Char: ' ', Attr: DefaultAttribute}

// ErrBufferSize is returned by the bulk transfer operations when the caller
// supplied a buffer smaller than the region requires.
var ErrBufferSize = errors.New("scr: undersized transfer buffer")

// Direction selects which way Scroll moves a region's content.
type Direction int

const (
	// Up moves content toward lower row numbers.
	Up Direction = iota
	// Down moves content toward higher row numbers.
	Down
)

// Buffer is the virtual screen image: a fixed-size, row-major grid of cells.
// All region arguments are clamped to the buffer bounds before use, so
// operations never fail on out-of-range coordinates. Nothing reaches the
// physical display until the owning session refreshes.
type Buffer struct {
	cells      []Cell
	rows       int
	columns    int
	monochrome bool // attributes are converted for visibility on write
}

// newBuffer allocates a rows x columns image with every cell blank.
func newBuffer(rows, columns int, monochrome bool) *Buffer {
	if rows < 1 {
		rows = 1
	}
	if columns < 1 {
		columns = 1
	}

	cells := make([]Cell, rows*columns)
	for i := range cells {
		cells[i] = blankCell
	}

	return &Buffer{
		cells:      cells,
		rows:       rows,
		columns:    columns,
		monochrome: monochrome,
	}
}

// Rows returns the buffer height in rows.
func (b *Buffer) Rows() int {
	return b.rows
}

// Columns returns the buffer width in columns.
func (b *Buffer) Columns() int {
	return b.columns
}

// index converts 1-indexed coordinates to a flat cell index. The caller is
// responsible for passing clamped coordinates.
func (b *Buffer) index(row, column int) int {
	return (row-1)*b.columns + (column - 1)
}

// CellAt returns the cell at the given 1-indexed position. Out-of-range
// positions are clamped to the nearest edge.
func (b *Buffer) CellAt(row, column int) Cell {
	r := NewRegion(row, column, 1, 1).clamp(b.rows, b.columns)
	return b.cells[b.index(r.Row, r.Column)]
}

// reset fills the whole image with blank cells.
func (b *Buffer) reset() {
	for i := range b.cells {
		b.cells[i] = blankCell
	}
}

// Read copies a region out of the image into dst as alternating character
// and attribute bytes, row by row. dst must hold at least 2*width*height
// bytes for the clamped region.
func (b *Buffer) Read(region Region, dst []byte) error {
	region = region.clamp(b.rows, b.columns)
	if len(dst) < 2*region.Width*region.Height {
		return fmt.Errorf("scr: read needs %d bytes, have %d: %w",
			2*region.Width*region.Height, len(dst), ErrBufferSize)
	}

	pos := 0
	for row := region.Row; row < region.Row+region.Height; row++ {
		idx := b.index(row, region.Column)
		for i := 0; i < region.Width; i++ {
			dst[pos] = b.cells[idx+i].Char
			dst[pos+1] = byte(b.cells[idx+i].Attr)
			pos += 2
		}
	}
	return nil
}

// Write copies alternating character and attribute bytes from src into a
// region of the image. src must hold at least 2*width*height bytes for the
// clamped region.
func (b *Buffer) Write(region Region, src []byte) error {
	region = region.clamp(b.rows, b.columns)
	if len(src) < 2*region.Width*region.Height {
		return fmt.Errorf("scr: write needs %d bytes, have %d: %w",
			2*region.Width*region.Height, len(src), ErrBufferSize)
	}

	pos := 0
	for row := region.Row; row < region.Row+region.Height; row++ {
		idx := b.index(row, region.Column)
		for i := 0; i < region.Width; i++ {
			b.cells[idx+i].Char = src[pos]
			b.cells[idx+i].Attr = Attribute(src[pos+1])
			pos += 2
		}
	}
	return nil
}

// ReadText is like Read but copies only the characters. dst must hold at
// least width*height bytes for the clamped region.
func (b *Buffer) ReadText(region Region, dst []byte) error {
	region = region.clamp(b.rows, b.columns)
	if len(dst) < region.Width*region.Height {
		return fmt.Errorf("scr: read needs %d bytes, have %d: %w",
			region.Width*region.Height, len(dst), ErrBufferSize)
	}

	pos := 0
	for row := region.Row; row < region.Row+region.Height; row++ {
		idx := b.index(row, region.Column)
		for i := 0; i < region.Width; i++ {
			dst[pos] = b.cells[idx+i].Char
			pos++
		}
	}
	return nil
}

// WriteText is like Write but rewrites only the characters, leaving the
// attribute of every cell untouched. src must hold at least width*height
// bytes for the clamped region.
func (b *Buffer) WriteText(region Region, src []byte) error {
	region = region.clamp(b.rows, b.columns)
	if len(src) < region.Width*region.Height {
		return fmt.Errorf("scr: write needs %d bytes, have %d: %w",
			region.Width*region.Height, len(src), ErrBufferSize)
	}

	pos := 0
	for row := region.Row; row < region.Row+region.Height; row++ {
		idx := b.index(row, region.Column)
		for i := 0; i < region.Width; i++ {
			b.cells[idx+i].Char = src[pos]
			pos++
		}
	}
	return nil
}

// Print renders formatted text into a single row starting at (row, column),
// rewriting both characters and attributes. At most count characters are
// written, clamped against the right screen edge; the text is truncated at
// the first NUL byte.
func (b *Buffer) Print(row, column, count int, attr Attribute, format string, args ...any) {
	region := NewRegion(row, column, count, 1).clamp(b.rows, b.columns)
	attr = attr.convert(b.monochrome)

	text := fmt.Sprintf(format, args...)
	idx := b.index(region.Row, region.Column)
	for i := 0; i < len(text) && i < region.Width; i++ {
		if text[i] == 0 {
			break
		}
		b.cells[idx+i] = Cell{Char: text[i], Attr: attr}
	}
}

// PrintText is like Print but preserves whatever attribute already occupies
// each cell.
func (b *Buffer) PrintText(row, column, count int, format string, args ...any) {
	region := NewRegion(row, column, count, 1).clamp(b.rows, b.columns)

	text := fmt.Sprintf(format, args...)
	idx := b.index(region.Row, region.Column)
	for i := 0; i < len(text) && i < region.Width; i++ {
		if text[i] == 0 {
			break
		}
		b.cells[idx+i].Char = text[i]
	}
}

// Clear fills a region with spaces in the given attribute.
func (b *Buffer) Clear(region Region, attr Attribute) {
	region = region.clamp(b.rows, b.columns)
	attr = attr.convert(b.monochrome)

	for row := region.Row; row < region.Row+region.Height; row++ {
		idx := b.index(row, region.Column)
		for i := 0; i < region.Width; i++ {
			b.cells[idx+i] = Cell{Char: ' ', Attr: attr}
		}
	}
}

// SetColor rewrites the attribute of every cell in a region, leaving the
// characters untouched.
func (b *Buffer) SetColor(region Region, attr Attribute) {
	region = region.clamp(b.rows, b.columns)
	attr = attr.convert(b.monochrome)

	for row := region.Row; row < region.Row+region.Height; row++ {
		idx := b.index(row, region.Column)
		for i := 0; i < region.Width; i++ {
			b.cells[idx+i].Attr = attr
		}
	}
}

// Scroll shifts a region's content by count rows in the given direction and
// clears the vacated rows with attr. Up means the content moves toward the
// top of the region. Scrolling by the region height or more clears the whole
// region; a zero or negative count is a no-op.
func (b *Buffer) Scroll(direction Direction, region Region, count int, attr Attribute) {
	if count <= 0 {
		return
	}
	region = region.clamp(b.rows, b.columns)

	if count >= region.Height {
		b.Clear(region, attr)
		return
	}

	// The copy must start at the leading edge so overlapping source and
	// destination rows inside the same image cannot corrupt each other:
	// top-to-bottom when scrolling up, bottom-to-top when scrolling down.
	if direction == Up {
		for row := region.Row; row < region.Row+region.Height-count; row++ {
			dst := b.index(row, region.Column)
			src := b.index(row+count, region.Column)
			copy(b.cells[dst:dst+region.Width], b.cells[src:src+region.Width])
		}
		b.Clear(NewRegion(region.Row+region.Height-count, region.Column, region.Width, count), attr)
	} else {
		for row := region.Row + region.Height - 1; row >= region.Row+count; row-- {
			dst := b.index(row, region.Column)
			src := b.index(row-count, region.Column)
			copy(b.cells[dst:dst+region.Width], b.cells[src:src+region.Width])
		}
		b.Clear(NewRegion(region.Row, region.Column, region.Width, count), attr)
	}
}

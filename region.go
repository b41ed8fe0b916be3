package scr

import "fmt"

// Region describes a rectangular area of the screen. Coordinates are
// 1-indexed from the upper left corner; the size is given as width in
// columns and height in rows.
type Region struct {
	Row    int
	Column int
	Width  int
	Height int
}

// NewRegion returns a Region with the given corner and size.
func NewRegion(row, column, width, height int) Region {
	return Region{Row: row, Column: column, Width: width, Height: height}
}

// BadRegionError reports a region that overlaps the screen's boundaries or
// has a non-positive size. It carries the offending region for diagnostics.
type BadRegionError struct {
	Region Region
}

func (e *BadRegionError) Error() string {
	r := e.Region
	return fmt.Sprintf("scr: bad region (row=%d, column=%d, width=%d, height=%d)",
		r.Row, r.Column, r.Width, r.Height)
}

// clamp forces the region to be contained on a rows x columns screen. The
// corner is pulled in bounds and the size is restricted so the region does
// not overlap the screen's edges. Clamping is idempotent.
func (r Region) clamp(rows, columns int) Region {
	if r.Row < 1 {
		r.Row = 1
	}
	if r.Row > rows {
		r.Row = rows
	}
	if r.Column < 1 {
		r.Column = 1
	}
	if r.Column > columns {
		r.Column = columns
	}
	if r.Height <= 0 {
		r.Height = 1
	}
	if r.Width <= 0 {
		r.Width = 1
	}
	if r.Row+r.Height-1 > rows {
		r.Height = rows - r.Row + 1
	}
	if r.Column+r.Width-1 > columns {
		r.Width = columns - r.Column + 1
	}
	return r
}

// Validate reports whether the region already satisfies the bounds invariant
// for a rows x columns screen, without clamping. Callers that want a hard
// error instead of silent clamping use this before a buffer operation.
func (r Region) Validate(rows, columns int) error {
	switch {
	case r.Row < 1 || r.Row > rows,
		r.Column < 1 || r.Column > columns,
		r.Width < 1 || r.Height < 1,
		r.Row+r.Height-1 > rows,
		r.Column+r.Width-1 > columns:
		return &BadRegionError{Region: r}
	}
	return nil
}

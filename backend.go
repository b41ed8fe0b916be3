package scr

// Position is a 1-indexed cursor location on the screen.
type Position struct {
	Row    int
	Column int
}

// Backend owns the link to one physical display. Exactly one backend is
// constructed into a session; there is no runtime switching. Implementations
// differ in how glyphs and colors reach the display and in whether they keep
// a physical shadow image for diffing, but all honor the same contract:
// Refresh and Redraw leave the physical display equal to the virtual image
// and the physical cursor at the given position.
type Backend interface {
	// Init takes control of the display: terminal mode setup and geometry
	// detection. On failure no resources may be left allocated.
	Init() error

	// Fini releases the display and restores the prior terminal mode.
	Fini()

	// Size returns the detected geometry. Valid only after Init.
	Size() (rows, columns int)

	// Monochrome reports whether the display lacks color support.
	Monochrome() bool

	// Refresh reconciles the physical display with the virtual image,
	// touching as few cells as the backend's strategy allows, then places
	// the physical cursor at cursor.
	Refresh(img *Buffer, cursor Position)

	// Redraw unconditionally rewrites every cell from the virtual image,
	// then places the physical cursor at cursor.
	Redraw(img *Buffer, cursor Position)

	// ClearPhysical blanks the physical display immediately and resets any
	// physical shadow state to blank cells with the cursor at (1,1). The
	// caller is responsible for resetting the virtual image to match.
	ClearPhysical()

	// Off suspends control of the display so the hosting process can fall
	// back to ordinary stream I/O. Only On may be called afterwards.
	Off()

	// On reasserts control after Off. The caller forces a full redraw.
	On()
}

// shadow is the physical image kept by diffing backends: a record of what
// has actually been written to the display plus the real cursor position.
// Its sync walk is the core cost-saving algorithm: work is proportional to
// the number of changed cells plus cursor discontinuities, not screen area.
type shadow struct {
	cells   []Cell
	rows    int
	columns int
	row     int // physical cursor
	column  int
}

func newShadow(rows, columns int) *shadow {
	sh := &shadow{
		cells:   make([]Cell, rows*columns),
		rows:    rows,
		columns: columns,
	}
	sh.reset()
	return sh
}

// reset records a blanked display with the cursor home.
func (sh *shadow) reset() {
	for i := range sh.cells {
		sh.cells[i] = blankCell
	}
	sh.row = 1
	sh.column = 1
}

// sync reconciles the physical image with the virtual one. For every
// differing cell it calls move only when the physical cursor is not already
// there (consecutive changed cells on a row ride the display's natural
// left-to-right auto-advance), then calls write and records the cell as
// written. After sync the shadow equals img exactly.
func (sh *shadow) sync(img *Buffer, move func(row, column int), write func(Cell)) {
	for row := 1; row <= sh.rows; row++ {
		for column := 1; column <= sh.columns; column++ {
			idx := (row-1)*sh.columns + (column - 1)
			want := img.cells[idx]
			if sh.cells[idx] == want {
				continue
			}

			if row != sh.row || column != sh.column {
				move(row, column)
				sh.row = row
				sh.column = column
			}

			write(want)
			sh.column++
			sh.cells[idx] = want
		}
	}
}

// rewrite unconditionally emits every cell row by row, leaving the shadow
// equal to img. move is called once per row.
func (sh *shadow) rewrite(img *Buffer, move func(row, column int), write func(Cell)) {
	for row := 1; row <= sh.rows; row++ {
		move(row, 1)
		idx := (row - 1) * sh.columns
		for column := 1; column <= sh.columns; column++ {
			write(img.cells[idx])
			sh.cells[idx] = img.cells[idx]
			idx++
		}
		sh.row = row
		sh.column = sh.columns + 1
	}
}

// place parks the physical cursor, skipping the move when it is already in
// position.
func (sh *shadow) place(cursor Position, move func(row, column int)) {
	if sh.row != cursor.Row || sh.column != cursor.Column {
		move(cursor.Row, cursor.Column)
	}
	sh.row = cursor.Row
	sh.column = cursor.Column
}

package scr

import "strings"

// MockBackend is a mock implementation of Backend for testing. It captures
// the virtual image handed to Refresh and Redraw and counts lifecycle calls
// for verification.
type MockBackend struct {
	rows       int
	columns    int
	monochrome bool

	cells  []Cell
	cursor Position

	initErr error

	// Transition counters for testing lifecycle behavior
	initCount  int
	finiCount  int
	clearCount int
	refreshes  int
	redraws    int
	offCount   int
	onCount    int
	suspended  bool
}

// Ensure MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// NewMockBackend creates a new mock backend with the given geometry.
func NewMockBackend(rows, columns int) *MockBackend {
	return &MockBackend{
		rows:    rows,
		columns: columns,
	}
}

// SetMonochrome configures the mock to report a colorless display.
func (m *MockBackend) SetMonochrome(mono bool) {
	m.monochrome = mono
}

// FailInit makes the next Init return err.
func (m *MockBackend) FailInit(err error) {
	m.initErr = err
}

// Init allocates the captured physical image.
func (m *MockBackend) Init() error {
	if m.initErr != nil {
		return m.initErr
	}

	m.initCount++
	m.cells = make([]Cell, m.rows*m.columns)
	for i := range m.cells {
		m.cells[i] = blankCell
	}
	m.cursor = Position{Row: 1, Column: 1}
	return nil
}

// Fini releases the captured image.
func (m *MockBackend) Fini() {
	m.finiCount++
	m.cells = nil
}

// Size returns the configured geometry.
func (m *MockBackend) Size() (rows, columns int) {
	return m.rows, m.columns
}

// Monochrome reports the configured color support.
func (m *MockBackend) Monochrome() bool {
	return m.monochrome
}

// Refresh copies the virtual image into the captured one.
func (m *MockBackend) Refresh(img *Buffer, cursor Position) {
	m.refreshes++
	copy(m.cells, img.cells)
	m.cursor = cursor
}

// Redraw copies the virtual image into the captured one.
func (m *MockBackend) Redraw(img *Buffer, cursor Position) {
	m.redraws++
	copy(m.cells, img.cells)
	m.cursor = cursor
}

// ClearPhysical blanks the captured image.
func (m *MockBackend) ClearPhysical() {
	m.clearCount++
	for i := range m.cells {
		m.cells[i] = blankCell
	}
	m.cursor = Position{Row: 1, Column: 1}
}

// Off records a suspension.
func (m *MockBackend) Off() {
	m.offCount++
	m.suspended = true
}

// On records a resumption.
func (m *MockBackend) On() {
	m.onCount++
	m.suspended = false
}

// --- Test helper methods ---

// CellAt returns the captured cell at the given 1-indexed position.
// Returns a zero Cell if out of bounds.
func (m *MockBackend) CellAt(row, column int) Cell {
	if row < 1 || row > m.rows || column < 1 || column > m.columns {
		return Cell{}
	}
	return m.cells[(row-1)*m.columns+(column-1)]
}

// Cursor returns the last cursor position handed to Refresh or Redraw.
func (m *MockBackend) Cursor() Position {
	return m.cursor
}

// String renders the captured image to a string for snapshot testing.
// Each row is separated by a newline.
func (m *MockBackend) String() string {
	var sb strings.Builder
	for row := 0; row < m.rows; row++ {
		for column := 0; column < m.columns; column++ {
			sb.WriteRune(glyphRune(m.cells[row*m.columns+column].Char))
		}
		if row < m.rows-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// RowText returns one captured row with trailing spaces removed.
func (m *MockBackend) RowText(row int) string {
	if row < 1 || row > m.rows {
		return ""
	}
	var sb strings.Builder
	idx := (row - 1) * m.columns
	for column := 0; column < m.columns; column++ {
		sb.WriteByte(m.cells[idx+column].Char)
	}
	return strings.TrimRight(sb.String(), " ")
}

// InitCount returns the number of times Init succeeded.
func (m *MockBackend) InitCount() int {
	return m.initCount
}

// FiniCount returns the number of times Fini was called.
func (m *MockBackend) FiniCount() int {
	return m.finiCount
}

// ClearCount returns the number of times ClearPhysical was called.
func (m *MockBackend) ClearCount() int {
	return m.clearCount
}

// RefreshCount returns the number of times Refresh was called.
func (m *MockBackend) RefreshCount() int {
	return m.refreshes
}

// RedrawCount returns the number of times Redraw was called.
func (m *MockBackend) RedrawCount() int {
	return m.redraws
}

// OffCount returns the number of times Off was called.
func (m *MockBackend) OffCount() int {
	return m.offCount
}

// OnCount returns the number of times On was called.
func (m *MockBackend) OnCount() int {
	return m.onCount
}

// IsSuspended reports whether Off was called without a matching On.
func (m *MockBackend) IsSuspended() bool {
	return m.suspended
}

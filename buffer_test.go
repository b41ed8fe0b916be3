package scr

import (
	"errors"
	"strings"
	"testing"
)

// bufferText renders one row of a buffer as a string for assertions.
func bufferText(t *testing.T, b *Buffer, row int) string {
	t.Helper()
	var sb strings.Builder
	for column := 1; column <= b.Columns(); column++ {
		sb.WriteByte(b.CellAt(row, column).Char)
	}
	return sb.String()
}

func TestNewBuffer(t *testing.T) {
	b := newBuffer(5, 10, false)

	if b.Rows() != 5 || b.Columns() != 10 {
		t.Fatalf("size = %dx%d, want 5x10", b.Rows(), b.Columns())
	}
	for row := 1; row <= 5; row++ {
		for column := 1; column <= 10; column++ {
			if got := b.CellAt(row, column); got != blankCell {
				t.Fatalf("cell (%d,%d) = %+v, want blank", row, column, got)
			}
		}
	}
}

func TestNewBufferMinimumSize(t *testing.T) {
	b := newBuffer(0, -4, false)
	if b.Rows() != 1 || b.Columns() != 1 {
		t.Fatalf("size = %dx%d, want 1x1", b.Rows(), b.Columns())
	}
}

func TestBufferPrint(t *testing.T) {
	tests := map[string]struct {
		row, column, count int
		format             string
		args               []any
		wantRow            int
		want               string
	}{
		"plain text": {
			row: 2, column: 3, count: 20,
			format:  "hello",
			wantRow: 2,
			want:    "  hello   ",
		},
		"formatted": {
			row: 1, column: 1, count: 20,
			format:  "%d%%",
			args:    []any{42},
			wantRow: 1,
			want:    "42%       ",
		},
		"count truncates": {
			row: 1, column: 1, count: 3,
			format:  "truncated",
			wantRow: 1,
			want:    "tru       ",
		},
		"right edge truncates": {
			row: 1, column: 8, count: 20,
			format:  "overflow",
			wantRow: 1,
			want:    "       ove",
		},
		"corner is clamped in": {
			row: -3, column: 0, count: 20,
			format:  "top",
			wantRow: 1,
			want:    "top       ",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := newBuffer(4, 10, false)
			b.Print(tt.row, tt.column, tt.count, DefaultAttribute, tt.format, tt.args...)

			if got := bufferText(t, b, tt.wantRow); got != tt.want {
				t.Errorf("row %d = %q, want %q", tt.wantRow, got, tt.want)
			}
		})
	}
}

// Data routed through a "%s" format keeps its percent signs literal.
func TestBufferPrintPercentInData(t *testing.T) {
	b := newBuffer(1, 10, false)
	b.Print(1, 1, 10, DefaultAttribute, "%s", "50% done")

	if got := bufferText(t, b, 1); got != "50% done  " {
		t.Errorf("row 1 = %q, want %q", got, "50% done  ")
	}
}

func TestBufferPrintStopsAtNul(t *testing.T) {
	b := newBuffer(1, 10, false)
	b.Print(1, 1, 10, DefaultAttribute, "ab\x00cd")

	if got := bufferText(t, b, 1); got != "ab        " {
		t.Errorf("row 1 = %q, want text cut at the NUL byte", got)
	}
}

func TestBufferPrintSetsAttributes(t *testing.T) {
	b := newBuffer(1, 10, false)
	attr := Green | RevBlue
	b.Print(1, 1, 10, attr, "hi")

	if got := b.CellAt(1, 1).Attr; got != attr {
		t.Errorf("printed attribute = %#x, want %#x", got, attr)
	}
	if got := b.CellAt(1, 5).Attr; got != DefaultAttribute {
		t.Errorf("untouched cell attribute = %#x, want default", got)
	}
}

func TestBufferPrintTextPreservesAttributes(t *testing.T) {
	b := newBuffer(1, 10, false)
	attr := Red | RevWhite
	b.Clear(NewRegion(1, 1, 10, 1), attr)

	b.PrintText(1, 1, 10, "text")

	if got := bufferText(t, b, 1); got != "text      " {
		t.Errorf("row 1 = %q, want %q", got, "text      ")
	}
	if got := b.CellAt(1, 2).Attr; got != attr {
		t.Errorf("attribute = %#x, want %#x untouched", got, attr)
	}
}

// Monochrome buffers convert attributes on every write path that takes one.
func TestBufferMonochromeConversion(t *testing.T) {
	b := newBuffer(2, 10, true)

	b.Print(1, 1, 10, Green|RevBlue, "x")
	if got := b.CellAt(1, 1).Attr; got != RevWhite {
		t.Errorf("Print attribute = %#x, want reverse video", got)
	}

	b.Clear(NewRegion(2, 1, 10, 1), Blue|RevBlack)
	if got := b.CellAt(2, 1).Attr; got != White {
		t.Errorf("Clear attribute = %#x, want forced white on black", got)
	}
}

func TestBufferReadWriteRoundTrip(t *testing.T) {
	b := newBuffer(4, 10, false)
	region := NewRegion(2, 3, 4, 2)

	src := []byte{
		'a', byte(Red), 'b', byte(Green), 'c', byte(Blue), 'd', byte(Cyan),
		'e', byte(Red | RevWhite), 'f', 0x0F, 'g', 0x70, 'h', byte(DefaultAttribute),
	}
	if err := b.Write(region, src); err != nil {
		t.Fatalf("Write: %v", err)
	}

	dst := make([]byte, len(src))
	if err := b.Read(region, dst); err != nil {
		t.Fatalf("Read: %v", err)
	}

	if string(dst) != string(src) {
		t.Errorf("round trip = %v, want %v", dst, src)
	}
	if got := b.CellAt(2, 3); got.Char != 'a' || got.Attr != Red {
		t.Errorf("cell (2,3) = %+v, want 'a' in red", got)
	}
}

func TestBufferTextRoundTrip(t *testing.T) {
	b := newBuffer(3, 5, false)
	region := NewRegion(1, 1, 5, 2)
	attr := Cyan | RevBlue
	b.Clear(NewRegion(1, 1, 5, 3), attr)

	if err := b.WriteText(region, []byte("helloworld")); err != nil {
		t.Fatalf("WriteText: %v", err)
	}

	dst := make([]byte, 10)
	if err := b.ReadText(region, dst); err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	if string(dst) != "helloworld" {
		t.Errorf("ReadText = %q, want %q", dst, "helloworld")
	}

	// WriteText must not have disturbed the attributes underneath.
	if got := b.CellAt(2, 5).Attr; got != attr {
		t.Errorf("attribute = %#x, want %#x untouched", got, attr)
	}
}

func TestBufferTransferSizeChecks(t *testing.T) {
	b := newBuffer(4, 10, false)
	region := NewRegion(1, 1, 4, 2)

	tests := map[string]func() error{
		"read":       func() error { return b.Read(region, make([]byte, 15)) },
		"write":      func() error { return b.Write(region, make([]byte, 15)) },
		"read text":  func() error { return b.ReadText(region, make([]byte, 7)) },
		"write text": func() error { return b.WriteText(region, make([]byte, 7)) },
	}

	for name, op := range tests {
		t.Run(name, func(t *testing.T) {
			if err := op(); !errors.Is(err, ErrBufferSize) {
				t.Errorf("error = %v, want ErrBufferSize", err)
			}
		})
	}
}

func TestBufferClear(t *testing.T) {
	b := newBuffer(3, 10, false)
	b.Print(1, 1, 10, DefaultAttribute, "aaaaaaaaaa")
	b.Print(2, 1, 10, DefaultAttribute, "bbbbbbbbbb")

	attr := White | RevBlue
	b.Clear(NewRegion(2, 3, 4, 1), attr)

	if got := bufferText(t, b, 1); got != "aaaaaaaaaa" {
		t.Errorf("row 1 = %q, want untouched", got)
	}
	if got := bufferText(t, b, 2); got != "bb    bbbb" {
		t.Errorf("row 2 = %q, want %q", got, "bb    bbbb")
	}
	if got := b.CellAt(2, 3).Attr; got != attr {
		t.Errorf("cleared attribute = %#x, want %#x", got, attr)
	}
}

func TestBufferSetColor(t *testing.T) {
	b := newBuffer(2, 10, false)
	b.Print(1, 1, 10, DefaultAttribute, "unchanged")

	attr := Black | RevGreen
	b.SetColor(NewRegion(1, 1, 10, 2), attr)

	if got := bufferText(t, b, 1); got != "unchanged " {
		t.Errorf("row 1 = %q, want text untouched", got)
	}
	if got := b.CellAt(1, 4).Attr; got != attr {
		t.Errorf("attribute = %#x, want %#x", got, attr)
	}
}

func TestBufferScroll(t *testing.T) {
	fill := func(b *Buffer) {
		rows := []string{"11111", "22222", "33333", "44444", "55555"}
		for i, text := range rows {
			b.Print(i+1, 1, 5, DefaultAttribute, "%s", text)
		}
	}

	tests := map[string]struct {
		direction Direction
		region    Region
		count     int
		want      []string
	}{
		"up by one": {
			direction: Up,
			region:    NewRegion(1, 1, 5, 5),
			count:     1,
			want:      []string{"22222", "33333", "44444", "55555", "     "},
		},
		"down by two": {
			direction: Down,
			region:    NewRegion(1, 1, 5, 5),
			count:     2,
			want:      []string{"     ", "     ", "11111", "22222", "33333"},
		},
		"inner region only": {
			direction: Up,
			region:    NewRegion(2, 1, 5, 3),
			count:     1,
			want:      []string{"11111", "33333", "44444", "     ", "55555"},
		},
		"count at height clears": {
			direction: Up,
			region:    NewRegion(1, 1, 5, 5),
			count:     5,
			want:      []string{"     ", "     ", "     ", "     ", "     "},
		},
		"count beyond height clears": {
			direction: Down,
			region:    NewRegion(1, 1, 5, 5),
			count:     9,
			want:      []string{"     ", "     ", "     ", "     ", "     "},
		},
		"zero count is a no-op": {
			direction: Up,
			region:    NewRegion(1, 1, 5, 5),
			count:     0,
			want:      []string{"11111", "22222", "33333", "44444", "55555"},
		},
		"negative count is a no-op": {
			direction: Down,
			region:    NewRegion(1, 1, 5, 5),
			count:     -2,
			want:      []string{"11111", "22222", "33333", "44444", "55555"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := newBuffer(5, 5, false)
			fill(b)

			b.Scroll(tt.direction, tt.region, tt.count, DefaultAttribute)

			for i, want := range tt.want {
				if got := bufferText(t, b, i+1); got != want {
					t.Errorf("row %d = %q, want %q", i+1, got, want)
				}
			}
		})
	}
}

func TestBufferScrollPartialWidth(t *testing.T) {
	b := newBuffer(3, 6, false)
	b.Print(1, 1, 6, DefaultAttribute, "aaaXXa")
	b.Print(2, 1, 6, DefaultAttribute, "bbbYYb")
	b.Print(3, 1, 6, DefaultAttribute, "cccZZc")

	// Only columns 4 and 5 scroll; everything around them stays put.
	b.Scroll(Up, NewRegion(1, 4, 2, 3), 1, DefaultAttribute)

	want := []string{"aaaYYa", "bbbZZb", "ccc  c"}
	for i, text := range want {
		if got := bufferText(t, b, i+1); got != text {
			t.Errorf("row %d = %q, want %q", i+1, got, text)
		}
	}
}

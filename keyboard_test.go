package scr

import (
	"strings"
	"testing"
)

// decodeAll runs the escape decoder over a byte stream and collects every
// key code until the stream ends.
func decodeAll(t *testing.T, input string) []int {
	t.Helper()
	d := newEscDecoder(strings.NewReader(input))
	if err := d.InitializeKeys(); err != nil {
		t.Fatalf("InitializeKeys: %v", err)
	}
	defer d.TerminateKeys()

	var keys []int
	for {
		key := d.Key()
		if key == -1 {
			return keys
		}
		keys = append(keys, key)
	}
}

func TestEscDecoder(t *testing.T) {
	tests := map[string]struct {
		input string
		want  []int
	}{
		"plain ascii": {
			input: "ab",
			want:  []int{'a', 'b'},
		},
		"control characters": {
			input: "\x01\x1a\r\t",
			want:  []int{KeyCtrlA, KeyCtrlZ, KeyReturn, KeyTab},
		},
		"arrow keys": {
			input: "\x1b[A\x1b[B\x1b[C\x1b[D",
			want:  []int{KeyUp, KeyDown, KeyRight, KeyLeft},
		},
		"home and end": {
			input: "\x1b[H\x1b[F\x1b[1~\x1b[4~",
			want:  []int{KeyHome, KeyEnd, KeyHome, KeyEnd},
		},
		"paging and editing": {
			input: "\x1b[5~\x1b[6~\x1b[2~\x1b[3~",
			want:  []int{KeyPgUp, KeyPgDn, KeyInsert, KeyDelete},
		},
		"function keys via SS3": {
			input: "\x1bOP\x1bOQ\x1bOR\x1bOS",
			want:  []int{KeyF1, KeyF2, KeyF3, KeyF4},
		},
		"function keys via CSI": {
			input: "\x1b[11~\x1b[15~\x1b[21~\x1b[23~\x1b[24~",
			want:  []int{KeyF1, KeyF5, KeyF10, KeyF11, KeyF12},
		},
		"ctrl arrows": {
			input: "\x1b[1;5A\x1b[1;5D",
			want:  []int{KeyCtrlUp, KeyCtrlLeft},
		},
		"ctrl home": {
			input: "\x1b[1;5H",
			want:  []int{KeyCtrlHome},
		},
		"modified function keys": {
			input: "\x1b[11;2~\x1b[11;5~\x1b[11;3~",
			want:  []int{KeyShiftF1, KeyCtrlF1, KeyAltF1},
		},
		"alt letters": {
			input: "\x1ba\x1bZ",
			want:  []int{KeyAltA, KeyAltZ},
		},
		"alt digits": {
			input: "\x1b1\x1b0",
			want:  []int{KeyAlt1, KeyAlt0},
		},
		"lone escape at end of stream": {
			input: "\x1b",
			want:  []int{KeyEsc},
		},
		"unknown csi degrades to escape": {
			input: "\x1b[99Z",
			want:  []int{KeyEsc},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := decodeAll(t, tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("decoded %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("key %d = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEscDecoderUninitialized(t *testing.T) {
	d := newEscDecoder(strings.NewReader("a"))
	if got := d.Key(); got != -1 {
		t.Errorf("Key() before InitializeKeys = %d, want -1", got)
	}
}

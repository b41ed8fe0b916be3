package scr

import "testing"

func TestAttributeFields(t *testing.T) {
	tests := map[string]struct {
		attr   Attribute
		fg     Attribute
		bg     Attribute
		bright bool
		blink  bool
	}{
		"default": {
			attr: DefaultAttribute,
			fg:   White,
			bg:   Black,
		},
		"bright yellow on blue": {
			attr:   Brown | RevBlue | Bright,
			fg:     Brown,
			bg:     Blue,
			bright: true,
		},
		"blinking red on white": {
			attr:  Red | RevWhite | Blink,
			fg:    Red,
			bg:    White,
			blink: true,
		},
		"all bits": {
			attr:   0xFF,
			fg:     White,
			bg:     White,
			bright: true,
			blink:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.attr.Foreground(); got != tt.fg {
				t.Errorf("Foreground() = %#x, want %#x", got, tt.fg)
			}
			if got := tt.attr.Background(); got != tt.bg {
				t.Errorf("Background() = %#x, want %#x", got, tt.bg)
			}
			if got := tt.attr.HasBright(); got != tt.bright {
				t.Errorf("HasBright() = %v, want %v", got, tt.bright)
			}
			if got := tt.attr.HasBlink(); got != tt.blink {
				t.Errorf("HasBlink() = %v, want %v", got, tt.blink)
			}
		})
	}
}

func TestAttributeReverse(t *testing.T) {
	tests := map[string]struct {
		attr Attribute
		want Attribute
	}{
		"white on black": {
			attr: White | RevBlack,
			want: Black | RevWhite,
		},
		"red on cyan": {
			attr: Red | RevCyan,
			want: Cyan | RevRed,
		},
		"effects survive": {
			attr: Green | RevBlue | Bright | Blink,
			want: Blue | RevGreen | Bright | Blink,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.attr.Reverse(); got != tt.want {
				t.Errorf("Reverse() = %#x, want %#x", got, tt.want)
			}
		})
	}
}

// Reversing twice must restore the original attribute for every possible
// byte value.
func TestAttributeReverseInvolution(t *testing.T) {
	for v := 0; v < 256; v++ {
		a := Attribute(v)
		if got := a.Reverse().Reverse(); got != a {
			t.Fatalf("Reverse(Reverse(%#x)) = %#x, want the original", a, got)
		}
	}
}

func TestAttributeConvert(t *testing.T) {
	tests := map[string]struct {
		attr Attribute
		mono bool
		want Attribute
	}{
		"color display passes through": {
			attr: Red | RevCyan | Blink,
			mono: false,
			want: Red | RevCyan | Blink,
		},
		"black background forces white text": {
			attr: Blue | RevBlack,
			mono: true,
			want: White | RevBlack,
		},
		"colored background forces reverse video": {
			attr: Green | RevBlue,
			mono: true,
			want: RevWhite,
		},
		"effects survive conversion": {
			attr: Green | RevBlue | Bright | Blink,
			mono: true,
			want: RevWhite | Bright | Blink,
		},
		"converted attributes are stable": {
			attr: RevWhite | Bright,
			mono: true,
			want: RevWhite | Bright,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.attr.convert(tt.mono); got != tt.want {
				t.Errorf("convert(%v) = %#x, want %#x", tt.mono, got, tt.want)
			}
		})
	}
}

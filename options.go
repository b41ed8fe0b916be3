package scr

import (
	"fmt"
	"io"
)

// Option configures a Screen during New.
type Option func(*Screen) error

// WithBackend selects the backend driving the physical display. The default
// is an ANSI backend on the session's output and input streams.
func WithBackend(backend Backend) Option {
	return func(s *Screen) error {
		if backend == nil {
			return fmt.Errorf("backend cannot be nil")
		}
		s.backend = backend
		return nil
	}
}

// WithKeyDecoder forces a keyboard decoder, overriding the default choice
// (the backend itself when it decodes keys, otherwise an ANSI escape
// decoder on the input stream).
func WithKeyDecoder(keys KeyDecoder) Option {
	return func(s *Screen) error {
		if keys == nil {
			return fmt.Errorf("key decoder cannot be nil")
		}
		s.explicit = keys
		return nil
	}
}

// WithOutput redirects display output. Ignored when WithBackend is also
// given.
func WithOutput(out io.Writer) Option {
	return func(s *Screen) error {
		if out == nil {
			return fmt.Errorf("output cannot be nil")
		}
		s.out = out
		return nil
	}
}

// WithInput redirects keyboard input. Ignored when WithBackend is also
// given, except by the default escape decoder.
func WithInput(in io.Reader) Option {
	return func(s *Screen) error {
		if in == nil {
			return fmt.Errorf("input cannot be nil")
		}
		s.in = in
		return nil
	}
}

// WithASCIIBoxes restricts BoxCharacters to plain ASCII glyphs, for displays
// that cannot render the line-drawing set.
func WithASCIIBoxes() Option {
	return func(s *Screen) error {
		s.asciiBoxes = true
		return nil
	}
}

// WithMonochrome forces monochrome attribute conversion even when the
// backend reports color support, for displays that technically accept color
// codes but render them illegibly.
func WithMonochrome() Option {
	return func(s *Screen) error {
		s.monoOverride = true
		return nil
	}
}

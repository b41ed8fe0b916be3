// Package debug provides optional file-based debug logging.
//
// Screen-mode programs cannot write diagnostics to standard output without
// corrupting the display. When the SCR_DEBUG environment variable is set to
// a file path, debug messages are appended to that file. Otherwise, logging
// is a no-op.
package debug

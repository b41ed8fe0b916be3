package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogfWritesToNamedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scr.log")
	t.Setenv("SCR_DEBUG", path)
	t.Cleanup(func() { Close() })

	Logf("geometry %dx%d", 24, 80)
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "geometry 24x80") {
		t.Errorf("log %q lacks the message", data)
	}
}

func TestLogfNoOpWhenUnset(t *testing.T) {
	t.Setenv("SCR_DEBUG", "")
	t.Cleanup(func() { Close() })

	// Must not panic or create anything; there is no file to assert on.
	Logf("discarded")
	if err := Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

// Close releases the target so a later Logf can pick up a new SCR_DEBUG
// value, which is what test teardown relies on.
func TestCloseAllowsRetargeting(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	t.Setenv("SCR_DEBUG", first)
	Logf("one")
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	t.Setenv("SCR_DEBUG", second)
	Logf("two")
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(second)
	if err != nil {
		t.Fatalf("reading retargeted log: %v", err)
	}
	if !strings.Contains(string(data), "two") {
		t.Errorf("retargeted log %q lacks the message", data)
	}
}

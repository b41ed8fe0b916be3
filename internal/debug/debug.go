package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	logFile *os.File
	opened  bool
)

// file lazily opens the log target named by SCR_DEBUG. Caller must hold mu.
func file() *os.File {
	if opened {
		return logFile
	}
	opened = true

	path := os.Getenv("SCR_DEBUG")
	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil
	}
	logFile = f
	return logFile
}

// Logf writes a timestamped message to the debug log. A no-op unless the
// SCR_DEBUG environment variable names a writable file.
func Logf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	f := file()
	if f == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(f, "[%s] %s\n", timestamp, msg)
	f.Sync()
}

// Close closes the debug log file, letting tests redirect SCR_DEBUG again.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	opened = false
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

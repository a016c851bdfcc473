package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	mu     sync.Mutex
	file   *os.File
	opened bool
)

func target() *os.File {
	mu.Lock()
	defer mu.Unlock()
	if !opened {
		opened = true
		if path := os.Getenv("PLUME_DEBUG"); path != "" {
			f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
			if err == nil {
				file = f
			}
		}
	}
	return file
}

// Log appends a timestamped message to the debug file, if one is configured.
// No-op otherwise.
func Log(format string, args ...any) {
	f := target()
	if f == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(f, "%s %s\n", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
}

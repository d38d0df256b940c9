package cryptox

import (
	"os"
	"strings"
	"sync"
)

var (
	pepperMu   sync.RWMutex
	pepperPath string
	pepperVal  string
	pepperOnce sync.Once
)

// SetPepperPath configures where the password pepper is read from. Call once
// during startup, before any password is hashed or verified.
func SetPepperPath(path string) {
	pepperMu.Lock()
	defer pepperMu.Unlock()
	pepperPath = path
}

// GetPepper returns the pepper appended to passwords before hashing. A
// missing or unreadable file yields an empty pepper; hashes remain valid but
// unpeppered.
func GetPepper() string {
	pepperOnce.Do(func() {
		pepperMu.Lock()
		defer pepperMu.Unlock()

		if pepperPath == "" {
			return
		}
		data, err := os.ReadFile(pepperPath)
		if err != nil {
			return
		}
		pepperVal = strings.TrimSpace(string(data))
	})

	pepperMu.RLock()
	defer pepperMu.RUnlock()
	return pepperVal
}

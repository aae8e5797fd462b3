package paths

import (
	"os"
	"path/filepath"
)

// Resolve picks a usable location for a file the process writes: preferred
// when its directory can be created, otherwise ~/.machineid/<fallbackRel>,
// or ./<fallbackRel> without a home directory. The flag reports whether the
// fallback was taken.
func Resolve(preferred string, fallbackRel string) (string, bool) {
	if err := os.MkdirAll(filepath.Dir(preferred), 0o755); err == nil {
		return preferred, false
	}

	fallbackDir := "."
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		fallbackDir = filepath.Join(home, ".machineid")
	}

	fallbackPath := filepath.Join(fallbackDir, fallbackRel)
	if err := os.MkdirAll(filepath.Dir(fallbackPath), 0o755); err != nil {
		return preferred, false
	}
	return fallbackPath, true
}

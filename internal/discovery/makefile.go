package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sdlcforge/makefwd/internal/errors"
)

// ResolveRoot resolves the directory discovery should search, to an
// absolute path. An empty path defaults to the current working directory.
func ResolveRoot(path string) (string, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		path = cwd
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	return absPath, nil
}

// ValidateRootExists checks that path exists and is a directory. Returns
// MakefileNotFoundError if it does not exist, matching the teacher's
// not-found error shape for the analogous "nothing to discover" case.
func ValidateRootExists(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewMakefileNotFoundError(path)
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	return nil
}

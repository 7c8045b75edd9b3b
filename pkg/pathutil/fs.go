package pathutil

import (
	"fmt"
	"os"

	"github.com/filemanpro/fmkit/pkg/fmerrors"
)

// IsDirectory reports whether path exists and is a directory. Any access
// error (non-existence, permission denial) yields false.
func IsDirectory(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}

	return fi.IsDir()
}

// IsRegularFile reports whether path exists and is a regular file. Any
// access error yields false.
func IsRegularFile(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}

	return fi.Mode().IsRegular()
}

// MakeDirs creates every missing directory component of path. It succeeds
// when the full path already exists as a directory, and fails when any
// existing component is a non-directory. Directories created before a
// failing component are left in place.
func MakeDirs(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", fmerrors.ErrInvalidInput)
	}

	if fi, err := os.Stat(path); err == nil {
		if fi.IsDir() {
			return nil
		}

		return fmt.Errorf("%w: %s", fmerrors.ErrNotADirectory, path)
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create directories %q: %w", path, err)
	}

	return nil
}

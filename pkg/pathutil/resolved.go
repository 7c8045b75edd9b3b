// Copyright 2017-2018 The Argo Authors
// Modifications Copyright 2024-2025 Jacob Colvin
// Modifications Copyright 2026 The fmkit Authors
// Licensed under the Apache License, Version 2.0

package pathutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrMaxNestingLevelReached = errors.New("maximum symlink nesting level reached")
	ErrResolvePath            = errors.New("internal error: failed to resolve path; check logs for more details")
	ErrResolvedOutsideRoot    = errors.New("path resolved to outside the allowed root")
)

// ResolvedPath is an absolute path that has been verified to live under a
// caller-provided root. It prevents unintentional use of an unverified path.
type ResolvedPath string

// String returns the resolved absolute path as a string.
func (r ResolvedPath) String() string {
	return string(r)
}

// ResolveSymbolicLinkRecursive resolves path to its canonical location on
// the filesystem, following at most maxDepth levels of symlinks. If path is
// not a symlink, a verbatim copy of path is returned with a nil error.
func ResolveSymbolicLinkRecursive(path string, maxDepth int) (string, error) {
	resolved, err := os.Readlink(path)
	if err != nil {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			// Not a symbolic link.
			return path, nil
		}

		return "", fmt.Errorf("read link for path %q: %w", path, err)
	}

	if maxDepth == 0 {
		return "", ErrMaxNestingLevelReached
	}

	// A relative symlink target is resolved against the link's directory.
	if !strings.HasPrefix(resolved, string(os.PathSeparator)) {
		resolved = filepath.Join(filepath.Dir(path), resolved)
	}

	return ResolveSymbolicLinkRecursive(resolved, maxDepth-1)
}

// The concrete error is logged rather than returned, so that callers can
// surface the failure to users without leaking path details.
func resolveFailure(path string, err error) error {
	slog.Error("failed to resolve path", "path", path, "err", err)

	return fmt.Errorf("%w: %w", ErrResolvePath, err)
}

// maxSymlinkDepth caps recursive symlink resolution in [ResolveWithin].
const maxSymlinkDepth = 10

// ResolveWithin resolves target to an absolute path and verifies that it
// stays within the boundaries of root. A relative target is resolved
// against currentPath; an absolute target is resolved against root itself.
// Symlinks along the way are followed to their final destination before the
// boundary decision is made, so a link escaping root is rejected.
func ResolveWithin(currentPath, root, target string) (ResolvedPath, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", resolveFailure(root, err)
	}

	path := target
	if filepath.IsAbs(path) {
		path = filepath.Join(absRoot, path)
	} else {
		absCurrent, err := filepath.Abs(currentPath)
		if err != nil {
			return "", resolveFailure(currentPath, err)
		}

		path = filepath.Join(absCurrent, path)
	}

	path, err = ResolveSymbolicLinkRecursive(path, maxSymlinkDepth)
	if err != nil {
		return "", resolveFailure(target, err)
	}

	path, err = filepath.Abs(path)
	if err != nil {
		return "", resolveFailure(target, err)
	}

	// The trailing separator prevents /foo from matching /foo2.
	boundary := absRoot
	if !strings.HasSuffix(boundary, string(os.PathSeparator)) {
		boundary += string(os.PathSeparator)
	}

	if path+string(os.PathSeparator) != boundary && !strings.HasPrefix(path, boundary) {
		return "", fmt.Errorf("%w: %s", ErrResolvedOutsideRoot, target)
	}

	return ResolvedPath(path), nil
}

// SPDX-License-Identifier: MPL-2.0

// Package fspath validates and canonicalizes filesystem paths used as search
// directories. A canonical path is absolute, symlink-resolved, and cleaned;
// it is the deduplication key for a context's search-path set.
package fspath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrUnusablePath is the sentinel error wrapped by PathError.
	ErrUnusablePath = errors.New("unusable path")
	// ErrNotADirectory is returned when a search-directory candidate exists
	// but is not a directory.
	ErrNotADirectory = errors.New("not a directory")
)

// PathError reports an environment-class failure for one offending path.
// It wraps ErrUnusablePath for errors.Is() compatibility and keeps the
// underlying os error reachable through Unwrap chains via Cause.
type PathError struct {
	// Path is the path as the caller supplied it.
	Path string
	// Op describes the failed check ("canonicalize" or "access").
	Op string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	return fmt.Sprintf("unable to use path %q (%s): %v", e.Path, e.Op, e.Cause)
}

// Unwrap returns the underlying cause for use with errors.Is/As.
func (e *PathError) Unwrap() error {
	return e.Cause
}

// Is reports a match for ErrUnusablePath in addition to the cause chain.
func (e *PathError) Is(target error) bool {
	return target == ErrUnusablePath
}

// Canonical resolves dir to its canonical form: absolute, with symlinks and
// relative components resolved, and redundant separators removed. The path
// must exist for symlink resolution to succeed.
func Canonical(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", &PathError{Path: dir, Op: "canonicalize", Cause: err}
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &PathError{Path: dir, Op: "canonicalize", Cause: err}
	}
	return filepath.Clean(resolved), nil
}

// CheckDir verifies that dir exists, is a directory, and is readable and
// traversable by the current process. The probe is a single blocking
// filesystem operation and is never retried; transient failures surface
// as-is.
func CheckDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return &PathError{Path: dir, Op: "access", Cause: err}
	}
	if !info.IsDir() {
		return &PathError{Path: dir, Op: "access", Cause: ErrNotADirectory}
	}
	// Listing requires both read and search permission on the directory.
	if _, err := os.ReadDir(dir); err != nil {
		return &PathError{Path: dir, Op: "access", Cause: err}
	}
	return nil
}

// CanonicalDir combines CheckDir and Canonical: it admits only readable,
// traversable directories and returns the canonical form used for
// deduplication.
func CanonicalDir(dir string) (string, error) {
	if err := CheckDir(dir); err != nil {
		return "", err
	}
	return Canonical(dir)
}

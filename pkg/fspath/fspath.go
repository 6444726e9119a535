// SPDX-License-Identifier: MPL-2.0

// Package fspath lifts the path/filepath operations the packager needs onto
// types.FilesystemPath, so path arithmetic stays typed from ng-package.json
// discovery through destination layout without string conversions at every
// call site.
package fspath

import (
	"fmt"
	"path/filepath"

	"ng-packagr/pkg/types"
)

// Join joins typed path segments with filepath.Join.
func Join(elem ...types.FilesystemPath) types.FilesystemPath {
	parts := make([]string, len(elem))
	for i, p := range elem {
		parts[i] = string(p)
	}
	return types.FilesystemPath(filepath.Join(parts...))
}

// JoinStr joins a typed base with raw string segments. Meant for literal
// file names ("package.json") and os.ReadDir entries, which arrive as
// strings and need no validation of their own.
func JoinStr(base types.FilesystemPath, elem ...string) types.FilesystemPath {
	return types.FilesystemPath(filepath.Join(append([]string{string(base)}, elem...)...))
}

// Dir returns all but the last element of p, typed.
func Dir(p types.FilesystemPath) types.FilesystemPath {
	return types.FilesystemPath(filepath.Dir(string(p)))
}

// Base returns the last element of p. The result is a bare name, not a
// path, so it comes back as a string.
func Base(p types.FilesystemPath) string {
	return filepath.Base(string(p))
}

// Abs resolves p against the working directory.
func Abs(p types.FilesystemPath) (types.FilesystemPath, error) {
	abs, err := filepath.Abs(string(p))
	if err != nil {
		return "", fmt.Errorf("make path absolute: %w", err)
	}
	return types.FilesystemPath(abs), nil
}

// Clean returns the shortest equivalent of p.
func Clean(p types.FilesystemPath) types.FilesystemPath {
	return types.FilesystemPath(filepath.Clean(string(p)))
}

// Rel computes target relative to base.
func Rel(base, target types.FilesystemPath) (types.FilesystemPath, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", fmt.Errorf("resolving relative path: %w", err)
	}
	return types.FilesystemPath(rel), nil
}

// FromSlash converts forward slashes in p to the OS path separator.
func FromSlash(p types.FilesystemPath) types.FilesystemPath {
	return types.FilesystemPath(filepath.FromSlash(string(p)))
}

// ToSlash normalizes p to forward slashes. The result is a plain string
// because slash-normalized paths feed identifier contexts (module IDs,
// published package.json entries), not further filesystem operations.
func ToSlash(p types.FilesystemPath) string {
	return filepath.ToSlash(string(p))
}

// IsAbs reports whether p is absolute.
func IsAbs(p types.FilesystemPath) bool {
	return filepath.IsAbs(string(p))
}

// Resolve interprets p against base: absolute paths are cleaned and
// returned as-is, relative paths are joined onto base. The base must be
// absolute for the result to be absolute.
func Resolve(base, p types.FilesystemPath) types.FilesystemPath {
	if IsAbs(p) {
		return Clean(p)
	}
	return Join(base, p)
}

// SPDX-License-Identifier: MPL-2.0

// Package types defines the small validated value types shared across the
// domain packages (npm, ngpackage, discovery, watch). It sits at the bottom
// of the import graph: everything may depend on it, and it depends on
// nothing above the standard library and the glob matcher.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFilesystemPath matches any InvalidFilesystemPathError via errors.Is.
var ErrInvalidFilesystemPath = errors.New("blank filesystem path")

type (
	// FilesystemPath is an absolute or relative path, such as a project
	// directory, an ng-package.json location or a dest directory. The zero
	// value is invalid: a path must always point somewhere.
	FilesystemPath string

	// InvalidFilesystemPathError reports an empty or whitespace-only
	// FilesystemPath.
	InvalidFilesystemPathError struct {
		Value FilesystemPath
	}
)

func (p FilesystemPath) String() string { return string(p) }

// Validate rejects empty and whitespace-only paths.
func (p FilesystemPath) Validate() error {
	if strings.TrimSpace(p.String()) == "" {
		return &InvalidFilesystemPathError{Value: p}
	}
	return nil
}

func (e *InvalidFilesystemPathError) Error() string {
	return fmt.Sprintf("invalid filesystem path %q: may not be blank", e.Value)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *InvalidFilesystemPathError) Unwrap() error { return ErrInvalidFilesystemPath }

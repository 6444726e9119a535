// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrInvalidGlobPattern is the sentinel error wrapped by InvalidGlobPatternError.
var ErrInvalidGlobPattern = errors.New("invalid glob pattern")

type (
	// GlobPattern represents a doublestar-compatible glob pattern such as
	// "**/*.ts". A valid pattern must be non-empty and syntactically well
	// formed. The zero value ("") is invalid.
	GlobPattern string

	// InvalidGlobPatternError is returned when a GlobPattern value is empty,
	// whitespace-only, or not a well-formed doublestar pattern.
	InvalidGlobPatternError struct {
		Value GlobPattern
	}
)

// String returns the string representation of the GlobPattern.
func (g GlobPattern) String() string { return string(g) }

// Validate returns an error if the GlobPattern is empty, whitespace-only, or
// not a well-formed doublestar pattern.
func (g GlobPattern) Validate() error {
	if strings.TrimSpace(string(g)) == "" {
		return &InvalidGlobPatternError{Value: g}
	}
	if !doublestar.ValidatePattern(string(g)) {
		return &InvalidGlobPatternError{Value: g}
	}
	return nil
}

// Error implements the error interface for InvalidGlobPatternError.
func (e *InvalidGlobPatternError) Error() string {
	return fmt.Sprintf("invalid glob pattern %q: must be a non-empty doublestar pattern", e.Value)
}

// Unwrap returns ErrInvalidGlobPattern for errors.Is() compatibility.
func (e *InvalidGlobPatternError) Unwrap() error { return ErrInvalidGlobPattern }

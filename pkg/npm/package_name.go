// SPDX-License-Identifier: MPL-2.0

package npm

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// MaxPackageNameLength is the npm registry limit for package name length.
const MaxPackageNameLength = 214

var (
	// ErrInvalidPackageName is returned when a PackageName value does not match
	// the npm naming rules.
	ErrInvalidPackageName = errors.New("invalid package name")

	// packageNamePattern validates npm package names: an optional @scope/
	// prefix followed by the package part. Both parts are lowercase URL-safe
	// segments that must not begin with a dot or an underscore.
	packageNamePattern = regexp.MustCompile(`^(@[a-z0-9~-][a-z0-9._~-]*/)?[a-z0-9~-][a-z0-9._~-]*$`)
)

type (
	// PackageName represents an npm package name, e.g. "widgets" or
	// "@acme/widgets". Using a named type prevents accidental confusion with
	// module IDs or plain path strings. The zero value ("") means no name was
	// provided; Validate rejects it.
	PackageName string

	// InvalidPackageNameError is returned when a PackageName value does not
	// match the npm naming rules. It wraps ErrInvalidPackageName for
	// errors.Is() compatibility.
	InvalidPackageNameError struct {
		Value PackageName
	}
)

// String returns the string representation of the PackageName.
func (n PackageName) String() string { return string(n) }

// Validate returns nil if the PackageName matches npm naming rules
// (lowercase URL-safe characters, optional @scope/ prefix, at most 214
// characters), or an error describing the validation failure.
func (n PackageName) Validate() error {
	if n == "" || len(n) > MaxPackageNameLength || !packageNamePattern.MatchString(string(n)) {
		return &InvalidPackageNameError{Value: n}
	}
	return nil
}

// IsScoped reports whether the name carries an @scope/ prefix.
func (n PackageName) IsScoped() bool { return strings.HasPrefix(string(n), "@") }

// Scope returns the scope segment including the leading "@" (e.g. "@acme"
// for "@acme/widgets"), or "" for unscoped names.
func (n PackageName) Scope() string {
	if !n.IsScoped() {
		return ""
	}
	if idx := strings.Index(string(n), "/"); idx >= 0 {
		return string(n)[:idx]
	}
	return ""
}

// Unscoped returns the name with any @scope/ prefix removed.
func (n PackageName) Unscoped() string {
	if scope := n.Scope(); scope != "" {
		return string(n)[len(scope)+1:]
	}
	return string(n)
}

// Error implements the error interface for InvalidPackageNameError.
func (e *InvalidPackageNameError) Error() string {
	return fmt.Sprintf(
		"invalid package name %q: must be lowercase URL-safe, optionally prefixed with @scope/, and at most %d characters",
		string(e.Value), MaxPackageNameLength,
	)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidPackageNameError) Unwrap() error {
	return ErrInvalidPackageName
}

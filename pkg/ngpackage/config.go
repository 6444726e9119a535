// SPDX-License-Identifier: MPL-2.0

package ngpackage

import (
	"errors"
	"fmt"

	"ng-packagr/pkg/types"
)

const (
	// CSSURLNone leaves stylesheet url() references untouched.
	CSSURLNone CSSURL = "none"
	// CSSURLInline inlines url() references as data URIs.
	CSSURLInline CSSURL = "inline"

	// DefaultDest is the destination directory injected by the schema when
	// ng-package.json does not set one.
	DefaultDest = "dist"
)

var (
	// ErrInvalidCSSURL is returned when a CSSURL value is not recognized.
	ErrInvalidCSSURL = errors.New("invalid css url mode")
)

type (
	// CSSURL specifies how url() references inside stylesheets are treated
	// during packaging. The zero value ("") means the option is absent.
	CSSURL string

	// InvalidCSSURLError is returned when a CSSURL value is not recognized.
	// It wraps ErrInvalidCSSURL for errors.Is() compatibility.
	InvalidCSSURLError struct {
		Value CSSURL
	}

	// Config is the structured form of an ng-package.json document (or of
	// the "ngPackage" property of a package.json). Zero values mean the
	// option is absent; accessors on EntryPoint and Package apply the
	// documented defaults.
	//
	// The original format reads options through a dynamic dotted-key walk
	// ("lib.entryFile"); the named optional fields here carry the same
	// "missing config yields an absent value" semantics with static types.
	Config struct {
		// Dest is the destination directory of the built library, resolved
		// against the base path of the primary entry point. Secondary entry
		// points never contribute a destination; the value is read from the
		// root of the tree only.
		Dest types.FilesystemPath `json:"dest,omitempty"`

		// DeleteDestPath controls whether the destination directory is
		// removed before a build. Nil means absent (treated as true).
		DeleteDestPath *bool `json:"deleteDestPath,omitempty"`

		// KeepLifecycleScripts keeps npm lifecycle scripts in the
		// distributable package.json instead of stripping them.
		KeepLifecycleScripts bool `json:"keepLifecycleScripts,omitempty"`

		// WhitelistedNonPeerDependencies lists dependency names allowed to
		// appear under "dependencies" without a diagnostic.
		WhitelistedNonPeerDependencies []string `json:"whitelistedNonPeerDependencies,omitempty"`

		// Lib groups the entry-point-level options.
		Lib LibConfig `json:"lib,omitempty"`
	}

	// LibConfig groups the per-entry-point library options.
	LibConfig struct {
		// EntryFile is the path of the entry source file, relative to the
		// entry point's base path. Absent means the entry point cannot be
		// compiled; the resolver propagates the absence instead of failing.
		EntryFile types.FilesystemPath `json:"entryFile,omitempty"`

		// FlatModuleFile overrides the filename stem used for every bundle
		// and declaration artifact.
		FlatModuleFile string `json:"flatModuleFile,omitempty"`

		// UMDID overrides the dotted global-scope identifier of the UMD
		// bundle.
		UMDID string `json:"umdId,omitempty"`

		// AMDID overrides the named-module identifier used by AMD loaders.
		AMDID string `json:"amdId,omitempty"`

		// UMDModuleIDs maps external module names to the globals a UMD
		// bundle reads them from (e.g. "rxjs" -> "Rx").
		UMDModuleIDs map[string]string `json:"umdModuleIds,omitempty"`

		// CSSURL selects the stylesheet url() treatment.
		CSSURL CSSURL `json:"cssUrl,omitempty"`

		// StyleIncludePaths lists additional stylesheet include directories,
		// relative to the entry point's base path or absolute.
		StyleIncludePaths []types.FilesystemPath `json:"styleIncludePaths,omitempty"`
	}
)

// String returns the string representation of the CSSURL.
func (c CSSURL) String() string { return string(c) }

// Validate returns nil if the CSSURL is one of the recognized modes or the
// zero value (absent), or an error describing the validation failure.
func (c CSSURL) Validate() error {
	switch c {
	case "", CSSURLNone, CSSURLInline:
		return nil
	default:
		return &InvalidCSSURLError{Value: c}
	}
}

// Error implements the error interface for InvalidCSSURLError.
func (e *InvalidCSSURLError) Error() string {
	return fmt.Sprintf("invalid css url mode %q: must be %q or %q", e.Value, CSSURLNone, CSSURLInline)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidCSSURLError) Unwrap() error { return ErrInvalidCSSURL }

// lib returns the Lib section, tolerating a nil receiver so EntryPoint
// accessors keep their "absent value" semantics without nil checks at every
// site.
func (c *Config) lib() LibConfig {
	if c == nil {
		return LibConfig{}
	}
	return c.Lib
}

// dest returns the Dest option, tolerating a nil receiver.
func (c *Config) dest() types.FilesystemPath {
	if c == nil {
		return ""
	}
	return c.Dest
}

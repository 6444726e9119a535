// SPDX-License-Identifier: MPL-2.0

package discovery

import "ng-packagr/pkg/ngpackage"

const (
	// SeverityWarning flags a suspicious condition; the build continues.
	SeverityWarning Severity = "warning"
	// SeverityError fails validation, and with it build and validate runs.
	SeverityError Severity = "error"
)

// Diagnostic codes emitted by discovery and validation.
const (
	// CodeConfigParseSkipped marks a directory whose packaging config could
	// not be parsed; the directory is skipped instead of aborting discovery.
	CodeConfigParseSkipped = "config_parse_skipped"
	// CodeSecondaryDestIgnored marks a secondary entry point that declares a
	// dest option; only the primary's destination is consulted.
	CodeSecondaryDestIgnored = "secondary_dest_ignored"
	// CodeEntryFileMissing marks an entry point whose configured entry file
	// does not exist on disk.
	CodeEntryFileMissing = "entry_file_missing"
	// CodeEntryFileUnset marks an entry point with no entryFile configured.
	CodeEntryFileUnset = "entry_file_unset"
	// CodePackageNameMissing marks a primary manifest without a name.
	CodePackageNameMissing = "package_name_missing"
	// CodePackageNameInvalid marks a manifest name that violates npm naming
	// rules.
	CodePackageNameInvalid = "package_name_invalid"
	// CodeNonPeerDependencies marks dependencies that should be declared as
	// peerDependencies instead.
	CodeNonPeerDependencies = "non_peer_dependencies"
	// CodeFlatFileReserved marks an entry point whose flattened file stem is
	// a reserved file name on Windows.
	CodeFlatFileReserved = "flat_file_reserved"
)

type (
	// Severity grades a Diagnostic.
	Severity string

	// Diagnostic is one structured finding from discovery or validation.
	// Findings travel back to the caller instead of going straight to
	// stderr, so every command renders them through the same styles.
	Diagnostic struct {
		// Severity is warning or error.
		Severity Severity
		// Code identifies the kind of finding, e.g. "entry_file_missing".
		Code string
		// Message is the rendered human-readable text.
		Message string
		// Path names the file involved, when one exists.
		Path string
		// Cause carries the underlying error for errors.Is inspection.
		Cause error
	}

	// PackageResult bundles a discovered Package with the diagnostics produced
	// during discovery. Diagnostics include skipped secondary directories and
	// ignored options; they never prevent the package from being returned.
	PackageResult struct {
		Package     *ngpackage.Package
		Diagnostics []Diagnostic
	}
)

// HasErrors reports whether any diagnostic carries error severity.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

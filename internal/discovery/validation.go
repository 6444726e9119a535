// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"fmt"
	"os"
	"strings"

	"ng-packagr/pkg/ngpackage"
	"ng-packagr/pkg/npm"
	"ng-packagr/pkg/platform"
)

// ValidatePackage checks a discovered package for the conditions that make a
// build impossible or suspicious, and reports them as diagnostics: a missing
// or invalid package name, entry points without an (existing) entry file,
// flattened file names Windows cannot create, and dependencies that should
// have been declared as peerDependencies.
//
// Error-severity diagnostics mark conditions the build pipeline treats as
// fatal; warnings are rendered and ignored.
func ValidatePackage(pkg *ngpackage.Package) []Diagnostic {
	if pkg == nil {
		return nil
	}

	var diags []Diagnostic
	diags = append(diags, validatePackageName(pkg.Primary())...)

	for _, ep := range pkg.EntryPoints() {
		diags = append(diags, validateEntryFile(ep)...)
		diags = append(diags, validateFlatModuleFile(ep)...)
		diags = append(diags, validateNonPeerDependencies(pkg, ep)...)
	}

	return diags
}

// validatePackageName checks that the primary manifest names the package and
// that the name follows npm naming rules. Module IDs of every entry point
// derive from this name, so a missing name breaks the whole tree.
func validatePackageName(primary *ngpackage.EntryPoint) []Diagnostic {
	name := primary.Manifest().Name()
	if name == "" {
		return []Diagnostic{{
			Severity: SeverityError,
			Code:     CodePackageNameMissing,
			Message:  "package.json of the primary entry point declares no \"name\"",
			Path:     primary.BasePath().String(),
		}}
	}
	if err := name.Validate(); err != nil {
		return []Diagnostic{{
			Severity: SeverityError,
			Code:     CodePackageNameInvalid,
			Message:  fmt.Sprintf("package name %q violates npm naming rules", name),
			Path:     primary.BasePath().String(),
			Cause:    err,
		}}
	}
	return nil
}

// validateEntryFile checks that the entry point configures an entry file and
// that the file exists.
func validateEntryFile(ep *ngpackage.EntryPoint) []Diagnostic {
	entryFilePath := ep.EntryFilePath()
	if entryFilePath == "" {
		return []Diagnostic{{
			Severity: SeverityError,
			Code:     CodeEntryFileUnset,
			Message:  fmt.Sprintf("entry point %s configures no \"lib.entryFile\"", describeEntryPoint(ep)),
			Path:     ep.BasePath().String(),
		}}
	}
	if _, err := os.Stat(entryFilePath.String()); err != nil {
		return []Diagnostic{{
			Severity: SeverityError,
			Code:     CodeEntryFileMissing,
			Message:  fmt.Sprintf("entry file of %s does not exist: %s", describeEntryPoint(ep), entryFilePath),
			Path:     entryFilePath.String(),
			Cause:    err,
		}}
	}
	return nil
}

// validateFlatModuleFile warns when the flattened file stem is a name Windows
// refuses to create. Every bundle and declaration artifact derives its
// filename from the stem, so such a package cannot be written on Windows.
func validateFlatModuleFile(ep *ngpackage.EntryPoint) []Diagnostic {
	flat := ep.FlatModuleFile()
	if flat == "" || !platform.IsWindowsReservedName(flat) {
		return nil
	}
	return []Diagnostic{{
		Severity: SeverityWarning,
		Code:     CodeFlatFileReserved,
		Message:  fmt.Sprintf("flattened file name %q of %s is reserved on Windows", flat, describeEntryPoint(ep)),
		Path:     ep.BasePath().String(),
	}}
}

// validateNonPeerDependencies flags "dependencies" entries of the entry
// point's manifest that the package does not whitelist.
func validateNonPeerDependencies(pkg *ngpackage.Package, ep *ngpackage.EntryPoint) []Diagnostic {
	offending := npm.NonPeerDependencies(ep.Manifest(), pkg.WhitelistedNonPeerDependencies())
	if len(offending) == 0 {
		return nil
	}
	return []Diagnostic{{
		Severity: SeverityWarning,
		Code:     CodeNonPeerDependencies,
		Message: fmt.Sprintf("%s declares dependencies that should be peerDependencies: %s",
			describeEntryPoint(ep), strings.Join(offending, ", ")),
		Path: ep.BasePath().String(),
	}}
}

// describeEntryPoint renders an entry point for diagnostics: its module ID
// when resolvable, else its base path.
func describeEntryPoint(ep *ngpackage.EntryPoint) string {
	if id := ep.ModuleID(); id != "" {
		return id
	}
	return ep.BasePath().String()
}

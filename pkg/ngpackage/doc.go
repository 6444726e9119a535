// SPDX-License-Identifier: MPL-2.0

// Package ngpackage models a library's entry points and derives every path
// and identifier the packaging pipeline needs.
//
// An entry point is one publishable unit of API surface, rooted at a single
// source file. A library has exactly one primary entry point and zero or
// more secondary entry points nested in subdirectories; each secondary holds
// a back-reference to its parent and inherits location and identifier
// information from it.
//
// # Resolution model
//
// [EntryPoint] is the central type. It is constructed once per discovered
// entry point from already-parsed inputs (a package.json manifest, an
// ng-package [Config], an absolute base path, an optional parent) and is
// immutable afterwards. Every derived value is a pure function of that
// state, recomputed on demand:
//
//   - EntryFilePath: the absolute root source file
//   - DestinationPath / LibraryDestinationPath: output directories
//   - DestinationFiles: the six artifact paths (declarations, metadata,
//     ESM2015 tree, FESM2015 flat bundle, UMD, minified UMD)
//   - ModuleID, FlatModuleFile, UMDID, AMDID: the four identifier forms
//
// Accessors never return errors. A value that cannot be derived (an absent
// config field, a manifest without a name) surfaces as the zero value and
// propagates silently; the enclosing pipeline decides which absences are
// fatal. This keeps one omitted optional field from halting a larger
// multi-entry-point build, and it keeps every accessor independent of the
// others.
//
// # Configuration
//
// [Config] is the structured form of ng-package.json (or of the "ngPackage"
// property inside package.json). [ParseConfig] validates raw bytes against
// an embedded CUE schema, which also injects the documented defaults
// (dest "dist", cssUrl "inline", deleteDestPath true). JSON is a subset of
// CUE, so user JSON files compile directly against the schema.
package ngpackage

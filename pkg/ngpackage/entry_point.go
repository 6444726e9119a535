// SPDX-License-Identifier: MPL-2.0

package ngpackage

import (
	"path"
	"strings"

	"ng-packagr/pkg/fspath"
	"ng-packagr/pkg/npm"
	"ng-packagr/pkg/types"
)

// EntryPoint resolves every output path and module identifier of one
// publishable unit of a library. The primary entry point has no parent;
// each secondary entry point references the entry point it is nested under
// and composes its identifiers and destinations from it.
//
// An EntryPoint is immutable after construction. Accessors are pure
// derivations of the constructed state: calling one twice yields the same
// value, no accessor mutates anything, and no accessor returns an error. A
// value that cannot be derived comes back as the zero value.
type EntryPoint struct {
	manifest *npm.Manifest
	config   *Config
	basePath types.FilesystemPath
	parent   *EntryPoint
}

// NewEntryPoint constructs an entry point from already-parsed inputs.
//
// basePath must be absolute: it anchors all relative resolution for this
// entry point. parent must be nil for the primary entry point, or the fully
// constructed entry point of an ancestor directory for a secondary one; it
// is held as a read-only back-reference and never mutated.
//
// Construction never fails. A nil manifest or config is tolerated and
// surfaces as absent values from the affected accessors.
func NewEntryPoint(manifest *npm.Manifest, config *Config, basePath types.FilesystemPath, parent *EntryPoint) *EntryPoint {
	return &EntryPoint{
		manifest: manifest,
		config:   config,
		basePath: basePath,
		parent:   parent,
	}
}

// Manifest returns the package.json manifest backing this entry point.
func (e *EntryPoint) Manifest() *npm.Manifest { return e.manifest }

// Config returns the ng-package configuration backing this entry point.
func (e *EntryPoint) Config() *Config { return e.config }

// BasePath returns the absolute directory anchoring this entry point.
func (e *EntryPoint) BasePath() types.FilesystemPath { return e.basePath }

// Parent returns the parent entry point, or nil for the primary.
func (e *EntryPoint) Parent() *EntryPoint { return e.parent }

// IsSecondary reports whether this entry point is nested under a parent.
func (e *EntryPoint) IsSecondary() bool { return e.parent != nil }

// EntryFile returns the configured entry source file, relative to BasePath.
// Absent configuration yields "": a configuration error for any entry point
// that reaches compilation, but not an error here.
func (e *EntryPoint) EntryFile() types.FilesystemPath {
	return e.config.lib().EntryFile
}

// EntryFilePath returns the absolute path of the entry source file, or ""
// when no entry file is configured.
func (e *EntryPoint) EntryFilePath() types.FilesystemPath {
	entryFile := e.EntryFile()
	if entryFile == "" {
		return ""
	}
	return fspath.Resolve(e.basePath, entryFile)
}

// SourceRelativePath returns the relative path from the parent's base path
// to this entry point's base path, in host separators so it can be re-joined
// onto filesystem paths. The primary entry point yields "".
func (e *EntryPoint) SourceRelativePath() types.FilesystemPath {
	if e.parent == nil {
		return ""
	}
	rel, err := fspath.Rel(e.parent.basePath, e.basePath)
	if err != nil || rel == "." {
		return ""
	}
	return rel
}

// LibraryDestinationPath returns the destination root shared by every entry
// point in the tree: the parentless ancestor's dest option resolved against
// that ancestor's own base path. A dest configured on a secondary entry
// point is never consulted.
func (e *EntryPoint) LibraryDestinationPath() types.FilesystemPath {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	return fspath.Resolve(root.basePath, root.config.dest())
}

// DestinationPath returns the directory receiving this entry point's
// declaration and metadata output: the library destination itself for the
// primary, or a subdirectory mirroring the source location for a secondary.
func (e *EntryPoint) DestinationPath() types.FilesystemPath {
	if e.parent == nil {
		return e.LibraryDestinationPath()
	}
	return fspath.Join(e.LibraryDestinationPath(), e.SourceRelativePath())
}

// ModuleID returns the import-path identifier consumers use to reference
// this entry point: the manifest package name for the primary, or the
// parent's module ID joined with the source-relative path for a secondary.
// Separators are normalized to forward slashes regardless of host
// conventions.
func (e *EntryPoint) ModuleID() string {
	if e.parent == nil {
		return e.manifest.Name().String()
	}
	return path.Join(e.parent.ModuleID(), fspath.ToSlash(e.SourceRelativePath()))
}

// FlattenModuleID collapses the module ID into a single flat name: a leading
// "@" scope marker is stripped, then the "/"-delimited segments are joined
// with the given separator. The separator defaults to "." when omitted.
func (e *EntryPoint) FlattenModuleID(separator ...string) string {
	sep := "."
	if len(separator) > 0 && separator[0] != "" {
		sep = separator[0]
	}
	moduleID := strings.TrimPrefix(e.ModuleID(), "@")
	return strings.Join(strings.Split(moduleID, "/"), sep)
}

// FlatModuleFile returns the filename stem shared by every bundle and
// declaration artifact: the lib.flatModuleFile override when set, else the
// module ID flattened with "-".
func (e *EntryPoint) FlatModuleFile() string {
	if v := e.config.lib().FlatModuleFile; v != "" {
		return v
	}
	return e.FlattenModuleID("-")
}

// UMDID returns the dotted global-scope identifier a UMD bundle registers
// itself under (e.g. "@acme/widgets" becomes "acme.widgets", read as
// global['acme']['widgets']): the lib.umdId override when set, else the
// module ID flattened with ".".
func (e *EntryPoint) UMDID() string {
	if v := e.config.lib().UMDID; v != "" {
		return v
	}
	return e.FlattenModuleID()
}

// AMDID returns the named-module identifier for AMD loaders: the lib.amdId
// override when set, else the module ID unchanged (slash-delimited, not
// flattened).
func (e *EntryPoint) AMDID() string {
	if v := e.config.lib().AMDID; v != "" {
		return v
	}
	return e.ModuleID()
}

// CSSURL returns the configured stylesheet url() treatment, or the zero
// value when absent.
func (e *EntryPoint) CSSURL() CSSURL {
	return e.config.lib().CSSURL
}

// UMDModuleIDs returns the configured external-module-to-global mapping for
// UMD bundling, or nil when absent.
func (e *EntryPoint) UMDModuleIDs() map[string]string {
	return e.config.lib().UMDModuleIDs
}

// StyleIncludePaths returns the configured stylesheet include directories
// with every relative entry resolved against BasePath, so all returned
// paths are absolute. Absent configuration yields nil.
func (e *EntryPoint) StyleIncludePaths() []types.FilesystemPath {
	paths := e.config.lib().StyleIncludePaths
	if len(paths) == 0 {
		return nil
	}
	resolved := make([]types.FilesystemPath, len(paths))
	for i, p := range paths {
		resolved[i] = fspath.Resolve(e.basePath, p)
	}
	return resolved
}

// SideEffects returns the manifest's sideEffects declaration, defaulting to
// the literal false when the manifest omits the field. A present value is
// returned verbatim; in particular an empty pattern list stays a list and is
// not collapsed to false.
func (e *EntryPoint) SideEffects() npm.SideEffects {
	se := e.manifest.SideEffects()
	if !se.IsPresent() {
		return npm.SideEffectsBool(false)
	}
	return se
}

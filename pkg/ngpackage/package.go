// SPDX-License-Identifier: MPL-2.0

package ngpackage

import (
	"golang.org/x/exp/slices"

	"ng-packagr/pkg/types"
)

// Package is one discovered library: the primary entry point plus its
// secondary entry points. Package-level options (destination handling,
// lifecycle script policy, the dependency allow list) are read from the
// primary entry point's configuration; secondaries never contribute them.
type Package struct {
	primary     *EntryPoint
	secondaries []*EntryPoint
}

// NewPackage assembles a package from its primary entry point and any
// secondary entry points. The secondaries slice is cloned.
func NewPackage(primary *EntryPoint, secondaries ...*EntryPoint) *Package {
	return &Package{
		primary:     primary,
		secondaries: slices.Clone(secondaries),
	}
}

// Primary returns the parentless entry point of the library.
func (p *Package) Primary() *EntryPoint { return p.primary }

// Secondaries returns the secondary entry points in discovery order.
func (p *Package) Secondaries() []*EntryPoint { return slices.Clone(p.secondaries) }

// EntryPoints returns every entry point, primary first.
func (p *Package) EntryPoints() []*EntryPoint {
	all := make([]*EntryPoint, 0, 1+len(p.secondaries))
	all = append(all, p.primary)
	all = append(all, p.secondaries...)
	return all
}

// FindEntryPoint returns the entry point with the given module ID, or nil.
func (p *Package) FindEntryPoint(moduleID string) *EntryPoint {
	for _, ep := range p.EntryPoints() {
		if ep.ModuleID() == moduleID {
			return ep
		}
	}
	return nil
}

// BasePath returns the primary entry point's base path: the library's
// source root.
func (p *Package) BasePath() types.FilesystemPath { return p.primary.BasePath() }

// Dest returns the shared library destination root.
func (p *Package) Dest() types.FilesystemPath { return p.primary.LibraryDestinationPath() }

// DeleteDestPath reports whether the destination directory is removed
// before a build. Absent configuration means true.
func (p *Package) DeleteDestPath() bool {
	cfg := p.primary.Config()
	if cfg == nil || cfg.DeleteDestPath == nil {
		return true
	}
	return *cfg.DeleteDestPath
}

// KeepLifecycleScripts reports whether npm lifecycle scripts survive into
// the distributable package.json. Absent configuration means false.
func (p *Package) KeepLifecycleScripts() bool {
	cfg := p.primary.Config()
	return cfg != nil && cfg.KeepLifecycleScripts
}

// WhitelistedNonPeerDependencies returns the dependency names allowed under
// "dependencies" without a diagnostic.
func (p *Package) WhitelistedNonPeerDependencies() []string {
	cfg := p.primary.Config()
	if cfg == nil {
		return nil
	}
	return slices.Clone(cfg.WhitelistedNonPeerDependencies)
}

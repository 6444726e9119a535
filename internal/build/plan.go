// SPDX-License-Identifier: MPL-2.0

// Package build turns a discovered library package into an ordered build plan
// and materializes the plan's filesystem outputs.
//
// The plan orders entry points so that every entry point is written after the
// entry points it imports, with the primary always last. Compilation and
// bundling are collaborators outside this package; the writer only creates
// what the resolver derives: the destination skeleton, each entry point's
// distributable package.json, and the packaged documentation files.
package build

import (
	"fmt"

	"ng-packagr/internal/dag"
	"ng-packagr/pkg/ngpackage"
	"ng-packagr/pkg/npm"
	"ng-packagr/pkg/types"
)

type (
	// PlanEntry is the resolved view of one entry point in build order:
	// every identifier and output path the downstream pipeline steps consume.
	PlanEntry struct {
		// EntryPoint is the resolved entry point backing this plan entry.
		EntryPoint *ngpackage.EntryPoint

		// ModuleID is the import-path identifier of the entry point.
		ModuleID string
		// FlatModuleFile is the filename stem of every bundle and declaration
		// artifact.
		FlatModuleFile string
		// UMDID is the global-scope identifier of the UMD bundle.
		UMDID string
		// AMDID is the named-module identifier for AMD loaders.
		AMDID string

		// IsSecondary reports whether the entry point is nested under the
		// primary.
		IsSecondary bool

		// EntryFilePath is the absolute path of the entry source file, or ""
		// when none is configured.
		EntryFilePath types.FilesystemPath
		// DestinationPath is the directory receiving the entry point's
		// declaration and metadata output.
		DestinationPath types.FilesystemPath
		// Files are the six artifact paths of the entry point.
		Files ngpackage.DestinationFiles

		// StyleIncludePaths are the absolutized stylesheet include directories.
		StyleIncludePaths []types.FilesystemPath
		// CSSURL is the configured stylesheet url() treatment.
		CSSURL ngpackage.CSSURL
		// SideEffects is the entry point's sideEffects declaration with the
		// absent state already defaulted to false.
		SideEffects npm.SideEffects
	}

	// Plan is the ordered set of entry points of one library build.
	Plan struct {
		pkg     *ngpackage.Package
		entries []PlanEntry
	}
)

// NewPlan orders the entry points of pkg for building. Ordering constraints
// come from two sources: every secondary entry point precedes the primary,
// and an entry point whose entry file imports a sibling's module ID follows
// that sibling. Import scanning is best-effort; an unreadable entry file
// contributes no constraints. A cycle among the imports yields a
// *dag.CycleError.
func NewPlan(pkg *ngpackage.Package) (*Plan, error) {
	if pkg == nil {
		return nil, fmt.Errorf("planning build order: package is nil")
	}

	entryPoints := pkg.EntryPoints()
	byModuleID := make(map[string]*ngpackage.EntryPoint, len(entryPoints))

	graph := dag.New()
	for _, ep := range entryPoints {
		graph.AddNode(ep.ModuleID())
		byModuleID[ep.ModuleID()] = ep
	}

	primaryID := pkg.Primary().ModuleID()
	for _, ep := range pkg.Secondaries() {
		graph.AddEdge(ep.ModuleID(), primaryID)
	}

	// Imports of a sibling's module ID order the sibling first. Specifiers
	// are matched exactly; deep imports into a sibling's file tree are not
	// recognized.
	for _, ep := range entryPoints {
		for _, specifier := range scanEntryImports(ep.EntryFilePath()) {
			if specifier == ep.ModuleID() || !graph.HasNode(specifier) {
				continue
			}
			graph.AddEdge(specifier, ep.ModuleID())
		}
	}

	order, err := graph.TopologicalSort()
	if err != nil {
		return nil, fmt.Errorf("planning build order: %w", err)
	}

	entries := make([]PlanEntry, 0, len(order))
	for _, moduleID := range order {
		entries = append(entries, newPlanEntry(byModuleID[moduleID]))
	}

	return &Plan{pkg: pkg, entries: entries}, nil
}

// newPlanEntry derives the resolved view of one entry point.
func newPlanEntry(ep *ngpackage.EntryPoint) PlanEntry {
	return PlanEntry{
		EntryPoint:        ep,
		ModuleID:          ep.ModuleID(),
		FlatModuleFile:    ep.FlatModuleFile(),
		UMDID:             ep.UMDID(),
		AMDID:             ep.AMDID(),
		IsSecondary:       ep.IsSecondary(),
		EntryFilePath:     ep.EntryFilePath(),
		DestinationPath:   ep.DestinationPath(),
		Files:             ep.DestinationFiles(),
		StyleIncludePaths: ep.StyleIncludePaths(),
		CSSURL:            ep.CSSURL(),
		SideEffects:       ep.SideEffects(),
	}
}

// Package returns the library package this plan was derived from.
func (p *Plan) Package() *ngpackage.Package { return p.pkg }

// Entries returns the plan entries in build order.
func (p *Plan) Entries() []PlanEntry { return p.entries }

// SPDX-License-Identifier: MPL-2.0

// Package npm models package.json manifests at the boundary where the
// packaging pipeline consumes them.
//
// A manifest is an arbitrary-key JSON mapping. This package keeps the raw
// mapping intact (unknown keys survive a parse/derive/serialize round trip)
// and layers typed accessors on top for the fields the pipeline reads:
//
//   - [PackageName]: the validated npm package name, optionally scoped
//   - [SideEffects]: the bool-or-pattern-list union, where an absent field,
//     false, and an empty list are three distinct states
//   - [Manifest.Dependencies], [Manifest.PeerDependencies], and friends
//
// Derivation helpers ([Manifest.WithEntries], [Manifest.WithoutKeys]) return
// modified copies so a manifest loaded from disk is never mutated in place;
// the build writer uses them to produce the distributable package.json of an
// entry point.
package npm

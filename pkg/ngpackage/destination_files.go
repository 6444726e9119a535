// SPDX-License-Identifier: MPL-2.0

package ngpackage

import (
	"ng-packagr/pkg/fspath"
	"ng-packagr/pkg/types"
)

// Output directory names under the library destination root.
const (
	esm2015Dir  = "esm2015"
	fesm2015Dir = "fesm2015"
	bundlesDir  = "bundles"
)

// DestinationFiles is the set of absolute output paths for one entry
// point's compiled artifacts. It is derived on demand from the entry point
// and never stored or mutated.
type DestinationFiles struct {
	// Declarations is the flattened type-declaration file (.d.ts) under
	// DestinationPath.
	Declarations types.FilesystemPath

	// Metadata is the Angular metadata file (.metadata.json) under
	// DestinationPath.
	Metadata types.FilesystemPath

	// ESM2015 is the per-module ES2015 output. Unlike the flattened
	// bundles, it nests under the source-relative subdirectory.
	ESM2015 types.FilesystemPath

	// FESM2015 is the flat ES2015 module bundle.
	FESM2015 types.FilesystemPath

	// UMD is the UMD bundle.
	UMD types.FilesystemPath

	// UMDMinified is the minified UMD bundle.
	UMDMinified types.FilesystemPath
}

// DestinationFiles computes the artifact paths for this entry point.
// Declarations and metadata live under DestinationPath; the ESM2015 tree
// nests its source-relative subdirectory under the shared library root;
// the flattened FESM2015 and UMD bundles sit directly under the library
// root's fesm2015 and bundles directories, never nested by source location.
func (e *EntryPoint) DestinationFiles() DestinationFiles {
	flat := e.FlatModuleFile()
	destination := e.DestinationPath()
	libraryDest := e.LibraryDestinationPath()

	return DestinationFiles{
		Declarations: fspath.JoinStr(destination, flat+".d.ts"),
		Metadata:     fspath.JoinStr(destination, flat+".metadata.json"),
		ESM2015:      fspath.JoinStr(libraryDest, esm2015Dir, e.SourceRelativePath().String(), flat+".js"),
		FESM2015:     fspath.JoinStr(libraryDest, fesm2015Dir, flat+".js"),
		UMD:          fspath.JoinStr(libraryDest, bundlesDir, flat+".umd.js"),
		UMDMinified:  fspath.JoinStr(libraryDest, bundlesDir, flat+".umd.min.js"),
	}
}

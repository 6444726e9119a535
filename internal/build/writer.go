// SPDX-License-Identifier: MPL-2.0

package build

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"ng-packagr/pkg/fspath"
	"ng-packagr/pkg/ngpackage"
	"ng-packagr/pkg/npm"
	"ng-packagr/pkg/types"
)

// docFileNames are the documentation files copied from the library source
// root into the destination root when present.
var docFileNames = []string{"README.md", "LICENSE"}

type (
	// WriterConfig holds the parameters for a Writer.
	WriterConfig struct {
		// DryRun logs every step without touching the filesystem.
		DryRun bool

		// Logger receives step logging. nil defaults to a stderr logger
		// prefixed with "build".
		Logger *log.Logger
	}

	// Writer materializes a Plan: destination cleanup, the directory
	// skeleton, each entry point's distributable package.json, and the
	// packaged documentation files. It never verifies or transforms
	// sources; compilation is a collaborator outside this package.
	Writer struct {
		logger *log.Logger
		dryRun bool
	}
)

// NewWriter creates a Writer from the given config.
func NewWriter(cfg WriterConfig) *Writer {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "build"})
	}
	return &Writer{logger: logger, dryRun: cfg.DryRun}
}

// Write executes the plan's filesystem steps in build order: optional
// destination cleanup, then per entry point the directory skeleton and the
// distributable package.json, then the documentation files. In dry-run mode
// the same steps are logged and nothing is written.
func (w *Writer) Write(ctx context.Context, plan *Plan) error {
	pkg := plan.Package()
	if w.dryRun {
		w.logger.Info("dry run: no files will be written")
	}

	dest := pkg.Dest()
	if pkg.DeleteDestPath() {
		w.logger.Info("clean destination", "path", dest)
		if err := w.removeAll(dest); err != nil {
			return err
		}
	}

	keepScripts := pkg.KeepLifecycleScripts()
	for _, entry := range plan.Entries() {
		if err := ctx.Err(); err != nil {
			return err
		}
		w.logger.Info("write entry point", "module", entry.ModuleID, "dest", entry.DestinationPath)
		if err := w.writeEntryPoint(entry, keepScripts); err != nil {
			return err
		}
	}

	if err := w.copyDocFiles(pkg.BasePath(), dest); err != nil {
		return err
	}

	w.logger.Info("package written",
		"name", pkg.Primary().ModuleID(),
		"entry_points", len(plan.Entries()),
		"dest", dest)
	return nil
}

// writeEntryPoint creates the entry point's destination skeleton and its
// distributable package.json.
func (w *Writer) writeEntryPoint(entry PlanEntry, keepScripts bool) error {
	skeleton := []types.FilesystemPath{
		entry.DestinationPath,
		fspath.Dir(entry.Files.ESM2015),
		fspath.Dir(entry.Files.FESM2015),
		fspath.Dir(entry.Files.UMD),
	}
	for _, dir := range skeleton {
		if err := w.mkdirAll(dir); err != nil {
			return err
		}
	}

	manifest, err := distManifest(entry.EntryPoint, keepScripts)
	if err != nil {
		return err
	}
	data, err := manifest.MarshalIndent()
	if err != nil {
		return err
	}
	return w.writeFile(fspath.JoinStr(entry.DestinationPath, npm.ManifestFileName), data)
}

// distManifest derives the distributable package.json of an entry point from
// its source manifest: the name becomes the module ID, the entry fields point
// at the artifact paths relative to the entry point's destination directory,
// sideEffects carries the defaulted declaration, the build-tool configuration
// is dropped, and lifecycle scripts are stripped unless kept.
//
// A secondary without its own package.json derives from an empty manifest,
// yielding the minimal identifying document its consumers resolve through.
func distManifest(ep *ngpackage.EntryPoint, keepScripts bool) (*npm.Manifest, error) {
	files := ep.DestinationFiles()
	dest := ep.DestinationPath()

	relTo := func(target types.FilesystemPath) (string, error) {
		rel, err := fspath.Rel(dest, target)
		if err != nil {
			return "", fmt.Errorf("relativizing %s against %s: %w", target, dest, err)
		}
		return fspath.ToSlash(rel), nil
	}

	main, err := relTo(files.UMD)
	if err != nil {
		return nil, err
	}
	module, err := relTo(files.FESM2015)
	if err != nil {
		return nil, err
	}
	esm2015, err := relTo(files.ESM2015)
	if err != nil {
		return nil, err
	}
	typings, err := relTo(files.Declarations)
	if err != nil {
		return nil, err
	}
	metadata, err := relTo(files.Metadata)
	if err != nil {
		return nil, err
	}

	derived := ep.Manifest().WithEntries(map[string]any{
		npm.KeyName:        ep.ModuleID(),
		npm.KeyMain:        main,
		npm.KeyModule:      module,
		npm.KeyES2015:      module,
		npm.KeyESM2015:     esm2015,
		npm.KeyTypings:     typings,
		npm.KeyMetadata:    metadata,
		npm.KeySideEffects: ep.SideEffects().Value(),
	}).WithoutKeys(npm.KeyNgPackage)

	if !keepScripts {
		derived = derived.WithoutKeys(npm.KeyScripts)
	}
	return derived, nil
}

// copyDocFiles copies the library's README and LICENSE into the destination
// root. Absent files are skipped.
func (w *Writer) copyDocFiles(basePath, dest types.FilesystemPath) error {
	for _, name := range docFileNames {
		src := fspath.JoinStr(basePath, name)
		if _, err := os.Stat(src.String()); err != nil {
			continue
		}
		w.logger.Info("copy file", "file", name, "dest", dest)
		if err := w.copyFile(src, fspath.JoinStr(dest, name)); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) removeAll(path types.FilesystemPath) error {
	if w.dryRun {
		return nil
	}
	if err := os.RemoveAll(path.String()); err != nil {
		return fmt.Errorf("removing destination %s: %w", path, err)
	}
	return nil
}

func (w *Writer) mkdirAll(dir types.FilesystemPath) error {
	if w.dryRun {
		return nil
	}
	if err := os.MkdirAll(dir.String(), 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

func (w *Writer) writeFile(path types.FilesystemPath, data []byte) error {
	if w.dryRun {
		return nil
	}
	if err := os.WriteFile(path.String(), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// copyFile copies src to dst, preserving the source file mode.
func (w *Writer) copyFile(src, dst types.FilesystemPath) error {
	if w.dryRun {
		return nil
	}

	srcFile, err := os.Open(src.String())
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return fmt.Errorf("stating %s: %w", src, err)
	}

	dstFile, err := os.OpenFile(dst.String(), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode())
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	return nil
}

// SPDX-License-Identifier: MPL-2.0

// Package discovery handles locating a library project and the secondary
// entry points nested under it.
package discovery

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"ng-packagr/pkg/fspath"
	"ng-packagr/pkg/ngpackage"
	"ng-packagr/pkg/npm"
	"ng-packagr/pkg/types"
)

const (
	// NgPackageFileName is the standalone packaging config file name.
	NgPackageFileName = "ng-package.json"
	// PackageJSONFileName is the npm manifest file name; it describes an entry
	// point when it carries an "ngPackage" property.
	PackageJSONFileName = npm.ManifestFileName
)

type (
	// ProjectNotFoundError is returned when the project path does not exist,
	// or when a project directory holds no recognized project file.
	ProjectNotFoundError struct {
		// Path is the resolved project path that was searched.
		Path string
	}

	// InvalidProjectFileError is returned when the project path names a file
	// that cannot describe a primary entry point.
	InvalidProjectFileError struct {
		// Path is the rejected file path.
		Path string
		// Reason describes why the file was rejected.
		Reason string
	}

	// Discovery locates the primary project file and walks its directory for
	// secondary entry points.
	Discovery struct {
		// ignore holds extra doublestar globs for directories that are never
		// searched, relative to the primary's base path.
		ignore []string
	}

	// entryPointFiles is the loaded per-directory input of one entry point.
	entryPointFiles struct {
		configPath types.FilesystemPath
		config     *ngpackage.Config
		manifest   *npm.Manifest
		// hasDestKey records whether the source document spelled out a dest
		// option. The schema injects the default during parsing, so presence
		// must be read off the raw document.
		hasDestKey bool
	}
)

// Error implements the error interface.
func (e *ProjectNotFoundError) Error() string {
	return fmt.Sprintf("project not found at %s: expected %s, or %s with an \"ngPackage\" property",
		e.Path, NgPackageFileName, PackageJSONFileName)
}

// Error implements the error interface.
func (e *InvalidProjectFileError) Error() string {
	return fmt.Sprintf("invalid project file %s: %s", e.Path, e.Reason)
}

// New creates a Discovery. The ignore globs are matched against directory
// paths relative to the primary's base path; matching directories are
// excluded from the secondary entry point search.
func New(ignore ...string) *Discovery {
	return &Discovery{ignore: ignore}
}

// LocateProjectFile resolves a project argument that may name a directory or
// a file to the config file describing the primary entry point. Directories
// are searched for ng-package.json first, then package.json.
func LocateProjectFile(project types.FilesystemPath) (types.FilesystemPath, error) {
	abs, err := fspath.Abs(project)
	if err != nil {
		return "", fmt.Errorf("resolving project path %s: %w", project, err)
	}

	info, err := os.Stat(abs.String())
	if err != nil {
		return "", &ProjectNotFoundError{Path: abs.String()}
	}

	if !info.IsDir() {
		switch fspath.Base(abs) {
		case NgPackageFileName, PackageJSONFileName:
			return abs, nil
		default:
			return "", &InvalidProjectFileError{
				Path:   abs.String(),
				Reason: fmt.Sprintf("file name must be %s or %s", NgPackageFileName, PackageJSONFileName),
			}
		}
	}

	for _, candidate := range []string{NgPackageFileName, PackageJSONFileName} {
		path := fspath.JoinStr(abs, candidate)
		if _, err := os.Stat(path.String()); err == nil {
			return path, nil
		}
	}

	return "", &ProjectNotFoundError{Path: abs.String()}
}

// DiscoverPackage resolves the project argument to the primary entry point
// and collects every secondary entry point nested under its directory. The
// returned diagnostics cover skipped directories and ignored options; fatal
// conditions (project missing, primary config unparseable) are errors.
func (d *Discovery) DiscoverPackage(project types.FilesystemPath) (*PackageResult, error) {
	configPath, err := LocateProjectFile(project)
	if err != nil {
		return nil, err
	}

	files, err := loadProjectFile(configPath)
	if err != nil {
		return nil, err
	}

	basePath := fspath.Dir(configPath)
	primary := ngpackage.NewEntryPoint(files.manifest, files.config, basePath, nil)

	secondaries, diags, err := d.discoverSecondaries(primary)
	if err != nil {
		return nil, err
	}

	return &PackageResult{
		Package:     ngpackage.NewPackage(primary, secondaries...),
		Diagnostics: diags,
	}, nil
}

// loadProjectFile loads the primary entry point's config and manifest from
// the located project file.
func loadProjectFile(configPath types.FilesystemPath) (*entryPointFiles, error) {
	dir := fspath.Dir(configPath)

	switch fspath.Base(configPath) {
	case NgPackageFileName:
		data, err := os.ReadFile(configPath.String())
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", configPath, err)
		}
		cfg, err := ngpackage.ParseConfig(data, configPath.String())
		if err != nil {
			return nil, err
		}
		files := &entryPointFiles{
			configPath: configPath,
			config:     cfg,
			hasDestKey: jsonHasKey(data, "dest"),
		}
		manifestPath := fspath.JoinStr(dir, PackageJSONFileName)
		if _, err := os.Stat(manifestPath.String()); err == nil {
			manifest, err := npm.LoadManifest(manifestPath)
			if err != nil {
				return nil, err
			}
			files.manifest = manifest
		}
		return files, nil

	case PackageJSONFileName:
		manifest, err := npm.LoadManifest(configPath)
		if err != nil {
			return nil, err
		}
		cfg, present, err := ngpackage.ConfigFromManifest(manifest, configPath.String())
		if err != nil {
			return nil, err
		}
		if !present {
			return nil, &InvalidProjectFileError{
				Path:   configPath.String(),
				Reason: "no \"ngPackage\" property",
			}
		}
		section, _ := manifest.Section(npm.KeyNgPackage)
		_, hasDest := section["dest"]
		return &entryPointFiles{
			configPath: configPath,
			config:     cfg,
			manifest:   manifest,
			hasDestKey: hasDest,
		}, nil

	default:
		return nil, &InvalidProjectFileError{
			Path:   configPath.String(),
			Reason: fmt.Sprintf("file name must be %s or %s", NgPackageFileName, PackageJSONFileName),
		}
	}
}

// loadEntryPointFiles reads a directory's packaging config: ng-package.json
// when present, else the ngPackage property of package.json. found is false
// when the directory declares no entry point.
func loadEntryPointFiles(dir types.FilesystemPath) (files *entryPointFiles, found bool, err error) {
	ngPackagePath := fspath.JoinStr(dir, NgPackageFileName)
	if _, statErr := os.Stat(ngPackagePath.String()); statErr == nil {
		loaded, loadErr := loadProjectFile(ngPackagePath)
		if loadErr != nil {
			return nil, true, loadErr
		}
		return loaded, true, nil
	}

	manifestPath := fspath.JoinStr(dir, PackageJSONFileName)
	if _, statErr := os.Stat(manifestPath.String()); statErr != nil {
		return nil, false, nil
	}
	manifest, loadErr := npm.LoadManifest(manifestPath)
	if loadErr != nil {
		return nil, true, loadErr
	}
	cfg, present, loadErr := ngpackage.ConfigFromManifest(manifest, manifestPath.String())
	if loadErr != nil {
		return nil, true, loadErr
	}
	if !present {
		return nil, false, nil
	}
	section, _ := manifest.Section(npm.KeyNgPackage)
	_, hasDest := section["dest"]
	return &entryPointFiles{
		configPath: manifestPath,
		config:     cfg,
		manifest:   manifest,
		hasDestKey: hasDest,
	}, true, nil
}

// discoverSecondaries walks the primary's base path for nested directories
// declaring entry points. Every discovered entry point is parented to the
// primary, including entry points nested under other secondaries.
func (d *Discovery) discoverSecondaries(primary *ngpackage.EntryPoint) ([]*ngpackage.EntryPoint, []Diagnostic, error) {
	basePath := primary.BasePath()
	destRel := relativeDest(basePath, primary.LibraryDestinationPath())

	var (
		secondaries []*ngpackage.EntryPoint
		diags       []Diagnostic
	)

	walkErr := filepath.WalkDir(basePath.String(), func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			// Best-effort: inaccessible subtrees are skipped, not fatal.
			return nil //nolint:nilerr // intentional skip of inaccessible paths
		}
		if !entry.IsDir() || path == basePath.String() {
			return nil
		}

		name := entry.Name()
		if name == "node_modules" || strings.HasPrefix(name, ".") {
			return fs.SkipDir
		}

		rel, relErr := filepath.Rel(basePath.String(), path)
		if relErr != nil {
			return nil //nolint:nilerr // skip paths that cannot be made relative
		}
		if destRel != "" && underDir(rel, destRel) {
			return fs.SkipDir
		}
		if d.isIgnored(rel) {
			return fs.SkipDir
		}

		files, found, loadErr := loadEntryPointFiles(types.FilesystemPath(path))
		if loadErr != nil {
			diags = append(diags, Diagnostic{
				Severity: SeverityError,
				Code:     CodeConfigParseSkipped,
				Message:  fmt.Sprintf("skipping entry point at %s: %v", rel, loadErr),
				Path:     path,
				Cause:    loadErr,
			})
			return nil
		}
		if !found {
			return nil
		}

		if files.hasDestKey {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning,
				Code:     CodeSecondaryDestIgnored,
				Message:  fmt.Sprintf("%s sets \"dest\", but only the primary entry point's destination is used", rel),
				Path:     files.configPath.String(),
			})
		}

		secondaries = append(secondaries, ngpackage.NewEntryPoint(files.manifest, files.config, types.FilesystemPath(path), primary))
		return nil
	})
	if walkErr != nil {
		return nil, nil, fmt.Errorf("discovering secondary entry points: %w", walkErr)
	}

	return secondaries, diags, nil
}

// isIgnored returns true if the given path (relative to the base path)
// matches any configured ignore glob.
func (d *Discovery) isIgnored(rel string) bool {
	normalized := filepath.ToSlash(rel)
	for _, pat := range d.ignore {
		if matched, matchErr := doublestar.Match(pat, normalized); matchErr == nil && matched {
			return true
		}
		if matched, matchErr := doublestar.Match(pat, normalized+"/"); matchErr == nil && matched {
			return true
		}
	}
	return false
}

// relativeDest returns the destination root relative to the base path, or ""
// when the destination lies outside the base path and never shadows the
// secondary search.
func relativeDest(basePath, dest types.FilesystemPath) string {
	rel, err := fspath.Rel(basePath, dest)
	if err != nil {
		return ""
	}
	s := rel.String()
	if s == "." || s == ".." || strings.HasPrefix(s, ".."+string(filepath.Separator)) {
		return ""
	}
	return s
}

// underDir reports whether rel equals dir or is nested beneath it.
func underDir(rel, dir string) bool {
	return rel == dir || strings.HasPrefix(rel, dir+string(filepath.Separator))
}

// jsonHasKey reports whether the top-level JSON object in data carries key.
func jsonHasKey(data []byte, key string) bool {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return false
	}
	_, ok := obj[key]
	return ok
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ng-packagr/internal/build"
	"ng-packagr/pkg/ngpackage"
	"ng-packagr/pkg/npm"
	"ng-packagr/pkg/types"
)

// newTestLibrary builds a discovery-shaped package rooted in a temp dir: a
// primary named @acme/widgets with a dist destination and one secondary per
// name. Names may be slash-nested ("testing/helpers").
func newTestLibrary(t *testing.T, secondaryNames ...string) *ngpackage.Package {
	t.Helper()

	dir := t.TempDir()
	manifest := npm.NewManifest(map[string]any{"name": "@acme/widgets"})
	primaryCfg := &ngpackage.Config{
		Dest: "dist",
		Lib:  ngpackage.LibConfig{EntryFile: "public_api.ts"},
	}
	primary := ngpackage.NewEntryPoint(manifest, primaryCfg, types.FilesystemPath(dir), nil)

	secondaries := make([]*ngpackage.EntryPoint, 0, len(secondaryNames))
	for _, name := range secondaryNames {
		base := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(base, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", base, err)
		}
		cfg := &ngpackage.Config{Lib: ngpackage.LibConfig{EntryFile: "public_api.ts"}}
		secondaries = append(secondaries, ngpackage.NewEntryPoint(nil, cfg, types.FilesystemPath(base), primary))
	}

	return ngpackage.NewPackage(primary, secondaries...)
}

func TestRenderDryRun(t *testing.T) {
	t.Parallel()

	pkg := newTestLibrary(t, "testing")
	plan, err := build.NewPlan(pkg)
	if err != nil {
		t.Fatalf("NewPlan() error: %v", err)
	}

	var buf bytes.Buffer
	renderDryRun(&buf, plan)
	out := buf.String()

	for _, want := range []string{
		"Dry Run",
		"@acme/widgets",
		"@acme/widgets/testing",
		"acme-widgets.umd.js",
		"acme-widgets-testing.umd.js",
		"fesm2015",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dry run output missing %q:\n%s", want, out)
		}
	}

	// Secondary entry points build before the primary, and the rendering
	// follows build order.
	secIdx := strings.Index(out, "(secondary)")
	priIdx := strings.Index(out, "(primary)")
	if secIdx == -1 || priIdx == -1 || secIdx > priIdx {
		t.Errorf("entry points out of build order (secondary at %d, primary at %d):\n%s", secIdx, priIdx, out)
	}
}

func TestRenderDryRun_ReportsKeptDestination(t *testing.T) {
	t.Parallel()

	keep := false
	dir := t.TempDir()
	manifest := npm.NewManifest(map[string]any{"name": "@acme/widgets"})
	cfg := &ngpackage.Config{
		Dest:           "dist",
		DeleteDestPath: &keep,
		Lib:            ngpackage.LibConfig{EntryFile: "public_api.ts"},
	}
	pkg := ngpackage.NewPackage(ngpackage.NewEntryPoint(manifest, cfg, types.FilesystemPath(dir), nil))

	plan, err := build.NewPlan(pkg)
	if err != nil {
		t.Fatalf("NewPlan() error: %v", err)
	}

	var buf bytes.Buffer
	renderDryRun(&buf, plan)

	if !strings.Contains(buf.String(), "deleteDestPath: false") {
		t.Errorf("dry run output does not mention the kept destination:\n%s", buf.String())
	}
}

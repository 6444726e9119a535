// SPDX-License-Identifier: MPL-2.0

package fspath_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"ng-packagr/pkg/fspath"
	"ng-packagr/pkg/platform"
	"ng-packagr/pkg/types"
)

func TestJoinVariants(t *testing.T) {
	t.Parallel()

	if got, want := fspath.Join("home", "user"), types.FilesystemPath(filepath.Join("home", "user")); got != want {
		t.Errorf("Join() = %q, want %q", got, want)
	}
	if got, want := fspath.JoinStr("lib", "package.json"), types.FilesystemPath(filepath.Join("lib", "package.json")); got != want {
		t.Errorf("JoinStr() = %q, want %q", got, want)
	}
	if got, want := fspath.JoinStr("dist", "bundles", "lib.umd.js"), types.FilesystemPath(filepath.Join("dist", "bundles", "lib.umd.js")); got != want {
		t.Errorf("JoinStr() with multiple segments = %q, want %q", got, want)
	}
}

func TestPathComponents(t *testing.T) {
	t.Parallel()

	p := types.FilesystemPath("home/user/file.txt")
	if got, want := fspath.Dir(p), types.FilesystemPath(filepath.Dir(string(p))); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
	if got := fspath.Base(p); got != "file.txt" {
		t.Errorf("Base() = %q, want file.txt", got)
	}
	dirty := types.FilesystemPath("home/user/../user/./file.txt")
	if got, want := fspath.Clean(dirty), types.FilesystemPath(filepath.Clean(string(dirty))); got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestAbs(t *testing.T) {
	t.Parallel()

	got, err := fspath.Abs(".")
	if err != nil {
		t.Fatalf("Abs() error = %v", err)
	}
	want, _ := filepath.Abs(".")
	if got != types.FilesystemPath(want) {
		t.Errorf("Abs() = %q, want %q", got, want)
	}
}

func TestRel(t *testing.T) {
	t.Parallel()

	got, err := fspath.Rel("/lib", "/lib/testing")
	if err != nil {
		t.Fatalf("Rel() error = %v", err)
	}
	if got != "testing" {
		t.Errorf("Rel() = %q, want testing", got)
	}
}

func TestSlashConversion(t *testing.T) {
	t.Parallel()

	if got, want := fspath.FromSlash("a/b/c"), types.FilesystemPath(filepath.FromSlash("a/b/c")); got != want {
		t.Errorf("FromSlash() = %q, want %q", got, want)
	}
	native := types.FilesystemPath(filepath.FromSlash("a/b/c"))
	if got := fspath.ToSlash(native); got != "a/b/c" {
		t.Errorf("ToSlash() = %q, want a/b/c", got)
	}
}

func TestIsAbs(t *testing.T) {
	t.Parallel()

	// Windows treats only drive-letter paths like C:\libs as absolute,
	// so the rooted fixture changes per platform.
	rooted := types.FilesystemPath("/libs/widgets")
	if runtime.GOOS == platform.Windows {
		rooted = types.FilesystemPath(`C:\libs\widgets`)
	}
	if !fspath.IsAbs(rooted) {
		t.Error("IsAbs() = false for rooted path")
	}
	if fspath.IsAbs("libs/widgets") {
		t.Error("IsAbs() = true for relative path")
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	base := types.FilesystemPath(filepath.FromSlash("/projects/lib"))

	t.Run("relative joins onto base", func(t *testing.T) {
		t.Parallel()
		got := fspath.Resolve(base, "dist")
		want := fspath.Join(base, "dist")
		if got != want {
			t.Errorf("Resolve() = %q, want %q", got, want)
		}
	})

	t.Run("absolute ignores base", func(t *testing.T) {
		t.Parallel()
		abs := types.FilesystemPath(filepath.FromSlash("/out/dist"))
		if runtime.GOOS == platform.Windows {
			abs = types.FilesystemPath(`C:\out\dist`)
		}
		got := fspath.Resolve(base, abs)
		want := fspath.Clean(abs)
		if got != want {
			t.Errorf("Resolve() = %q, want %q", got, want)
		}
	})
}

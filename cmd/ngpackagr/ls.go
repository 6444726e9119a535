// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/disiqueira/gotree/v3"
	"github.com/spf13/cobra"

	"ng-packagr/internal/config"
	"ng-packagr/internal/discovery"
	"ng-packagr/pkg/fspath"
	"ng-packagr/pkg/ngpackage"
)

// lsCmd renders the discovered entry points as a tree
var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the entry points of the project",
	Long: `List the entry points of a library project as a tree.

The tree is rooted at the primary entry point; secondary entry points nest
by their directory inside the library. Each node shows the module ID and
the destination directory its typings and metadata are written to.

Examples:
  ng-packagr ls                  List entry points of the current project
  ng-packagr ls -p libs/widgets  List entry points of a specific project`,
	Args: cobra.NoArgs,
	RunE: runLs,
}

func runLs(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	result, err := discovery.New(cfg.Watch.Ignore...).DiscoverPackage(resolveProject())
	if err != nil {
		return renderBuildError(cmd, err)
	}
	pkg := result.Package

	// Discovery warnings still render; ls itself never fails on them.
	renderDiagnostics(cmd.ErrOrStderr(), result.Diagnostics)

	fmt.Fprintf(cmd.OutOrStdout(), "%s Found %d entry point(s)\n\n", infoIcon, len(pkg.EntryPoints()))
	fmt.Fprint(cmd.OutOrStdout(), renderEntryPointTree(pkg))
	return nil
}

// entryPointTree arranges entry points as a tree keyed by their
// source-relative paths, creating intermediate directory nodes on demand.
type entryPointTree struct {
	tree gotree.Tree
	dirs map[string]gotree.Tree
}

func newEntryPointTree(rootLabel string) entryPointTree {
	return entryPointTree{tree: gotree.New(rootLabel), dirs: make(map[string]gotree.Tree)}
}

func (t entryPointTree) getDir(dirPath string) (dir gotree.Tree) {
	if dirPath == "." {
		return t.tree
	}
	dir = t.dirs[dirPath]
	if dir == nil {
		parentDir := t.getDir(filepath.Dir(dirPath))
		dir = parentDir.Add(filepath.Base(dirPath))
		t.dirs[dirPath] = dir
	}
	return
}

// insert adds an entry point node at relPath. The node doubles as the
// directory anchor for deeper entry points, so "testing/helpers" nests
// under the "testing" entry point when both exist. Discovery emits parents
// before children, which keeps the anchors in place before they are needed.
func (t entryPointTree) insert(relPath, label string) {
	dir := t.getDir(filepath.Dir(relPath))
	node := dir.Add(label)
	t.dirs[relPath] = node
}

func (t entryPointTree) render() string {
	return t.tree.Print()
}

// renderEntryPointTree builds the visual tree for pkg: the primary entry
// point as the root, secondaries nested by source-relative path.
func renderEntryPointTree(pkg *ngpackage.Package) string {
	t := newEntryPointTree(entryPointLabel(pkg, pkg.Primary()))
	for _, sec := range pkg.Secondaries() {
		t.insert(string(sec.SourceRelativePath()), entryPointLabel(pkg, sec))
	}
	return t.render()
}

// entryPointLabel formats one tree node: the module ID plus the destination
// directory relative to the library root.
func entryPointLabel(pkg *ngpackage.Package, ep *ngpackage.EntryPoint) string {
	label := PathStyle.Render(ep.ModuleID())
	if dest, err := fspath.Rel(pkg.BasePath(), ep.DestinationPath()); err == nil {
		label += SubtitleStyle.Render("  → " + fspath.ToSlash(dest))
	}
	return label
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"ng-packagr/internal/build"
	"ng-packagr/internal/config"
	"ng-packagr/internal/discovery"
	"ng-packagr/internal/watch"
	"ng-packagr/pkg/fspath"
	"ng-packagr/pkg/ngpackage"
	"ng-packagr/pkg/types"
)

var (
	// buildWatch rebuilds whenever source files change.
	buildWatch bool
	// buildDryRun logs every build step without writing output.
	buildDryRun bool

	buildCmd = &cobra.Command{
		Use:   "build",
		Short: "Build the library into the Angular Package Format",
		Long: `Build the library at the project path into the Angular Package Format.

The project file (ng-package.json, or package.json with an "ngPackage"
property) is located from -p/--project, the configured default project, or
the current directory. Secondary entry points are discovered from nested
directories carrying their own configuration and are built before the
primary.

Examples:
  ng-packagr build                  Build the project in the current directory
  ng-packagr build -p libs/widgets  Build a specific project
  ng-packagr build --watch          Rebuild whenever sources change
  ng-packagr build --dry-run        Show the build plan without writing files`,
		Args: cobra.NoArgs,
		RunE: runBuild,
	}
)

func init() {
	buildCmd.Flags().BoolVarP(&buildWatch, "watch", "w", false, "rebuild whenever source files change")
	buildCmd.Flags().BoolVar(&buildDryRun, "dry-run", false, "show the build plan without writing files")
}

func runBuild(cmd *cobra.Command, args []string) error {
	// Watch mode rebuilds on file changes, while dry-run never writes output
	// at all, so combining them has no sensible meaning.
	if buildWatch && buildDryRun {
		return fmt.Errorf("--watch and --dry-run cannot be used together")
	}

	if buildWatch {
		return runWatchMode(cmd)
	}

	pkg, err := loadValidatedPackage(cmd)
	if err != nil {
		return renderBuildError(cmd, err)
	}
	if err := buildPackage(cmd, pkg); err != nil {
		return renderBuildError(cmd, err)
	}
	return nil
}

// loadValidatedPackage discovers the package at the resolved project path,
// renders the discovery and validation diagnostics, and aborts with a
// non-zero exit when any diagnostic carries error severity.
func loadValidatedPackage(cmd *cobra.Command) (*ngpackage.Package, error) {
	cfg := config.Get()

	result, err := discovery.New(cfg.Watch.Ignore...).DiscoverPackage(resolveProject())
	if err != nil {
		return nil, err
	}

	diags := append(result.Diagnostics, discovery.ValidatePackage(result.Package)...)
	renderDiagnostics(cmd.ErrOrStderr(), diags)

	if discovery.HasErrors(diags) {
		renderFirstErrorIssue(cmd.ErrOrStderr(), diags)
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return nil, &ExitError{Code: types.ExitFailure, Err: fmt.Errorf("validation failed for %s", result.Package.Primary().ModuleID())}
	}

	return result.Package, nil
}

// buildPackage plans and writes one build of pkg, honoring --dry-run.
func buildPackage(cmd *cobra.Command, pkg *ngpackage.Package) error {
	plan, err := build.NewPlan(pkg)
	if err != nil {
		return err
	}

	if buildDryRun {
		renderDryRun(cmd.OutOrStdout(), plan)
	}

	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "build"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	writer := build.NewWriter(build.WriterConfig{DryRun: buildDryRun, Logger: logger})
	if err := writer.Write(cmd.Context(), plan); err != nil {
		return err
	}

	if buildDryRun {
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Built %s (%d entry point(s)) into %s\n",
		SuccessStyle.Render("✓"),
		PathStyle.Render(pkg.Primary().ModuleID()),
		len(plan.Entries()),
		PathStyle.Render(string(pkg.Dest())),
	)
	return nil
}

// runWatchMode builds once, then watches the source tree and rebuilds
// whenever a matching file changes. It blocks until the context is
// cancelled (e.g., Ctrl+C).
func runWatchMode(cmd *cobra.Command) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	cfg := config.Get()

	pkg, err := loadValidatedPackage(cmd)
	if err != nil {
		return renderBuildError(cmd, err)
	}

	// Rebuild closure. Discovery runs again on every change so edits to
	// ng-package.json files are picked up without restarting the watcher.
	rebuild := func(ctx context.Context, _ []string) error {
		p, loadErr := loadValidatedPackage(cmd)
		if loadErr != nil {
			return loadErr
		}
		return buildPackage(cmd, p)
	}

	fmt.Fprintf(stdout, "%s Watch mode: initial build of '%s'\n",
		VerboseHighlightStyle.Render("→"), pkg.Primary().ModuleID())
	if buildErr := buildPackage(cmd, pkg); buildErr != nil {
		// Log but keep watching; the user may fix the error and save again.
		fmt.Fprintf(stderr, "%s Initial build failed: %v\n", WarningStyle.Render("!"), buildErr)
	}

	fmt.Fprintf(stdout, "\n%s Watching for changes (Ctrl+C to stop)...\n\n", VerboseHighlightStyle.Render("→"))

	watchCfg := watch.Config{
		Patterns: []types.GlobPattern{"**/*.{ts,html,css,scss,json}"},
		Ignore:   watchIgnores(cfg, pkg),
		Debounce: time.Duration(cfg.Watch.DebounceMs) * time.Millisecond,
		BaseDir:  pkg.BasePath(),
		OnChange: func(ctx context.Context, changed []string) error {
			fmt.Fprintf(stdout, "%s Detected %d change(s). Rebuilding '%s'...\n",
				VerboseHighlightStyle.Render("→"), len(changed), pkg.Primary().ModuleID())
			if rebuildErr := rebuild(ctx, changed); rebuildErr != nil {
				fmt.Fprintf(stderr, "%s Build failed: %v\n", WarningStyle.Render("!"), rebuildErr)
			}
			fmt.Fprintf(stdout, "\n%s Watching for changes...\n\n", VerboseHighlightStyle.Render("→"))
			return nil
		},
		Stdout: stdout,
		Stderr: stderr,
	}

	w, err := watch.New(watchCfg)
	if err != nil {
		return renderBuildError(cmd, fmt.Errorf("failed to start watcher: %w", err))
	}
	return w.Run(cmd.Context())
}

// watchIgnores merges the configured ignore globs with the package's
// destination directory, so output writes never retrigger a build.
func watchIgnores(cfg *config.Config, pkg *ngpackage.Package) []types.GlobPattern {
	ignores := make([]types.GlobPattern, 0, len(cfg.Watch.Ignore)+1)
	for _, pat := range cfg.Watch.Ignore {
		ignores = append(ignores, types.GlobPattern(pat))
	}
	if rel, err := fspath.Rel(pkg.BasePath(), pkg.Dest()); err == nil {
		relSlash := fspath.ToSlash(rel)
		if relSlash != "." && !strings.HasPrefix(relSlash, "../") {
			ignores = append(ignores, types.GlobPattern(relSlash+"/**"))
		}
	}
	return ignores
}

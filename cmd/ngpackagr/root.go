// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"ng-packagr/internal/config"
	"ng-packagr/internal/issue"
	"ng-packagr/pkg/types"
)

// Build metadata, overridden via -ldflags on release builds.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Persistent flag targets shared by every subcommand.
var (
	// verbose switches on diagnostic detail; the config's ui.verbose acts
	// as the default when the flag is absent.
	verbose bool
	// cfgFile overrides the discovered tool config file.
	cfgFile string
	// projectFlag is the -p/--project value naming the project file or its
	// directory. Empty falls back to the configured default project, then
	// to the current directory.
	projectFlag string
)

var rootCmd = &cobra.Command{
	Use:   "ng-packagr",
	Short: "Compile and package Angular libraries in the Angular Package Format",
	Long: TitleStyle.Render("ng-packagr") + SubtitleStyle.Render(" - Angular library packager") + `

ng-packagr builds a library into the Angular Package Format from a single
configuration file: module identifiers, the flattened bundle layout, typings
locations, and the distributable package.json are all derived from
ng-package.json.

Entry points are discovered from the project directory: the primary from
ng-package.json (or the "ngPackage" property of package.json), secondary
entry points from nested directories carrying their own configuration.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Create an ng-package.json next to your library's package.json
  2. Point it at your entry file:  "lib": {"entryFile": "public_api.ts"}
  3. Run: ng-packagr build

` + SubtitleStyle.Render("Examples:") + `
  ng-packagr build                  Build the library in the current directory
  ng-packagr build -p libs/widgets  Build a specific project
  ng-packagr build --watch          Rebuild on source changes
  ng-packagr ls                     Show the discovered entry points
  ng-packagr validate               Check configuration and manifests
  ng-packagr init                   Create a starter ng-package.json`,
}

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/ng-packagr/config.cue)")
	rootCmd.PersistentFlags().StringVarP(&projectFlag, "project", "p", "", "path to the project file or its directory")

	rootCmd.AddCommand(buildCmd, lsCmd, validateCmd, initCmd, configCmd, completionCmd)
}

// versionString renders the --version output.
func versionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command and maps failures to process exit codes.
// fang supplies the styled help, error rendering and --version handling;
// the version has to come in through fang because it overrides
// rootCmd.Version.
func Execute() {
	err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	)
	if err == nil {
		return
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		os.Exit(int(exitErr.Code))
	}
	os.Exit(1)
}

// initRootConfig loads the tool config before any command runs. A failed
// load degrades to the defaults; the warning is printed once here so the
// commands themselves need no config error handling.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}

	// The flag wins over the configured default.
	if cfg != nil && !verbose {
		verbose = cfg.UI.Verbose
	}
}

// resolveProject returns the project path a command should operate on:
// the -p flag when given, else the configured default project, else the
// current directory.
func resolveProject() types.FilesystemPath {
	if projectFlag != "" {
		return types.FilesystemPath(projectFlag)
	}
	if project := config.Get().Project; project != "" {
		return project
	}
	return "."
}

// formatErrorForDisplay prefers the actionable rendering (suggestions,
// verbose cause chain) when the error carries one.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"ng-packagr/internal/config"
	"ng-packagr/internal/discovery"
	"ng-packagr/pkg/types"
)

// Style definitions for validation output
var (
	successIcon = SuccessStyle.Render("✓")
	errorIcon   = ErrorStyle.Render("✗")
	infoIcon    = SubtitleStyle.Render("•")

	validateTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary).
				MarginBottom(1)

	diagCodeStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate the project configuration and manifests",
	Long: `Validate a library project without building it.

Runs the same discovery and checks as the build command: the project file
must parse, the primary manifest must carry a valid package name, every
entry point needs an existing entry file, and dependencies that belong in
peerDependencies are reported. All diagnostics are shown in a single pass
so issues can be fixed together rather than one rerun at a time.

With a path argument, validates that project instead of the -p/--project
or configured default.

Examples:
  ng-packagr validate                Validate the project in the current directory
  ng-packagr validate libs/widgets   Validate a specific project`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	project := resolveProject()
	if len(args) == 1 {
		project = types.FilesystemPath(args[0])
	}

	fmt.Fprintln(stdout, validateTitleStyle.Render("Project Validation"))
	fmt.Fprintf(stdout, "%s Path: %s\n", infoIcon, PathStyle.Render(string(project)))
	fmt.Fprintln(stdout)

	cfg := config.Get()
	result, err := discovery.New(cfg.Watch.Ignore...).DiscoverPackage(project)
	if err != nil {
		renderIssueCardForError(stderr, err)
		fmt.Fprintf(stderr, "%s Discovery failed: %s\n", errorIcon, err)
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return &ExitError{Code: types.ExitFailure, Err: err}
	}

	pkg := result.Package
	fmt.Fprintf(stdout, "%s %d entry point(s) discovered for %s\n",
		successIcon, len(pkg.EntryPoints()), PathStyle.Render(pkg.Primary().ModuleID()))

	diags := append(result.Diagnostics, discovery.ValidatePackage(pkg)...)
	if len(diags) > 0 {
		fmt.Fprintln(stderr)
		renderDiagnostics(stderr, diags)
	}

	if discovery.HasErrors(diags) {
		errCount := 0
		for _, d := range diags {
			if d.Severity == discovery.SeverityError {
				errCount++
			}
		}
		fmt.Fprintln(stderr)
		fmt.Fprintf(stderr, "%s Validation failed with %d error(s)\n", errorIcon, errCount)
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return &ExitError{Code: types.ExitFailure, Err: fmt.Errorf("validation failed for %s", pkg.Primary().ModuleID())}
	}

	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "%s Project is valid\n", successIcon)
	return nil
}

// renderDiagnostics writes the numbered diagnostic list to w. It is a no-op
// when diags is empty.
func renderDiagnostics(w io.Writer, diags []discovery.Diagnostic) {
	if len(diags) == 0 {
		return
	}

	fmt.Fprintf(w, "%s %d diagnostic issue(s) found:\n", WarningStyle.Render("!"), len(diags))
	fmt.Fprintln(w)

	for i, diag := range diags {
		issueNum := fmt.Sprintf("  %d.", i+1)
		codeTag := diagCodeStyle.Render(fmt.Sprintf("[%s]", diag.Code))
		if diag.Path != "" {
			fmt.Fprintf(w, "%s %s %s\n", issueNum, codeTag, PathStyle.Render(diag.Path))
			fmt.Fprintf(w, "     %s\n", diag.Message)
		} else {
			fmt.Fprintf(w, "%s %s %s\n", issueNum, codeTag, diag.Message)
		}
	}
}

// renderIssueCardForError renders the help card matching err, when the
// catalog has one.
func renderIssueCardForError(w io.Writer, err error) {
	if id, ok := classifyBuildError(err); ok {
		renderIssueCard(w, id)
	}
}

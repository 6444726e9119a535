// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"ng-packagr/internal/config"
	"ng-packagr/internal/dag"
	"ng-packagr/internal/discovery"
	"ng-packagr/internal/issue"
	"ng-packagr/internal/watch"
	"ng-packagr/pkg/types"
)

// classifyBuildError maps discovery and build failures to issue catalog IDs.
// The second return is false for errors without a catalog entry; those are
// rendered without a help card.
func classifyBuildError(err error) (issue.Id, bool) {
	var (
		notFound    *discovery.ProjectNotFoundError
		invalidFile *discovery.InvalidProjectFileError
		cycle       *dag.CycleError
		jsonSyntax  *json.SyntaxError
		jsonType    *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &notFound):
		return issue.ProjectNotFoundId, true
	case errors.As(err, &invalidFile), errors.As(err, &jsonSyntax), errors.As(err, &jsonType):
		return issue.ProjectFileParseErrorId, true
	case errors.As(err, &cycle):
		return issue.DependencyCycleId, true
	case errors.Is(err, watch.ErrInvalidWatchConfig):
		return issue.WatchFailedId, true
	case errors.Is(err, os.ErrPermission):
		return issue.InvalidDestinationId, true
	}
	return 0, false
}

// issueForDiagnostic maps an error-severity validation diagnostic to its
// issue catalog entry.
func issueForDiagnostic(d discovery.Diagnostic) (issue.Id, bool) {
	switch d.Code {
	case discovery.CodeEntryFileMissing, discovery.CodeEntryFileUnset:
		return issue.EntryFileMissingId, true
	case discovery.CodePackageNameMissing, discovery.CodePackageNameInvalid:
		return issue.PackageNameMissingId, true
	case discovery.CodeNonPeerDependencies:
		return issue.NonPeerDependenciesId, true
	}
	return 0, false
}

// renderFirstErrorIssue writes the help card for the first error-severity
// diagnostic that has a catalog entry. At most one card is rendered; the
// numbered diagnostic list already enumerates the rest.
func renderFirstErrorIssue(w io.Writer, diags []discovery.Diagnostic) {
	for _, d := range diags {
		if d.Severity != discovery.SeverityError {
			continue
		}
		if id, ok := issueForDiagnostic(d); ok {
			renderIssueCard(w, id)
		}
		return
	}
}

// renderBuildError renders err with its issue card (when one applies) and
// converts it to a silent non-zero exit. An *ExitError passes through
// unchanged so already-rendered failures are not reported twice.
func renderBuildError(cmd *cobra.Command, err error) error {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	stderr := cmd.ErrOrStderr()
	if id, ok := classifyBuildError(err); ok {
		renderIssueCard(stderr, id)
	}
	fmt.Fprintf(stderr, "\n%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verbose))

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return &ExitError{Code: types.ExitFailure, Err: err}
}

// renderIssueCard writes the markdown help card for id. Rendering failures
// are swallowed; the card is supplementary to the error line that follows.
func renderIssueCard(w io.Writer, id issue.Id) {
	iss := issue.Get(id)
	if iss == nil {
		return
	}
	if rendered, err := iss.Render(issueStyle()); err == nil {
		fmt.Fprint(w, rendered)
	}
}

// issueStyle selects the glamour style for issue cards from the configured
// color scheme. Auto resolves to dark, matching the palette in styles.go.
func issueStyle() string {
	if config.Get().UI.ColorScheme == config.ColorSchemeLight {
		return "light"
	}
	return "dark"
}

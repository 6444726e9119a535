// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"ng-packagr/internal/build"
)

// renderDryRun prints the resolved build plan without executing it. It shows
// every entry point in build order with its identifiers, source file, and
// artifact paths, everything a user needs to understand what a build would
// produce and where.
func renderDryRun(w io.Writer, plan *build.Plan) {
	fmt.Fprintln(w, TitleStyle.Render("Dry Run"))
	fmt.Fprintln(w)

	// Package metadata.
	pkg := plan.Package()
	fmt.Fprintf(w, "  %s %s\n", VerboseHighlightStyle.Render("Package:"), PathStyle.Render(pkg.Primary().ModuleID()))
	fmt.Fprintf(w, "  %s %s\n", VerboseHighlightStyle.Render("Source:"), pkg.BasePath())
	fmt.Fprintf(w, "  %s %s\n", VerboseHighlightStyle.Render("Destination:"), pkg.Dest())
	if !pkg.DeleteDestPath() {
		fmt.Fprintf(w, "  %s existing output is kept (deleteDestPath: false)\n", VerboseHighlightStyle.Render("Cleanup:"))
	}

	// Entry points in build order.
	for _, entry := range plan.Entries() {
		kind := "primary"
		if entry.IsSecondary {
			kind = "secondary"
		}

		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %s %s (%s)\n", VerboseHighlightStyle.Render("Entry point:"), PathStyle.Render(entry.ModuleID), kind)
		fmt.Fprintf(w, "    %s %s\n", VerboseHighlightStyle.Render("Flat file:"), entry.FlatModuleFile)
		fmt.Fprintf(w, "    %s %s\n", VerboseHighlightStyle.Render("UMD id:"), entry.UMDID)
		fmt.Fprintf(w, "    %s %s\n", VerboseHighlightStyle.Render("AMD id:"), entry.AMDID)
		if entry.EntryFilePath != "" {
			fmt.Fprintf(w, "    %s %s\n", VerboseHighlightStyle.Render("Entry file:"), entry.EntryFilePath)
		}

		fmt.Fprintln(w, VerboseHighlightStyle.Render("    Artifacts:"))
		for _, artifact := range []string{
			string(entry.Files.Declarations),
			string(entry.Files.Metadata),
			string(entry.Files.ESM2015),
			string(entry.Files.FESM2015),
			string(entry.Files.UMD),
			string(entry.Files.UMDMinified),
		} {
			fmt.Fprintf(w, "      %s\n", VerboseStyle.Render(artifact))
		}
	}

	fmt.Fprintln(w)
}

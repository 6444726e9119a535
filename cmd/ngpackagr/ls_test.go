// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"
	"testing"
)

func TestRenderEntryPointTree(t *testing.T) {
	t.Parallel()

	pkg := newTestLibrary(t, "buttons", "testing", "testing/helpers")
	out := renderEntryPointTree(pkg)

	for _, want := range []string{
		"@acme/widgets",
		"@acme/widgets/buttons",
		"@acme/widgets/testing",
		"@acme/widgets/testing/helpers",
		"dist/testing/helpers",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("tree missing %q:\n%s", want, out)
		}
	}

	// The nested entry point must render under its parent, not as a direct
	// child of the root.
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "@acme/widgets/testing/helpers") {
			continue
		}
		if strings.HasPrefix(line, "├──") || strings.HasPrefix(line, "└──") {
			t.Errorf("nested entry point rendered at root depth: %q", line)
		}
	}
}

func TestRenderEntryPointTree_PrimaryOnly(t *testing.T) {
	t.Parallel()

	pkg := newTestLibrary(t)
	out := renderEntryPointTree(pkg)

	if !strings.Contains(out, "@acme/widgets") {
		t.Errorf("tree missing the primary module ID:\n%s", out)
	}
	if strings.Contains(out, "├──") || strings.Contains(out, "└──") {
		t.Errorf("tree has children for a primary-only package:\n%s", out)
	}
}

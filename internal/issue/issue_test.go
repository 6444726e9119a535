// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

// stubRender replaces the glamour call with an identity function so tests can
// assert on markdown content without terminal styling in the way.
func stubRender(t *testing.T) {
	t.Helper()
	original := render
	render = func(in, stylePath string) (string, error) {
		return in, nil
	}
	t.Cleanup(func() {
		render = original
	})
}

func TestCatalog(t *testing.T) {
	stubRender(t)

	tests := []struct {
		name     string
		id       Id
		contains string
	}{
		{"project not found", ProjectNotFoundId, "No library project found"},
		{"project file parse error", ProjectFileParseErrorId, "Failed to parse the project file"},
		{"entry file missing", EntryFileMissingId, "Entry file not found"},
		{"package name missing", PackageNameMissingId, "Package name missing"},
		{"invalid destination", InvalidDestinationId, "Invalid destination"},
		{"dependency cycle", DependencyCycleId, "Entry point cycle"},
		{"non-peer dependencies", NonPeerDependenciesId, "peer dependencies"},
		{"config load failed", ConfigLoadFailedId, "Failed to load configuration"},
		{"watch failed", WatchFailedId, "Watch mode failed"},
	}

	seen := make(map[Id]bool)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iss := Get(tt.id)
			if iss == nil {
				t.Fatalf("Get(%d) returned nil", tt.id)
			}
			if iss.Id() != tt.id {
				t.Errorf("Id() = %d, want %d", iss.Id(), tt.id)
			}
			msg := string(iss.MarkdownMsg())
			if !strings.Contains(msg, tt.contains) {
				t.Errorf("MarkdownMsg() does not contain %q", tt.contains)
			}
			if !strings.Contains(msg, "#") {
				t.Error("MarkdownMsg() has no markdown heading")
			}
			rendered, err := iss.Render("dark")
			if err != nil {
				t.Errorf("Render() error = %v", err)
			}
			if rendered == "" {
				t.Error("Render() returned an empty string")
			}
		})

		if seen[tt.id] {
			t.Errorf("duplicate issue ID %d in the table", tt.id)
		}
		seen[tt.id] = true
	}

	if got := len(Values()); got != len(seen) {
		t.Errorf("Values() returned %d issues, the table covers %d", got, len(seen))
	}
}

func TestCatalogIDsStartAtOne(t *testing.T) {
	if ProjectNotFoundId != 1 {
		t.Errorf("ProjectNotFoundId = %d, want 1", ProjectNotFoundId)
	}
	for _, iss := range Values() {
		if iss.Id() < 1 {
			t.Errorf("issue ID %d is not positive", iss.Id())
		}
	}
}

func TestGetUnknownID(t *testing.T) {
	if got := Get(Id(9999)); got != nil {
		t.Errorf("Get(9999) = %v, want nil", got)
	}
}

func TestRenderAppendsSeeAlso(t *testing.T) {
	stubRender(t)

	withLinks := &Issue{
		id:       Id(9999),
		mdMsg:    "# Something broke",
		docLinks: []HttpLink{"https://example.com/docs/troubleshooting"},
		extLinks: []HttpLink{"https://github.com/example/repo/issues"},
	}

	rendered, err := withLinks.Render("dark")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(rendered, "See also") {
		t.Error("Render() with links should append a See also section")
	}
	if !strings.Contains(rendered, "https://example.com/docs/troubleshooting") {
		t.Error("Render() should include the doc link")
	}
	if !strings.Contains(rendered, "https://github.com/example/repo/issues") {
		t.Error("Render() should include the external link")
	}

	withoutLinks := &Issue{
		id:    Id(9998),
		mdMsg: "# Something else broke",
	}

	rendered, err = withoutLinks.Render("dark")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(rendered, "See also") {
		t.Error("Render() without links should not mention See also")
	}
}

func TestLinkAccessorsReturnCopies(t *testing.T) {
	iss := &Issue{
		id:       Id(9999),
		mdMsg:    "# Something broke",
		docLinks: []HttpLink{"https://example.com/docs"},
		extLinks: []HttpLink{"https://example.com/extra"},
	}

	docs := iss.DocLinks()
	docs[0] = "https://tampered.invalid"
	if iss.DocLinks()[0] != "https://example.com/docs" {
		t.Error("mutating the DocLinks() result changed the issue")
	}

	ext := iss.ExtLinks()
	ext[0] = "https://tampered.invalid"
	if iss.ExtLinks()[0] != "https://example.com/extra" {
		t.Error("mutating the ExtLinks() result changed the issue")
	}
}

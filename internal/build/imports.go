// SPDX-License-Identifier: MPL-2.0

package build

import (
	"os"
	"regexp"
	"strings"

	"ng-packagr/pkg/types"
)

// importSpecifierPattern captures the quoted module specifier of ES import
// and export statements, including side-effect imports and dynamic import()
// calls. The character class stops at the first quote after the keyword, so
// multi-line import lists resolve to their trailing specifier.
var importSpecifierPattern = regexp.MustCompile(`\b(?:import|export)\b[^'"]*['"]([^'"]+)['"]`)

// scanEntryImports extracts the bare module specifiers imported by the entry
// source file at path, deduplicated in first-seen order. Relative and
// absolute specifiers are dropped; only bare specifiers can name a sibling
// entry point. The scan is textual and best-effort: an empty path or an
// unreadable file yields nil rather than an error.
func scanEntryImports(path types.FilesystemPath) []string {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path.String())
	if err != nil {
		return nil
	}

	var (
		specifiers []string
		seen       = make(map[string]struct{})
	)
	for _, match := range importSpecifierPattern.FindAllStringSubmatch(string(data), -1) {
		specifier := match[1]
		if specifier == "" || strings.HasPrefix(specifier, ".") || strings.HasPrefix(specifier, "/") {
			continue
		}
		if _, dup := seen[specifier]; dup {
			continue
		}
		seen[specifier] = struct{}{}
		specifiers = append(specifiers, specifier)
	}
	return specifiers
}

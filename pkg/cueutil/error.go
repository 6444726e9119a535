// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue/errors"
)

// FormatError renders a CUE evaluation error as
// "<file>: <json-path>: <message>", one line per underlying error. Non-CUE
// errors are wrapped with the filename only.
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	list := errors.Errors(err)
	if len(list) == 0 {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	lines := make([]string, len(list))
	for i, e := range list {
		lines[i] = renderErrorLine(e)
	}

	if len(lines) == 1 {
		return fmt.Errorf("%s: %s", filePath, lines[0])
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filePath, strings.Join(lines, "\n  "))
}

// renderErrorLine formats a single CUE error as "<json-path>: <message>",
// stripping the path prefix CUE may repeat inside the message itself.
func renderErrorLine(e errors.Error) string {
	pathStr := formatPath(errors.Path(e))
	msg := e.Error()
	if pathStr == "" {
		return msg
	}
	if rest, ok := strings.CutPrefix(msg, pathStr); ok {
		msg = strings.TrimSpace(strings.TrimPrefix(rest, ":"))
	}
	return pathStr + ": " + msg
}

// formatPath joins a CUE error path into JSON-path notation: numeric
// segments become indices, so ["lib", "0", "entryFile"] renders as
// "lib[0].entryFile".
func formatPath(path []string) string {
	var b strings.Builder
	for i, part := range path {
		switch {
		case i == 0:
			b.WriteString(part)
		case isDigits(part):
			b.WriteString("[" + part + "]")
		default:
			b.WriteString("." + part)
		}
	}
	return b.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) < 0
}

// CheckFileSize rejects data larger than maxSize. Exposed so callers that
// read files themselves can apply the same cap before parsing.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if int64(len(data)) <= maxSize {
		return nil
	}
	return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes",
		filename, len(data), maxSize)
}

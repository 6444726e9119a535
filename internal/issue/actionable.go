// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

// ActionableError carries what failed, the file involved, and hints the
// user can act on. The CLI renders Format() for these instead of the bare
// error string.
//
// Built through the ErrorContext chain:
//
//	return issue.NewErrorContext().
//		WithOperation("load configuration").
//		WithResource(path).
//		WithSuggestion("Check the file for CUE syntax errors").
//		Wrap(err).
//		BuildError()
type ActionableError struct {
	// Operation is the attempted action, as a verb phrase.
	Operation string
	// Resource is the file or entity involved, when one exists.
	Resource string
	// Suggestions are user-actionable fixes, rendered as bullets.
	Suggestions []string
	// Cause is the underlying error, if any.
	Cause error
}

// ErrorContext accumulates ActionableError fields incrementally, so a call
// site can attach operation and resource before the failure point and
// suggestions at it.
type ErrorContext struct {
	operation   string
	resource    string
	suggestions []string
	cause       error
}

// NewErrorContext starts an empty builder.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// Error implements the error interface with the non-verbose one-liner:
// "failed to <operation>[: <resource>][: <cause>]".
func (e *ActionableError) Error() string {
	parts := []string{"failed to " + e.Operation}
	if e.Resource != "" {
		parts = append(parts, e.Resource)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *ActionableError) Unwrap() error { return e.Cause }

// Format renders the error for terminal output: the Error() line, then one
// bullet per suggestion. Verbose mode appends the numbered cause chain.
func (e *ActionableError) Format(verbose bool) string {
	var b strings.Builder
	b.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		b.WriteByte('\n')
		for _, s := range e.Suggestions {
			fmt.Fprintf(&b, "\n  • %s", s)
		}
	}

	if verbose && e.Cause != nil {
		b.WriteString("\n\nError chain:")
		depth := 0
		for cause := e.Cause; cause != nil; cause = errors.Unwrap(cause) {
			depth++
			fmt.Fprintf(&b, "\n  %d. %s", depth, cause.Error())
		}
	}
	return b.String()
}

// WithOperation records the attempted action, e.g. "load configuration".
func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.operation = op
	return c
}

// WithResource records the file or entity involved.
func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.resource = res
	return c
}

// WithSuggestion appends one user-actionable hint. Repeatable.
func (c *ErrorContext) WithSuggestion(sug string) *ErrorContext {
	c.suggestions = append(c.suggestions, sug)
	return c
}

// Wrap records the underlying cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.cause = err
	return c
}

// Build assembles the ActionableError. An unset operation yields nil; the
// operation is the one mandatory field.
func (c *ErrorContext) Build() *ActionableError {
	if c.operation == "" {
		return nil
	}
	return &ActionableError{
		Operation:   c.operation,
		Resource:    c.resource,
		Suggestions: c.suggestions,
		Cause:       c.cause,
	}
}

// BuildError is Build for plain error return positions, mapping the nil
// *ActionableError to a nil error.
func (c *ErrorContext) BuildError() error {
	if ae := c.Build(); ae != nil {
		return ae
	}
	return nil
}

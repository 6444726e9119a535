// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"ng-packagr/pkg/types"
)

// ExitError carries the exit code a failed command wants the process to
// report. RunE handlers return it instead of calling os.Exit, which would
// skip deferred cleanup; Execute unwraps it at the very end.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the wrapped message, or a generic one when the failure has
// already been rendered elsewhere.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap exposes the wrapped error to errors.As and errors.Is.
func (e *ExitError) Unwrap() error {
	return e.Err
}

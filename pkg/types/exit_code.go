// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidExitCode matches any InvalidExitCodeError via errors.Is.
var ErrInvalidExitCode = errors.New("exit code out of range")

// Exit codes the command-line front-end reports.
const (
	// ExitSuccess is the exit code of a clean run.
	ExitSuccess ExitCode = 0
	// ExitFailure covers every discovery, validation and build failure.
	ExitFailure ExitCode = 1
)

type (
	// ExitCode is a process exit status, 0-255 on POSIX systems.
	// The zero value reports success.
	ExitCode int

	// InvalidExitCodeError reports an ExitCode outside the 0-255 range.
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d: must be in range 0-255", e.Value)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// Validate returns an error when the code falls outside the 0-255 range.
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

// IsSuccess reports whether the code signals a clean run.
func (c ExitCode) IsSuccess() bool { return c == ExitSuccess }

// String returns the decimal representation.
func (c ExitCode) String() string { return strconv.FormatInt(int64(c), 10) }

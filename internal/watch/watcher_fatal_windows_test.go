// SPDX-License-Identifier: MPL-2.0

//go:build windows

package watch

import (
	"fmt"
	"syscall"
	"testing"
)

func TestIsFatalFsnotifyError(t *testing.T) {
	t.Parallel()

	fatal := []error{
		syscall.Errno(4), // ERROR_TOO_MANY_OPEN_FILES
		syscall.Errno(6), // ERROR_INVALID_HANDLE
		syscall.Errno(8), // ERROR_NOT_ENOUGH_MEMORY
		fmt.Errorf("fsnotify: %w", syscall.Errno(6)),
	}
	for _, err := range fatal {
		if !isFatalFsnotifyError(err) {
			t.Errorf("isFatalFsnotifyError(%v) = false, want true", err)
		}
	}

	benign := []error{
		nil,
		syscall.Errno(2), // ERROR_FILE_NOT_FOUND
		syscall.Errno(5), // ERROR_ACCESS_DENIED
		fmt.Errorf("something went wrong"),
	}
	for _, err := range benign {
		if isFatalFsnotifyError(err) {
			t.Errorf("isFatalFsnotifyError(%v) = true, want false", err)
		}
	}
}

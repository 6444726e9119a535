// SPDX-License-Identifier: MPL-2.0

//go:build windows

package watch

import (
	"errors"
	"syscall"
)

// fatalWatchErrnos are the Win32 codes that leave ReadDirectoryChangesW-based
// watching broken. Windows has no inotify-style watch limits, but handle
// exhaustion, an invalidated directory handle (deleted or unmounted volume)
// and failed notification buffer allocation are equally unrecoverable.
var fatalWatchErrnos = []syscall.Errno{
	syscall.Errno(4), // ERROR_TOO_MANY_OPEN_FILES
	syscall.Errno(6), // ERROR_INVALID_HANDLE
	syscall.Errno(8), // ERROR_NOT_ENOUGH_MEMORY
}

// isFatalFsnotifyError reports whether an fsnotify error leaves the watcher
// unable to continue.
func isFatalFsnotifyError(err error) bool {
	for _, errno := range fatalWatchErrnos {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}

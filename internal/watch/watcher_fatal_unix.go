// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package watch

import (
	"errors"
	"syscall"
)

// fatalWatchErrnos are the inotify exhaustion errnos: ENOSPC
// (fs.inotify.max_user_watches reached), EMFILE (process fd limit) and
// ENFILE (system fd limit).
var fatalWatchErrnos = []syscall.Errno{
	syscall.ENOSPC,
	syscall.EMFILE,
	syscall.ENFILE,
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

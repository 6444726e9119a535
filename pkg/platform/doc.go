// SPDX-License-Identifier: MPL-2.0

// Package platform collects the operating system specifics the rest of the
// tool needs: the runtime.GOOS name constants used when path handling
// differs between systems, and the Windows reserved device names that
// constrain generated artifact file names.
package platform

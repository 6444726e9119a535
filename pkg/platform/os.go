// SPDX-License-Identifier: MPL-2.0

package platform

// Names reported by runtime.GOOS for the platforms ng-packagr targets.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

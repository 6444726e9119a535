// SPDX-License-Identifier: MPL-2.0

package platform

import "strings"

// windowsReservedStems holds the device names Windows refuses as file name
// stems regardless of extension or case: the four classic devices plus
// COM1-COM9 and LPT1-LPT9.
var windowsReservedStems = buildReservedStems()

func buildReservedStems() map[string]bool {
	stems := map[string]bool{"CON": true, "PRN": true, "AUX": true, "NUL": true}
	for digit := '1'; digit <= '9'; digit++ {
		stems["COM"+string(digit)] = true
		stems["LPT"+string(digit)] = true
	}
	return stems
}

// IsWindowsReservedName reports whether name collides with a Windows
// reserved device name. The comparison is case-insensitive and ignores
// any extension, matching how Windows applies the restriction.
func IsWindowsReservedName(name string) bool {
	stem := strings.ToUpper(name)
	if idx := strings.LastIndex(stem, "."); idx != -1 {
		stem = stem[:idx]
	}
	return windowsReservedStems[stem]
}

// SPDX-License-Identifier: MPL-2.0

package npm

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// NonPeerDependencies reports the entries of the manifest's "dependencies"
// section that are not covered by the allow list. Libraries are expected to
// declare runtime requirements as peerDependencies so consumers control the
// installed version; plain dependencies get flagged unless explicitly
// allowed.
//
// Allow-list entries match exact dependency names. The result is sorted for
// deterministic diagnostics, and empty when the manifest declares no
// dependencies at all.
func NonPeerDependencies(m *Manifest, allowed []string) []string {
	deps := m.Dependencies()
	if len(deps) == 0 {
		return nil
	}

	allowedSet := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		allowedSet[name] = struct{}{}
	}

	offending := make([]string, 0, len(deps))
	for _, name := range maps.Keys(deps) {
		if _, ok := allowedSet[name]; !ok {
			offending = append(offending, name)
		}
	}
	slices.Sort(offending)
	if len(offending) == 0 {
		return nil
	}
	return offending
}

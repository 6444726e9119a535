// SPDX-License-Identifier: MPL-2.0

package npm

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"ng-packagr/pkg/types"
)

// ManifestFileName is the canonical npm manifest file name.
const ManifestFileName = "package.json"

// Well-known manifest keys read or written by the pipeline.
const (
	KeyName        = "name"
	KeyVersion     = "version"
	KeyDescription = "description"
	KeySideEffects = "sideEffects"
	KeyScripts     = "scripts"
	KeyNgPackage   = "ngPackage"

	KeyDependencies         = "dependencies"
	KeyPeerDependencies     = "peerDependencies"
	KeyDevDependencies      = "devDependencies"
	KeyOptionalDependencies = "optionalDependencies"

	// Entry fields written into the distributable package.json.
	KeyMain     = "main"
	KeyModule   = "module"
	KeyES2015   = "es2015"
	KeyESM2015  = "esm2015"
	KeyTypings  = "typings"
	KeyMetadata = "metadata"
)

// Manifest is a parsed package.json: an arbitrary-key mapping with typed
// accessors for the fields the pipeline reads. A nil *Manifest behaves like
// an empty manifest; every accessor yields the absent value.
//
// Manifests are never mutated after construction. Derivations (WithEntries,
// WithoutKeys) return copies.
type Manifest struct {
	data map[string]any
}

// NewManifest wraps an already-decoded mapping. The mapping is copied
// shallowly so later changes to the argument do not leak into the manifest.
func NewManifest(data map[string]any) *Manifest {
	copied := make(map[string]any, len(data))
	for k, v := range data {
		copied[k] = v
	}
	return &Manifest{data: copied}
}

// ParseManifest decodes package.json bytes. Unknown keys are preserved;
// only malformed JSON or a non-object document fails.
func ParseManifest(data []byte) (*Manifest, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing package.json: %w", err)
	}
	return &Manifest{data: raw}, nil
}

// LoadManifest reads and parses the package.json at path.
func LoadManifest(path types.FilesystemPath) (*Manifest, error) {
	data, err := os.ReadFile(path.String())
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Raw returns a shallow copy of the underlying mapping.
func (m *Manifest) Raw() map[string]any {
	if m == nil {
		return map[string]any{}
	}
	copied := make(map[string]any, len(m.data))
	for k, v := range m.data {
		copied[k] = v
	}
	return copied
}

// Get resolves a dotted key path (e.g. "ngPackage.lib.entryFile") against
// the mapping, descending one segment at a time. If any intermediate segment
// is absent or not a mapping, the lookup yields (nil, false) rather than
// failing.
func (m *Manifest) Get(path string) (any, bool) {
	if m == nil || path == "" {
		return nil, false
	}
	var current any = m.data
	for _, segment := range strings.Split(path, ".") {
		obj, isMap := current.(map[string]any)
		if !isMap {
			return nil, false
		}
		next, present := obj[segment]
		if !present {
			return nil, false
		}
		current = next
	}
	return current, true
}

// GetString resolves a dotted key path to a string value. Non-string values
// count as absent.
func (m *Manifest) GetString(path string) (string, bool) {
	raw, ok := m.Get(path)
	if !ok {
		return "", false
	}
	str, isStr := raw.(string)
	return str, isStr
}

// Section resolves a dotted key path to a nested mapping. Non-mapping
// values count as absent.
func (m *Manifest) Section(path string) (map[string]any, bool) {
	raw, ok := m.Get(path)
	if !ok {
		return nil, false
	}
	obj, isMap := raw.(map[string]any)
	return obj, isMap
}

// Name returns the package name, or "" when absent.
func (m *Manifest) Name() PackageName {
	name, _ := m.GetString(KeyName)
	return PackageName(name)
}

// Version returns the package version, or "" when absent.
func (m *Manifest) Version() string {
	version, _ := m.GetString(KeyVersion)
	return version
}

// Description returns the package description, or "" when absent.
func (m *Manifest) Description() string {
	description, _ := m.GetString(KeyDescription)
	return description
}

// SideEffects returns the sideEffects field state; the zero value when the
// field is absent.
func (m *Manifest) SideEffects() SideEffects {
	raw, ok := m.Get(KeySideEffects)
	return parseSideEffects(raw, ok)
}

// Dependencies returns the dependencies mapping (name to version range).
func (m *Manifest) Dependencies() map[string]string { return m.stringMap(KeyDependencies) }

// PeerDependencies returns the peerDependencies mapping.
func (m *Manifest) PeerDependencies() map[string]string { return m.stringMap(KeyPeerDependencies) }

// DevDependencies returns the devDependencies mapping.
func (m *Manifest) DevDependencies() map[string]string { return m.stringMap(KeyDevDependencies) }

// OptionalDependencies returns the optionalDependencies mapping.
func (m *Manifest) OptionalDependencies() map[string]string {
	return m.stringMap(KeyOptionalDependencies)
}

// Scripts returns the scripts mapping (hook name to shell command).
func (m *Manifest) Scripts() map[string]string { return m.stringMap(KeyScripts) }

// stringMap extracts a string-to-string section; entries with non-string
// values are skipped.
func (m *Manifest) stringMap(key string) map[string]string {
	section, ok := m.Section(key)
	if !ok {
		return map[string]string{}
	}
	result := make(map[string]string, len(section))
	for name, raw := range section {
		if value, isStr := raw.(string); isStr {
			result[name] = value
		}
	}
	return result
}

// WithEntries returns a copy of the manifest with the given entries set,
// overwriting existing keys. Entries with nil values are skipped so callers
// can pass optional values unconditionally.
func (m *Manifest) WithEntries(entries map[string]any) *Manifest {
	derived := NewManifest(m.Raw())
	for k, v := range entries {
		if v == nil {
			continue
		}
		derived.data[k] = v
	}
	return derived
}

// WithoutKeys returns a copy of the manifest with the given top-level keys
// removed. Removing an absent key is a no-op.
func (m *Manifest) WithoutKeys(keys ...string) *Manifest {
	derived := NewManifest(m.Raw())
	for _, k := range keys {
		delete(derived.data, k)
	}
	return derived
}

// MarshalIndent serializes the manifest with two-space indentation and a
// trailing newline, the layout npm itself writes.
func (m *Manifest) MarshalIndent() ([]byte, error) {
	data, err := json.MarshalIndent(m.Raw(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing package.json: %w", err)
	}
	return append(data, '\n'), nil
}

// SPDX-License-Identifier: MPL-2.0

package ngpackage

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"ng-packagr/pkg/cueutil"
	"ng-packagr/pkg/npm"
	"ng-packagr/pkg/types"
)

//go:embed ng_package_schema.cue
var ngPackageSchema string

// ParseConfig parses ng-package.json content from bytes.
// Uses cueutil.ParseAndDecodeString for the 3-step CUE parsing flow:
// compile schema, compile user data, validate and decode. Schema defaults
// (dest, deleteDestPath, cssUrl) are injected during unification.
func ParseConfig(data []byte, filename string) (*Config, error) {
	result, err := cueutil.ParseAndDecodeString[Config](
		ngPackageSchema,
		data,
		"#NgPackage",
		cueutil.WithFilename(filename),
	)
	if err != nil {
		return nil, err
	}
	return result.Value, nil
}

// LoadConfig reads and parses the ng-package.json at path.
func LoadConfig(path types.FilesystemPath) (*Config, error) {
	data, err := os.ReadFile(path.String())
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseConfig(data, path.String())
}

// ConfigFromManifest extracts and parses the "ngPackage" property of a
// package.json manifest. The second return value reports whether the
// property was present at all; (nil, false, nil) means the manifest simply
// carries no packaging config.
func ConfigFromManifest(m *npm.Manifest, filename string) (*Config, bool, error) {
	section, ok := m.Section(npm.KeyNgPackage)
	if !ok {
		return nil, false, nil
	}
	data, err := json.Marshal(section)
	if err != nil {
		return nil, true, fmt.Errorf("%s: serializing ngPackage property: %w", filename, err)
	}
	cfg, err := ParseConfig(data, filename)
	if err != nil {
		return nil, true, err
	}
	return cfg, true, nil
}

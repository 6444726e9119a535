// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"

	"ng-packagr/pkg/types"
)

var (
	// globalConfig caches the loaded configuration for Get()/Load().
	globalConfig *Config
	// configPath records where the cached configuration was loaded from.
	// Empty when defaults are in effect.
	configPath string
	// errLastLoad records the most recent load failure so callers that
	// fall back to defaults can still surface it.
	errLastLoad error

	// configFilePathOverride forces loading from a specific file (--config flag).
	configFilePathOverride string
	// configDirOverride redirects the config directory lookup, mainly so
	// tests need not fight os.UserHomeDir, which ignores a faked HOME on
	// some platforms (macOS CI runners among them).
	configDirOverride string
)

// Load returns the cached configuration, loading it from disk on first use.
// Subsequent calls return the cached value until ResetCache() or Reset().
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{
		ConfigFilePath: types.FilesystemPath(configFilePathOverride),
	})
	if err != nil {
		errLastLoad = err
		return nil, err
	}

	globalConfig = cfg
	configPath = path
	errLastLoad = nil

	return cfg, nil
}

// Get returns the configuration, falling back to defaults when loading fails.
// The load error, if any, is retrievable via LastLoadError().
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// LastLoadError returns the error from the most recent failed load, or nil
// when the last load succeeded.
func LastLoadError() error {
	return errLastLoad
}

// ConfigFilePath returns the path of the loaded config file, or an empty
// string when defaults are in effect.
func ConfigFilePath() string {
	return configPath
}

// SetConfigFilePathOverride forces loading from a specific config file and
// clears the cache so the next Load() picks it up.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
	ResetCache()
}

// ResetCache clears the cached configuration while preserving overrides.
// The next Load() re-reads from disk.
func ResetCache() {
	globalConfig = nil
	configPath = ""
	errLastLoad = nil
}

// Reset clears the cache and all overrides. Call from test cleanup to
// restore defaults.
func Reset() {
	ResetCache()
	configFilePathOverride = ""
	configDirOverride = ""
}

// SetConfigDirOverride redirects config loading to dir instead of the
// platform config directory. Tests use it to point loading at a temp dir
// without touching HOME.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"

	"ng-packagr/internal/issue"
	"ng-packagr/pkg/cueutil"
	"ng-packagr/pkg/platform"
)

const (
	// AppName names the tool in user-facing paths, e.g. the config
	// directory under ~/.config.
	AppName = "ng-packagr"
	// ConfigFileName and ConfigFileExt together name the tool config file,
	// config.cue.
	ConfigFileName = "config"
	ConfigFileExt  = "cue"
	// EnvPrefix prefixes environment variable overrides,
	// e.g. NG_PACKAGR_UI_VERBOSE=true.
	EnvPrefix = "NG_PACKAGR"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the ng-packagr configuration directory: %APPDATA% on
// Windows, ~/Library/Application Support on macOS, $XDG_CONFIG_HOME (or
// ~/.config) elsewhere.
//
//nolint:revive // config.ConfigDir stutters, but a bare Dir is too vague at call sites
func ConfigDir() (string, error) {
	// Tests point this at a temp directory.
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	root, err := platformConfigRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, AppName), nil
}

// platformConfigRoot resolves the OS-conventional parent directory for
// application configuration.
func platformConfigRoot() (string, error) {
	switch runtime.GOOS {
	case platform.Windows:
		if appData := os.Getenv("APPDATA"); appData != "" {
			return appData, nil
		}
		return filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming"), nil

	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to locate home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support"), nil

	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return xdg, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to locate home directory: %w", err)
		}
		return filepath.Join(home, ".config"), nil
	}
}

// loadWithOptions performs option-driven config loading without touching the
// package-level cache. Callers that want caching wrap this function.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("config load canceled: %w", ctx.Err())
	default:
	}

	if err := opts.Validate(); err != nil {
		return nil, "", err
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("project", defaults.Project)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("watch.debounce_ms", defaults.Watch.DebounceMs)
	v.SetDefault("watch.ignore", defaults.Watch.Ignore)

	// Environment overrides, e.g. NG_PACKAGR_WATCH_DEBOUNCE_MS=200.
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var resolvedPath string
	var err error
	if opts.ConfigFilePath != "" {
		// A --config flag names the file exclusively; missing is an error.
		resolvedPath, err = loadExplicitFile(v, opts.ConfigFilePath.String())
	} else {
		// Otherwise a missing file just means defaults.
		resolvedPath, err = loadDiscoveredFile(v, opts)
	}
	if err != nil {
		return nil, "", err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to decode config: %w", err)
	}

	// Constraints CUE cannot express, such as doublestar syntax of the
	// watch ignore globs.
	if err := cfg.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate config values").
			WithSuggestion("Check ui.color_scheme is one of: auto, dark, light").
			WithSuggestion("Check watch.debounce_ms is non-negative and watch.ignore globs are well-formed").
			Wrap(err).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// loadExplicitFile loads the config file named by a --config flag into v and
// returns its path.
func loadExplicitFile(v *viper.Viper, cfgFile string) (string, error) {
	if !fileExists(cfgFile) {
		return "", issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(cfgFile).
			WithSuggestion("Verify the file path is correct").
			WithSuggestion("Check file permissions allow reading").
			Wrap(fmt.Errorf("config file not found: %s", cfgFile)).
			BuildError()
	}
	if err := mergeCUEFile(v, cfgFile); err != nil {
		return "", cueLoadError(cfgFile, err)
	}
	return cfgFile, nil
}

// loadDiscoveredFile checks the config directory and then the working
// directory (or opts.BaseDir) for a config.cue. Finding none is not an
// error; defaults apply.
func loadDiscoveredFile(v *viper.Viper, opts LoadOptions) (string, error) {
	dir, err := resolveConfigDir(opts.ConfigDirPath.String())
	if err != nil {
		return "", err
	}

	standardPath := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if fileExists(standardPath) {
		if err := mergeCUEFile(v, standardPath); err != nil {
			return "", cueLoadError(standardPath, err)
		}
		return standardPath, nil
	}

	localPath := ConfigFileName + "." + ConfigFileExt
	if opts.BaseDir != "" {
		localPath = filepath.Join(opts.BaseDir.String(), localPath)
	}
	if fileExists(localPath) {
		if err := mergeCUEFile(v, localPath); err != nil {
			return "", cueLoadError(localPath, err)
		}
		return localPath, nil
	}

	return "", nil
}

// cueLoadError wraps a CUE parse or validation failure with remediation hints.
func cueLoadError(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithSuggestion("Check the file for CUE syntax errors").
		WithSuggestion("Compare the values against the documented config fields").
		Wrap(err).
		BuildError()
}

// resolveConfigDir prefers an explicit directory from load options over the
// platform default.
func resolveConfigDir(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}
	return ConfigDir()
}

// mergeCUEFile parses a CUE file, validates it against the #Config
// definition and merges the result into Viper. It decodes to a map rather
// than going through cueutil.ParseAndDecode: the target is Viper's config
// map, and every config field is optional, so concreteness is not enforced.
func mergeCUEFile(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return err
	}

	ctx := cuecontext.New()

	schemaRoot := ctx.CompileString(configSchema)
	if schemaRoot.Err() != nil {
		return fmt.Errorf("internal error: embedded config schema does not compile: %w", schemaRoot.Err())
	}

	fileValue := ctx.CompileBytes(data, cue.Filename(path))
	if fileValue.Err() != nil {
		return cueutil.FormatError(fileValue.Err(), path)
	}

	schema := schemaRoot.LookupPath(cue.ParsePath("#Config"))
	merged := schema.Unify(fileValue)
	if err := merged.Validate(cue.Concrete(false)); err != nil {
		return cueutil.FormatError(err, path)
	}

	var values map[string]any
	if err := merged.Decode(&values); err != nil {
		return cueutil.FormatError(err, path)
	}

	// Merging keeps defaults in place and leaves env overrides on top.
	if err := v.MergeConfigMap(values); err != nil {
		return fmt.Errorf("failed to merge config values: %w", err)
	}

	return nil
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}

// configFilePath resolves the standard config file location, creating its
// directory on the way.
func configFilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// CreateDefaultConfig writes a default config file unless one already exists.
func CreateDefaultConfig() error {
	path, err := configFilePath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		// Never clobber a user's existing configuration.
		return nil
	}
	return writeConfigFile(path, DefaultConfig())
}

// Save writes cfg to the standard config file location.
func Save(cfg *Config) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}
	return writeConfigFile(path, cfg)
}

func writeConfigFile(path string, cfg *Config) error {
	if err := os.WriteFile(path, []byte(GenerateCUE(cfg)), 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}

// GenerateCUE renders cfg as a CUE document in the layout CreateDefaultConfig
// and `ng-packagr config init` produce.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// ng-packagr configuration file.\n\n")

	if cfg.Project != "" {
		fmt.Fprintf(&sb, "project: %q\n\n", cfg.Project)
	}

	sb.WriteString("ui: {\n")
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	fmt.Fprintf(&sb, "\tverbose: %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	sb.WriteString("\nwatch: {\n")
	fmt.Fprintf(&sb, "\tdebounce_ms: %d\n", cfg.Watch.DebounceMs)
	if len(cfg.Watch.Ignore) > 0 {
		sb.WriteString("\tignore: [\n")
		for _, pat := range cfg.Watch.Ignore {
			fmt.Fprintf(&sb, "\t\t%q,\n", pat)
		}
		sb.WriteString("\t]\n")
	}
	sb.WriteString("}\n")

	return sb.String()
}

// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"ng-packagr/pkg/types"
)

const (
	// ColorSchemeAuto follows the detected terminal background.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark always renders for dark backgrounds.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight always renders for light backgrounds.
	ColorSchemeLight ColorScheme = "light"

	// DefaultDebounceMs is the watch debounce applied when the config does
	// not set one.
	DefaultDebounceMs = 500
)

var (
	// ErrInvalidColorScheme matches any InvalidColorSchemeError via errors.Is.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidWatchConfig matches any InvalidWatchConfigError via errors.Is.
	ErrInvalidWatchConfig = errors.New("invalid watch config")
	// ErrInvalidConfig matches any InvalidConfigError via errors.Is.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// Config holds the tool configuration.
	Config struct {
		// Project is the default project path used when -p/--project is not
		// given. Empty means the current directory.
		Project types.FilesystemPath `json:"project" mapstructure:"project"`
		// UI configures the terminal output.
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Watch configures watch mode.
		Watch WatchConfig `json:"watch" mapstructure:"watch"`
	}

	// UIConfig configures the terminal output.
	UIConfig struct {
		// ColorScheme picks the palette for rendered markdown and styles.
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose switches on diagnostic detail in command output.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// WatchConfig configures watch mode.
	WatchConfig struct {
		// DebounceMs is the quiet period after the last filesystem event
		// before a rebuild fires, in milliseconds.
		DebounceMs int `json:"debounce_ms" mapstructure:"debounce_ms"`
		// Ignore lists extra doublestar globs excluded from watching and
		// from secondary entry point discovery.
		Ignore []string `json:"ignore" mapstructure:"ignore"`
	}

	// ColorScheme selects how rendered output is colored.
	ColorScheme string

	// InvalidColorSchemeError rejects a ColorScheme outside the three
	// defined schemes.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidWatchConfigError collects the field-level failures of a
	// WatchConfig.
	InvalidWatchConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError collects the per-section failures of a Config.
	InvalidConfigError struct {
		FieldErrors []error
	}
)

// String returns the scheme name.
func (cs ColorScheme) String() string { return string(cs) }

// Validate rejects schemes other than auto, dark and light.
func (cs ColorScheme) Validate() error {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: cs}
	}
}

func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// Validate checks the UI section. Only the color scheme constrains values;
// bool fields need no validation.
func (c UIConfig) Validate() error {
	return c.ColorScheme.Validate()
}

// Validate checks the watch section: the debounce must be non-negative and
// every ignore glob must parse.
func (c WatchConfig) Validate() error {
	var errs []error
	if c.DebounceMs < 0 {
		errs = append(errs, fmt.Errorf("debounce_ms must be non-negative, got %d", c.DebounceMs))
	}
	for _, pat := range c.Ignore {
		if _, err := doublestar.Match(pat, ""); err != nil {
			errs = append(errs, fmt.Errorf("invalid ignore pattern %q: %w", pat, err))
		}
	}
	if len(errs) > 0 {
		return &InvalidWatchConfigError{FieldErrors: errs}
	}
	return nil
}

func (e *InvalidWatchConfigError) Error() string {
	return fmt.Sprintf("invalid watch config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap exposes the sentinel to errors.Is.
func (e *InvalidWatchConfigError) Unwrap() error { return ErrInvalidWatchConfig }

// Validate checks every section. Project needs no validation of its own;
// empty means the current directory.
func (c Config) Validate() error {
	var errs []error
	if err := c.UI.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Watch.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap exposes the sentinel to errors.Is.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DefaultConfig returns the built-in defaults: auto color scheme, quiet
// output, the standard debounce, no extra ignores.
func DefaultConfig() *Config {
	return &Config{
		Project: "",
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
		Watch: WatchConfig{
			DebounceMs: DefaultDebounceMs,
			Ignore:     []string{},
		},
	}
}

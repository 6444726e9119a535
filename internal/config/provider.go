// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"fmt"

	"ng-packagr/pkg/types"
)

// ErrInvalidLoadOptions matches any InvalidLoadOptionsError via errors.Is.
var ErrInvalidLoadOptions = errors.New("invalid load options")

type (
	// LoadOptions names the places a load may read from instead of the
	// standard locations. Zero-value fields fall back to the defaults.
	LoadOptions struct {
		// ConfigFilePath, when set, is the only file consulted.
		ConfigFilePath types.FilesystemPath
		// ConfigDirPath, when set, replaces the platform config directory.
		ConfigDirPath types.FilesystemPath
		// BaseDir, when set, replaces the working directory for the local
		// config.cue lookup.
		BaseDir types.FilesystemPath
	}

	// InvalidLoadOptionsError collects the per-field failures of
	// LoadOptions.Validate.
	InvalidLoadOptionsError struct {
		FieldErrors []error
	}
)

// Validate returns nil if all set fields hold usable paths. Zero-value fields
// are valid: they mean "use the default".
func (o LoadOptions) Validate() error {
	var errs []error
	if o.ConfigFilePath != "" {
		if err := o.ConfigFilePath.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("config file path: %w", err))
		}
	}
	if o.ConfigDirPath != "" {
		if err := o.ConfigDirPath.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("config dir path: %w", err))
		}
	}
	if o.BaseDir != "" {
		if err := o.BaseDir.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("base dir: %w", err))
		}
	}
	if len(errs) > 0 {
		return &InvalidLoadOptionsError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidLoadOptionsError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("invalid load options: %v", e.FieldErrors[0])
	}
	return fmt.Sprintf("invalid load options: %d field errors", len(e.FieldErrors))
}

// Unwrap exposes the sentinel to errors.Is.
func (e *InvalidLoadOptionsError) Unwrap() error { return ErrInvalidLoadOptions }

// Provider is the cache-free loading surface: unlike Load/Get it touches no
// package-level state, so parallel tests and library callers can use it
// without stepping on the CLI's cached view.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
}

type fileProvider struct{}

// NewProvider returns the file-backed Provider.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load resolves configuration from the locations opts names.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestColorScheme_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scheme  ColorScheme
		wantErr bool
	}{
		{ColorSchemeAuto, false},
		{ColorSchemeDark, false},
		{ColorSchemeLight, false},
		{"", true},
		{"garbage", true},
		{"AUTO", true},
		{"Dark", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.scheme), func(t *testing.T) {
			t.Parallel()
			err := tt.scheme.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ColorScheme(%q).Validate() = nil, want error", tt.scheme)
				}
				if !errors.Is(err, ErrInvalidColorScheme) {
					t.Errorf("error should wrap ErrInvalidColorScheme, got: %v", err)
				}
				var invalidErr *InvalidColorSchemeError
				if !errors.As(err, &invalidErr) {
					t.Errorf("error should be *InvalidColorSchemeError, got: %T", err)
				} else if invalidErr.Value != tt.scheme {
					t.Errorf("InvalidColorSchemeError.Value = %q, want %q", invalidErr.Value, tt.scheme)
				}
			} else if err != nil {
				t.Errorf("ColorScheme(%q).Validate() returned unexpected error: %v", tt.scheme, err)
			}
		})
	}
}

func TestWatchConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     WatchConfig
		wantErr bool
	}{
		{
			name:    "defaults valid",
			cfg:     DefaultConfig().Watch,
			wantErr: false,
		},
		{
			name:    "zero debounce valid",
			cfg:     WatchConfig{DebounceMs: 0},
			wantErr: false,
		},
		{
			name:    "ignore globs valid",
			cfg:     WatchConfig{DebounceMs: 500, Ignore: []string{"examples/**", "**/*.spec.ts"}},
			wantErr: false,
		},
		{
			name:    "negative debounce rejected",
			cfg:     WatchConfig{DebounceMs: -1},
			wantErr: true,
		},
		{
			name:    "malformed glob rejected",
			cfg:     WatchConfig{DebounceMs: 500, Ignore: []string{"[unclosed"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("WatchConfig.Validate() = nil, want error")
				}
				if !errors.Is(err, ErrInvalidWatchConfig) {
					t.Errorf("error should wrap ErrInvalidWatchConfig, got: %v", err)
				}
			} else if err != nil {
				t.Errorf("WatchConfig.Validate() returned unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("defaults valid", func(t *testing.T) {
		t.Parallel()
		if err := DefaultConfig().Validate(); err != nil {
			t.Errorf("DefaultConfig().Validate() returned unexpected error: %v", err)
		}
	})

	t.Run("aggregates field errors", func(t *testing.T) {
		t.Parallel()
		cfg := Config{
			UI:    UIConfig{ColorScheme: "garbage"},
			Watch: WatchConfig{DebounceMs: -200},
		}
		err := cfg.Validate()
		if err == nil {
			t.Fatal("Config.Validate() = nil, want error")
		}
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("error should wrap ErrInvalidConfig, got: %v", err)
		}
		var invalidErr *InvalidConfigError
		if !errors.As(err, &invalidErr) {
			t.Fatalf("error should be *InvalidConfigError, got: %T", err)
		}
		if len(invalidErr.FieldErrors) != 2 {
			t.Errorf("FieldErrors count = %d, want 2", len(invalidErr.FieldErrors))
		}
	})
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Project != "" {
		t.Errorf("Project = %q, want empty", cfg.Project)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("UI.ColorScheme = %q, want %q", cfg.UI.ColorScheme, ColorSchemeAuto)
	}
	if cfg.UI.Verbose {
		t.Error("UI.Verbose = true, want false")
	}
	if cfg.Watch.DebounceMs != DefaultDebounceMs {
		t.Errorf("Watch.DebounceMs = %d, want %d", cfg.Watch.DebounceMs, DefaultDebounceMs)
	}
	if len(cfg.Watch.Ignore) != 0 {
		t.Errorf("Watch.Ignore = %v, want empty", cfg.Watch.Ignore)
	}
}

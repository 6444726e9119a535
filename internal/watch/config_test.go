// SPDX-License-Identifier: MPL-2.0

package watch

import (
	"errors"
	"strings"
	"testing"

	"ng-packagr/pkg/types"
)

func TestConfigValidateAcceptsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero value", Config{}},
		{"all fields set", Config{
			Patterns: []types.GlobPattern{"**/*.ts", "**/*.html"},
			Ignore:   []types.GlobPattern{"**/.git/**"},
			BaseDir:  "/home/user/project",
		}},
		{"empty pattern slices", Config{
			Patterns: []types.GlobPattern{},
			Ignore:   []types.GlobPattern{},
		}},
		{"patterns without base dir", Config{
			Patterns: []types.GlobPattern{"**/*.ts"},
		}},
		{"untyped fields are not validated", Config{
			ClearScreen: true,
			Patterns:    []types.GlobPattern{"**/*.ts"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.cfg.Validate(); err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestConfigValidateRejectsInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		cfg           Config
		wantFieldErrs int
	}{
		{"empty watch pattern", Config{Patterns: []types.GlobPattern{""}}, 1},
		{"empty ignore pattern", Config{Ignore: []types.GlobPattern{""}}, 1},
		{"whitespace base dir", Config{BaseDir: types.FilesystemPath("   ")}, 1},
		{"bad glob syntax", Config{Patterns: []types.GlobPattern{"[invalid"}}, 1},
		{"every field broken", Config{
			Patterns: []types.GlobPattern{"", "**/*.ts", ""},
			Ignore:   []types.GlobPattern{""},
			BaseDir:  types.FilesystemPath("   "),
		}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, ErrInvalidWatchConfig) {
				t.Errorf("error should wrap ErrInvalidWatchConfig, got: %v", err)
			}

			var cfgErr *InvalidWatchConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("error should be *InvalidWatchConfigError, got: %T", err)
			}
			if len(cfgErr.FieldErrors) != tt.wantFieldErrs {
				t.Errorf("got %d field errors, want %d: %v",
					len(cfgErr.FieldErrors), tt.wantFieldErrs, cfgErr.FieldErrors)
			}
		})
	}
}

func TestInvalidWatchConfigErrorMessage(t *testing.T) {
	t.Parallel()

	single := &InvalidWatchConfigError{FieldErrors: []error{errors.New("bad glob")}}
	if got := single.Error(); !strings.Contains(got, "bad glob") {
		t.Errorf("single field error message should carry the cause, got %q", got)
	}

	multi := &InvalidWatchConfigError{FieldErrors: []error{errors.New("a"), errors.New("b")}}
	if got := multi.Error(); !strings.Contains(got, "2 field errors") {
		t.Errorf("multiple field error message should carry the count, got %q", got)
	}

	if !errors.Is(single, ErrInvalidWatchConfig) {
		t.Error("Unwrap() should yield ErrInvalidWatchConfig")
	}
}

// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestGlobPattern_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern GlobPattern
		want    bool
		wantErr bool
	}{
		{"recursive glob", GlobPattern("**/*.ts"), true, false},
		{"plain filename", GlobPattern("public_api.ts"), true, false},
		{"directory glob", GlobPattern("**/node_modules/**"), true, false},
		{"character class", GlobPattern("src/[a-z]*.ts"), true, false},
		{"alternation", GlobPattern("**/*.{ts,html,scss}"), true, false},
		{"empty is invalid", GlobPattern(""), false, true},
		{"whitespace only is invalid", GlobPattern("   "), false, true},
		{"unclosed class is invalid", GlobPattern("[invalid"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.pattern.Validate()
			if (err == nil) != tt.want {
				t.Errorf("GlobPattern(%q).Validate() error = %v, wantValid %v", tt.pattern, err, tt.want)
			}
			if tt.wantErr {
				if err == nil {
					t.Fatalf("GlobPattern(%q).Validate() returned nil, want error", tt.pattern)
				}
				if !errors.Is(err, ErrInvalidGlobPattern) {
					t.Errorf("error should wrap ErrInvalidGlobPattern, got: %v", err)
				}
				var gpErr *InvalidGlobPatternError
				if !errors.As(err, &gpErr) {
					t.Errorf("error should be *InvalidGlobPatternError, got: %T", err)
				}
			} else if err != nil {
				t.Errorf("GlobPattern(%q).Validate() returned unexpected error: %v", tt.pattern, err)
			}
		})
	}
}

func TestGlobPattern_String(t *testing.T) {
	t.Parallel()
	g := GlobPattern("**/*.ts")
	if g.String() != "**/*.ts" {
		t.Errorf("GlobPattern.String() = %q, want %q", g.String(), "**/*.ts")
	}
}

// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()

		if err := FormatError(nil, "ng-package.json"); err != nil {
			t.Errorf("FormatError(nil) = %v, want nil", err)
		}
	})

	t.Run("non-CUE error is wrapped with the filename", func(t *testing.T) {
		t.Parallel()

		orig := errors.New("some error")
		err := FormatError(orig, "ng-package.json")
		if err == nil {
			t.Fatal("expected error")
		}
		for _, token := range []string{"ng-package.json", "some error"} {
			if !strings.Contains(err.Error(), token) {
				t.Errorf("error %q should contain %q", err, token)
			}
		}
		if !errors.Is(err, orig) {
			t.Error("wrapped error should still match errors.Is")
		}
	})
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path []string
		want string
	}{
		{"empty path", []string{}, ""},
		{"single element", []string{"dest"}, "dest"},
		{"nested path", []string{"lib", "entryFile"}, "lib.entryFile"},
		{"array index", []string{"lib", "styleIncludePaths", "0"}, "lib.styleIncludePaths[0]"},
		{"multiple array indices", []string{"packages", "0", "assets", "2"}, "packages[0].assets[2]"},
		{"index followed by field", []string{"items", "0", "values", "1"}, "items[0].values[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := formatPath(tt.path); got != tt.want {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsDigits(t *testing.T) {
	t.Parallel()

	digits := []string{"0", "7", "42", "007"}
	for _, s := range digits {
		if !isDigits(s) {
			t.Errorf("isDigits(%q) = false, want true", s)
		}
	}
	notDigits := []string{"", "a", "1a", "a1", "1.5", "-1", " 1"}
	for _, s := range notDigits {
		if isDigits(s) {
			t.Errorf("isDigits(%q) = true, want false", s)
		}
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    int
		max     int64
		wantErr bool
	}{
		{"within limit", 11, 100, false},
		{"at exact limit", 100, 100, false},
		{"past limit", 101, 100, true},
		{"empty data", 0, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckFileSize(make([]byte, tt.size), tt.max, "package.json")
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckFileSize(%d bytes, max %d) error = %v, wantErr %v", tt.size, tt.max, err, tt.wantErr)
			}
			if err == nil {
				return
			}
			for _, token := range []string{"package.json", "101", "100"} {
				if !strings.Contains(err.Error(), token) {
					t.Errorf("error %q should contain %q", err, token)
				}
			}
		})
	}
}

// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestFilesystemPathValidate(t *testing.T) {
	t.Parallel()

	valid := []FilesystemPath{
		"/projects/ng-library",
		"public_api.ts",
		"C:\\projects\\ng-library",
		"/path/to/my library",
		".",
	}
	for _, p := range valid {
		if err := p.Validate(); err != nil {
			t.Errorf("FilesystemPath(%q).Validate() = %v, want nil", p, err)
		}
	}

	invalid := []FilesystemPath{"", "   ", "\t"}
	for _, p := range invalid {
		err := p.Validate()
		if err == nil {
			t.Errorf("FilesystemPath(%q).Validate() = nil, want error", p)
			continue
		}
		if !errors.Is(err, ErrInvalidFilesystemPath) {
			t.Errorf("error for %q should wrap ErrInvalidFilesystemPath, got: %v", p, err)
		}
		var fpErr *InvalidFilesystemPathError
		if !errors.As(err, &fpErr) {
			t.Errorf("error for %q should be *InvalidFilesystemPathError, got: %T", p, err)
		} else if fpErr.Value != p {
			t.Errorf("error carries value %q, want %q", fpErr.Value, p)
		}
	}
}

func TestFilesystemPathString(t *testing.T) {
	t.Parallel()

	p := FilesystemPath("/projects/ng-library")
	if p.String() != "/projects/ng-library" {
		t.Errorf("String() = %q, want %q", p.String(), "/projects/ng-library")
	}
}

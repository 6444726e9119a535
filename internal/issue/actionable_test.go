// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableErrorError(t *testing.T) {
	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation alone",
			err:  &ActionableError{Operation: "load project file"},
			want: "failed to load project file",
		},
		{
			name: "operation and resource",
			err: &ActionableError{
				Operation: "load project file",
				Resource:  "./ng-package.json",
			},
			want: "failed to load project file: ./ng-package.json",
		},
		{
			name: "operation and cause",
			err: &ActionableError{
				Operation: "parse configuration",
				Cause:     errors.New("unexpected token at line 5"),
			},
			want: "failed to parse configuration: unexpected token at line 5",
		},
		{
			name: "all fields",
			err: &ActionableError{
				Operation: "load project file",
				Resource:  "./ng-package.json",
				Cause:     errors.New("no such file"),
			},
			want: "failed to load project file: ./ng-package.json: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying failure")
	err := &ActionableError{Operation: "discover package", Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}

	bare := &ActionableError{Operation: "discover package"}
	if bare.Unwrap() != nil {
		t.Error("Unwrap() without a cause should return nil")
	}
}

func TestActionableErrorFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		verbose  bool
		contains []string
		excludes []string
	}{
		{
			name:     "bare operation",
			err:      &ActionableError{Operation: "load configuration"},
			contains: []string{"failed to load configuration"},
		},
		{
			name: "suggestions render as bullets",
			err: &ActionableError{
				Operation:   "load project file",
				Resource:    "./ng-package.json",
				Suggestions: []string{"Run 'ng-packagr init'", "Check the destination path"},
			},
			contains: []string{
				"failed to load project file",
				"./ng-package.json",
				"• Run 'ng-packagr init'",
				"• Check the destination path",
			},
		},
		{
			name: "verbose appends the cause chain",
			err: &ActionableError{
				Operation: "parse configuration",
				Cause:     errors.New("bad token"),
			},
			verbose:  true,
			contains: []string{"failed to parse configuration", "Error chain:", "1. bad token"},
		},
		{
			name: "non-verbose omits the chain",
			err: &ActionableError{
				Operation: "parse configuration",
				Cause:     errors.New("bad token"),
			},
			contains: []string{"failed to parse configuration: bad token"},
			excludes: []string{"Error chain:"},
		},
		{
			name: "nested actionable causes number each level",
			err: &ActionableError{
				Operation: "build entry point",
				Cause: &ActionableError{
					Operation: "load manifest",
					Cause:     errors.New("no such file"),
				},
			},
			verbose: true,
			contains: []string{
				"Error chain:",
				"1. failed to load manifest: no such file",
				"2. no such file",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Format(tt.verbose)
			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("Format() missing %q\ngot:\n%s", s, got)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(got, s) {
					t.Errorf("Format() should not contain %q\ngot:\n%s", s, got)
				}
			}
		})
	}
}

func TestErrorContextBuild(t *testing.T) {
	t.Run("operation is mandatory", func(t *testing.T) {
		if got := NewErrorContext().WithResource("some/path").Build(); got != nil {
			t.Errorf("Build() without operation = %v, want nil", got)
		}
		if err := NewErrorContext().BuildError(); err != nil {
			t.Errorf("BuildError() without operation = %v, want nil", err)
		}
	})

	t.Run("chain collects every field", func(t *testing.T) {
		cause := errors.New("parse error")
		built := NewErrorContext().
			WithOperation("load configuration").
			WithResource("/etc/ng-packagr/config.cue").
			WithSuggestion("Check the CUE syntax").
			WithSuggestion("Review the file mode").
			Wrap(cause).
			Build()
		if built == nil {
			t.Fatal("Build() = nil")
		}
		if built.Operation != "load configuration" {
			t.Errorf("Operation = %q", built.Operation)
		}
		if built.Resource != "/etc/ng-packagr/config.cue" {
			t.Errorf("Resource = %q", built.Resource)
		}
		if len(built.Suggestions) != 2 {
			t.Errorf("len(Suggestions) = %d, want 2", len(built.Suggestions))
		}
		if !errors.Is(built, cause) {
			t.Error("built error should wrap the cause")
		}
	})

	t.Run("BuildError yields a typed error", func(t *testing.T) {
		err := NewErrorContext().WithOperation("write package").BuildError()
		if err == nil {
			t.Fatal("BuildError() = nil")
		}
		var ae *ActionableError
		if !errors.As(err, &ae) {
			t.Errorf("BuildError() should return *ActionableError, got %T", err)
		}
	})

	t.Run("context reuse keeps shared fields", func(t *testing.T) {
		ctx := NewErrorContext().
			WithOperation("copy asset").
			WithResource("README.md")

		err1 := ctx.Wrap(errors.New("first")).Build()
		err2 := ctx.Wrap(errors.New("second")).Build()

		if err1.Cause.Error() == err2.Cause.Error() {
			t.Error("rewrapping should change the cause")
		}
		if err1.Operation != err2.Operation {
			t.Error("reused context should keep the operation")
		}
	})
}

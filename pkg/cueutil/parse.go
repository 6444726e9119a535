// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// ParseResult carries the outcome of a successful parse: the decoded Go
// value plus the unified CUE value for callers that need to inspect fields
// beyond the decoded struct.
type ParseResult[T any] struct {
	Value   *T
	Unified cue.Value
}

// ParseAndDecode compiles the embedded schema, compiles the user document,
// unifies the two and decodes the result into T. The schemaPath names the
// root definition inside the schema (e.g. "#NgPackage"). User documents may
// be CUE or JSON; JSON is a CUE subset and compiles unchanged.
//
// Failures carry the source filename and the CUE path of the offending
// field, formatted by FormatError.
func ParseAndDecode[T any](schema, data []byte, schemaPath string, opts ...Option) (*ParseResult[T], error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	name := cfg.filename
	if name == "" {
		name = "<input>"
	}

	// Reject oversized documents before handing them to the evaluator.
	if err := CheckFileSize(data, cfg.maxFileSize, name); err != nil {
		return nil, err
	}

	ctx := cuecontext.New()

	schemaRoot, err := compileSchemaRoot(ctx, schema, schemaPath)
	if err != nil {
		return nil, err
	}

	docValue := ctx.CompileBytes(data, cue.Filename(name))
	if docValue.Err() != nil {
		return nil, FormatError(docValue.Err(), name)
	}

	merged := schemaRoot.Unify(docValue)
	if err := validateUnified(merged, cfg.concrete); err != nil {
		return nil, FormatError(err, name)
	}

	var decoded T
	if err := merged.Decode(&decoded); err != nil {
		return nil, FormatError(err, name)
	}
	return &ParseResult[T]{Value: &decoded, Unified: merged}, nil
}

// ParseAndDecodeString is ParseAndDecode for schemas embedded as string
// constants.
func ParseAndDecodeString[T any](schema string, data []byte, schemaPath string, opts ...Option) (*ParseResult[T], error) {
	return ParseAndDecode[T]([]byte(schema), data, schemaPath, opts...)
}

// compileSchemaRoot compiles the embedded schema and resolves its root
// definition. Both failure modes are programming errors in the embedding
// package, not user input problems.
func compileSchemaRoot(ctx *cue.Context, schema []byte, schemaPath string) (cue.Value, error) {
	compiled := ctx.CompileBytes(schema)
	if compiled.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: failed to compile schema: %w", compiled.Err())
	}
	root := compiled.LookupPath(cue.ParsePath(schemaPath))
	if root.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, root.Err())
	}
	return root, nil
}

func validateUnified(v cue.Value, concrete bool) error {
	if concrete {
		return v.Validate(cue.Concrete(true))
	}
	return v.Validate()
}

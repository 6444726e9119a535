// SPDX-License-Identifier: MPL-2.0

// Package cueutil centralizes schema-validated document parsing: compile an
// embedded CUE schema, unify it with a user document, validate, and decode
// into a Go struct. The ngpackage and config packages run every user file
// through this flow.
//
// JSON is a subset of CUE, so the same path handles .cue tool configuration
// and the domain's .json files (package.json, ng-package.json) without a
// separate decoder:
//
//	//go:embed ngpackage_schema.cue
//	var schema string
//
//	result, err := cueutil.ParseAndDecodeString[Config](
//	    schema, data, "#NgPackage", cueutil.WithFilename("ng-package.json"))
//	if err != nil {
//	    return nil, err
//	}
//	return result.Value, nil
//
// Errors name the source file and the CUE path of the offending field.
package cueutil

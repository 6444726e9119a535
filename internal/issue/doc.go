// SPDX-License-Identifier: MPL-2.0

// Package issue carries the catalog of known failure explanations and the
// ActionableError type that pairs an error with remediation steps.
//
// Catalog entries are markdown documents rendered with glamour when a
// discovery, build or watch operation fails, so the terminal output explains
// what went wrong and what to try next.
package issue

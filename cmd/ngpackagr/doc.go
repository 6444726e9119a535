// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for ng-packagr.
//
// This package implements the Cobra command hierarchy for the ng-packagr
// CLI: the root command, the packaging commands (build, ls, validate),
// project scaffolding (init), and tool configuration management (config).
package cmd

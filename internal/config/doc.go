// SPDX-License-Identifier: MPL-2.0

// Package config loads the tool-level settings: Viper carries the merged
// view, the file format is CUE.
//
// Values come from ~/.config/ng-packagr/config.cue (or the XDG equivalent on
// Linux, ~/Library/Application Support/ng-packagr/config.cue on macOS,
// %APPDATA%\ng-packagr\config.cue on Windows), then from NG_PACKAGR_*
// environment variables, which win over the file. The settings cover the
// default project path, UI preferences, and watch mode tuning.
//
// Config files are validated against the embedded config_schema.cue before
// merging, so a typo in a field name or value surfaces as a schema error
// naming the offending path instead of a silently ignored setting.
package config

// SPDX-License-Identifier: MPL-2.0

// Package config handles yangkit CLI configuration using Viper with CUE as
// the primary file format and TOML as a fallback.
//
// Configuration is loaded from ~/.config/yangkit/config.cue (or the XDG
// equivalent on Linux, ~/Library/Application Support/yangkit/config.cue on
// macOS, %APPDATA%\yangkit\config.cue on Windows), falling back to
// config.toml in the same directory. It carries the context search paths,
// the context option flags, and UI settings.
//
// CUE files are validated against an embedded schema (config_schema.cue) so
// invalid configurations fail with a clear message instead of silently
// producing a misconfigured context.
package config

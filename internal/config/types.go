// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"yangkit/pkg/yangctx"
)

var (
	// ErrInvalidSearchPath is the sentinel error wrapped by InvalidSearchPathError.
	ErrInvalidSearchPath = errors.New("invalid search path")
)

type (
	// Config is the decoded yangkit CLI configuration.
	Config struct {
		// SearchPaths are directories the context searches for schema
		// modules, in precedence order.
		SearchPaths []string `mapstructure:"search_paths"`
		// Options are the context behavior flags.
		Options OptionsConfig `mapstructure:"options"`
		// UI holds presentation settings.
		UI UIConfig `mapstructure:"ui"`
	}

	// OptionsConfig mirrors the yangctx option bitmask as named booleans so
	// the config file stays readable.
	OptionsConfig struct {
		// DisableSearchDirs ignores the configured search paths entirely.
		DisableSearchDirs bool `mapstructure:"disable_search_dirs"`
		// DisableSearchDirCwd disables the current-directory fallback.
		DisableSearchDirCwd bool `mapstructure:"disable_search_dir_cwd"`
		// PreferSearchDirs searches configured directories first.
		PreferSearchDirs bool `mapstructure:"prefer_search_dirs"`
		// AllImplemented marks every loaded module as implemented.
		AllImplemented bool `mapstructure:"all_implemented"`
		// Trusted relaxes validation trust boundaries.
		Trusted bool `mapstructure:"trusted"`
	}

	// UIConfig holds presentation settings for the CLI.
	UIConfig struct {
		// Verbose enables verbose output.
		Verbose bool `mapstructure:"verbose"`
	}

	// InvalidSearchPathError is returned when a configured search path is
	// empty or whitespace-only. It wraps ErrInvalidSearchPath for
	// errors.Is() compatibility.
	InvalidSearchPathError struct {
		Index int
	}
)

// Error implements the error interface.
func (e *InvalidSearchPathError) Error() string {
	return fmt.Sprintf("search_paths[%d]: empty or whitespace-only path", e.Index)
}

// Unwrap returns ErrInvalidSearchPath for errors.Is() compatibility.
func (e *InvalidSearchPathError) Unwrap() error {
	return ErrInvalidSearchPath
}

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks constraints the CUE schema cannot express for the TOML
// fallback path (CUE-loaded configs are schema-checked already, but the
// checks are cheap and format-independent).
func (c *Config) Validate() error {
	for i, p := range c.SearchPaths {
		if strings.TrimSpace(p) == "" {
			return &InvalidSearchPathError{Index: i}
		}
	}
	return nil
}

// ContextOptions folds the named booleans into a yangctx option mask.
func (c *Config) ContextOptions() yangctx.Option {
	var opts yangctx.Option
	if c.Options.DisableSearchDirs {
		opts |= yangctx.DisableSearchDirs
	}
	if c.Options.DisableSearchDirCwd {
		opts |= yangctx.DisableSearchDirCwd
	}
	if c.Options.PreferSearchDirs {
		opts |= yangctx.PreferSearchDirs
	}
	if c.Options.AllImplemented {
		opts |= yangctx.AllImplemented
	}
	if c.Options.Trusted {
		opts |= yangctx.Trusted
	}
	return opts
}

// SearchDirSpec joins the configured search paths with the platform
// path-list separator, the format yangctx.New accepts.
func (c *Config) SearchDirSpec() string {
	return strings.Join(c.SearchPaths, string(os.PathListSeparator))
}

// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"strings"
	"testing"

	"yangkit/internal/issue"
)

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version takes priority", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "v1.2.3"
		Commit = "abc1234"
		BuildDate = "2025-06-15T10:00:00Z"

		got := getVersionString()
		want := "v1.2.3 (commit: abc1234, built: 2025-06-15T10:00:00Z)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("fallback to dev when no build info", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "dev"
		Commit = "unknown"
		BuildDate = "unknown"

		got := getVersionString()
		want := "dev (built from source)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Parallel()

	t.Run("plain error", func(t *testing.T) {
		t.Parallel()

		err := errors.New("plain failure")
		if got := formatErrorForDisplay(err, false); got != "plain failure" {
			t.Errorf("formatErrorForDisplay() = %q", got)
		}
	})

	t.Run("actionable error uses Format", func(t *testing.T) {
		t.Parallel()

		err := issue.NewErrorContext().
			WithOperation("load configuration").
			WithSuggestion("Run 'yangkit config init'").
			Build()

		got := formatErrorForDisplay(err, false)
		if !strings.Contains(got, "Run 'yangkit config init'") {
			t.Errorf("formatErrorForDisplay() missing suggestion: %q", got)
		}
	})

	t.Run("verbose includes error chain", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("root cause")
		err := issue.NewErrorContext().
			WithOperation("load configuration").
			Wrap(cause).
			Build()

		got := formatErrorForDisplay(err, true)
		if !strings.Contains(got, "Error chain") || !strings.Contains(got, "root cause") {
			t.Errorf("formatErrorForDisplay() missing chain: %q", got)
		}
	})
}

// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	cause := errors.New("permission denied")
	err := NewErrorContext().
		WithOperation("create context").
		WithResource("/opt/yang/modules").
		WithSuggestion("Check directory permissions").
		Wrap(cause).
		Build()

	if err == nil {
		t.Fatal("Build() = nil")
	}
	if !errors.Is(err, cause) {
		t.Error("Unwrap chain does not reach the cause")
	}
	msg := err.Error()
	if !strings.Contains(msg, "failed to create context") || !strings.Contains(msg, "/opt/yang/modules") {
		t.Errorf("Error() = %q", msg)
	}
}

func TestErrorContext_BuildRequiresOperation(t *testing.T) {
	t.Parallel()

	if got := NewErrorContext().WithResource("/x").Build(); got != nil {
		t.Errorf("Build() without operation = %v, want nil", got)
	}
	if got := NewErrorContext().BuildError(); got != nil {
		t.Errorf("BuildError() without operation = %v, want nil", got)
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	inner := errors.New("inner")
	outer := WrapWithContext(inner, "validate search directory", "/tmp/x")
	outer.Suggestions = []string{"first hint", "second hint"}

	plain := outer.Format(false)
	if !strings.Contains(plain, "first hint") || !strings.Contains(plain, "second hint") {
		t.Errorf("Format(false) missing suggestions: %q", plain)
	}
	if strings.Contains(plain, "Error chain") {
		t.Error("Format(false) must not include the error chain")
	}

	verbose := outer.Format(true)
	if !strings.Contains(verbose, "Error chain") || !strings.Contains(verbose, "inner") {
		t.Errorf("Format(true) missing error chain: %q", verbose)
	}
}

func TestWrapWithOperation_NilError(t *testing.T) {
	t.Parallel()

	if got := WrapWithOperation(nil, "anything"); got != nil {
		t.Errorf("WrapWithOperation(nil) = %v, want nil", got)
	}
	if got := WrapWithContext(nil, "anything", "res"); got != nil {
		t.Errorf("WrapWithContext(nil) = %v, want nil", got)
	}
}

func TestActionableError_HasSuggestions(t *testing.T) {
	t.Parallel()

	e := &ActionableError{Operation: "x"}
	if e.HasSuggestions() {
		t.Error("HasSuggestions() = true for empty suggestions")
	}
	e.Suggestions = append(e.Suggestions, "hint")
	if !e.HasSuggestions() {
		t.Error("HasSuggestions() = false, want true")
	}
}

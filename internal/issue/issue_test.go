// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	t.Parallel()

	for _, id := range []Id{SearchDirUnusableId, ConfigLoadFailedId, ModuleNotFoundId, ContextDestroyedId} {
		got := Get(id)
		if got == nil {
			t.Fatalf("Get(%d) = nil", id)
		}
		if got.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, got.Id())
		}
		if got.MarkdownMsg() == "" {
			t.Errorf("Get(%d) has empty markdown message", id)
		}
	}

	if Get(Id(999)) != nil {
		t.Error("Get of unknown id should be nil")
	}
}

func TestValues(t *testing.T) {
	t.Parallel()

	vals := Values()
	if len(vals) != 4 {
		t.Errorf("Values() len = %d, want 4", len(vals))
	}
}

func TestIssue_Render(t *testing.T) {
	orig := render
	t.Cleanup(func() { render = orig })
	render = func(in, stylePath string) (string, error) {
		return in, nil
	}

	out, err := Get(ModuleNotFoundId).Render("auto")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "Module not found") {
		t.Errorf("rendered output missing title: %q", out)
	}
}

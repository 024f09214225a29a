// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"os"
	"strings"
	"testing"

	"yangkit/pkg/yangctx"
)

func TestConfig_ContextOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts OptionsConfig
		want yangctx.Option
	}{
		{"none", OptionsConfig{}, 0},
		{"trusted only", OptionsConfig{Trusted: true}, yangctx.Trusted},
		{
			"several",
			OptionsConfig{DisableSearchDirs: true, PreferSearchDirs: true, AllImplemented: true},
			yangctx.DisableSearchDirs | yangctx.PreferSearchDirs | yangctx.AllImplemented,
		},
		{
			"all",
			OptionsConfig{
				DisableSearchDirs:   true,
				DisableSearchDirCwd: true,
				PreferSearchDirs:    true,
				AllImplemented:      true,
				Trusted:             true,
			},
			yangctx.DisableSearchDirs | yangctx.DisableSearchDirCwd | yangctx.PreferSearchDirs |
				yangctx.AllImplemented | yangctx.Trusted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := &Config{Options: tt.opts}
			if got := cfg.ContextOptions(); got != tt.want {
				t.Errorf("ContextOptions() = %b, want %b", got, tt.want)
			}
		})
	}
}

func TestConfig_SearchDirSpec(t *testing.T) {
	t.Parallel()

	cfg := &Config{SearchPaths: []string{"/a", "/b"}}
	want := strings.Join(cfg.SearchPaths, string(os.PathListSeparator))
	if got := cfg.SearchDirSpec(); got != want {
		t.Errorf("SearchDirSpec() = %q, want %q", got, want)
	}

	empty := &Config{}
	if got := empty.SearchDirSpec(); got != "" {
		t.Errorf("SearchDirSpec() = %q, want empty", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	ok := &Config{SearchPaths: []string{"/a"}}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	bad := &Config{SearchPaths: []string{"/a", "   "}}
	err := bad.Validate()
	if err == nil {
		t.Fatal("Validate() of whitespace path = nil, want error")
	}
	if !errors.Is(err, ErrInvalidSearchPath) {
		t.Errorf("error should wrap ErrInvalidSearchPath, got: %v", err)
	}
	var pathErr *InvalidSearchPathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("error should be *InvalidSearchPathError, got: %T", err)
	}
	if pathErr.Index != 1 {
		t.Errorf("Index = %d, want 1", pathErr.Index)
	}
}

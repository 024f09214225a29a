// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"yangkit/internal/config"
	"yangkit/internal/issue"
	"yangkit/pkg/fspath"
	"yangkit/pkg/yangctx"

	"github.com/spf13/cobra"
)

// extraDirs are directories added for this invocation via --dir, appended
// after the configured search paths.
var extraDirs []string

// pathsCmd validates the configured search directories by constructing a
// context from them and lists the canonical result.
var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Validate and list module search directories",
	Long: `Validate and list module search directories.

Builds a context from the configured search paths (plus any --dir
additions) and prints the canonical directory set: absolute paths with
symlinks resolved, duplicates removed, in precedence order.

Construction is all-or-nothing: if any directory does not exist, is not
a directory, or cannot be read, the command fails and names the
offending path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPaths()
	},
}

func init() {
	pathsCmd.Flags().StringArrayVar(&extraDirs, "dir", nil, "additional search directory (repeatable)")
}

func runPaths() error {
	cfg, err := config.Load()
	if err != nil {
		rendered, _ := issue.Get(issue.ConfigLoadFailedId).Render("dark")
		fmt.Fprint(os.Stderr, rendered)
		return err
	}

	spec := cfg.SearchDirSpec()
	if len(extraDirs) > 0 {
		parts := append(append([]string{}, cfg.SearchPaths...), extraDirs...)
		spec = strings.Join(parts, string(os.PathListSeparator))
	}

	logger.Debug("constructing context", "searchdirs", spec, "options", fmt.Sprintf("%#x", uint32(cfg.ContextOptions())))

	ctx, err := yangctx.New(spec, cfg.ContextOptions())
	if err != nil {
		var pathErr *fspath.PathError
		if errors.As(err, &pathErr) {
			rendered, _ := issue.Get(issue.SearchDirUnusableId).Render("dark")
			fmt.Fprint(os.Stderr, rendered)
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("Unusable search directory: ")+PathStyle.Render(pathErr.Path))
		}
		return err
	}
	defer ctx.Destroy(nil)

	dirs := ctx.SearchDirs()
	if len(dirs) == 0 {
		fmt.Println(SubtitleStyle.Render("No search directories configured."))
		return nil
	}

	fmt.Println(TitleStyle.Render("Module Search Directories"))
	fmt.Println()
	for i, dir := range dirs {
		fmt.Printf("  %s %s\n", VerboseStyle.Render(fmt.Sprintf("%d.", i+1)), PathStyle.Render(dir))
	}

	if verbose {
		fmt.Println()
		fmt.Println(VerboseStyle.Render(fmt.Sprintf("options mask: %#x", uint32(ctx.Options()))))
	}

	return nil
}

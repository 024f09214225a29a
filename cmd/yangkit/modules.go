// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"yangkit/pkg/yangmod"

	"github.com/spf13/cobra"
)

// modulesCmd lists the built-in module inventory every context starts from.
var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the built-in module inventory",
	Long: `List the built-in module inventory.

Every context is seeded with a fixed set of internal modules before any
user schema is loaded. This command prints that set in load order, with
the import-only modules marked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runModules()
	},
}

func runModules() error {
	fmt.Println(TitleStyle.Render("Built-in Modules"))
	fmt.Println()

	for _, m := range yangmod.BuiltinModules() {
		status := SubtitleStyle.Render("import-only")
		if m.Implemented {
			status = SuccessStyle.Render("implemented")
		}
		fmt.Printf("  %s  %s\n", PathStyle.Render(m.String()), status)
	}

	return nil
}

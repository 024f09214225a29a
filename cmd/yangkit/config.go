// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"yangkit/internal/config"
	"yangkit/internal/issue"

	"github.com/spf13/cobra"
)

// configCmd is the `yangkit config` command tree.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage yangkit configuration",
	Long: `Manage yangkit configuration.

Configuration is stored in:
  - Linux: ~/.config/yangkit/config.cue
  - macOS: ~/Library/Application Support/yangkit/config.cue
  - Windows: %APPDATA%\yangkit\config.cue

A config.toml in the same directory is used as a fallback when no
config.cue exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfigFile()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			fmt.Print(config.GenerateCUE(cfg))
			return nil
		},
	})
}

func showConfig() error {
	cfg, err := config.Load()
	if err != nil {
		rendered, _ := issue.Get(issue.ConfigLoadFailedId).Render("dark")
		fmt.Fprint(os.Stderr, rendered)
		return err
	}

	fmt.Println(TitleStyle.Render("Current Configuration"))
	fmt.Println()

	if path, pathErr := config.ResolvedPath(); pathErr == nil && path != "" {
		fmt.Printf("%s: %s\n", PathStyle.Render("Config file"), path)
	} else {
		fmt.Printf("%s: %s\n", PathStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	if len(cfg.SearchPaths) == 0 {
		fmt.Printf("%s: %s\n", PathStyle.Render("search_paths"), SubtitleStyle.Render("(none)"))
	} else {
		fmt.Printf("%s:\n", PathStyle.Render("search_paths"))
		for _, p := range cfg.SearchPaths {
			fmt.Printf("  - %s\n", SuccessStyle.Render(p))
		}
	}

	fmt.Printf("%s:\n", PathStyle.Render("options"))
	for _, opt := range []struct {
		name string
		set  bool
	}{
		{"disable_search_dirs", cfg.Options.DisableSearchDirs},
		{"disable_search_dir_cwd", cfg.Options.DisableSearchDirCwd},
		{"prefer_search_dirs", cfg.Options.PreferSearchDirs},
		{"all_implemented", cfg.Options.AllImplemented},
		{"trusted", cfg.Options.Trusted},
	} {
		fmt.Printf("  %s: %s\n", opt.name, SuccessStyle.Render(fmt.Sprintf("%t", opt.set)))
	}

	fmt.Printf("%s:\n", PathStyle.Render("ui"))
	fmt.Printf("  verbose: %s\n", SuccessStyle.Render(fmt.Sprintf("%t", cfg.UI.Verbose)))

	return nil
}

func initConfigFile() error {
	existing, err := config.ResolvedPath()
	if err == nil && existing != "" {
		fmt.Println(WarningStyle.Render("Config file already exists"))
		fmt.Println(existing)
		return nil
	}

	if err := config.CreateDefaultConfig(); err != nil {
		return err
	}

	fmt.Println(SuccessStyle.Render("Created default configuration file"))
	return showConfigPath()
}

func showConfigPath() error {
	path, err := config.ResolvedPath()
	if err != nil {
		return err
	}
	if path == "" {
		cfgDir, dirErr := config.ConfigDir()
		if dirErr != nil {
			return dirErr
		}
		fmt.Printf("%s %s\n", SubtitleStyle.Render("No config file found; would be created at:"), cfgDir+string(os.PathSeparator)+"config.cue")
		return nil
	}
	fmt.Println(path)
	return nil
}

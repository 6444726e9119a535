// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"ng-packagr/internal/config"
	"ng-packagr/internal/issue"
	"ng-packagr/pkg/types"
)

var (
	// configCmd manages the tool configuration file
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage ng-packagr configuration",
		Long: `Manage ng-packagr configuration.

Configuration is stored in:
  - Linux: ~/.config/ng-packagr/config.cue
  - macOS: ~/Library/Application Support/ng-packagr/config.cue
  - Windows: %APPDATA%\ng-packagr\config.cue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE:  runConfigShow,
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE:  runConfigInit,
	}

	configPathCmd = &cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE:  runConfigPath,
	}

	configSetCmd = &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(cmd, args[0], args[1])
		},
	}

	configDumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		RunE:  runConfigDump,
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configDumpCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()

	cfg, err := config.Load()
	if err != nil {
		renderIssueCard(cmd.ErrOrStderr(), issue.ConfigLoadFailedId)
		return err
	}

	keyStyle := PathStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(stdout, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(stdout)

	if path := config.ConfigFilePath(); path != "" {
		fmt.Fprintf(stdout, "%s: %s\n", keyStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(stdout, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(stdout)

	if cfg.Project != "" {
		fmt.Fprintf(stdout, "%s: %s\n", keyStyle.Render("project"), valueStyle.Render(string(cfg.Project)))
	} else {
		fmt.Fprintf(stdout, "%s: %s\n", keyStyle.Render("project"), SubtitleStyle.Render("(none configured)"))
	}

	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(stdout, "  color_scheme: %s\n", valueStyle.Render(string(cfg.UI.ColorScheme)))
	fmt.Fprintf(stdout, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "%s:\n", keyStyle.Render("watch"))
	fmt.Fprintf(stdout, "  debounce_ms: %s\n", valueStyle.Render(strconv.Itoa(cfg.Watch.DebounceMs)))
	fmt.Fprintf(stdout, "  ignore:\n")
	if len(cfg.Watch.Ignore) == 0 {
		fmt.Fprintf(stdout, "    %s\n", SubtitleStyle.Render("(none configured)"))
	} else {
		for _, pat := range cfg.Watch.Ignore {
			fmt.Fprintf(stdout, "    - %s\n", valueStyle.Render(pat))
		}
	}

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	if err := config.CreateDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Created default configuration at %s\n",
		SuccessStyle.Render("✓"),
		filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()

	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(stdout, "Config file: %s\n", filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))

	if loaded := config.ConfigFilePath(); loaded != "" {
		fmt.Fprintf(stdout, "Loaded from: %s\n", loaded)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, key, value string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	switch key {
	case "project":
		cfg.Project = types.FilesystemPath(value)

	case "ui.color_scheme":
		scheme := config.ColorScheme(value)
		if err := scheme.Validate(); err != nil {
			return err
		}
		cfg.UI.ColorScheme = scheme

	case "ui.verbose":
		cfg.UI.Verbose = value == "true" || value == "1"

	case "watch.debounce_ms":
		ms, convErr := strconv.Atoi(value)
		if convErr != nil {
			return fmt.Errorf("invalid watch.debounce_ms: %w", convErr)
		}
		if ms < 0 {
			return fmt.Errorf("invalid watch.debounce_ms: must be non-negative, got %d", ms)
		}
		cfg.Watch.DebounceMs = ms

	default:
		return fmt.Errorf("unknown configuration key: %s\nValid keys: project, ui.color_scheme, ui.verbose, watch.debounce_ms", key)
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Set %s = %s\n", SuccessStyle.Render("✓"), key, value)
	return nil
}

func runConfigDump(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), config.GenerateCUE(cfg))
	return nil
}

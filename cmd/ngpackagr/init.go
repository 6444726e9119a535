// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ng-packagr/internal/discovery"
	"ng-packagr/pkg/fspath"
	"ng-packagr/pkg/ngpackage"
	"ng-packagr/pkg/npm"
	"ng-packagr/pkg/types"
)

var (
	initForce    bool
	initTemplate string

	// initCmd scaffolds a new library project
	initCmd = &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a starter ng-package.json",
		Long: `Create a starter ng-package.json in the given directory.

The directory defaults to the current one and is created when missing.
When no package.json exists alongside the packaging config, a minimal
manifest is scaffolded too, with the package name taken from the
directory name.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
)

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing ng-package.json")
	initCmd.Flags().StringVarP(&initTemplate, "template", "t", "default", "template to use (default, full)")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := types.FilesystemPath(".")
	if len(args) > 0 {
		dir = types.FilesystemPath(args[0])
	}

	absDir, err := fspath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve directory: %w", err)
	}
	if err := os.MkdirAll(string(absDir), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	configPath := fspath.JoinStr(absDir, discovery.NgPackageFileName)

	// Check if the packaging config exists
	if _, statErr := os.Stat(string(configPath)); statErr == nil && !initForce {
		return fmt.Errorf("file '%s' already exists. Use --force to overwrite", configPath)
	}

	content, err := generateNgPackage(initTemplate)
	if err != nil {
		return err
	}
	if err := os.WriteFile(string(configPath), content, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	stdout := cmd.OutOrStdout()
	fmt.Fprintf(stdout, "%s Created %s\n", SuccessStyle.Render("✓"), configPath)

	// Scaffold a manifest when the directory has none.
	manifestPath := fspath.JoinStr(absDir, npm.ManifestFileName)
	if _, statErr := os.Stat(string(manifestPath)); os.IsNotExist(statErr) {
		manifest, genErr := generateManifest(fspath.Base(absDir))
		if genErr != nil {
			return genErr
		}
		if err := os.WriteFile(string(manifestPath), manifest, 0o644); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		fmt.Fprintf(stdout, "%s Created %s\n", SuccessStyle.Render("✓"), manifestPath)
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, SubtitleStyle.Render("Next steps:"))
	fmt.Fprintln(stdout, "  1. Point \"lib\".\"entryFile\" at your library's public API file")
	fmt.Fprintln(stdout, "  2. Run 'ng-packagr ls' to inspect the discovered entry points")
	fmt.Fprintln(stdout, "  3. Run 'ng-packagr build' to produce the distributable package")

	return nil
}

// generateNgPackage produces the starter packaging config for the chosen
// template.
func generateNgPackage(template string) ([]byte, error) {
	var cfg *ngpackage.Config

	switch template {
	case "full":
		// Every supported option spelled out with its default or an example,
		// ready to prune.
		clean := true
		cfg = &ngpackage.Config{
			Dest:                           "dist",
			DeleteDestPath:                 &clean,
			WhitelistedNonPeerDependencies: []string{"tslib"},
			Lib: ngpackage.LibConfig{
				EntryFile:         "public_api.ts",
				CSSURL:            ngpackage.CSSURLInline,
				UMDModuleIDs:      map[string]string{"lodash": "_"},
				StyleIncludePaths: []types.FilesystemPath{"src/styles"},
			},
		}

	default: // "default"
		cfg = &ngpackage.Config{
			Dest: "dist",
			Lib: ngpackage.LibConfig{
				EntryFile: "public_api.ts",
			},
		}
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s: %w", discovery.NgPackageFileName, err)
	}
	return append(data, '\n'), nil
}

// generateManifest produces a minimal package.json for a fresh library.
func generateManifest(name string) ([]byte, error) {
	manifest := npm.NewManifest(map[string]any{
		npm.KeyName:    name,
		npm.KeyVersion: "0.0.1",
		npm.KeyPeerDependencies: map[string]any{
			"@angular/core": "^8.0.0",
		},
	})

	data, err := manifest.MarshalIndent()
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s: %w", npm.ManifestFileName, err)
	}
	return data, nil
}

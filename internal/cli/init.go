package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/formatversion"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/manifest"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	initNamespace    string
	initStable       string
	initExperimental string
	initMinEngine    string
	initForce        bool
)

func init() {
	initCmd.Flags().StringVar(&initNamespace, "namespace", "", "Default namespace for new content")
	initCmd.Flags().StringVar(&initStable, "stable", "", "Format version for documents that need no experimental features")
	initCmd.Flags().StringVar(&initExperimental, "experimental", "", "Format version for experimental item types")
	initCmd.Flags().StringVar(&initMinEngine, "min-engine", "", "Minimum engine version for new packs")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Replace an existing project config")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create a project config",
	Long: `Create .mbu/project.yaml in the project directory.

Values in the project config override the user config for every command run
in this project.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	root := rootDir(args)
	path := workspace.ProjectConfigPath(root)

	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to replace it)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking project config: %w", err)
	}

	for _, v := range []string{initStable, initExperimental} {
		if v == "" {
			continue
		}
		if _, err := formatversion.Parse(v); err != nil {
			return fmt.Errorf("invalid format version %q: %w", v, err)
		}
	}
	if initMinEngine != "" {
		if _, err := manifest.ParseVersion(initMinEngine); err != nil {
			return fmt.Errorf("invalid min engine version: %w", err)
		}
	}

	cfg := &workspace.ProjectConfig{
		Namespace: initNamespace,
		FormatVersion: workspace.FormatVersionConfig{
			Stable:       initStable,
			Experimental: initExperimental,
		},
		MinEngineVersion: initMinEngine,
	}
	if err := workspace.SaveProject(root, cfg); err != nil {
		return err
	}

	successColor.Fprintf(cmd.OutOrStdout(), "✓ Created %s\n", path)
	return nil
}

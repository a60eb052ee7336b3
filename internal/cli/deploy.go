package cli

import (
	"fmt"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/deploy"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	copyLink  bool
	deployDir string
)

func init() {
	copyCmd.Flags().BoolVar(&copyLink, "link", false, "Link the packs instead of copying them")
	copyCmd.Flags().StringVar(&deployDir, "game-dir", "", "Game data directory (default from config or platform)")
	deployCmd.Flags().StringVar(&deployDir, "game-dir", "", "Game data directory (default from config or platform)")
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(deployCmd)
}

var copyCmd = &cobra.Command{
	Use:   "copy [path]",
	Short: "Copy the packs into the game's development folders",
	Long: `Copy the project's packs into development_behavior_packs and
development_resource_packs, replacing any earlier copy. The game reloads
development packs every time a world is opened.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInstall(cmd, args, deploy.Options{Development: true, Link: copyLink})
	},
}

var deployCmd = &cobra.Command{
	Use:   "deploy [path]",
	Short: "Install the packs into the game's pack folders",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInstall(cmd, args, deploy.Options{})
	},
}

func runInstall(cmd *cobra.Command, args []string, opts deploy.Options) error {
	ctx, err := resolveContext(rootDir(args))
	if err != nil {
		return err
	}

	opts.GameDir = deployDir
	if opts.GameDir == "" {
		if opts.GameDir, err = workspace.GameDir(); err != nil {
			return err
		}
	}
	logger.Debug("Installing packs", "game_dir", opts.GameDir, "development", opts.Development)

	results, err := deploy.Install(ctx, opts)
	out := cmd.OutOrStdout()
	for _, r := range results {
		if r.InPlace {
			infoColor.Fprintf(out, "= %s already lives in %s\n", r.Pack.Name(), r.Target)
			continue
		}
		verb := "Copied"
		switch {
		case r.Copied:
			warnColor.Fprintf(out, "! Links unsupported, copied %s\n", r.Pack.Name())
		case r.Linked:
			verb = "Linked"
		}
		successColor.Fprintf(out, "✓ %s %s", verb, r.Pack.Name())
		fmt.Fprintf(out, " → %s\n", r.Target)
	}
	return err
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/branding"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/config"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/logging"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/prompt"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/workspace"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose    bool
	projectDir string

	logger = logging.Discard()
	asker  prompt.Asker = prompt.Survey{}
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	infoColor    = color.New(color.FgCyan)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds Bedrock add-ons: behavior and resource packs,
items, recipes and attachables, and copies them into the game for testing.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		logger = logging.New(cmd.ErrOrStderr(), verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&projectDir, "project-dir", "", "Project directory (default: current directory)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func printError(w io.Writer, err error) {
	if errors.Is(err, prompt.ErrCancelled) {
		warnColor.Fprintln(w, "Cancelled.")
		return
	}
	errorColor.Fprintf(w, "Error: %v\n", err)
}

// rootDir returns the directory a command works in: an explicit path
// argument, then --project-dir, then the current directory.
func rootDir(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if projectDir != "" {
		return projectDir
	}
	return "."
}

// resolveContext discovers the project and logs manifests it had to skip.
func resolveContext(dir string) (*workspace.Context, error) {
	ctx, err := workspace.Resolve(dir)
	if err != nil {
		return nil, err
	}
	for _, w := range ctx.Warnings {
		logger.Warn("Skipped unreadable manifest", "err", w)
	}
	if ctx.BehaviorPack != "" {
		logger.Debug("Using behavior pack", "path", ctx.BehaviorPack)
	}
	if ctx.ResourcePack != "" {
		logger.Debug("Using resource pack", "path", ctx.ResourcePack)
	}
	return ctx, nil
}

// printFiles lists written files, relative to root.
func printFiles(w io.Writer, root string, files []string) {
	for _, f := range files {
		fmt.Fprintf(w, "  %s\n", filepath.Join(root, f))
	}
}

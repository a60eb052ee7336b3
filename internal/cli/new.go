package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/branding"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/options"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/pack"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/prompt"
	"github.com/spf13/cobra"
)

var (
	newType        string
	newFolder      string
	newNamespace   string
	newPackVersion string
	newMinEngine   string
	newNoPreCreate bool
	newYes         bool
)

func init() {
	newCmd.Flags().StringVar(&newType, "type", "", "Project type: add-on, behavior-pack or resource-pack")
	newCmd.Flags().StringVar(&newFolder, "folder", "", "Base folder name for the packs (default: project name)")
	newCmd.Flags().StringVar(&newNamespace, "namespace", "", "Namespace for new content")
	newCmd.Flags().StringVar(&newPackVersion, "pack-version", "", "Pack version (default 1.0.0)")
	newCmd.Flags().StringVar(&newMinEngine, "min-engine", "", "Minimum engine version")
	newCmd.Flags().BoolVar(&newNoPreCreate, "no-pre-create", false, "Do not create empty content folders and seed files")
	newCmd.Flags().BoolVarP(&newYes, "yes", "y", false, "Skip prompts and use flags and defaults")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a new add-on project",
	Long: `Create a behavior pack and a resource pack that depends on it.

The resource pack manifest is generated first so the behavior pack can list
it as a dependency. With --type only one of the two packs is created.

Examples:
  mbu new "Gem Tools"
  mbu new "Gem Tools" --type behavior-pack -y`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	root := rootDir(nil)
	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}
	ctx, err := resolveContext(root)
	if err != nil {
		return err
	}

	seed := options.Project{
		Type:             newType,
		FolderName:       newFolder,
		Namespace:        newNamespace,
		Version:          newPackVersion,
		MinEngineVersion: newMinEngine,
	}
	if len(args) > 0 {
		seed.Name = args[0]
	}
	if newNoPreCreate {
		seed.PreCreateFiles = options.Ptr(false)
	}
	if seed.MinEngineVersion == "" {
		seed.MinEngineVersion = ctx.MinEngineVersion()
	}

	if !newYes {
		seed, err = prompt.Project(asker, seed)
		if err != nil {
			return err
		}
	}

	p, err := options.ResolveProject(seed, ctx.MinEngineVersion())
	if err != nil {
		return err
	}

	result, err := pack.CreateProject(root, p)
	if err != nil {
		return fmt.Errorf("creating project: %w", err)
	}
	for _, w := range result.Warnings {
		logger.Warn("Manifest check", "issue", w)
	}

	paramFile := filepath.Join(root, options.ProjectFileName())
	if err := options.Save(paramFile, seed); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	successColor.Fprintf(out, "✓ Created %s %q\n", p.Kind, p.Name)
	printFiles(out, root, result.Files)
	infoColor.Fprintf(out, "\nProject options saved to %s\n", paramFile)
	fmt.Fprintf(out, "Next: %s add item\n", branding.CLIName())
	return nil
}

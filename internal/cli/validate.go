package cli

import (
	"fmt"
	"path/filepath"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/schema"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/workspace"
	"github.com/spf13/cobra"
)

// documentDirs are the pack folders holding generated documents.
var documentDirs = []string{"items", "recipes", "attachables"}

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check generated documents against their schemas",
	Long: `Validate every manifest, item, recipe and attachable of the project's packs
against the embedded schemas.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := resolveContext(rootDir(args))
		if err != nil {
			return err
		}
		if len(ctx.Packs) == 0 {
			return fmt.Errorf("no packs under %s: %w", ctx.Root, workspace.ErrNotFound)
		}

		files, err := documentFiles(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		failed := 0
		for _, f := range files {
			rel := relTo(ctx.Root, f)
			result, err := schema.ValidateFile(f)
			if err != nil {
				failed++
				errorColor.Fprintf(out, "  [FAIL] %s: %v\n", rel, err)
				continue
			}
			if !result.Valid {
				failed++
				errorColor.Fprintf(out, "  [FAIL] %s\n", rel)
				for _, issue := range result.Issues {
					fmt.Fprintf(out, "         %s\n", issue)
				}
				continue
			}
			fmt.Fprintf(out, "  [ OK ] %s (%s)\n", rel, result.Kind)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d documents failed validation", failed, len(files))
		}
		successColor.Fprintf(out, "✓ %d documents valid\n", len(files))
		return nil
	},
}

func documentFiles(ctx *workspace.Context) ([]string, error) {
	var files []string
	for _, p := range ctx.Packs {
		files = append(files, p.ManifestPath)
		for _, dir := range documentDirs {
			matches, err := filepath.Glob(filepath.Join(p.Dir, dir, "*.json"))
			if err != nil {
				return nil, fmt.Errorf("listing %s: %w", dir, err)
			}
			files = append(files, matches...)
		}
	}
	return files, nil
}

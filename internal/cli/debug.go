package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/config"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/identifier"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/workspace"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(debugCmd)
}

var debugCmd = &cobra.Command{
	Use:   "debug [path]",
	Short: "Print resolved paths, settings and packs",
	Long:  `Print what the tool sees: config locations, effective settings, the game directory and the discovered packs.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Config:")
		fmt.Fprintf(out, "  [INFO] file %s\n", config.FilePath())
		keys := make([]string, 0, len(config.Defaults))
		for k := range config.Defaults {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(out, "  [INFO] %s = %q\n", k, config.Get(k))
		}

		fmt.Fprintln(out, "Game directory:")
		if dir, err := workspace.GameDir(); err != nil {
			fmt.Fprintf(out, "  [WARN] %v\n", err)
		} else {
			fmt.Fprintf(out, "  [ OK ] %s\n", dir)
		}

		ctx, err := resolveContext(rootDir(args))
		if err != nil {
			fmt.Fprintf(out, "Project:\n  [FAIL] %v\n", err)
			return nil
		}
		printProject(out, ctx)
		return nil
	},
}

func printProject(out io.Writer, ctx *workspace.Context) {
	fmt.Fprintln(out, "Project:")
	fmt.Fprintf(out, "  [INFO] root %s\n", ctx.Root)
	fmt.Fprintf(out, "  [INFO] project config %s\n", workspace.ProjectConfigPath(ctx.Root))
	d := ctx.ItemDefaults()
	fmt.Fprintf(out, "  [INFO] item namespace %q, format versions %s / %s\n", d.Namespace, d.StableVersion, d.ExperimentalVersion)

	if len(ctx.Packs) == 0 {
		fmt.Fprintln(out, "  [WARN] no packs found")
	}
	for _, p := range ctx.Packs {
		fmt.Fprintf(out, "  [ OK ] %s Pack %q at %s\n", p.Kind.Label(), p.Name(), relTo(ctx.Root, p.Dir))
		if !identifier.IsUUID(p.Manifest.Header.UUID) {
			fmt.Fprintf(out, "  [WARN] %s has an invalid header uuid %q\n", p.Name(), p.Manifest.Header.UUID)
		}
		for _, dep := range p.Manifest.Dependencies {
			if !identifier.IsUUID(dep.UUID) {
				fmt.Fprintf(out, "  [WARN] %s depends on an invalid uuid %q\n", p.Name(), dep.UUID)
			}
		}
	}
	for _, w := range ctx.Warnings {
		fmt.Fprintf(out, "  [WARN] %s\n", w)
	}
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/store"
	"github.com/spf13/cobra"
)

var listJSON bool

func init() {
	listCmd.PersistentFlags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.AddCommand(listItemsCmd)
	listCmd.AddCommand(listRecipesCmd)
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List project content",
}

var listItemsCmd = &cobra.Command{
	Use:   "items [path]",
	Short: "List items defined in the project",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := resolveContext(rootDir(args))
		if err != nil {
			return err
		}
		index, err := store.ScanItems(ctx)
		if err != nil {
			return err
		}
		logMalformed(index.Warnings)

		items := index.Sorted()
		out := cmd.OutOrStdout()
		if listJSON {
			return printJSON(out, items)
		}
		if len(items) == 0 {
			fmt.Fprintln(out, "No items found.")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCATEGORY\tBP\tRP")
		for _, it := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", it.ID, it.Category, mark(it.InBehaviorPack), mark(it.InResourcePack))
		}
		return w.Flush()
	},
}

var listRecipesCmd = &cobra.Command{
	Use:   "recipes [path]",
	Short: "List recipes defined in the behavior pack",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := resolveContext(rootDir(args))
		if err != nil {
			return err
		}
		index, err := store.ScanRecipes(ctx)
		if err != nil {
			return err
		}
		logMalformed(index.Warnings)

		recipes := index.Sorted()
		out := cmd.OutOrStdout()
		if listJSON {
			return printJSON(out, recipes)
		}
		if len(recipes) == 0 {
			fmt.Fprintln(out, "No recipes found.")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tRESULT\tTAGS")
		for _, r := range recipes {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, r.Result, strings.Join(r.Tags, ","))
		}
		return w.Flush()
	},
}

func logMalformed(warnings []store.MalformedInput) {
	for _, m := range warnings {
		logger.Warn("Skipped malformed file", "path", m.Path, "err", m.Err)
	}
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func mark(ok bool) string {
	if ok {
		return "yes"
	}
	return "-"
}

package cli

import (
	"fmt"
	"strings"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/branding"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/content"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/options"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/prompt"
	"github.com/spf13/cobra"
)

// Shared flags for all add subcommands.
var (
	addNamespace     string
	addFormatVersion string
	addOverwrite     bool
	addYes           bool
)

func init() {
	addCmd.PersistentFlags().StringVar(&addNamespace, "namespace", "", "Namespace (default from project config)")
	addCmd.PersistentFlags().StringVar(&addFormatVersion, "format-version", "", "Format version of the generated documents")
	addCmd.PersistentFlags().BoolVar(&addOverwrite, "overwrite", false, "Replace existing documents")
	addCmd.PersistentFlags().BoolVarP(&addYes, "yes", "y", false, "Skip prompts and use flags and defaults")
	rootCmd.AddCommand(addCmd)

	addCmd.AddCommand(addItemCmd)
	addCmd.AddCommand(addRecipeCmd)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add content to the project",
	Long:  `Add items or recipes to the behavior and resource packs of the current project.`,
}

// --- add item ---

var (
	itemType         string
	itemArmorType    string
	itemFoil         bool
	itemMaxStackSize string
)

func init() {
	addItemCmd.Flags().StringVar(&itemType, "type", "", "Item type: "+joinTypes(options.ItemTypes))
	addItemCmd.Flags().StringVar(&itemArmorType, "armor-type", "", "Armor slot: "+joinTypes(options.ArmorTypes))
	addItemCmd.Flags().BoolVar(&itemFoil, "foil", false, "Give the item the enchanted glint")
	addItemCmd.Flags().StringVar(&itemMaxStackSize, "max-stack-size", "", "Max stack size (1-64)")
}

var addItemCmd = &cobra.Command{
	Use:   "item [name|file" + branding.ParamFileExt() + "]",
	Short: "Add an item",
	Long: `Add an item to the project.

Writes the behavior pack item, a resource pack stub for format versions before
1.16.100, a placeholder texture, the texture atlas entry, an attachable for
armor and the display name. The options are saved as item_<name>` + branding.ParamFileExt() + `
so the item can be regenerated with "add item item_<name>` + branding.ParamFileExt() + ` --overwrite".

Examples:
  mbu add item "Ruby Sword" --type weapon -y
  mbu add item item_ruby_sword` + branding.ParamFileExt() + ` --overwrite`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAddItem,
}

func runAddItem(cmd *cobra.Command, args []string) error {
	root := rootDir(nil)
	ctx, err := resolveContext(root)
	if err != nil {
		return err
	}

	var opts options.Item
	if len(args) > 0 && isParamFile(args[0]) {
		loaded, err := options.LoadItem(args[0])
		if err != nil {
			return err
		}
		opts = *loaded
	} else {
		if opts, err = itemFromFlags(args); err != nil {
			return err
		}
		if !addYes {
			typ, err := options.ParseItemType(opts.Type)
			if err != nil {
				return err
			}
			if opts.Type == "" {
				if typ, err = prompt.ItemType(asker); err != nil {
					return err
				}
			}
			if opts, err = prompt.Item(asker, typ, opts, ctx.ItemDefaults()); err != nil {
				return err
			}
		}
	}
	opts.Overwrite = addOverwrite

	report, err := content.AddItem(ctx, logger, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	successColor.Fprintf(out, "✓ Added item %s\n", report.ID)
	printFiles(out, root, report.Files)
	infoColor.Fprintf(out, "\nItem options saved to %s\n", report.ParamFile)
	return nil
}

func itemFromFlags(args []string) (options.Item, error) {
	opts := options.Item{
		Type:          itemType,
		Namespace:     addNamespace,
		FormatVersion: addFormatVersion,
	}
	if len(args) > 0 {
		opts.Name = args[0]
	}
	if itemArmorType != "" {
		opts.Armor = &options.ArmorOptions{Type: itemArmorType}
	}
	if itemFoil {
		opts.Foil = options.Ptr(true)
	}
	stack, err := options.ParseInt("max_stack_size", itemMaxStackSize)
	if err != nil {
		return opts, err
	}
	opts.MaxStackSize = stack
	return opts, nil
}

// --- add recipe ---

var (
	recipeResult string
	recipeAmount string
	recipeKeys   []string
	recipeGrid   []string
)

func init() {
	addRecipeCmd.Flags().StringVar(&recipeResult, "result", "", "Result item identifier")
	addRecipeCmd.Flags().StringVar(&recipeAmount, "amount", "", "Result amount (default 1)")
	addRecipeCmd.Flags().StringArrayVar(&recipeKeys, "key", nil, "Key entry as SYMBOL=item, repeatable")
	addRecipeCmd.Flags().StringArrayVar(&recipeGrid, "row", nil, "Grid row of up to 3 symbols, space for blank, repeatable")
}

var addRecipeCmd = &cobra.Command{
	Use:   "recipe [name|file" + branding.ParamFileExt() + "]",
	Short: "Add a shaped crafting recipe",
	Long: `Add a shaped crafting table recipe to the behavior pack.

Symbols are one of ` + options.Symbols + `. The grid is compacted to the
smallest pattern the game accepts.

Examples:
  mbu add recipe "Ruby Block" --result gems:ruby_block --key x=gems:ruby --row xx --row xx -y`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAddRecipe,
}

func runAddRecipe(cmd *cobra.Command, args []string) error {
	root := rootDir(nil)
	ctx, err := resolveContext(root)
	if err != nil {
		return err
	}

	var opts options.Recipe
	if len(args) > 0 && isParamFile(args[0]) {
		loaded, err := options.LoadRecipe(args[0])
		if err != nil {
			return err
		}
		opts = *loaded
	} else {
		if opts, err = recipeFromFlags(args); err != nil {
			return err
		}
		if !addYes {
			if opts, err = prompt.Recipe(asker, opts, ctx.RecipeDefaults()); err != nil {
				return err
			}
		}
	}
	opts.Overwrite = addOverwrite

	report, err := content.AddRecipe(ctx, logger, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	successColor.Fprintf(out, "✓ Added recipe %s\n", report.ID)
	printFiles(out, root, report.Files)
	infoColor.Fprintf(out, "\nRecipe options saved to %s\n", report.ParamFile)
	return nil
}

func recipeFromFlags(args []string) (options.Recipe, error) {
	opts := options.Recipe{
		Namespace:     addNamespace,
		FormatVersion: addFormatVersion,
		ResultItem:    recipeResult,
	}
	if len(args) > 0 {
		opts.Name = args[0]
	}

	amount, err := options.ParseInt("result_amount", recipeAmount)
	if err != nil {
		return opts, err
	}
	opts.ResultAmount = amount

	if opts.Key, err = parseKeys(recipeKeys); err != nil {
		return opts, err
	}
	if opts.Grid, err = parseRows(recipeGrid); err != nil {
		return opts, err
	}
	return opts, nil
}

// parseKeys turns SYMBOL=item pairs into a key map.
func parseKeys(pairs []string) (map[string]string, error) {
	key := map[string]string{}
	for _, p := range pairs {
		sym, item, ok := strings.Cut(p, "=")
		if !ok || len(sym) != 1 {
			return nil, fmt.Errorf("%w: key: %q is not SYMBOL=item", options.ErrMalformed, p)
		}
		key[sym] = item
	}
	return key, nil
}

// parseRows maps up to three rows of up to three symbols onto grid cells.
func parseRows(rows []string) (map[string]string, error) {
	if len(rows) > len(options.Rows) {
		return nil, fmt.Errorf("%w: grid: %d rows, at most %d", options.ErrMalformed, len(rows), len(options.Rows))
	}
	grid := map[string]string{}
	for r, row := range rows {
		if len(row) > len(options.Cols) {
			return nil, fmt.Errorf("%w: grid: row %q is longer than %d", options.ErrMalformed, row, len(options.Cols))
		}
		for c, ch := range row {
			if ch == ' ' || ch == '.' {
				continue
			}
			grid[options.CellKey(r, c)] = string(ch)
		}
	}
	return grid, nil
}

func isParamFile(arg string) bool {
	return strings.HasSuffix(arg, branding.ParamFileExt())
}

func joinTypes[T ~string](values []T) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = string(v)
	}
	return strings.Join(s, ", ")
}

package options

import (
	"fmt"
	"strings"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/formatversion"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/identifier"
)

// DefaultRecipeNamespace is used when a recipe has no namespace.
const DefaultRecipeNamespace = "my_recipes"

// Symbols is the key alphabet a crafting grid cell may reference.
const Symbols = "#-x|abcdE"

// Rows and Cols name the crafting grid axes.
var (
	Rows = [3]string{"a", "b", "c"}
	Cols = [3]string{"1", "2", "3"}
)

// CellKey returns the saved-file key of a grid cell, e.g. CellKey(1, 2) →
// "field_b_3".
func CellKey(row, col int) string {
	return fmt.Sprintf("field_%s_%s", Rows[row], Cols[col])
}

// Grid is a 3×3 crafting grid indexed [row][col]. Blank cells are "".
type Grid [3][3]string

// Blank reports whether a cell value counts as empty.
func Blank(v string) bool {
	return strings.TrimSpace(v) == ""
}

// Recipe is the raw option record for one shaped recipe.
type Recipe struct {
	Name          string            `yaml:"name" json:"name"`
	Namespace     string            `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	FormatVersion string            `yaml:"format_version,omitempty" json:"format_version,omitempty"`
	ResultItem    string            `yaml:"result_item,omitempty" json:"result_item,omitempty"`
	ResultAmount  *int              `yaml:"result_amount,omitempty" json:"result_amount,omitempty"`
	Key           map[string]string `yaml:"key,omitempty" json:"key,omitempty"`
	Grid          map[string]string `yaml:"grid,omitempty" json:"grid,omitempty"`

	Overwrite bool `yaml:"-" json:"-"`
}

// ResolvedRecipe is a validated recipe record.
type ResolvedRecipe struct {
	Name          string
	Namespace     string
	Slug          string
	ID            string
	FormatVersion string
	ResultItem    string
	ResultAmount  int
	// Key maps an upper-cased symbol to an item identifier. Only populated
	// slots are present.
	Key  map[string]string
	Grid Grid

	Overwrite bool
}

// RecipeDefaults returns the built-in recipe defaults.
func RecipeDefaults() Defaults {
	return Defaults{
		Namespace:           DefaultRecipeNamespace,
		StableVersion:       formatversion.Stable,
		ExperimentalVersion: formatversion.Experimental,
	}
}

// ResolveRecipe validates opts and applies every fallback.
func ResolveRecipe(opts Recipe, d Defaults) (ResolvedRecipe, error) {
	name := strings.TrimSpace(opts.Name)
	if name == "" {
		return ResolvedRecipe{}, malformed("name", "recipe name is required")
	}
	if err := plainName(name); err != nil {
		return ResolvedRecipe{}, err
	}
	slug := identifier.NormalizeSlug(name)
	if slug == "" {
		return ResolvedRecipe{}, malformed("name", "%q has no usable characters", name)
	}

	namespace := opts.Namespace
	if namespace == "" {
		namespace = d.Namespace
	}
	if namespace == "" {
		namespace = DefaultRecipeNamespace
	}

	version := opts.FormatVersion
	if version == "" {
		version = d.StableVersion
	}
	if _, err := formatversion.Parse(version); err != nil {
		return ResolvedRecipe{}, malformed("format_version", "%q: %v", version, err)
	}

	amount := valueOr(opts.ResultAmount, 1)
	if amount < 1 {
		return ResolvedRecipe{}, malformed("result_amount", "%d must be at least 1", amount)
	}

	key := make(map[string]string)
	for sym, item := range opts.Key {
		if Blank(item) {
			continue
		}
		if !isSymbol(sym) {
			return ResolvedRecipe{}, malformed("key", "%q is not one of %q", sym, Symbols)
		}
		key[strings.ToUpper(sym)] = strings.TrimSpace(item)
	}

	var grid Grid
	for r := range Rows {
		for c := range Cols {
			v := opts.Grid[CellKey(r, c)]
			if Blank(v) {
				continue
			}
			if !isSymbol(v) {
				return ResolvedRecipe{}, malformed(CellKey(r, c), "%q is not one of %q", v, Symbols)
			}
			grid[r][c] = v
		}
	}

	return ResolvedRecipe{
		Name:          name,
		Namespace:     namespace,
		Slug:          slug,
		ID:            namespace + ":" + slug,
		FormatVersion: version,
		ResultItem:    strings.TrimSpace(opts.ResultItem),
		ResultAmount:  amount,
		Key:           key,
		Grid:          grid,
		Overwrite:     opts.Overwrite,
	}, nil
}

// isSymbol reports whether s is a single symbol of the key alphabet. Letters
// match case-insensitively since patterns and keys are upper-cased.
func isSymbol(s string) bool {
	if len(s) != 1 {
		return false
	}
	return strings.ContainsAny(strings.ToUpper(Symbols), strings.ToUpper(s))
}

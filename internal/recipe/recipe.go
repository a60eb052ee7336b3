// Package recipe generates shaped crafting recipes for the behavior pack.
package recipe

import (
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/options"
)

// Document is the recipes/<slug>.json layout.
type Document struct {
	FormatVersion string `json:"format_version"`
	Shaped        Shaped `json:"minecraft:recipe_shaped"`
}

// Shaped is the "minecraft:recipe_shaped" object.
type Shaped struct {
	Description Description     `json:"description"`
	Tags        []string        `json:"tags"`
	Pattern     []string        `json:"pattern"`
	Key         map[string]Slot `json:"key"`
	Result      Result          `json:"result"`
}

// Description identifies the recipe.
type Description struct {
	Identifier string `json:"identifier"`
}

// Slot is the item a pattern symbol stands for.
type Slot struct {
	Item string `json:"item"`
	Data int    `json:"data"`
}

// Result is the crafted output.
type Result struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

// Generate builds a crafting table recipe. Every populated key slot is
// included, and the pattern comes from CompactPattern.
func Generate(r options.ResolvedRecipe) *Document {
	key := make(map[string]Slot, len(r.Key))
	for sym, item := range r.Key {
		key[sym] = Slot{Item: item, Data: 0}
	}
	return &Document{
		FormatVersion: r.FormatVersion,
		Shaped: Shaped{
			Description: Description{Identifier: r.ID},
			Tags:        []string{"crafting_table"},
			Pattern:     CompactPattern(r.Grid),
			Key:         key,
			Result:      Result{Item: r.ResultItem, Count: r.ResultAmount},
		},
	}
}

// UnkeyedSymbols lists pattern symbols that have no key entry. The game
// rejects such recipes, so callers warn about them.
func UnkeyedSymbols(doc *Document) []string {
	seen := map[rune]bool{}
	var missing []string
	for _, row := range doc.Shaped.Pattern {
		for _, ch := range row {
			if ch == ' ' || seen[ch] {
				continue
			}
			seen[ch] = true
			if _, ok := doc.Shaped.Key[string(ch)]; !ok {
				missing = append(missing, string(ch))
			}
		}
	}
	return missing
}

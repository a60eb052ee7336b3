package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/options"
)

// Recipe asks for a shaped recipe: identity, result, one item per key symbol
// and the symbol in each of the nine grid cells. Blank answers leave a key
// slot or cell empty.
func Recipe(a Asker, seed options.Recipe, d options.Defaults) (options.Recipe, error) {
	f := &form{a: a}
	out := seed

	name := seed.Name
	if name == "" {
		name = "New recipe"
	}
	namespace := seed.Namespace
	if namespace == "" {
		namespace = d.Namespace
	}
	version := seed.FormatVersion
	if version == "" {
		version = d.StableVersion
	}

	out.Name = f.input("Recipe Name", name)
	out.Namespace = f.input("Namespace", namespace)
	out.FormatVersion = f.input("Format Version", version)
	out.ResultItem = f.input("Result Item (e.g. minecraft:stick)", seed.ResultItem)
	amount := "1"
	if seed.ResultAmount != nil {
		amount = strconv.Itoa(*seed.ResultAmount)
	}
	out.ResultAmount = f.intField("result_amount", "Result Amount", amount)

	key := map[string]string{}
	for k, v := range seed.Key {
		key[k] = v
	}
	for _, sym := range options.Symbols {
		s := string(sym)
		v := f.input(fmt.Sprintf("Item for %s", s), key[s])
		if strings.TrimSpace(v) == "" {
			delete(key, s)
			continue
		}
		key[s] = strings.TrimSpace(v)
	}
	out.Key = key

	grid := map[string]string{}
	for r, row := range options.Rows {
		for c, col := range options.Cols {
			cell := options.CellKey(r, c)
			v := f.input(fmt.Sprintf("Grid %s%s (%s)", row, col, options.Symbols), seed.Grid[cell])
			if strings.TrimSpace(v) != "" {
				grid[cell] = strings.TrimSpace(v)
			}
		}
	}
	out.Grid = grid

	return out, f.err
}

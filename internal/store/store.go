package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/identifier"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/workspace"
)

// DefaultCategory is reported for items without a description.category.
const DefaultCategory = "misc"

// Folders scanned inside each pack.
const (
	ItemsDir   = "items"
	RecipesDir = "recipes"
)

// ItemSummary describes one indexed item.
type ItemSummary struct {
	ID             string `json:"id"`
	Category       string `json:"category"`
	InBehaviorPack bool   `json:"behavior_pack"`
	InResourcePack bool   `json:"resource_pack"`
}

// RecipeSummary describes one indexed recipe.
type RecipeSummary struct {
	ID     string   `json:"id"`
	Tags   []string `json:"tags"`
	Result string   `json:"result"`
}

// MalformedInput is a file the scan had to skip.
type MalformedInput struct {
	Path string
	Err  error
}

func (m MalformedInput) String() string {
	return fmt.Sprintf("%s: %v", m.Path, m.Err)
}

// Index is the result of one scan.
type Index[T any] struct {
	Entries  map[string]*T
	Warnings []MalformedInput
}

// Exists reports whether id was found.
func (x *Index[T]) Exists(id string) bool {
	_, ok := x.Entries[id]
	return ok
}

// IDs returns every indexed identifier, sorted.
func (x *Index[T]) IDs() []string {
	ids := make([]string, 0, len(x.Entries))
	for id := range x.Entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Sorted returns every entry ordered by identifier.
func (x *Index[T]) Sorted() []*T {
	ids := x.IDs()
	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		out = append(out, x.Entries[id])
	}
	return out
}

type itemFile struct {
	Item *struct {
		Description struct {
			Identifier string `json:"identifier"`
			Category   string `json:"category"`
		} `json:"description"`
	} `json:"minecraft:item"`
}

type recipeFile struct {
	Shaped *struct {
		Description struct {
			Identifier string `json:"identifier"`
		} `json:"description"`
		Tags   []string `json:"tags"`
		Result struct {
			Item string `json:"item"`
		} `json:"result"`
	} `json:"minecraft:recipe_shaped"`
}

// ScanItems indexes items/*.json of the behavior pack, then of the resource
// pack. An item present in both packs is a single entry with both flags set;
// the resource pack never overrides a category already read.
func ScanItems(ctx *workspace.Context) (*Index[ItemSummary], error) {
	idx := &Index[ItemSummary]{Entries: map[string]*ItemSummary{}}

	for _, p := range []struct {
		dir      string
		behavior bool
	}{{ctx.BehaviorPack, true}, {ctx.ResourcePack, false}} {
		if p.dir == "" {
			continue
		}
		err := scan(filepath.Join(p.dir, ItemsDir), idx.addWarning, func(path string, data []byte) error {
			var f itemFile
			if err := json.Unmarshal(data, &f); err != nil {
				return err
			}
			if f.Item == nil || f.Item.Description.Identifier == "" {
				return nil
			}
			id := f.Item.Description.Identifier
			entry, ok := idx.Entries[id]
			if !ok {
				entry = &ItemSummary{ID: id}
				idx.Entries[id] = entry
			}
			if entry.Category == "" {
				entry.Category = f.Item.Description.Category
			}
			if p.behavior {
				entry.InBehaviorPack = true
			} else {
				entry.InResourcePack = true
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	for _, e := range idx.Entries {
		if e.Category == "" {
			e.Category = DefaultCategory
		}
	}
	return idx, nil
}

// ScanRecipes indexes recipes/*.json of the behavior pack.
func ScanRecipes(ctx *workspace.Context) (*Index[RecipeSummary], error) {
	idx := &Index[RecipeSummary]{Entries: map[string]*RecipeSummary{}}
	if ctx.BehaviorPack == "" {
		return idx, nil
	}

	err := scan(filepath.Join(ctx.BehaviorPack, RecipesDir), idx.addWarning, func(path string, data []byte) error {
		var f recipeFile
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		if f.Shaped == nil || f.Shaped.Description.Identifier == "" {
			return nil
		}
		id := f.Shaped.Description.Identifier
		idx.Entries[id] = &RecipeSummary{ID: id, Tags: f.Shaped.Tags, Result: f.Shaped.Result.Item}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return idx, nil
}

// ItemExists reports whether an item with the given name already exists.
// An empty namespace falls back to the project default.
func ItemExists(ctx *workspace.Context, name, namespace string) (bool, error) {
	idx, err := ScanItems(ctx)
	if err != nil {
		return false, err
	}
	return idx.Exists(identifier.MakeID(name, namespace, ctx.ItemDefaults().Namespace)), nil
}

// RecipeExists reports whether a recipe with the given name already exists.
func RecipeExists(ctx *workspace.Context, name, namespace string) (bool, error) {
	idx, err := ScanRecipes(ctx)
	if err != nil {
		return false, err
	}
	return idx.Exists(identifier.MakeID(name, namespace, ctx.RecipeDefaults().Namespace)), nil
}

func (x *Index[T]) addWarning(path string, err error) {
	x.Warnings = append(x.Warnings, MalformedInput{Path: path, Err: err})
}

// scan feeds every *.json file in dir to fn in name order. A missing dir is
// an empty result. Read and decode errors become warnings.
func scan(dir string, warn func(string, error), fn func(path string, data []byte) error) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return fmt.Errorf("listing %s: %w", dir, err)
	}
	sort.Strings(files)
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			warn(path, err)
			continue
		}
		if err := fn(path, data); err != nil {
			warn(path, err)
		}
	}
	return nil
}

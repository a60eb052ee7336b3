package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func project(t *testing.T) *workspace.Context {
	t.Helper()
	root := t.TempDir()
	return &workspace.Context{
		Root:         root,
		BehaviorPack: filepath.Join(root, "BP"),
		ResourcePack: filepath.Join(root, "RP"),
	}
}

func TestScanItemsMergesPacks(t *testing.T) {
	ctx := project(t)
	write(t, filepath.Join(ctx.BehaviorPack, "items", "ruby.json"),
		`{"format_version":"1.16.1","minecraft:item":{"description":{"identifier":"gems:ruby","category":"Items"},"components":{}}}`)
	write(t, filepath.Join(ctx.ResourcePack, "items", "ruby.json"),
		`{"format_version":"1.16.1","minecraft:item":{"description":{"identifier":"gems:ruby","category":"Equipment"},"components":{}}}`)
	write(t, filepath.Join(ctx.ResourcePack, "items", "wand.json"),
		`{"format_version":"1.16.1","minecraft:item":{"description":{"identifier":"gems:wand"},"components":{}}}`)

	idx, err := ScanItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, idx.Warnings)
	assert.Equal(t, []string{"gems:ruby", "gems:wand"}, idx.IDs())

	ruby := idx.Entries["gems:ruby"]
	assert.True(t, ruby.InBehaviorPack)
	assert.True(t, ruby.InResourcePack)
	assert.Equal(t, "Items", ruby.Category)

	wand := idx.Entries["gems:wand"]
	assert.False(t, wand.InBehaviorPack)
	assert.True(t, wand.InResourcePack)
	assert.Equal(t, DefaultCategory, wand.Category)
}

func TestScanItemsSkipsMalformed(t *testing.T) {
	ctx := project(t)
	write(t, filepath.Join(ctx.BehaviorPack, "items", "broken.json"), `{"minecraft:item":`)
	write(t, filepath.Join(ctx.BehaviorPack, "items", "good.json"),
		`{"minecraft:item":{"description":{"identifier":"a:good"}}}`)
	write(t, filepath.Join(ctx.BehaviorPack, "items", "other.json"), `{"something":"else"}`)

	idx, err := ScanItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a:good"}, idx.IDs())
	require.Len(t, idx.Warnings, 1)
	assert.Equal(t, filepath.Join(ctx.BehaviorPack, "items", "broken.json"), idx.Warnings[0].Path)
}

func TestScanMissingFolders(t *testing.T) {
	ctx := project(t)

	items, err := ScanItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items.IDs())

	recipes, err := ScanRecipes(ctx)
	require.NoError(t, err)
	assert.Empty(t, recipes.IDs())

	recipes, err = ScanRecipes(&workspace.Context{})
	require.NoError(t, err)
	assert.Empty(t, recipes.IDs())
}

func TestScanRecipes(t *testing.T) {
	ctx := project(t)
	write(t, filepath.Join(ctx.BehaviorPack, "recipes", "ruby_block.json"), `{
		"format_version": "1.16.1",
		"minecraft:recipe_shaped": {
			"description": {"identifier": "gems:ruby_block"},
			"tags": ["crafting_table"],
			"pattern": ["XX", "XX"],
			"key": {"X": {"item": "gems:ruby", "data": 0}},
			"result": {"item": "gems:ruby_block", "count": 1}
		}
	}`)

	idx, err := ScanRecipes(ctx)
	require.NoError(t, err)
	require.True(t, idx.Exists("gems:ruby_block"))
	r := idx.Sorted()[0]
	assert.Equal(t, []string{"crafting_table"}, r.Tags)
	assert.Equal(t, "gems:ruby_block", r.Result)
}

func TestItemExists(t *testing.T) {
	ctx := project(t)
	write(t, filepath.Join(ctx.BehaviorPack, "items", "my_sword.json"),
		`{"minecraft:item":{"description":{"identifier":"my_items:my_sword"}}}`)

	ok, err := ItemExists(ctx, "My Sword", "")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ItemExists(ctx, "My Sword", "other")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecipeExists(t *testing.T) {
	ctx := project(t)
	write(t, filepath.Join(ctx.BehaviorPack, "recipes", "stick.json"),
		`{"minecraft:recipe_shaped":{"description":{"identifier":"my_recipes:stick"},"tags":["crafting_table"]}}`)

	ok, err := RecipeExists(ctx, "Stick", "")
	require.NoError(t, err)
	assert.True(t, ok)
}

package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellKey(t *testing.T) {
	assert.Equal(t, "field_a_1", CellKey(0, 0))
	assert.Equal(t, "field_b_3", CellKey(1, 2))
	assert.Equal(t, "field_c_3", CellKey(2, 2))
}

func TestResolveRecipe(t *testing.T) {
	r, err := ResolveRecipe(Recipe{
		Name:       "Diamond Stick",
		ResultItem: "my_items:diamond_stick",
		Key:        map[string]string{"#": "minecraft:diamond", "x": "minecraft:stick", "a": ""},
		Grid:       map[string]string{"field_a_2": "#", "field_b_2": "x", "field_c_2": " "},
	}, RecipeDefaults())
	require.NoError(t, err)

	assert.Equal(t, "my_recipes:diamond_stick", r.ID)
	assert.Equal(t, "1.16.1", r.FormatVersion)
	assert.Equal(t, 1, r.ResultAmount)
	assert.Equal(t, map[string]string{"#": "minecraft:diamond", "X": "minecraft:stick"}, r.Key)
	assert.Equal(t, "#", r.Grid[0][1])
	assert.Equal(t, "x", r.Grid[1][1])
	assert.Equal(t, "", r.Grid[2][1])
}

func TestResolveRecipeErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Recipe
	}{
		{"missing name", Recipe{}},
		{"line break in name", Recipe{Name: "Gem\r\nBlock"}},
		{"bad symbol", Recipe{Name: "r", Key: map[string]string{"z": "minecraft:dirt"}}},
		{"bad cell", Recipe{Name: "r", Grid: map[string]string{"field_a_1": "zz"}}},
		{"zero amount", Recipe{Name: "r", ResultAmount: Ptr(0)}},
		{"bad version", Recipe{Name: "r", FormatVersion: "latest"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveRecipe(tt.opts, RecipeDefaults())
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestResolveRecipeSymbolCase(t *testing.T) {
	r, err := ResolveRecipe(Recipe{
		Name: "r",
		Key:  map[string]string{"e": "minecraft:emerald", "E": "minecraft:emerald"},
		Grid: map[string]string{"field_a_1": "e"},
	}, RecipeDefaults())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"E": "minecraft:emerald"}, r.Key)
}

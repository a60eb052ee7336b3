package prompt

import (
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted answers questions by message. Unknown questions take the
// default, so tests only list what they change.
type scripted struct {
	answers map[string]string
	asked   []string
	failOn  string
	failErr error
}

func (s *scripted) answer(message, def string) (string, bool, error) {
	s.asked = append(s.asked, message)
	if message == s.failOn {
		return "", false, s.failErr
	}
	v, ok := s.answers[message]
	if !ok {
		return def, false, nil
	}
	return v, true, nil
}

func (s *scripted) Input(message, def string) (string, error) {
	v, _, err := s.answer(message, def)
	return v, err
}

func (s *scripted) Confirm(message string, def bool) (bool, error) {
	v, ok, err := s.answer(message, "")
	if err != nil || !ok {
		return def, err
	}
	return v == "y", nil
}

func (s *scripted) Select(message string, opts []string, def string) (string, error) {
	v, _, err := s.answer(message, def)
	return v, err
}

func TestItemDefaults(t *testing.T) {
	a := &scripted{}
	got, err := Item(a, options.TypeFood, options.Item{}, options.ItemDefaults())
	require.NoError(t, err)

	assert.Equal(t, "New food item", got.Name)
	assert.Equal(t, "my_items", got.Namespace)
	assert.Equal(t, "1.16.1", got.FormatVersion)
	assert.Equal(t, "food", got.Type)
	require.NotNil(t, got.Food)
	assert.Equal(t, 4, *got.Food.Nutrition)
	assert.Equal(t, "low", *got.Food.SaturationModifier)
	assert.Nil(t, got.Food.UsingConvertsTo)
	assert.Equal(t, 32, *got.UseDuration)

	r, err := options.ResolveItem(got, options.ItemDefaults())
	require.NoError(t, err)
	assert.Equal(t, "my_items:new_food_item", r.ID)
}

func TestItemArmorAsksSlot(t *testing.T) {
	a := &scripted{answers: map[string]string{
		"Select the armor type you want to create": "helmet",
		"Item Name":  "Ruby Helmet",
		"Protection": "0",
	}}
	got, err := Item(a, options.TypeArmor, options.Item{}, options.ItemDefaults())
	require.NoError(t, err)

	assert.Equal(t, "helmet", got.Armor.Type)
	assert.Equal(t, 0, *got.Armor.Protection)
	assert.Equal(t, "1.16.100", got.FormatVersion)
	assert.Equal(t, 1, *got.MaxStackSize)
	assert.NotContains(t, a.asked, "Geometry")
}

func TestItemCustomArmorAsksGeometry(t *testing.T) {
	a := &scripted{answers: map[string]string{"Geometry": "geometry.custom"}}
	got, err := Item(a, options.TypeArmor, options.Item{Armor: &options.ArmorOptions{Type: "custom"}}, options.ItemDefaults())
	require.NoError(t, err)
	assert.Equal(t, "geometry.custom", *got.Armor.Geometry)
	assert.NotContains(t, a.asked, "Select the armor type you want to create")
}

func TestItemMalformedNumber(t *testing.T) {
	a := &scripted{answers: map[string]string{"Damage": "lots"}}
	_, err := Item(a, options.TypeWeapon, options.Item{}, options.ItemDefaults())
	assert.ErrorIs(t, err, options.ErrMalformed)
}

func TestItemStopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	a := &scripted{failOn: "Namespace", failErr: boom}
	_, err := Item(a, options.TypeCustom, options.Item{Name: "Ruby"}, options.ItemDefaults())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "Namespace", a.asked[len(a.asked)-1])
}

func TestItemType(t *testing.T) {
	typ, err := ItemType(&scripted{answers: map[string]string{
		"Select the item type you want to create": "throwable",
	}})
	require.NoError(t, err)
	assert.Equal(t, options.TypeThrowable, typ)
}

func TestRecipe(t *testing.T) {
	a := &scripted{answers: map[string]string{
		"Recipe Name":                        "Ruby Block",
		"Result Item (e.g. minecraft:stick)": "gems:ruby_block",
		"Item for x":                         "gems:ruby",
		"Grid a1 (#-x|abcdE)":                "x",
		"Grid a2 (#-x|abcdE)":                "x",
	}}
	got, err := Recipe(a, options.Recipe{}, options.RecipeDefaults())
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"x": "gems:ruby"}, got.Key)
	assert.Equal(t, map[string]string{"field_a_1": "x", "field_a_2": "x"}, got.Grid)
	assert.Equal(t, 1, *got.ResultAmount)

	r, err := options.ResolveRecipe(got, options.RecipeDefaults())
	require.NoError(t, err)
	assert.Equal(t, "my_recipes:ruby_block", r.ID)
}

func TestProject(t *testing.T) {
	a := &scripted{answers: map[string]string{
		"Select the project type": "resource-pack",
		"Project Name":            "Gem Tools",
	}}
	got, err := Project(a, options.Project{})
	require.NoError(t, err)

	assert.Equal(t, "Gem_Tools", got.FolderName)
	assert.Equal(t, "gem_tools", got.Namespace)
	assert.Equal(t, "Resource Pack for Gem Tools", got.ResourceDescription)
	assert.Empty(t, got.BehaviorDescription)
	assert.NotContains(t, a.asked, "Behavior Pack Description")
	assert.True(t, *got.PreCreateFiles)
}

func TestMapErr(t *testing.T) {
	assert.ErrorIs(t, mapErr(terminal.InterruptErr), ErrCancelled)
	assert.NoError(t, mapErr(nil))
}

//go:build integration

package integration_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/content"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/deploy"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/logging"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/options"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/pack"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/schema"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/store"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/workspace"
)

// TestFullFlowCreateAddDeploy covers the complete flow:
// new project -> add items and a recipe -> list -> validate -> copy to game.
func TestFullFlowCreateAddDeploy(t *testing.T) {
	env := setupTestEnv(t)
	ctx := setupProject(t, env, "Gem Tools")
	log := logging.Discard()

	// Step 1: Add one item of every type.
	for _, typ := range options.ItemTypes {
		name := "Gem " + string(typ)
		if _, err := content.AddItem(ctx, log, options.Item{Name: name, Type: string(typ)}); err != nil {
			t.Fatalf("AddItem(%s): %v", typ, err)
		}
	}

	// Step 2: Add a recipe producing one of them.
	_, err := content.AddRecipe(ctx, log, options.Recipe{
		Name:       "Gem Weapon",
		ResultItem: "my_items:gem_weapon",
		Key:        map[string]string{"x": "minecraft:diamond", "|": "minecraft:stick"},
		Grid:       map[string]string{"field_a_2": "x", "field_b_2": "x", "field_c_2": "|"},
	})
	if err != nil {
		t.Fatalf("AddRecipe: %v", err)
	}

	// Step 3: A fresh scan sees everything.
	ctx = resolve(t, env)
	items, err := store.ScanItems(ctx)
	if err != nil {
		t.Fatalf("ScanItems: %v", err)
	}
	if len(items.Entries) != len(options.ItemTypes) {
		t.Errorf("indexed %d items, want %d: %v", len(items.Entries), len(options.ItemTypes), items.IDs())
	}
	if !items.Exists("my_items:gem_armor") {
		t.Errorf("armor item not indexed: %v", items.IDs())
	}
	recipes, err := store.ScanRecipes(ctx)
	if err != nil {
		t.Fatalf("ScanRecipes: %v", err)
	}
	if !recipes.Exists("my_recipes:gem_weapon") {
		t.Errorf("recipe not indexed: %v", recipes.IDs())
	}

	// Step 4: Every generated document matches its schema.
	for _, dir := range []string{
		filepath.Join(ctx.BehaviorPack, "items"),
		filepath.Join(ctx.BehaviorPack, "recipes"),
		filepath.Join(ctx.ResourcePack, "items"),
		filepath.Join(ctx.ResourcePack, "attachables"),
	} {
		files, _ := filepath.Glob(filepath.Join(dir, "*.json"))
		for _, f := range files {
			result, err := schema.ValidateFile(f)
			if err != nil {
				t.Errorf("ValidateFile(%s): %v", f, err)
				continue
			}
			if !result.Valid {
				t.Errorf("%s is invalid: %v", f, result.Issues)
			}
		}
	}

	// Step 5: Copy into the development folders.
	gameDir, err := workspace.GameDir()
	if err != nil {
		t.Fatalf("GameDir: %v", err)
	}
	results, err := deploy.Install(ctx, deploy.Options{GameDir: gameDir, Development: true})
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("installed %d packs, want 2", len(results))
	}

	bp := filepath.Join(env.GameDir, workspace.DevelopmentBehaviorPacks, "Gem_Tools_BehaviorPack")
	rp := filepath.Join(env.GameDir, workspace.DevelopmentResourcePacks, "Gem_Tools_ResourcePack")
	assertFileExists(t, filepath.Join(bp, "items", "gem_weapon.json"))
	assertFileExists(t, filepath.Join(bp, "recipes", "gem_weapon.json"))
	assertFileExists(t, filepath.Join(rp, "attachables", "gem_armor.json"))
	assertFileContains(t, filepath.Join(rp, "texts", "en_US.lang"), "item.my_items:gem_food.name=Gem food")
	assertFileNotExists(t, filepath.Join(bp, "item_gem_food.mbu"))
}

// TestFullFlowRegenerateFromParamFile reloads a saved parameter file and
// regenerates the item, as "add item item_<slug>.mbu --overwrite" does.
func TestFullFlowRegenerateFromParamFile(t *testing.T) {
	env := setupTestEnv(t)
	ctx := setupProject(t, env, "Gems")
	log := logging.Discard()

	report, err := content.AddItem(ctx, log, options.Item{
		Name:         "Ruby",
		MaxStackSize: options.Ptr(16),
	})
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	saved, err := options.LoadItem(report.ParamFile)
	if err != nil {
		t.Fatalf("LoadItem: %v", err)
	}
	if saved.MaxStackSize == nil || *saved.MaxStackSize != 16 {
		t.Fatalf("saved max_stack_size = %v", saved.MaxStackSize)
	}

	if _, err := content.AddItem(resolve(t, env), log, *saved); !errors.Is(err, pack.ErrAlreadyExists) {
		t.Fatalf("AddItem without overwrite: err = %v", err)
	}

	saved.MaxStackSize = options.Ptr(8)
	saved.Overwrite = true
	if _, err := content.AddItem(resolve(t, env), log, *saved); err != nil {
		t.Fatalf("AddItem with overwrite: %v", err)
	}
	assertFileContains(t, filepath.Join(ctx.BehaviorPack, "items", "ruby.json"), `"minecraft:max_stack_size": 8`)
}

// TestFullFlowProjectConfigOverridesNamespace checks that .mbu/project.yaml
// wins over the built-in namespace.
func TestFullFlowProjectConfigOverridesNamespace(t *testing.T) {
	env := setupTestEnv(t)
	setupProject(t, env, "Gems")

	cfg := &workspace.ProjectConfig{Namespace: "gems"}
	if err := workspace.SaveProject(env.ProjectDir, cfg); err != nil {
		t.Fatalf("SaveProject: %v", err)
	}

	report, err := content.AddItem(resolve(t, env), logging.Discard(), options.Item{Name: "Ruby"})
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if report.ID != "gems:ruby" {
		t.Errorf("ID = %q, want gems:ruby", report.ID)
	}
}

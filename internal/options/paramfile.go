package options

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/branding"
	"go.yaml.in/yaml/v3"
)

// Load reads a saved parameter file into v. Files are written as JSON, which
// YAML accepts as a subset, so hand-written YAML works too.
func Load(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading parameter file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: parsing parameter file %s: %v", ErrMalformed, path, err)
	}
	return nil
}

// LoadItem reads a saved item parameter file.
func LoadItem(path string) (*Item, error) {
	var it Item
	if err := Load(path, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// LoadRecipe reads a saved recipe parameter file.
func LoadRecipe(path string) (*Recipe, error) {
	var r Recipe
	if err := Load(path, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// LoadProject reads a saved project parameter file.
func LoadProject(path string) (*Project, error) {
	var p Project
	if err := Load(path, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Save writes v as 2-space indented JSON so the run can be replayed later.
// Transient fields are excluded by their struct tags.
func Save(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling parameter file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing parameter file %s: %w", path, err)
	}
	return nil
}

// ItemFileName returns the parameter file name for an item slug.
func ItemFileName(slug string) string { return "item_" + slug + branding.ParamFileExt() }

// RecipeFileName returns the parameter file name for a recipe slug.
func RecipeFileName(slug string) string { return "recipe_" + slug + branding.ParamFileExt() }

// ProjectFileName returns the parameter file name written by "new".
func ProjectFileName() string { return "project" + branding.ParamFileExt() }

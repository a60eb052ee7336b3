package content

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/formatversion"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/options"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/pack"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/recipe"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/store"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/workspace"
	"github.com/charmbracelet/log"
)

// AddRecipe generates a shaped recipe into the project's behavior pack.
func AddRecipe(ctx *workspace.Context, logger *log.Logger, opts options.Recipe) (*Report, error) {
	if err := ctx.Require(true, false); err != nil {
		return nil, err
	}

	r, err := options.ResolveRecipe(opts, ctx.RecipeDefaults())
	if err != nil {
		return nil, err
	}

	idx, err := store.ScanRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("scanning recipes: %w", err)
	}
	for _, w := range idx.Warnings {
		logger.Warn("Skipped unreadable recipe", "path", w.Path, "err", w.Err)
	}
	if idx.Exists(r.ID) && !r.Overwrite {
		return nil, fmt.Errorf("recipe %s: %w", r.ID, pack.ErrAlreadyExists)
	}

	if msg, ok := formatversion.Warning(r.FormatVersion); ok {
		logger.Warn(msg, "format_version", r.FormatVersion)
	}

	doc := recipe.Generate(r)
	if missing := recipe.UnkeyedSymbols(doc); len(missing) > 0 {
		logger.Warn("Pattern uses symbols without a key entry", "symbols", strings.Join(missing, " "))
	}
	if r.ResultItem == "" {
		logger.Warn("Recipe has no result item", "id", r.ID)
	}

	w := &writer{ctx: ctx, logger: logger, overwrite: r.Overwrite, report: &Report{ID: r.ID}}
	w.document(filepath.Join(ctx.BehaviorPack, store.RecipesDir, r.Slug+".json"), doc)
	if w.err == nil && ctx.ResourcePack != "" {
		w.language(RecipeLanguageKey(r), r.Name)
	}
	if w.err != nil {
		return nil, w.err
	}

	param := filepath.Join(ctx.Root, options.RecipeFileName(r.Slug))
	if err := options.Save(param, opts); err != nil {
		return nil, err
	}
	w.report.ParamFile = param
	logger.Debug("Saved recipe options", "path", param)

	return w.report, nil
}

// RecipeLanguageKey returns the lang file key naming a recipe.
func RecipeLanguageKey(r options.ResolvedRecipe) string {
	return "recipe." + r.ID + ".name"
}

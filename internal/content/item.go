package content

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/attachable"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/formatversion"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/item"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/options"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/pack"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/store"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/workspace"
	"github.com/charmbracelet/log"
)

// Report lists what a flow wrote.
type Report struct {
	ID string
	// Files are the generated paths, relative to the project root.
	Files     []string
	ParamFile string
}

// AddItem generates an item into the project's behavior and resource packs.
//
// An item whose identifier is already indexed fails with
// pack.ErrAlreadyExists unless opts.Overwrite is set.
func AddItem(ctx *workspace.Context, logger *log.Logger, opts options.Item) (*Report, error) {
	if err := ctx.Require(true, true); err != nil {
		return nil, err
	}

	r, err := options.ResolveItem(opts, ctx.ItemDefaults())
	if err != nil {
		return nil, err
	}

	idx, err := store.ScanItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("scanning items: %w", err)
	}
	for _, w := range idx.Warnings {
		logger.Warn("Skipped unreadable item", "path", w.Path, "err", w.Err)
	}
	if idx.Exists(r.ID) && !r.Overwrite {
		return nil, fmt.Errorf("item %s: %w", r.ID, pack.ErrAlreadyExists)
	}

	if msg, ok := formatversion.Warning(r.FormatVersion); ok {
		logger.Warn(msg, "format_version", r.FormatVersion)
	}

	w := &writer{ctx: ctx, logger: logger, overwrite: r.Overwrite, report: &Report{ID: r.ID}}
	docs := item.Generate(r)
	file := r.Slug + ".json"

	w.document(filepath.Join(ctx.BehaviorPack, store.ItemsDir, file), docs.Behavior)
	if docs.Resource != nil {
		w.document(filepath.Join(ctx.ResourcePack, store.ItemsDir, file), docs.Resource)
	}

	w.asset(pack.ItemAsset(item.TextureAsset(r)), filepath.Join(ctx.ResourcePack, "textures", "items", r.Slug+".png"))
	if w.err == nil {
		if err := pack.AddItemTexture(ctx.ResourcePack, r.Slug); err != nil {
			w.err = err
		}
	}

	if r.Type == options.TypeArmor {
		w.attachable(r)
	}

	if w.err == nil {
		w.language(item.LanguageKey(r), r.Name)
	}
	if w.err != nil {
		return nil, w.err
	}

	param := filepath.Join(ctx.Root, options.ItemFileName(r.Slug))
	if err := options.Save(param, opts); err != nil {
		return nil, err
	}
	w.report.ParamFile = param
	logger.Debug("Saved item options", "path", param)

	return w.report, nil
}

// attachable writes the armor attachable and its placeholder model textures.
func (w *writer) attachable(r options.ResolvedItem) {
	doc := attachable.Generate(attachable.FromItem(r))
	w.document(filepath.Join(w.ctx.ResourcePack, "attachables", r.Slug+".json"), doc)

	textures := doc.Attachable.Description.Textures
	if tex := textures["default"]; strings.Contains(tex, "/") {
		w.asset(pack.ArmorModelAsset(attachable.ModelAsset(tex)), w.resourcePath(tex+".png"))
	}
	if tex := textures["enchanted"]; strings.Contains(tex, "/") {
		w.asset(pack.EnchantedArmorAsset, w.resourcePath(tex+".png"))
	}
}

// writer carries the first error through a sequence of writes so each flow
// reads top to bottom.
type writer struct {
	ctx       *workspace.Context
	logger    *log.Logger
	overwrite bool
	report    *Report
	err       error
}

func (w *writer) document(path string, doc any) {
	if w.err != nil {
		return
	}
	replaced, err := pack.WriteDocument(path, doc, w.overwrite)
	if err != nil {
		w.err = err
		return
	}
	if replaced {
		w.logger.Warn("Overwrote existing file", "path", w.rel(path))
	}
	w.report.Files = append(w.report.Files, w.rel(path))
}

func (w *writer) asset(name, dst string) {
	if w.err != nil {
		return
	}
	copied, err := pack.CopyAsset(name, dst)
	if err != nil {
		w.err = err
		return
	}
	if copied {
		w.report.Files = append(w.report.Files, w.rel(dst))
	}
}

func (w *writer) language(key, value string) {
	err := pack.AddLanguageEntry(w.ctx.ResourcePack, key, value)
	switch {
	case errors.Is(err, pack.ErrAlreadyExists):
		w.logger.Debug("Language entry already present", "key", key)
	case err != nil:
		w.err = err
	}
}

func (w *writer) resourcePath(slashPath string) string {
	return filepath.Join(w.ctx.ResourcePack, filepath.FromSlash(slashPath))
}

func (w *writer) rel(path string) string {
	if rel, err := filepath.Rel(w.ctx.Root, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return path
}

package pack

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/manifest"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/options"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/schema"
)

// Pack folder suffixes.
const (
	BehaviorSuffix = "_BehaviorPack"
	ResourceSuffix = "_ResourcePack"
	IconFile       = "pack_icon.png"
)

var (
	behaviorDirs = []string{"items", "recipes"}
	resourceDirs = []string{"items", "attachables", "texts", "textures/items", "textures/models/armor"}

	// resourceSeeds maps embedded templates to their place in a new resource
	// pack. Files ending in .tmpl are rendered, the rest copied verbatim.
	resourceSeeds = []struct{ template, target string }{
		{"languages.json", "texts/languages.json"},
		{"language_names.json", "texts/language_names.json"},
		{"item_texture.json.tmpl", ItemTextureFile},
	}
)

// Project is the result of CreateProject. Pack fields are empty when the
// project kind does not include that pack.
type Project struct {
	Root         string
	BehaviorPack string
	ResourcePack string
	Behavior     *manifest.Document
	Resource     *manifest.Document
	// Files lists every file written, relative to Root.
	Files    []string
	Warnings []string
}

type seedData struct {
	Name string
}

// PackDirs returns the folders CreateProject uses for p under root.
func PackDirs(root string, p options.ResolvedProject) (behavior, resource string) {
	return filepath.Join(root, p.FolderName+BehaviorSuffix), filepath.Join(root, p.FolderName+ResourceSuffix)
}

// CreateProject lays out the packs p asks for under root. The resource pack
// is generated first so the behavior pack can declare it as a dependency.
// An existing pack folder with a manifest fails with ErrAlreadyExists before
// anything is written.
func CreateProject(root string, p options.ResolvedProject) (*Project, error) {
	bpDir, rpDir := PackDirs(root, p)
	result := &Project{Root: root}

	if p.Kind.HasBehaviorPack() {
		result.BehaviorPack = bpDir
	}
	if p.Kind.HasResourcePack() {
		result.ResourcePack = rpDir
	}
	for _, dir := range []string{result.BehaviorPack, result.ResourcePack} {
		if dir == "" {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, manifest.FileName)); err == nil {
			return nil, fmt.Errorf("pack %s: %w", filepath.Base(dir), ErrAlreadyExists)
		}
	}

	var deps []manifest.Dependency
	if result.ResourcePack != "" {
		doc := manifest.Generate(manifest.Options{
			Name:             p.Name,
			Description:      p.ResourceDescription,
			Kind:             manifest.KindResource,
			Version:          &p.Version,
			MinEngineVersion: &p.MinEngineVersion,
		})
		if err := result.writePack(rpDir, doc, ResourceIconAsset, resourceDirs, p.PreCreateFiles); err != nil {
			return nil, err
		}
		if p.PreCreateFiles {
			if err := result.seedResourcePack(rpDir, seedData{Name: p.Name}); err != nil {
				return nil, err
			}
		}
		result.Resource = doc
		deps = append(deps, doc.AsDependency())
	}

	if result.BehaviorPack != "" {
		doc := manifest.Generate(manifest.Options{
			Name:             p.Name,
			Description:      p.BehaviorDescription,
			Kind:             manifest.KindBehavior,
			Version:          &p.Version,
			MinEngineVersion: &p.MinEngineVersion,
			Dependencies:     deps,
		})
		if err := result.writePack(bpDir, doc, BehaviorIconAsset, behaviorDirs, p.PreCreateFiles); err != nil {
			return nil, err
		}
		result.Behavior = doc
	}

	return result, nil
}

// writePack creates dir with its manifest, icon and, when requested, the
// empty content folders.
func (r *Project) writePack(dir string, doc *manifest.Document, icon string, dirs []string, preCreate bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating pack directory: %w", err)
	}
	if preCreate {
		for _, d := range dirs {
			if err := os.MkdirAll(filepath.Join(dir, filepath.FromSlash(d)), 0755); err != nil {
				return fmt.Errorf("creating %s: %w", d, err)
			}
		}
	}

	// Schema issues are reported as warnings.
	if res, err := schema.ValidateDocument(schema.KindManifest, doc); err != nil {
		r.Warnings = append(r.Warnings, fmt.Sprintf("could not validate manifest: %v", err))
	} else if !res.Valid {
		for _, issue := range res.Issues {
			r.Warnings = append(r.Warnings, issue.String())
		}
	}

	manifestPath := filepath.Join(dir, manifest.FileName)
	if _, err := WriteDocument(manifestPath, doc, false); err != nil {
		return err
	}
	r.addFile(manifestPath)

	iconPath := filepath.Join(dir, IconFile)
	copied, err := CopyAsset(icon, iconPath)
	if err != nil {
		return err
	}
	if copied {
		r.addFile(iconPath)
	}
	return nil
}

// seedResourcePack writes the shared resource files that do not exist yet.
func (r *Project) seedResourcePack(dir string, data seedData) error {
	lang := filepath.Join(dir, filepath.FromSlash(LanguageFile))
	if err := createIfMissing(lang, nil); err != nil {
		return err
	}
	r.addFile(lang)

	for _, s := range resourceSeeds {
		content, err := renderSeed(s.template, data)
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(s.target))
		if err := createIfMissing(target, content); err != nil {
			return err
		}
		r.addFile(target)
	}
	return nil
}

func (r *Project) addFile(path string) {
	if rel, err := filepath.Rel(r.Root, path); err == nil {
		path = rel
	}
	r.Files = append(r.Files, filepath.ToSlash(path))
}

// seedFuncs quote values for templates that render JSON.
var seedFuncs = template.FuncMap{
	"json": func(v any) (string, error) {
		data, err := encode(v)
		return strings.TrimSpace(string(data)), err
	},
}

func renderSeed(name string, data seedData) ([]byte, error) {
	raw, err := fs.ReadFile(packFS, path.Join("templates", name))
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}
	if !strings.HasSuffix(name, ".tmpl") {
		return raw, nil
	}

	tmpl, err := template.New(name).Funcs(seedFuncs).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func createIfMissing(path string, content []byte) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

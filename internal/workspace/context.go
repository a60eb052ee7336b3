package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/manifest"
)

// ErrNotFound is returned when a required pack cannot be located.
var ErrNotFound = errors.New("pack not found")

// Pack is a pack directory discovered under a project root.
type Pack struct {
	Dir          string
	ManifestPath string
	Kind         manifest.Kind
	Manifest     *manifest.Document
}

// Name returns the pack's header name, falling back to its folder name.
func (p Pack) Name() string {
	if p.Manifest != nil && p.Manifest.Header.Name != "" {
		return p.Manifest.Header.Name
	}
	return filepath.Base(p.Dir)
}

// Context is everything a command needs to know about the project it runs in.
type Context struct {
	Root string
	// Packs lists every parseable manifest found, in path order.
	Packs        []Pack
	BehaviorPack string
	ResourcePack string
	Config       ProjectConfig
	// Warnings collects manifests that were found but could not be read.
	Warnings []string
}

// Resolve discovers packs under root and loads the project config.
//
// A manifest.json directly in root wins. Otherwise every manifest.json below
// root is considered, and the first behavior and resource pack in path
// order are selected. Finding no pack is not an error; commands that need a
// pack call Require.
func Resolve(root string) (*Context, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("reading project root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project root %s is not a directory", abs)
	}

	cfg, err := LoadProject(abs)
	if err != nil {
		return nil, err
	}

	ctx := &Context{Root: abs, Config: *cfg}

	paths, err := findManifests(abs)
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		doc, err := manifest.Read(p)
		if err != nil {
			ctx.Warnings = append(ctx.Warnings, err.Error())
			continue
		}
		kind, ok := doc.Kind()
		if !ok {
			continue
		}
		pack := Pack{Dir: filepath.Dir(p), ManifestPath: p, Kind: kind, Manifest: doc}
		ctx.Packs = append(ctx.Packs, pack)
		switch kind {
		case manifest.KindBehavior:
			if ctx.BehaviorPack == "" {
				ctx.BehaviorPack = pack.Dir
			}
		case manifest.KindResource:
			if ctx.ResourcePack == "" {
				ctx.ResourcePack = pack.Dir
			}
		}
	}
	return ctx, nil
}

// Require reports ErrNotFound unless the requested packs were discovered.
func (c *Context) Require(behavior, resource bool) error {
	var missing []string
	if behavior && c.BehaviorPack == "" {
		missing = append(missing, "behavior pack")
	}
	if resource && c.ResourcePack == "" {
		missing = append(missing, "resource pack")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s under %s: %w", strings.Join(missing, " and "), c.Root, ErrNotFound)
	}
	return nil
}

// findManifests returns manifest.json in root, or every manifest.json below
// root when root has none. Hidden directories are skipped.
func findManifests(root string) ([]string, error) {
	top := filepath.Join(root, manifest.FileName)
	if _, err := os.Stat(top); err == nil {
		return []string{top}, nil
	}

	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible entries
		}
		if d.IsDir() {
			if path != root && (strings.HasPrefix(d.Name(), ".") || d.Name() == "node_modules") {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() == manifest.FileName {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("searching for manifests: %w", err)
	}
	sort.Strings(found)
	return found, nil
}

// Package deploy installs a project's packs into the game directory.
package deploy

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/branding"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/platform"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/workspace"
)

// ErrOverlap is returned when a pack folder and its install target are
// nested inside one another.
var ErrOverlap = errors.New("pack and install target overlap")

// excludedNames are never copied into the game directory.
var excludedNames = map[string]bool{
	"node_modules": true,
	"Thumbs.db":    true,
}

// Options select where and how packs are installed.
type Options struct {
	GameDir string
	// Development installs into development_*_packs, which the game reloads
	// on every world load.
	Development bool
	// Link creates directory links instead of copies.
	Link bool
}

// Result describes one installed pack.
type Result struct {
	Pack   workspace.Pack
	Target string
	Linked bool
	// Copied is set when a link was requested but the platform fell back to a
	// copy.
	Copied bool
	// InPlace is set when the pack already lives at its target. Nothing is
	// removed or written for it.
	InPlace bool
}

// Install copies or links every discovered pack into the game directory,
// replacing any previous installation of the same folder name.
func Install(ctx *workspace.Context, opts Options) ([]Result, error) {
	if len(ctx.Packs) == 0 {
		return nil, fmt.Errorf("no packs under %s: %w", ctx.Root, workspace.ErrNotFound)
	}
	if opts.GameDir == "" {
		return nil, workspace.ErrGameDirUnknown
	}

	var results []Result
	for _, p := range ctx.Packs {
		parent := workspace.TargetDir(opts.GameDir, p.Kind, opts.Development)
		target := filepath.Join(parent, filepath.Base(p.Dir))

		if err := os.MkdirAll(parent, 0755); err != nil {
			return results, fmt.Errorf("creating %s: %w", parent, err)
		}

		same, err := overlaps(p.Dir, target)
		if err != nil {
			return results, err
		}
		if same == samePath {
			results = append(results, Result{Pack: p, Target: target, InPlace: true})
			continue
		}
		if same == nested {
			return results, fmt.Errorf("%s and %s contain each other: %w", p.Dir, target, ErrOverlap)
		}

		if err := platform.RemoveLink(target); err != nil {
			return results, fmt.Errorf("removing existing installation at %s: %w", target, err)
		}

		res := Result{Pack: p, Target: target}
		if opts.Link {
			copied, err := platform.CreateLink(p.Dir, target)
			if err != nil {
				return results, fmt.Errorf("linking %s to %s: %w", p.Dir, target, err)
			}
			res.Linked = !copied
			res.Copied = copied
		} else {
			if err := platform.CopyDir(p.Dir, target, shouldExclude); err != nil {
				return results, fmt.Errorf("copying %s to %s: %w", p.Dir, target, err)
			}
		}
		results = append(results, res)
	}
	return results, nil
}

type overlap int

const (
	disjoint overlap = iota
	samePath
	nested
)

// overlaps compares a pack folder with its install target. The target itself
// is not followed, so a link left by an earlier install never counts as the
// pack.
func overlaps(src, target string) (overlap, error) {
	realSrc, err := filepath.EvalSymlinks(src)
	if err != nil {
		return disjoint, fmt.Errorf("resolving %s: %w", src, err)
	}
	realParent, err := filepath.EvalSymlinks(filepath.Dir(target))
	if err != nil {
		return disjoint, fmt.Errorf("resolving %s: %w", filepath.Dir(target), err)
	}
	realTarget := filepath.Join(realParent, filepath.Base(target))

	switch {
	case realSrc == realTarget:
		return samePath, nil
	case within(realSrc, realTarget), within(realTarget, realSrc):
		return nested, nil
	}
	return disjoint, nil
}

// within reports whether path lies below dir.
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// shouldExclude returns true for hidden entries, saved parameter files and
// excludedNames.
func shouldExclude(name string) bool {
	return excludedNames[name] ||
		strings.HasPrefix(name, ".") ||
		strings.HasSuffix(name, branding.ParamFileExt())
}

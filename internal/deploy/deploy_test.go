package deploy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/options"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/pack"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/platform"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func project(t *testing.T) *workspace.Context {
	t.Helper()
	root := t.TempDir()
	p, err := options.ResolveProject(options.Project{Name: "Gems"}, "")
	require.NoError(t, err)
	_, err = pack.CreateProject(root, p)
	require.NoError(t, err)
	ctx, err := workspace.Resolve(root)
	require.NoError(t, err)
	return ctx
}

func TestInstallDevelopment(t *testing.T) {
	ctx := project(t)
	game := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(ctx.BehaviorPack, ".DS_Store"), nil, 0644))

	results, err := Install(ctx, Options{GameDir: game, Development: true})
	require.NoError(t, err)
	require.Len(t, results, 2)

	bp := filepath.Join(game, "development_behavior_packs", "Gems_BehaviorPack")
	rp := filepath.Join(game, "development_resource_packs", "Gems_ResourcePack")
	assert.FileExists(t, filepath.Join(bp, "manifest.json"))
	assert.FileExists(t, filepath.Join(rp, "texts", "en_US.lang"))
	assert.NoFileExists(t, filepath.Join(bp, ".DS_Store"))
	assert.False(t, results[0].Linked)
}

func TestInstallReplacesPrevious(t *testing.T) {
	ctx := project(t)
	game := t.TempDir()

	_, err := Install(ctx, Options{GameDir: game})
	require.NoError(t, err)

	stale := filepath.Join(game, "behavior_packs", "Gems_BehaviorPack", "stale.json")
	require.NoError(t, os.WriteFile(stale, []byte("{}"), 0644))

	_, err = Install(ctx, Options{GameDir: game})
	require.NoError(t, err)
	assert.NoFileExists(t, stale)
	assert.FileExists(t, filepath.Join(game, "behavior_packs", "Gems_BehaviorPack", "manifest.json"))
}

func TestInstallLink(t *testing.T) {
	ctx := project(t)
	game := t.TempDir()

	results, err := Install(ctx, Options{GameDir: game, Development: true, Link: true})
	require.NoError(t, err)

	for _, r := range results {
		assert.True(t, platform.IsLink(r.Target), "%s is not a link", r.Target)
		target, err := platform.ReadLinkTarget(r.Target)
		require.NoError(t, err)
		assert.Equal(t, r.Pack.Dir, target)
	}
}

func TestInstallWithoutPacks(t *testing.T) {
	ctx, err := workspace.Resolve(t.TempDir())
	require.NoError(t, err)

	_, err = Install(ctx, Options{GameDir: t.TempDir()})
	assert.ErrorIs(t, err, workspace.ErrNotFound)
}

func TestInstallWithoutGameDir(t *testing.T) {
	ctx := project(t)
	_, err := Install(ctx, Options{})
	assert.ErrorIs(t, err, workspace.ErrGameDirUnknown)
}

func TestShouldExclude(t *testing.T) {
	assert.True(t, shouldExclude(".git"))
	assert.True(t, shouldExclude("item_ruby.mbu"))
	assert.True(t, shouldExclude("node_modules"))
	assert.False(t, shouldExclude("manifest.json"))
}

func TestInstallLeavesPackAlreadyInGameDir(t *testing.T) {
	game := t.TempDir()
	root := filepath.Join(game, "development_behavior_packs")
	require.NoError(t, os.MkdirAll(root, 0755))

	p, err := options.ResolveProject(options.Project{Name: "Gems"}, "")
	require.NoError(t, err)
	_, err = pack.CreateProject(root, p)
	require.NoError(t, err)
	ctx, err := workspace.Resolve(root)
	require.NoError(t, err)

	results, err := Install(ctx, Options{GameDir: game, Development: true})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.True(t, results[0].InPlace)
	assert.FileExists(t, filepath.Join(ctx.BehaviorPack, "manifest.json"))
	assert.False(t, results[1].InPlace)
	assert.FileExists(t, filepath.Join(game, "development_resource_packs", "Gems_ResourcePack", "manifest.json"))
}

func TestInstallRejectsNestedTarget(t *testing.T) {
	ctx := project(t)
	game := filepath.Join(ctx.BehaviorPack, "game")

	_, err := Install(ctx, Options{GameDir: game, Development: true})
	assert.ErrorIs(t, err, ErrOverlap)
	assert.FileExists(t, filepath.Join(ctx.BehaviorPack, "manifest.json"))
}

func TestInstallRelinkIsNotInPlace(t *testing.T) {
	ctx := project(t)
	game := t.TempDir()

	_, err := Install(ctx, Options{GameDir: game, Development: true, Link: true})
	require.NoError(t, err)
	results, err := Install(ctx, Options{GameDir: game, Development: true, Link: true})
	require.NoError(t, err)
	for _, r := range results {
		assert.False(t, r.InPlace)
	}
	assert.FileExists(t, filepath.Join(ctx.BehaviorPack, "manifest.json"))
}

package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/branding"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/config"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/manifest"
)

// ErrGameDirUnknown is returned when no game directory can be determined.
var ErrGameDirUnknown = errors.New("game directory unknown")

const uwpPackage = "Microsoft.MinecraftUWP_8wekyb3d8bbwe"

// Pack folders inside the game directory.
const (
	DevelopmentBehaviorPacks = "development_behavior_packs"
	DevelopmentResourcePacks = "development_resource_packs"
	DevelopmentSkinPacks     = "development_skin_packs"
	BehaviorPacks            = "behavior_packs"
	ResourcePacks            = "resource_packs"
)

// GameDir returns the com.mojang directory packs are installed into.
// It checks the MBU_GAME_DIR environment variable first, then the game_dir
// config key, then the Windows store location under %LOCALAPPDATA%.
func GameDir() (string, error) {
	if v := os.Getenv(branding.EnvVar("GAME_DIR")); v != "" {
		return v, nil
	}
	if v := config.Get(config.KeyGameDir); v != "" {
		return v, nil
	}
	if runtime.GOOS == "windows" {
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			return filepath.Join(local, "Packages", uwpPackage, "LocalState", "games", "com.mojang"), nil
		}
	}
	return "", fmt.Errorf("set %s or the %s config key: %w",
		branding.EnvVar("GAME_DIR"), config.KeyGameDir, ErrGameDirUnknown)
}

// TargetDir returns the game folder a pack of the given kind is copied into.
// Development folders are reloaded by the game on every world load.
func TargetDir(gameDir string, kind manifest.Kind, development bool) string {
	var sub string
	switch kind {
	case manifest.KindBehavior:
		sub = BehaviorPacks
		if development {
			sub = DevelopmentBehaviorPacks
		}
	case manifest.KindResource:
		sub = ResourcePacks
		if development {
			sub = DevelopmentResourcePacks
		}
	}
	return filepath.Join(gameDir, sub)
}

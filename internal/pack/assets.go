package pack

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

//go:embed templates assets
var packFS embed.FS

// Embedded placeholder images, named without the .png extension.
const (
	BehaviorIconAsset   = "logos/behavior_pack"
	ResourceIconAsset   = "logos/resource_pack"
	EnchantedArmorAsset = "models/armor/enchanted_armor"
)

// ItemAsset names the placeholder item texture for a texture kind such as
// "food" or "armor_helmet".
func ItemAsset(kind string) string {
	return path.Join("items", kind)
}

// ArmorModelAsset names a placeholder armor model texture such as "armor_1".
func ArmorModelAsset(name string) string {
	return path.Join("models", "armor", name)
}

// CopyAsset writes the embedded asset name to dst unless dst already exists.
// copied reports whether a file was written.
func CopyAsset(name, dst string) (copied bool, err error) {
	if _, err := os.Stat(dst); err == nil {
		return false, nil
	}
	data, err := fs.ReadFile(packFS, assetPath(name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("asset %q not found: %w", name, err)
	}
	if err != nil {
		return false, fmt.Errorf("reading asset %s: %w", name, err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return false, fmt.Errorf("creating directory for %s: %w", dst, err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return false, fmt.Errorf("writing %s: %w", dst, err)
	}
	return true, nil
}

func assetPath(name string) string {
	return path.Join("assets", name+".png")
}

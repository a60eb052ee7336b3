package pack

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items", "ruby.json")

	replaced, err := WriteDocument(path, map[string]any{"a": "<b>"}, false)
	if err != nil {
		t.Fatalf("WriteDocument() error: %v", err)
	}
	if replaced {
		t.Error("replaced = true on first write")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{\n  \"a\": \"<b>\"\n}\n" {
		t.Errorf("content = %q", data)
	}
}

func TestWriteDocumentRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ruby.json")
	if err := os.WriteFile(path, []byte("original"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := WriteDocument(path, map[string]int{"a": 1}, false)
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("WriteDocument() error = %v, want ErrAlreadyExists", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "original" {
		t.Errorf("file was modified: %q", data)
	}

	replaced, err := WriteDocument(path, map[string]int{"a": 1}, true)
	if err != nil {
		t.Fatalf("WriteDocument(overwrite) error: %v", err)
	}
	if !replaced {
		t.Error("replaced = false on overwrite")
	}
}

func TestAddLanguageEntry(t *testing.T) {
	rp := t.TempDir()

	if err := AddLanguageEntry(rp, "item.gems:ruby.name", "Ruby"); err != nil {
		t.Fatalf("AddLanguageEntry() error: %v", err)
	}
	if err := AddLanguageEntry(rp, "item.gems:opal.name", "Opal"); err != nil {
		t.Fatalf("AddLanguageEntry() error: %v", err)
	}
	err := AddLanguageEntry(rp, "item.gems:ruby.name", "Other")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("duplicate AddLanguageEntry() error = %v, want ErrAlreadyExists", err)
	}

	data, err := os.ReadFile(filepath.Join(rp, "texts", "en_US.lang"))
	if err != nil {
		t.Fatal(err)
	}
	want := "item.gems:ruby.name=Ruby\nitem.gems:opal.name=Opal\n"
	if string(data) != want {
		t.Errorf("en_US.lang = %q, want %q", data, want)
	}
}

func TestAddLanguageEntryRejectsLineBreaks(t *testing.T) {
	rp := t.TempDir()

	bad := [][2]string{
		{"item.gems:ruby.name", "Ruby\nitem.gems:opal.name=Hijacked"},
		{"item.gems:ruby.name", "Ruby\r"},
		{"item.gems:ruby\n.name", "Ruby"},
		{"item.gems=ruby.name", "Ruby"},
	}
	for _, kv := range bad {
		if err := AddLanguageEntry(rp, kv[0], kv[1]); err == nil {
			t.Errorf("AddLanguageEntry(%q, %q) succeeded", kv[0], kv[1])
		}
	}
	if _, err := os.Stat(filepath.Join(rp, "texts", "en_US.lang")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("rejected entries created the language file: %v", err)
	}
}

func TestAddLanguageEntryFixesMissingNewline(t *testing.T) {
	rp := t.TempDir()
	path := filepath.Join(rp, "texts", "en_US.lang")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("a=b"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := AddLanguageEntry(rp, "c", "d"); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "a=b\nc=d\n" {
		t.Errorf("en_US.lang = %q", data)
	}
}

func TestAddItemTexture(t *testing.T) {
	rp := t.TempDir()

	if err := AddItemTexture(rp, "ruby"); err != nil {
		t.Fatalf("AddItemTexture() error: %v", err)
	}
	if err := AddItemTexture(rp, "opal"); err != nil {
		t.Fatalf("AddItemTexture() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(rp, "textures", "item_texture.json"))
	if err != nil {
		t.Fatal(err)
	}
	var atlas struct {
		ResourcePackName string                       `json:"resource_pack_name"`
		TextureName      string                       `json:"texture_name"`
		TextureData      map[string]map[string]string `json:"texture_data"`
	}
	if err := json.Unmarshal(data, &atlas); err != nil {
		t.Fatalf("parsing atlas: %v", err)
	}
	if atlas.ResourcePackName != "Texture pack" {
		t.Errorf("resource_pack_name = %q", atlas.ResourcePackName)
	}
	if atlas.TextureName != "atlas.items" {
		t.Errorf("texture_name = %q", atlas.TextureName)
	}
	if got := atlas.TextureData["ruby"]["textures"]; got != "textures/items/ruby" {
		t.Errorf("ruby texture = %q", got)
	}
	if len(atlas.TextureData) != 2 {
		t.Errorf("texture_data has %d entries, want 2", len(atlas.TextureData))
	}
}

func TestCopyAsset(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "textures", "items", "ruby.png")

	copied, err := CopyAsset(ItemAsset("food"), dst)
	if err != nil {
		t.Fatalf("CopyAsset() error: %v", err)
	}
	if !copied {
		t.Error("copied = false for missing destination")
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Error("copied asset is not a PNG")
	}

	copied, err = CopyAsset(ItemAsset("weapon"), dst)
	if err != nil {
		t.Fatalf("second CopyAsset() error: %v", err)
	}
	if copied {
		t.Error("existing destination was replaced")
	}

	if _, err := CopyAsset("items/unknown", filepath.Join(t.TempDir(), "x.png")); err == nil {
		t.Error("CopyAsset(unknown) succeeded")
	}
}

func TestEmbeddedAssets(t *testing.T) {
	for _, name := range []string{
		BehaviorIconAsset, ResourceIconAsset, EnchantedArmorAsset,
		ArmorModelAsset("armor_1"), ArmorModelAsset("armor_2"),
		ItemAsset("custom"), ItemAsset("digger"), ItemAsset("food"), ItemAsset("fuel"),
		ItemAsset("throwable"), ItemAsset("weapon"),
		ItemAsset("armor_helmet"), ItemAsset("armor_chestplate"), ItemAsset("armor_leggings"),
		ItemAsset("armor_boots"), ItemAsset("armor_custom"),
	} {
		if _, err := fs.Stat(packFS, assetPath(name)); err != nil {
			t.Errorf("asset %s is not embedded: %v", name, err)
		}
	}
}

package pack

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrAlreadyExists is returned when a write would replace existing content.
var ErrAlreadyExists = errors.New("already exists")

// Shared resource pack files.
const (
	LanguageFile    = "texts/en_US.lang"
	ItemTextureFile = "textures/item_texture.json"
)

// WriteDocument encodes doc as two-space indented JSON at path. An existing
// file is only replaced when overwrite is set; replaced reports whether that
// happened.
func WriteDocument(path string, doc any, overwrite bool) (replaced bool, err error) {
	if _, err := os.Stat(path); err == nil {
		if !overwrite {
			return false, fmt.Errorf("%s: %w", path, ErrAlreadyExists)
		}
		replaced = true
	}

	data, err := encode(doc)
	if err != nil {
		return false, fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return replaced, nil
}

// encode renders v the way every generated file is laid out.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// AddLanguageEntry appends key=value to the resource pack's en_US.lang. A
// line already defining key is left alone and ErrAlreadyExists is returned.
func AddLanguageEntry(rpDir, key, value string) error {
	if strings.ContainsAny(key+value, "\r\n") || strings.Contains(key, "=") {
		return fmt.Errorf("language entry %q: key and value must be one line and the key must not contain '='", key)
	}
	path := filepath.Join(rpDir, filepath.FromSlash(LanguageFile))

	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("reading language file: %w", err)
	}

	sc := bufio.NewScanner(bytes.NewReader(existing))
	for sc.Scan() {
		if strings.HasPrefix(strings.TrimSpace(sc.Text()), key+"=") {
			return fmt.Errorf("language entry %s: %w", key, ErrAlreadyExists)
		}
	}

	var b strings.Builder
	if len(existing) > 0 && !bytes.HasSuffix(existing, []byte("\n")) {
		b.WriteString("\n")
	}
	b.WriteString(key + "=" + value + "\n")

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating texts directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening language file: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("writing language file: %w", err)
	}
	return nil
}

// AddItemTexture registers textures/items/<slug> under slug in the item
// texture atlas, creating the atlas when it is missing. Other keys of an
// existing atlas are preserved.
func AddItemTexture(rpDir, slug string) error {
	path := filepath.Join(rpDir, filepath.FromSlash(ItemTextureFile))

	atlas := map[string]any{
		"resource_pack_name": "Texture pack",
		"texture_name":       "atlas.items",
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &atlas); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("reading item texture atlas: %w", err)
	}

	textures, _ := atlas["texture_data"].(map[string]any)
	if textures == nil {
		textures = map[string]any{}
	}
	textures[slug] = map[string]string{"textures": "textures/items/" + slug}
	atlas["texture_data"] = textures

	if _, err := WriteDocument(path, atlas, true); err != nil {
		return err
	}
	return nil
}

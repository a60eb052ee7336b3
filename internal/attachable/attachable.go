// Package attachable generates the resource pack attachable that renders an
// armor item on the player model.
package attachable

import (
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/formatversion"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/identifier"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/options"
)

// DefaultNamespace is used when the caller supplies none.
const DefaultNamespace = "my_attachable"

// Options describe one attachable. Geometry and Script are only read for
// custom armor; fixed slots always use their built-in values.
type Options struct {
	Name             string
	Namespace        string
	ArmorType        options.ArmorType
	FormatVersion    string
	Texture          string
	EnchantedTexture string
	Geometry         string
	Script           string
	RenderController string
}

// Document is the attachables/<slug>.json layout.
type Document struct {
	FormatVersion string `json:"format_version"`
	Attachable    Body   `json:"minecraft:attachable"`
}

// Body is the "minecraft:attachable" object.
type Body struct {
	Description Description `json:"description"`
}

// Description holds everything the renderer needs.
type Description struct {
	Identifier        string            `json:"identifier"`
	Materials         map[string]string `json:"materials"`
	Textures          map[string]string `json:"textures"`
	Geometry          map[string]string `json:"geometry"`
	Scripts           map[string]string `json:"scripts,omitempty"`
	RenderControllers []string          `json:"render_controllers"`
}

// slot holds the fixed geometry and the layer variable hidden while the
// armor piece is worn.
type slot struct {
	geometry string
	script   string
}

var slots = map[options.ArmorType]slot{
	options.ArmorBoots:      {"geometry.humanoid.armor.boots", "variable.boot_layer_visible = 0.0;"},
	options.ArmorChestplate: {"geometry.humanoid.armor.chestplate", "variable.chestplate_layer_visible = 0.0;"},
	options.ArmorHelmet:     {"geometry.humanoid.armor.helmet", "variable.helmet_layer_visible = 0.0;"},
	options.ArmorLeggings:   {"geometry.humanoid.armor.leggings", "variable.leg_layer_visible = 0.0;"},
}

// Generate builds the attachable document.
func Generate(o Options) *Document {
	version := o.FormatVersion
	if version == "" {
		version = formatversion.Stable
	}
	armorType := o.ArmorType
	if armorType == "" {
		armorType = options.ArmorChestplate
	}
	controller := o.RenderController
	if controller == "" {
		controller = "controller.render.armor"
	}

	geometry, script := o.Geometry, o.Script
	switch armorType {
	case options.ArmorBoots, options.ArmorChestplate, options.ArmorHelmet, options.ArmorLeggings:
		s := slots[armorType]
		geometry, script = s.geometry, s.script
	case options.ArmorCustom:
	}

	textures := map[string]string{"default": o.Texture}
	if o.EnchantedTexture != "" {
		textures["enchanted"] = o.EnchantedTexture
	}
	var scripts map[string]string
	if script != "" {
		scripts = map[string]string{"parent_setup": script}
	}

	return &Document{
		FormatVersion: version,
		Attachable: Body{
			Description: Description{
				Identifier:        identifier.MakeID(o.Name, o.Namespace, DefaultNamespace),
				Materials:         map[string]string{"default": "armor", "enchanted": "armor_enchanted"},
				Textures:          textures,
				Geometry:          map[string]string{"default": geometry},
				Scripts:           scripts,
				RenderControllers: []string{controller},
			},
		},
	}
}

// FromItem derives attachable options from a resolved armor item. The
// attachable shares the item identifier so the game links the two.
func FromItem(r options.ResolvedItem) Options {
	return Options{
		Name:             r.Name,
		Namespace:        r.Namespace,
		ArmorType:        r.Armor.Type,
		Texture:          r.Armor.Texture,
		EnchantedTexture: r.Armor.Enchanted,
		Geometry:         r.Armor.Geometry,
		Script:           r.Armor.Script,
	}
}

// ModelAsset returns the placeholder model texture to copy for an armor
// texture path: armor_2 for textures ending in "_2", armor_1 otherwise.
func ModelAsset(texture string) string {
	if len(texture) >= 2 && texture[len(texture)-2:] == "_2" {
		return "armor_2"
	}
	return "armor_1"
}

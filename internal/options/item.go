package options

import (
	"strings"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/formatversion"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/identifier"
)

// DefaultItemNamespace is used when an item has no namespace.
const DefaultItemNamespace = "my_items"

// ItemType selects the component set an item is generated with.
type ItemType string

// Supported item types.
const (
	TypeCustom    ItemType = "custom"
	TypeArmor     ItemType = "armor"
	TypeDigger    ItemType = "digger"
	TypeFood      ItemType = "food"
	TypeFuel      ItemType = "fuel"
	TypeThrowable ItemType = "throwable"
	TypeWeapon    ItemType = "weapon"
)

// ItemTypes lists every ItemType in menu order.
var ItemTypes = []ItemType{TypeCustom, TypeArmor, TypeDigger, TypeFood, TypeFuel, TypeThrowable, TypeWeapon}

// ParseItemType maps s to an ItemType. Blank input means custom.
func ParseItemType(s string) (ItemType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return TypeCustom, nil
	}
	for _, t := range ItemTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", malformed("type", "unknown item type %q", s)
}

// Experimental reports whether the type defaults to the experimental format.
func (t ItemType) Experimental() bool {
	switch t {
	case TypeArmor, TypeDigger, TypeFuel, TypeThrowable:
		return true
	case TypeCustom, TypeFood, TypeWeapon:
		return false
	}
	return false
}

// ArmorType is the equipment slot of an armor item.
type ArmorType string

// Supported armor types.
const (
	ArmorHelmet     ArmorType = "helmet"
	ArmorChestplate ArmorType = "chestplate"
	ArmorLeggings   ArmorType = "leggings"
	ArmorBoots      ArmorType = "boots"
	ArmorCustom     ArmorType = "custom"
)

// ArmorTypes lists every ArmorType in menu order.
var ArmorTypes = []ArmorType{ArmorCustom, ArmorHelmet, ArmorChestplate, ArmorLeggings, ArmorBoots}

// ParseArmorType maps s to an ArmorType. Blank input means chestplate.
func ParseArmorType(s string) (ArmorType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ArmorChestplate, nil
	}
	for _, a := range ArmorTypes {
		if string(a) == s {
			return a, nil
		}
	}
	return "", malformed("armor.type", "unknown armor type %q", s)
}

// Item is the raw option record for one item.
type Item struct {
	Name          string `yaml:"name" json:"name"`
	Namespace     string `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Type          string `yaml:"type,omitempty" json:"type,omitempty"`
	FormatVersion string `yaml:"format_version,omitempty" json:"format_version,omitempty"`

	Foil         *bool `yaml:"foil,omitempty" json:"foil,omitempty"`
	MaxStackSize *int  `yaml:"max_stack_size,omitempty" json:"max_stack_size,omitempty"`
	HandEquipped *bool `yaml:"hand_equipped,omitempty" json:"hand_equipped,omitempty"`
	UseDuration  *int  `yaml:"use_duration,omitempty" json:"use_duration,omitempty"`

	Armor     *ArmorOptions     `yaml:"armor,omitempty" json:"armor,omitempty"`
	Digger    *DiggerOptions    `yaml:"digger,omitempty" json:"digger,omitempty"`
	Food      *FoodOptions      `yaml:"food,omitempty" json:"food,omitempty"`
	Fuel      *FuelOptions      `yaml:"fuel,omitempty" json:"fuel,omitempty"`
	Throwable *ThrowableOptions `yaml:"throwable,omitempty" json:"throwable,omitempty"`
	Weapon    *WeaponOptions    `yaml:"weapon,omitempty" json:"weapon,omitempty"`

	// Overwrite is a per-invocation switch and is never saved.
	Overwrite bool `yaml:"-" json:"-"`
}

// ArmorOptions are the armor specific fields.
type ArmorOptions struct {
	Type         string  `yaml:"type,omitempty" json:"type,omitempty"`
	Protection   *int    `yaml:"protection,omitempty" json:"protection,omitempty"`
	TextureType  *string `yaml:"texture_type,omitempty" json:"texture_type,omitempty"`
	RenderOffset *string `yaml:"render_offset,omitempty" json:"render_offset,omitempty"`
	WearableSlot *string `yaml:"wearable_slot,omitempty" json:"wearable_slot,omitempty"`
	Texture      *string `yaml:"texture,omitempty" json:"texture,omitempty"`
	Enchanted    *string `yaml:"enchanted_texture,omitempty" json:"enchanted_texture,omitempty"`
	Geometry     *string `yaml:"geometry,omitempty" json:"geometry,omitempty"`
	Script       *string `yaml:"script,omitempty" json:"script,omitempty"`
}

// DestroySpeed is one block entry of a digger.
type DestroySpeed struct {
	Block string `yaml:"block" json:"block"`
	Speed int    `yaml:"speed" json:"speed"`
}

// DiggerOptions are the digger specific fields.
type DiggerOptions struct {
	UseEfficiency *bool          `yaml:"use_efficiency,omitempty" json:"use_efficiency,omitempty"`
	DestroySpeeds []DestroySpeed `yaml:"destroy_speeds,omitempty" json:"destroy_speeds,omitempty"`
	OnDig         *string        `yaml:"on_dig,omitempty" json:"on_dig,omitempty"`
}

// FoodOptions are the food specific fields.
type FoodOptions struct {
	CanAlwaysEat       *bool   `yaml:"can_always_eat,omitempty" json:"can_always_eat,omitempty"`
	Nutrition          *int    `yaml:"nutrition,omitempty" json:"nutrition,omitempty"`
	SaturationModifier *string `yaml:"saturation_modifier,omitempty" json:"saturation_modifier,omitempty"`
	UsingConvertsTo    *string `yaml:"using_converts_to,omitempty" json:"using_converts_to,omitempty"`
	UseAnimation       *string `yaml:"use_animation,omitempty" json:"use_animation,omitempty"`
}

// FuelOptions are the fuel specific fields.
type FuelOptions struct {
	Duration *float64 `yaml:"duration,omitempty" json:"duration,omitempty"`
}

// ThrowableOptions are the throwable specific fields.
type ThrowableOptions struct {
	DoSwingAnimation         *bool    `yaml:"do_swing_animation,omitempty" json:"do_swing_animation,omitempty"`
	LaunchPowerScale         *float64 `yaml:"launch_power_scale,omitempty" json:"launch_power_scale,omitempty"`
	MaxDrawDuration          *float64 `yaml:"max_draw_duration,omitempty" json:"max_draw_duration,omitempty"`
	MaxLaunchPower           *float64 `yaml:"max_launch_power,omitempty" json:"max_launch_power,omitempty"`
	MinDrawDuration          *float64 `yaml:"min_draw_duration,omitempty" json:"min_draw_duration,omitempty"`
	ScalePowerByDrawDuration *bool    `yaml:"scale_power_by_draw_duration,omitempty" json:"scale_power_by_draw_duration,omitempty"`
}

// WeaponOptions are the weapon specific fields.
type WeaponOptions struct {
	Damage          *int    `yaml:"damage,omitempty" json:"damage,omitempty"`
	OnHitBlock      *string `yaml:"on_hit_block,omitempty" json:"on_hit_block,omitempty"`
	OnHurtEntity    *string `yaml:"on_hurt_entity,omitempty" json:"on_hurt_entity,omitempty"`
	OnNotHurtEntity *string `yaml:"on_not_hurt_entity,omitempty" json:"on_not_hurt_entity,omitempty"`
}

// Defaults carries the values that come from user and project config rather
// than from the item itself.
type Defaults struct {
	Namespace           string
	StableVersion       string
	ExperimentalVersion string
}

// ItemDefaults returns the built-in item defaults.
func ItemDefaults() Defaults {
	return Defaults{
		Namespace:           DefaultItemNamespace,
		StableVersion:       formatversion.Stable,
		ExperimentalVersion: formatversion.Experimental,
	}
}

// ResolvedItem is a fully populated item record. Only the block matching Type
// carries meaningful values.
type ResolvedItem struct {
	Name          string
	Namespace     string
	Slug          string
	ID            string
	Type          ItemType
	FormatVersion string
	Legacy        bool

	Foil         bool
	MaxStackSize int
	HandEquipped bool
	UseDuration  *int

	Armor     ResolvedArmor
	Digger    ResolvedDigger
	Food      ResolvedFood
	Fuel      ResolvedFuel
	Throwable ResolvedThrowable
	Weapon    ResolvedWeapon

	Overwrite bool
}

// ResolvedArmor holds armor values with fallbacks applied.
type ResolvedArmor struct {
	Type         ArmorType
	Protection   int
	TextureType  string
	RenderOffset string
	WearableSlot string
	Texture      string
	Enchanted    string
	Geometry     string
	Script       string
}

// ResolvedDigger holds digger values with fallbacks applied.
type ResolvedDigger struct {
	UseEfficiency bool
	DestroySpeeds []DestroySpeed
	OnDig         string
}

// ResolvedFood holds food values with fallbacks applied.
type ResolvedFood struct {
	CanAlwaysEat       bool
	Nutrition          int
	SaturationModifier string
	UsingConvertsTo    string
	UseAnimation       string
}

// ResolvedFuel holds fuel values with fallbacks applied.
type ResolvedFuel struct {
	Duration float64
}

// ResolvedThrowable holds throwable values with fallbacks applied.
type ResolvedThrowable struct {
	DoSwingAnimation         bool
	LaunchPowerScale         float64
	MaxDrawDuration          float64
	MaxLaunchPower           float64
	MinDrawDuration          float64
	ScalePowerByDrawDuration bool
}

// ResolvedWeapon holds weapon values with fallbacks applied.
type ResolvedWeapon struct {
	Damage          int
	OnHitBlock      string
	OnHurtEntity    string
	OnNotHurtEntity string
}

// armorSlots maps a fixed armor slot to its render offset, wearable slot and
// default model texture.
var armorSlots = map[ArmorType]struct {
	offset, slot, texture string
}{
	ArmorHelmet:     {"helmets", "slot.armor.head", "textures/models/armor/armor_1"},
	ArmorChestplate: {"chestplates", "slot.armor.chest", "textures/models/armor/armor_1"},
	ArmorLeggings:   {"leggings", "slot.armor.legs", "textures/models/armor/armor_2"},
	ArmorBoots:      {"boots", "slot.armor.feet", "textures/models/armor/armor_1"},
	ArmorCustom:     {"chestplates", "slot.armor.chest", "textures/models/armor/armor_custom"},
}

// ResolveItem validates opts and applies every fallback.
func ResolveItem(opts Item, d Defaults) (ResolvedItem, error) {
	name := strings.TrimSpace(opts.Name)
	if name == "" {
		return ResolvedItem{}, malformed("name", "item name is required")
	}
	if err := plainName(name); err != nil {
		return ResolvedItem{}, err
	}
	slug := identifier.NormalizeSlug(name)
	if slug == "" {
		return ResolvedItem{}, malformed("name", "%q has no usable characters", name)
	}

	typ, err := ParseItemType(opts.Type)
	if err != nil {
		return ResolvedItem{}, err
	}

	namespace := opts.Namespace
	if namespace == "" {
		namespace = d.Namespace
	}
	if namespace == "" {
		namespace = DefaultItemNamespace
	}

	version := opts.FormatVersion
	if version == "" {
		version = d.StableVersion
		if typ.Experimental() {
			version = d.ExperimentalVersion
		}
	}
	legacy, err := formatversion.IsLegacy(version)
	if err != nil {
		return ResolvedItem{}, malformed("format_version", "%v", err)
	}

	r := ResolvedItem{
		Name:          name,
		Namespace:     namespace,
		Slug:          slug,
		ID:            namespace + ":" + slug,
		Type:          typ,
		FormatVersion: version,
		Legacy:        legacy,
		Foil:          valueOr(opts.Foil, false),
		Overwrite:     opts.Overwrite,
		UseDuration:   opts.UseDuration,
	}

	stack, hand := 64, false
	switch typ {
	case TypeCustom:
	case TypeArmor:
		stack = 1
		armor, err := resolveArmor(opts.Armor)
		if err != nil {
			return ResolvedItem{}, err
		}
		r.Armor = armor
	case TypeDigger:
		stack, hand = 1, true
		o := valueOr(opts.Digger, DiggerOptions{})
		r.Digger = ResolvedDigger{
			UseEfficiency: valueOr(o.UseEfficiency, true),
			DestroySpeeds: o.DestroySpeeds,
			OnDig:         valueOr(o.OnDig, ""),
		}
	case TypeFood:
		o := valueOr(opts.Food, FoodOptions{})
		r.Food = ResolvedFood{
			CanAlwaysEat:       valueOr(o.CanAlwaysEat, false),
			Nutrition:          valueOr(o.Nutrition, 4),
			SaturationModifier: valueOr(o.SaturationModifier, "low"),
			UsingConvertsTo:    valueOr(o.UsingConvertsTo, ""),
			UseAnimation:       valueOr(o.UseAnimation, "eat"),
		}
		if r.UseDuration == nil {
			r.UseDuration = Ptr(32)
		}
	case TypeFuel:
		o := valueOr(opts.Fuel, FuelOptions{})
		r.Fuel = ResolvedFuel{Duration: valueOr(o.Duration, 3.0)}
	case TypeThrowable:
		stack, hand = 16, true
		o := valueOr(opts.Throwable, ThrowableOptions{})
		r.Throwable = ResolvedThrowable{
			DoSwingAnimation:         valueOr(o.DoSwingAnimation, true),
			LaunchPowerScale:         valueOr(o.LaunchPowerScale, 1.0),
			MaxDrawDuration:          valueOr(o.MaxDrawDuration, 0.0),
			MaxLaunchPower:           valueOr(o.MaxLaunchPower, 1.0),
			MinDrawDuration:          valueOr(o.MinDrawDuration, 0.0),
			ScalePowerByDrawDuration: valueOr(o.ScalePowerByDrawDuration, true),
		}
		if r.UseDuration == nil {
			r.UseDuration = Ptr(3600)
		}
	case TypeWeapon:
		stack, hand = 1, true
		o := valueOr(opts.Weapon, WeaponOptions{})
		r.Weapon = ResolvedWeapon{
			Damage:          valueOr(o.Damage, 1),
			OnHitBlock:      valueOr(o.OnHitBlock, ""),
			OnHurtEntity:    valueOr(o.OnHurtEntity, ""),
			OnNotHurtEntity: valueOr(o.OnNotHurtEntity, ""),
		}
	}
	r.MaxStackSize = valueOr(opts.MaxStackSize, stack)
	r.HandEquipped = valueOr(opts.HandEquipped, hand)

	if r.MaxStackSize < 1 || r.MaxStackSize > 64 {
		return ResolvedItem{}, malformed("max_stack_size", "%d is outside 1..64", r.MaxStackSize)
	}
	return r, nil
}

func resolveArmor(o *ArmorOptions) (ResolvedArmor, error) {
	raw := valueOr(o, ArmorOptions{})
	typ, err := ParseArmorType(raw.Type)
	if err != nil {
		return ResolvedArmor{}, err
	}
	slot := armorSlots[typ]

	geometry := ""
	if typ != ArmorCustom {
		geometry = "geometry.humanoid.armor." + string(typ)
	}
	return ResolvedArmor{
		Type:         typ,
		Protection:   valueOr(raw.Protection, 5),
		TextureType:  valueOr(raw.TextureType, ""),
		RenderOffset: valueOr(raw.RenderOffset, slot.offset),
		WearableSlot: valueOr(raw.WearableSlot, slot.slot),
		Texture:      valueOr(raw.Texture, slot.texture),
		Enchanted:    valueOr(raw.Enchanted, "textures/misc/enchanted_armor"),
		Geometry:     valueOr(raw.Geometry, geometry),
		Script:       valueOr(raw.Script, ""),
	}, nil
}

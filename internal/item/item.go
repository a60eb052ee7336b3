// Package item generates Bedrock item documents from resolved item options.
//
// Items below format version 1.16.100 use the legacy layout: the behavior
// pack document carries gameplay components while a separate resource pack
// stub carries the icon, category and use animation. From 1.16.100 on, the
// icon and display name live in the behavior pack document and no stub is
// generated.
package item

import (
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/options"
)

// Document is the items/<slug>.json layout shared by both packs.
type Document struct {
	FormatVersion string `json:"format_version"`
	Item          Body   `json:"minecraft:item"`
}

// Body is the "minecraft:item" object.
type Body struct {
	Description Description    `json:"description"`
	Components  map[string]any `json:"components"`
}

// Description identifies the item.
type Description struct {
	Identifier string `json:"identifier"`
	Category   string `json:"category,omitempty"`
}

// Result holds the generated documents. Resource is nil for the current
// format.
type Result struct {
	Behavior *Document
	Resource *Document
}

type event struct {
	Event string `json:"event"`
}

// Generate builds the behavior document and, for legacy versions, the
// resource pack stub.
func Generate(r options.ResolvedItem) Result {
	components := map[string]any{
		"minecraft:max_stack_size": r.MaxStackSize,
		"minecraft:hand_equipped":  r.HandEquipped,
		"minecraft:foil":           r.Foil,
	}
	if r.UseDuration != nil {
		components["minecraft:use_duration"] = *r.UseDuration
	}
	addTypeComponents(components, r)

	res := Result{
		Behavior: &Document{
			FormatVersion: r.FormatVersion,
			Item: Body{
				Description: Description{Identifier: r.ID, Category: Category(r.Type)},
				Components:  components,
			},
		},
	}

	if !r.Legacy {
		components["minecraft:icon"] = map[string]string{"texture": r.Slug}
		components["minecraft:display_name"] = map[string]string{"value": r.Name}
		if r.Type == options.TypeFood {
			components["minecraft:use_animation"] = r.Food.UseAnimation
		}
		return res
	}

	stub := map[string]any{"minecraft:icon": r.Slug}
	if r.Type == options.TypeFood {
		stub["minecraft:use_animation"] = r.Food.UseAnimation
	}
	res.Resource = &Document{
		FormatVersion: r.FormatVersion,
		Item: Body{
			Description: Description{Identifier: r.ID, Category: Category(r.Type)},
			Components:  stub,
		},
	}
	return res
}

// Category returns the creative inventory category of an item type.
func Category(t options.ItemType) string {
	switch t {
	case options.TypeArmor, options.TypeDigger, options.TypeThrowable, options.TypeWeapon:
		return "Equipment"
	case options.TypeCustom, options.TypeFood, options.TypeFuel:
		return "Items"
	}
	return "Items"
}

func addTypeComponents(c map[string]any, r options.ResolvedItem) {
	switch r.Type {
	case options.TypeCustom:
	case options.TypeArmor:
		a := r.Armor
		armor := map[string]any{"protection": a.Protection}
		if a.TextureType != "" {
			armor["texture_type"] = a.TextureType
		}
		c["minecraft:armor"] = armor
		c["minecraft:wearable"] = map[string]any{"slot": a.WearableSlot, "dispensable": true}
		c["minecraft:render_offsets"] = a.RenderOffset
	case options.TypeDigger:
		d := r.Digger
		speeds := make([]map[string]any, 0, len(d.DestroySpeeds))
		for _, s := range d.DestroySpeeds {
			speeds = append(speeds, map[string]any{"block": s.Block, "speed": s.Speed})
		}
		digger := map[string]any{
			"use_efficiency": d.UseEfficiency,
			"destroy_speeds": speeds,
		}
		if d.OnDig != "" {
			digger["on_dig"] = event{d.OnDig}
		}
		c["minecraft:digger"] = digger
	case options.TypeFood:
		f := r.Food
		food := map[string]any{
			"nutrition":           f.Nutrition,
			"saturation_modifier": f.SaturationModifier,
			"can_always_eat":      f.CanAlwaysEat,
		}
		if f.UsingConvertsTo != "" {
			food["using_converts_to"] = f.UsingConvertsTo
		}
		c["minecraft:food"] = food
	case options.TypeFuel:
		c["minecraft:fuel"] = map[string]any{"duration": r.Fuel.Duration}
	case options.TypeThrowable:
		t := r.Throwable
		c["minecraft:throwable"] = map[string]any{
			"do_swing_animation":           t.DoSwingAnimation,
			"launch_power_scale":           t.LaunchPowerScale,
			"max_draw_duration":            t.MaxDrawDuration,
			"max_launch_power":             t.MaxLaunchPower,
			"min_draw_duration":            t.MinDrawDuration,
			"scale_power_by_draw_duration": t.ScalePowerByDrawDuration,
		}
	case options.TypeWeapon:
		w := r.Weapon
		weapon := map[string]any{}
		if w.OnHitBlock != "" {
			weapon["on_hit_block"] = event{w.OnHitBlock}
		}
		if w.OnHurtEntity != "" {
			weapon["on_hurt_entity"] = event{w.OnHurtEntity}
		}
		if w.OnNotHurtEntity != "" {
			weapon["on_not_hurt_entity"] = event{w.OnNotHurtEntity}
		}
		c["minecraft:weapon"] = weapon
		c["minecraft:damage"] = w.Damage
	}
}

// TextureAsset returns the placeholder texture name for a resolved item, e.g.
// "armor_helmet" or "food".
func TextureAsset(r options.ResolvedItem) string {
	if r.Type == options.TypeArmor {
		return string(r.Type) + "_" + string(r.Armor.Type)
	}
	return string(r.Type)
}

// LanguageKey returns the en_US.lang key holding the display name.
func LanguageKey(r options.ResolvedItem) string {
	return "item." + r.ID + ".name"
}

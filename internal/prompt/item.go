package prompt

import (
	"fmt"
	"strconv"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/options"
)

// SaturationModifiers are the food saturation levels the game knows.
var SaturationModifiers = []string{"poor", "low", "normal", "good", "max", "supernatural"}

// ItemType asks for the item type.
func ItemType(a Asker) (options.ItemType, error) {
	names := make([]string, len(options.ItemTypes))
	for i, t := range options.ItemTypes {
		names[i] = string(t)
	}
	v, err := a.Select("Select the item type you want to create", names, string(options.TypeCustom))
	if err != nil {
		return "", mapErr(err)
	}
	return options.ParseItemType(v)
}

// ArmorType asks for the armor slot.
func ArmorType(a Asker) (options.ArmorType, error) {
	names := make([]string, len(options.ArmorTypes))
	for i, t := range options.ArmorTypes {
		names[i] = string(t)
	}
	v, err := a.Select("Select the armor type you want to create", names, string(options.ArmorChestplate))
	if err != nil {
		return "", mapErr(err)
	}
	return options.ParseArmorType(v)
}

// Item fills in an item of type typ. seed supplies values already known from
// flags; its name and namespace become the suggested answers.
func Item(a Asker, typ options.ItemType, seed options.Item, d options.Defaults) (options.Item, error) {
	f := &form{a: a}
	out := seed
	out.Type = string(typ)

	if typ == options.TypeArmor && (out.Armor == nil || out.Armor.Type == "") {
		slot, err := ArmorType(a)
		if err != nil {
			return out, err
		}
		if out.Armor == nil {
			out.Armor = &options.ArmorOptions{}
		}
		out.Armor.Type = string(slot)
	}

	name := seed.Name
	if name == "" {
		name = defaultItemName(typ, out.Armor)
	}
	namespace := seed.Namespace
	if namespace == "" {
		namespace = d.Namespace
	}
	version := seed.FormatVersion
	if version == "" {
		version = d.StableVersion
		if typ.Experimental() {
			version = d.ExperimentalVersion
		}
	}

	out.Name = f.input("Item Name", name)
	out.Namespace = f.input("Namespace", namespace)
	out.FormatVersion = f.input("Format Version", version)
	out.Foil = options.Ptr(f.confirm("Foil", false))

	switch typ {
	case options.TypeCustom:
	case options.TypeArmor:
		o := out.Armor
		o.Protection = f.intField("armor.protection", "Protection", "5")
		o.TextureType = options.String(f.input("Texture Type (optional)", ""))
		if o.Type == string(options.ArmorCustom) {
			o.Texture = options.String(f.input("Texture", "textures/models/armor/armor_custom"))
			o.Geometry = options.String(f.input("Geometry", ""))
			o.Script = options.String(f.input("Parent Setup Script (optional)", ""))
		}
	case options.TypeDigger:
		out.Digger = &options.DiggerOptions{
			UseEfficiency: options.Ptr(f.confirm("Use Efficiency", true)),
			OnDig:         options.String(f.input("On Dig Event (optional)", "")),
		}
	case options.TypeFood:
		out.Food = &options.FoodOptions{
			CanAlwaysEat:       options.Ptr(f.confirm("Can Always Eat", false)),
			Nutrition:          f.intField("food.nutrition", "Nutrition", "4"),
			SaturationModifier: options.String(f.choose("Saturation Modifier", SaturationModifiers, "low")),
			UsingConvertsTo:    options.String(f.input("Using Converts To (optional)", "")),
		}
		out.UseDuration = f.intField("use_duration", "Use Duration", "32")
	case options.TypeFuel:
		out.Fuel = &options.FuelOptions{Duration: f.floatField("fuel.duration", "Duration (seconds)", "3.0")}
	case options.TypeThrowable:
		out.Throwable = &options.ThrowableOptions{
			DoSwingAnimation:         options.Ptr(f.confirm("Do Swing Animation", true)),
			LaunchPowerScale:         f.floatField("throwable.launch_power_scale", "Launch Power Scale", "1.0"),
			MaxDrawDuration:          f.floatField("throwable.max_draw_duration", "Max Draw Duration", "0.0"),
			MaxLaunchPower:           f.floatField("throwable.max_launch_power", "Max Launch Power", "1.0"),
			MinDrawDuration:          f.floatField("throwable.min_draw_duration", "Min Draw Duration", "0.0"),
			ScalePowerByDrawDuration: options.Ptr(f.confirm("Scale Power By Draw Duration", true)),
		}
		out.UseDuration = f.intField("use_duration", "Use Duration", "3600")
	case options.TypeWeapon:
		out.Weapon = &options.WeaponOptions{
			Damage:          f.intField("weapon.damage", "Damage", "1"),
			OnHitBlock:      options.String(f.input("On Hit Block Event (optional)", "")),
			OnHurtEntity:    options.String(f.input("On Hurt Entity Event (optional)", "")),
			OnNotHurtEntity: options.String(f.input("On Not Hurt Entity Event (optional)", "")),
		}
	}

	if typ != options.TypeCustom {
		out.MaxStackSize = f.intField("max_stack_size", "Max Stack Size", strconv.Itoa(defaultStack(typ)))
	}
	return out, f.err
}

func defaultItemName(typ options.ItemType, armor *options.ArmorOptions) string {
	if typ == options.TypeArmor && armor != nil && armor.Type != "" {
		return fmt.Sprintf("New %s %s item", typ, armor.Type)
	}
	return fmt.Sprintf("New %s item", typ)
}

func defaultStack(typ options.ItemType) int {
	switch typ {
	case options.TypeArmor, options.TypeDigger, options.TypeWeapon:
		return 1
	case options.TypeThrowable:
		return 16
	case options.TypeCustom, options.TypeFood, options.TypeFuel:
		return 64
	}
	return 64
}

func (f *form) intField(field, message, def string) *int {
	s := f.input(message, def)
	if f.err != nil {
		return nil
	}
	v, err := options.ParseInt(field, s)
	f.err = err
	return v
}

func (f *form) floatField(field, message, def string) *float64 {
	s := f.input(message, def)
	if f.err != nil {
		return nil
	}
	v, err := options.ParseFloat(field, s)
	f.err = err
	return v
}

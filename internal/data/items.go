package data

import (
	"fmt"
	"log/slog"
)

// ItemID identifies an item template in the static registry.
type ItemID uint16

const (
	ItemDiamondSword ItemID = iota + 1
	ItemIronSword
	ItemDiamondChestplate
	ItemIronBoots
	ItemNetheriteHelmet
	ItemTurtleShell
	ItemWolfArmor
	ItemSaddle
	ItemStick
)

// itemDef is one row of the static item registry.
type itemDef struct {
	id        ItemID
	name      string
	maxCount  int32
	modifiers []Modifier // nil when the item carries none
}

var itemDefs = []itemDef{
	{ItemDiamondSword, "minecraft:diamond_sword", 1, []Modifier{
		{AttrAttackDamage, OpAddValue, 6.0, SlotMainHand},
		{AttrAttackSpeed, OpAddValue, -2.4, SlotMainHand},
	}},
	{ItemIronSword, "minecraft:iron_sword", 1, []Modifier{
		{AttrAttackDamage, OpAddValue, 5.0, SlotMainHand},
		{AttrAttackSpeed, OpAddValue, -2.4, SlotMainHand},
	}},
	{ItemDiamondChestplate, "minecraft:diamond_chestplate", 1, []Modifier{
		{AttrArmor, OpAddValue, 8.0, SlotChest},
		{AttrArmorToughness, OpAddValue, 2.0, SlotChest},
	}},
	{ItemIronBoots, "minecraft:iron_boots", 1, []Modifier{
		{AttrArmor, OpAddValue, 2.0, SlotFeet},
	}},
	{ItemNetheriteHelmet, "minecraft:netherite_helmet", 1, []Modifier{
		{AttrArmor, OpAddValue, 3.0, SlotHead},
		{AttrArmorToughness, OpAddValue, 3.0, SlotHead},
		{AttrKnockbackResistance, OpAddValue, 0.1, SlotHead},
	}},
	{ItemTurtleShell, "minecraft:turtle_helmet", 1, []Modifier{
		{AttrArmor, OpAddValue, 2.0, SlotHead},
	}},
	{ItemWolfArmor, "minecraft:wolf_armor", 1, []Modifier{
		{AttrArmor, OpAddValue, 11.0, SlotBody},
	}},
	{ItemSaddle, "minecraft:saddle", 1, []Modifier{
		{AttrStepHeight, OpAddValue, 0.5, SlotSaddle},
	}},
	{ItemStick, "minecraft:stick", 64, nil},
}

// ItemTable — global item template registry, built by LoadItems.
var ItemTable map[ItemID]*itemDef

// LoadItems builds ItemTable and validates modifiers against the attribute
// registry. LoadAttributes must run first.
func LoadItems() error {
	if AttributeTable == nil {
		return fmt.Errorf("loading items: attribute registry not loaded")
	}

	table := make(map[ItemID]*itemDef, len(itemDefs))
	for i := range itemDefs {
		def := &itemDefs[i]
		if def.id == 0 {
			return fmt.Errorf("item %q: id 0 is reserved", def.name)
		}
		if _, dup := table[def.id]; dup {
			return fmt.Errorf("item %q: duplicate id %d", def.name, def.id)
		}
		for _, mod := range def.modifiers {
			if _, ok := AttributeTable[mod.Attribute]; !ok {
				return fmt.Errorf("item %q: modifier references unknown attribute %d", def.name, mod.Attribute)
			}
		}
		table[def.id] = def
	}
	ItemTable = table

	slog.Info("loaded item templates", "count", len(ItemTable))
	return nil
}

// GetItemDef returns the item template, or nil if unknown.
func GetItemDef(id ItemID) *itemDef {
	if ItemTable == nil {
		return nil
	}
	return ItemTable[id]
}

func (d *itemDef) ID() ItemID      { return d.id }
func (d *itemDef) Name() string    { return d.name }
func (d *itemDef) MaxCount() int32 { return d.maxCount }

// AttributeModifiers returns the item's modifier list, nil when it has none.
func (d *itemDef) AttributeModifiers() []Modifier { return d.modifiers }

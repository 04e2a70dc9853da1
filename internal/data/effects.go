package data

import (
	"fmt"
	"log/slog"
)

// EffectID identifies a status effect in the static registry.
type EffectID uint8

const (
	EffectSpeed EffectID = iota
	EffectSlowness
	EffectHaste
	EffectStrength
	EffectJumpBoost
	EffectWeakness
	EffectHealthBoost
	EffectLuck
	EffectUnluck
)

// effectDef is one row of the static status-effect registry.
type effectDef struct {
	id        EffectID
	name      string
	modifiers []EffectModifier
}

var effectDefs = []effectDef{
	{EffectSpeed, "minecraft:speed", []EffectModifier{
		{AttrMovementSpeed, OpAddMultipliedTotal, 0.2},
	}},
	{EffectSlowness, "minecraft:slowness", []EffectModifier{
		{AttrMovementSpeed, OpAddMultipliedTotal, -0.15},
	}},
	{EffectHaste, "minecraft:haste", []EffectModifier{
		{AttrAttackSpeed, OpAddMultipliedBase, 0.1},
	}},
	{EffectStrength, "minecraft:strength", []EffectModifier{
		{AttrAttackDamage, OpAddValue, 3.0},
	}},
	{EffectJumpBoost, "minecraft:jump_boost", []EffectModifier{
		{AttrJumpStrength, OpAddValue, 0.1},
		{AttrSafeFallDistance, OpAddValue, 1.0},
	}},
	{EffectWeakness, "minecraft:weakness", []EffectModifier{
		{AttrAttackDamage, OpAddValue, -4.0},
	}},
	{EffectHealthBoost, "minecraft:health_boost", []EffectModifier{
		{AttrMaxHealth, OpAddValue, 4.0},
	}},
	{EffectLuck, "minecraft:luck", []EffectModifier{
		{AttrLuck, OpAddValue, 1.0},
	}},
	{EffectUnluck, "minecraft:unluck", []EffectModifier{
		{AttrLuck, OpAddValue, -1.0},
	}},
}

// EffectTable — global status-effect registry, built by LoadEffects.
var EffectTable map[EffectID]*effectDef

// LoadEffects builds EffectTable and validates every modifier against the
// attribute registry. LoadAttributes must run first.
func LoadEffects() error {
	if AttributeTable == nil {
		return fmt.Errorf("loading effects: attribute registry not loaded")
	}

	table := make(map[EffectID]*effectDef, len(effectDefs))
	for i := range effectDefs {
		def := &effectDefs[i]
		if _, dup := table[def.id]; dup {
			return fmt.Errorf("effect %q: duplicate id %d", def.name, def.id)
		}
		for _, mod := range def.modifiers {
			if _, ok := AttributeTable[mod.Attribute]; !ok {
				return fmt.Errorf("effect %q: modifier references unknown attribute %d", def.name, mod.Attribute)
			}
		}
		table[def.id] = def
	}
	EffectTable = table

	slog.Info("loaded status effect registry", "count", len(EffectTable))
	return nil
}

// EffectModifiers returns the attribute modifiers for the effect
// (nil for unknown ids).
func EffectModifiers(id EffectID) []EffectModifier {
	if def, ok := EffectTable[id]; ok {
		return def.modifiers
	}
	return nil
}

// EffectName returns the namespaced effect name.
func EffectName(id EffectID) string {
	if def, ok := EffectTable[id]; ok {
		return def.name
	}
	return fmt.Sprintf("unknown:%d", id)
}

package data

import (
	"fmt"
	"log/slog"
)

// AttributeID is a registry attribute interned to a small integer.
// Comparable, cheap map key.
type AttributeID uint8

// Attribute identifiers, ordered by registry id.
const (
	AttrArmor AttributeID = iota
	AttrArmorToughness
	AttrAttackDamage
	AttrAttackKnockback
	AttrAttackSpeed
	AttrFlyingSpeed
	AttrFollowRange
	AttrGravity
	AttrJumpStrength
	AttrKnockbackResistance
	AttrLuck
	AttrMaxAbsorption
	AttrMaxHealth
	AttrMovementSpeed
	AttrSafeFallDistance
	AttrScale
	AttrStepHeight
	AttrWaterMovementEfficiency

	attributeCount
)

// attributeDef is one row of the static attribute registry.
type attributeDef struct {
	id       AttributeID
	name     string // namespaced, e.g. "minecraft:max_health"
	fallback float64
}

var attributeDefs = []attributeDef{
	{AttrArmor, "minecraft:armor", 0.0},
	{AttrArmorToughness, "minecraft:armor_toughness", 0.0},
	{AttrAttackDamage, "minecraft:attack_damage", 2.0},
	{AttrAttackKnockback, "minecraft:attack_knockback", 0.0},
	{AttrAttackSpeed, "minecraft:attack_speed", 4.0},
	{AttrFlyingSpeed, "minecraft:flying_speed", 0.4},
	{AttrFollowRange, "minecraft:follow_range", 32.0},
	{AttrGravity, "minecraft:gravity", 0.08},
	{AttrJumpStrength, "minecraft:jump_strength", 0.42},
	{AttrKnockbackResistance, "minecraft:knockback_resistance", 0.0},
	{AttrLuck, "minecraft:luck", 0.0},
	{AttrMaxAbsorption, "minecraft:max_absorption", 0.0},
	{AttrMaxHealth, "minecraft:max_health", 20.0},
	{AttrMovementSpeed, "minecraft:movement_speed", 0.7},
	{AttrSafeFallDistance, "minecraft:safe_fall_distance", 3.0},
	{AttrScale, "minecraft:scale", 1.0},
	{AttrStepHeight, "minecraft:step_height", 0.6},
	{AttrWaterMovementEfficiency, "minecraft:water_movement_efficiency", 0.0},
}

// AttributeTable — global registry, built by LoadAttributes.
var AttributeTable map[AttributeID]*attributeDef

// LoadAttributes builds AttributeTable from the static defs.
// Returns an error for duplicate or out-of-range ids: an inconsistent
// attribute table must keep the process from starting.
func LoadAttributes() error {
	table := make(map[AttributeID]*attributeDef, len(attributeDefs))
	for i := range attributeDefs {
		def := &attributeDefs[i]
		if def.id >= attributeCount {
			return fmt.Errorf("attribute %q: id %d out of range", def.name, def.id)
		}
		if _, dup := table[def.id]; dup {
			return fmt.Errorf("attribute %q: duplicate id %d", def.name, def.id)
		}
		table[def.id] = def
	}
	AttributeTable = table

	slog.Info("loaded attribute registry", "count", len(AttributeTable))
	return nil
}

// FindAttributeByName resolves a namespaced attribute name to its id.
func FindAttributeByName(name string) (AttributeID, bool) {
	for _, def := range AttributeTable {
		if def.name == name {
			return def.id, true
		}
	}
	return 0, false
}

// AttributeFallback returns the registry default for the attribute.
// Unknown ids fall back to 0; the registry is validated at load time.
func AttributeFallback(id AttributeID) float64 {
	if def, ok := AttributeTable[id]; ok {
		return def.fallback
	}
	return 0
}

// AttributeName returns the namespaced name for logging and persistence keys.
func AttributeName(id AttributeID) string {
	if def, ok := AttributeTable[id]; ok {
		return def.name
	}
	return fmt.Sprintf("unknown:%d", id)
}

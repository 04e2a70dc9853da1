package data

import (
	"fmt"
	"log/slog"
)

// FluidID identifies a fluid in the static registry. Ids are assigned in
// registry order, which puts every water fluid before every lava fluid;
// callback dispatch iterates ids in ascending order and relies on that.
type FluidID uint8

const (
	FluidEmpty FluidID = iota
	FluidFlowingWater
	FluidWater
	FluidFlowingLava
	FluidLava
)

// FluidCategory groups fluids for submersion tracking: two categories.
type FluidCategory int

const (
	FluidCategoryWater FluidCategory = 0
	FluidCategoryLava  FluidCategory = 1

	FluidCategories = 2
)

// fluidDef is one row of the static fluid registry.
type fluidDef struct {
	id       FluidID
	name     string
	category FluidCategory
}

var fluidDefs = []fluidDef{
	{FluidEmpty, "minecraft:empty", FluidCategoryWater},
	{FluidFlowingWater, "minecraft:flowing_water", FluidCategoryWater},
	{FluidWater, "minecraft:water", FluidCategoryWater},
	{FluidFlowingLava, "minecraft:flowing_lava", FluidCategoryLava},
	{FluidLava, "minecraft:lava", FluidCategoryLava},
}

// FluidState is the per-cell fluid state: the fluid surface height within
// the cell (0..1] and whether the column is falling.
type FluidState struct {
	Height  float64
	Falling bool
}

// FluidTable — global fluid registry, built by LoadFluids.
var FluidTable map[FluidID]*fluidDef

// LoadFluids builds FluidTable. Category assignments are validated so the
// ascending-id iteration keeps water strictly before lava.
func LoadFluids() error {
	table := make(map[FluidID]*fluidDef, len(fluidDefs))
	lavaSeen := false
	for i := range fluidDefs {
		def := &fluidDefs[i]
		if _, dup := table[def.id]; dup {
			return fmt.Errorf("fluid %q: duplicate id %d", def.name, def.id)
		}
		if def.category == FluidCategoryLava {
			lavaSeen = true
		} else if lavaSeen && def.id != FluidEmpty {
			return fmt.Errorf("fluid %q: water fluid registered after lava", def.name)
		}
		table[def.id] = def
	}
	FluidTable = table

	slog.Info("loaded fluid registry", "count", len(FluidTable))
	return nil
}

// FluidCategoryOf returns the category for submersion bookkeeping.
func FluidCategoryOf(id FluidID) FluidCategory {
	if def, ok := FluidTable[id]; ok {
		return def.category
	}
	return FluidCategoryWater
}

// FluidName returns the namespaced fluid name.
func FluidName(id FluidID) string {
	if def, ok := FluidTable[id]; ok {
		return def.name
	}
	return fmt.Sprintf("unknown:%d", id)
}

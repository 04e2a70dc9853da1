package model

import (
	"github.com/udisondev/mc2go/internal/game/geo"
)

// Mob is a server-controlled living entity. It carries the default
// living attribute set and runs the standard living tick.
type Mob struct {
	*LivingEntity
}

// NewMob spawns a mob of the given type at pos with default attributes.
func NewMob(world World, typ *EntityType, pos geo.Vec3) *Mob {
	return &Mob{
		LivingEntity: NewLivingEntity(world, typ, pos, DefaultLivingAttributes().Build()),
	}
}

// NewMobWithAttributes spawns a mob with a custom attribute store, for
// kinds that override the defaults.
func NewMobWithAttributes(world World, typ *EntityType, pos geo.Vec3, attributes *AttributeStore) *Mob {
	return &Mob{
		LivingEntity: NewLivingEntity(world, typ, pos, attributes),
	}
}

package model

import (
	"context"

	"github.com/udisondev/mc2go/internal/game/geo"
)

// EntityType is the static description of an entity kind: hitbox
// dimensions, eye height and the traits the simulation core reads.
type EntityType struct {
	Name           string
	Dimensions     geo.EntityDimensions
	EyeHeight      float64
	IsPlayer       bool
	PushedByFluids bool
}

var (
	TypePlayer = &EntityType{
		Name:           "player",
		Dimensions:     geo.EntityDimensions{Width: 0.6, Height: 1.8},
		EyeHeight:      1.62,
		IsPlayer:       true,
		PushedByFluids: true,
	}
	TypeZombie = &EntityType{
		Name:           "zombie",
		Dimensions:     geo.EntityDimensions{Width: 0.6, Height: 1.95},
		EyeHeight:      1.74,
		PushedByFluids: true,
	}
	TypeItem = &EntityType{
		Name:           "item",
		Dimensions:     geo.EntityDimensions{Width: 0.25, Height: 0.25},
		EyeHeight:      0.2125,
		PushedByFluids: true,
	}
	TypeArmorStand = &EntityType{
		Name:           "armor_stand",
		Dimensions:     geo.EntityDimensions{Width: 0.5, Height: 1.975},
		EyeHeight:      1.7775,
		PushedByFluids: false,
	}
)

var typesByName = map[string]*EntityType{
	TypePlayer.Name:     TypePlayer,
	TypeZombie.Name:     TypeZombie,
	TypeItem.Name:       TypeItem,
	TypeArmorStand.Name: TypeArmorStand,
}

// TypeByName resolves an entity type by its registry name.
func TypeByName(name string) (*EntityType, bool) {
	typ, ok := typesByName[name]
	return typ, ok
}

// DamageType classifies a damage source for immunity checks and logging.
type DamageType uint8

const (
	DamageGeneric DamageType = iota
	DamageInWall
	DamageLava
	DamageDrown
	DamageFall
	DamageOutOfWorld
)

// Behavior is the capability set an entity kind implements: per-tick
// update, damage intake, and access to the shared motion/attribute state.
// The caller argument threads the concrete kind through shared code so
// base logic can reach kind-specific hooks.
type Behavior interface {
	Tick(ctx context.Context, caller Behavior)
	Damage(ctx context.Context, amount float64, typ DamageType) bool
	GetEntity() *Entity
	// GetLivingEntity returns nil for non-living kinds.
	GetLivingEntity() *LivingEntity
	IsPushedByFluids() bool
}

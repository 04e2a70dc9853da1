package model

import (
	"fmt"

	"github.com/udisondev/mc2go/internal/data"
	"github.com/udisondev/mc2go/internal/game/geo"
)

// EntitySnapshot is the persistable state of a living entity: enough to
// recreate it after a restart. Derived state (bounding box, block
// position, submersion) is rebuilt on restore.
type EntitySnapshot struct {
	EntityID         int32
	Type             string
	X, Y, Z          float64
	VelX, VelY, VelZ float64
	Health           float64
	FallDistance     float64
	Age              int32

	// Attribute bases differing from the entity kind's defaults, keyed
	// by registry name.
	Attributes map[string]float64
}

// SnapshotOf captures the persistable state of a living entity.
func SnapshotOf(l *LivingEntity) EntitySnapshot {
	pos := l.Pos()
	velocity := l.Velocity()
	return EntitySnapshot{
		EntityID:     l.ID(),
		Type:         l.Type().Name,
		X:            pos.X,
		Y:            pos.Y,
		Z:            pos.Z,
		VelX:         velocity.X,
		VelY:         velocity.Y,
		VelZ:         velocity.Z,
		Health:       l.Health(),
		FallDistance: l.fallDistance.Load(),
		Age:          l.age.Load(),
		Attributes:   l.Attributes().BaseOverrides(),
	}
}

// Restore recreates a mob from the snapshot. The runtime id is not
// preserved; ids are only unique within one process lifetime.
func (s EntitySnapshot) Restore(world World) (*Mob, error) {
	typ, ok := TypeByName(s.Type)
	if !ok {
		return nil, fmt.Errorf("restoring entity %d: unknown type %q", s.EntityID, s.Type)
	}
	mob := NewMob(world, typ, geo.Vec3{X: s.X, Y: s.Y, Z: s.Z})
	mob.SetVelocity(geo.Vec3{X: s.VelX, Y: s.VelY, Z: s.VelZ})
	for name, base := range s.Attributes {
		attr, ok := data.FindAttributeByName(name)
		if !ok {
			return nil, fmt.Errorf("restoring entity %d: unknown attribute %q", s.EntityID, name)
		}
		if err := mob.Attributes().SetBase(attr, base); err != nil {
			return nil, fmt.Errorf("restoring entity %d: attribute %q: %w", s.EntityID, name, err)
		}
	}
	mob.SetHealth(s.Health)
	mob.fallDistance.Store(s.FallDistance)
	mob.age.Store(s.Age)
	return mob, nil
}

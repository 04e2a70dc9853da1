package model

import (
	"math"
	"math/rand/v2"
	"sync/atomic"

	"github.com/udisondev/mc2go/internal/game/geo"
)

var nextEntityID atomic.Int32

// Entity is the shared simulation state of every in-world entity:
// position, velocity, hitbox and collision flags. Each field is an
// independent lock-free cell owned by this entity; other code only reads
// through the entity reference, never shares ownership.
type Entity struct {
	id    int32
	typ   *EntityType
	world World

	pos                vecCell
	lastPos            vecCell
	velocity           vecCell
	movementMultiplier vecCell
	blockPos           posCell
	supportingBlock    posCell
	boundingBox        boxCell

	onGround            atomic.Bool
	horizontalCollision atomic.Bool
	touchingWater       atomic.Bool
	touchingLava        atomic.Bool
	noClip              atomic.Bool
	removed             atomic.Bool
	velocityDirty       atomic.Bool

	waterHeight f64Cell
	lavaHeight  f64Cell

	age atomic.Int32
}

// NewEntity creates an entity of the given type at the given position.
// The world handle is a weak back-reference: the entity never owns the
// world, the world's arena owns the entity.
func NewEntity(world World, typ *EntityType, pos geo.Vec3) *Entity {
	e := &Entity{
		id:    nextEntityID.Add(1),
		typ:   typ,
		world: world,
	}
	e.lastPos.Store(pos)
	e.velocity.Store(geo.Vec3{})
	e.movementMultiplier.Store(geo.Vec3{})
	e.setPosInit(pos)
	e.velocityDirty.Store(true)
	return e
}

// setPosInit seeds position-derived cells without the change check.
func (e *Entity) setPosInit(pos geo.Vec3) {
	e.pos.Store(pos)
	e.boundingBox.Store(geo.NewAABBFromPos(pos, e.typ.Dimensions))
	e.blockPos.Store(geo.FlooredBlockPos(pos))
}

// ID returns the entity's unique runtime id.
func (e *Entity) ID() int32 { return e.id }

// Type returns the entity's static type.
func (e *Entity) Type() *EntityType { return e.typ }

// Pos returns the current position.
func (e *Entity) Pos() geo.Vec3 { return e.pos.Load() }

// LastPos returns the position at the previous broadcast.
func (e *Entity) LastPos() geo.Vec3 { return e.lastPos.Load() }

// Velocity returns the current velocity.
func (e *Entity) Velocity() geo.Vec3 { return e.velocity.Load() }

// SetVelocity replaces the velocity and marks it dirty for replication.
func (e *Entity) SetVelocity(v geo.Vec3) {
	e.velocity.Store(v)
	e.velocityDirty.Store(true)
}

// BoundingBox returns the current hitbox.
func (e *Entity) BoundingBox() geo.AABB { return e.boundingBox.Load() }

// BlockPos returns the voxel cell containing the entity's feet.
func (e *Entity) BlockPos() geo.BlockPos {
	p, _ := e.blockPos.Load()
	return p
}

// SupportingBlock returns the cell bearing the entity's weight, if any.
func (e *Entity) SupportingBlock() (geo.BlockPos, bool) {
	return e.supportingBlock.Load()
}

// OnGround reports whether the last Y collision pass found support.
func (e *Entity) OnGround() bool { return e.onGround.Load() }

// HorizontalCollision reports whether the last movement was shortened on
// a horizontal axis.
func (e *Entity) HorizontalCollision() bool { return e.horizontalCollision.Load() }

// TouchingWater reports water submersion from the last fluid scan.
func (e *Entity) TouchingWater() bool { return e.touchingWater.Load() }

// TouchingLava reports lava submersion from the last fluid scan.
func (e *Entity) TouchingLava() bool { return e.touchingLava.Load() }

// WaterHeight returns the maximum marginal water height from the last scan.
func (e *Entity) WaterHeight() float64 { return e.waterHeight.Load() }

// LavaHeight returns the maximum marginal lava height from the last scan.
func (e *Entity) LavaHeight() float64 { return e.lavaHeight.Load() }

// SetNoClip toggles collision bypass (spectator-like movement).
func (e *Entity) SetNoClip(v bool) { e.noClip.Store(v) }

// SetMovementMultiplier sets the one-tick movement multiplier a block
// like cobweb applies; it is consumed and reset by the next Move.
func (e *Entity) SetMovementMultiplier(v geo.Vec3) { e.movementMultiplier.Store(v) }

// MarkRemoved flags the entity for removal. An in-flight tick is allowed
// to finish; the tick driver skips it afterwards.
func (e *Entity) MarkRemoved() { e.removed.Store(true) }

// IsRemoved reports whether the entity has been marked removed.
func (e *Entity) IsRemoved() bool { return e.removed.Load() }

// ConsumeVelocityDirty clears and returns the velocity-dirty flag. The
// broadcaster calls this once per tick so each velocity change is
// replicated exactly once.
func (e *Entity) ConsumeVelocityDirty() bool {
	return e.velocityDirty.Swap(false)
}

// Age returns the entity's age in ticks.
func (e *Entity) Age() int32 { return e.age.Load() }

// EyeY returns the world-space Y of the entity's eyes.
func (e *Entity) EyeY() float64 {
	return e.pos.Load().Y + e.typ.EyeHeight
}

// SetPos updates the position and, in the same critical section,
// re-derives the bounding box and block position from it. There is no
// observable state where position and box disagree inside the integrator.
func (e *Entity) SetPos(newPos geo.Vec3) {
	if e.pos.Load() == newPos {
		return
	}
	e.pos.Store(newPos)
	e.boundingBox.Store(geo.NewAABBFromPos(newPos, e.typ.Dimensions))

	floored := geo.FlooredBlockPos(newPos)
	if cur, _ := e.blockPos.Load(); cur != floored {
		e.blockPos.Store(floored)
	}
}

// MovePos translates the position by delta.
func (e *Entity) MovePos(delta geo.Vec3) {
	e.SetPos(e.pos.Load().Add(delta))
}

// UpdateLastPos stores the current position as the last broadcast
// position and returns the previous one.
func (e *Entity) UpdateLastPos() geo.Vec3 {
	return e.lastPos.Swap(e.pos.Load())
}

// Knockback pushes the entity by strength in the given horizontal
// direction, halving existing momentum. Living entities scale strength
// by knockback resistance before calling this.
func (e *Entity) Knockback(strength, x, z float64) {
	if strength <= 0.0 {
		return
	}
	e.velocityDirty.Store(true)

	for x*x+z*z < 1.0e-5 {
		x = (rand.Float64() - rand.Float64()) * 0.01
		z = (rand.Float64() - rand.Float64()) * 0.01
	}

	push := geo.Vec3{X: x, Z: z}.Normalize().Scale(strength)
	velocity := e.velocity.Load()

	y := velocity.Y
	if e.onGround.Load() {
		y = math.Min(velocity.Y/2.0+strength, 0.4)
	}
	e.velocity.Store(geo.Vec3{
		X: velocity.X/2.0 - push.X,
		Y: y,
		Z: velocity.Z/2.0 - push.Z,
	})
}

// CheckZeroVelocity clamps imperceptibly small velocity components to
// exactly zero. Players use a combined horizontal threshold, other
// entities a per-axis one.
func (e *Entity) CheckZeroVelocity() {
	motion := e.velocity.Load()

	if e.typ.IsPlayer {
		if motion.HorizontalLengthSquared() < 9.0e-6 {
			motion.X = 0.0
			motion.Z = 0.0
		}
	} else {
		if math.Abs(motion.X) < 0.003 {
			motion.X = 0.0
		}
		if math.Abs(motion.Z) < 0.003 {
			motion.Z = 0.0
		}
	}
	if math.Abs(motion.Y) < 0.003 {
		motion.Y = 0.0
	}

	e.velocity.Store(motion)
}

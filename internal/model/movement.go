package model

import (
	"context"
	"math"

	"github.com/udisondev/mc2go/internal/data"
	"github.com/udisondev/mc2go/internal/game/geo"
)

// AdjustMovementForCollisions computes the largest safe fraction of the
// requested movement per axis against world geometry and returns the
// adjusted vector. Y is resolved first so landing is settled before the
// horizontal slide; X and Z follow, each against the already-Y-adjusted
// vector.
//
// Collision flags are cleared conservatively up front, before any
// geometry query, so a zero-delta request observably resets them.
//
// The bounding box is snapshotted locally before the world query: no
// entity-local lock is held across the (possibly suspending) query.
func (e *Entity) AdjustMovementForCollisions(ctx context.Context, movement geo.Vec3) geo.Vec3 {
	e.onGround.Store(false)
	e.supportingBlock.Clear()
	e.horizontalCollision.Store(false)

	if movement.LengthSquared() == 0.0 {
		return movement
	}

	boundingBox := e.boundingBox.Load()

	collisions := e.world.GetBlockCollisions(ctx, boundingBox.Stretch(movement))
	if len(collisions) == 0 {
		return movement
	}

	adjusted := movement

	// Y-axis pass: find the earliest contact and the block responsible.
	if movement.Y != 0.0 {
		maxTime := 1.0
		var supporting *geo.BlockPos

		for i := range collisions {
			t, ok := boundingBox.CollisionTime(collisions[i].Shape, adjusted, geo.AxisY, maxTime)
			if ok {
				maxTime = t
				supporting = &collisions[i].Pos
			}
		}

		// Multiplying by exactly 1.0 must be a no-op; the check is an
		// exact equality on purpose.
		if maxTime != 1.0 {
			adjusted.Y *= maxTime
		}

		e.onGround.Store(supporting != nil)
		if supporting != nil {
			e.supportingBlock.Store(*supporting)
		}
	}

	horizontalCollision := false

	for _, axis := range geo.HorizontalAxes {
		if movement.Component(axis) == 0.0 {
			continue
		}

		maxTime := 1.0
		for i := range collisions {
			if t, ok := boundingBox.CollisionTime(collisions[i].Shape, adjusted, axis, maxTime); ok {
				maxTime = t
			}
		}

		if maxTime != 1.0 {
			adjusted = adjusted.WithComponent(axis, adjusted.Component(axis)*maxTime)
			horizontalCollision = true
		}
	}

	e.horizontalCollision.Store(horizontalCollision)

	return adjusted
}

// Move applies a motion vector: consumes the one-tick movement
// multiplier, resolves collisions, updates the position and scales the
// remaining velocity by the block's velocity multiplier. Player movement
// is client-driven and skipped here.
func (e *Entity) Move(ctx context.Context, caller Behavior, motion geo.Vec3) {
	if e.typ.IsPlayer {
		return
	}

	if e.noClip.Load() {
		e.MovePos(motion)
		return
	}

	multiplier := e.movementMultiplier.Swap(geo.Vec3{})
	if multiplier.LengthSquared() > 1.0e-7 {
		motion = motion.Mul(multiplier)
		e.velocity.Store(geo.Vec3{})
	}

	finalMove := e.AdjustMovementForCollisions(ctx, motion)

	e.MovePos(finalMove)

	e.velocity.Store(finalMove.Scale(e.velocityMultiplier(ctx)))

	if living := caller.GetLivingEntity(); living != nil {
		living.UpdateFallDistance(ctx, caller, finalMove.Y, e.onGround.Load())
	}
}

// velocityMultiplier returns the damping the entity's current block (or,
// when it is neutral, the block just underneath) applies to velocity.
func (e *Entity) velocityMultiplier(ctx context.Context) float64 {
	blockID, _ := e.world.GetBlockAndState(ctx, e.BlockPos())
	m := data.GetBlockDef(blockID).VelocityMultiplier()
	if m != 1.0 {
		return m
	}

	underPos := e.posWithYOffset(0.500001)
	underID, _ := e.world.GetBlockAndState(ctx, underPos)
	return data.GetBlockDef(underID).VelocityMultiplier()
}

// posWithYOffset returns the cell at the given depth below the entity's
// feet, preferring the supporting block's column when one is known.
func (e *Entity) posWithYOffset(offset float64) geo.BlockPos {
	if supporting, ok := e.supportingBlock.Load(); ok {
		if offset > 1.0e-5 {
			supporting.Y = int32(math.Floor(e.pos.Load().Y - offset))
		}
		return supporting
	}

	pos := e.BlockPos()
	pos.Y = int32(math.Floor(e.pos.Load().Y - offset))
	return pos
}

package model

import (
	"context"
	"math"
	"sort"

	"github.com/udisondev/mc2go/internal/data"
	"github.com/udisondev/mc2go/internal/game/geo"
)

// Fluid current speeds per category. Lava flows faster in nether-like
// dimensions.
const (
	waterCurrentSpeed      = 0.014
	lavaCurrentSpeed       = 0.002333333
	lavaCurrentSpeedNether = 0.007

	// Below this submersion height the push is scaled down.
	shallowFluidHeight = 0.4

	// Push applied instead when the entity is nearly at rest.
	minimumFluidPush = 0.0045
)

// UpdateFluidState scans the voxel cells overlapped by the entity's
// slightly shrunk bounding box, refreshes the touching-water/lava flags
// and submersion heights, pushes the velocity by the accumulated fluid
// current and dispatches fluid collision callbacks in ascending fluid
// id order, so water callbacks run strictly before lava.
func (e *Entity) UpdateFluidState(ctx context.Context, caller Behavior) {
	isPushed := caller.IsPushedByFluids()

	touched := make(map[data.FluidID]struct{})

	var (
		fluidPush   [data.FluidCategories]geo.Vec3
		fluidN      [data.FluidCategories]int
		inFluid     [data.FluidCategories]bool
		fluidHeight [data.FluidCategories]float64
	)

	// Shrunk by an epsilon so edge-adjacent cells do not register.
	box := e.boundingBox.Load().Expand(-0.001, -0.001, -0.001)
	min := box.MinBlockPos()
	max := box.MaxBlockPos()

	for x := min.X; x <= max.X; x++ {
		for y := min.Y; y <= max.Y; y++ {
			for z := min.Z; z <= max.Z; z++ {
				pos := geo.BlockPos{X: x, Y: y, Z: z}
				fluid, state := e.world.GetFluidAndState(ctx, pos)
				if fluid == data.FluidEmpty {
					continue
				}

				marginalHeight := state.Height + float64(y) - box.Min.Y
				if marginalHeight < 0.0 {
					continue
				}

				i := data.FluidCategoryOf(fluid)
				fluidHeight[i] = math.Max(fluidHeight[i], marginalHeight)
				inFluid[i] = true

				if !isPushed {
					touched[fluid] = struct{}{}
					continue
				}

				fluidVelo := e.world.GetFluidVelocity(ctx, pos, fluid, state)
				if fluidHeight[i] < shallowFluidHeight {
					fluidVelo = fluidVelo.Scale(fluidHeight[i])
				}

				fluidPush[i] = fluidPush[i].Add(fluidVelo)
				fluidN[i]++
				touched[fluid] = struct{}{}
			}
		}
	}

	// Ascending fluid ids put water callbacks before lava.
	ids := make([]data.FluidID, 0, len(touched))
	for id := range touched {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		e.world.OnFluidCollision(ctx, id, caller)
	}

	lavaSpeed := lavaCurrentSpeed
	if e.world.Dimension().IsNetherLike() {
		lavaSpeed = lavaCurrentSpeedNether
	}

	e.pushByFluid(waterCurrentSpeed, fluidPush[data.FluidCategoryWater], fluidN[data.FluidCategoryWater])
	e.pushByFluid(lavaSpeed, fluidPush[data.FluidCategoryLava], fluidN[data.FluidCategoryLava])

	inWater := inFluid[data.FluidCategoryWater]
	if inWater {
		if living := caller.GetLivingEntity(); living != nil {
			living.fallDistance.Store(0.0)
		}
	}
	e.waterHeight.Store(fluidHeight[data.FluidCategoryWater])
	e.touchingWater.Store(inWater)

	inLava := inFluid[data.FluidCategoryLava]
	if inLava {
		if living := caller.GetLivingEntity(); living != nil {
			if halved := living.fallDistance.Load() / 2.0; halved != 0.0 {
				living.fallDistance.Store(halved)
			}
		}
	}
	e.lavaHeight.Store(fluidHeight[data.FluidCategoryLava])
	e.touchingLava.Store(inLava)
}

// pushByFluid applies the averaged fluid current to the velocity. Very
// small residual velocities get the fixed minimum push instead, so the
// current never degenerates into an imperceptible nudge.
func (e *Entity) pushByFluid(speed float64, push geo.Vec3, n int) {
	if push.LengthSquared() == 0.0 {
		return
	}
	if n > 0 {
		push = push.Scale(1.0 / float64(n))
	}
	if !e.typ.IsPlayer {
		push = push.Normalize()
	}
	push = push.Scale(speed)

	velo := e.velocity.Load()
	if math.Abs(velo.X) < 0.003 && math.Abs(velo.Z) < 0.003 && velo.LengthSquared() < minimumFluidPush*minimumFluidPush {
		push = push.Normalize().Scale(minimumFluidPush)
	}

	e.velocity.Store(velo.Add(push))
}

// TickBlockCollisions iterates the cells overlapped by the shrunk
// bounding box, dispatches per-block collision callbacks for every block
// whose outline intersects the (non-shrunk) box, and reports whether the
// entity's eye level is inside a solid shape (suffocation).
//
// The suffocation probe runs only while the cell is solid and no result
// has been found yet; once true, further checks are skipped.
func (e *Entity) TickBlockCollisions(ctx context.Context, caller Behavior) bool {
	boundingBox := e.boundingBox.Load()
	suffocating := false

	aabb := boundingBox.Expand(-0.001, -0.001, -0.001)
	min := aabb.MinBlockPos()
	max := aabb.MaxBlockPos()

	eyeBox := aabb
	eyeBox.Min.Y += e.typ.EyeHeight
	eyeBox.Max.Y = eyeBox.Min.Y

	for x := min.X; x <= max.X; x++ {
		for y := min.Y; y <= max.Y; y++ {
			for z := min.Z; z <= max.Z; z++ {
				pos := geo.BlockPos{X: x, Y: y, Z: z}
				block, state := e.world.GetBlockAndState(ctx, pos)

				collided := false
				for _, shape := range state.OutlineShapes() {
					outline := shape.At(pos)
					if !suffocating && state.Solid {
						suffocating = outline.Intersects(eyeBox)
					}
					if outline.Intersects(boundingBox) {
						collided = true
					}
				}

				if collided {
					e.world.OnBlockCollision(ctx, block, state, pos, caller)
				}
			}
		}
	}

	return suffocating
}

package model

import (
	"context"

	"github.com/udisondev/mc2go/internal/data"
	"github.com/udisondev/mc2go/internal/game/geo"
)

// BlockCollision is one solid collision shape in world space together
// with the voxel cell it belongs to.
type BlockCollision struct {
	Shape geo.AABB
	Pos   geo.BlockPos
}

// World is the narrow view of the world/storage collaborator the entity
// core consumes. Implementations may suspend on storage; queries take a
// context and callers must not hold any entity-local lock across them.
//
// Missing or unloaded cells are never an error: block queries collapse to
// air, fluid queries to empty.
type World interface {
	// GetBlockAndState returns the block and its resolved state at pos.
	GetBlockAndState(ctx context.Context, pos geo.BlockPos) (data.BlockID, *data.BlockState)

	// GetFluidAndState returns the fluid and its state at pos
	// (FluidEmpty with a zero state when the cell holds none).
	GetFluidAndState(ctx context.Context, pos geo.BlockPos) (data.FluidID, data.FluidState)

	// GetBlockCollisions returns every solid collision shape intersecting
	// the swept volume, each paired with its owning cell. Order is
	// deterministic for a given world state.
	GetBlockCollisions(ctx context.Context, sweptBox geo.AABB) []BlockCollision

	// GetFluidVelocity returns the flow vector of the fluid at pos.
	GetFluidVelocity(ctx context.Context, pos geo.BlockPos, fluid data.FluidID, state data.FluidState) geo.Vec3

	// Dimension returns the dimension type this world simulates.
	Dimension() data.Dimension

	// OnBlockCollision dispatches the per-block collision callback for an
	// entity whose box intersects the block's outline.
	OnBlockCollision(ctx context.Context, block data.BlockID, state *data.BlockState, pos geo.BlockPos, caller Behavior)

	// OnFluidCollision dispatches the per-fluid collision callback.
	OnFluidCollision(ctx context.Context, fluid data.FluidID, caller Behavior)
}

// Broadcaster receives post-movement deltas for network replication.
// Encoding is out of scope here; the simulation only reports.
type Broadcaster interface {
	EntityMoved(e *Entity, delta geo.Vec3, onGround bool)
	EntityVelocity(e *Entity, velocity geo.Vec3)
}

package world

import (
	"context"

	"github.com/udisondev/mc2go/internal/data"
	"github.com/udisondev/mc2go/internal/game/geo"
	"github.com/udisondev/mc2go/internal/model"
)

// BlockBehaviorFunc reacts to an entity intersecting the block's outline.
type BlockBehaviorFunc func(ctx context.Context, w *World, block data.BlockID, state *data.BlockState, pos geo.BlockPos, caller model.Behavior)

// FluidBehaviorFunc reacts to an entity being inside the fluid.
type FluidBehaviorFunc func(ctx context.Context, w *World, fluid data.FluidID, caller model.Behavior)

// BehaviorRegistry maps block and fluid ids to their collision reactions.
// Built once at startup, read-only afterwards.
type BehaviorRegistry struct {
	blocks map[data.BlockID]BlockBehaviorFunc
	fluids map[data.FluidID]FluidBehaviorFunc
}

// NewBehaviorRegistry returns an empty registry.
func NewBehaviorRegistry() *BehaviorRegistry {
	return &BehaviorRegistry{
		blocks: make(map[data.BlockID]BlockBehaviorFunc),
		fluids: make(map[data.FluidID]FluidBehaviorFunc),
	}
}

// RegisterBlock binds a behavior to a block id.
func (r *BehaviorRegistry) RegisterBlock(id data.BlockID, fn BlockBehaviorFunc) {
	r.blocks[id] = fn
}

// RegisterFluid binds a behavior to a fluid id.
func (r *BehaviorRegistry) RegisterFluid(id data.FluidID, fn FluidBehaviorFunc) {
	r.fluids[id] = fn
}

// DispatchBlock runs the behavior bound to the block, if any.
func (r *BehaviorRegistry) DispatchBlock(ctx context.Context, w *World, block data.BlockID, state *data.BlockState, pos geo.BlockPos, caller model.Behavior) {
	if fn, ok := r.blocks[block]; ok {
		fn(ctx, w, block, state, pos, caller)
	}
}

// DispatchFluid runs the behavior bound to the fluid, if any.
func (r *BehaviorRegistry) DispatchFluid(ctx context.Context, w *World, fluid data.FluidID, caller model.Behavior) {
	if fn, ok := r.fluids[fluid]; ok {
		fn(ctx, w, fluid, caller)
	}
}

// DefaultBehaviors returns the standard block/fluid reactions.
func DefaultBehaviors() *BehaviorRegistry {
	r := NewBehaviorRegistry()

	// Cobweb throttles the next movement to a crawl and kills momentum.
	r.RegisterBlock(data.BlockCobweb, func(_ context.Context, _ *World, _ data.BlockID, _ *data.BlockState, _ geo.BlockPos, caller model.Behavior) {
		caller.GetEntity().SetMovementMultiplier(geo.Vec3{X: 0.25, Y: 0.05, Z: 0.25})
	})

	// Magma burns entities standing on it.
	r.RegisterBlock(data.BlockMagmaBlock, func(ctx context.Context, _ *World, _ data.BlockID, _ *data.BlockState, _ geo.BlockPos, caller model.Behavior) {
		if caller.GetEntity().OnGround() {
			caller.Damage(ctx, 1.0, model.DamageLava)
		}
	})

	return r
}

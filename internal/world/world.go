package world

import (
	"context"
	"log/slog"
	"sync"

	"github.com/udisondev/mc2go/internal/data"
	"github.com/udisondev/mc2go/internal/game/geo"
	"github.com/udisondev/mc2go/internal/model"
)

// World is a chunked voxel store plus the entity arena. It implements
// model.World for the simulation core.
//
// Chunks are created lazily on first write; reads of absent chunks
// resolve to air/empty, never an error.
type World struct {
	dimension data.Dimension

	mu     sync.RWMutex
	chunks map[ChunkPos]*Chunk

	entities  *Arena
	behaviors *BehaviorRegistry
	log       *slog.Logger
}

// New creates an empty world for the given dimension.
func New(dimension data.Dimension, log *slog.Logger) *World {
	if log == nil {
		log = slog.Default()
	}
	return &World{
		dimension: dimension,
		chunks:    make(map[ChunkPos]*Chunk),
		entities:  NewArena(),
		behaviors: DefaultBehaviors(),
		log:       log,
	}
}

// Entities returns the world's entity arena.
func (w *World) Entities() *Arena { return w.entities }

// Dimension returns the dimension type this world simulates.
func (w *World) Dimension() data.Dimension { return w.dimension }

// chunkAt returns the chunk containing the cell, nil when absent.
func (w *World) chunkAt(pos geo.BlockPos) *Chunk {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.chunks[ChunkPosOf(pos)]
}

// chunkFor returns the chunk containing the cell, creating it if needed.
func (w *World) chunkFor(pos geo.BlockPos) *Chunk {
	cp := ChunkPosOf(pos)

	w.mu.RLock()
	c := w.chunks[cp]
	w.mu.RUnlock()
	if c != nil {
		return c
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if c = w.chunks[cp]; c == nil {
		c = NewChunk()
		w.chunks[cp] = c
	}
	return c
}

// SetBlock places a block, materializing the chunk when needed.
func (w *World) SetBlock(pos geo.BlockPos, id data.BlockID) {
	w.chunkFor(pos).SetBlock(pos, id)
}

// SetFluid places a fluid, materializing the chunk when needed.
func (w *World) SetFluid(pos geo.BlockPos, id data.FluidID, state data.FluidState) {
	w.chunkFor(pos).SetFluid(pos, id, state)
}

// GetBlockAndState returns the block and its resolved state at pos.
func (w *World) GetBlockAndState(_ context.Context, pos geo.BlockPos) (data.BlockID, *data.BlockState) {
	c := w.chunkAt(pos)
	if c == nil {
		return data.BlockAir, data.GetBlockState(data.BlockAir)
	}
	id := c.Block(pos)
	return id, data.GetBlockState(id)
}

// GetFluidAndState returns the fluid and its state at pos.
func (w *World) GetFluidAndState(_ context.Context, pos geo.BlockPos) (data.FluidID, data.FluidState) {
	c := w.chunkAt(pos)
	if c == nil {
		return data.FluidEmpty, data.FluidState{}
	}
	return c.Fluid(pos)
}

// GetBlockCollisions returns every collision shape intersecting the
// swept volume. Cells are visited in ascending x, y, z order, so the
// result order is deterministic for a given world state.
func (w *World) GetBlockCollisions(ctx context.Context, sweptBox geo.AABB) []model.BlockCollision {
	min := sweptBox.MinBlockPos()
	max := sweptBox.MaxBlockPos()

	var out []model.BlockCollision
	for x := min.X; x <= max.X; x++ {
		for y := min.Y; y <= max.Y; y++ {
			for z := min.Z; z <= max.Z; z++ {
				pos := geo.BlockPos{X: x, Y: y, Z: z}
				_, state := w.GetBlockAndState(ctx, pos)
				for _, shape := range state.CollisionShapes() {
					world := shape.At(pos)
					if world.Intersects(sweptBox) {
						out = append(out, model.BlockCollision{Shape: world, Pos: pos})
					}
				}
			}
		}
	}
	return out
}

// GetFluidVelocity returns the flow vector of the fluid at pos: the
// height gradient toward lower same-category neighbors, a strong
// downward pull when the column is falling, normalized.
func (w *World) GetFluidVelocity(ctx context.Context, pos geo.BlockPos, fluid data.FluidID, state data.FluidState) geo.Vec3 {
	category := data.FluidCategoryOf(fluid)

	var flow geo.Vec3
	for _, d := range [4]geo.BlockPos{{X: 1}, {X: -1}, {Z: 1}, {Z: -1}} {
		neighbor := pos.Offset(d.X, d.Y, d.Z)
		nid, nstate := w.GetFluidAndState(ctx, neighbor)

		var nheight float64
		if nid != data.FluidEmpty && data.FluidCategoryOf(nid) == category {
			nheight = nstate.Height
		}
		delta := state.Height - nheight
		flow.X += float64(d.X) * delta
		flow.Z += float64(d.Z) * delta
	}

	if state.Falling {
		flow.Y -= 6.0
	}
	if flow.IsZero() {
		return flow
	}
	return flow.Normalize()
}

// OnBlockCollision dispatches the registered block behavior, if any.
func (w *World) OnBlockCollision(ctx context.Context, block data.BlockID, state *data.BlockState, pos geo.BlockPos, caller model.Behavior) {
	w.behaviors.DispatchBlock(ctx, w, block, state, pos, caller)
}

// OnFluidCollision dispatches the registered fluid behavior, if any.
func (w *World) OnFluidCollision(ctx context.Context, fluid data.FluidID, caller model.Behavior) {
	w.behaviors.DispatchFluid(ctx, w, fluid, caller)
}

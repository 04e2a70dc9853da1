package world

import (
	"context"
	"testing"

	"github.com/udisondev/mc2go/internal/data"
	"github.com/udisondev/mc2go/internal/game/geo"
)

// BenchmarkGetBlockCollisions measures the hot path of the movement
// integrator: one swept-box query against a flat floor.
func BenchmarkGetBlockCollisions(b *testing.B) {
	w := New(data.DimensionOverworld, nil)
	for x := int32(-8); x <= 8; x++ {
		for z := int32(-8); z <= 8; z++ {
			w.SetBlock(geo.BlockPos{X: x, Y: 0, Z: z}, data.BlockStone)
		}
	}

	box := geo.AABB{
		Min: geo.Vec3{X: 0.2, Y: 1.0, Z: 0.2},
		Max: geo.Vec3{X: 0.8, Y: 2.95, Z: 0.8},
	}
	swept := box.Stretch(geo.Vec3{Y: -1.5})
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := w.GetBlockCollisions(ctx, swept); len(got) == 0 {
			b.Fatal("expected collisions with the floor")
		}
	}
}

// BenchmarkBlockLookup measures a single cell read through the chunk map.
func BenchmarkBlockLookup(b *testing.B) {
	w := New(data.DimensionOverworld, nil)
	w.SetBlock(geo.BlockPos{X: 3, Y: 64, Z: -7}, data.BlockStone)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if id, _ := w.GetBlockAndState(ctx, geo.BlockPos{X: 3, Y: 64, Z: -7}); id != data.BlockStone {
			b.Fatal("unexpected block")
		}
	}
}

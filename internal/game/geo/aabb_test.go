package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(minX, minY, minZ, maxX, maxY, maxZ float64) AABB {
	return AABB{Min: Vec3{minX, minY, minZ}, Max: Vec3{maxX, maxY, maxZ}}
}

func TestNewAABBFromPos(t *testing.T) {
	dims := EntityDimensions{Width: 0.6, Height: 1.8}
	b := NewAABBFromPos(Vec3{10, 64, -3}, dims)

	assert.InDelta(t, 9.7, b.Min.X, 1e-12)
	assert.InDelta(t, 10.3, b.Max.X, 1e-12)
	assert.Equal(t, 64.0, b.Min.Y)
	assert.InDelta(t, 65.8, b.Max.Y, 1e-12)
	assert.InDelta(t, -3.3, b.Min.Z, 1e-12)
	assert.InDelta(t, -2.7, b.Max.Z, 1e-12)
}

func TestStretch(t *testing.T) {
	b := box(0, 0, 0, 1, 1, 1)

	tests := []struct {
		name     string
		movement Vec3
		want     AABB
	}{
		{"positive x", Vec3{2, 0, 0}, box(0, 0, 0, 3, 1, 1)},
		{"negative y", Vec3{0, -1.5, 0}, box(0, -1.5, 0, 1, 1, 1)},
		{"mixed", Vec3{-1, 2, -0.5}, box(-1, 0, -0.5, 1, 3, 1)},
		{"zero is identity", Vec3{}, b},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Stretch(tt.movement))
		})
	}
}

func TestExpandShrinks(t *testing.T) {
	b := box(0, 0, 0, 1, 1, 1).Expand(-0.001, -0.001, -0.001)
	assert.Equal(t, box(0.001, 0.001, 0.001, 0.999, 0.999, 0.999), b)
}

func TestIntersects(t *testing.T) {
	b := box(0, 0, 0, 1, 1, 1)

	assert.True(t, b.Intersects(box(0.5, 0.5, 0.5, 2, 2, 2)))
	// strict overlap: touching faces do not intersect
	assert.False(t, b.Intersects(box(1, 0, 0, 2, 1, 1)))
	assert.False(t, b.Intersects(box(5, 5, 5, 6, 6, 6)))
}

func TestCollisionTimeFalling(t *testing.T) {
	// Entity box hovering one unit above a full-cube floor at y=[0,1).
	entity := box(0.2, 2, 0.2, 0.8, 3.8, 0.8)
	floor := box(0, 0, 0, 1, 1, 1)

	// Falling 2 units: contact after 1 unit of travel, t = 0.5.
	tm, ok := entity.CollisionTime(floor, Vec3{0, -2, 0}, AxisY, 1.0)
	require.True(t, ok)
	assert.InDelta(t, 0.5, tm, 1e-12)
}

func TestCollisionTimeOutOfReach(t *testing.T) {
	entity := box(0.2, 2, 0.2, 0.8, 3.8, 0.8)
	floor := box(0, 0, 0, 1, 1, 1)

	// Falling half a unit: floor is one unit away, t would be 2.0 >= maxTime.
	_, ok := entity.CollisionTime(floor, Vec3{0, -0.5, 0}, AxisY, 1.0)
	assert.False(t, ok)
}

func TestCollisionTimeNoLateralOverlap(t *testing.T) {
	entity := box(5, 2, 5, 5.6, 3.8, 5.6)
	floor := box(0, 0, 0, 1, 1, 1)

	_, ok := entity.CollisionTime(floor, Vec3{0, -5, 0}, AxisY, 1.0)
	assert.False(t, ok)
}

func TestCollisionTimeSweptLateralOverlap(t *testing.T) {
	// The wall is not in front of the box at rest, but the diagonal
	// movement sweeps the box across its Z extent.
	entity := box(0, 0, 2, 1, 1, 3)
	wall := box(3, 0, 0, 4, 1, 1)

	tm, ok := entity.CollisionTime(wall, Vec3{4, 0, -3}, AxisX, 1.0)
	require.True(t, ok)
	assert.InDelta(t, 0.5, tm, 1e-12)
}

func TestCollisionTimeAlreadyOverlapping(t *testing.T) {
	entity := box(0, 0.5, 0, 1, 2, 1)
	floor := box(0, 0, 0, 1, 1, 1)

	_, ok := entity.CollisionTime(floor, Vec3{0, -1, 0}, AxisY, 1.0)
	assert.False(t, ok)
}

func TestCollisionTimeZeroMovement(t *testing.T) {
	entity := box(0, 2, 0, 1, 3, 1)
	floor := box(0, 0, 0, 1, 1, 1)

	_, ok := entity.CollisionTime(floor, Vec3{1, 0, 0}, AxisY, 1.0)
	assert.False(t, ok)
}

func TestCollisionTimeNegativeDirection(t *testing.T) {
	// Moving in -X toward a wall on the left.
	entity := box(2, 0, 0, 3, 1, 1)
	wall := box(0, 0, 0, 1, 1, 1)

	tm, ok := entity.CollisionTime(wall, Vec3{-2, 0, 0}, AxisX, 1.0)
	require.True(t, ok)
	assert.InDelta(t, 0.5, tm, 1e-12)
}

func TestMinMaxBlockPos(t *testing.T) {
	b := box(-0.3, 63.0, 10.2, 0.3, 64.8, 10.8)
	assert.Equal(t, BlockPos{-1, 63, 10}, b.MinBlockPos())
	assert.Equal(t, BlockPos{0, 64, 10}, b.MaxBlockPos())
}

func TestAt(t *testing.T) {
	unit := box(0, 0, 0, 1, 1, 1)
	got := unit.At(BlockPos{2, -1, 3})
	assert.Equal(t, box(2, -1, 3, 3, 0, 4), got)
}

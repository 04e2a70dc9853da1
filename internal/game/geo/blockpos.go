package geo

import "math"

// BlockPos is an integer voxel cell coordinate. Value type.
type BlockPos struct {
	X, Y, Z int32
}

// FlooredBlockPos returns the voxel cell containing the world-space point.
func FlooredBlockPos(v Vec3) BlockPos {
	return BlockPos{
		X: int32(math.Floor(v.X)),
		Y: int32(math.Floor(v.Y)),
		Z: int32(math.Floor(v.Z)),
	}
}

// ToVec3 returns the minimum corner of the cell as a world-space point.
func (p BlockPos) ToVec3() Vec3 {
	return Vec3{float64(p.X), float64(p.Y), float64(p.Z)}
}

// Offset returns the cell shifted by the given deltas.
func (p BlockPos) Offset(dx, dy, dz int32) BlockPos {
	return BlockPos{p.X + dx, p.Y + dy, p.Z + dz}
}

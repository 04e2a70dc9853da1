package geo

// EntityDimensions is the fixed width/height of an entity's hitbox.
type EntityDimensions struct {
	Width  float64
	Height float64
}

// AABB is an axis-aligned bounding box in world space. Value type.
type AABB struct {
	Min, Max Vec3
}

// NewAABBFromPos builds an entity hitbox anchored at the feet position:
// the box is centered on X/Z and extends upward by the entity height.
func NewAABBFromPos(pos Vec3, dims EntityDimensions) AABB {
	half := dims.Width / 2.0
	return AABB{
		Min: Vec3{pos.X - half, pos.Y, pos.Z - half},
		Max: Vec3{pos.X + half, pos.Y + dims.Height, pos.Z + half},
	}
}

// Stretch extends the box along the movement vector, producing the swept
// volume the box covers while travelling by movement.
func (b AABB) Stretch(movement Vec3) AABB {
	if movement.X < 0 {
		b.Min.X += movement.X
	} else {
		b.Max.X += movement.X
	}
	if movement.Y < 0 {
		b.Min.Y += movement.Y
	} else {
		b.Max.Y += movement.Y
	}
	if movement.Z < 0 {
		b.Min.Z += movement.Z
	} else {
		b.Max.Z += movement.Z
	}
	return b
}

// Expand grows the box by the given amount on each side per axis.
// Negative values shrink it, which the scanners use to drop
// edge-adjacent cells.
func (b AABB) Expand(dx, dy, dz float64) AABB {
	b.Min.X -= dx
	b.Min.Y -= dy
	b.Min.Z -= dz
	b.Max.X += dx
	b.Max.Y += dy
	b.Max.Z += dz
	return b
}

// Offset returns the box translated by v.
func (b AABB) Offset(v Vec3) AABB {
	b.Min = b.Min.Add(v)
	b.Max = b.Max.Add(v)
	return b
}

// At returns the box translated so its minimum corner sits at the given cell.
func (b AABB) At(pos BlockPos) AABB {
	return b.Offset(pos.ToVec3())
}

// Intersects reports whether the boxes strictly overlap on all three axes.
func (b AABB) Intersects(o AABB) bool {
	return b.Min.X < o.Max.X && b.Max.X > o.Min.X &&
		b.Min.Y < o.Max.Y && b.Max.Y > o.Min.Y &&
		b.Min.Z < o.Max.Z && b.Max.Z > o.Min.Z
}

// MinBlockPos returns the voxel cell containing the minimum corner.
func (b AABB) MinBlockPos() BlockPos {
	return FlooredBlockPos(b.Min)
}

// MaxBlockPos returns the voxel cell containing the maximum corner.
func (b AABB) MaxBlockPos() BlockPos {
	return FlooredBlockPos(b.Max)
}

// CollisionTime computes the earliest fraction t of movement at which this
// box, travelling by movement, hits the inert box along the given axis.
// Returns ok=false when the boxes cannot touch on this axis: no gap in the
// travel direction, no overlap on the other axes within the sweep, or the
// contact happens at or after maxTime.
//
// Overlap on the other two axes is tested against the interval swept by
// that axis' movement component, so a vertically shortened movement vector
// changes which shapes the horizontal passes can still reach.
func (b AABB) CollisionTime(inert AABB, movement Vec3, axis Axis, maxTime float64) (float64, bool) {
	d := movement.Component(axis)
	if d == 0 {
		return 0, false
	}

	for _, other := range [3]Axis{AxisX, AxisY, AxisZ} {
		if other == axis {
			continue
		}
		m := movement.Component(other)
		lo := b.Min.Component(other)
		hi := b.Max.Component(other)
		if m < 0 {
			lo += m
		} else {
			hi += m
		}
		if hi <= inert.Min.Component(other) || lo >= inert.Max.Component(other) {
			return 0, false
		}
	}

	var gap float64
	if d > 0 {
		gap = inert.Min.Component(axis) - b.Max.Component(axis)
	} else {
		gap = b.Min.Component(axis) - inert.Max.Component(axis)
		d = -d
	}
	if gap < 0 {
		// Already interpenetrating on this axis: movement is not what
		// caused the contact, leave it untouched.
		return 0, false
	}

	t := gap / d
	if t >= maxTime {
		return 0, false
	}
	return t, true
}

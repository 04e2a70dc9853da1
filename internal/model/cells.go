package model

import (
	"math"
	"sync/atomic"

	"github.com/udisondev/mc2go/internal/game/geo"
)

// f64Cell is a lock-free float64 cell. Writes are always wholesale
// replacements (store), never read-modify-write, so no CAS loop is needed.
type f64Cell struct {
	bits atomic.Uint64
}

func (c *f64Cell) Load() float64 {
	return math.Float64frombits(c.bits.Load())
}

func (c *f64Cell) Store(v float64) {
	c.bits.Store(math.Float64bits(v))
}

// vecCell is a lock-free Vec3 cell.
type vecCell struct {
	p atomic.Pointer[geo.Vec3]
}

func (c *vecCell) Load() geo.Vec3 {
	if v := c.p.Load(); v != nil {
		return *v
	}
	return geo.Vec3{}
}

func (c *vecCell) Store(v geo.Vec3) {
	c.p.Store(&v)
}

// Swap stores v and returns the previous value.
func (c *vecCell) Swap(v geo.Vec3) geo.Vec3 {
	if old := c.p.Swap(&v); old != nil {
		return *old
	}
	return geo.Vec3{}
}

// posCell is a lock-free optional BlockPos cell. nil means "none".
type posCell struct {
	p atomic.Pointer[geo.BlockPos]
}

func (c *posCell) Load() (geo.BlockPos, bool) {
	if p := c.p.Load(); p != nil {
		return *p, true
	}
	return geo.BlockPos{}, false
}

func (c *posCell) Store(pos geo.BlockPos) {
	c.p.Store(&pos)
}

func (c *posCell) Clear() {
	c.p.Store(nil)
}

// boxCell is a lock-free AABB cell.
type boxCell struct {
	p atomic.Pointer[geo.AABB]
}

func (c *boxCell) Load() geo.AABB {
	if b := c.p.Load(); b != nil {
		return *b
	}
	return geo.AABB{}
}

func (c *boxCell) Store(b geo.AABB) {
	c.p.Store(&b)
}

package world

import (
	"sync"

	"github.com/udisondev/mc2go/internal/data"
	"github.com/udisondev/mc2go/internal/game/geo"
)

// Chunk geometry constants
const (
	// ShiftBy - shift by N bits for 2^N cells per chunk axis (2^4 = 16)
	ShiftBy = 4

	// ChunkSize is the cell count per chunk axis
	ChunkSize = 1 << ShiftBy // 16

	// chunkVolume is the cell count per chunk
	chunkVolume = ChunkSize * ChunkSize * ChunkSize

	coordMask = ChunkSize - 1
)

// ChunkPos is the chunk-grid coordinate of a 16×16×16 cell cube.
type ChunkPos struct {
	X, Y, Z int32
}

// ChunkPosOf returns the chunk containing the given cell.
func ChunkPosOf(pos geo.BlockPos) ChunkPos {
	return ChunkPos{
		X: pos.X >> ShiftBy,
		Y: pos.Y >> ShiftBy,
		Z: pos.Z >> ShiftBy,
	}
}

// cellIndex flattens chunk-local coordinates into the block array.
func cellIndex(pos geo.BlockPos) int {
	lx := int(pos.X & coordMask)
	ly := int(pos.Y & coordMask)
	lz := int(pos.Z & coordMask)
	return (ly*ChunkSize+lz)*ChunkSize + lx
}

// fluidCell is one cell's fluid content.
type fluidCell struct {
	id    data.FluidID
	state data.FluidState
}

// Chunk is a 16×16×16 cube of cells. Blocks live in a dense array (most
// cells carry one), fluids in a sparse map (most cells carry none). One
// RWMutex per chunk: readers during a tick never contend with readers.
type Chunk struct {
	mu     sync.RWMutex
	blocks [chunkVolume]data.BlockID
	fluids map[geo.BlockPos]fluidCell
}

// NewChunk returns an empty all-air chunk.
func NewChunk() *Chunk {
	return &Chunk{fluids: make(map[geo.BlockPos]fluidCell)}
}

// Block returns the block id at the cell.
func (c *Chunk) Block(pos geo.BlockPos) data.BlockID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.blocks[cellIndex(pos)]
}

// SetBlock replaces the block id at the cell.
func (c *Chunk) SetBlock(pos geo.BlockPos, id data.BlockID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.blocks[cellIndex(pos)] = id
}

// Fluid returns the fluid content of the cell, FluidEmpty when none.
func (c *Chunk) Fluid(pos geo.BlockPos) (data.FluidID, data.FluidState) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f, ok := c.fluids[pos]
	if !ok {
		return data.FluidEmpty, data.FluidState{}
	}
	return f.id, f.state
}

// SetFluid replaces the fluid content of the cell. FluidEmpty clears it.
func (c *Chunk) SetFluid(pos geo.BlockPos, id data.FluidID, state data.FluidState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id == data.FluidEmpty {
		delete(c.fluids, pos)
		return
	}
	c.fluids[pos] = fluidCell{id: id, state: state}
}

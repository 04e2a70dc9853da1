package data

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/mc2go/internal/game/geo"
)

// BlockID identifies a block in the static registry. 0 is air.
type BlockID uint16

const (
	BlockAir BlockID = iota
	BlockStone
	BlockDirt
	BlockGrassBlock
	BlockBedrock
	BlockSoulSand
	BlockHoneyBlock
	BlockMagmaBlock
	BlockCobweb
	BlockLilyPad
)

// shapeKind describes a block's shape set in cell-local space.
type shapeKind uint8

const (
	shapeNone shapeKind = iota // no boxes at all
	shapeFull                  // full 1×1×1 cube
	shapeThin                  // flat plate at the cell bottom (lily pad)
)

// blockDef is one row of the static block registry. Outline and
// collision shapes are separate: cobweb has a full outline (entities
// inside it get the collision callback) but no collision shape (it never
// blocks movement).
type blockDef struct {
	id                 BlockID
	name               string
	solid              bool
	outline            shapeKind
	collision          shapeKind
	velocityMultiplier float64
}

var blockDefs = []blockDef{
	{BlockAir, "minecraft:air", false, shapeNone, shapeNone, 1.0},
	{BlockStone, "minecraft:stone", true, shapeFull, shapeFull, 1.0},
	{BlockDirt, "minecraft:dirt", true, shapeFull, shapeFull, 1.0},
	{BlockGrassBlock, "minecraft:grass_block", true, shapeFull, shapeFull, 1.0},
	{BlockBedrock, "minecraft:bedrock", true, shapeFull, shapeFull, 1.0},
	{BlockSoulSand, "minecraft:soul_sand", true, shapeFull, shapeFull, 0.4},
	{BlockHoneyBlock, "minecraft:honey_block", true, shapeFull, shapeFull, 0.4},
	{BlockMagmaBlock, "minecraft:magma_block", true, shapeFull, shapeFull, 1.0},
	{BlockCobweb, "minecraft:cobweb", false, shapeFull, shapeNone, 1.0},
	{BlockLilyPad, "minecraft:lily_pad", false, shapeThin, shapeThin, 1.0},
}

// BlockState is the resolved, immutable per-block state handed out by the
// world: solidity plus the shape sets in cell-local space.
type BlockState struct {
	Solid              bool
	VelocityMultiplier float64
	outlineShapes      []geo.AABB
	collisionShapes    []geo.AABB
}

// OutlineShapes returns the block's outline boxes in cell-local
// coordinates. The block collision scan probes these; nil means the
// block is intangible (air-like).
func (s *BlockState) OutlineShapes() []geo.AABB {
	return s.outlineShapes
}

// CollisionShapes returns the boxes that actually block movement. A
// subset of the outline: cobweb has an outline but no collision.
func (s *BlockState) CollisionShapes() []geo.AABB {
	return s.collisionShapes
}

var (
	// BlockTable — global block registry, built by LoadBlocks.
	BlockTable map[BlockID]*blockDef
	// blockStates — one resolved state per block, same lifetime.
	blockStates map[BlockID]*BlockState

	fullCube  = []geo.AABB{{Min: geo.Vec3{}, Max: geo.Vec3{X: 1, Y: 1, Z: 1}}}
	thinPlate = []geo.AABB{{Min: geo.Vec3{}, Max: geo.Vec3{X: 1, Y: 0.09375, Z: 1}}}
)

func resolveShapes(kind shapeKind) []geo.AABB {
	switch kind {
	case shapeFull:
		return fullCube
	case shapeThin:
		return thinPlate
	}
	return nil
}

// LoadBlocks builds the block registry and resolves the shape sets.
func LoadBlocks() error {
	table := make(map[BlockID]*blockDef, len(blockDefs))
	states := make(map[BlockID]*BlockState, len(blockDefs))
	for i := range blockDefs {
		def := &blockDefs[i]
		if _, dup := table[def.id]; dup {
			return fmt.Errorf("block %q: duplicate id %d", def.name, def.id)
		}
		if def.solid && def.collision == shapeNone {
			return fmt.Errorf("block %q: solid block without a collision shape", def.name)
		}
		if def.collision != shapeNone && def.outline == shapeNone {
			return fmt.Errorf("block %q: collision shape without an outline", def.name)
		}
		if def.velocityMultiplier <= 0 {
			return fmt.Errorf("block %q: non-positive velocity multiplier", def.name)
		}
		table[def.id] = def

		states[def.id] = &BlockState{
			Solid:              def.solid,
			VelocityMultiplier: def.velocityMultiplier,
			outlineShapes:      resolveShapes(def.outline),
			collisionShapes:    resolveShapes(def.collision),
		}
	}
	BlockTable = table
	blockStates = states

	slog.Info("loaded block registry", "count", len(BlockTable))
	return nil
}

// GetBlockDef returns the block def for the id; unknown ids resolve to air
// (missing data is never a hard failure mid-tick).
func GetBlockDef(id BlockID) *blockDef {
	if def, ok := BlockTable[id]; ok {
		return def
	}
	return BlockTable[BlockAir]
}

// GetBlockState returns the resolved state for the id, air for unknown ids.
func GetBlockState(id BlockID) *BlockState {
	if st, ok := blockStates[id]; ok {
		return st
	}
	return blockStates[BlockAir]
}

func (d *blockDef) ID() BlockID   { return d.id }
func (d *blockDef) Name() string  { return d.name }
func (d *blockDef) IsSolid() bool { return d.solid }

// VelocityMultiplier is the post-move velocity damping the block applies
// to entities standing in or on it.
func (d *blockDef) VelocityMultiplier() float64 { return d.velocityMultiplier }

package data

// Dimension identifies the world's dimension type. Only the traits the
// simulation core reads are modeled (lava current speed).
type Dimension uint8

const (
	DimensionOverworld Dimension = iota
	DimensionNether
	DimensionEnd
)

// IsNetherLike reports whether lava flows at the faster nether current speed.
func (d Dimension) IsNetherLike() bool {
	return d == DimensionNether
}

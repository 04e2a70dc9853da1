package data

// Operation is one of the three fixed modifier arithmetic operations.
type Operation uint8

const (
	// OpAddValue adds the amount to the running value.
	OpAddValue Operation = iota
	// OpAddMultipliedBase adds amount × original base (not the running value).
	OpAddMultipliedBase
	// OpAddMultipliedTotal adds amount × running value, so it compounds.
	OpAddMultipliedTotal
)

// Apply evaluates the operation against the running value and the
// original base, per the fixed modifier algebra.
func (op Operation) Apply(modified, base, amount float64) float64 {
	switch op {
	case OpAddValue:
		return modified + amount
	case OpAddMultipliedBase:
		return modified + amount*base
	default:
		return modified + amount*modified
	}
}

// Equipment slot indices, in the fixed resolution order.
const (
	SlotIndexMainHand = 0
	SlotIndexOffHand  = 1
	SlotIndexFeet     = 2
	SlotIndexLegs     = 3
	SlotIndexChest    = 4
	SlotIndexHead     = 5
	SlotIndexBody     = 6
	SlotIndexSaddle   = 7

	EquipmentSlots = 8
)

// ModifierSlot is an item modifier's slot applicability predicate.
type ModifierSlot uint8

const (
	SlotAny ModifierSlot = iota
	SlotMainHand
	SlotOffHand
	SlotHand // either hand
	SlotFeet
	SlotLegs
	SlotChest
	SlotHead
	SlotArmor // any armor slot
	SlotBody
	SlotSaddle
)

// Accepts reports whether a modifier with this predicate is active
// when its item sits in the given equipment slot index.
func (s ModifierSlot) Accepts(slot int) bool {
	switch s {
	case SlotAny:
		return true
	case SlotMainHand:
		return slot == SlotIndexMainHand
	case SlotOffHand:
		return slot == SlotIndexOffHand
	case SlotHand:
		return slot == SlotIndexMainHand || slot == SlotIndexOffHand
	case SlotFeet:
		return slot == SlotIndexFeet
	case SlotLegs:
		return slot == SlotIndexLegs
	case SlotChest:
		return slot == SlotIndexChest
	case SlotHead:
		return slot == SlotIndexHead
	case SlotArmor:
		return slot >= SlotIndexFeet && slot <= SlotIndexHead
	case SlotBody:
		return slot == SlotIndexBody
	case SlotSaddle:
		return slot == SlotIndexSaddle
	default:
		return false
	}
}

// Modifier is an item-borne attribute modifier. Immutable registry data.
type Modifier struct {
	Attribute AttributeID
	Operation Operation
	Amount    float64
	Slot      ModifierSlot
}

// EffectModifier is a status-effect-borne attribute modifier. The
// effective amount is BaseValue scaled by the effect amplifier at
// resolution time; no slot predicate (always applicable).
type EffectModifier struct {
	Attribute AttributeID
	Operation Operation
	BaseValue float64
}

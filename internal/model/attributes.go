package model

import (
	"errors"

	"github.com/udisondev/mc2go/internal/data"
)

// ErrAttributeNotFound is returned when an attribute is absent from an
// entity's store. It is a programmer/data error; callers pick a fallback
// or propagate.
var ErrAttributeNotFound = errors.New("attribute not found")

// attributeCell holds one attribute's immutable default and its mutable
// base value. The base is only ever replaced wholesale (set or reset),
// never updated through a compute-then-store sequence, so a plain atomic
// cell is race-free.
type attributeCell struct {
	def  float64
	base f64Cell
}

// AttributeStore keeps an entity's base values for each attribute it
// supports and resolves effective values when equipment and effect
// modifiers are supplied.
//
// The attribute set is fixed at construction: the map is never mutated
// after Build, so concurrent lookups need no lock. Only the per-cell base
// values change, through their atomic cells.
type AttributeStore struct {
	cells map[data.AttributeID]*attributeCell
}

// AttributeStoreBuilder accumulates the fixed attribute set an entity
// kind supports.
type AttributeStoreBuilder struct {
	attrs []struct {
		id  data.AttributeID
		def float64
	}
}

// NewAttributeStoreBuilder returns an empty builder.
func NewAttributeStoreBuilder() *AttributeStoreBuilder {
	return &AttributeStoreBuilder{}
}

// Add registers an attribute with an explicit default base value.
func (b *AttributeStoreBuilder) Add(id data.AttributeID, def float64) *AttributeStoreBuilder {
	b.attrs = append(b.attrs, struct {
		id  data.AttributeID
		def float64
	}{id, def})
	return b
}

// AddWithFallback registers an attribute with its registry fallback default.
func (b *AttributeStoreBuilder) AddWithFallback(id data.AttributeID) *AttributeStoreBuilder {
	return b.Add(id, data.AttributeFallback(id))
}

// Build finalizes the store. The attribute set is immutable afterwards.
func (b *AttributeStoreBuilder) Build() *AttributeStore {
	cells := make(map[data.AttributeID]*attributeCell, len(b.attrs))
	for _, a := range b.attrs {
		cell := &attributeCell{def: a.def}
		cell.base.Store(a.def)
		cells[a.id] = cell
	}
	return &AttributeStore{cells: cells}
}

// GetBase reads the base value of attr without any modifiers.
func (s *AttributeStore) GetBase(attr data.AttributeID) (float64, error) {
	cell, ok := s.cells[attr]
	if !ok {
		return 0, ErrAttributeNotFound
	}
	return cell.base.Load(), nil
}

// SetBase overwrites the base value wholesale. No bounds validation at
// this layer.
func (s *AttributeStore) SetBase(attr data.AttributeID, value float64) error {
	cell, ok := s.cells[attr]
	if !ok {
		return ErrAttributeNotFound
	}
	cell.base.Store(value)
	return nil
}

// ResetBase overwrites the base with the static default and returns it.
func (s *AttributeStore) ResetBase(attr data.AttributeID) (float64, error) {
	cell, ok := s.cells[attr]
	if !ok {
		return 0, ErrAttributeNotFound
	}
	cell.base.Store(cell.def)
	return cell.def, nil
}

// BaseOverrides returns the attributes whose base value currently differs
// from the construction default, keyed by registry name. Used by the
// persistence layer so a restored entity keeps its tuned bases without
// storing the full attribute set.
func (s *AttributeStore) BaseOverrides() map[string]float64 {
	var overrides map[string]float64
	for id, cell := range s.cells {
		base := cell.base.Load()
		if base == cell.def {
			continue
		}
		if overrides == nil {
			overrides = make(map[string]float64, 4)
		}
		overrides[data.AttributeName(id)] = base
	}
	return overrides
}

// Has reports whether the store supports attr.
func (s *AttributeStore) Has(attr data.AttributeID) bool {
	_, ok := s.cells[attr]
	return ok
}

// Modified reads the base value of attr and applies equipment and status
// effect modifiers before returning it.
//
// mainHand is only needed when the main hand is not part of equipment,
// i.e. for player entities whose held item lives in the hotbar.
//
// Resolution is deliberately not transactional: equipment is snapshotted
// under its own lock, each stack is read under its own lock, and the
// effect map is locked once for its whole pass. A concurrent equipment or
// effect write between those steps can land mid-resolution; that race is
// accepted in exchange for never holding one global lock across every
// equipment access on the server.
func (s *AttributeStore) Modified(attr data.AttributeID, equipment *Equipment, mainHand *ItemStack, effects *EffectMap) (float64, error) {
	cell, ok := s.cells[attr]
	if !ok {
		return 0, ErrAttributeNotFound
	}

	base := cell.base.Load()
	modified := base

	// Item modifiers, in the fixed slot order. The implicit main-hand
	// override is evaluated as slot 0.
	slots := equipment.snapshot()
	if mainHand != nil {
		slots = append(slots, slotStack{slot: data.SlotIndexMainHand, stack: mainHand})
	}

	for _, entry := range slots {
		mods := entry.stack.AttributeModifiers()
		if mods == nil {
			continue
		}
		for _, mod := range mods {
			if mod.Attribute != attr {
				continue
			}
			if !mod.Slot.Accepts(entry.slot) {
				continue
			}
			// Applied immediately, not batched: each operation reads
			// the running value at the moment of application.
			modified = mod.Operation.Apply(modified, base, mod.Amount)
		}
	}

	// Status effect modifiers, in ascending effect id order.
	for _, active := range effects.sortedSnapshot() {
		for _, mod := range data.EffectModifiers(active.id) {
			if mod.Attribute != attr {
				continue
			}
			amount := mod.BaseValue * (float64(active.amplifier) + 1.0)
			modified = mod.Operation.Apply(modified, base, amount)
		}
	}

	return modified, nil
}

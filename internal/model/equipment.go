package model

import (
	"sync"

	"github.com/udisondev/mc2go/internal/data"
)

// slotStack pairs an equipment slot index with the stack occupying it.
type slotStack struct {
	slot  int
	stack *ItemStack
}

// Equipment is an entity's equipped items, indexed by the fixed slot
// order (mainhand, offhand, feet, legs, chest, head, body, saddle).
// The mutex is scoped to slot assignment; stack contents have their own
// locks.
type Equipment struct {
	mu    sync.Mutex
	slots [data.EquipmentSlots]*ItemStack
}

// NewEquipment returns an empty equipment set.
func NewEquipment() *Equipment {
	return &Equipment{}
}

// Equip places a stack into the slot, returning the previous occupant
// (nil when the slot was empty). A nil stack clears the slot.
func (e *Equipment) Equip(slot int, stack *ItemStack) *ItemStack {
	if slot < 0 || slot >= data.EquipmentSlots {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	prev := e.slots[slot]
	e.slots[slot] = stack
	return prev
}

// Slot returns the stack in the given slot, nil when empty.
func (e *Equipment) Slot(slot int) *ItemStack {
	if slot < 0 || slot >= data.EquipmentSlots {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.slots[slot]
}

// snapshot copies the occupied (slot, stack) pairs under the equipment
// lock and releases it before the caller inspects any stack. Slot order
// is preserved.
func (e *Equipment) snapshot() []slotStack {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]slotStack, 0, data.EquipmentSlots)
	for slot, stack := range e.slots {
		if stack == nil {
			continue
		}
		out = append(out, slotStack{slot: slot, stack: stack})
	}
	return out
}

package model

import (
	"sync"

	"github.com/udisondev/mc2go/internal/data"
)

// ItemStack is a mutable stack of one item kind. Each stack has its own
// lock; readers (attribute resolution included) lock only the stack they
// are currently inspecting, never the whole inventory.
type ItemStack struct {
	mu    sync.Mutex
	item  data.ItemID
	count int32
}

// NewItemStack creates a stack of the given item and count.
func NewItemStack(item data.ItemID, count int32) *ItemStack {
	return &ItemStack{item: item, count: count}
}

// Item returns the stack's item id.
func (s *ItemStack) Item() data.ItemID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.item
}

// Count returns the stack size.
func (s *ItemStack) Count() int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// SetCount replaces the stack size.
func (s *ItemStack) SetCount(n int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count = n
}

// AttributeModifiers returns the modifier list of the stack's item
// template, nil when the item carries none. The returned slice is
// immutable registry data owned by the item table.
func (s *ItemStack) AttributeModifiers() []data.Modifier {
	s.mu.Lock()
	item := s.item
	s.mu.Unlock()

	def := data.GetItemDef(item)
	if def == nil {
		return nil
	}
	return def.AttributeModifiers()
}

package world

import (
	"sync"

	"github.com/udisondev/mc2go/internal/model"
)

// Arena is the set of live entities in a world, keyed by runtime id.
// Spawn/Remove take the write lock; the tick driver snapshots under the
// read lock and iterates without holding it.
type Arena struct {
	mu       sync.RWMutex
	entities map[int32]model.Behavior
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{entities: make(map[int32]model.Behavior)}
}

// Spawn adds an entity. Re-spawning the same id replaces the entry.
func (a *Arena) Spawn(b model.Behavior) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entities[b.GetEntity().ID()] = b
}

// Remove drops the entity by id, reporting whether it was present.
func (a *Arena) Remove(id int32) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.entities[id]
	delete(a.entities, id)
	return ok
}

// Get returns the entity by id, nil when absent.
func (a *Arena) Get(id int32) model.Behavior {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.entities[id]
}

// Count returns the number of live entities.
func (a *Arena) Count() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.entities)
}

// Snapshot returns the current entities. The slice is the caller's; the
// arena can change underneath it, removed entities included.
func (a *Arena) Snapshot() []model.Behavior {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]model.Behavior, 0, len(a.entities))
	for _, b := range a.entities {
		out = append(out, b)
	}
	return out
}

// Reap removes every entity marked removed and returns how many went.
func (a *Arena) Reap() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for id, b := range a.entities {
		if b.GetEntity().IsRemoved() {
			delete(a.entities, id)
			n++
		}
	}
	return n
}

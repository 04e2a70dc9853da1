package model

import (
	"sort"
	"sync"

	"github.com/udisondev/mc2go/internal/data"
)

// EffectInstance is one active status effect on an entity: the effect id
// plus its current amplifier and remaining duration in ticks.
type EffectInstance struct {
	Amplifier int32
	Duration  int32
}

// activeEffect is the snapshot form handed to the attribute resolver.
type activeEffect struct {
	id        data.EffectID
	amplifier int32
}

// EffectMap is an entity's active status effects. One lock scoped to the
// whole map; resolution takes it once per pass, never together with any
// equipment lock.
type EffectMap struct {
	mu      sync.Mutex
	effects map[data.EffectID]*EffectInstance
}

// NewEffectMap returns an empty effect map.
func NewEffectMap() *EffectMap {
	return &EffectMap{effects: make(map[data.EffectID]*EffectInstance)}
}

// Apply adds the effect or refreshes an existing instance. A stronger
// amplifier replaces a weaker one; equal amplifiers refresh the duration.
func (m *EffectMap) Apply(id data.EffectID, amplifier, duration int32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.effects[id]
	if !ok {
		m.effects[id] = &EffectInstance{Amplifier: amplifier, Duration: duration}
		return
	}
	if amplifier >= existing.Amplifier {
		existing.Amplifier = amplifier
		existing.Duration = duration
	}
}

// Remove drops the effect, reporting whether it was present.
func (m *EffectMap) Remove(id data.EffectID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.effects[id]
	delete(m.effects, id)
	return ok
}

// Get returns a copy of the active instance for the effect.
func (m *EffectMap) Get(id data.EffectID) (EffectInstance, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.effects[id]; ok {
		return *e, true
	}
	return EffectInstance{}, false
}

// Tick decrements every duration by one tick and drops expired effects.
// Returns the ids that expired this tick, in ascending order.
func (m *EffectMap) Tick() []data.EffectID {
	m.mu.Lock()
	defer m.mu.Unlock()

	var expired []data.EffectID
	for id, e := range m.effects {
		e.Duration--
		if e.Duration <= 0 {
			expired = append(expired, id)
			delete(m.effects, id)
		}
	}
	sort.Slice(expired, func(i, j int) bool { return expired[i] < expired[j] })
	return expired
}

// sortedSnapshot copies the active effects under the map lock, sorted by
// ascending effect id. Resolution iterates this order for
// reproducibility.
func (m *EffectMap) sortedSnapshot() []activeEffect {
	m.mu.Lock()
	out := make([]activeEffect, 0, len(m.effects))
	for id, e := range m.effects {
		out = append(out, activeEffect{id: id, amplifier: e.Amplifier})
	}
	m.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

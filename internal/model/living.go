package model

import (
	"context"
	"math"

	"github.com/udisondev/mc2go/internal/data"
	"github.com/udisondev/mc2go/internal/game/geo"
)

// Entities falling below this Y take void damage.
const voidFloorY = -128.0

// LivingEntity extends Entity with health, fall tracking and the
// attribute/effect/equipment state the resolver works on. The attribute
// set is fixed per entity kind at construction.
type LivingEntity struct {
	*Entity

	health       f64Cell
	fallDistance f64Cell

	attributes *AttributeStore
	effects    *EffectMap
	equipment  *Equipment
}

// DefaultLivingAttributes returns the attribute set every living kind
// supports, seeded with registry fallbacks.
func DefaultLivingAttributes() *AttributeStoreBuilder {
	return NewAttributeStoreBuilder().
		AddWithFallback(data.AttrMaxHealth).
		AddWithFallback(data.AttrMovementSpeed).
		AddWithFallback(data.AttrKnockbackResistance).
		AddWithFallback(data.AttrAttackDamage).
		AddWithFallback(data.AttrAttackSpeed).
		AddWithFallback(data.AttrArmor).
		AddWithFallback(data.AttrArmorToughness).
		AddWithFallback(data.AttrGravity).
		AddWithFallback(data.AttrJumpStrength).
		AddWithFallback(data.AttrStepHeight).
		AddWithFallback(data.AttrSafeFallDistance).
		AddWithFallback(data.AttrFollowRange)
}

// NewLivingEntity creates a living entity with the given attribute store.
// Health starts at the max-health base value.
func NewLivingEntity(world World, typ *EntityType, pos geo.Vec3, attributes *AttributeStore) *LivingEntity {
	l := &LivingEntity{
		Entity:     NewEntity(world, typ, pos),
		attributes: attributes,
		effects:    NewEffectMap(),
		equipment:  NewEquipment(),
	}
	maxHealth, err := attributes.GetBase(data.AttrMaxHealth)
	if err != nil {
		maxHealth = data.AttributeFallback(data.AttrMaxHealth)
	}
	l.health.Store(maxHealth)
	return l
}

// Attributes returns the entity's attribute store.
func (l *LivingEntity) Attributes() *AttributeStore { return l.attributes }

// Effects returns the entity's active status effects.
func (l *LivingEntity) Effects() *EffectMap { return l.effects }

// Equipment returns the entity's equipped items.
func (l *LivingEntity) Equipment() *Equipment { return l.equipment }

// Health returns the current health.
func (l *LivingEntity) Health() float64 { return l.health.Load() }

// SetHealth replaces the health, clamped to [0, resolved max health].
func (l *LivingEntity) SetHealth(h float64) {
	maxHealth := l.resolveOrFallback(data.AttrMaxHealth)
	l.health.Store(math.Max(0, math.Min(h, maxHealth)))
}

// FallDistance returns the accumulated fall distance.
func (l *LivingEntity) FallDistance() float64 { return l.fallDistance.Load() }

// Resolve returns the effective value of attr: base plus the entity's
// own equipment and status effect modifiers.
func (l *LivingEntity) Resolve(attr data.AttributeID) (float64, error) {
	return l.attributes.Modified(attr, l.equipment, nil, l.effects)
}

// resolveOrFallback resolves attr, collapsing an absent attribute to the
// registry fallback.
func (l *LivingEntity) resolveOrFallback(attr data.AttributeID) float64 {
	v, err := l.Resolve(attr)
	if err != nil {
		return data.AttributeFallback(attr)
	}
	return v
}

// TakeKnockback applies knockback scaled down by the entity's resolved
// knockback resistance.
func (l *LivingEntity) TakeKnockback(strength, x, z float64) {
	strength *= 1.0 - l.resolveOrFallback(data.AttrKnockbackResistance)
	l.Knockback(strength, x, z)
}

// UpdateFallDistance accumulates downward travel and converts it into
// fall damage on landing, less the resolved safe fall distance.
func (l *LivingEntity) UpdateFallDistance(ctx context.Context, caller Behavior, deltaY float64, onGround bool) {
	if onGround {
		fell := l.fallDistance.Load()
		if fell > 0 {
			l.fallDistance.Store(0.0)
			damage := math.Floor(fell - l.resolveOrFallback(data.AttrSafeFallDistance))
			if damage > 0 {
				caller.Damage(ctx, damage, DamageFall)
			}
		}
		return
	}
	if deltaY < 0 {
		l.fallDistance.Store(l.fallDistance.Load() - deltaY)
	}
}

// Damage reduces health, marking the entity removed when it reaches
// zero. Returns false when the entity is already dead or removed.
func (l *LivingEntity) Damage(ctx context.Context, amount float64, typ DamageType) bool {
	if l.IsRemoved() {
		return false
	}
	health := l.health.Load()
	if health <= 0 {
		return false
	}
	health = math.Max(0, health-amount)
	l.health.Store(health)
	if health == 0 {
		l.MarkRemoved()
	}
	return true
}

// Tick runs one simulation step: status effect durations, the fluid and
// block scans, then velocity integration through collision-adjusted
// movement.
func (l *LivingEntity) Tick(ctx context.Context, caller Behavior) {
	l.age.Add(1)

	l.effects.Tick()

	l.UpdateFluidState(ctx, caller)

	if l.TickBlockCollisions(ctx, caller) {
		caller.Damage(ctx, 1.0, DamageInWall)
	}
	if l.TouchingLava() {
		caller.Damage(ctx, 4.0, DamageLava)
	}

	velocity := l.velocity.Load()
	velocity.Y -= l.resolveOrFallback(data.AttrGravity)
	l.velocity.Store(velocity)

	l.Move(ctx, caller, l.velocity.Load())
	l.CheckZeroVelocity()

	// Stepped-on dispatch: an entity resting exactly on a block's top
	// face never intersects its outline, so the supporting block gets
	// its collision callback separately.
	if l.onGround.Load() {
		under := l.posWithYOffset(0.500001)
		block, state := l.world.GetBlockAndState(ctx, under)
		if state.Solid {
			l.world.OnBlockCollision(ctx, block, state, under, caller)
		}
	}

	if l.pos.Load().Y < voidFloorY {
		caller.Damage(ctx, 4.0, DamageOutOfWorld)
	}
}

// GetEntity implements Behavior.
func (l *LivingEntity) GetEntity() *Entity { return l.Entity }

// GetLivingEntity implements Behavior.
func (l *LivingEntity) GetLivingEntity() *LivingEntity { return l }

// IsPushedByFluids implements Behavior.
func (l *LivingEntity) IsPushedByFluids() bool { return l.typ.PushedByFluids }

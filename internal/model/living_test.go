package model

import (
	"context"
	"testing"

	"github.com/udisondev/mc2go/internal/data"
	"github.com/udisondev/mc2go/internal/game/geo"
)

func TestFallDamageOnLanding(t *testing.T) {
	w := newFakeWorld()
	mob := NewMob(w, TypeZombie, geo.Vec3{X: 0.5, Y: 10.0, Z: 0.5})
	ctx := context.Background()

	mob.UpdateFallDistance(ctx, mob, -4.5, false)
	if got := mob.FallDistance(); !almostEqual(got, 4.5) {
		t.Fatalf("fall distance = %v, want 4.5", got)
	}

	mob.UpdateFallDistance(ctx, mob, 0.0, true)
	if got := mob.FallDistance(); got != 0.0 {
		t.Fatalf("fall distance after landing = %v, want 0", got)
	}
	// floor(4.5 - safe fall distance 3) = 1 damage.
	if got := mob.Health(); got != 19.0 {
		t.Fatalf("health after landing = %v, want 19", got)
	}
}

func TestShortFallIsHarmless(t *testing.T) {
	w := newFakeWorld()
	mob := NewMob(w, TypeZombie, geo.Vec3{})
	ctx := context.Background()

	mob.UpdateFallDistance(ctx, mob, -2.0, false)
	mob.UpdateFallDistance(ctx, mob, 0.0, true)
	if got := mob.Health(); got != 20.0 {
		t.Fatalf("health after a short fall = %v, want 20", got)
	}
}

func TestJumpBoostRaisesSafeFall(t *testing.T) {
	w := newFakeWorld()
	mob := NewMob(w, TypeZombie, geo.Vec3{})
	mob.Effects().Apply(data.EffectJumpBoost, 0, 100)
	ctx := context.Background()

	mob.UpdateFallDistance(ctx, mob, -4.5, false)
	mob.UpdateFallDistance(ctx, mob, 0.0, true)
	// Safe fall distance 3 + 1 from jump boost: floor(4.5-4) = 0.
	if got := mob.Health(); got != 20.0 {
		t.Fatalf("health = %v, want jump boost to absorb the fall", got)
	}
}

func TestDamageAndDeath(t *testing.T) {
	w := newFakeWorld()
	mob := NewMob(w, TypeZombie, geo.Vec3{})
	ctx := context.Background()

	if !mob.Damage(ctx, 7.5, DamageGeneric) {
		t.Fatal("Damage on a healthy entity = false")
	}
	if got := mob.Health(); got != 12.5 {
		t.Fatalf("health = %v, want 12.5", got)
	}

	if !mob.Damage(ctx, 100.0, DamageGeneric) {
		t.Fatal("lethal Damage = false")
	}
	if got := mob.Health(); got != 0.0 {
		t.Fatalf("health clamps at %v, want 0", got)
	}
	if !mob.IsRemoved() {
		t.Fatal("entity not marked removed on death")
	}
	if mob.Damage(ctx, 1.0, DamageGeneric) {
		t.Fatal("Damage on a dead entity = true")
	}
}

func TestSetHealthClampsToMax(t *testing.T) {
	w := newFakeWorld()
	mob := NewMob(w, TypeZombie, geo.Vec3{})

	mob.SetHealth(50.0)
	if got := mob.Health(); got != 20.0 {
		t.Fatalf("health = %v, want clamped to max 20", got)
	}

	mob.Effects().Apply(data.EffectHealthBoost, 0, 100)
	mob.SetHealth(50.0)
	if got := mob.Health(); got != 24.0 {
		t.Fatalf("health = %v, want boosted max 24", got)
	}

	mob.SetHealth(-5.0)
	if got := mob.Health(); got != 0.0 {
		t.Fatalf("health = %v, want clamped to 0", got)
	}
}

func TestTakeKnockbackResistance(t *testing.T) {
	w := newFakeWorld()
	mob := NewMob(w, TypeZombie, geo.Vec3{})
	mob.Equipment().Equip(data.SlotIndexHead, NewItemStack(data.ItemNetheriteHelmet, 1))

	mob.TakeKnockback(1.0, 1.0, 0.0)
	if got := mob.Velocity(); !almostEqual(got.X, -0.9) {
		t.Fatalf("velocity.X = %v, want -0.9 after 10%% resistance", got.X)
	}
}

func TestLivingTickAppliesGravity(t *testing.T) {
	w := newFakeWorld()
	mob := NewMob(w, TypeZombie, geo.Vec3{X: 0.5, Y: 10.0, Z: 0.5})
	mob.Tick(context.Background(), mob)

	if got := mob.Pos(); !almostEqual(got.Y, 10.0-0.08) {
		t.Fatalf("pos.Y after one airborne tick = %v, want %v", got.Y, 10.0-0.08)
	}
	if got := mob.Velocity(); !almostEqual(got.Y, -0.08) {
		t.Fatalf("velocity.Y = %v, want -0.08", got.Y)
	}
	if got := mob.Age(); got != 1 {
		t.Fatalf("age = %d, want 1", got)
	}
}

func TestLivingTickSettlesOnFloor(t *testing.T) {
	w := newFakeWorld()
	w.setBlock(0, 0, 0, data.BlockStone)
	mob := NewMob(w, TypeZombie, geo.Vec3{X: 0.5, Y: 1.0, Z: 0.5})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		mob.Tick(ctx, mob)
	}
	if got := mob.Pos(); !almostEqual(got.Y, 1.0) {
		t.Fatalf("pos.Y = %v, want resting on the floor at 1", got.Y)
	}
	if !mob.OnGround() {
		t.Fatal("OnGround = false while resting on the floor")
	}
}

func TestLivingTickSuffocates(t *testing.T) {
	w := newFakeWorld()
	w.setBlock(0, 0, 0, data.BlockStone)
	w.setBlock(0, 1, 0, data.BlockStone)
	w.setBlock(0, 2, 0, data.BlockStone)

	mob := NewMob(w, TypeZombie, geo.Vec3{X: 0.5, Y: 0.5, Z: 0.5})
	mob.Tick(context.Background(), mob)

	if got := mob.Health(); got != 19.0 {
		t.Fatalf("health after a buried tick = %v, want 19", got)
	}
}

func TestLivingTickLavaDamage(t *testing.T) {
	w := newFakeWorld()
	w.setFluid(0, 0, 0, data.FluidLava, 1.0)
	w.setFluid(0, 1, 0, data.FluidLava, 1.0)

	mob := NewMob(w, TypeZombie, geo.Vec3{X: 0.5, Y: 0.0, Z: 0.5})
	mob.Tick(context.Background(), mob)

	if got := mob.Health(); got != 16.0 {
		t.Fatalf("health after a lava tick = %v, want 16", got)
	}
}

func TestLivingTickVoidDamage(t *testing.T) {
	w := newFakeWorld()
	mob := NewMob(w, TypeZombie, geo.Vec3{X: 0.5, Y: -200.0, Z: 0.5})
	ctx := context.Background()

	before := mob.Health()
	mob.Tick(ctx, mob)
	if got := mob.Health(); got != before-4.0 {
		t.Fatalf("health below the void floor = %v, want %v", got, before-4.0)
	}
}

func TestLivingTickExpiresEffects(t *testing.T) {
	w := newFakeWorld()
	mob := NewMob(w, TypeZombie, geo.Vec3{X: 0.5, Y: 10.0, Z: 0.5})
	mob.Effects().Apply(data.EffectSpeed, 0, 1)

	mob.Tick(context.Background(), mob)
	if _, ok := mob.Effects().Get(data.EffectSpeed); ok {
		t.Fatal("one-tick effect survived the tick")
	}
}

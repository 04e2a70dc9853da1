package model

import (
	"errors"
	"testing"

	"github.com/udisondev/mc2go/internal/data"
)

func newTestStore() *AttributeStore {
	return NewAttributeStoreBuilder().
		Add(data.AttrMaxHealth, 10.0).
		Add(data.AttrAttackDamage, 2.0).
		Add(data.AttrAttackSpeed, 4.0).
		AddWithFallback(data.AttrMovementSpeed).
		AddWithFallback(data.AttrArmor).
		AddWithFallback(data.AttrKnockbackResistance).
		Build()
}

func TestGetBaseUnknownAttribute(t *testing.T) {
	s := newTestStore()
	if _, err := s.GetBase(data.AttrLuck); !errors.Is(err, ErrAttributeNotFound) {
		t.Fatalf("GetBase(Luck) err = %v, want ErrAttributeNotFound", err)
	}
	if _, err := s.Modified(data.AttrLuck, NewEquipment(), nil, NewEffectMap()); !errors.Is(err, ErrAttributeNotFound) {
		t.Fatalf("Modified(Luck) err = %v, want ErrAttributeNotFound", err)
	}
}

func TestSetAndResetBase(t *testing.T) {
	s := newTestStore()

	if err := s.SetBase(data.AttrMaxHealth, 40.0); err != nil {
		t.Fatalf("SetBase: %v", err)
	}
	got, err := s.GetBase(data.AttrMaxHealth)
	if err != nil || got != 40.0 {
		t.Fatalf("GetBase = %v, %v, want 40", got, err)
	}

	def, err := s.ResetBase(data.AttrMaxHealth)
	if err != nil || def != 10.0 {
		t.Fatalf("ResetBase = %v, %v, want 10", def, err)
	}
	got, _ = s.GetBase(data.AttrMaxHealth)
	if got != 10.0 {
		t.Fatalf("GetBase after reset = %v, want 10", got)
	}
}

func TestModifiedWithoutModifiers(t *testing.T) {
	s := newTestStore()
	got, err := s.Modified(data.AttrAttackDamage, NewEquipment(), nil, NewEffectMap())
	if err != nil {
		t.Fatalf("Modified: %v", err)
	}
	if got != 2.0 {
		t.Fatalf("Modified = %v, want base 2", got)
	}
}

func TestModifiedEquipmentMainHand(t *testing.T) {
	s := newTestStore()
	eq := NewEquipment()
	eq.Equip(data.SlotIndexMainHand, NewItemStack(data.ItemDiamondSword, 1))

	got, err := s.Modified(data.AttrAttackDamage, eq, nil, NewEffectMap())
	if err != nil {
		t.Fatalf("Modified: %v", err)
	}
	if got != 8.0 {
		t.Fatalf("attack damage with diamond sword = %v, want 8", got)
	}

	got, _ = s.Modified(data.AttrAttackSpeed, eq, nil, NewEffectMap())
	if !almostEqual(got, 1.6) {
		t.Fatalf("attack speed with diamond sword = %v, want 1.6", got)
	}
}

func TestModifiedSlotFilter(t *testing.T) {
	s := newTestStore()
	eq := NewEquipment()
	// A sword in the head slot contributes nothing: its modifiers only
	// accept the main hand.
	eq.Equip(data.SlotIndexHead, NewItemStack(data.ItemDiamondSword, 1))

	got, err := s.Modified(data.AttrAttackDamage, eq, nil, NewEffectMap())
	if err != nil {
		t.Fatalf("Modified: %v", err)
	}
	if got != 2.0 {
		t.Fatalf("attack damage with misplaced sword = %v, want base 2", got)
	}
}

func TestModifiedExplicitMainHand(t *testing.T) {
	s := newTestStore()
	held := NewItemStack(data.ItemIronSword, 1)

	got, err := s.Modified(data.AttrAttackDamage, NewEquipment(), held, NewEffectMap())
	if err != nil {
		t.Fatalf("Modified: %v", err)
	}
	if got != 7.0 {
		t.Fatalf("attack damage with held iron sword = %v, want 7", got)
	}
}

func TestModifiedArmorStacking(t *testing.T) {
	s := newTestStore()
	eq := NewEquipment()
	eq.Equip(data.SlotIndexChest, NewItemStack(data.ItemDiamondChestplate, 1))
	eq.Equip(data.SlotIndexFeet, NewItemStack(data.ItemIronBoots, 1))
	eq.Equip(data.SlotIndexHead, NewItemStack(data.ItemNetheriteHelmet, 1))

	got, err := s.Modified(data.AttrArmor, eq, nil, NewEffectMap())
	if err != nil {
		t.Fatalf("Modified: %v", err)
	}
	if got != 13.0 {
		t.Fatalf("stacked armor = %v, want 13", got)
	}
}

func TestModifiedEffectAmplifier(t *testing.T) {
	s := newTestStore()
	effects := NewEffectMap()
	effects.Apply(data.EffectStrength, 0, 100)

	got, _ := s.Modified(data.AttrAttackDamage, NewEquipment(), nil, effects)
	if got != 5.0 {
		t.Fatalf("strength I attack damage = %v, want 5", got)
	}

	// Amplifier scales the per-level amount linearly.
	effects.Apply(data.EffectStrength, 2, 100)
	got, _ = s.Modified(data.AttrAttackDamage, NewEquipment(), nil, effects)
	if got != 11.0 {
		t.Fatalf("strength III attack damage = %v, want 11", got)
	}
}

func TestModifiedMultipliedTotal(t *testing.T) {
	s := newTestStore()
	effects := NewEffectMap()
	effects.Apply(data.EffectSpeed, 1, 100)

	// movement_speed base 0.7, speed II adds 0.2*2 of the running value.
	got, _ := s.Modified(data.AttrMovementSpeed, NewEquipment(), nil, effects)
	if !almostEqual(got, 0.7*1.4) {
		t.Fatalf("speed II movement speed = %v, want %v", got, 0.7*1.4)
	}
}

func TestModifiedMultipliedBase(t *testing.T) {
	s := newTestStore()
	effects := NewEffectMap()
	effects.Apply(data.EffectHaste, 0, 100)

	// attack_speed base 4, haste I adds 0.1 of the original base.
	got, _ := s.Modified(data.AttrAttackSpeed, NewEquipment(), nil, effects)
	if !almostEqual(got, 4.4) {
		t.Fatalf("haste I attack speed = %v, want 4.4", got)
	}
}

func TestModifiedEffectsCompose(t *testing.T) {
	s := newTestStore()
	effects := NewEffectMap()
	effects.Apply(data.EffectSpeed, 0, 100)
	effects.Apply(data.EffectSlowness, 0, 100)

	// Speed (id 0) applies before slowness (id 1): 0.7 * 1.2 * 0.85.
	got, _ := s.Modified(data.AttrMovementSpeed, NewEquipment(), nil, effects)
	if !almostEqual(got, 0.7*1.2*0.85) {
		t.Fatalf("speed+slowness movement speed = %v, want %v", got, 0.7*1.2*0.85)
	}
}

func TestModifiedReadsCurrentBase(t *testing.T) {
	s := newTestStore()
	effects := NewEffectMap()
	effects.Apply(data.EffectHealthBoost, 0, 100)

	if err := s.SetBase(data.AttrMaxHealth, 30.0); err != nil {
		t.Fatalf("SetBase: %v", err)
	}
	got, _ := s.Modified(data.AttrMaxHealth, NewEquipment(), nil, effects)
	if got != 34.0 {
		t.Fatalf("boosted max health after SetBase = %v, want 34", got)
	}
}

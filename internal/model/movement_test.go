package model

import (
	"context"
	"testing"

	"github.com/udisondev/mc2go/internal/data"
	"github.com/udisondev/mc2go/internal/game/geo"
)

func TestMoveLandsOnFloor(t *testing.T) {
	w := newFakeWorld()
	w.setBlock(0, 0, 0, data.BlockStone)

	mob := NewMob(w, TypeZombie, geo.Vec3{X: 0.5, Y: 2.0, Z: 0.5})
	mob.Move(context.Background(), mob, geo.Vec3{Y: -2.0})

	if got := mob.Pos(); !almostEqual(got.Y, 1.0) {
		t.Fatalf("pos.Y = %v, want 1 (settled on the floor)", got.Y)
	}
	if !mob.OnGround() {
		t.Fatal("OnGround = false after landing")
	}
	support, ok := mob.SupportingBlock()
	if !ok || support != (geo.BlockPos{X: 0, Y: 0, Z: 0}) {
		t.Fatalf("SupportingBlock = %v, %v, want {0 0 0}", support, ok)
	}
	if got := mob.Velocity(); !almostEqual(got.Y, -1.0) {
		t.Fatalf("velocity.Y = %v, want the adjusted movement -1", got.Y)
	}
}

func TestAdjustMovementZeroDeltaClearsFlags(t *testing.T) {
	w := newFakeWorld()
	w.setBlock(0, 0, 0, data.BlockStone)

	mob := NewMob(w, TypeZombie, geo.Vec3{X: 0.5, Y: 2.0, Z: 0.5})
	mob.Move(context.Background(), mob, geo.Vec3{Y: -2.0})
	if !mob.OnGround() {
		t.Fatal("precondition: entity must be grounded")
	}

	got := mob.AdjustMovementForCollisions(context.Background(), geo.Vec3{})
	if got != (geo.Vec3{}) {
		t.Fatalf("adjusted zero movement = %v, want zero", got)
	}
	if mob.OnGround() || mob.HorizontalCollision() {
		t.Fatal("flags survived a zero-delta adjustment")
	}
	if _, ok := mob.SupportingBlock(); ok {
		t.Fatal("supporting block survived a zero-delta adjustment")
	}
}

func TestAdjustMovementIdempotent(t *testing.T) {
	w := newFakeWorld()
	w.setBlock(0, 0, 0, data.BlockStone)

	mob := NewMob(w, TypeZombie, geo.Vec3{X: 0.5, Y: 2.0, Z: 0.5})
	ctx := context.Background()

	first := mob.AdjustMovementForCollisions(ctx, geo.Vec3{Y: -2.0})
	if !almostEqual(first.Y, -1.0) {
		t.Fatalf("first adjustment = %v, want Y -1", first)
	}
	second := mob.AdjustMovementForCollisions(ctx, first)
	if second != first {
		t.Fatalf("re-adjusting an already safe movement changed it: %v -> %v", first, second)
	}
}

func TestMoveSlidesAlongWall(t *testing.T) {
	w := newFakeWorld()
	w.setBlock(1, 0, 0, data.BlockStone)
	w.setBlock(1, 1, 0, data.BlockStone)

	mob := NewMob(w, TypeZombie, geo.Vec3{X: 0.5, Y: 0.0, Z: 0.5})
	mob.Move(context.Background(), mob, geo.Vec3{X: 0.5})

	if got := mob.Pos(); !almostEqual(got.X, 0.7) {
		t.Fatalf("pos.X = %v, want 0.7 (stopped at the wall)", got.X)
	}
	if !mob.HorizontalCollision() {
		t.Fatal("HorizontalCollision = false after hitting a wall")
	}
	if mob.OnGround() {
		t.Fatal("OnGround = true without a Y collision")
	}
}

func TestMoveDiagonalOntoNeighborBlock(t *testing.T) {
	w := newFakeWorld()
	w.setBlock(0, 0, 0, data.BlockStone)
	w.setBlock(1, 0, 0, data.BlockStone)

	// Falling diagonally onto a flat two-block floor. The horizontal
	// pass sweeps the Y-shortened vector, so the neighbor block's side
	// face no longer blocks the X step after the landing is settled.
	mob := NewMob(w, TypeZombie, geo.Vec3{X: 0.5, Y: 2.0, Z: 0.5})
	mob.Move(context.Background(), mob, geo.Vec3{X: 0.4, Y: -2.0})

	got := mob.Pos()
	if !almostEqual(got.Y, 1.0) {
		t.Fatalf("pos.Y = %v, want 1", got.Y)
	}
	if !almostEqual(got.X, 0.9) {
		t.Fatalf("pos.X = %v, want the full 0.4 step to 0.9", got.X)
	}
	if mob.HorizontalCollision() {
		t.Fatal("HorizontalCollision = true sliding onto a level neighbor")
	}
	if !mob.OnGround() {
		t.Fatal("OnGround = false after landing")
	}
}

func TestMovePlayerIsClientDriven(t *testing.T) {
	w := newFakeWorld()
	player := NewLivingEntity(w, TypePlayer, geo.Vec3{X: 0.5, Y: 5.0, Z: 0.5}, DefaultLivingAttributes().Build())

	player.Move(context.Background(), player, geo.Vec3{X: 1.0, Y: 1.0, Z: 1.0})
	if got := player.Pos(); got != (geo.Vec3{X: 0.5, Y: 5.0, Z: 0.5}) {
		t.Fatalf("player moved server-side to %v", got)
	}
}

func TestMoveNoClipIgnoresGeometry(t *testing.T) {
	w := newFakeWorld()
	w.setBlock(0, 0, 0, data.BlockStone)
	w.setBlock(0, 1, 0, data.BlockStone)

	mob := NewMob(w, TypeZombie, geo.Vec3{X: 0.5, Y: 2.0, Z: 0.5})
	mob.SetNoClip(true)
	mob.Move(context.Background(), mob, geo.Vec3{Y: -2.0})

	if got := mob.Pos(); !almostEqual(got.Y, 0.0) {
		t.Fatalf("pos.Y = %v, want 0 (passed through the floor)", got.Y)
	}
	if mob.OnGround() {
		t.Fatal("noclip movement set OnGround")
	}
}

func TestMoveConsumesMovementMultiplier(t *testing.T) {
	w := newFakeWorld()
	mob := NewMob(w, TypeZombie, geo.Vec3{})
	ctx := context.Background()

	mob.SetMovementMultiplier(geo.Vec3{X: 0.25, Y: 0.05, Z: 0.25})
	mob.Move(ctx, mob, geo.Vec3{X: 1.0, Y: 1.0, Z: 1.0})

	got := mob.Pos()
	if !almostEqual(got.X, 0.25) || !almostEqual(got.Y, 0.05) || !almostEqual(got.Z, 0.25) {
		t.Fatalf("pos after webbed move = %v, want (0.25 0.05 0.25)", got)
	}

	// The multiplier is one-shot: the next move runs at full speed.
	mob.Move(ctx, mob, geo.Vec3{X: 0.1})
	if got = mob.Pos(); !almostEqual(got.X, 0.35) {
		t.Fatalf("pos.X after follow-up move = %v, want 0.35", got.X)
	}
}

func TestVelocityMultiplierFromBlockUnder(t *testing.T) {
	w := newFakeWorld()
	w.setBlock(0, 0, 0, data.BlockSoulSand)

	mob := NewMob(w, TypeZombie, geo.Vec3{X: 0.5, Y: 1.0, Z: 0.5})
	mob.Move(context.Background(), mob, geo.Vec3{X: 0.1})

	if got := mob.Velocity(); !almostEqual(got.X, 0.04) {
		t.Fatalf("velocity.X = %v, want 0.1 * 0.4 soul sand damping", got.X)
	}
}

package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gonewx/picnic/pkg/utils"
)

func TestProjectileFireDirection(t *testing.T) {
	w := newTestWorld(t, utils.NewRandomSource(1))

	if !w.projectile.Fire() {
		t.Fatal("Fire() should succeed when idle")
	}
	if w.projectile.Fire() {
		t.Error("Fire() should be rejected while a shot is in flight")
	}

	// 准星世界位置 (0, 1, 0.15)，局部到世界变换再作用一次得到 (0, 2, 0.3)
	want := mgl32.Vec3{0, 2, 0.3}.Normalize()
	if got := w.gs.Projectile.Direction; !vecNear(got, want, 1e-4) {
		t.Errorf("direction = %v, want %v", got, want)
	}

	// 番茄酱朝向 = 瓶子旋转 × 原始旋转
	bottle := w.transform(t, w.gs.Aim.Bottle)
	shot := w.transform(t, w.gs.Projectile.Shot)
	wantRot := bottle.Rotation.Mul(w.gs.Projectile.OrigRotation)
	if !quatNear(shot.Rotation, wantRot, 1e-5) {
		t.Errorf("shot rotation = %v, want %v", shot.Rotation, wantRot)
	}
}

func TestProjectileExpiry(t *testing.T) {
	w := newTestWorld(t, utils.NewRandomSource(1))
	w.projectile.Fire()
	dir := w.gs.Projectile.Direction

	w.projectile.Update(0.5)
	w.projectile.Update(0.5)
	if !w.gs.Projectile.Shooting {
		t.Fatal("shot should still be in flight after 1.0")
	}
	want := dir.Mul(20)
	if got := w.projectile.TipPosition(); !vecNear(got, want, 1e-4) {
		t.Errorf("tip after 1.0 = %v, want %v", got, want)
	}

	w.projectile.Update(0.5)
	p := w.gs.Projectile
	if p.Shooting || p.ShotTime != 0 {
		t.Errorf("shot should expire at 1.5: shooting=%v shotTime=%.2f", p.Shooting, p.ShotTime)
	}
	if got := w.projectile.TipPosition(); got != p.RestPosition {
		t.Errorf("shot should return to rest position, got %v", got)
	}

	if !w.projectile.Fire() {
		t.Error("Fire() should succeed again after expiry")
	}
}

func TestProjectileRejectedWhenGameOver(t *testing.T) {
	w := newTestWorld(t, utils.NewRandomSource(1))
	w.gs.Damage(w.gs.Health(), "test")

	if w.projectile.Fire() {
		t.Error("Fire() should be rejected at health 0")
	}
	if w.gs.Projectile.Shooting {
		t.Error("projectile state should not change at health 0")
	}
}

package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gonewx/picnic/pkg/components"
	"github.com/gonewx/picnic/pkg/entities"
	"github.com/gonewx/picnic/pkg/utils"
)

func addApple(t *testing.T, w *testWorld, initPos, initVel mgl32.Vec3) *components.AppleComponent {
	t.Helper()
	a, err := entities.NewApple(w.em, w.reg, w.gs.NextAppleID(), initPos, initVel, w.cfg.Apple)
	if err != nil {
		t.Fatalf("NewApple() error = %v", err)
	}
	w.gs.Apples = append(w.gs.Apples, a)
	return a
}

func TestAppleParabola(t *testing.T) {
	w := newTestWorld(t, utils.NewRandomSource(1))
	a := addApple(t, w, mgl32.Vec3{-6, 5, 0}, mgl32.Vec3{8, 0, 1})

	w.apples.Update(1.0)
	// x = -6 + 8, y 不变, z = 1 - 0.5
	want := mgl32.Vec3{2, 5, 0.5}
	if got := w.transform(t, a.Node).Position; !vecNear(got, want, 1e-5) {
		t.Errorf("position at t=1 = %v, want %v", got, want)
	}
	if rot := w.transform(t, a.Node).Rotation; quatNear(rot, mgl32.QuatIdent(), 1e-4) {
		t.Error("flying apple should spin")
	}
}

func TestAppleTumbleAndTimeout(t *testing.T) {
	w := newTestWorld(t, utils.NewRandomSource(1))
	a := addApple(t, w, mgl32.Vec3{0, 5, 1}, mgl32.Vec3{})

	if !w.apples.Strike(a) {
		t.Fatal("Strike() should succeed for a flying apple")
	}
	if w.apples.Strike(a) {
		t.Error("Strike() should fail for a tumbling apple")
	}

	before := w.transform(t, a.Node).Position
	w.apples.Update(0.5)
	after := w.transform(t, a.Node).Position
	if dy := after.Y() - before.Y(); dy < 4.99 || dy > 5.01 {
		t.Errorf("tumbling apple should recede 5 units in +y, moved %.3f", dy)
	}

	// 被击中与否都在 3.0 时移除
	w.apples.Update(2.5)
	if len(w.gs.Apples) != 0 || a.Phase != components.AppleRemoved {
		t.Errorf("apple should be removed at timeout: apples=%d phase=%v", len(w.gs.Apples), a.Phase)
	}
	if !w.em.IsMarkedForDestroy(a.Node) {
		t.Error("apple node should be marked for destroy")
	}
}

func TestAppleTimeoutWithoutHit(t *testing.T) {
	w := newTestWorld(t, utils.NewRandomSource(1))
	addApple(t, w, mgl32.Vec3{-6, 5, 0}, mgl32.Vec3{8, 0, 1})
	addApple(t, w, mgl32.Vec3{-6, 2, 0}, mgl32.Vec3{8, 0, 1})

	w.apples.Update(2.9)
	if len(w.gs.Apples) != 2 {
		t.Fatalf("apples = %d before timeout, want 2", len(w.gs.Apples))
	}
	w.apples.Update(0.1)
	if len(w.gs.Apples) != 0 {
		t.Errorf("apples = %d after timeout, want 0", len(w.gs.Apples))
	}
	if w.gs.Health() != 20 {
		t.Errorf("missed apples should not change health, got %d", w.gs.Health())
	}
}

package utils

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gonewx/picnic/pkg/components"
	"github.com/gonewx/picnic/pkg/ecs"
)

func TestLocalToWorldFollowsParentChain(t *testing.T) {
	em := ecs.NewEntityManager()

	parent := em.CreateEntity()
	parentTransform := components.NewTransformComponent("Bottle")
	parentTransform.Position = mgl32.Vec3{0, 0, 1}
	parentTransform.Rotation = mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 0, 1})
	em.AddComponent(parent, parentTransform)

	child := em.CreateEntity()
	childTransform := components.NewTransformComponent("Cursor")
	childTransform.Parent = parent
	childTransform.Position = mgl32.Vec3{2, 0, 0}
	em.AddComponent(child, childTransform)

	// 子节点 (2,0,0) 经父节点绕 z 旋转 90° 得 (0,2,0)，再平移得 (0,2,1)
	got := WorldPosition(em, child)
	want := mgl32.Vec3{0, 2, 1}
	if got.Sub(want).Len() >= 1e-5 {
		t.Errorf("WorldPosition(child) = %v, want %v", got, want)
	}

	if root := WorldPosition(em, parent); root.Sub(mgl32.Vec3{0, 0, 1}).Len() >= 1e-5 {
		t.Errorf("WorldPosition(parent) = %v, want (0,0,1)", root)
	}
}

func TestLocalToWorldMissingNode(t *testing.T) {
	em := ecs.NewEntityManager()
	if m := LocalToWorld(em, ecs.EntityID(5)); m != mgl32.Ident4() {
		t.Errorf("missing node should yield identity, got %v", m)
	}
}

func TestLocalToWorldCycleTerminates(t *testing.T) {
	em := ecs.NewEntityManager()
	a := em.CreateEntity()
	b := em.CreateEntity()

	ta := components.NewTransformComponent("A")
	ta.Parent = b
	tb := components.NewTransformComponent("B")
	tb.Parent = a
	em.AddComponent(a, ta)
	em.AddComponent(b, tb)

	// 只要能返回即可
	_ = LocalToWorld(em, a)
}

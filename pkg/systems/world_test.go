package systems

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gonewx/picnic/pkg/components"
	"github.com/gonewx/picnic/pkg/config"
	"github.com/gonewx/picnic/pkg/ecs"
	"github.com/gonewx/picnic/pkg/game"
	"github.com/gonewx/picnic/pkg/utils"
)

// testWorld 按游戏场景的方式组装全部系统（不打开窗口）
type testWorld struct {
	em  *ecs.EntityManager
	reg *game.AssetRegistry
	gs  *game.GameState
	cfg *config.GameplayConfig

	spawn      *SpawnSystem
	projectile *ProjectileSystem
	hotdogs    *HotdogSystem
	apples     *AppleSystem
	collision  *CollisionSystem
	input      *InputSystem

	cursorLocked []bool // SetCursorLocked 的调用记录
}

func newTestWorld(t *testing.T, rng utils.RandomSource) *testWorld {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "data", "picnic.yaml"))
	if err != nil {
		t.Fatalf("failed to read scene description: %v", err)
	}
	desc, err := game.ParseSceneDescription(data)
	if err != nil {
		t.Fatalf("ParseSceneDescription() error = %v", err)
	}

	cfg := config.DefaultGameplayConfig()
	em := ecs.NewEntityManager()
	reg := game.NewAssetRegistry()
	if err := reg.Load(em, desc, cfg.OffscreenPosition); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	gs := game.NewGameState(cfg)
	if err := gs.BindScene(em, reg); err != nil {
		t.Fatalf("BindScene() error = %v", err)
	}

	w := &testWorld{em: em, reg: reg, gs: gs, cfg: cfg}
	w.spawn = NewSpawnSystem(em, gs, reg, cfg, rng)
	w.projectile = NewProjectileSystem(em, gs, gs.Aim.Bottle)
	w.hotdogs = NewHotdogSystem(em, gs, reg, cfg)
	w.apples = NewAppleSystem(em, gs, &cfg.Apple)
	w.collision = NewCollisionSystem(em, gs, cfg, w.projectile, w.hotdogs, w.apples)
	w.input = NewInputSystem(em, gs, w.projectile, reg.Camera())
	w.input.SetCursorLocked = func(locked bool) {
		w.cursorLocked = append(w.cursorLocked, locked)
	}
	return w
}

// step 按帧顺序推进一帧
func (w *testWorld) step(dt float64) {
	w.spawn.Update(dt)
	w.projectile.Update(dt)
	w.hotdogs.UpdateMoving(dt)
	w.apples.Update(dt)
	w.collision.Update(dt)
	w.hotdogs.UpdateFalling(dt)
	w.hotdogs.UpdateDying(dt)
	w.em.RemoveMarkedEntities()
}

func (w *testWorld) transform(t *testing.T, id ecs.EntityID) *components.TransformComponent {
	t.Helper()
	tr, ok := ecs.GetComponent[*components.TransformComponent](w.em, id)
	if !ok {
		t.Fatalf("entity %d has no transform", id)
	}
	return tr
}

// aimShotAt 让子弹处于飞行状态并位于 p
func (w *testWorld) aimShotAt(t *testing.T, p mgl32.Vec3) {
	t.Helper()
	w.gs.Projectile.Shooting = true
	w.transform(t, w.gs.Projectile.Shot).Position = p
}

// vecNear 按绝对误差比较向量
func vecNear(a, b mgl32.Vec3, tol float32) bool {
	return a.Sub(b).Len() < tol
}

// quatNear 按绝对误差逐分量比较四元数
func quatNear(a, b mgl32.Quat, tol float32) bool {
	return vecNear(a.V, b.V, tol) && mgl32.Abs(a.W-b.W) < tol
}

package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/gonewx/picnic/pkg/config"
	"github.com/gonewx/picnic/pkg/ecs"
	"github.com/gonewx/picnic/pkg/game"
	"github.com/gonewx/picnic/pkg/systems"
	"github.com/gonewx/picnic/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// backgroundColor 画面底色
var backgroundColor = color.RGBA{R: 135, G: 190, B: 235, A: 255}

// PlayScene 野餐桌射击的唯一玩法场景
//
// 每帧顺序：
//  1. 输入（锁定鼠标、射击、瞄准）
//  2. 生成热狗和苹果
//  3. 子弹前进或到期复位
//  4. 热狗沿路径移动
//  5. 苹果运动与超时移除
//  6. 碰撞检测（仅子弹飞行中）
//  7. 逃脱热狗掉落、扣血、移除
//  8. 被击中热狗的死亡动画、移除
//  9. 回收本帧销毁的场景节点
type PlayScene struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	registry      *game.AssetRegistry
	config        *config.GameplayConfig

	inputSystem      *systems.InputSystem
	spawnSystem      *systems.SpawnSystem
	projectileSystem *systems.ProjectileSystem
	hotdogSystem     *systems.HotdogSystem
	appleSystem      *systems.AppleSystem
	collisionSystem  *systems.CollisionSystem
	renderSystem     *systems.RenderSystem

	hud *healthHUD
}

// NewPlayScene 加载场景描述并组装全部系统
//
// 参数:
//   - cfg: 玩法配置（已校验）
//   - desc: 场景描述（必须恰好包含一个相机）
//   - rng: 随机数来源
//
// 返回:
//   - error: 场景描述不满足加载要求时返回错误
func NewPlayScene(cfg *config.GameplayConfig, desc *game.SceneDescription, rng utils.RandomSource) (*PlayScene, error) {
	em := ecs.NewEntityManager()
	registry := game.NewAssetRegistry()
	if err := registry.Load(em, desc, cfg.OffscreenPosition); err != nil {
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}

	gs := game.NewGameState(cfg)
	if err := gs.BindScene(em, registry); err != nil {
		return nil, fmt.Errorf("failed to bind scene: %w", err)
	}

	s := &PlayScene{
		entityManager: em,
		gameState:     gs,
		registry:      registry,
		config:        cfg,
	}
	s.projectileSystem = systems.NewProjectileSystem(em, gs, gs.Aim.Bottle)
	s.spawnSystem = systems.NewSpawnSystem(em, gs, registry, cfg, rng)
	s.hotdogSystem = systems.NewHotdogSystem(em, gs, registry, cfg)
	s.appleSystem = systems.NewAppleSystem(em, gs, &cfg.Apple)
	s.collisionSystem = systems.NewCollisionSystem(em, gs, cfg, s.projectileSystem, s.hotdogSystem, s.appleSystem)
	s.inputSystem = systems.NewInputSystem(em, gs, s.projectileSystem, registry.Camera())
	s.renderSystem = systems.NewRenderSystem(em, registry.Camera())

	hud, err := newHealthHUD()
	if err != nil {
		return nil, fmt.Errorf("failed to create HUD: %w", err)
	}
	s.hud = hud

	log.Printf("[PlayScene] Ready: health=%d", gs.Health())
	return s, nil
}

// Update 读取输入后推进一帧
func (s *PlayScene) Update(deltaTime float64) {
	s.inputSystem.Update(deltaTime)
	s.Step(deltaTime)
}

// Step 推进一帧玩法逻辑（不读取输入）
func (s *PlayScene) Step(deltaTime float64) {
	s.spawnSystem.Update(deltaTime)
	s.projectileSystem.Update(deltaTime)
	s.hotdogSystem.UpdateMoving(deltaTime)
	s.appleSystem.Update(deltaTime)
	s.collisionSystem.Update(deltaTime)
	s.hotdogSystem.UpdateFalling(deltaTime)
	s.hotdogSystem.UpdateDying(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景节点和生命值
func (s *PlayScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.renderSystem.Draw(screen)
	s.hud.Draw(screen, s.gameState.HealthText())
}

// GameState 返回场景的游戏状态
func (s *PlayScene) GameState() *game.GameState {
	return s.gameState
}

// EntityManager 返回场景节点存储
func (s *PlayScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// InputSystem 返回输入系统（用于替换光标锁定回调）
func (s *PlayScene) InputSystem() *systems.InputSystem {
	return s.inputSystem
}

// Fire 发射子弹，等同于按下射击键
func (s *PlayScene) Fire() bool {
	return s.projectileSystem.Fire()
}

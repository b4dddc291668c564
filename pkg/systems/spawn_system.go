package systems

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gonewx/picnic/pkg/components"
	"github.com/gonewx/picnic/pkg/config"
	"github.com/gonewx/picnic/pkg/ecs"
	"github.com/gonewx/picnic/pkg/entities"
	"github.com/gonewx/picnic/pkg/game"
	"github.com/gonewx/picnic/pkg/utils"
)

// SpawnSystem 管理热狗和苹果的定时生成
//
// 两个计时器相互独立。计时器到点且该类目标的活动数量低于上限时生成一个新目标并清零；
// 达到上限时静默跳过，计时器继续累加，数量回落后的第一帧立即生成。
type SpawnSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	prototypes    entities.PrototypeSource
	config        *config.GameplayConfig
	rng           utils.RandomSource

	hotdogTimer components.TimerComponent
	appleTimer  components.TimerComponent
}

// NewSpawnSystem 创建生成系统
//
// 参数:
//   - em: 场景节点存储
//   - gs: 游戏状态（目标容器、编号分配）
//   - protos: 原型来源
//   - cfg: 玩法配置
//   - rng: 随机数来源（路径、抛出点、速度扰动）
func NewSpawnSystem(em *ecs.EntityManager, gs *game.GameState, protos entities.PrototypeSource, cfg *config.GameplayConfig, rng utils.RandomSource) *SpawnSystem {
	log.Printf("[SpawnSystem] Initialized: hotdog first=%.1fs interval=%.1fs cap=%d, apple first=%.1fs interval=%.1fs cap=%d",
		cfg.Spawn.Hotdog.FirstThreshold(), cfg.Spawn.Hotdog.Interval, cfg.Spawn.Hotdog.MaxActive,
		cfg.Spawn.Apple.FirstThreshold(), cfg.Spawn.Apple.Interval, cfg.Spawn.Apple.MaxActive)
	return &SpawnSystem{
		entityManager: em,
		gameState:     gs,
		prototypes:    protos,
		config:        cfg,
		rng:           rng,
		hotdogTimer:   components.TimerComponent{Name: "hotdog_spawn", TargetTime: cfg.Spawn.Hotdog.FirstThreshold()},
		appleTimer:    components.TimerComponent{Name: "apple_spawn", TargetTime: cfg.Spawn.Apple.FirstThreshold()},
	}
}

// Update 推进两个生成计时器
func (s *SpawnSystem) Update(deltaTime float64) {
	dt := float32(deltaTime)

	s.hotdogTimer.Advance(dt)
	if s.hotdogTimer.IsReady && len(s.gameState.Hotdogs) < s.config.Spawn.Hotdog.MaxActive {
		s.hotdogTimer.Restart(s.config.Spawn.Hotdog.Interval)
		s.spawnHotdog()
	}

	s.appleTimer.Advance(dt)
	if s.appleTimer.IsReady && len(s.gameState.Apples) < s.config.Spawn.Apple.MaxActive {
		s.appleTimer.Restart(s.config.Spawn.Apple.Interval)
		s.spawnApple()
	}
}

func (s *SpawnSystem) spawnHotdog() {
	points := utils.GenerateHotdogPath(s.rng, s.config.Hotdog)
	id := s.gameState.NextHotdogID()
	hotdog, err := entities.NewHotdog(s.entityManager, s.prototypes, id, points, s.config.Hotdog)
	if err != nil {
		log.Printf("[SpawnSystem] WARNING: Failed to spawn hotdog %d: %v", id, err)
		return
	}
	s.gameState.Hotdogs = append(s.gameState.Hotdogs, hotdog)
}

func (s *SpawnSystem) spawnApple() {
	cfg := s.config.Apple
	initPos := cfg.InitPos
	initPos[1] = utils.RandRange(s.rng, cfg.LaneRange.Min, cfg.LaneRange.Max)
	initVel := cfg.InitVel.Add(mgl32.Vec3{utils.RandRange(s.rng, cfg.VelocityJitter.Min, cfg.VelocityJitter.Max), 0, 0})

	id := s.gameState.NextAppleID()
	apple, err := entities.NewApple(s.entityManager, s.prototypes, id, initPos, initVel, cfg)
	if err != nil {
		log.Printf("[SpawnSystem] WARNING: Failed to spawn apple %d: %v", id, err)
		return
	}
	s.gameState.Apples = append(s.gameState.Apples, apple)
}

// HotdogTimer 返回热狗生成计时器（只读副本）
func (s *SpawnSystem) HotdogTimer() components.TimerComponent {
	return s.hotdogTimer
}

// AppleTimer 返回苹果生成计时器（只读副本）
func (s *SpawnSystem) AppleTimer() components.TimerComponent {
	return s.appleTimer
}

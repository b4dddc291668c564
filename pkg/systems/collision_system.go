package systems

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gonewx/picnic/pkg/components"
	"github.com/gonewx/picnic/pkg/config"
	"github.com/gonewx/picnic/pkg/ecs"
	"github.com/gonewx/picnic/pkg/game"
	"github.com/gonewx/picnic/pkg/utils"
)

// CollisionSystem 检测子弹与目标的碰撞
//
// 仅在子弹飞行中检测，探测点为子弹节点的世界位置，目标为以节点位置为中心的轴对齐盒。
// 检测顺序：
//  1. 移动中的热狗：第一个命中者转入死亡，命中标记移到子弹处，子弹复位
//  2. 飞行中的苹果：子弹复位后不再检测；否则第一个命中者转入翻滚并扣血，子弹复位
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	config        *config.GameplayConfig

	projectile *ProjectileSystem
	hotdogs    *HotdogSystem
	apples     *AppleSystem
}

// NewCollisionSystem 创建碰撞系统
//
// 参数:
//   - em: 场景节点存储
//   - gs: 游戏状态
//   - cfg: 玩法配置（伤害数值、命中标记偏移）
//   - projectile, hotdogs, apples: 命中后执行状态切换的系统
func NewCollisionSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.GameplayConfig, projectile *ProjectileSystem, hotdogs *HotdogSystem, apples *AppleSystem) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		gameState:     gs,
		config:        cfg,
		projectile:    projectile,
		hotdogs:       hotdogs,
		apples:        apples,
	}
}

// Update 执行一轮碰撞检测
func (s *CollisionSystem) Update(deltaTime float64) {
	if !s.gameState.Projectile.Shooting {
		return
	}

	tip := s.projectile.TipPosition()
	if s.checkHotdogs(tip) {
		return
	}
	s.checkApples(tip)
}

// checkHotdogs 返回是否命中了热狗
func (s *CollisionSystem) checkHotdogs(tip mgl32.Vec3) bool {
	var target *components.HotdogComponent
	for _, h := range s.gameState.Hotdogs {
		if h.Hit {
			continue
		}
		if utils.InBox(tip, utils.WorldPosition(s.entityManager, h.Body), h.Radius) {
			target = h
			break
		}
	}
	if target == nil {
		return false
	}

	s.hotdogs.Kill(target)
	if marker, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.gameState.Projectile.HitFX); ok {
		marker.Position = tip.Add(s.config.Projectile.HitMarkerOffset)
	}
	s.projectile.Reset()
	return true
}

func (s *CollisionSystem) checkApples(tip mgl32.Vec3) {
	for _, a := range s.gameState.Apples {
		if a.Hit {
			continue
		}
		if !utils.InBox(tip, utils.WorldPosition(s.entityManager, a.Node), a.Radius) {
			continue
		}
		if s.apples.Strike(a) {
			log.Printf("[CollisionSystem] Apple %d hit", a.ID)
			s.gameState.Damage(s.config.Health.AppleHitDamage, "apple hit")
			s.projectile.Reset()
		}
		return
	}
}

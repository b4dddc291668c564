package systems

import (
	"log"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gonewx/picnic/pkg/components"
	"github.com/gonewx/picnic/pkg/config"
	"github.com/gonewx/picnic/pkg/ecs"
	"github.com/gonewx/picnic/pkg/entities"
	"github.com/gonewx/picnic/pkg/game"
	"github.com/gonewx/picnic/pkg/utils"
)

// HotdogSystem 管理热狗的三个阶段容器
//
// 每帧按顺序调用：
//   - UpdateMoving: 沿路径移动，走完路径转入 FallingHotdogs
//   - UpdateFalling: 逃脱后沿 -z 掉落，满 FallDuration 扣血并移除
//   - UpdateDying: 被击中后先静止再翻滚下沉，满 DeathDuration 移除
//
// 每个容器用原地保留（retain）遍历：被移出的元素不会导致跳过下一个元素。
type HotdogSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	prototypes    entities.PrototypeSource
	config        *config.GameplayConfig
}

// NewHotdogSystem 创建热狗系统
func NewHotdogSystem(em *ecs.EntityManager, gs *game.GameState, protos entities.PrototypeSource, cfg *config.GameplayConfig) *HotdogSystem {
	return &HotdogSystem{
		entityManager: em,
		gameState:     gs,
		prototypes:    protos,
		config:        cfg,
	}
}

// UpdateMoving 推进移动中的热狗
func (s *HotdogSystem) UpdateMoving(deltaTime float64) {
	dt := float32(deltaTime)
	kept := s.gameState.Hotdogs[:0]
	for _, h := range s.gameState.Hotdogs {
		if s.stepPath(h, dt) {
			h.Phase = components.HotdogEscaped
			s.gameState.FallingHotdogs = append(s.gameState.FallingHotdogs, h)
			log.Printf("[HotdogSystem] Hotdog %d escaped", h.ID)
			continue
		}
		kept = append(kept, h)
	}
	clear(s.gameState.Hotdogs[len(kept):])
	s.gameState.Hotdogs = kept
}

// stepPath 沿当前线段前进，返回是否走完整条路径
func (s *HotdogSystem) stepPath(h *components.HotdogComponent, dt float32) bool {
	transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, h.Body)
	if !ok {
		return false
	}

	a := h.Points[h.CurrentIdx-1].Vec2()
	b := h.Points[h.CurrentIdx].Vec2()
	next, arrived := utils.StepAlongSegment(transform.Position.Vec2(), a, b, h.Speed, dt, s.config.Hotdog.PathEpsilon)
	transform.Position = mgl32.Vec3{next.X(), next.Y(), transform.Position.Z()}
	if !arrived {
		return false
	}

	if h.CurrentIdx < components.HotdogPathPoints-1 {
		h.CurrentIdx++
		return false
	}
	return true
}

// UpdateFalling 推进逃脱后掉下桌子的热狗
func (s *HotdogSystem) UpdateFalling(deltaTime float64) {
	dt := float32(deltaTime)
	kept := s.gameState.FallingHotdogs[:0]
	for _, h := range s.gameState.FallingHotdogs {
		h.FallTime += dt
		if h.FallTime >= h.FallDuration {
			s.gameState.Damage(s.config.Health.HotdogEscapeDamage, "hotdog escaped")
			entities.DestroyHotdog(s.entityManager, h)
			continue
		}
		if transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, h.Body); ok {
			transform.Position[2] -= s.config.Hotdog.FallSpeed * dt
		}
		kept = append(kept, h)
	}
	clear(s.gameState.FallingHotdogs[len(kept):])
	s.gameState.FallingHotdogs = kept
}

// UpdateDying 推进被击中热狗的死亡动画
//
// 阶段：
//   - DeathTime < DeathStandstill: 静止
//   - DeathTime < DeathDuration: 盘子显现，本体绕 x 轴旋转并沿 -z 下沉
//   - 之后: 移除
func (s *HotdogSystem) UpdateDying(deltaTime float64) {
	dt := float32(deltaTime)
	cfg := s.config.Hotdog
	kept := s.gameState.DyingHotdogs[:0]
	for _, h := range s.gameState.DyingHotdogs {
		h.DeathTime += dt
		switch {
		case h.DeathTime < h.DeathStandstill:
			h.Phase = components.HotdogDeathStandstill
		case h.DeathTime < h.DeathDuration:
			if h.Phase != components.HotdogDeathFalling {
				h.Phase = components.HotdogDeathFalling
				entities.RevealPlate(s.entityManager, s.prototypes, h)
			}
			if transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, h.Body); ok {
				spin := mgl32.QuatRotate(cfg.DeathSpinRate*dt, mgl32.Vec3{1, 0, 0})
				transform.Rotation = transform.Rotation.Mul(spin).Normalize()
				transform.Position[2] -= cfg.DeathSinkSpeed * dt
			}
		default:
			entities.DestroyHotdog(s.entityManager, h)
			continue
		}
		kept = append(kept, h)
	}
	clear(s.gameState.DyingHotdogs[len(kept):])
	s.gameState.DyingHotdogs = kept
}

// Kill 把移动中的热狗转入死亡容器
// 热狗不在 Hotdogs 中（已逃脱或已死亡）时返回 false
func (s *HotdogSystem) Kill(h *components.HotdogComponent) bool {
	for i, candidate := range s.gameState.Hotdogs {
		if candidate != h {
			continue
		}
		s.gameState.Hotdogs = slices.Delete(s.gameState.Hotdogs, i, i+1)
		h.Hit = true
		h.Phase = components.HotdogDeathStandstill
		s.gameState.DyingHotdogs = append(s.gameState.DyingHotdogs, h)
		log.Printf("[HotdogSystem] Hotdog %d hit", h.ID)
		return true
	}
	return false
}

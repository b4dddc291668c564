package systems

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gonewx/picnic/pkg/components"
	"github.com/gonewx/picnic/pkg/ecs"
	"github.com/gonewx/picnic/pkg/game"
	"github.com/gonewx/picnic/pkg/utils"
)

// ProjectileSystem 管理唯一的番茄酱子弹
//
// 状态机：
//   - Idle: 停放在 RestPosition
//   - Firing: 由 Fire 触发（生命值 > 0 且未在飞行），沿发射瞬间的准星方向直线飞行
//   - 飞行满 ExpireTime 或 Reset（命中）后回到 Idle，ShotTime 清零
type ProjectileSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	bottle        ecs.EntityID
}

// NewProjectileSystem 创建子弹系统
//
// 参数:
//   - em: 场景节点存储
//   - gs: 游戏状态（gs.Projectile 必须已绑定 Shot、Cursor 节点）
//   - bottle: 瓶子节点，发射时番茄酱的朝向跟随瓶子
func NewProjectileSystem(em *ecs.EntityManager, gs *game.GameState, bottle ecs.EntityID) *ProjectileSystem {
	return &ProjectileSystem{
		entityManager: em,
		gameState:     gs,
		bottle:        bottle,
	}
}

// Fire 尝试发射
// 失败（生命值为 0）或已在飞行时返回 false，状态不变
func (s *ProjectileSystem) Fire() bool {
	p := s.gameState.Projectile
	if s.gameState.IsGameOver() || p.Shooting {
		return false
	}

	// 方向：准星节点的局部到世界变换作用于准星位置后归一化
	cursorPos := mgl32.Vec3{}
	if cursor, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, p.Cursor); ok {
		cursorPos = cursor.Position
	}
	dir := utils.LocalToWorld(s.entityManager, p.Cursor).Mul4x1(cursorPos.Vec4(1)).Vec3()
	if dir.Len() == 0 {
		dir = mgl32.Vec3{0, 1, 0}
	}
	p.Direction = dir.Normalize()
	p.Shooting = true

	if shot, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, p.Shot); ok {
		rotation := mgl32.QuatIdent()
		if bottle, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.bottle); ok {
			rotation = bottle.Rotation
		}
		shot.Rotation = rotation.Mul(p.OrigRotation)
	}

	log.Printf("[ProjectileSystem] Fired: dir=%v", p.Direction)
	return true
}

// Update 推进飞行中的子弹
func (s *ProjectileSystem) Update(deltaTime float64) {
	p := s.gameState.Projectile
	if !p.Shooting {
		return
	}

	dt := float32(deltaTime)
	p.ShotTime += dt
	if p.ShotTime < p.ExpireTime {
		if shot, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, p.Shot); ok {
			shot.Position = shot.Position.Add(p.Direction.Mul(dt * p.Speed))
		}
		return
	}

	log.Printf("[ProjectileSystem] Shot expired after %.2fs", p.ShotTime)
	s.Reset()
}

// Reset 子弹回到停放位置
func (s *ProjectileSystem) Reset() {
	p := s.gameState.Projectile
	p.Shooting = false
	p.ShotTime = 0
	if shot, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, p.Shot); ok {
		shot.Position = p.RestPosition
	}
}

// TipPosition 返回子弹当前位置（碰撞探测点）
func (s *ProjectileSystem) TipPosition() mgl32.Vec3 {
	return utils.WorldPosition(s.entityManager, s.gameState.Projectile.Shot)
}

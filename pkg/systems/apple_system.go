package systems

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gonewx/picnic/pkg/components"
	"github.com/gonewx/picnic/pkg/config"
	"github.com/gonewx/picnic/pkg/ecs"
	"github.com/gonewx/picnic/pkg/entities"
	"github.com/gonewx/picnic/pkg/game"
	"github.com/gonewx/picnic/pkg/utils"
)

// AppleSystem 推进苹果运动并移除超时的苹果
//
// 飞行中：位置由闭式抛物线 ApplePosition(t) 给出，同时绕模型局部 y 轴自转。
// 翻滚中：沿 +y 远离、绕 x 轴翻转。
// 两种状态在 Time >= TimeOut 时同样被移除，与是否被击中无关。
type AppleSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	config        *config.AppleConfig
}

// NewAppleSystem 创建苹果系统
func NewAppleSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.AppleConfig) *AppleSystem {
	return &AppleSystem{
		entityManager: em,
		gameState:     gs,
		config:        cfg,
	}
}

// Update 推进所有苹果
func (s *AppleSystem) Update(deltaTime float64) {
	dt := float32(deltaTime)
	kept := s.gameState.Apples[:0]
	for _, a := range s.gameState.Apples {
		a.Time += dt
		if a.Time >= a.TimeOut {
			entities.DestroyApple(s.entityManager, a)
			continue
		}
		s.move(a, dt)
		kept = append(kept, a)
	}
	clear(s.gameState.Apples[len(kept):])
	s.gameState.Apples = kept
}

func (s *AppleSystem) move(a *components.AppleComponent, dt float32) {
	transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, a.Node)
	if !ok {
		return
	}

	if a.Phase == components.AppleTumbling {
		spin := mgl32.QuatRotate(s.config.TumbleSpinRate*dt, mgl32.Vec3{1, 0, 0})
		transform.Rotation = transform.Rotation.Mul(spin).Normalize()
		transform.Position[1] += s.config.TumbleSpeed * dt
		return
	}

	transform.Position = utils.ApplePosition(a.InitPos, a.InitVel, s.config.Gravity, a.Time)
	spin := mgl32.QuatRotate(s.config.SpinRate*dt, mgl32.Vec3{0, 1, 0})
	transform.Rotation = transform.Rotation.Mul(spin).Normalize()
}

// Strike 把飞行中的苹果切换为翻滚
// 已被击中的苹果返回 false，不会再次造成伤害
func (s *AppleSystem) Strike(a *components.AppleComponent) bool {
	if a.Hit || a.Phase != components.AppleFlying {
		return false
	}
	a.Hit = true
	a.Phase = components.AppleTumbling
	return true
}

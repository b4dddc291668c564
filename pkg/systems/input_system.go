package systems

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gonewx/picnic/pkg/components"
	"github.com/gonewx/picnic/pkg/ecs"
	"github.com/gonewx/picnic/pkg/game"
	"github.com/gonewx/picnic/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputSystem 把玩家输入转换为瞄准和射击
//
// 处理顺序：释放锁定 → 获取锁定 → 射击 → 瞄准旋转。
// 生命值为 0 时射击和瞄准都被忽略；鼠标锁定的切换仍然生效。
type InputSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	projectile    *ProjectileSystem
	camera        ecs.EntityID

	tracker utils.PointerTracker

	// SetCursorLocked 切换光标捕获模式，为 nil 时只更新 AimComponent
	SetCursorLocked func(locked bool)
}

// NewInputSystem 创建输入系统
//
// 参数:
//   - em: 场景节点存储
//   - gs: 游戏状态（gs.Aim.Bottle 必须已绑定）
//   - projectile: 射击时调用 Fire
//   - camera: 相机节点，瞄准灵敏度取其 FovY
func NewInputSystem(em *ecs.EntityManager, gs *game.GameState, projectile *ProjectileSystem, camera ecs.EntityID) *InputSystem {
	return &InputSystem{
		entityManager: em,
		gameState:     gs,
		projectile:    projectile,
		camera:        camera,
		SetCursorLocked: func(locked bool) {
			if locked {
				ebiten.SetCursorMode(ebiten.CursorModeCaptured)
			} else {
				ebiten.SetCursorMode(ebiten.CursorModeVisible)
			}
		},
	}
}

// Update 读取本帧输入并应用
func (s *InputSystem) Update(deltaTime float64) {
	s.Apply(utils.PollInput(&s.tracker))
}

// Apply 应用一帧的输入事件
func (s *InputSystem) Apply(in utils.InputState) {
	aim := s.gameState.Aim
	if in.ReleaseAim && aim.Locked {
		s.setLocked(false)
	}
	if in.AcquireAim && !aim.Locked {
		s.setLocked(true)
	}
	if in.Fire {
		s.projectile.Fire()
	}
	if in.HasMotion() {
		s.Look(in.MotionX, in.MotionY, in.WindowWidth, in.WindowHeight)
	}
}

func (s *InputSystem) setLocked(locked bool) {
	s.gameState.Aim.Locked = locked
	s.tracker.Reset()
	if s.SetCursorLocked != nil {
		s.SetCursorLocked(locked)
	}
	log.Printf("[InputSystem] Aim locked: %v", locked)
}

// Look 按鼠标移动旋转瓶子
//
// 水平移动绕瓶子局部 y 轴，垂直移动绕局部 x 轴；
// 角度 = 移动像素 / 窗口尺寸 × 相机 fovy。
// 未锁定、生命值为 0 或窗口尺寸无效时忽略。
func (s *InputSystem) Look(dx, dy float64, windowWidth, windowHeight int) bool {
	if !s.gameState.Aim.Locked || s.gameState.IsGameOver() {
		return false
	}
	if windowWidth <= 0 || windowHeight <= 0 {
		return false
	}
	bottle, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.gameState.Aim.Bottle)
	if !ok {
		return false
	}

	fovy := float32(1.0)
	if cam, ok := ecs.GetComponent[*components.CameraComponent](s.entityManager, s.camera); ok {
		fovy = cam.FovY
	}
	yaw := float32(dx/float64(windowWidth)) * fovy
	pitch := float32(-dy/float64(windowHeight)) * fovy

	bottle.Rotation = bottle.Rotation.
		Mul(mgl32.QuatRotate(yaw, mgl32.Vec3{0, 1, 0})).
		Mul(mgl32.QuatRotate(pitch, mgl32.Vec3{1, 0, 0})).
		Normalize()
	return true
}

package game

import (
	"fmt"
	"log"

	"github.com/gonewx/picnic/pkg/components"
	"github.com/gonewx/picnic/pkg/config"
	"github.com/gonewx/picnic/pkg/ecs"
)

// GameState 存储一局游戏的全部玩法状态
//
// 包括生命值、各阶段的目标容器、子弹和瞄准状态。
// 由 PlayScene 创建并传给各个系统；单线程访问，不加锁。
//
// 热狗容器不变式：同一个热狗在任一时刻至多出现在
// Hotdogs / FallingHotdogs / DyingHotdogs 中的一个里，移除后不再出现。
type GameState struct {
	health    int // 当前生命值，范围 [0, maxHealth]
	maxHealth int // 初始生命值

	Hotdogs        []*components.HotdogComponent // 沿路径移动中
	FallingHotdogs []*components.HotdogComponent // 逃脱，正在掉下桌子
	DyingHotdogs   []*components.HotdogComponent // 被击中，正在播放死亡动画
	Apples         []*components.AppleComponent  // 飞行中或翻滚中

	Projectile *components.ProjectileComponent
	Aim        *components.AimComponent

	nextHotdogID int
	nextAppleID  int
}

// NewGameState 按配置创建初始状态
func NewGameState(cfg *config.GameplayConfig) *GameState {
	return &GameState{
		health:         cfg.Health.Initial,
		maxHealth:      cfg.Health.Initial,
		Hotdogs:        make([]*components.HotdogComponent, 0),
		FallingHotdogs: make([]*components.HotdogComponent, 0),
		DyingHotdogs:   make([]*components.HotdogComponent, 0),
		Apples:         make([]*components.AppleComponent, 0),
		Projectile: &components.ProjectileComponent{
			Speed:        cfg.Projectile.Speed,
			ExpireTime:   cfg.Projectile.ExpireTime,
			RestPosition: cfg.Projectile.RestPosition,
		},
		Aim: &components.AimComponent{},
	}
}

// Health 返回当前生命值
func (gs *GameState) Health() int {
	return gs.health
}

// MaxHealth 返回初始生命值
func (gs *GameState) MaxHealth() int {
	return gs.maxHealth
}

// Damage 扣除生命值，结果不低于 0
// 返回实际扣除的数值
func (gs *GameState) Damage(amount int, reason string) int {
	if amount <= 0 || gs.health == 0 {
		return 0
	}
	before := gs.health
	gs.health -= amount
	if gs.health < 0 {
		gs.health = 0
	}
	log.Printf("[GameState] Health %d -> %d (%s)", before, gs.health, reason)
	if gs.health == 0 {
		log.Printf("[GameState] Game over")
	}
	return before - gs.health
}

// IsGameOver 生命值归零即失败
// 失败后不再接受射击和瞄准输入，也不再扣血
func (gs *GameState) IsGameOver() bool {
	return gs.health <= 0
}

// HealthText 返回 HUD 上显示的生命值文字
func (gs *GameState) HealthText() string {
	text := fmt.Sprintf("Health: %d", gs.health)
	if gs.IsGameOver() {
		text += config.HUDLoseSuffix
	}
	return text
}

// NextHotdogID 分配下一个热狗编号
func (gs *GameState) NextHotdogID() int {
	id := gs.nextHotdogID
	gs.nextHotdogID++
	return id
}

// NextAppleID 分配下一个苹果编号
func (gs *GameState) NextAppleID() int {
	id := gs.nextAppleID
	gs.nextAppleID++
	return id
}

// FindHotdog 在三个热狗容器中查找编号为 id 的热狗
// 返回热狗和所在阶段；不存在时返回 nil, HotdogRemoved
func (gs *GameState) FindHotdog(id int) (*components.HotdogComponent, components.HotdogPhase) {
	for _, group := range [][]*components.HotdogComponent{gs.Hotdogs, gs.FallingHotdogs, gs.DyingHotdogs} {
		for _, h := range group {
			if h.ID == id {
				return h, h.Phase
			}
		}
	}
	return nil, components.HotdogRemoved
}

// LiveNodes 返回当前所有目标拥有的场景节点（按容器顺序）
func (gs *GameState) LiveNodes() []ecs.EntityID {
	nodes := make([]ecs.EntityID, 0, 2*(len(gs.Hotdogs)+len(gs.FallingHotdogs)+len(gs.DyingHotdogs))+len(gs.Apples))
	for _, group := range [][]*components.HotdogComponent{gs.Hotdogs, gs.FallingHotdogs, gs.DyingHotdogs} {
		for _, h := range group {
			nodes = append(nodes, h.Body, h.Plate)
		}
	}
	for _, a := range gs.Apples {
		nodes = append(nodes, a.Node)
	}
	return nodes
}

// BindScene 把场景中的玩家节点绑定到子弹和瞄准状态
//
// 子弹节点 Ketchup 放到停放位置，并记录其原始旋转（发射时与瓶子旋转合成）。
func (gs *GameState) BindScene(em *ecs.EntityManager, reg *AssetRegistry) error {
	if !reg.IsLoaded() {
		return fmt.Errorf("asset registry not loaded")
	}
	nodes := make(map[string]ecs.EntityID, 4)
	for _, name := range []string{NodeBottle, NodeCursor, NodeKetchup, NodeHit} {
		id, ok := reg.Node(name)
		if !ok {
			return fmt.Errorf("scene is missing node %q", name)
		}
		nodes[name] = id
	}

	p := gs.Projectile
	p.Shot = nodes[NodeKetchup]
	p.Cursor = nodes[NodeCursor]
	p.HitFX = nodes[NodeHit]
	if shot, ok := ecs.GetComponent[*components.TransformComponent](em, p.Shot); ok {
		p.OrigRotation = shot.Rotation
		shot.Position = p.RestPosition
	}
	gs.Aim.Bottle = nodes[NodeBottle]
	return nil
}

package entities

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gonewx/picnic/pkg/components"
	"github.com/gonewx/picnic/pkg/config"
	"github.com/gonewx/picnic/pkg/ecs"
	"github.com/gonewx/picnic/pkg/game"
)

// NewHotdog 创建热狗及其两个场景节点
//
// 本体节点放在路径起点 points[0]；盘子节点挂在本体下，初始缩放为 0，
// 直到死亡下落阶段才显现。
//
// 参数:
//   - em: 场景节点存储
//   - protos: 原型来源（需要 Hotdog、Plate 原型）
//   - id: 热狗编号
//   - points: 三点移动路径
//   - cfg: 热狗配置（速度、碰撞盒、动画时长）
//
// 返回:
//   - *components.HotdogComponent: 处于 HotdogMoving 阶段的热狗
//   - error: 协作者为空或原型缺失时返回错误，此时不创建任何节点
func NewHotdog(em *ecs.EntityManager, protos PrototypeSource, id int, points [3]mgl32.Vec3, cfg config.HotdogConfig) (*components.HotdogComponent, error) {
	if err := checkCollaborators(em, protos); err != nil {
		return nil, err
	}
	if _, ok := protos.Prototype(game.NodePlate); !ok {
		return nil, fmt.Errorf("prototype %q not registered", game.NodePlate)
	}

	body, bodyTransform, err := spawnNode(em, protos, game.NodeHotdog, fmt.Sprintf("Hotdog_%d", id))
	if err != nil {
		return nil, err
	}
	bodyTransform.Position = points[0]

	plate, plateTransform, err := spawnNode(em, protos, game.NodePlate, fmt.Sprintf("Plate_%d", id))
	if err != nil {
		em.DestroyEntity(body)
		return nil, err
	}
	plateTransform.Parent = body
	plateTransform.Scale = mgl32.Vec3{}

	log.Printf("[HotdogFactory] Created hotdog %d: path=%v", id, points)

	return &components.HotdogComponent{
		ID:              id,
		Body:            body,
		Plate:           plate,
		Points:          points,
		CurrentIdx:      1,
		Speed:           cfg.Speed,
		Radius:          cfg.Radius,
		Phase:           components.HotdogMoving,
		DeathStandstill: cfg.DeathStandstill,
		DeathDuration:   cfg.DeathDuration,
		FallDuration:    cfg.FallDuration,
	}, nil
}

// DestroyHotdog 销毁热狗拥有的两个场景节点
// 节点在本帧末尾 RemoveMarkedEntities 时真正移除
func DestroyHotdog(em *ecs.EntityManager, hotdog *components.HotdogComponent) {
	em.DestroyEntity(hotdog.Body)
	em.DestroyEntity(hotdog.Plate)
	hotdog.Phase = components.HotdogRemoved
	log.Printf("[HotdogFactory] Destroyed hotdog %d", hotdog.ID)
}

// RevealPlate 把盘子节点恢复为原型缩放
func RevealPlate(em *ecs.EntityManager, protos PrototypeSource, hotdog *components.HotdogComponent) {
	proto, ok := protos.Prototype(game.NodePlate)
	if !ok {
		return
	}
	if plate, ok := ecs.GetComponent[*components.TransformComponent](em, hotdog.Plate); ok {
		plate.Scale = proto.Transform.Scale
	}
}

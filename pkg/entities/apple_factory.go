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

// NewApple 创建苹果及其场景节点
//
// 参数:
//   - em: 场景节点存储
//   - protos: 原型来源（需要 Apple 原型）
//   - id: 苹果编号
//   - initPos, initVel: 抛出位置和初速度
//   - cfg: 苹果配置（存活时长、碰撞盒）
func NewApple(em *ecs.EntityManager, protos PrototypeSource, id int, initPos, initVel mgl32.Vec3, cfg config.AppleConfig) (*components.AppleComponent, error) {
	if err := checkCollaborators(em, protos); err != nil {
		return nil, err
	}

	node, transform, err := spawnNode(em, protos, game.NodeApple, fmt.Sprintf("Apple_%d", id))
	if err != nil {
		return nil, err
	}
	transform.Position = initPos

	log.Printf("[AppleFactory] Created apple %d: pos=%v vel=%v", id, initPos, initVel)

	return &components.AppleComponent{
		ID:      id,
		Node:    node,
		InitPos: initPos,
		InitVel: initVel,
		TimeOut: cfg.TimeOut,
		Radius:  cfg.Radius,
		Phase:   components.AppleFlying,
	}, nil
}

// DestroyApple 销毁苹果拥有的场景节点
func DestroyApple(em *ecs.EntityManager, apple *components.AppleComponent) {
	em.DestroyEntity(apple.Node)
	apple.Phase = components.AppleRemoved
	log.Printf("[AppleFactory] Destroyed apple %d (hit=%v)", apple.ID, apple.Hit)
}

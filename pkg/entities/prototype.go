package entities

import (
	"fmt"

	"github.com/gonewx/picnic/pkg/components"
	"github.com/gonewx/picnic/pkg/ecs"
	"github.com/gonewx/picnic/pkg/game"
)

// PrototypeSource 提供可复制的节点原型
// *game.AssetRegistry 实现了该接口
type PrototypeSource interface {
	Prototype(name string) (game.Prototype, bool)
}

// spawnNode 按原型创建一个场景节点
// 复制原型的旋转、缩放和可渲染引用；位置和父节点由调用方设置
func spawnNode(em *ecs.EntityManager, protos PrototypeSource, protoName, nodeName string) (ecs.EntityID, *components.TransformComponent, error) {
	proto, ok := protos.Prototype(protoName)
	if !ok {
		return ecs.InvalidEntity, nil, fmt.Errorf("prototype %q not registered", protoName)
	}

	id := em.CreateEntity()
	transform := components.NewTransformComponent(nodeName)
	transform.Rotation = proto.Transform.Rotation
	transform.Scale = proto.Transform.Scale
	em.AddComponent(id, transform)

	renderable := proto.Renderable
	em.AddComponent(id, &renderable)

	return id, transform, nil
}

func checkCollaborators(em *ecs.EntityManager, protos PrototypeSource) error {
	if em == nil {
		return fmt.Errorf("entity manager cannot be nil")
	}
	if protos == nil {
		return fmt.Errorf("prototype source cannot be nil")
	}
	return nil
}

package utils

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gonewx/picnic/pkg/components"
	"github.com/gonewx/picnic/pkg/ecs"
)

// maxHierarchyDepth 防止父节点成环时无限循环
const maxHierarchyDepth = 32

// LocalToWorld 计算节点的局部到世界变换矩阵（沿父节点链向上累乘）
// 节点不存在或没有 TransformComponent 时返回单位矩阵
func LocalToWorld(em *ecs.EntityManager, id ecs.EntityID) mgl32.Mat4 {
	result := mgl32.Ident4()
	current := id
	for depth := 0; depth < maxHierarchyDepth && current != ecs.InvalidEntity; depth++ {
		transform, ok := ecs.GetComponent[*components.TransformComponent](em, current)
		if !ok {
			break
		}
		result = transform.LocalMatrix().Mul4(result)
		current = transform.Parent
	}
	return result
}

// WorldPosition 返回节点原点在世界坐标中的位置
func WorldPosition(em *ecs.EntityManager, id ecs.EntityID) mgl32.Vec3 {
	return LocalToWorld(em, id).Col(3).Vec3()
}

// InBox 判断点 p 是否位于以 center 为中心、半尺寸为 radius 的轴对齐盒内（含边界）
func InBox(p, center, radius mgl32.Vec3) bool {
	lo := center.Sub(radius)
	hi := center.Add(radius)
	return p.X() >= lo.X() && p.X() <= hi.X() &&
		p.Y() >= lo.Y() && p.Y() <= hi.Y() &&
		p.Z() >= lo.Z() && p.Z() <= hi.Z()
}

package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gonewx/picnic/pkg/ecs"
)

// TransformComponent 场景节点的变换
// 用于所有可视节点（瓶子、准星、番茄酱、热狗、盘子、苹果等）
//
// 变换顺序：缩放 -> 旋转 -> 平移，再乘以父节点的变换
type TransformComponent struct {
	Name     string       // 节点名称，仅用于日志和调试
	Parent   ecs.EntityID // 父节点，InvalidEntity 表示根节点
	Position mgl32.Vec3   // 相对父节点的位置
	Rotation mgl32.Quat   // 相对父节点的旋转
	Scale    mgl32.Vec3   // 相对父节点的缩放
}

// NewTransformComponent 创建单位变换
func NewTransformComponent(name string) *TransformComponent {
	return &TransformComponent{
		Name:     name,
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// LocalMatrix 返回本节点的局部变换矩阵（不含父节点）
func (t *TransformComponent) LocalMatrix() mgl32.Mat4 {
	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return translate.Mul4(t.Rotation.Mat4()).Mul4(scale)
}

package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gonewx/picnic/pkg/ecs"
)

// ApplePhase 苹果生命周期阶段
type ApplePhase int

const (
	// AppleFlying 按抛物线飞行（可被击中）
	AppleFlying ApplePhase = iota
	// AppleTumbling 被击中后向远处翻滚
	AppleTumbling
	// AppleRemoved 已超时移除
	AppleRemoved
)

// String 返回阶段名称（用于日志）
func (p ApplePhase) String() string {
	switch p {
	case AppleFlying:
		return "flying"
	case AppleTumbling:
		return "tumbling"
	case AppleRemoved:
		return "removed"
	}
	return "unknown"
}

// AppleComponent 苹果目标
// 苹果独占一个场景节点；无论是否被击中，存活 TimeOut 后移除
type AppleComponent struct {
	ID   int          // 单调递增编号
	Node ecs.EntityID // 苹果节点

	InitPos mgl32.Vec3 // 抛出位置
	InitVel mgl32.Vec3 // 初速度
	Time    float32    // 已存活时间
	TimeOut float32    // 存活上限
	Radius  mgl32.Vec3 // 碰撞盒半尺寸

	Phase ApplePhase
	Hit   bool // 一旦置为 true 不再清除
}

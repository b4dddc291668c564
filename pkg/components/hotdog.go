package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gonewx/picnic/pkg/ecs"
)

// HotdogPhase 热狗生命周期阶段
type HotdogPhase int

const (
	// HotdogMoving 沿三点折线路径移动（可被击中）
	HotdogMoving HotdogPhase = iota
	// HotdogEscaped 走完路径未被击中，正在掉下桌子
	HotdogEscaped
	// HotdogDeathStandstill 被击中后静止
	HotdogDeathStandstill
	// HotdogDeathFalling 被击中后翻滚下沉，盘子显现
	HotdogDeathFalling
	// HotdogRemoved 已移除，节点已销毁
	HotdogRemoved
)

// String 返回阶段名称（用于日志）
func (p HotdogPhase) String() string {
	switch p {
	case HotdogMoving:
		return "moving"
	case HotdogEscaped:
		return "escaped"
	case HotdogDeathStandstill:
		return "death_standstill"
	case HotdogDeathFalling:
		return "death_falling"
	case HotdogRemoved:
		return "removed"
	}
	return "unknown"
}

// HotdogPathPoints 热狗路径点数量
const HotdogPathPoints = 3

// HotdogComponent 热狗目标
//
// 热狗独占两个场景节点：本体 Body 和作为其子节点的盘子 Plate。
// 节点随热狗创建，随热狗移除而销毁。
type HotdogComponent struct {
	ID    int          // 单调递增编号
	Body  ecs.EntityID // 热狗本体节点
	Plate ecs.EntityID // 盘子节点（父节点为 Body，初始缩放为 0）

	Points     [HotdogPathPoints]mgl32.Vec3 // 路径点，Points[0] 为出生位置
	CurrentIdx int                          // 当前目标路径点（1 或 2）
	Speed      float32                      // 移动速度
	Radius     mgl32.Vec3                   // 碰撞盒半尺寸

	Phase HotdogPhase
	Hit   bool // 是否被击中

	// 死亡动画
	DeathTime       float32 // 被击中后经过的时间
	DeathStandstill float32 // 静止时长
	DeathDuration   float32 // 从被击中到移除的总时长

	// 掉下桌子动画
	FallTime     float32 // 开始掉落后经过的时间
	FallDuration float32 // 掉落时长，结束时扣血并移除
}

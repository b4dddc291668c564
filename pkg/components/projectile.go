package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gonewx/picnic/pkg/ecs"
)

// ProjectileComponent 番茄酱子弹（全局唯一）
//
// 状态机：Idle（停放在 RestPosition）-> Firing（沿 Direction 直线飞行）-> Idle。
// 飞行超过 ExpireTime 或命中任意目标时复位。
type ProjectileComponent struct {
	Shot   ecs.EntityID // 番茄酱节点
	Cursor ecs.EntityID // 准星节点，发射方向由其世界位置决定
	HitFX  ecs.EntityID // 击中标记节点

	Direction    mgl32.Vec3 // 飞行方向（单位向量）
	Shooting     bool       // 是否飞行中
	ShotTime     float32    // 本次飞行已用时间
	ExpireTime   float32    // 最长飞行时间
	Speed        float32    // 飞行速度
	RestPosition mgl32.Vec3 // 停放位置

	OrigRotation mgl32.Quat // 番茄酱节点的初始旋转，发射时与瓶子旋转组合
}

package utils

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gonewx/picnic/pkg/config"
)

// Trajectory Functions (轨迹函数)
//
// 热狗：三点折线路径，沿每段匀速移动，用"点在线段上"判定到达。
// 苹果：闭式抛物线，x 匀速、y 恒定、z 受重力影响。

// IsBetween 判断点 c 是否在线段 ab 上
//
// 条件：
//   - 叉积 |(c-a) × (b-a)| <= epsilon（共线）
//   - 点积 (c-a)·(b-a) ∈ [0, |b-a|²]（位于两端点之间）
//
// c == b 时返回 true；c 沿直线越过 b 时返回 false。
func IsBetween(a, b, c mgl32.Vec2, epsilon float32) bool {
	crossProduct := (c.Y()-a.Y())*(b.X()-a.X()) - (c.X()-a.X())*(b.Y()-a.Y())
	if crossProduct > epsilon || crossProduct < -epsilon {
		return false
	}

	dotProduct := (c.X()-a.X())*(b.X()-a.X()) + (c.Y()-a.Y())*(b.Y()-a.Y())
	if dotProduct < 0 {
		return false
	}

	squaredLength := (b.X()-a.X())*(b.X()-a.X()) + (b.Y()-a.Y())*(b.Y()-a.Y())
	return dotProduct <= squaredLength
}

// GenerateHotdogPath 生成热狗的三点移动路径
//
// Points[0] 为出生位置 (x, SpawnY, Depth)；后续点的 x 在 XRange 内随机，
// y 为前一点 y 乘以 [0,1) 随机数；最后一点 y 强制为 0（桌子边缘）。
func GenerateHotdogPath(rng RandomSource, cfg config.HotdogConfig) [3]mgl32.Vec3 {
	var points [3]mgl32.Vec3
	points[0] = mgl32.Vec3{RandRange(rng, cfg.XRange.Min, cfg.XRange.Max), cfg.SpawnY, cfg.Depth}
	for i := 1; i < len(points); i++ {
		x := RandRange(rng, cfg.XRange.Min, cfg.XRange.Max)
		y := rng.Float32() * points[i-1].Y()
		points[i] = mgl32.Vec3{x, y, cfg.Depth}
	}
	points[2][1] = 0
	return points
}

// StepAlongSegment 沿线段 a->b 从 pos 前进 speed*dt
//
// 返回:
//   - mgl32.Vec2: 前进后的位置（arrived 为 true 时无意义，调用方应吸附到 b）
//   - bool: 前进后的位置已不在线段上（到达或越过 b），或线段退化为点
func StepAlongSegment(pos, a, b mgl32.Vec2, speed, dt, epsilon float32) (mgl32.Vec2, bool) {
	segment := b.Sub(a)
	if segment.Len() == 0 {
		return b, true
	}
	next := pos.Add(segment.Normalize().Mul(speed * dt))
	if !IsBetween(a, b, next, epsilon) {
		return b, true
	}
	return next, false
}

// ApplePosition 计算苹果在时间 t 的位置
//
// 公式：
//
//	x(t) = x0 + vx·t
//	y(t) = y0
//	z(t) = z0 + vz·t + (g/2)·t²
func ApplePosition(initPos, initVel mgl32.Vec3, gravity, t float32) mgl32.Vec3 {
	x := initPos.X() + initVel.X()*t
	z := initPos.Z() + initVel.Z()*t + (gravity/2)*t*t
	return mgl32.Vec3{x, initPos.Y(), z}
}

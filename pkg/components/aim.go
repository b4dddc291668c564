package components

import "github.com/gonewx/picnic/pkg/ecs"

// AimComponent 瞄准状态
// 鼠标按下后锁定指针，锁定期间鼠标相对位移旋转 Bottle 节点；Esc 解除锁定
type AimComponent struct {
	Bottle ecs.EntityID // 被旋转的瓶子节点
	Locked bool         // 指针是否锁定
}

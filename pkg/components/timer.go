package components

// TimerComponent 生成计时器
// 每帧累加经过的时间，达到 TargetTime 后 IsReady 置位；
// 触发生成后 CurrentTime 清零，TargetTime 切换为常规间隔
type TimerComponent struct {
	Name        string  // 计时器名称，如 "hotdog_spawn"
	TargetTime  float32 // 目标时间（秒）
	CurrentTime float32 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成
}

// Advance 累加时间并刷新 IsReady
func (t *TimerComponent) Advance(dt float32) {
	t.CurrentTime += dt
	t.IsReady = t.CurrentTime >= t.TargetTime
}

// Restart 清零并设置下一轮目标时间
func (t *TimerComponent) Restart(target float32) {
	t.CurrentTime = 0
	t.TargetTime = target
	t.IsReady = false
}

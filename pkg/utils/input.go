// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的输入事件
type InputState struct {
	Fire       bool // 空格键刚按下
	ReleaseAim bool // Esc 刚按下：释放鼠标锁定
	AcquireAim bool // 鼠标左键刚按下：锁定鼠标

	// 鼠标相对上一帧的移动（像素）
	MotionX, MotionY float64

	// 窗口尺寸，用于把像素移动换算为角度
	WindowWidth, WindowHeight int
}

// HasMotion 本帧是否有鼠标移动
func (s InputState) HasMotion() bool {
	return s.MotionX != 0 || s.MotionY != 0
}

// PointerTracker 记录上一帧的光标位置，换算出相对移动
type PointerTracker struct {
	lastX, lastY int
	hasLast      bool
}

// Track 记录新的光标位置，返回相对上一次的位移
// 第一次调用只记录位置，位移为 0
func (t *PointerTracker) Track(x, y int) (dx, dy float64) {
	if t.hasLast {
		dx = float64(x - t.lastX)
		dy = float64(y - t.lastY)
	}
	t.lastX, t.lastY = x, y
	t.hasLast = true
	return dx, dy
}

// Reset 丢弃记录的位置（光标模式切换后坐标会跳变）
func (t *PointerTracker) Reset() {
	t.hasLast = false
}

// PollInput 读取本帧的键盘、鼠标状态
func PollInput(tracker *PointerTracker) InputState {
	state := InputState{
		Fire:       inpututil.IsKeyJustPressed(ebiten.KeySpace),
		ReleaseAim: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		AcquireAim: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
	state.MotionX, state.MotionY = tracker.Track(ebiten.CursorPosition())
	state.WindowWidth, state.WindowHeight = ebiten.WindowSize()
	return state
}

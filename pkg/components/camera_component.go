package components

// CameraComponent 透视相机参数
// 相机的位置和朝向由同一实体上的 TransformComponent 决定
type CameraComponent struct {
	// FovY 垂直视场角（弧度）
	// 瞄准时鼠标相对位移按窗口尺寸归一化后乘以 FovY 得到旋转角度
	FovY float32

	// Aspect 宽高比，每帧绘制时按可绘制区域更新
	Aspect float32

	// Near 近裁剪面
	Near float32

	// Far 远裁剪面
	Far float32
}

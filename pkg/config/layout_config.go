package config

// 窗口与 HUD 布局常量
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 1280

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 720

	// GameWindowTitle 窗口标题
	GameWindowTitle = "Picnic Defense"

	// HUDTextHeight HUD 文字高度（裁剪空间单位，屏幕高度对应 2.0）
	HUDTextHeight = 0.09

	// HUDOutlineOffset 描边文字相对填充文字的偏移（像素）
	HUDOutlineOffset = 2.0

	// HUDLoseSuffix 生命值归零后追加在生命值后的提示
	HUDLoseSuffix = "       YOU LOSE!!!!"

	// DefaultTickRate 固定步长模式下每秒更新次数
	DefaultTickRate = 60
)

// Package app 提供游戏应用的核心包装器
//
// 该包把配置加载、场景组装从 main 包中提取出来，main 只负责解析命令行参数。
package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gonewx/picnic/pkg/config"
	"github.com/gonewx/picnic/pkg/embedded"
	"github.com/gonewx/picnic/pkg/game"
	"github.com/gonewx/picnic/pkg/scenes"
	"github.com/gonewx/picnic/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// DefaultGameplayConfigPath 嵌入的玩法配置
	DefaultGameplayConfigPath = "data/gameplay.yaml"
	// DefaultScenePath 嵌入的场景描述
	DefaultScenePath = "data/picnic.yaml"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// GameplayConfigPath 磁盘上的玩法配置文件，为空时使用嵌入的配置
	GameplayConfigPath string
	// ScenePath 磁盘上的场景描述文件，为空时使用嵌入的场景
	ScenePath string
	// FixedStep 使用固定的 1/60 秒步长，否则按实际 TPS 计算
	FixedStep bool
	// Seed 随机种子，0 表示使用当前时间
	Seed uint64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	verbose      bool
	fixedStep    bool
}

// NewApp 创建并初始化游戏应用
//
// 使用嵌入资源时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameplay, err := loadGameplayConfig(cfg.GameplayConfigPath)
	if err != nil {
		return nil, fmt.Errorf("玩法配置加载失败: %w", err)
	}

	sceneData, err := readData(cfg.ScenePath, DefaultScenePath)
	if err != nil {
		return nil, fmt.Errorf("场景描述读取失败: %w", err)
	}
	desc, err := game.ParseSceneDescription(sceneData)
	if err != nil {
		return nil, fmt.Errorf("场景描述解析失败: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("[App] Random seed: %d", seed)

	playScene, err := scenes.NewPlayScene(gameplay, desc, utils.NewRandomSource(seed))
	if err != nil {
		return nil, err
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(playScene)

	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
		fixedStep:    cfg.FixedStep,
	}, nil
}

func loadGameplayConfig(path string) (*config.GameplayConfig, error) {
	if path != "" {
		return config.LoadGameplayConfig(path)
	}
	data, err := embedded.ReadFile(DefaultGameplayConfigPath)
	if err != nil {
		return nil, err
	}
	return config.ParseGameplayConfig(data)
}

// readData 优先读取磁盘文件，未指定时读取嵌入文件
func readData(diskPath, embeddedPath string) ([]byte, error) {
	if diskPath != "" {
		return os.ReadFile(diskPath)
	}
	return embedded.ReadFile(embeddedPath)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	a.sceneManager.Update(a.deltaTime())
	return nil
}

// deltaTime 返回本帧的时间步长（秒）
func (a *App) deltaTime() float64 {
	if a.fixedStep {
		return 1.0 / config.DefaultTickRate
	}
	return frameDelta(ebiten.ActualTPS())
}

// frameDelta 由实际 TPS 换算时间步长；启动初期 TPS 为 0 时退回固定步长
func frameDelta(tps float64) float64 {
	if tps <= 0 {
		return 1.0 / config.DefaultTickRate
	}
	return 1.0 / tps
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 使用窗口的实际尺寸作为逻辑屏幕尺寸，相机宽高比随之更新
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return config.GameWindowWidth, config.GameWindowHeight
	}
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

package main

import (
	"flag"
	"log"
	"os"

	"github.com/gonewx/picnic/pkg/app"
	"github.com/gonewx/picnic/pkg/config"
	"github.com/gonewx/picnic/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "玩法配置文件路径（默认使用内置 data/gameplay.yaml）")
	scenePath  = flag.String("scene", "", "场景描述文件路径（默认使用内置 data/picnic.yaml）")
	fixedStep  = flag.Bool("fixed-step", false, "使用固定 1/60 秒时间步长")
	seed       = flag.Uint64("seed", 0, "随机种子（0 表示按当前时间）")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:            *verbose,
		GameplayConfigPath: *configPath,
		ScenePath:          *scenePath,
		FixedStep:          *fixedStep,
		Seed:               *seed,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}

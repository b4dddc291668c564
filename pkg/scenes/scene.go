package scenes

import (
	"github.com/gonewx/picnic/pkg/game"
)

// Scene 是 game.Scene 的别名，场景实现放在本包中
type Scene = game.Scene

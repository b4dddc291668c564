package scenes

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/gonewx/picnic/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// healthHUD 左下角的生命值文字
// 先用黑色绘制，再用白色偏移绘制一遍形成描边效果
type healthHUD struct {
	source *text.GoTextFaceSource
}

func newHealthHUD() (*healthHUD, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source: %w", err)
	}
	return &healthHUD{source: source}, nil
}

// hudLayout 计算文字大小（像素）和左下角锚点
// 左、下边距为文字大小的 1/10
func hudLayout(screenHeight int) (size, x, y float64) {
	size = config.HUDTextHeight / 2 * float64(screenHeight)
	pad := 0.1 * size
	return size, pad, float64(screenHeight) - pad
}

// Draw 绘制文字
func (h *healthHUD) Draw(screen *ebiten.Image, label string) {
	size, x, y := hudLayout(screen.Bounds().Dy())
	face := &text.GoTextFace{
		Source:    h.source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}

	h.drawPass(screen, label, face, x, y, color.Black)
	h.drawPass(screen, label, face, x+config.HUDOutlineOffset, y-config.HUDOutlineOffset, color.White)
}

func (h *healthHUD) drawPass(screen *ebiten.Image, label string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.LayoutOptions.SecondaryAlign = text.AlignEnd
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, label, face, op)
}

package surface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenCanvas 把绘制调用落到 ebiten.Image 上（矢量描边/填充）
type EbitenCanvas struct {
	dst       *ebiten.Image
	antialias bool
}

// NewEbitenCanvas 创建以 dst 为目标的画布
func NewEbitenCanvas(dst *ebiten.Image) *EbitenCanvas {
	return &EbitenCanvas{
		dst:       dst,
		antialias: true,
	}
}

// Target 返回当前绘制目标
func (c *EbitenCanvas) Target() *ebiten.Image {
	return c.dst
}

// Clear 清空目标图像
func (c *EbitenCanvas) Clear() {
	if c.dst == nil {
		return
	}
	c.dst.Clear()
}

// StrokeCircle 描边圆
func (c *EbitenCanvas) StrokeCircle(cx, cy, r, width float64, clr color.Color) {
	if c.dst == nil || r <= 0 {
		return
	}
	vector.StrokeCircle(c.dst, float32(cx), float32(cy), float32(r), float32(width), clr, c.antialias)
}

// FillCircle 填充圆
func (c *EbitenCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	if c.dst == nil || r <= 0 {
		return
	}
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), clr, c.antialias)
}

package surface

import (
	"image/color"
	"math"
	"strings"

	drawille "github.com/exrook/drawille-go"
)

// BrailleCanvas 把绘制调用栅格化到终端盲文点阵
//
// 每个字符单元为 2x4 个点；scale 表示一个点对应多少画布像素，
// 因此同一份以像素为单位的物理参数可以直接用在终端上。
// 盲文点阵没有颜色，颜色参数被忽略，由上层统一着色。
type BrailleCanvas struct {
	canvas drawille.Canvas
	cols   int
	rows   int
	scale  float64
}

// NewBrailleCanvas 创建 cols x rows 个字符单元的点阵画布
func NewBrailleCanvas(cols, rows int, scale float64) *BrailleCanvas {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	if scale <= 0 {
		scale = 1
	}
	return &BrailleCanvas{
		canvas: drawille.NewCanvas(),
		cols:   cols,
		rows:   rows,
		scale:  scale,
	}
}

// DotWidth 点阵宽度（点）
func (b *BrailleCanvas) DotWidth() int { return b.cols * 2 }

// DotHeight 点阵高度（点）
func (b *BrailleCanvas) DotHeight() int { return b.rows * 4 }

// PixelSize 点阵覆盖的画布像素尺寸
func (b *BrailleCanvas) PixelSize() (float64, float64) {
	return float64(b.DotWidth()) * b.scale, float64(b.DotHeight()) * b.scale
}

// CellToPixel 把终端单元坐标换算为画布像素坐标（单元中心）
func (b *BrailleCanvas) CellToPixel(col, row int) (float64, float64) {
	return (float64(col)*2 + 1) * b.scale, (float64(row)*4 + 2) * b.scale
}

// Clear 清空点阵
func (b *BrailleCanvas) Clear() {
	b.canvas.Clear()
}

// StrokeCircle 用中点画圆算法描边，线宽不足一个点时按一个点处理
func (b *BrailleCanvas) StrokeCircle(cx, cy, r, width float64, _ color.Color) {
	rDots := int(math.Round(r / b.scale))
	if rDots <= 0 {
		b.set(b.dot(cx), b.dot(cy))
		return
	}

	thickness := int(math.Round(width / b.scale))
	if thickness < 1 {
		thickness = 1
	}

	x0, y0 := b.dot(cx), b.dot(cy)
	for t := 0; t < thickness && rDots-t > 0; t++ {
		b.midpointCircle(x0, y0, rDots-t)
	}
}

// FillCircle 按扫描线填充圆
func (b *BrailleCanvas) FillCircle(cx, cy, r float64, _ color.Color) {
	x0, y0 := b.dot(cx), b.dot(cy)
	rDots := r / b.scale
	if rDots < 1 {
		b.set(x0, y0)
		return
	}

	ri := int(math.Ceil(rDots))
	for dy := -ri; dy <= ri; dy++ {
		half := math.Sqrt(math.Max(0, rDots*rDots-float64(dy*dy)))
		span := int(math.Floor(half))
		for dx := -span; dx <= span; dx++ {
			b.set(x0+dx, y0+dy)
		}
	}
}

// Rows 返回固定尺寸的点阵行，不足处补空格
func (b *BrailleCanvas) Rows() []string {
	lines := make([]string, b.rows)
	if b.rows == 0 || b.cols == 0 {
		return lines
	}
	rendered := b.canvas.Rows(0, 0, b.DotWidth(), b.DotHeight())

	for i := range b.rows {
		line := ""
		if i < len(rendered) {
			line = rendered[i]
		}
		runes := []rune(line)
		switch {
		case len(runes) < b.cols:
			line += strings.Repeat(" ", b.cols-len(runes))
		case len(runes) > b.cols:
			line = string(runes[:b.cols])
		}
		lines[i] = line
	}
	return lines
}

// String 返回整个点阵
func (b *BrailleCanvas) String() string {
	return strings.Join(b.Rows(), "\n")
}

func (b *BrailleCanvas) dot(px float64) int {
	return int(math.Round(px / b.scale))
}

// set 只落在点阵范围内的点
func (b *BrailleCanvas) set(x, y int) {
	if x < 0 || y < 0 || x >= b.DotWidth() || y >= b.DotHeight() {
		return
	}
	b.canvas.Set(x, y)
}

func (b *BrailleCanvas) midpointCircle(cx, cy, radius int) {
	x := radius
	y := 0
	d := 1 - radius

	for x >= y {
		b.set(cx+x, cy-y)
		b.set(cx+y, cy-x)
		b.set(cx-y, cy-x)
		b.set(cx-x, cy-y)
		b.set(cx-x, cy+y)
		b.set(cx-y, cy+x)
		b.set(cx+y, cy+x)
		b.set(cx+x, cy+y)

		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

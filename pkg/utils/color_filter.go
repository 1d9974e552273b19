package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"

	"github.com/decker502/movieque/pkg/config"
)

// 颜色矩阵（行优先 3x3，作用于 RGB）
var (
	// sepiaMatrix 与 CSS sepia(1) 相同
	sepiaMatrix = [3][3]float64{
		{0.393, 0.769, 0.189},
		{0.349, 0.686, 0.168},
		{0.272, 0.534, 0.131},
	}

	// colorblindMatrix 红绿通道混合，拉开红绿色弱用户难以区分的颜色
	colorblindMatrix = [3][3]float64{
		{0.625, 0.375, 0},
		{0.7, 0.3, 0},
		{0, 0.3, 0.7},
	}
)

// ColorFilter 返回颜色模式对应的颜色矩阵
// normal 及未知模式返回单位矩阵
func ColorFilter(mode config.ColorMode) colorm.ColorM {
	var cm colorm.ColorM

	switch mode {
	case config.ColorModeInverted:
		cm.Scale(-1, -1, -1, 1)
		cm.Translate(1, 1, 1, 0)
	case config.ColorModeSepia:
		setRGB(&cm, sepiaMatrix)
	case config.ColorModeColorblind:
		setRGB(&cm, colorblindMatrix)
	}

	return cm
}

// IsIdentityFilter 该模式是否不需要额外的全屏绘制
func IsIdentityFilter(mode config.ColorMode) bool {
	return mode == config.ColorModeNormal || !mode.IsValid()
}

// DrawFiltered 把 src 经过颜色模式矩阵绘制到 dst
func DrawFiltered(dst, src *ebiten.Image, mode config.ColorMode) {
	if dst == nil || src == nil {
		return
	}
	if IsIdentityFilter(mode) {
		dst.DrawImage(src, nil)
		return
	}
	colorm.DrawImage(dst, src, ColorFilter(mode), &colorm.DrawImageOptions{})
}

func setRGB(cm *colorm.ColorM, m [3][3]float64) {
	for i := range 3 {
		for j := range 3 {
			cm.SetElement(i, j, m[i][j])
		}
	}
}

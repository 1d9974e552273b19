// Package surface 定义粒子场的绘制目标
//
// 渲染系统只依赖 Canvas 接口，由具体实现把圆形绘制调用落到
// Ebitengine 图像、终端盲文点阵或测试用的调用记录上。
package surface

import "image/color"

// Canvas 二维绘制面
// 坐标为画布像素空间，原点在左上角
type Canvas interface {
	// Clear 清空整个绘制面
	Clear()

	// StrokeCircle 以 width 线宽描边一个圆
	StrokeCircle(cx, cy, r, width float64, clr color.Color)

	// FillCircle 填充一个实心圆
	FillCircle(cx, cy, r float64, clr color.Color)
}

package surface

import "image/color"

// DrawOp 绘制调用类型
type DrawOp int

const (
	OpClear DrawOp = iota
	OpStroke
	OpFill
)

// DrawCall 一次记录下来的绘制调用
type DrawCall struct {
	Op    DrawOp
	X, Y  float64
	R     float64
	Width float64
	Color color.RGBA
}

// Recorder 记录绘制调用而不真正绘制
// 用于测试渲染系统输出以及统计每帧调用数
type Recorder struct {
	Calls []DrawCall
}

// Clear 记录清屏；之前的调用一并丢弃，只保留最近一帧
func (r *Recorder) Clear() {
	r.Calls = append(r.Calls[:0], DrawCall{Op: OpClear})
}

// StrokeCircle 记录描边调用
func (r *Recorder) StrokeCircle(cx, cy, radius, width float64, clr color.Color) {
	r.Calls = append(r.Calls, DrawCall{Op: OpStroke, X: cx, Y: cy, R: radius, Width: width, Color: toRGBA(clr)})
}

// FillCircle 记录填充调用
func (r *Recorder) FillCircle(cx, cy, radius float64, clr color.Color) {
	r.Calls = append(r.Calls, DrawCall{Op: OpFill, X: cx, Y: cy, R: radius, Color: toRGBA(clr)})
}

// Count 统计某类调用次数
func (r *Recorder) Count(op DrawOp) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

func toRGBA(clr color.Color) color.RGBA {
	if clr == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(clr).(color.RGBA)
}

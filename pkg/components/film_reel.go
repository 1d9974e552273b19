package components

// FilmReel 单个胶片盘粒子
// 坐标为画布像素空间，速度单位为像素/帧
type FilmReel struct {
	X, Y   float64
	VX, VY float64

	// Rotation 当前旋转角（弧度），不做归一化
	Rotation float64
	// RotationSpeed 创建时确定的旋转速度（弧度/帧，有符号）
	RotationSpeed float64
}

// ReelFieldComponent 一次加载会话的粒子场
// Reels 按下标顺序存储，数量在会话期间固定
type ReelFieldComponent struct {
	Reels  []FilmReel
	Width  float64
	Height float64
}

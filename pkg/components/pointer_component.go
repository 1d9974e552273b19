package components

// PointerComponent 最近一次观察到的指针位置
// 只由指针监听写入，物理步进只读
type PointerComponent struct {
	X, Y float64
	// Seen 是否收到过指针移动；未收到前不产生排斥
	Seen bool
}

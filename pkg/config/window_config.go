package config

// 窗口与逻辑屏幕尺寸
// 逻辑尺寸独立于实际窗口大小，Ebitengine 负责缩放
const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 800

	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 600

	// WindowTitle 窗口标题
	WindowTitle = "MOVIEQUE"
)

package config

// ColorMode 无障碍显示模式
type ColorMode string

const (
	ColorModeNormal     ColorMode = "normal"
	ColorModeColorblind ColorMode = "colorblind"
	ColorModeInverted   ColorMode = "inverted"
	ColorModeSepia      ColorMode = "sepia"
)

// ColorModes 切换顺序
var ColorModes = []ColorMode{ColorModeNormal, ColorModeColorblind, ColorModeInverted, ColorModeSepia}

// IsValid 是否为支持的显示模式
func (m ColorMode) IsValid() bool {
	for _, mode := range ColorModes {
		if mode == m {
			return true
		}
	}
	return false
}

// Next 返回切换顺序中的下一个模式，未知模式回到 normal
func (m ColorMode) Next() ColorMode {
	for i, mode := range ColorModes {
		if mode == m {
			return ColorModes[(i+1)%len(ColorModes)]
		}
	}
	return ColorModeNormal
}

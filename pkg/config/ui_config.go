package config

import (
	"image/color"
	"time"
)

// UI 主题颜色与各页面的布局参数
// 屏幕尺寸：800x600（见 window_config.go）

// 主题颜色
var (
	// ColorBackground 页面背景
	ColorBackground = color.RGBA{R: 0x0B, G: 0x11, B: 0x20, A: 0xFF}

	// ColorForeground 主要文字
	ColorForeground = color.RGBA{R: 0xF8, G: 0xFA, B: 0xFC, A: 0xFF}

	// ColorMuted 次要文字
	ColorMuted = color.RGBA{R: 0x94, G: 0xA3, B: 0xB8, A: 0xFF}

	// ColorAccent 强调色（与胶片盘颜色一致）
	ColorAccent = color.RGBA{R: 0x38, G: 0xBD, B: 0xF8, A: 0xFF}

	// ColorAccentHover 按钮悬停颜色
	ColorAccentHover = color.RGBA{R: 0x7D, G: 0xD3, B: 0xFC, A: 0xFF}

	// ColorCard 套餐卡片背景
	ColorCard = color.RGBA{R: 0x16, G: 0x1E, B: 0x2E, A: 0xFF}

	// ColorTrack 进度条底色
	ColorTrack = color.RGBA{R: 0x1E, G: 0x29, B: 0x3B, A: 0xFF}
)

// Landing 页面布局
const (
	// LandingTitle 主标题
	LandingTitle = "MOVIEQUE"

	// LandingTagline 副标题
	LandingTagline = "Stream.Binge.Repeat"

	// LandingButtonLabel 入口按钮文字
	LandingButtonLabel = "Explore Services"

	// LandingHint 底部快捷键提示
	LandingHint = "Enter: explore   C: colour mode   Y: currency   F11: fullscreen"

	LandingTitleY       float64 = 170
	LandingTaglineY     float64 = 290
	LandingButtonY      float64 = 380
	LandingButtonWidth  float64 = 280
	LandingButtonHeight float64 = 56
	LandingHintY        float64 = 560

	LandingTitleFontSize   float64 = 96
	LandingTaglineFontSize float64 = 32
	LandingButtonFontSize  float64 = 22
	LandingHintFontSize    float64 = 13

	// LandingTitleFadeDuration 标题淡入时长
	LandingTitleFadeDuration = 1000 * time.Millisecond

	// LandingTaglineFadeDelay 副标题在标题之后淡入
	LandingTaglineFadeDelay = 300 * time.Millisecond

	// LandingButtonFadeDelay 按钮最后淡入
	LandingButtonFadeDelay = 600 * time.Millisecond
)

// Services 页面布局
const (
	ServicesTitle    = "Choose Your Plan"
	ServicesSubtitle = "Everything you need for the ultimate streaming experience"

	ServicesTitleY    float64 = 40
	ServicesSubtitleY float64 = 90
	ServicesCurrencyY float64 = 120

	// 三张套餐卡片水平排列
	ServicesCardTop     float64 = 170
	ServicesCardWidth   float64 = 230
	ServicesCardHeight  float64 = 380
	ServicesCardGap     float64 = 25
	ServicesCardPadding float64 = 18

	// ServicesPopularLabel 推荐套餐角标
	ServicesPopularLabel = "Most Popular"

	// ServicesPriceSuffix 价格后缀
	ServicesPriceSuffix = "/month"

	ServicesHint = "Y: currency   C: colour mode   Esc: back"

	ServicesTitleFontSize float64 = 36
	ServicesPlanFontSize  float64 = 24
	ServicesPriceFontSize float64 = 30
	ServicesTextFontSize  float64 = 14
)

// Loading 页面文字
const (
	LoadingTitle    = "Loading"
	LoadingSubtitle = "Preparing your experience..."
)

// CardX 第 index 张套餐卡片的左上角 X 坐标（整体水平居中）
func CardX(index, count int, screenWidth float64) float64 {
	if count <= 0 {
		return 0
	}
	total := float64(count)*ServicesCardWidth + float64(count-1)*ServicesCardGap
	left := (screenWidth - total) / 2
	return left + float64(index)*(ServicesCardWidth+ServicesCardGap)
}

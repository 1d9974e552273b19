package config

import "time"

// Loading Scene 配置常量
// 粒子场（胶片盘）的物理与绘制参数见 field_config.go，这里只放布局和默认节奏

const (
	// LoadingTitleY "Loading" 标题基线 Y 坐标
	LoadingTitleY float64 = 230

	// LoadingSubtitleY 副标题 Y 坐标
	LoadingSubtitleY float64 = 270

	// LoadingBarWidth 进度条宽度（居中绘制）
	LoadingBarWidth float64 = 400

	// LoadingBarHeight 进度条高度
	LoadingBarHeight float64 = 8

	// LoadingBarY 进度条 Y 坐标
	LoadingBarY float64 = 310

	// LoadingPercentY 百分比文字 Y 坐标
	LoadingPercentY float64 = 340

	// LoadingReelLayerAlpha 胶片盘图层透明度（与网页版 opacity-30 一致）
	LoadingReelLayerAlpha float32 = 0.3

	// LoadingTitleFontSize 标题字号
	LoadingTitleFontSize float64 = 40

	// LoadingTextFontSize 说明文字字号
	LoadingTextFontSize float64 = 16
)

// 进度驱动默认节奏
const (
	// DefaultProgressTickInterval 每次进度递增的间隔
	DefaultProgressTickInterval = 60 * time.Millisecond

	// DefaultProgressStep 每次递增的百分比
	DefaultProgressStep = 2

	// DefaultCompletionDelay 到达 100% 之后触发完成回调前的等待
	DefaultCompletionDelay = 500 * time.Millisecond

	// ProgressMax 进度上限
	ProgressMax = 100
)

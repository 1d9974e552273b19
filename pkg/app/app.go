// Package app 提供桌面应用的核心包装器
//
// 该包将窗口、场景和设置的初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/decker502/movieque/pkg/config"
	"github.com/decker502/movieque/pkg/game"
	"github.com/decker502/movieque/pkg/scenes"
	"github.com/decker502/movieque/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// AppName gdata 存储使用的应用名
	AppName string
	// Field 粒子场配置来源，为 nil 时使用默认配置
	Field config.FieldSource
	// SkipLanding 跳过首页，直接进入加载过渡
	SkipLanding bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	ctx          context.Context
	sceneManager *game.SceneManager
	settings     *game.SettingsManager

	// offscreen 非 normal 颜色模式下先画到这里，再整体套用颜色矩阵
	offscreen *ebiten.Image

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
	closed                   bool
}

// NewApp 创建并初始化应用
//
// 调用此函数前，应先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	appName := cfg.AppName
	if appName == "" {
		appName = config.DefaultAppName
	}

	settings := game.OpenSettingsManager(appName)

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(scenes.NewSceneFactory(scenes.Deps{
		Navigator: sceneManager,
		Settings:  settings,
		Field:     cfg.Field,
	}))

	start := scenes.RouteLanding
	if cfg.SkipLanding {
		start = scenes.RouteLoading
	}
	sceneManager.Navigate(start)
	if sceneManager.GetCurrentScene() == nil {
		return nil, fmt.Errorf("failed to create start scene %q", start)
	}

	zap.S().Debugf("[App] started at %s (colour mode %s, currency %s)",
		start, settings.GetSettings().ColorMode, settings.GetSettings().Currency)

	return &App{
		ctx:          context.Background(),
		sceneManager: sceneManager,
		settings:     settings,
	}, nil
}

// Run 打开窗口并运行主循环，ctx 取消或窗口关闭时返回
// 无论以何种方式退出都会调用 Close()
func (a *App) Run(ctx context.Context) error {
	a.ctx = ctx
	defer a.Close()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if a.settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("game loop failed: %w", err)
	}
	return nil
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.ctx.Err() != nil {
		zap.S().Debugf("[App] context done, terminating")
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			zap.S().Debugf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if utils.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}
	if utils.IsKeyJustPressed(ebiten.KeyC) {
		a.CycleColorMode()
	}
	if utils.IsKeyJustPressed(ebiten.KeyY) {
		a.CycleCurrency()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settings.SetFullscreen(false)
		zap.S().Debugf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
		a.settings.SetFullscreen(true)
	}
}

// CycleColorMode 切换到下一个无障碍颜色模式
func (a *App) CycleColorMode() config.ColorMode {
	mode := a.settings.CycleColorMode()
	zap.S().Debugf("[App] colour mode: %s", mode)
	return mode
}

// CycleCurrency 切换服务页的显示货币
func (a *App) CycleCurrency() config.Currency {
	c := a.settings.CycleCurrency()
	zap.S().Debugf("[App] currency: %s", c)
	return c
}

// Draw 绘制当前场景，非 normal 模式时整体套用颜色矩阵
func (a *App) Draw(screen *ebiten.Image) {
	mode := a.settings.GetSettings().ColorMode
	if utils.IsIdentityFilter(mode) {
		a.sceneManager.Draw(screen)
		return
	}

	if a.offscreen == nil {
		a.offscreen = ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)
	}
	a.offscreen.Clear()
	a.sceneManager.Draw(a.offscreen)
	utils.DrawFiltered(screen, a.offscreen, mode)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 释放当前场景并保存设置，可重复调用
func (a *App) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true

	a.sceneManager.Close()
	if err := a.settings.Save(); err != nil {
		zap.S().Warnf("[App] %v", err)
		return err
	}
	zap.S().Debugf("[App] closed")
	return nil
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// GetSettingsManager 返回设置管理器
func (a *App) GetSettingsManager() *game.SettingsManager {
	return a.settings
}

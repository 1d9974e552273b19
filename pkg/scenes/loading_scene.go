package scenes

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/decker502/movieque/pkg/config"
	"github.com/decker502/movieque/pkg/game"
	"github.com/decker502/movieque/pkg/surface"
	"github.com/decker502/movieque/pkg/systems"
	"github.com/decker502/movieque/pkg/utils"
)

// LoadingScene 加载过渡页：胶片盘粒子场 + 进度条
//
// 胶片盘绘制在离屏图层上，再以 30% 透明度叠加到背景；
// 文字与进度条绘制在最上层。完成后切换到服务页，Esc 取消并回到首页。
type LoadingScene struct {
	deps    Deps
	session *game.LoadingSession
	input   *systems.PointerInputSystem

	layer  *ebiten.Image
	canvas *surface.EbitenCanvas

	completed bool
	cancelled bool

	titleFace *text.GoTextFace
	textFace  *text.GoTextFace
}

// NewLoadingScene 创建加载场景并启动会话
// 画布尺寸在此读取一次
func NewLoadingScene(deps Deps) *LoadingScene {
	return newLoadingScene(deps, utils.EbitenPointer{})
}

func newLoadingScene(deps Deps, pointer systems.PointerSource) *LoadingScene {
	s := &LoadingScene{
		deps:  deps,
		input: systems.NewPointerInputSystem(pointer),
	}

	s.session = game.NewLoadingSession(game.SessionOptions{
		Config:     deps.currentField(),
		Width:      config.GameWindowWidth,
		Height:     config.GameWindowHeight,
		OnComplete: func() { s.completed = true },
	})

	s.titleFace = loadFace("LoadingScene", "title", config.LoadingTitleFontSize, true)
	s.textFace = loadFace("LoadingScene", "text", config.LoadingTextFontSize, false)

	return s
}

// Session 当前加载会话
func (s *LoadingScene) Session() *game.LoadingSession {
	return s.session
}

// Update 指针采样 -> 物理步进 -> 进度推进，完成或取消后切换场景
func (s *LoadingScene) Update(deltaTime float64) {
	if utils.IsKeyJustPressed(ebiten.KeyEscape) {
		s.Cancel()
		return
	}
	s.step(time.Duration(deltaTime * float64(time.Second)))
}

func (s *LoadingScene) step(dt time.Duration) {
	if s.session.Closed() {
		return
	}

	s.input.Poll(s.session.MovePointer)
	s.session.Update(dt)

	// 回调只打标记，离开场景放在会话更新结束之后
	if s.completed {
		zap.S().Debugf("[LoadingScene] complete, switching to services")
		s.session.Close()
		s.deps.navigate(RouteServices)
	}
}

// Cancel 提前离开加载页：关闭会话并回到首页
func (s *LoadingScene) Cancel() {
	if s.cancelled || s.completed {
		return
	}
	s.cancelled = true
	zap.S().Debugf("[LoadingScene] cancelled at %d%%", s.session.Progress())
	s.session.Close()
	s.deps.navigate(RouteLanding)
}

// Dispose 场景被切换掉或程序退出时关闭会话
func (s *LoadingScene) Dispose() {
	s.session.Close()
	if s.layer != nil {
		s.layer.Deallocate()
		s.layer = nil
		s.canvas = nil
	}
}

// Draw 背景 -> 半透明胶片盘图层 -> 文字和进度条
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.ColorBackground)

	if !s.session.Closed() {
		if s.layer == nil {
			s.layer = ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)
			s.canvas = surface.NewEbitenCanvas(s.layer)
		}
		s.session.Draw(s.canvas)

		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(config.LoadingReelLayerAlpha)
		screen.DrawImage(s.layer, op)
	}

	s.drawOverlay(screen)
}

func (s *LoadingScene) drawOverlay(screen *ebiten.Image) {
	cx := float64(config.GameWindowWidth) / 2

	utils.DrawCenteredText(screen, config.LoadingTitle, s.titleFace, cx, config.LoadingTitleY, config.ColorForeground)
	utils.DrawCenteredText(screen, config.LoadingSubtitle, s.textFace, cx, config.LoadingSubtitleY, config.ColorMuted)

	barX := float32(cx - config.LoadingBarWidth/2)
	barY := float32(config.LoadingBarY)
	vector.DrawFilledRect(screen, barX, barY, float32(config.LoadingBarWidth), float32(config.LoadingBarHeight),
		config.ColorTrack, true)

	fillWidth := float32(config.LoadingBarWidth * s.session.ProgressFraction())
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, barX, barY, fillWidth, float32(config.LoadingBarHeight), config.ColorAccent, true)
	}

	utils.DrawCenteredText(screen, fmt.Sprintf("%d%%", s.session.Progress()), s.textFace, cx, config.LoadingPercentY,
		config.ColorMuted)
}

package scenes

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/decker502/movieque/pkg/config"
	"github.com/decker502/movieque/pkg/utils"
)

// LandingScene 首页：标题、副标题与 "Explore Services" 按钮
//
// 标题依次淡入；点击按钮或按 Enter 进入加载过渡。
type LandingScene struct {
	deps    Deps
	elapsed time.Duration

	hovering  bool
	activated bool

	titleFace   *text.GoTextFace
	taglineFace *text.GoTextFace
	buttonFace  *text.GoTextFace
	hintFace    *text.GoTextFace
}

// NewLandingScene 创建首页场景
func NewLandingScene(deps Deps) *LandingScene {
	s := &LandingScene{deps: deps}
	s.loadFonts()
	return s
}

func (s *LandingScene) loadFonts() {
	s.titleFace = loadFace("LandingScene", "title", config.LandingTitleFontSize, true)
	s.taglineFace = loadFace("LandingScene", "tagline", config.LandingTaglineFontSize, true)
	s.buttonFace = loadFace("LandingScene", "button", config.LandingButtonFontSize, true)
	s.hintFace = loadFace("LandingScene", "hint", config.LandingHintFontSize, false)
}

// ButtonRect 按钮区域（左上角与尺寸）
func (s *LandingScene) ButtonRect() (x, y, w, h float64) {
	x = (config.GameWindowWidth - config.LandingButtonWidth) / 2
	return x, config.LandingButtonY, config.LandingButtonWidth, config.LandingButtonHeight
}

// HitButton 屏幕坐标是否落在按钮上
func (s *LandingScene) HitButton(px, py int) bool {
	x, y, w, h := s.ButtonRect()
	fx, fy := float64(px), float64(py)
	return fx >= x && fx <= x+w && fy >= y && fy <= y+h
}

// Update 更新淡入计时并处理输入
func (s *LandingScene) Update(deltaTime float64) {
	s.elapsed += time.Duration(deltaTime * float64(time.Second))

	px, py := utils.GetPointerPosition()
	s.hovering = s.HitButton(px, py)

	if utils.IsKeyJustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter) {
		s.Explore()
		return
	}
	if clicked, cx, cy := utils.IsJustTouchedOrClicked(); clicked && s.HitButton(cx, cy) {
		s.Explore()
	}
}

// Explore 进入加载过渡（每个场景实例只触发一次）
func (s *LandingScene) Explore() {
	if s.activated {
		return
	}
	s.activated = true
	zap.S().Debugf("[LandingScene] explore services")
	s.deps.navigate(RouteLoading)
}

// Draw 绘制首页
func (s *LandingScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.ColorBackground)
	cx := float64(config.GameWindowWidth) / 2

	titleAlpha := utils.FadeProgress(s.elapsed, 0, config.LandingTitleFadeDuration)
	utils.DrawCenteredText(screen, config.LandingTitle, s.titleFace, cx, config.LandingTitleY,
		withAlpha(config.ColorForeground, titleAlpha))

	taglineAlpha := utils.FadeProgress(s.elapsed, config.LandingTaglineFadeDelay, config.LandingTitleFadeDuration)
	utils.DrawCenteredText(screen, config.LandingTagline, s.taglineFace, cx, config.LandingTaglineY,
		withAlpha(config.ColorAccent, taglineAlpha))

	buttonAlpha := utils.FadeProgress(s.elapsed, config.LandingButtonFadeDelay, config.LandingTitleFadeDuration)
	fill := config.ColorAccent
	if s.hovering {
		fill = config.ColorAccentHover
	}
	x, y, w, h := s.ButtonRect()
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), withAlpha(fill, buttonAlpha), true)
	utils.DrawCenteredText(screen, config.LandingButtonLabel+"  >", s.buttonFace, cx, y+(h-config.LandingButtonFontSize)/2-2,
		withAlpha(config.ColorBackground, buttonAlpha))

	utils.DrawCenteredText(screen, config.LandingHint, s.hintFace, cx, config.LandingHintY, config.ColorMuted)
}

// withAlpha 按透明度缩放颜色（预乘 alpha）
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	alpha = utils.Clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

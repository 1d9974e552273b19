package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/movieque/pkg/config"
	"github.com/decker502/movieque/pkg/utils"
)

// ServicesScene 服务页：三种套餐，价格按当前货币显示
type ServicesScene struct {
	deps Deps

	titleFace *text.GoTextFace
	planFace  *text.GoTextFace
	priceFace *text.GoTextFace
	textFace  *text.GoTextFace
}

// NewServicesScene 创建服务页场景
func NewServicesScene(deps Deps) *ServicesScene {
	s := &ServicesScene{deps: deps}
	s.titleFace = loadFace("ServicesScene", "title", config.ServicesTitleFontSize, true)
	s.planFace = loadFace("ServicesScene", "plan", config.ServicesPlanFontSize, true)
	s.priceFace = loadFace("ServicesScene", "price", config.ServicesPriceFontSize, true)
	s.textFace = loadFace("ServicesScene", "text", config.ServicesTextFontSize, false)
	return s
}

// Update Esc / Backspace 返回首页
func (s *ServicesScene) Update(deltaTime float64) {
	if utils.IsKeyJustPressed(ebiten.KeyEscape, ebiten.KeyBackspace) {
		s.deps.navigate(RouteLanding)
	}
}

// PriceLabels 当前货币下每个套餐的价格文字
func (s *ServicesScene) PriceLabels() []string {
	currency := s.deps.currency()
	labels := make([]string, len(config.Plans))
	for i, plan := range config.Plans {
		labels[i] = utils.PlanPrice(plan, currency)
	}
	return labels
}

// CurrencyLabel 货币选择行，如 "Currency: USD ($)"
func (s *ServicesScene) CurrencyLabel() string {
	c := s.deps.currency()
	return fmt.Sprintf("Currency: %s (%s)", c, config.CurrencySymbols[c])
}

// Draw 绘制标题与套餐卡片
func (s *ServicesScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.ColorBackground)
	cx := float64(config.GameWindowWidth) / 2

	utils.DrawCenteredText(screen, config.ServicesTitle, s.titleFace, cx, config.ServicesTitleY, config.ColorForeground)
	utils.DrawCenteredText(screen, config.ServicesSubtitle, s.textFace, cx, config.ServicesSubtitleY, config.ColorMuted)
	utils.DrawCenteredText(screen, s.CurrencyLabel(), s.textFace, cx, config.ServicesCurrencyY, config.ColorAccent)

	prices := s.PriceLabels()
	for i, plan := range config.Plans {
		s.drawCard(screen, i, plan, prices[i])
	}

	utils.DrawCenteredText(screen, config.ServicesHint, s.textFace, cx, config.LandingHintY, config.ColorMuted)
}

func (s *ServicesScene) drawCard(screen *ebiten.Image, index int, plan config.Plan, price string) {
	x := config.CardX(index, len(config.Plans), config.GameWindowWidth)
	y := config.ServicesCardTop
	w, h := config.ServicesCardWidth, config.ServicesCardHeight
	pad := config.ServicesCardPadding

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), config.ColorCard, true)
	border := config.ColorTrack
	if plan.Popular {
		border = config.ColorAccent
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, border, true)

	if plan.Popular {
		utils.DrawCenteredText(screen, config.ServicesPopularLabel, s.textFace, x+w/2, y-22, config.ColorAccent)
	}

	utils.DrawText(screen, plan.Name, s.planFace, x+pad, y+pad, config.ColorForeground)
	utils.DrawText(screen, price, s.priceFace, x+pad, y+pad+40, config.ColorAccent)
	if s.priceFace != nil {
		pw, _ := text.Measure(price, s.priceFace, 0)
		utils.DrawText(screen, config.ServicesPriceSuffix, s.textFace, x+pad+pw+4, y+pad+54, config.ColorMuted)
	}

	lineY := y + pad + 100
	for _, feature := range plan.Features {
		for _, line := range utils.WrapText("+ "+feature, s.textFace, w-2*pad) {
			utils.DrawText(screen, line, s.textFace, x+pad, lineY, config.ColorForeground)
			lineY += config.ServicesTextFontSize + 8
		}
	}
}

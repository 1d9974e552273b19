package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/decker502/movieque/pkg/config"
	"github.com/decker502/movieque/pkg/utils"
)

func (m *Model) View() string {
	if m.viewportWidth == 0 {
		return ""
	}

	switch m.page {
	case servicesPage:
		return m.servicesView()
	default:
		return m.loadingView()
	}
}

func (m *Model) loadingView() string {
	var b strings.Builder

	b.WriteString(m.center(m.theme.title.Render(config.LoadingTitle)))
	b.WriteByte('\n')
	b.WriteString(m.center(m.theme.subtitle.Render(config.LoadingSubtitle)))
	b.WriteByte('\n')

	if m.canvas != nil {
		for _, row := range m.canvas.Rows() {
			b.WriteString(m.theme.reels.Render(row))
			b.WriteByte('\n')
		}
	}

	percent := 0
	fraction := 0.0
	if m.session != nil {
		percent = m.session.Progress()
		fraction = m.session.ProgressFraction()
	}
	b.WriteString(m.center(m.progressBar(fraction, min(40, max(m.viewportWidth-8, 0))) + fmt.Sprintf(" %3d%%", percent)))
	b.WriteByte('\n')
	b.WriteString(m.center(m.theme.muted.Render("move the mouse to push the reels · q quit")))

	return b.String()
}

func (m *Model) progressBar(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	filled = min(max(filled, 0), width)
	return m.theme.barFill.Render(strings.Repeat("█", filled)) +
		m.theme.barTrack.Render(strings.Repeat("░", width-filled))
}

func (m *Model) servicesView() string {
	cards := make([]string, 0, len(config.Plans))
	for _, plan := range config.Plans {
		style := m.theme.card
		header := m.theme.title.Render(plan.Name)
		if plan.Popular {
			style = m.theme.popular
			header += " " + m.theme.barFill.Render("★ "+config.ServicesPopularLabel)
		}

		lines := []string{
			header,
			m.theme.barFill.Render(utils.PlanPrice(plan, m.currency)) + m.theme.muted.Render(config.ServicesPriceSuffix),
			"",
		}
		for _, f := range plan.Features {
			lines = append(lines, "✓ "+f)
		}
		cards = append(cards, style.Render(strings.Join(lines, "\n")))
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.title.Render(config.ServicesTitle),
		m.theme.muted.Render(fmt.Sprintf("Currency: %s (%s)", m.currency, config.CurrencySymbols[m.currency])),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		"",
		m.theme.muted.Render("y currency · q quit"),
	)

	return lipgloss.Place(m.viewportWidth, m.viewportHeight, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) center(s string) string {
	return lipgloss.PlaceHorizontal(m.viewportWidth, lipgloss.Center, s)
}

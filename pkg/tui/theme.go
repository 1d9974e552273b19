package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorForeground = lipgloss.Color("#F8FAFC")
	colorMuted      = lipgloss.Color("#94A3B8")
	colorAccent     = lipgloss.Color("#38BDF8")
	colorTrack      = lipgloss.Color("#1E293B")
)

type theme struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	reels    lipgloss.Style
	barFill  lipgloss.Style
	barTrack lipgloss.Style
	muted    lipgloss.Style
	card     lipgloss.Style
	popular  lipgloss.Style
}

// newTheme builds the styles; reelColor is the configured reel colour (#RRGGBB).
func newTheme(reelColor string) theme {
	reel := colorAccent
	if reelColor != "" {
		reel = lipgloss.Color(reelColor)
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorTrack).
		Padding(0, 1).
		Width(30)

	return theme{
		title:    lipgloss.NewStyle().Bold(true).Foreground(colorForeground),
		subtitle: lipgloss.NewStyle().Foreground(colorMuted),
		reels:    lipgloss.NewStyle().Foreground(reel).Faint(true),
		barFill:  lipgloss.NewStyle().Foreground(colorAccent),
		barTrack: lipgloss.NewStyle().Foreground(colorTrack),
		muted:    lipgloss.NewStyle().Foreground(colorMuted),
		card:     card,
		popular:  card.BorderForeground(colorAccent),
	}
}

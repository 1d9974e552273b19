package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func frameCmd(session string) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{session: session}
	})
}

func progressCmd(session string, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return progressTickMsg{session: session}
	})
}

func completeCmd(session string, delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return completeMsg{session: session} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return completeMsg{session: session}
	})
}

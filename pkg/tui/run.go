package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the terminal preview until the user quits or ctx is cancelled.
// The session is closed on every exit path.
func Run(ctx context.Context, opts Options, programOpts ...tea.ProgramOption) error {
	model := New(opts)
	defer model.Close()

	options := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}, programOpts...)

	p := tea.NewProgram(model, options...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("terminal preview failed: %w", err)
	}
	return nil
}

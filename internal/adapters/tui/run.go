package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, deps Deps, opts ...tea.ProgramOption) error {
	options := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)

	p := tea.NewProgram(NewModel(ctx, deps), options...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run interactive ui: %w", err)
	}

	return nil
}

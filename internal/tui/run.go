package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vancomm/minesweeper/internal/mines"
)

// Run takes over the terminal until the player quits or ctx is done.
func Run(ctx context.Context, game *mines.GameState, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/vancomm/minesweeper/internal/mines"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	lostStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	wonStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	boardStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	coveredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	flagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	mineStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	numberStyles = [...]lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	}
)

const coveredGlyph = "·"

func cellStyle(c mines.Cell) lipgloss.Style {
	switch s := c.Status(); s {
	case mines.Mine:
		return mineStyle
	case mines.Flagged:
		return flagStyle
	case mines.Covered:
		return coveredStyle
	default:
		return numberStyles[s]
	}
}

func cellGlyph(c mines.Cell) string {
	if c.Status() == mines.Covered {
		return coveredGlyph
	}
	return c.Status().String()
}

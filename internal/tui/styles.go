// Package tui is the full-screen terminal front end: login and signup, the
// report form, and the records list with view, edit and delete.
package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Ocean palette
var (
	Deep     = lipgloss.Color("#0B1D33")
	Surface  = lipgloss.Color("#1A2F4A")
	Foam     = lipgloss.Color("#E8F4F8")
	Lagoon   = lipgloss.Color("#00BCD4")
	Seagrass = lipgloss.Color("#4DB6AC")
	Muted    = lipgloss.Color("#7A8B99")

	Destructive = lipgloss.Color("#D32F2F")
	Caution     = lipgloss.Color("#FF9500")
	Success     = lipgloss.Color("#8BC34A")
)

type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Tagline  lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Help     lipgloss.Style
	Menu     lipgloss.Style
	Selected lipgloss.Style
	Content  lipgloss.Style

	DialogInfo    lipgloss.Style
	DialogWarning lipgloss.Style
	DialogError   lipgloss.Style
	DialogConfirm lipgloss.Style

	Table table.Styles
}

func DefaultStyles() Styles {
	dialog := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2).
		MarginTop(1)

	tbl := table.DefaultStyles()
	tbl.Header = tbl.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Seagrass).
		BorderBottom(true).
		Bold(true).
		Foreground(Lagoon)
	tbl.Selected = tbl.Selected.
		Foreground(Deep).
		Background(Lagoon).
		Bold(false)

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(Lagoon).Padding(0, 1),
		Subtitle: lipgloss.NewStyle().Foreground(Foam).Padding(0, 1),
		Tagline:  lipgloss.NewStyle().Italic(true).Foreground(Seagrass).Padding(0, 1),
		Label:    lipgloss.NewStyle().Bold(true).Foreground(Lagoon),
		Value:    lipgloss.NewStyle().Foreground(Foam),
		Help:     lipgloss.NewStyle().Foreground(Muted).MarginTop(1),
		Menu:     lipgloss.NewStyle().Foreground(Foam).PaddingLeft(2),
		Selected: lipgloss.NewStyle().Foreground(Deep).Background(Lagoon).Bold(true).PaddingLeft(1).PaddingRight(1),
		Content:  lipgloss.NewStyle().Padding(1, 2),

		DialogInfo:    dialog.BorderForeground(Success),
		DialogWarning: dialog.BorderForeground(Caution),
		DialogError:   dialog.BorderForeground(Destructive),
		DialogConfirm: dialog.BorderForeground(Lagoon),

		Table: tbl,
	}
}

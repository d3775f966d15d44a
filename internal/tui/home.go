package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

var homeMenu = []string{
	"Report waste",
	"View records",
	"About SDG 14",
	"Logout",
}

const sdg14Text = `Sustainable Development Goal 14 focuses on:
"The conservation and sustainable use of oceans, seas,
and marine resources for sustainable development."

Oceanguard supports SDG 14 by:
  • Recording marine waste reports
  • Encouraging public environmental awareness
  • Helping organizations plan cleanup operations
  • Promoting protection of marine biodiversity`

func (a *App) showHome() {
	a.screen = screenHome
	a.homeCursor = 0
}

func (a *App) updateHome(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if a.homeCursor > 0 {
			a.homeCursor--
		}
	case "down", "j":
		if a.homeCursor < len(homeMenu)-1 {
			a.homeCursor++
		}
	case "enter":
		return a.selectHome(a.homeCursor)
	case "1", "2", "3", "4":
		return a.selectHome(int(msg.String()[0] - '1'))
	case "q":
		return tea.Quit
	}
	return nil
}

func (a *App) selectHome(i int) tea.Cmd {
	switch i {
	case 0:
		return a.showReportForm()
	case 1:
		a.showRecords()
	case 2:
		a.screen = screenAbout
	case 3:
		a.confirm("Logout", "Are you sure you want to logout?", a.logout)
	}
	return nil
}

func (a *App) logout() tea.Cmd {
	if a.session != nil {
		a.log.Info("logout", zap.Int64("user_id", a.session.ID))
	}
	a.session = nil
	return a.showLogin()
}

func (a *App) viewHome() string {
	var sb strings.Builder
	sb.WriteString(a.styles.Title.Render("~ OCEANGUARD ~"))
	sb.WriteString("\n")
	sb.WriteString(a.styles.Subtitle.Render("Marine Waste Reporting System"))
	sb.WriteString("\n")
	sb.WriteString(a.styles.Tagline.Render("Protect Our Oceans • Report Marine Waste • Support SDG 14"))
	sb.WriteString("\n\n")

	for i, item := range homeMenu {
		if i == a.homeCursor {
			sb.WriteString(a.styles.Selected.Render("> " + item))
		} else {
			sb.WriteString(a.styles.Menu.Render(item))
		}
		sb.WriteString("\n")
	}

	if a.session != nil {
		sb.WriteString("\n")
		sb.WriteString(a.styles.Help.Render("Logged in as " + a.session.Username))
		sb.WriteString("\n")
	}
	sb.WriteString(a.help("↑/↓: move", "enter: select", "q: quit"))
	return sb.String()
}

func (a *App) updateAbout(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter", "q":
		a.showHome()
	}
	return nil
}

func (a *App) viewAbout() string {
	return a.header("ABOUT SDG 14 - LIFE BELOW WATER") +
		a.styles.Value.Render(sdg14Text) + "\n\n" +
		a.help("esc: back")
}

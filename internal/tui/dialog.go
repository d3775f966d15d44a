package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type dialogKind int

const (
	dialogInfo dialogKind = iota
	dialogWarning
	dialogError
	dialogConfirm
)

// dialog is modal: while one is open every key goes to it.
type dialog struct {
	kind      dialogKind
	title     string
	message   string
	onConfirm func() tea.Cmd
}

func (a *App) info(title, message string) {
	a.dialog = &dialog{kind: dialogInfo, title: title, message: message}
}

func (a *App) warn(title, message string) {
	a.dialog = &dialog{kind: dialogWarning, title: title, message: message}
}

func (a *App) fail(title, message string) {
	a.dialog = &dialog{kind: dialogError, title: title, message: message}
}

func (a *App) confirm(title, message string, onConfirm func() tea.Cmd) {
	a.dialog = &dialog{kind: dialogConfirm, title: title, message: message, onConfirm: onConfirm}
}

func (a *App) updateDialog(msg tea.KeyMsg) tea.Cmd {
	d := a.dialog
	switch msg.String() {
	case "y", "enter":
		a.dialog = nil
		if d.kind == dialogConfirm && d.onConfirm != nil {
			return d.onConfirm()
		}
	case "n", "esc", " ":
		a.dialog = nil
	}
	return nil
}

func (a *App) viewDialog() string {
	d := a.dialog
	style := a.styles.DialogInfo
	help := "enter: ok"
	switch d.kind {
	case dialogWarning:
		style = a.styles.DialogWarning
	case dialogError:
		style = a.styles.DialogError
	case dialogConfirm:
		style = a.styles.DialogConfirm
		help = "y: yes • n: no"
	}

	var sb strings.Builder
	sb.WriteString(a.styles.Label.Render(d.title))
	sb.WriteString("\n")
	sb.WriteString(d.message)
	sb.WriteString("\n")
	sb.WriteString(a.styles.Help.Render(help))
	return style.Render(sb.String())
}

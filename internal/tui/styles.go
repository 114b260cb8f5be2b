package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/numlist/internal/ui"
)

// Style variables for the list editor.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle      lipgloss.Style
	titleStyle      lipgloss.Style
	versionStyle    lipgloss.Style
	digitStyle      lipgloss.Style
	cursorStyle     lipgloss.Style
	labelStyle      lipgloss.Style
	valueStyle      lipgloss.Style
	footerKeyStyle  lipgloss.Style
	footerDescStyle lipgloss.Style
	statusOKStyle   lipgloss.Style
	statusErrStyle  lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Border)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	digitStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	cursorStyle = lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(t.Cursor)

	labelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	valueStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Mark)

	footerKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Border)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	statusOKStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	statusErrStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Error)
}

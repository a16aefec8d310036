package ui

import "github.com/charmbracelet/lipgloss"

func (m Model) renderSettings() string {
	styles := m.theme.Styles()
	return lipgloss.Place(
		m.contentWidth(),
		m.contentHeight(),
		lipgloss.Center,
		lipgloss.Center,
		styles.MutedText.Render("Settings placeholder"),
	)
}

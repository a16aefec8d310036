package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var viewIcons = map[View]string{
	ViewDashboard:   "▦",
	ViewDataSources: "⛁",
	ViewSettings:    "⚙",
}

// renderSidebar renders the navigation column. Collapsed, it shows icons only.
func (m Model) renderSidebar() string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)
	width := m.sidebarWidth()
	inner := width - 2

	var lines []string

	brand := bg.Render("◆", styles.Brand)
	if m.sidebarOpen {
		brand += bg.Space() + bg.Render(truncate(m.workspace, inner-2), styles.Text.Bold(true))
	}
	lines = append(lines, brand, "")

	for i, v := range viewOrder {
		label := viewIcons[v]
		if m.sidebarOpen {
			label = padRight(label+" "+v.Label(), inner-4) + " " + string(rune('1'+i))
		}
		label = padRight(label, inner)
		if v == m.currentView {
			lines = append(lines, styles.Selected.Bold(true).Render(label))
		} else {
			lines = append(lines, bg.Render(label, styles.MutedText))
		}
	}

	body := strings.Join(lines, "\n")

	toggle := "»"
	if m.sidebarOpen {
		toggle = "[ Collapse"
	}
	footer := bg.Render(toggle, styles.FaintText)

	gap := m.height - lipgloss.Height(body) - 1
	if gap > 0 {
		body += strings.Repeat("\n", gap)
	}
	body += "\n" + footer

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.SurfaceAlt)).
		Width(width).
		Height(maxInt(m.height, 1)).
		Padding(0, 1).
		Render(body)
}

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const searchHint = `Try: "Compare revenue vs profit for Q1"`

// renderHeader renders the title, the search input and the user badge.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	width := m.contentWidth()

	title := bg.Render(m.currentView.Title(), styles.Text.Bold(true))

	avatar := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Accent)).
		Foreground(lipgloss.Color(m.theme.Background)).
		Bold(true).
		Padding(0, 1).
		Render(m.initials)

	search := m.search
	search.Width = clampInt(width-lipgloss.Width(title)-lipgloss.Width(avatar)-12, 10, 60)
	searchView := bg.Render(search.View(), styles.MutedText)

	gap := width - lipgloss.Width(title) - lipgloss.Width(searchView) - lipgloss.Width(avatar) - 4
	line := title + bg.Spaces(maxInt(gap, 2)) + searchView + bg.Spaces(2) + avatar

	return styles.Header.Width(width).Render(line)
}

// renderCommandBar renders the per-view key hints and the last status message.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	width := m.contentWidth()

	if m.search.Focused() {
		return styles.Header.Width(width).Render(
			bg.Render(searchHint, styles.FaintText) + bg.Spaces(2) +
				bg.Render("esc", styles.AccentText) + bg.Sep(":") + bg.Render("Close", styles.MutedText))
	}

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewDataSources:
		switch {
		case m.form.open:
			commands = []cmd{
				{"tab", "Next field"},
				{"←/→", "Type"},
				{"enter", "Test & Save"},
				{"esc", "Cancel"},
			}
		case m.activeTab == tabDatabases:
			commands = []cmd{
				{"n", "New connection"},
				{"f", "Files"},
				{"?", "More"},
			}
		default:
			commands = []cmd{
				{"u", "Upload"},
				{"j/k", "Navigate"},
				{"c", "Connections"},
				{"?", "More"},
			}
		}
	case ViewSettings:
		commands = []cmd{
			{"1/2/3", "Views"},
			{"[", "Sidebar"},
			{"?", "More"},
		}
	default: // ViewDashboard
		commands = []cmd{
			{"r", "Insights"},
			{"a", "Anomaly"},
			{"/", "Ask"},
			{"tab", "Views"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+2)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	if m.status.text != "" {
		statusStyle := styles.InfoText
		switch m.status.tone {
		case toneSuccess:
			statusStyle = styles.SuccessText
		case toneDanger:
			statusStyle = styles.DangerText
		case toneWarning:
			statusStyle = styles.WarningText
		}
		segments = append(segments, bg.Render(truncate(m.status.text, 60), statusStyle))
	}

	return styles.Header.Width(width).Render(strings.Join(segments, sep))
}

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/nexus/internal/dashboard"
)

// trendGlyph returns the arrow and tone for a KPI trend.
func trendGlyph(t dashboard.Trend) (string, tone) {
	if t == dashboard.TrendDown {
		return "↓", toneDanger
	}
	return "↑", toneSuccess
}

// renderKPICard renders one summary metric. showAnomaly expands the anomaly
// note of cards that carry one.
func (m Model) renderKPICard(k dashboard.KPI, width int, showAnomaly bool) string {
	styles := m.theme.Styles()
	inner := maxInt(width-4, 10)

	title := styles.MutedText.Render(k.Title)
	if k.Anomaly != nil {
		marker := styles.DangerText.Render("!")
		gap := inner - lipgloss.Width(title) - lipgloss.Width(marker)
		title += strings.Repeat(" ", maxInt(gap, 1)) + marker
	}

	arrow, t := trendGlyph(k.Trend)
	trendStyle := styles.SuccessText
	if t == toneDanger {
		trendStyle = styles.DangerText
	}
	trend := trendStyle.Render(arrow+" "+k.Change) + " " + styles.FaintText.Render("vs last month")

	lines := []string{
		title,
		"",
		styles.Text.Bold(true).Render(k.Value),
		trend,
	}

	if showAnomaly && k.Anomaly != nil {
		note := lipgloss.NewStyle().Width(inner).Render(k.Anomaly.Description)
		lines = append(lines, "",
			styles.DangerText.Render("AI Anomaly Detected"),
			styles.MutedText.Render(note))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}

// renderKPIRow lays the cards out in one row, or two rows on narrow terminals.
func (m Model) renderKPIRow(kpis []dashboard.KPI, width int) string {
	if len(kpis) == 0 {
		return ""
	}

	perRow := len(kpis)
	if width < LayoutKPIRowWidth {
		perRow = 2
	}
	cardWidth := maxInt(width/perRow, 18)

	var rows []string
	for start := 0; start < len(kpis); start += perRow {
		end := min(start+perRow, len(kpis))
		cards := make([]string, 0, end-start)
		for _, k := range kpis[start:end] {
			cards = append(cards, m.renderKPICard(k, cardWidth, m.showAnomaly))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

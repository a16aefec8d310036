package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/five82/nexus/internal/dashboard"
	"github.com/five82/nexus/internal/insight"
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// sparkline maps each value onto an eighth-block glyph between the series
// minimum and maximum. A flat series renders at mid height.
func sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := seriesRange(values)
	span := hi - lo

	var b strings.Builder
	for _, v := range values {
		idx := 3
		if span > 0 {
			idx = int(math.Round((v - lo) / span * float64(len(sparkBlocks)-1)))
			idx = clampInt(idx, 0, len(sparkBlocks)-1)
		}
		b.WriteRune(sparkBlocks[idx])
	}
	return b.String()
}

func seriesRange(values []float64) (lo, hi float64) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// stretch repeats each glyph cell-1 times followed by a gap.
func stretch(line string, cell int) string {
	if cell <= 1 {
		return line
	}
	var b strings.Builder
	for _, r := range line {
		b.WriteString(strings.Repeat(string(r), cell-1))
		b.WriteByte(' ')
	}
	return b.String()
}

func formatDollars(v float64) string {
	return "$" + humanize.Commaf(v)
}

// renderDashboard renders KPI cards, both charts and their insights.
func (m Model) renderDashboard() string {
	width := m.contentWidth()

	kpis := m.renderKPIRow(dashboard.KPIs(), width)

	var charts string
	if width < LayoutCompactWidth {
		charts = lipgloss.JoinVertical(lipgloss.Left,
			m.renderTrendChart(width),
			m.renderCategoryChart(width))
	} else {
		trendWidth := width * 2 / 3
		charts = lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderTrendChart(trendWidth),
			m.renderCategoryChart(width-trendWidth))
	}

	return lipgloss.JoinVertical(lipgloss.Left, kpis, charts)
}

// renderTrendChart draws one sparkline row per series over a month axis.
func (m Model) renderTrendChart(width int) string {
	styles := m.theme.Styles()
	inner := maxInt(width-4, 20)

	points := dashboard.SalesSeries()
	series := []struct {
		name   string
		values []float64
	}{
		{"Revenue", dashboard.Revenue(points)},
		{"Profit", dashboard.Profit(points)},
	}

	const labelWidth = 9
	cell := clampInt((inner-labelWidth-20)/maxInt(len(points), 1), 1, 6)

	lines := []string{
		styles.Text.Bold(true).Render(dashboard.RevenueTrendsTitle),
		styles.MutedText.Render("Comparison of Revenue vs Profit YTD"),
		"",
	}

	for i, s := range series {
		color := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ChartColor(i)))
		lo, hi := seriesRange(s.values)
		lines = append(lines,
			styles.Text.Render(padRight(s.name, labelWidth))+
				color.Render(stretch(sparkline(s.values), cell))+
				styles.FaintText.Render(fmt.Sprintf(" %s–%s", formatDollars(lo), formatDollars(hi))))
	}

	var axis strings.Builder
	for _, p := range points {
		axis.WriteString(padRight(truncate(p.Month, cell), cell))
	}
	lines = append(lines, strings.Repeat(" ", labelWidth)+styles.FaintText.Render(axis.String()))

	lines = append(lines, "", m.renderInsight(m.panelFor(dashboard.RevenueTrendsTitle), inner))

	return m.chartBox(width).Render(strings.Join(lines, "\n"))
}

// renderCategoryChart draws horizontal share bars per category.
func (m Model) renderCategoryChart(width int) string {
	styles := m.theme.Styles()
	inner := maxInt(width-4, 20)

	categories := dashboard.CategoryBreakdown()
	shares := dashboard.Shares(categories)

	nameWidth := 0
	for _, c := range categories {
		nameWidth = maxInt(nameWidth, len([]rune(c.Name)))
	}
	barWidth := maxInt(inner-nameWidth-7, 4)

	lines := []string{
		styles.Text.Bold(true).Render(dashboard.SalesByCategoryTitle),
		styles.MutedText.Render("Distribution across top categories"),
		"",
	}

	for i, c := range categories {
		filled := int(math.Round(shares[i] * float64(barWidth)))
		bar := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.ChartColor(i))).
			Render(strings.Repeat("█", filled))
		rest := styles.FaintText.Render(strings.Repeat("░", barWidth-filled))
		pct := fmt.Sprintf(" %3.0f%%", shares[i]*100)
		lines = append(lines, styles.Text.Render(padRight(c.Name, nameWidth+1))+bar+rest+styles.MutedText.Render(pct))
	}

	lines = append(lines, "", m.renderInsight(m.panelFor(dashboard.SalesByCategoryTitle), inner))

	return m.chartBox(width).Render(strings.Join(lines, "\n"))
}

func (m Model) chartBox(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(0, 1).
		Width(width - 2)
}

// renderInsight renders the AI-insight block under a chart.
func (m Model) renderInsight(p *insight.Panel, width int) string {
	styles := m.theme.Styles()
	header := styles.AccentText.Bold(true).Render("✦ AI-Powered Insight")
	if p == nil {
		return header
	}

	var body string
	switch {
	case p.Loading:
		body = m.spinner.View() + " " + styles.MutedText.Render(insight.PlaceholderText) + "\n" +
			styles.FaintText.Render(strings.Repeat("░", maxInt(width*5/6, 1))) + "\n" +
			styles.FaintText.Render(strings.Repeat("░", maxInt(width*4/6, 1)))
	case p.Err != nil:
		body = styles.DangerText.Render("Insight unavailable: " + p.Err.Error())
	default:
		body = styles.Text.Render(p.Text)
	}

	return header + "\n" + lipgloss.NewStyle().Width(width).Render(body)
}

func (m Model) panelFor(title string) *insight.Panel {
	for _, p := range m.panels {
		if p.Title == title {
			return p
		}
	}
	return nil
}

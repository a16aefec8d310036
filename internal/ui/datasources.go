package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"

	"github.com/five82/nexus/internal/source"
)

const (
	columnKeyName     = "name"
	columnKeyType     = "type"
	columnKeySize     = "size"
	columnKeyUploaded = "uploaded"
	columnKeyStatus   = "status"
)

func newFileTable(theme Theme) table.Model {
	cols := []table.Column{
		table.NewFlexColumn(columnKeyName, "Name", 3),
		table.NewColumn(columnKeyType, "Type", 7),
		table.NewColumn(columnKeySize, "Size", 9),
		table.NewColumn(columnKeyUploaded, "Uploaded", 16),
		table.NewColumn(columnKeyStatus, "Status", 14),
	}
	return applyTableTheme(table.New(cols).Focused(true).WithPageSize(10), theme)
}

func applyTableTheme(t table.Model, theme Theme) table.Model {
	return t.
		WithBaseStyle(lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)).
			BorderForeground(lipgloss.Color(theme.Border)).
			Align(lipgloss.Left)).
		HeaderStyle(lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)).
			Bold(true)).
		HighlightStyle(lipgloss.NewStyle().
			Background(lipgloss.Color(theme.SelectionBg)).
			Foreground(lipgloss.Color(theme.SelectionText))).
		BorderRounded()
}

// fileRows converts files to table rows, newest first as stored.
func (m Model) fileRows(files []source.UploadedFile) []table.Row {
	now := m.now()
	styles := m.theme.Styles()
	rows := make([]table.Row, 0, len(files))
	for _, f := range files {
		b := badgeFor(f.Status)
		icon := b.icon
		if b.animated {
			icon = m.spinner.View()
		}
		rows = append(rows, table.NewRow(table.RowData{
			columnKeyName:     f.Name,
			columnKeyType:     table.NewStyledCell(string(f.Type), fileTypeStyle(f.Type, m.theme)),
			columnKeySize:     f.DisplaySize(),
			columnKeyUploaded: f.DisplayAge(now),
			columnKeyStatus:   table.NewStyledCell(icon+" "+b.label, styles.ToneStyle(b.tone)),
		}))
	}
	return rows
}

func fileTypeStyle(t source.FileType, theme Theme) lipgloss.Style {
	switch t {
	case source.FileCSV:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Success))
	case source.FileExcel:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Info))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Warning))
	}
}

func (m *Model) refreshFileTable() {
	m.fileTable = m.fileTable.
		WithRows(m.fileRows(m.snapshot.Files)).
		WithTargetWidth(maxInt(m.contentWidth()-2, 40))
}

// renderDataSources renders the tab selector and the active tab.
func (m Model) renderDataSources() string {
	styles := m.theme.Styles()
	width := m.contentWidth()

	lines := []string{
		"",
		styles.Text.Bold(true).Render("Connect Your Data"),
		styles.MutedText.Render("Manage your file uploads and database connections to power your dashboard."),
		"",
		m.renderTabs(),
		"",
	}

	if m.activeTab == tabDatabases {
		lines = append(lines, m.renderConnections(width))
	} else {
		lines = append(lines, m.renderFiles(width))
	}

	if err := m.snapshot.LastError; err != nil {
		lines = append(lines, "", styles.DangerText.Render(truncate("Last error: "+err.Error(), width-2)))
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(lines, "\n"))
}

func (m Model) renderTabs() string {
	styles := m.theme.Styles()
	tab := func(key, label string, active bool) string {
		text := " " + key + " " + label + " "
		if active {
			return styles.Selected.Bold(true).Render(text)
		}
		return styles.SurfaceAlt.Render(text)
	}
	return tab("f", "File Uploads", m.activeTab == tabFiles) + " " +
		tab("c", "Database Connections", m.activeTab == tabDatabases)
}

func (m Model) renderFiles(width int) string {
	styles := m.theme.Styles()

	drop := lipgloss.NewStyle().
		Border(lipgloss.Border{
			Top: "╌", Bottom: "╌", Left: "╎", Right: "╎",
			TopLeft: "╭", TopRight: "╮", BottomLeft: "╰", BottomRight: "╯",
		}).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Width(maxInt(width-4, 30)).
		Align(lipgloss.Center).
		Padding(1, 0).
		Render(styles.AccentText.Render("⇪") + "\n" +
			styles.Text.Bold(true).Render("Drop files here or press u to upload") + "\n" +
			styles.MutedText.Render("Support for CSV, Excel, JSON (Max 500MB)"))

	title := styles.Text.Bold(true).Render(fmt.Sprintf("Uploaded Files (%d)", len(m.snapshot.Files)))

	return drop + "\n\n" + title + "\n" + m.fileTable.View()
}

func (m Model) renderConnections(width int) string {
	styles := m.theme.Styles()

	header := styles.Text.Bold(true).Render("Active Connections")
	button := styles.Selected.Render(" n + New Connection ")
	gap := width - lipgloss.Width(header) - lipgloss.Width(button) - 4
	parts := []string{header + strings.Repeat(" ", maxInt(gap, 2)) + button}

	if m.form.open {
		parts = append(parts, "", m.renderConnectionForm(width-2))
	}

	cardWidth := maxInt((width-4)/2, 30)
	perRow := 2
	if width < LayoutCompactWidth/2+20 {
		perRow = 1
	}

	conns := m.snapshot.Connections
	var rows []string
	for start := 0; start < len(conns); start += perRow {
		end := min(start+perRow, len(conns))
		cards := make([]string, 0, end-start)
		for _, c := range conns[start:end] {
			cards = append(cards, m.renderConnectionCard(c, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	if len(rows) > 0 {
		parts = append(parts, "", lipgloss.JoinVertical(lipgloss.Left, rows...))
	}

	return strings.Join(parts, "\n")
}

func (m Model) renderConnectionCard(c source.DatabaseConnection, width int) string {
	styles := m.theme.Styles()
	inner := maxInt(width-4, 20)

	title := styles.Text.Bold(true).Render(truncate(c.Name, inner/2))
	status := m.renderBadge(c.Status)
	gap := inner - lipgloss.Width(title) - lipgloss.Width(status)

	lines := []string{
		title + strings.Repeat(" ", maxInt(gap, 1)) + status,
		styles.MutedText.Render(string(c.Kind)),
		"",
		styles.FaintText.Render("HOST: ") + styles.Text.Render(truncate(c.Host, inner-6)),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}

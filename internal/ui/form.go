package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/nexus/internal/source"
)

// formField indexes the connection form fields in tab order.
type formField int

const (
	fieldName formField = iota
	fieldKind
	fieldHost
	fieldCount
)

// connectionForm is the inline new-connection form on the databases tab.
type connectionForm struct {
	open    bool
	focus   formField
	name    textinput.Model
	host    textinput.Model
	kindIdx int
}

func newConnectionForm() connectionForm {
	name := textinput.New()
	name.Placeholder = "e.g. Marketing DB"
	name.Prompt = ""
	name.CharLimit = 64
	name.Width = 32

	host := textinput.New()
	host.Placeholder = "db.example.com:5432"
	host.Prompt = ""
	host.CharLimit = 255
	host.Width = 32

	return connectionForm{name: name, host: host}
}

// show opens a blank form with the name field focused.
func (f *connectionForm) show() tea.Cmd {
	f.name.Reset()
	f.host.Reset()
	f.kindIdx = 0
	f.open = true
	return f.setFocus(fieldName)
}

// close hides the form. Typed values are discarded on the next show.
func (f *connectionForm) close() {
	f.open = false
	f.name.Blur()
	f.host.Blur()
	f.focus = fieldName
}

func (f *connectionForm) setFocus(field formField) tea.Cmd {
	f.focus = field
	f.name.Blur()
	f.host.Blur()
	switch field {
	case fieldName:
		return f.name.Focus()
	case fieldHost:
		return f.host.Focus()
	}
	return nil
}

func (f *connectionForm) focusNext(step int) tea.Cmd {
	n := int(fieldCount)
	return f.setFocus(formField(((int(f.focus)+step)%n + n) % n))
}

func (f *connectionForm) cycleKind(step int) {
	kinds := source.ConnectionKinds()
	n := len(kinds)
	f.kindIdx = ((f.kindIdx+step)%n + n) % n
}

func (f connectionForm) kind() source.ConnectionKind {
	kinds := source.ConnectionKinds()
	return kinds[clampInt(f.kindIdx, 0, len(kinds)-1)]
}

// update forwards a key to the focused text field.
func (f *connectionForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldHost:
		f.host, cmd = f.host.Update(msg)
	}
	return cmd
}

func (f connectionForm) config() source.ConnectionConfig {
	return source.ConnectionConfig{
		Name: strings.TrimSpace(f.name.Value()),
		Kind: f.kind(),
		Host: strings.TrimSpace(f.host.Value()),
	}
}

func (m Model) renderConnectionForm(width int) string {
	styles := m.theme.Styles()
	f := m.form

	label := func(field formField, text string) string {
		if f.focus == field {
			return styles.AccentText.Bold(true).Render("› " + text)
		}
		return styles.MutedText.Render("  " + text)
	}

	kind := string(f.kind())
	kindView := styles.Text.Render("‹ " + kind + " ›")
	if f.focus == fieldKind {
		kindView = styles.Selected.Render("‹ " + kind + " ›")
	}

	lines := []string{
		styles.Text.Bold(true).Render("New Database Connection"),
		"",
		label(fieldName, "Display Name"),
		"  " + f.name.View(),
		label(fieldKind, "Type"),
		"  " + kindView,
		label(fieldHost, "Host"),
		"  " + f.host.View(),
		"",
		styles.FaintText.Render("esc ") + styles.MutedText.Render("Cancel") + "   " +
			styles.AccentText.Render("enter ") + styles.Text.Bold(true).Render("Test & Save"),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(0, 1).
		Width(maxInt(width-2, 30)).
		Render(strings.Join(lines, "\n"))
}

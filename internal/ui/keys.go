package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit          key.Binding
	Help          key.Binding
	CycleTheme    key.Binding
	Tab           key.Binding
	ShiftTab      key.Binding
	ToggleSidebar key.Binding
	Search        key.Binding
	Escape        key.Binding

	// View switching
	ViewDashboard   key.Binding
	ViewDataSources key.Binding
	ViewSettings    key.Binding

	// Dashboard actions
	RefreshInsights key.Binding
	ToggleAnomaly   key.Binding

	// Data source actions
	FilesTab       key.Binding
	ConnectionsTab key.Binding
	Upload         key.Binding
	NewConnection  key.Binding
	Up             key.Binding
	Down           key.Binding

	// Connection form
	NextField key.Binding
	PrevField key.Binding
	PrevKind  key.Binding
	NextKind  key.Binding
	Confirm   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next view"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous view"),
		),
		ToggleSidebar: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Collapse sidebar"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Ask a question"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),

		ViewDashboard: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Dashboard"),
		),
		ViewDataSources: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Data sources"),
		),
		ViewSettings: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Settings"),
		),

		RefreshInsights: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Regenerate insights"),
		),
		ToggleAnomaly: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Anomaly details"),
		),

		FilesTab: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "File uploads"),
		),
		ConnectionsTab: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Database connections"),
		),
		Upload: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "Upload file"),
		),
		NewConnection: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "New connection"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),

		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "Next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		PrevKind: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("left", "Previous type"),
		),
		NextKind: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("right", "Next type"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Test & Save"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.ViewDashboard, k.ViewDataSources, k.ViewSettings, k.Tab, k.ShiftTab, k.ToggleSidebar},
		// Dashboard
		{k.RefreshInsights, k.ToggleAnomaly},
		// Data sources
		{k.FilesTab, k.ConnectionsTab, k.Upload, k.Up, k.Down, k.NewConnection},
		// Connection form
		{k.NextField, k.PrevKind, k.NextKind, k.Confirm, k.Escape},
		// General
		{k.Search, k.CycleTheme, k.Help, k.Quit},
	}
}

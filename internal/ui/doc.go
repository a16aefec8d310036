// Package ui provides the Nexus terminal dashboard built on Bubble Tea.
//
// # Architecture Overview
//
// Model owns every piece of UI state and is only mutated inside Update.
// Background work (insight analysis, uploads, connection tests) runs in
// tea.Cmd functions and reports back through messages.
//
// # Package Structure
//
//   - app.go: Model, Update loop, view switching and the Run function
//   - sidebar.go / header.go: navigation column, title bar and command bar
//   - kpi.go / charts.go: dashboard cards, sparklines, category bars, insights
//   - datasources.go / form.go: file table, connection cards, connection form
//   - badge.go: status to badge mapping
//   - settings.go: settings placeholder
//
// # View Lifecycle
//
//	dashboard mount   → insight.Panel.Invoke for each chart
//	leave dashboard   → insight.Panel.Teardown (pending analyses cancelled)
//	leave datasources → files tab selected, connection form hidden
//
// Selecting the view that is already active does nothing.
//
// # Connection Form
//
// "Test & Save" closes the form and runs the connector in the background.
// The outcome is reported in the command bar; the connection list itself is
// never extended.
package ui

package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the content width below which panels stack.
	LayoutCompactWidth = 100

	// LayoutKPIRowWidth is the minimum content width for one row of KPI cards.
	LayoutKPIRowWidth = 96
)

// Sidebar widths.
const (
	SidebarOpenWidth      = 22
	SidebarCollapsedWidth = 5
)

// Timing constants.
const (
	// DefaultUIInterval refreshes relative timestamps.
	DefaultUIInterval = time.Second

	// ConnectionTestTimeout bounds a mock connection test.
	ConnectionTestTimeout = 5 * time.Second
)

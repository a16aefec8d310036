package ui

import (
	"github.com/five82/nexus/internal/source"
)

// tone is the semantic color family of a badge.
type tone int

const (
	toneSuccess tone = iota
	toneInfo
	toneDanger
	toneWarning
)

// badge is the rendered form of a source.Status.
type badge struct {
	label    string
	tone     tone
	icon     string
	animated bool
}

// badgeFor maps a status to its badge. Unknown values render as Error.
func badgeFor(status source.Status) badge {
	switch status {
	case source.StatusReady:
		return badge{label: "Ready", tone: toneSuccess, icon: "✓"}
	case source.StatusConnected:
		return badge{label: "Connected", tone: toneSuccess, icon: "✓"}
	case source.StatusProcessing:
		return badge{label: "Processing", tone: toneInfo, animated: true}
	default:
		return badge{label: "Error", tone: toneDanger, icon: "!"}
	}
}

// renderBadge draws a status pill. Animated badges use the shared spinner frame.
func (m Model) renderBadge(status source.Status) string {
	b := badgeFor(status)
	icon := b.icon
	if b.animated {
		icon = m.spinner.View()
	}
	return m.theme.Styles().ToneStyle(b.tone).Render(icon + " " + b.label)
}

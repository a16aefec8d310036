package ui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestBgStyle_Render(t *testing.T) {
	bg := NewBgStyle("#000000")
	styles := GetTheme("Slate").Styles()

	if got := bg.Render("", styles.Text); got != "" {
		t.Fatalf("Render(empty) = %q, want empty", got)
	}
	if got := bg.Spaces(0); got != "" {
		t.Fatalf("Spaces(0) = %q, want empty", got)
	}
	if got := ansi.Strip(bg.Render("Data Connectors", styles.Text)); got != "Data Connectors" {
		t.Fatalf("Render = %q, want words joined by one space", got)
	}
}

func TestTruncateAndPad(t *testing.T) {
	if got := truncate("  Analytics Warehouse ", 10); got != "Analyti..." {
		t.Fatalf("truncate = %q, want %q", got, "Analyti...")
	}
	if got := truncate("abc", 2); got != "ab" {
		t.Fatalf("truncate short limit = %q, want ab", got)
	}
	if got := padRight("ab", 4); got != "ab  " {
		t.Fatalf("padRight = %q, want %q", got, "ab  ")
	}
	if got := clampInt(12, 0, 7); got != 7 {
		t.Fatalf("clampInt = %d, want 7", got)
	}
}

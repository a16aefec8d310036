package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Slate" {
		t.Fatalf("ThemeNames()[0] = %q, want Slate", names[0])
	}
	for _, name := range names {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, got)
		}
	}
}

func TestNextTheme(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{"Slate", "Nightfox"},
		{"Nightfox", "Kanagawa"},
		{"Kanagawa", "Slate"},
		{"unknown", "Slate"},
	}
	for _, tt := range tests {
		if got := NextTheme(tt.current); got != tt.want {
			t.Fatalf("NextTheme(%q) = %q, want %q", tt.current, got, tt.want)
		}
	}
}

func TestGetTheme_UnknownFallsBackToSlate(t *testing.T) {
	if got := GetTheme("Dracula").Name; got != "Slate" {
		t.Fatalf("GetTheme(unknown).Name = %q, want Slate", got)
	}
}

func TestChartColor_Wraps(t *testing.T) {
	th := GetTheme("Slate")
	n := len(th.ChartColors)
	if got := th.ChartColor(n); got != th.ChartColors[0] {
		t.Fatalf("ChartColor(%d) = %q, want %q", n, got, th.ChartColors[0])
	}

	empty := Theme{Accent: "#fff"}
	if got := empty.ChartColor(2); got != "#fff" {
		t.Fatalf("ChartColor with empty palette = %q, want accent", got)
	}
}

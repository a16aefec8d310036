package ui

import (
	"testing"

	"github.com/five82/nexus/internal/dashboard"
)

func TestSparkline(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   string
	}{
		{"empty", nil, ""},
		{"flat", []float64{5, 5, 5}, "▄▄▄"},
		{"min max", []float64{0, 7}, "▁█"},
		{"ramp", []float64{0, 1, 2, 3, 4, 5, 6, 7}, "▁▂▃▄▅▆▇█"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sparkline(tt.values); got != tt.want {
				t.Fatalf("sparkline(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

func TestSparkline_ProfitPeaksInMarch(t *testing.T) {
	line := []rune(sparkline(dashboard.Profit(dashboard.SalesSeries())))
	if line[2] != '█' {
		t.Fatalf("March glyph = %q, want full block", line[2])
	}
}

func TestStretch(t *testing.T) {
	if got := stretch("▁█", 3); got != "▁▁ ██ " {
		t.Fatalf("stretch = %q, want %q", got, "▁▁ ██ ")
	}
	if got := stretch("▁█", 1); got != "▁█" {
		t.Fatalf("stretch cell 1 = %q, want unchanged", got)
	}
}

func TestFormatDollars(t *testing.T) {
	if got := formatDollars(9800); got != "$9,800" {
		t.Fatalf("formatDollars = %q, want $9,800", got)
	}
}

package textwidth_test

import (
	"testing"

	"github.com/lululau/rangecal/internal/textwidth"
)

func TestWidthMixedScripts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"chinese", "中文", 4},
		{"mixed", "A中", 3},
		{"multiline", "ab\n中文", 4},
		{"ansi", "\x1b[1m12\x1b[0m", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := textwidth.Width(tt.in); got != tt.want {
				t.Fatalf("Width(%q)=%d want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestPadding(t *testing.T) {
	tests := []struct {
		name string
		pad  func(string, int) string
		in   string
		want string
	}{
		{"right", textwidth.PadRight, "中", "中  "},
		{"left", textwidth.PadLeft, "7", "   7"},
		{"center even", textwidth.Center, "Mo", " Mo "},
		{"center full", textwidth.Center, "初一", "初一"},
		{"center extra right", textwidth.Center, "5", " 5  "},
		{"already wide", textwidth.PadRight, "wider", "wider"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pad(tt.in, 4); got != tt.want {
				t.Fatalf("pad(%q, 4)=%q want %q", tt.in, got, tt.want)
			}
		})
	}
}

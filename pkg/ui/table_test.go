package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestPadString(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		width int
		align string
		want  string
	}{
		{"left", "ab", 5, "left", "ab   "},
		{"right", "ab", 5, "right", "   ab"},
		{"center", "ab", 5, "center", " ab  "},
		{"default is left", "ab", 4, "", "ab  "},
		{"wider than width", "abcdef", 3, "left", "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := padString(tt.s, tt.width, tt.align); got != tt.want {
				t.Errorf("padString(%q, %d, %q) = %q, want %q", tt.s, tt.width, tt.align, got, tt.want)
			}
		})
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]TableColumn{
		{Header: "Group"},
		{Header: "BaseColor", Align: "center"},
	})
	table.AddRow([]string{"Wall", Mark(true)})
	table.AddRow([]string{"Door", Mark(false)})

	lines := strings.Split(strings.TrimRight(table.Render(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator and 2 rows, got %d lines", len(lines))
	}

	width := lipgloss.Width(lines[0])
	for i, line := range lines[1:] {
		if got := lipgloss.Width(line); got != width {
			t.Errorf("line %d: width %d, want %d", i+1, got, width)
		}
	}
	if !strings.Contains(lines[2], "Wall") || !strings.Contains(lines[2], IconSuccess) {
		t.Errorf("unexpected row: %q", lines[2])
	}
	if strings.Contains(lines[3], IconSuccess) {
		t.Errorf("empty slot rendered as filled: %q", lines[3])
	}
}

func TestTableRenderNoColumns(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

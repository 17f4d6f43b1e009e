package display

import (
	"strings"
	"testing"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{1, "1 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1048576, "1.0 MiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
		{3 * 1024 * 1024 * 1024, "3.0 GiB"},
		{1099511627776, "1.0 TiB"},
	}

	for _, tt := range tests {
		if got := FormatBytes(tt.n); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestExtLabel(t *testing.T) {
	if got := ExtLabel(".txt"); got != ".txt" {
		t.Errorf("ExtLabel(.txt) = %q, want .txt", got)
	}
	if got := ExtLabel(""); got != "(no extension)" {
		t.Errorf("ExtLabel(\"\") = %q, want (no extension)", got)
	}
}

func TestShareBar(t *testing.T) {
	tests := []struct {
		name       string
		count      int
		total      int
		width      int
		wantFilled int
	}{
		{"empty", 0, 100, 10, 0},
		{"half", 50, 100, 10, 5},
		{"full", 100, 100, 10, 10},
		{"over total clamps", 150, 100, 10, 10},
		{"zero total", 5, 0, 10, 0},
		{"rounds down", 49, 100, 10, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShareBar(tt.count, tt.total, tt.width)
			if len([]rune(got)) != tt.width+2 {
				t.Errorf("ShareBar() = %q, want width %d plus brackets", got, tt.width)
			}
			filled := strings.Count(got, "=")
			if filled != tt.wantFilled {
				t.Errorf("ShareBar() = %q, filled %d, want %d", got, filled, tt.wantFilled)
			}
			if !strings.HasPrefix(got, "[") || !strings.HasSuffix(got, "]") {
				t.Errorf("ShareBar() = %q, want bracketed bar", got)
			}
		})
	}
}

func TestShareBar_MinimumWidth(t *testing.T) {
	got := ShareBar(1, 2, 0)
	if len([]rune(got)) != 12 {
		t.Errorf("ShareBar() with width 0 = %q, want default width 10 plus brackets", got)
	}
}

package stringutils

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		s    string
		n    int
		want string
	}{
		{"shorter than limit", "hello", 10, "hello"},
		{"exactly at limit", "hello", 5, "hello"},
		{"over limit", "hello world", 5, "hello..."},
		{"empty", "", 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.s, tt.n); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.s, tt.n, got, tt.want)
			}
		})
	}
}

func TestPreview_AlwaysAppendsEllipsis(t *testing.T) {
	if got := Preview("short", 500); got != "short..." {
		t.Errorf("Preview(short) = %q, want ellipsis even when nothing was cut", got)
	}
}

func TestPreview_CutsAtLimit(t *testing.T) {
	long := strings.Repeat("x", 600)
	got := Preview(long, 500)
	if want := strings.Repeat("x", 500) + "..."; got != want {
		t.Errorf("Preview cut wrong: len=%d, want 503", len(got))
	}
}

func TestPreview_Empty(t *testing.T) {
	if got := Preview("", 500); got != "..." {
		t.Errorf("Preview(\"\") = %q, want \"...\"", got)
	}
}

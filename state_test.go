package trace

import (
	"strings"
	"testing"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		last, frames string
		match        int
	}{
		{"", "a", 0},
		{"", "a b c", 0},
		{"a b c", "a b c", 2},
		{"a b c", "a b d", 2},
		{"a b c", "a x c", 1},
		{"a b c d e", "a b c", 2},
		{"a b", "a b c d", 2},
		{"a b c", "x b c", 0},
		{"a", "a", 0},
	}

	for _, tt := range tests {
		st := NewState()
		st.last = strings.Fields(tt.last)
		frames := strings.Fields(tt.frames)

		if got := st.diff(frames); got != tt.match {
			t.Errorf("diff(%q, %q): want %d, got %d", tt.last, tt.frames, tt.match, got)
		}
		if strings.Join(st.last, " ") != tt.frames {
			t.Errorf("diff(%q, %q): remembered %q", tt.last, tt.frames, st.last)
		}
	}
}

// matching stops at the first mismatch, even if later frames agree again
func TestDiffPrefixOnly(t *testing.T) {
	st := NewState()
	st.last = strings.Fields("a b c d e")

	if got := st.diff(strings.Fields("a x c d e f")); got != 1 {
		t.Errorf("want 1, got %d", got)
	}
}

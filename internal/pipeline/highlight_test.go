package pipeline

import (
	"errors"
	"strings"
	"testing"
)

func TestNewHighlighter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		style   string
		wantErr error
	}{
		{name: "empty uses default", style: ""},
		{name: "known style", style: "monokai"},
		{name: "case insensitive", style: "GitHub"},
		{name: "unknown style", style: "no-such-style", wantErr: ErrUnknownHighlightStyle},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, err := NewHighlighter(tt.style)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewHighlighter(%q) error = %v, want %v", tt.style, err, tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.style) {
					t.Errorf("error %q should name the style %q", err, tt.style)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewHighlighter(%q) unexpected error: %v", tt.style, err)
			}
			if h == nil {
				t.Fatal("NewHighlighter() returned nil")
			}
		})
	}
}

func TestHighlighter_Highlight(t *testing.T) {
	t.Parallel()

	h, err := NewHighlighter("")
	if err != nil {
		t.Fatalf("NewHighlighter() error: %v", err)
	}

	t.Run("known language", func(t *testing.T) {
		t.Parallel()

		got, ok := h.Highlight("x = 1 < 2", "python")
		if !ok {
			t.Fatal("Highlight() ok = false, want true")
		}
		if !strings.Contains(got, "&lt;") {
			t.Errorf("Highlight() should escape code, got %q", got)
		}
		if !strings.Contains(got, "<span") {
			t.Errorf("Highlight() should produce token spans, got %q", got)
		}
	})

	t.Run("unknown language", func(t *testing.T) {
		t.Parallel()

		got, ok := h.Highlight("x", "definitely-not-a-language")
		if ok {
			t.Errorf("Highlight() ok = true for unknown language, output %q", got)
		}
	})
}
